// SPDX-License-Identifier: Apache-2.0

package filestore

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned when a file declares a storage backend no
// store was registered for.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backends routes file access by the backend name persisted on each
// application file. Files written before a backend switch keep their
// declared backend, so one application may hold content on several stores
// at once.
type Backends struct {
	active string
	stores map[string]FileStorage
}

// NewBackends registers the available stores. New uploads are written to the
// active backend, which must be among the registered ones.
func NewBackends(active string, stores map[string]FileStorage) (*Backends, error) {
	if _, ok := stores[active]; !ok {
		return nil, fmt.Errorf("%w: active backend %q is not registered", ErrUnknownBackend, active)
	}

	return &Backends{active: active, stores: stores}, nil
}

// Active returns the write store together with the backend name to record
// on files it creates.
func (b *Backends) Active() (FileStorage, string) {
	return b.stores[b.active], b.active
}

// For returns the store holding a file's content, looked up by the backend
// name declared on the file row.
func (b *Backends) For(name string) (FileStorage, error) {
	store, ok := b.stores[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}

	return store, nil
}
