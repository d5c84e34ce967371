package filestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackends_RoutesByDeclaredName(t *testing.T) {
	local, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	other, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	b, err := NewBackends("local", map[string]FileStorage{
		"local": local,
		"s3":    other,
	})
	require.NoError(t, err)

	got, err := b.For("s3")
	require.NoError(t, err)
	assert.Same(t, other, got)

	active, name := b.Active()
	assert.Same(t, local, active)
	assert.Equal(t, "local", name)
}

func TestBackends_UnknownNameFails(t *testing.T) {
	local, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	b, err := NewBackends("local", map[string]FileStorage{"local": local})
	require.NoError(t, err)

	_, err = b.For("glacier")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewBackends_ActiveMustBeRegistered(t *testing.T) {
	local, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = NewBackends("s3", map[string]FileStorage{"local": local})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
