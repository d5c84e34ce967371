package filestore

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/filestore_mock.go -package=mock

// FileStorage abstracts where submitted documents physically live. Paths
// are backend-relative keys (e.g. "applications/<id>/<file>.json").
//
// GetFile returns (nil, nil) when the key does not exist: a missing
// document is an expected state the verification pipeline handles per
// file, not an error.
type FileStorage interface {
	UploadFile(ctx context.Context, path string, content []byte) error
	GetFile(ctx context.Context, path string) ([]byte, error)
	DeleteFile(ctx context.Context, path string) error
	MoveFile(ctx context.Context, oldPath, newPath string) error
}
