package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// localStorage keeps documents on the local filesystem under a base
// directory.
type localStorage struct {
	baseDir string
}

// NewLocalStorage returns a [FileStorage] rooted at baseDir, creating it
// if needed.
func NewLocalStorage(baseDir string) (FileStorage, error) {
	if baseDir == "" {
		return nil, errors.New("binary data directory is not set")
	}

	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &localStorage{baseDir: baseDir}, nil
}

func (l *localStorage) UploadFile(_ context.Context, path string, content []byte) error {
	full, err := l.resolve(path)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err = os.WriteFile(full, content, 0o640); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}

func (l *localStorage) GetFile(_ context.Context, path string) ([]byte, error) {
	full, err := l.resolve(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return content, nil
}

func (l *localStorage) DeleteFile(_ context.Context, path string) error {
	full, err := l.resolve(path)
	if err != nil {
		return err
	}

	if err = os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}

	return nil
}

func (l *localStorage) MoveFile(_ context.Context, oldPath, newPath string) error {
	oldFull, err := l.resolve(oldPath)
	if err != nil {
		return err
	}

	newFull, err := l.resolve(newPath)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(newFull), 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err = os.Rename(oldFull, newFull); err != nil {
		return fmt.Errorf("failed to move file %s: %w", oldPath, err)
	}

	return nil
}

// resolve joins path onto the base directory and rejects escapes.
func (l *localStorage) resolve(path string) (string, error) {
	full := filepath.Join(l.baseDir, filepath.FromSlash(path))

	rel, err := filepath.Rel(l.baseDir, full)
	if err != nil || rel == ".." || len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator) {
		return "", fmt.Errorf("invalid file path: %s", path)
	}

	return full, nil
}
