package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes exports below baseDir.
// All paths are confined to baseDir.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage resolves baseDir to an absolute path and creates it if needed.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	return &LocalStorage{baseDir: abs}, nil
}

// Put writes body to a temporary file next to the target and renames it into
// place, so a failed export never leaves a truncated file behind.
func (s *LocalStorage) Put(ctx context.Context, path string, body io.Reader, contentType string) (*Object, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, abs, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".export-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	written, err := io.Copy(tmp, ctxReader{ctx: ctx, r: body})
	if err != nil {
		_ = tmp.Close()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmp.Name(), abs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	if contentType == "" {
		contentType = ContentTypeFor(key)
	}

	return &Object{
		Path:        key,
		Size:        written,
		ContentType: contentType,
		Location:    abs,
	}, nil
}

// Exists reports whether a regular file exists at path.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	_, abs, err := s.resolve(path)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	return err == nil && !info.IsDir()
}

// Location returns the absolute file path, or path itself when it is invalid.
func (s *LocalStorage) Location(path string) string {
	_, abs, err := s.resolve(path)
	if err != nil {
		return path
	}
	return abs
}

func (s *LocalStorage) resolve(path string) (string, string, error) {
	key, err := cleanKey(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", err, path)
	}
	return key, filepath.Join(s.baseDir, filepath.FromSlash(key)), nil
}
