package file

import (
	"context"
	"io"
	"path"
	"strings"
)

// Object describes a stored export.
type Object struct {
	Path        string // Storage-relative path, always slash separated
	Size        int64
	ContentType string
	Location    string // Absolute file path or s3:// URI
}

// Storage is the destination for exported record snapshots.
type Storage interface {
	// Put writes body to path, replacing any existing object.
	Put(ctx context.Context, path string, body io.Reader, contentType string) (*Object, error)
	// Exists reports whether an object is already stored at path.
	Exists(ctx context.Context, path string) bool
	// Location returns a human-readable location of path.
	Location(path string) string
}

var contentTypes = map[string]string{
	".csv":  "text/csv; charset=utf-8",
	".xml":  "application/xml; charset=utf-8",
	".json": "application/json",
	".txt":  "text/plain; charset=utf-8",
}

// ContentTypeFor guesses a MIME type from the path extension.
func ContentTypeFor(p string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(p))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// cleanKey normalises a storage key and rejects traversal outside the root.
func cleanKey(p string) (string, error) {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" {
		return "", ErrInvalidPath
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", ErrInvalidPath
		}
	}
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return "", ErrInvalidPath
	}
	return p, nil
}

// ctxReader stops a copy as soon as ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
