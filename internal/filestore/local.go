package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Local keeps uploads in a directory served under baseURL.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Put(ctx context.Context, key string, payload []byte) (string, error) {
	ref, err := cleanRef(key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target := filepath.Join(l.dir, filepath.FromSlash(ref))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(target, payload, 0o644); err != nil {
		return "", err
	}
	return ref, nil
}

func (l *Local) Delete(ctx context.Context, ref string) error {
	cleaned, err := cleanRef(ref)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(l.dir, filepath.FromSlash(cleaned)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (l *Local) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return l.baseURL + "/" + strings.TrimPrefix(ref, "/")
}
