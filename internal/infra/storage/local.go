package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const DefaultLocalBaseURL = "/static/uploads"

type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create gallery dir: %w", err)
	}
	if baseURL == "" {
		baseURL = DefaultLocalBaseURL
	}
	return &Local{dir: dir, baseURL: baseURL}, nil
}

func (l *Local) Put(ctx context.Context, key, _ string, body io.Reader) (string, error) {
	dst, err := l.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return joinURL(l.baseURL, key), nil
}

// Delete ignora chaves que já não existem.
func (l *Local) Delete(_ context.Context, key string) error {
	dst, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (l *Local) path(key string) (string, error) {
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(l.dir, filepath.FromSlash(key)), nil
}

// Dir é servido como estático pelo router.
func (l *Local) Dir() string {
	return l.dir
}
