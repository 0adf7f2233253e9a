package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
)

// Storage guarda objetos da galeria e devolve a URL pública.
type Storage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// New escolhe o backend pela configuração.
func New(ctx context.Context, cfg config.GalleryConfig) (Storage, error) {
	switch cfg.Backend {
	case "local":
		return NewLocal(cfg.Dir, cfg.PublicBaseURL)
	case "s3":
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported gallery backend %q", cfg.Backend)
	}
}

// NewKey gera gallery/AAAA/MM/<uuid><ext>.
func NewKey(now time.Time, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path.Join("gallery", now.Format("2006"), now.Format("01"), uuid.NewString()+ext)
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
