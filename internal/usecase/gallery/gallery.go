package gallery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/gallery"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type UploadInput struct {
	UserID      uint
	Description string
	Image       io.Reader
}

type Service struct {
	repo    domain.Repository
	storage storage.Storage
	audit   *audit.Dispatcher

	maxWidth int
	quality  float32
	now      func() time.Time
}

func NewService(
	repo domain.Repository,
	st storage.Storage,
	audit *audit.Dispatcher,
	maxWidth int,
	quality float32,
) *Service {
	return &Service{
		repo:     repo,
		storage:  st,
		audit:    audit,
		maxWidth: maxWidth,
		quality:  quality,
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]models.GalleryImage, error) {
	images, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("list_gallery", err)
	}
	return images, nil
}

// Upload converte a imagem para webp, grava no storage e registra na galeria.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*models.GalleryImage, error) {
	if in.Image == nil {
		return nil, apperr.Missing("image")
	}

	data, err := storage.ToWebP(in.Image, s.maxWidth, s.quality)
	if errors.Is(err, storage.ErrImageTooLarge) {
		return nil, apperr.Invalid("image", "image_too_large")
	}
	if err != nil {
		return nil, apperr.Invalid("image", "invalid_image")
	}

	now := s.now()
	key := storage.NewKey(now, "webp")

	url, err := s.storage.Put(ctx, key, storage.WebPContentType, bytes.NewReader(data))
	if err != nil {
		return nil, apperr.Persistence("store_image", err)
	}

	img := &models.GalleryImage{
		Path:        key,
		URL:         url,
		Description: strings.TrimSpace(in.Description),
		UploadedAt:  now,
	}
	if in.UserID != 0 {
		uid := in.UserID
		img.UserID = &uid
	}

	if err := s.repo.Create(ctx, img); err != nil {
		// sem registro o objeto gravado fica órfão
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			err = errors.Join(err, fmt.Errorf("remove stored image %s: %w", key, delErr))
		}
		return nil, apperr.Persistence("create_gallery_image", err)
	}

	id := img.ID
	s.audit.Dispatch(audit.Event{
		UserID:   img.UserID,
		Action:   audit.ActionGalleryUploaded,
		Entity:   "gallery_image",
		EntityID: &id,
		Metadata: map[string]any{"path": key},
	})

	return img, nil
}
