package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/gallery"
)

const maxUploadBytes = 10 << 20

type GalleryHandler struct {
	gallery *gallery.Service
}

func NewGalleryHandler(svc *gallery.Service) *GalleryHandler {
	return &GalleryHandler{gallery: svc}
}

func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.gallery.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, images)
}

// POST /api/me/gallery (multipart: image, description)
func (h *GalleryHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.FromError(c, apperr.Missing("image"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.FromError(c, apperr.Invalid("image", "invalid_image"))
		return
	}
	defer f.Close()

	userID, _ := middleware.UserID(c)

	img, err := h.gallery.Upload(c.Request.Context(), gallery.UploadInput{
		UserID:      userID,
		Description: c.PostForm("description"),
		Image:       f,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, img)
}
