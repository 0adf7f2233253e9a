package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	WebPContentType = "image/webp"

	// MaxImagePixels limita largura*altura declaradas antes de decodificar.
	MaxImagePixels = 40_000_000
)

var ErrImageTooLarge = errors.New("image too large")

// ToWebP decodifica jpeg/png/webp, reduz para maxWidth mantendo a proporção
// e recodifica em webp.
func ToWebP(r io.Reader, maxWidth int, quality float32) ([]byte, error) {
	var head bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &head))
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(io.MultiReader(&head, r))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img := resize(src, maxWidth)

	if quality <= 0 || quality > 100 {
		quality = 80
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func resize(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
