package model

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

var ErrInvalidImage = errors.New("invalid image data")

// MaxDimension bounds each side of an accepted image. Object counting
// allocates several buffers per pixel.
const MaxDimension = 4096

// DecodeBase64Image decodes a base64 PNG, JPEG or GIF. A data-URL prefix
// ("data:image/png;base64,") is stripped first. Images wider or taller than
// MaxDimension are rejected before their pixels are decoded.
func DecodeBase64Image(s string) (image.Image, error) {
	if _, payload, ok := strings.Cut(s, ","); ok {
		s = payload
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrInvalidImage, cfg.Width, cfg.Height, MaxDimension, MaxDimension)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}
