package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Uploaded covers/posters are capped at this width; smaller images
	// pass through at their own size.
	MaxWidth = 1600

	webpQuality = 85
)

// ToWebP decodes a jpeg/png upload, scales it down to MaxWidth when wider,
// and re-encodes it as webp.
func ToWebP(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	src = scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= MaxWidth {
		return src
	}

	h := b.Dy() * MaxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, MaxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
