package media

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

// Doctor portraits are served as fixed-size square WebP thumbnails.
const (
	portraitSize = 200

	webpQuality = 80
)

// ProcessPortrait decodes an uploaded image, scales it to a centered
// square thumbnail and re-encodes it as WebP.
func ProcessPortrait(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	thumb := image.NewRGBA(image.Rect(0, 0, portraitSize, portraitSize))
	xdraw.ApproxBiLinear.Scale(
		thumb,
		thumb.Bounds(),
		src,
		squareCrop(src.Bounds()),
		xdraw.Over,
		nil,
	)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// squareCrop returns the largest centered square inside b.
func squareCrop(b image.Rectangle) image.Rectangle {
	w := b.Dx()
	h := b.Dy()

	side := w
	if h < side {
		side = h
	}

	x0 := b.Min.X + (w-side)/2
	y0 := b.Min.Y + (h-side)/2

	return image.Rect(x0, y0, x0+side, y0+side)
}
