package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Defaults for pre-upload image compression.
const (
	DefaultMaxWidth = 1920
	DefaultQuality  = 80
)

// allowedImageTypes is the upload allow-list.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// AllowedImageType reports whether contentType is an accepted image format.
func AllowedImageType(contentType string) bool {
	return allowedImageTypes[contentType]
}

// WithinSizeLimit reports whether size is at most maxSizeMB megabytes.
func WithinSizeLimit(size int64, maxSizeMB int) bool {
	return size <= int64(maxSizeMB)*1024*1024
}

// Compress downsizes an image to at most maxWidth pixels wide, preserving
// aspect ratio, and re-encodes it as JPEG at the given quality (1-100).
// Images already within maxWidth are re-encoded without scaling. The input
// is never written anywhere; this is a pure transformation used to bound
// upload size.
func Compress(data []byte, maxWidth, quality int) ([]byte, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("storage: decode image: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxWidth {
		height = height * maxWidth / width
		width = maxWidth
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("storage: encode image: %w", err)
	}
	return buf.Bytes(), nil
}
