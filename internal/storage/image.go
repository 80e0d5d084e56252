package storage

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif" // register decoder for sniffing

	"golang.org/x/image/draw"
)

// maxImageWidth bounds stored upload photos; anything wider gets
// downscaled proportionally before it hits the store.
const maxImageWidth = 1280

// NormalizeImage downscales oversized JPEG and PNG uploads. Content that
// is not a decodable image, or already within bounds, passes through
// untouched.
func NormalizeImage(content []byte) []byte {
	src, format, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return content
	}

	bounds := src.Bounds()
	if bounds.Dx() <= maxImageWidth {
		return content
	}

	height := bounds.Dy() * maxImageWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85})
	case "png":
		err = png.Encode(&buf, dst)
	default:
		return content
	}
	if err != nil {
		return content
	}
	return buf.Bytes()
}
