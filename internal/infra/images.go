package infra

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
)

// Images above this size are decoded, downscaled and re-encoded before hitting
// disk; phone-camera product photos are routinely 3-4 MB.
const shrinkThreshold = 1 << 20 // 1 MiB

const (
	shrinkWidth = 800
	jpegQuality = 80
)

// shrinkImage decodes src (jpeg or png, by extension), resizes it to
// shrinkWidth preserving aspect ratio, and writes it as JPEG to dstPath.
func shrinkImage(src io.Reader, ext, dstPath string) error {
	var (
		img image.Image
		err error
	)
	if ext == ".png" {
		img, err = png.Decode(src)
	} else {
		img, err = jpeg.Decode(src)
	}
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	scaled := resize.Resize(shrinkWidth, 0, img, resize.Lanczos3)

	out, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return jpeg.Encode(out, scaled, &jpeg.Options{Quality: jpegQuality})
}
