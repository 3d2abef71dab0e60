package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// prepareCell applies the minimum preprocessing that makes overlay cells
// reliable for Tesseract: grayscale, a contrast bump, upscaling (the cells
// are small on a 1080p screenshot) and a global threshold.
func prepareCell(cell image.Image) image.Image {
	gray := imaging.Grayscale(cell)
	gray = imaging.AdjustContrast(gray, 15)
	if gray.Bounds().Dy() < 64 {
		gray = imaging.Resize(gray, 0, 96, imaging.Lanczos)
	}
	return binarize(gray, 180)
}

// binarize performs a simple global threshold on a grayscale image.
func binarize(img image.Image, threshold uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			gray := uint8((r + g + bb) / 3 >> 8)
			var v uint8 = 255
			if gray <= threshold {
				v = 0
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}
