package ocr

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestBinarizeIsBlackAndWhite(t *testing.T) {
	img := imaging.New(8, 8, color.NRGBA{120, 130, 140, 255})
	out := binarize(img, 180)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			if !(r == g && g == b) || (r != 0 && r != 0xffff) {
				t.Fatalf("pixel (%d,%d) not pure black/white: r=%d g=%d b=%d", x, y, r, g, b)
			}
		}
	}
}

func TestPrepareCellUpscalesSmallCrops(t *testing.T) {
	cell := imaging.New(90, 30, color.NRGBA{255, 255, 255, 255})
	prep := prepareCell(cell)
	if prep.Bounds().Dy() < 64 {
		t.Fatalf("expected upscaled cell, got height %d", prep.Bounds().Dy())
	}
}
