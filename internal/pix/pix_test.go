package pix

import (
	"image"
	"image/color"
	"testing"

	"github.com/league-infrastructure/flyer-template/model"
)

func TestAtMatchesAcrossRepresentations(t *testing.T) {
	want := model.RGB{R: 10, G: 200, B: 45}

	nrgba := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	nrgba.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 200, B: 45, A: 255})

	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	rgba.SetRGBA(2, 1, color.RGBA{R: 10, G: 200, B: 45, A: 255})

	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(2, 1, color.Gray{Y: 99})

	if got := At(nrgba, 2, 1); got != want {
		t.Errorf("NRGBA: got %v", got)
	}
	if got := At(rgba, 2, 1); got != want {
		t.Errorf("RGBA: got %v", got)
	}
	if got := At(gray, 2, 1); got != (model.RGB{R: 99, G: 99, B: 99}) {
		t.Errorf("generic fallback: got %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.SetNRGBA(1, 1, color.NRGBA{R: 50, A: 255})

	out := Clone(src)
	out.SetNRGBA(1, 1, color.NRGBA{R: 200, A: 255})

	if src.NRGBAAt(1, 1).R != 50 {
		t.Error("mutating the clone must not touch the source")
	}
	if out.Bounds().Min != (image.Point{}) {
		t.Errorf("clone origin = %v, want zero", out.Bounds().Min)
	}
}

func TestCloneNormalizesOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 8))
	src.SetNRGBA(6, 6, color.NRGBA{B: 77, A: 255})

	out := Clone(src)
	if out.Bounds() != image.Rect(0, 0, 3, 3) {
		t.Fatalf("clone bounds = %v", out.Bounds())
	}
	if out.NRGBAAt(1, 1).B != 77 {
		t.Error("pixel content must survive the origin shift")
	}
}
