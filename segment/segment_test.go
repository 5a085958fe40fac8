package segment

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/league-infrastructure/flyer-template/model"
)

var green = model.RGB{R: 0x6f, G: 0xe6, B: 0x00}

// fillRect paints a solid rectangle into img.
func fillRect(img *image.NRGBA, x, y, w, h int, c model.RGB) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			img.SetNRGBA(xx, yy, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
}

func whiteImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, model.RGB{R: 255, G: 255, B: 255})
	return img
}

func TestBuildMaskBoxTest(t *testing.T) {
	img := whiteImage(10, 10)
	// Exact placeholder color.
	fillRect(img, 1, 1, 2, 2, green)
	// Within tolerance on every channel.
	fillRect(img, 5, 5, 1, 1, model.RGB{R: 0x6f + 20, G: 0xe6 - 20, B: 20})
	// One channel out of tolerance; the others within. The box test
	// must reject it even though its Euclidean distance is small.
	fillRect(img, 7, 7, 1, 1, model.RGB{R: 0x6f + 21, G: 0xe6, B: 0})

	mask := BuildMask(img, green, 20)

	if mask.GrayAt(1, 1).Y != 255 || mask.GrayAt(2, 2).Y != 255 {
		t.Error("exact placeholder pixels should be foreground")
	}
	if mask.GrayAt(5, 5).Y != 255 {
		t.Error("pixel within per-channel tolerance should be foreground")
	}
	if mask.GrayAt(7, 7).Y != 0 {
		t.Error("pixel exceeding tolerance on one channel should be background")
	}
	if mask.GrayAt(0, 0).Y != 0 {
		t.Error("white background should not match")
	}
}

func TestDetectTwoRegions(t *testing.T) {
	img := whiteImage(200, 200)
	fillRect(img, 100, 120, 80, 50, green)
	fillRect(img, 10, 10, 50, 40, green)

	regions, err := New().Detect(img, green)
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}

	// Sorted top-to-bottom: the (10,10) rectangle must come first.
	r1, r2 := regions[0], regions[1]
	if r1.ID != 1 || r2.ID != 2 {
		t.Errorf("ids = %d, %d; want 1, 2", r1.ID, r2.ID)
	}
	if r1.Box != model.NewBox(10, 10, 50, 40) {
		t.Errorf("region 1 box = %+v", r1.Box)
	}
	if r2.Box != model.NewBox(100, 120, 80, 50) {
		t.Errorf("region 2 box = %+v", r2.Box)
	}
	if r1.Contour == nil || !r1.Contour.At(10, 10) || !r1.Contour.At(59, 49) {
		t.Error("region 1 contour should cover its rectangle corners")
	}
	if r1.Contour.PixelCount() != 50*40 {
		t.Errorf("region 1 footprint = %d px, want %d", r1.Contour.PixelCount(), 50*40)
	}
}

func TestDetectNoRegions(t *testing.T) {
	img := whiteImage(50, 50)

	_, err := New().Detect(img, green)
	if err == nil {
		t.Fatal("expected error for empty mask")
	}
	if !errors.Is(err, ErrNoRegions) {
		t.Errorf("error not ErrNoRegions: %v", err)
	}
}

func TestDetectReadingOrderSameRow(t *testing.T) {
	img := whiteImage(120, 40)
	fillRect(img, 70, 10, 20, 10, green)
	fillRect(img, 10, 10, 20, 10, green)

	regions, err := New().Detect(img, green)
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
	if regions[0].X != 10 || regions[1].X != 70 {
		t.Errorf("same-row regions must be ordered left to right: %d, %d",
			regions[0].X, regions[1].X)
	}
}

// fakeFinder returns canned contours, simulating an external contour
// service.
type fakeFinder struct {
	contours []*model.Contour
}

func (f *fakeFinder) FindContours(_ *image.Gray) ([]*model.Contour, error) {
	return f.contours, nil
}

func TestDetectOrdersInjectedContours(t *testing.T) {
	boxes := []model.Box{
		model.NewBox(40, 200, 10, 10),
		model.NewBox(5, 5, 10, 10),
		model.NewBox(90, 5, 10, 10),
		model.NewBox(0, 100, 10, 10),
	}
	finder := &fakeFinder{}
	for _, b := range boxes {
		finder.contours = append(finder.contours, model.NewContour(b))
	}

	img := whiteImage(300, 300)
	regions, err := NewWithConfig(DefaultConfig(), finder).Detect(img, green)
	if err != nil {
		t.Fatal(err)
	}

	want := []model.Box{
		model.NewBox(5, 5, 10, 10),
		model.NewBox(90, 5, 10, 10),
		model.NewBox(0, 100, 10, 10),
		model.NewBox(40, 200, 10, 10),
	}
	for i, r := range regions {
		if r.ID != i+1 {
			t.Errorf("region %d id = %d, want %d", i, r.ID, i+1)
		}
		if r.Box != want[i] {
			t.Errorf("region %d box = %+v, want %+v", i, r.Box, want[i])
		}
	}
}

func TestFloodFinderMergesDiagonalPixels(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 4, 4))
	mask.SetGray(0, 0, color.Gray{Y: 255})
	mask.SetGray(1, 1, color.Gray{Y: 255})
	mask.SetGray(2, 2, color.Gray{Y: 255})

	contours, err := NewFloodFinder().FindContours(mask)
	if err != nil {
		t.Fatal(err)
	}
	if len(contours) != 1 {
		t.Fatalf("8-connected diagonal run should be one component, got %d", len(contours))
	}
	if contours[0].Box != model.NewBox(0, 0, 3, 3) {
		t.Errorf("component box = %+v", contours[0].Box)
	}
	if contours[0].PixelCount() != 3 {
		t.Errorf("footprint = %d px, want 3", contours[0].PixelCount())
	}
}
