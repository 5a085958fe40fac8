package compose

import (
	"image"
	"image/color"
	"testing"

	"github.com/league-infrastructure/flyer-template/model"
)

// embedded returns a Compositor pinned to the embedded fallback font
// so tests behave the same on any machine.
func embedded(t *testing.T, dilation int) *Compositor {
	t.Helper()
	c, err := NewWithConfig(Config{
		EdgeDilation:    dilation,
		FontSearchPaths: []string{},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

func rectRegion(id, x, y, w, h int, bg string) model.Region {
	contour := model.NewContour(model.NewBox(x, y, w, h))
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			contour.Set(xx, yy)
		}
	}
	return model.Region{
		ID:              id,
		Box:             model.NewBox(x, y, w, h),
		BackgroundColor: bg,
		Contour:         contour,
	}
}

func TestRenderTemplateDilatedRepaint(t *testing.T) {
	img := solid(100, 100, white)
	r := rectRegion(1, 20, 20, 30, 20, "#ff0000")

	out := embedded(t, 5).RenderTemplate(img, []model.Region{r})

	// Kernel side 5 grows the footprint by two pixels on every side.
	if out.NRGBAAt(18, 18) != red {
		t.Error("dilated corner should be repainted")
	}
	if out.NRGBAAt(51, 41) != red {
		t.Error("dilated far corner should be repainted")
	}
	if out.NRGBAAt(17, 20) != white {
		t.Error("pixel outside the dilated footprint should keep the source color")
	}
	if out.NRGBAAt(52, 30) != white {
		t.Error("pixel outside the dilated footprint should keep the source color")
	}
	if out.NRGBAAt(30, 30) != red {
		t.Error("footprint interior should be repainted")
	}
}

func TestRenderTemplateIrregularFootprint(t *testing.T) {
	// An L-shaped footprint with no dilation repaints exactly its own
	// pixels, leaving the notch untouched.
	contour := model.NewContour(model.NewBox(10, 10, 20, 20))
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			if x < 20 || y >= 20 {
				contour.Set(x, y)
			}
		}
	}
	r := model.Region{
		ID:              1,
		Box:             model.NewBox(10, 10, 20, 20),
		BackgroundColor: "#ff0000",
		Contour:         contour,
	}

	out := embedded(t, 1).RenderTemplate(solid(50, 50, white), []model.Region{r})

	if out.NRGBAAt(12, 12) != red || out.NRGBAAt(25, 25) != red {
		t.Error("footprint pixels should be repainted")
	}
	if out.NRGBAAt(25, 12) != white {
		t.Error("the notch is outside the footprint and must keep the source color")
	}
}

func TestRenderTemplateClipsAtImageEdge(t *testing.T) {
	img := solid(40, 40, white)
	r := rectRegion(1, 0, 0, 10, 10, "#0000ff")

	out := embedded(t, 5).RenderTemplate(img, []model.Region{r})
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("corner pixel = %v, want blue", got)
	}
}

func TestRenderReferenceOutline(t *testing.T) {
	template := solid(200, 100, white)
	r := rectRegion(1, 50, 20, 100, 60, "#ffffff")
	placeholder := model.RGB{G: 255}

	out := embedded(t, 5).RenderReference(template, []model.Region{r}, placeholder)

	// Middle of the left border edge sits under the 2px stroke.
	cr, cg, cb, _ := out.At(50, 50).RGBA()
	if cg>>8 < 200 || cr>>8 > 60 || cb>>8 > 60 {
		t.Errorf("border pixel = (%d,%d,%d), want placeholder green",
			cr>>8, cg>>8, cb>>8)
	}
}

func TestRenderReferenceLabelDrawn(t *testing.T) {
	gray := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	template := solid(300, 200, gray)
	r := rectRegion(1, 40, 40, 220, 120, "#808080")
	r.Name = "content"

	out := embedded(t, 5).RenderReference(template, []model.Region{r}, model.RGB{G: 255})

	var sawBlack, sawWhite bool
	for y := 45; y < 155; y++ {
		for x := 45; x < 255; x++ {
			cr, cg, cb, _ := out.At(x, y).RGBA()
			r8, g8, b8 := cr>>8, cg>>8, cb>>8
			if r8 < 40 && g8 < 40 && b8 < 40 {
				sawBlack = true
			}
			if r8 > 220 && g8 > 220 && b8 > 220 {
				sawWhite = true
			}
		}
	}
	if !sawBlack {
		t.Error("label fill should leave black pixels inside the region")
	}
	if !sawWhite {
		t.Error("label outline should leave white pixels inside the region")
	}
}

func TestFitLabelRespectsMinimumSize(t *testing.T) {
	c := embedded(t, 5)
	size, _ := c.fitLabel("12: somewhat long label", 10, 10)
	if size != 12 {
		t.Errorf("size = %d, want the floor of 12 even when nothing fits", size)
	}
}

func TestFitLabelGrowsWithRegion(t *testing.T) {
	c := embedded(t, 5)
	small, _ := c.fitLabel("1", 60, 30)
	large, _ := c.fitLabel("1", 400, 200)
	if large <= small {
		t.Errorf("larger region should fit a larger label: %d vs %d", small, large)
	}
}

func TestLoadLabelFontEmbeddedFallback(t *testing.T) {
	f, err := loadLabelFont("", []string{"/nonexistent/font.ttf"})
	if err != nil {
		t.Fatal(err)
	}
	if f == nil {
		t.Fatal("expected embedded fallback font")
	}
}

func TestLoadLabelFontMissingExplicitPath(t *testing.T) {
	if _, err := loadLabelFont("/nonexistent/font.ttf", nil); err == nil {
		t.Error("explicit font path that cannot load must fail")
	}
}
