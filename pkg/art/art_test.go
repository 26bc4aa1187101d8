package art

import (
	"image/color"
	"testing"

	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
)

func TestNewFace(t *testing.T) {
	for _, style := range []FontStyle{FontRegular, FontBold} {
		face, err := NewFace(style, 24)
		if err != nil {
			t.Fatalf("NewFace(%d) error: %v", style, err)
		}
		if face.Metrics().Height <= 0 {
			t.Errorf("NewFace(%d) has no height", style)
		}
	}

	if _, err := NewFace(FontStyle(99), 24); err == nil {
		t.Error("unknown style should fail")
	}
}

// TestStorefrontDoorways 背景尺寸等于参考分辨率，门洞位置画成门洞内部颜色
func TestStorefrontDoorways(t *testing.T) {
	cfg := config.DefaultStorefrontConfig()
	img := Storefront(cfg)

	b := img.Bounds()
	if b.Dx() != int(cfg.Reference.Width) || b.Dy() != int(cfg.Reference.Height) {
		t.Fatalf("size = %dx%d, want reference size", b.Dx(), b.Dy())
	}

	layout := cfg.Layout(cfg.Reference.Width, cfg.Reference.Height)
	for _, door := range types.AllDoors {
		rect, _ := layout.HotspotRect(door)
		c := toImage(rect.Center(), b.Dx(), b.Dy())
		r, g, bl, _ := img.At(int(c.X), int(c.Y)).RGBA()
		if r>>8 != 22 || g>>8 != 18 || bl>>8 != 30 {
			t.Errorf("%v doorway centre colour = (%d,%d,%d), want doorway interior", door, r>>8, g>>8, bl>>8)
		}
	}
}

func TestToImage(t *testing.T) {
	got := toImage(utils.Point{X: -960, Y: 540}, 1920, 1080)
	if got != (utils.Point{X: 0, Y: 0}) {
		t.Errorf("toImage() = %+v, want top-left corner", got)
	}
}

func TestZebraAndShadow(t *testing.T) {
	z := Zebra(150, 260)
	if z.Bounds().Dx() != 150 || z.Bounds().Dy() != 260 {
		t.Errorf("zebra size = %v", z.Bounds())
	}
	// 身体中心是白色
	if _, _, _, a := z.At(75, int(float64(z.Bounds().Dy())*0.58)).RGBA(); a == 0 {
		t.Error("zebra body should be opaque")
	}
	// 左上角透明
	if _, _, _, a := z.At(0, 0).RGBA(); a != 0 {
		t.Error("zebra corner should be transparent")
	}

	s := Shadow(64, 16)
	if _, _, _, a := s.At(32, 8).RGBA(); a == 0 {
		t.Error("shadow centre should be opaque")
	}
}

func TestLabel(t *testing.T) {
	short, err := Label("VCs", color.RGBA{R: 255, G: 209, B: 102, A: 255})
	if err != nil {
		t.Fatalf("Label() error: %v", err)
	}
	long, err := Label("Founders", color.RGBA{R: 255, G: 107, B: 157, A: 255})
	if err != nil {
		t.Fatalf("Label() error: %v", err)
	}

	if long.Bounds().Dx() <= short.Bounds().Dx() {
		t.Errorf("longer text should give a wider label: %d <= %d", long.Bounds().Dx(), short.Bounds().Dx())
	}
	if short.Bounds().Dy() <= labelPadY*2 {
		t.Errorf("label height %d should include the text", short.Bounds().Dy())
	}
}

func TestPage(t *testing.T) {
	img, err := Page(640, 360, "Founders", "/app/founders", color.RGBA{R: 255, G: 107, B: 157, A: 255})
	if err != nil {
		t.Fatalf("Page() error: %v", err)
	}
	if img.Bounds().Dx() != 640 || img.Bounds().Dy() != 360 {
		t.Errorf("page size = %v", img.Bounds())
	}
	// 强调色横条
	r, g, b, _ := img.At(10, int(360*0.3)+2).RGBA()
	if r>>8 != 255 || g>>8 != 107 || b>>8 != 157 {
		t.Errorf("accent bar colour = (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}
