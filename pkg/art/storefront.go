package art

import (
	"image"
	"image/color"

	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
	"github.com/fogleman/gg"
)

var (
	skyTop      = color.RGBA{R: 255, G: 214, B: 170, A: 255}
	skyBottom   = color.RGBA{R: 255, G: 160, B: 140, A: 255}
	facadeColor = color.RGBA{R: 58, G: 48, B: 74, A: 255}
	trimColor   = color.RGBA{R: 36, G: 30, B: 48, A: 255}
	floorColor  = color.RGBA{R: 196, G: 170, B: 140, A: 255}
	windowColor = color.RGBA{R: 255, G: 236, B: 190, A: 255}
)

// Storefront 按参考分辨率绘制店面背景
//
// 门洞位置取自 cfg 在参考分辨率下的布局，背景按 contain 方式铺满同宽高比的视口时，
// 热区与画面中的门洞重合。
func Storefront(cfg *config.StorefrontConfig) image.Image {
	w, h := int(cfg.Reference.Width), int(cfg.Reference.Height)
	layout := cfg.Layout(cfg.Reference.Width, cfg.Reference.Height)

	dc := gg.NewContext(w, h)

	// 天空渐变
	sky := gg.NewLinearGradient(0, 0, 0, float64(h))
	sky.AddColorStop(0, skyTop)
	sky.AddColorStop(1, skyBottom)
	dc.SetFillStyle(sky)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	floorY := toImage(utils.Point{Y: layout.Base.Y}, w, h).Y

	// 建筑立面
	facadeTop := float64(h) * 0.18
	dc.SetColor(facadeColor)
	dc.DrawRectangle(float64(w)*0.08, facadeTop, float64(w)*0.84, floorY-facadeTop)
	dc.Fill()

	// 屋檐
	dc.SetColor(trimColor)
	dc.DrawRectangle(float64(w)*0.05, facadeTop-40, float64(w)*0.9, 48)
	dc.Fill()

	drawAwning(dc, float64(w)*0.1, facadeTop+8, float64(w)*0.8, 70)

	// 窗户
	dc.SetColor(windowColor)
	for i := 0; i < 4; i++ {
		x := float64(w)*0.14 + float64(i)*float64(w)*0.19
		dc.DrawRoundedRectangle(x, facadeTop+130, float64(w)*0.12, float64(h)*0.16, 12)
	}
	dc.Fill()

	// 地面
	dc.SetColor(floorColor)
	dc.DrawRectangle(0, floorY, float64(w), float64(h)-floorY)
	dc.Fill()

	// 门洞
	for _, door := range types.AllDoors {
		rect, _ := layout.HotspotRect(door)
		drawDoorway(dc, rect, cfg.AccentColor(door), w, h)
	}

	return dc.Image()
}

// toImage 把参考分辨率下的场景坐标转换为图片像素坐标
func toImage(p utils.Point, w, h int) utils.Point {
	x, y := utils.SceneToScreen(p, float64(w), float64(h), utils.Point{})
	return utils.Point{X: x, Y: y}
}

func drawAwning(dc *gg.Context, x, y, width, height float64) {
	const stripes = 12
	stripeW := width / stripes
	for i := 0; i < stripes; i++ {
		if i%2 == 0 {
			dc.SetRGB255(240, 96, 96)
		} else {
			dc.SetRGB255(250, 244, 230)
		}
		sx := x + float64(i)*stripeW
		dc.MoveTo(sx, y)
		dc.LineTo(sx+stripeW, y)
		dc.LineTo(sx+stripeW, y+height)
		dc.QuadraticTo(sx+stripeW/2, y+height+18, sx, y+height)
		dc.ClosePath()
		dc.Fill()
	}
}

func drawDoorway(dc *gg.Context, rect utils.Rect, accent color.RGBA, w, h int) {
	topLeft := toImage(utils.Point{X: rect.X, Y: rect.Y + rect.H}, w, h)

	// 门框
	dc.SetColor(accent)
	dc.DrawRoundedRectangle(topLeft.X-10, topLeft.Y-10, rect.W+20, rect.H+10, 14)
	dc.Fill()

	// 门洞内部
	dc.SetRGB255(22, 18, 30)
	dc.DrawRoundedRectangle(topLeft.X, topLeft.Y, rect.W, rect.H, 8)
	dc.Fill()

	// 门口的地垫
	dc.SetColor(accent)
	dc.DrawEllipse(topLeft.X+rect.W/2, topLeft.Y+rect.H+6, rect.W*0.55, 8)
	dc.Fill()
}
