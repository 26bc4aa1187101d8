package art

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Page 绘制门对应的目的地页面
// title 为门标签，route 为页面路由（显示在标题下方）
func Page(w, h int, title, route string, accent color.RGBA) (image.Image, error) {
	titleFace, err := NewFace(FontBold, 72)
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", title, err)
	}
	routeFace, err := NewFace(FontRegular, 28)
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", title, err)
	}

	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)

	bg := gg.NewLinearGradient(0, 0, fw, fh)
	bg.AddColorStop(0, color.RGBA{R: 26, G: 22, B: 36, A: 255})
	bg.AddColorStop(1, color.RGBA{R: 44, G: 34, B: 58, A: 255})
	dc.SetFillStyle(bg)
	dc.DrawRectangle(0, 0, fw, fh)
	dc.Fill()

	// 强调色横条
	dc.SetColor(accent)
	dc.DrawRectangle(0, fh*0.3, fw, 6)
	dc.Fill()

	dc.SetFontFace(titleFace)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(title, fw/2, fh*0.45, 0.5, 0.5)

	dc.SetFontFace(routeFace)
	dc.SetColor(accent)
	dc.DrawStringAnchored(route, fw/2, fh*0.45+70, 0.5, 0.5)

	return dc.Image(), nil
}
