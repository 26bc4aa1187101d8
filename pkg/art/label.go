package art

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

const (
	labelFontSize = 28
	labelPadX     = 22
	labelPadY     = 12
)

// Label 绘制悬停标签：圆角胶囊底 + 居中文字
func Label(text string, accent color.RGBA) (image.Image, error) {
	face, err := NewFace(FontBold, labelFontSize)
	if err != nil {
		return nil, fmt.Errorf("label %q: %w", text, err)
	}

	// 先用临时上下文测量文字
	measure := gg.NewContext(1, 1)
	measure.SetFontFace(face)
	tw, th := measure.MeasureString(text)

	w := int(math.Ceil(tw)) + labelPadX*2
	h := int(math.Ceil(th)) + labelPadY*2

	dc := gg.NewContext(w, h)
	dc.SetFontFace(face)

	dc.SetColor(color.RGBA{R: 20, G: 18, B: 26, A: 230})
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(h)/2)
	dc.Fill()

	dc.SetColor(accent)
	dc.SetLineWidth(3)
	dc.DrawRoundedRectangle(1.5, 1.5, float64(w)-3, float64(h)-3, float64(h)/2-1.5)
	dc.Stroke()

	dc.SetColor(color.White)
	dc.DrawStringAnchored(text, float64(w)/2, float64(h)/2, 0.5, 0.35)

	return dc.Image(), nil
}
