package art

import (
	"image"

	"github.com/fogleman/gg"
)

// Zebra 绘制面朝右的斑马精灵，锚点为图片底边中点（脚底）
func Zebra(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)

	legTop := fh * 0.62
	legW := fw * 0.09

	// 腿
	for _, x := range []float64{0.28, 0.4, 0.6, 0.72} {
		dc.SetRGB255(245, 245, 245)
		dc.DrawRoundedRectangle(fw*x-legW/2, legTop, legW, fh-legTop-fh*0.04, legW/2)
		dc.Fill()
		dc.SetRGB255(30, 30, 30)
		dc.DrawRectangle(fw*x-legW/2, fh*0.93, legW, fh*0.07)
		dc.Fill()
	}

	// 身体
	bodyX, bodyY := fw*0.5, fh*0.58
	bodyRX, bodyRY := fw*0.34, fh*0.14
	dc.SetRGB255(250, 250, 250)
	dc.DrawEllipse(bodyX, bodyY, bodyRX, bodyRY)
	dc.Fill()

	// 条纹
	dc.Push()
	dc.DrawEllipse(bodyX, bodyY, bodyRX, bodyRY)
	dc.Clip()
	dc.SetRGB255(28, 28, 32)
	dc.SetLineWidth(fw * 0.04)
	for i := -3; i <= 3; i++ {
		x := bodyX + float64(i)*bodyRX*0.28
		dc.MoveTo(x-fw*0.03, bodyY-bodyRY)
		dc.QuadraticTo(x+fw*0.04, bodyY, x-fw*0.02, bodyY+bodyRY)
		dc.Stroke()
	}
	dc.ResetClip()
	dc.Pop()

	// 脖子
	dc.SetRGB255(250, 250, 250)
	dc.MoveTo(fw*0.7, fh*0.5)
	dc.LineTo(fw*0.78, fh*0.22)
	dc.LineTo(fw*0.9, fh*0.26)
	dc.LineTo(fw*0.84, fh*0.56)
	dc.ClosePath()
	dc.Fill()

	// 鬃毛
	dc.SetRGB255(28, 28, 32)
	dc.SetLineWidth(fw * 0.035)
	dc.MoveTo(fw*0.71, fh*0.46)
	dc.LineTo(fw*0.78, fh*0.19)
	dc.Stroke()

	// 头
	dc.SetRGB255(250, 250, 250)
	dc.DrawEllipse(fw*0.86, fh*0.2, fw*0.11, fh*0.07)
	dc.Fill()
	dc.SetRGB255(60, 56, 64)
	dc.DrawEllipse(fw*0.95, fh*0.22, fw*0.045, fh*0.04)
	dc.Fill()

	// 耳朵
	dc.SetRGB255(250, 250, 250)
	dc.MoveTo(fw*0.8, fh*0.15)
	dc.LineTo(fw*0.82, fh*0.06)
	dc.LineTo(fw*0.86, fh*0.14)
	dc.ClosePath()
	dc.Fill()

	// 眼睛
	dc.SetRGB255(20, 20, 20)
	dc.DrawCircle(fw*0.87, fh*0.18, fw*0.018)
	dc.Fill()

	// 尾巴
	dc.SetLineWidth(fw * 0.02)
	dc.MoveTo(fw*0.17, fh*0.54)
	dc.QuadraticTo(fw*0.08, fh*0.6, fw*0.1, fh*0.72)
	dc.Stroke()

	return dc.Image()
}

// Shadow 绘制白色实心椭圆，绘制时再着色和调整透明度
func Shadow(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.DrawEllipse(float64(w)/2, float64(h)/2, float64(w)/2, float64(h)/2)
	dc.Fill()
	return dc.Image()
}
