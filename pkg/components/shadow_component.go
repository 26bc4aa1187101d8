package components

import "math"

// ShadowComponent 阴影组件
// 在吉祥物脚下渲染椭圆形阴影，尺寸随起伏高度变化
type ShadowComponent struct {
	// Width 阴影基础宽度 (像素)
	Width float64

	// Height 阴影基础高度 (像素)
	Height float64

	// Alpha 阴影基础透明度 (0.0-1.0)
	Alpha float32

	// Scale 当前缩放，由起伏高度推导：离地越高，阴影越小越淡
	Scale float64
}

// shadowLiftFalloff 每抬高 1 像素阴影缩小的比例
const shadowLiftFalloff = 0.02

// ApplyLift 根据离地高度（像素，向上为正）更新阴影缩放
// 向下的起伏不放大阴影
func (s *ShadowComponent) ApplyLift(lift float64) {
	s.Scale = 1 / (1 + math.Max(lift, 0)*shadowLiftFalloff)
}

// CurrentAlpha 返回按缩放衰减后的透明度
func (s *ShadowComponent) CurrentAlpha() float32 {
	return s.Alpha * float32(s.Scale)
}
