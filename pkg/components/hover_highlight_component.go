package components

// HoverHighlightComponent 悬停高亮组件
// 热区被悬停时的脉动发光效果
type HoverHighlightComponent struct {
	// Intensity 发光透明度（0.0 - 1.0）
	Intensity float64

	// Scale 发光框相对热区的缩放
	Scale float64

	// IsActive 是否激活
	IsActive bool
}
