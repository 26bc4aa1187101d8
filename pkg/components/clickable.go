package components

// ClickableComponent 标记实体可以被鼠标点击
// 页面切换开始后场景会禁用所有热区，避免重复导航
type ClickableComponent struct {
	IsEnabled bool // 是否可以被点击
}
