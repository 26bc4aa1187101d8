package components

import (
	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
)

// HotspotComponent 门热区组件
// 一扇门对应一个热区实体，矩形为场景坐标（左下角 + 宽高，Y 向上）
type HotspotComponent struct {
	// Door 热区对应的门
	Door types.Door

	// Rect 命中区域，视口变化时由场景重新写入
	Rect utils.Rect

	// Hovered 指针当前是否在热区内（热区本地状态，与 store 的 Hover 分开）
	Hovered bool

	// ClickFlashRemaining 点击闪光剩余时间（秒），纯视觉反馈
	ClickFlashRemaining float64

	// IsTarget 是否为当前导航目标（渲染目标指示框）
	IsTarget bool
}

// Clicking 点击闪光是否仍在显示
func (h *HotspotComponent) Clicking() bool {
	return h.ClickFlashRemaining > 0
}
