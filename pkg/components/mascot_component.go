package components

import (
	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
)

// MascotComponent 吉祥物姿态组件
// 由 MascotSystem 每帧写入，RenderSystem 只读
type MascotComponent struct {
	// Position 脚底位置（场景坐标）
	Position utils.Point

	// Rotation 绕脚底的旋转（弧度，逆时针为正）
	Rotation float64

	// BobOffset 垂直起伏（呼吸 / 步伐 / 到达后的回弹），只影响绘制位置
	BobOffset float64

	// FacingLeft 是否水平翻转精灵
	FacingLeft bool

	// Motion 当前运动状态（用于调试显示）
	Motion types.MotionState

	// Width, Height 精灵绘制尺寸（像素）
	Width, Height float64
}
