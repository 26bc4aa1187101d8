package components

import "github.com/decker502/storefront/pkg/utils"

// CameraComponent 视差相机组件
// 相机随指针轻微反向移动，每帧向目标偏移平滑逼近
type CameraComponent struct {
	// Offset 当前相机偏移（场景坐标）
	Offset utils.Point

	// Target 本帧的目标偏移
	Target utils.Point

	// Enabled 是否启用视差（关闭后偏移回到原点）
	Enabled bool
}
