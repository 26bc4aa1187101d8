package utils

import "math"

// CalculatePathPosition 计算路径在进度 progress 处的位置
//
// 先对进度做 EaseInOutCubic 缓动，再在 start→end 之间线性插值，
// 最后在 Y 上叠加 sin(缓动进度·π)·arcHeight 的弧线：两端为 0，中点最高。
// arcHeight <= 0 时退化为纯缓动直线运动。
//
// 纯函数：相同输入永远得到相同输出，调用方可以每帧根据经过时间重新计算位置而不会累积误差。
// progress 不做截断，调用方负责传入 [0, 1] 内的值。
func CalculatePathPosition(start, end Point, progress, arcHeight float64) Point {
	eased := EaseInOutCubic(progress)
	pos := LerpPoint(start, end, eased)

	if arcHeight > 0 {
		pos.Y += math.Sin(eased*math.Pi) * arcHeight
	}

	return pos
}

// CalculateFacingAngle 从 from 看向 to 的朝向角（弧度）
func CalculateFacingAngle(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}
