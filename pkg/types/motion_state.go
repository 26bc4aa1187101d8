package types

// MotionState 吉祥物当前所处的动画阶段
type MotionState int

const (
	// MotionIdle 在基准位置休息（含入场滑入）
	MotionIdle MotionState = iota
	// MotionWalking 正在走向导航目标
	MotionWalking
	// MotionArriving 已到达目标门口（本次导航的终止状态）
	MotionArriving
)

// String 返回状态的字符串表示
func (s MotionState) String() string {
	switch s {
	case MotionIdle:
		return "idle"
	case MotionWalking:
		return "walking"
	case MotionArriving:
		return "arriving"
	default:
		return "unknown"
	}
}

// RequiresTarget 返回该状态是否必须有导航目标
func (s MotionState) RequiresTarget() bool {
	return s == MotionWalking || s == MotionArriving
}
