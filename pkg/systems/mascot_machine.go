package systems

import (
	"math"

	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
)

// 吉祥物状态机
//
// 状态机本身是纯函数：Step(ctx, input) -> (ctx', output)。
// 所有与帧相关的簿记（行走开始时间、起点、到达时间）都保存在 MascotContext 中，
// 位置每帧根据经过时间重新计算，不依赖上一帧的增量，因此重定向时无需取消任何进行中的工作。
//
// 状态流转：
//
//	Idle ──(点击: store 写入 Walking+Target)──> Walking ──(progress≥1 或 距离<阈值)──> Arriving
//	Walking/Arriving 且没有目标 ──> Idle（兜底，不报错）
//	Arriving 为本次导航的终止状态，不会自行离开

// mascotPhase 状态机内部的阶段（带各自数据的变体）
type mascotPhase interface {
	motion() types.MotionState
}

type idlePhase struct{}

type walkingPhase struct {
	door   types.Door
	startT float64     // 进入 Walking 的时刻
	from   utils.Point // 行走起点（进入 Walking 时吉祥物所在位置）
}

type arrivingPhase struct {
	door     types.Door
	arrivedT float64
}

func (idlePhase) motion() types.MotionState     { return types.MotionIdle }
func (walkingPhase) motion() types.MotionState  { return types.MotionWalking }
func (arrivingPhase) motion() types.MotionState { return types.MotionArriving }

// MascotPose 渲染用的姿态值
type MascotPose struct {
	Rotation   float64 // 弧度，逆时针为正
	BobOffset  float64 // 垂直起伏（像素，向上为正）
	FacingLeft bool
}

// MascotContext 状态机上下文
// 零值可用：第一次 Step 时吉祥物位于入场起点
type MascotContext struct {
	phase       mascotPhase
	position    utils.Point
	pose        MascotPose
	initialized bool

	// 入场动画
	introAnchored bool    // 入场起算时刻是否已确定
	introAnchor   float64 // 入场起算时刻（挂载时为 0；启用就绪门控时为首次就绪的时刻）
	introDone     bool
}

// Motion 返回上下文当前所处的阶段
func (c MascotContext) Motion() types.MotionState {
	if c.phase == nil {
		return types.MotionIdle
	}
	return c.phase.motion()
}

// Position 返回上下文记录的位置
func (c MascotContext) Position() utils.Point {
	return c.position
}

// IntroDone 入场动画是否已结束
func (c MascotContext) IntroDone() bool {
	return c.introDone
}

// walkStart 返回当前行走的起点与开始时刻
func (c MascotContext) walkStart() (utils.Point, float64, bool) {
	w, ok := c.phase.(walkingPhase)
	if !ok {
		return utils.Point{}, 0, false
	}
	return w.from, w.startT, true
}

// MascotInput 一帧的输入
type MascotInput struct {
	T      float64           // 场景挂载以来的秒数（单调递增）
	Motion types.MotionState // store 中的运动状态
	Target types.Door        // store 中的导航目标
	Hover  types.Door        // store 中的悬停门
	Ready  bool              // 资源是否就绪
	Layout config.ResolvedLayout
}

// MascotOutput 一帧的输出
type MascotOutput struct {
	Position utils.Point
	Motion   types.MotionState
	// Transitioned 输出状态与输入状态不同，需要写回 store
	Transitioned bool
	Pose         MascotPose
}

// MascotMachine 吉祥物状态机参数
type MascotMachine struct {
	cfg config.MascotConfig
	// gateIntroOnReady 为 true 时入场动画等到资源就绪才开始
	gateIntroOnReady bool
}

// NewMascotMachine 创建状态机
func NewMascotMachine(cfg config.MascotConfig, gateIntroOnReady bool) *MascotMachine {
	return &MascotMachine{cfg: cfg, gateIntroOnReady: gateIntroOnReady}
}

// Step 执行一帧状态转换
// 每帧只执行一个状态的逻辑
func (m *MascotMachine) Step(ctx MascotContext, in MascotInput) (MascotContext, MascotOutput) {
	if !ctx.initialized {
		ctx.initialized = true
		ctx.phase = idlePhase{}
		ctx.position = in.Layout.Offscreen
	}

	var next types.MotionState
	switch in.Motion {
	case types.MotionWalking:
		ctx, next = m.stepWalking(ctx, in)
	case types.MotionArriving:
		ctx, next = m.stepArriving(ctx, in)
	default:
		ctx, next = m.stepIdle(ctx, in)
	}

	return ctx, MascotOutput{
		Position:     ctx.position,
		Motion:       next,
		Transitioned: next != in.Motion,
		Pose:         ctx.pose,
	}
}

func (m *MascotMachine) stepIdle(ctx MascotContext, in MascotInput) (MascotContext, types.MotionState) {
	cfg := m.cfg
	ctx.phase = idlePhase{}

	ctx.position = m.introPosition(&ctx, in)

	// 呼吸起伏
	ctx.pose.BobOffset = math.Sin(in.T*cfg.BreathingSpeed) * cfg.BreathingAmplitude

	// 看向悬停的门，否则缓慢摇摆
	target := math.Sin(in.T*cfg.IdleSwaySpeed) * cfg.IdleSwayAmount
	if dest, ok := in.Layout.Destination(in.Hover); ok {
		dir := direction(dest.X - ctx.position.X)
		target = -dir * cfg.LookBias
		ctx.pose.FacingLeft = dir < 0
	} else {
		ctx.pose.FacingLeft = false
	}
	ctx.pose.Rotation = utils.Approach(ctx.pose.Rotation, target, cfg.RotationBlend)

	return ctx, types.MotionIdle
}

// introPosition 计算入场滑入位置，入场结束后固定在基准位置
func (m *MascotMachine) introPosition(ctx *MascotContext, in MascotInput) utils.Point {
	if ctx.introDone {
		return in.Layout.Base
	}

	if !ctx.introAnchored {
		if m.gateIntroOnReady && !in.Ready {
			return in.Layout.Offscreen
		}
		ctx.introAnchored = true
		if m.gateIntroOnReady {
			ctx.introAnchor = in.T
		}
	}

	elapsed := in.T - ctx.introAnchor - m.cfg.IntroDelay
	progress := utils.Clamp01(elapsed / m.cfg.IntroDuration)
	if progress >= 1 {
		ctx.introDone = true
		return in.Layout.Base
	}
	return utils.LerpPoint(in.Layout.Offscreen, in.Layout.Base, utils.EaseOutCubic(progress))
}

func (m *MascotMachine) stepWalking(ctx MascotContext, in MascotInput) (MascotContext, types.MotionState) {
	cfg := m.cfg

	dest, ok := in.Layout.Destination(in.Target)
	if !ok {
		// Walking 必须有目标
		return m.stepIdle(ctx, in)
	}

	// 进入 Walking（状态变化或目标变化）时记录起点和开始时刻
	walk, walking := ctx.phase.(walkingPhase)
	if !walking || walk.door != in.Target {
		walk = walkingPhase{door: in.Target, startT: in.T, from: ctx.position}
		ctx.phase = walk
		ctx.introDone = true
	}

	progress := math.Min(math.Max((in.T-walk.startT)/cfg.WalkDuration, 0), 1)
	pos := utils.CalculatePathPosition(walk.from, dest, progress, cfg.ArcHeight)

	heading := utils.CalculateFacingAngle(walk.from, dest)
	ctx.pose.FacingLeft = math.Cos(heading) < 0

	// 时间进度与距离两个条件都要每帧检查，帧间隔不均匀时二者可能先后不一
	if progress >= 1 || utils.Distance(pos, dest) < cfg.ArrivalThreshold {
		ctx.phase = arrivingPhase{door: in.Target, arrivedT: in.T}
		ctx.position = dest
		ctx.pose.BobOffset = 0
		ctx.pose.Rotation = utils.Approach(ctx.pose.Rotation, 0, cfg.RotationBlend)
		return ctx, types.MotionArriving
	}

	ctx.position = pos
	ctx.pose.BobOffset = math.Abs(math.Sin(in.T*cfg.WalkCycleSpeed)) * cfg.WalkBobAmplitude
	lean := -direction(dest.X-walk.from.X) * cfg.WalkLean
	ctx.pose.Rotation = utils.Approach(ctx.pose.Rotation, lean, cfg.RotationBlend)

	return ctx, types.MotionWalking
}

func (m *MascotMachine) stepArriving(ctx MascotContext, in MascotInput) (MascotContext, types.MotionState) {
	cfg := m.cfg

	dest, ok := in.Layout.Destination(in.Target)
	if !ok {
		// Arriving 必须有目标
		return m.stepIdle(ctx, in)
	}

	arrive, arriving := ctx.phase.(arrivingPhase)
	if !arriving || arrive.door != in.Target {
		arrive = arrivingPhase{door: in.Target, arrivedT: in.T}
		ctx.phase = arrive
		ctx.introDone = true
	}

	// 覆盖行走阶段残留的插值误差
	ctx.position = dest

	since := in.T - arrive.arrivedT
	ctx.pose.BobOffset = cfg.SettleAmplitude * math.Sin(since*cfg.SettleFrequency) * math.Exp(-cfg.SettleDamping*since)
	ctx.pose.Rotation = utils.Approach(ctx.pose.Rotation, 0, cfg.RotationBlend)

	return ctx, types.MotionArriving
}

// direction 返回 dx 的方向：-1、0 或 1
func direction(dx float64) float64 {
	switch {
	case dx > 0:
		return 1
	case dx < 0:
		return -1
	default:
		return 0
	}
}
