package systems

import (
	"log"

	"github.com/decker502/storefront/pkg/components"
	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/ecs"
	"github.com/decker502/storefront/pkg/game"
)

// MascotSystem 每帧驱动吉祥物状态机
//
// 读取 store 中的 Motion/Target/Hover/Ready，执行一步 MascotMachine，
// 然后把位置（每帧）和状态（仅在转换时）写回 store，并把姿态同步到 MascotComponent。
// 写入的字段只有 Motion（运动过程中）和 Position，与热区控制器不重叠。
type MascotSystem struct {
	entityManager *ecs.EntityManager
	store         *game.UIStore
	machine       *MascotMachine
	mascotEntity  ecs.EntityID

	ctx    MascotContext
	layout config.ResolvedLayout
}

// NewMascotSystem 创建吉祥物系统
func NewMascotSystem(em *ecs.EntityManager, store *game.UIStore, machine *MascotMachine, mascotEntity ecs.EntityID, layout config.ResolvedLayout) *MascotSystem {
	return &MascotSystem{
		entityManager: em,
		store:         store,
		machine:       machine,
		mascotEntity:  mascotEntity,
		layout:        layout,
	}
}

// SetLayout 视口变化时更新布局
func (s *MascotSystem) SetLayout(layout config.ResolvedLayout) {
	s.layout = layout
}

// Context 返回当前状态机上下文（调试 / 测试用）
func (s *MascotSystem) Context() MascotContext {
	return s.ctx
}

// Update 执行一帧
// t 为场景挂载以来的秒数
func (s *MascotSystem) Update(t float64) {
	snap := s.store.Snapshot()

	ctx, out := s.machine.Step(s.ctx, MascotInput{
		T:      t,
		Motion: snap.Motion,
		Target: snap.Target,
		Hover:  snap.Hover,
		Ready:  snap.Ready,
		Layout: s.layout,
	})
	s.ctx = ctx

	// 先写位置：订阅者看到 Arriving 时位置已经在门口
	s.store.SetMascotPosition(out.Position)
	if out.Transitioned {
		log.Printf("[MascotSystem] %v -> %v (target=%v, t=%.3f)", snap.Motion, out.Motion, snap.Target, t)
		s.store.SetMotionState(out.Motion)
	}

	if mascot, ok := ecs.GetComponent[*components.MascotComponent](s.entityManager, s.mascotEntity); ok {
		mascot.Position = out.Position
		mascot.Rotation = out.Pose.Rotation
		mascot.BobOffset = out.Pose.BobOffset
		mascot.FacingLeft = out.Pose.FacingLeft
		mascot.Motion = out.Motion
	}
}
