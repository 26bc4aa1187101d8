package systems

import (
	"log"
	"math"

	"github.com/decker502/storefront/pkg/components"
	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/ecs"
	"github.com/decker502/storefront/pkg/game"
	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
)

// HotspotSystem 悬停/目标控制器
//
// 每帧用指针位置对每个门热区做包含测试，并把结果翻译成
// PointerEnter / PointerLeave / Click 事件写入 store：
//   - 进入：Hover = 该门
//   - 离开：仅当 Hover 仍是该门时清空（离开事件只汇报自己的热区）
//   - 点击：Target = 该门 且 Motion = Walking，无条件执行（行走中点击会立即重定向）
//
// 点击闪光是热区本地的纯视觉状态，按帧倒计时，不会延迟 store 写入。
type HotspotSystem struct {
	entityManager *ecs.EntityManager
	store         *game.UIStore
	cfg           config.HotspotConfig
}

// NewHotspotSystem 创建热区系统
func NewHotspotSystem(em *ecs.EntityManager, store *game.UIStore, cfg config.HotspotConfig) *HotspotSystem {
	return &HotspotSystem{
		entityManager: em,
		store:         store,
		cfg:           cfg,
	}
}

// PointerEnter 指针进入门热区
func (s *HotspotSystem) PointerEnter(door types.Door) {
	s.store.SetHover(door)
}

// PointerLeave 指针离开门热区
func (s *HotspotSystem) PointerLeave(door types.Door) {
	if s.store.Snapshot().Hover == door {
		s.store.SetHover(types.DoorNone)
	}
}

// Click 点击门热区
func (s *HotspotSystem) Click(door types.Door) {
	log.Printf("[HotspotSystem] 点击 %v", door)
	s.store.Navigate(door)
}

// Update 处理一帧指针输入
//
// 参数：
//   - pointer: 指针在场景坐标中的位置
//   - justPressed: 本帧是否发生点击
//   - t: 场景时间（秒），用于发光脉动
//   - dt: 帧间隔（秒），用于点击闪光倒计时
//
// 返回：是否有热区处于悬停状态（场景据此切换鼠标光标）
func (s *HotspotSystem) Update(pointer utils.Point, justPressed bool, t, dt float64) bool {
	target := s.store.Snapshot().Target
	anyHovered := false

	for _, id := range ecs.GetEntitiesWith1[*components.HotspotComponent](s.entityManager) {
		hs, _ := ecs.GetComponent[*components.HotspotComponent](s.entityManager, id)

		enabled := true
		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
			enabled = clickable.IsEnabled
		}

		inside := enabled && hs.Rect.Contains(pointer)
		switch {
		case inside && !hs.Hovered:
			hs.Hovered = true
			s.PointerEnter(hs.Door)
		case !inside && hs.Hovered:
			hs.Hovered = false
			s.PointerLeave(hs.Door)
		}

		if inside && justPressed {
			hs.ClickFlashRemaining = s.cfg.ClickFlash
			s.Click(hs.Door)
			target = hs.Door
		} else if hs.ClickFlashRemaining > 0 {
			hs.ClickFlashRemaining = math.Max(0, hs.ClickFlashRemaining-dt)
		}

		hs.IsTarget = hs.Door == target
		if hs.Hovered {
			anyHovered = true
		}

		if glow, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok {
			glow.IsActive = hs.Hovered
			if hs.Hovered {
				glow.Intensity = math.Sin(t*s.cfg.GlowPulseSpeed)*s.cfg.GlowRange + s.cfg.GlowBase
				glow.Scale = 1.05 + math.Sin(t*2)*0.02
			} else {
				glow.Intensity = 0
				glow.Scale = 1.05
			}
		}
	}

	return anyHovered
}

// SetRects 视口变化时重新写入热区矩形
func (s *HotspotSystem) SetRects(layout config.ResolvedLayout) {
	for _, id := range ecs.GetEntitiesWith1[*components.HotspotComponent](s.entityManager) {
		hs, _ := ecs.GetComponent[*components.HotspotComponent](s.entityManager, id)
		if rect, ok := layout.HotspotRect(hs.Door); ok {
			hs.Rect = rect
		}
	}
}

// SetEnabled 启用或禁用全部热区
// 禁用后的下一帧，仍处于悬停的热区会收到离开事件
func (s *HotspotSystem) SetEnabled(enabled bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.ClickableComponent](s.entityManager) {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		clickable.IsEnabled = enabled
	}
}
