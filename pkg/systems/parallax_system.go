package systems

import (
	"github.com/decker502/storefront/pkg/components"
	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/ecs"
	"github.com/decker502/storefront/pkg/utils"
)

// ParallaxSystem 视差相机
//
// 相机随指针做轻微的反向移动（X 取反，Y 同向），每帧以固定系数向目标逼近，不会瞬间跳变。
// 与共享 UI 状态没有数据依赖，只与其他系统共用帧回调。
type ParallaxSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.ParallaxConfig
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewParallaxSystem 创建视差相机系统，并创建相机实体
func NewParallaxSystem(em *ecs.EntityManager, cfg config.ParallaxConfig, enabled bool) *ParallaxSystem {
	ps := &ParallaxSystem{
		entityManager: em,
		cfg:           cfg,
	}

	ps.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, ps.cameraEntity, &components.CameraComponent{
		Enabled: enabled,
	})

	return ps
}

// Update 根据归一化指针位置更新相机偏移
// pointer 为归一化到 [-1, 1] 的指针位置（Y 向上）
func (ps *ParallaxSystem) Update(pointer utils.Point) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](ps.entityManager, ps.cameraEntity)
	if !ok {
		return
	}

	if cam.Enabled {
		cam.Target = utils.Point{
			X: -pointer.X * ps.cfg.Amount,
			Y: pointer.Y * ps.cfg.Amount,
		}
	} else {
		cam.Target = utils.Point{}
	}

	cam.Offset = utils.Point{
		X: utils.Approach(cam.Offset.X, cam.Target.X, ps.cfg.Blend),
		Y: utils.Approach(cam.Offset.Y, cam.Target.Y, ps.cfg.Blend),
	}
}

// SetEnabled 开关视差效果；关闭后相机平滑回到原点
func (ps *ParallaxSystem) SetEnabled(enabled bool) {
	if cam, ok := ecs.GetComponent[*components.CameraComponent](ps.entityManager, ps.cameraEntity); ok {
		cam.Enabled = enabled
	}
}

// Offset 返回当前相机偏移
func (ps *ParallaxSystem) Offset() utils.Point {
	cam, ok := ecs.GetComponent[*components.CameraComponent](ps.entityManager, ps.cameraEntity)
	if !ok {
		return utils.Point{}
	}
	return cam.Offset
}
