package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/storefront/pkg/art"
	"github.com/decker502/storefront/pkg/components"
	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/ecs"
	"github.com/decker502/storefront/pkg/game"
	"github.com/decker502/storefront/pkg/systems"
	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// InputSource 每帧读取指针输入（测试中替换为脚本输入）
type InputSource func() utils.InputState

// CursorSetter 设置鼠标光标形状
type CursorSetter func(shape ebiten.CursorShapeType)

// StorefrontOptions 店面场景的依赖
type StorefrontOptions struct {
	Config    *config.StorefrontConfig
	Resources *game.ResourceManager
	Navigator systems.Navigator

	// Settings 为 nil 时使用默认显示设置
	Settings *game.SettingsManager

	// Input / Cursor 为 nil 时使用 Ebiten 的真实输入和光标
	Input  InputSource
	Cursor CursorSetter
}

// StorefrontScene 店面场景
//
// 每次挂载都创建新的共享 UI 状态和 ECS 世界，离开场景时丢弃，
// 因此从目的地页面返回时吉祥物会重新入场。
//
// 每帧的系统顺序：
//
//	资源生成 → 热区（指针事件写入 store）→ 视差相机 → 吉祥物状态机 → 导航协作者
type StorefrontScene struct {
	cfg             *config.StorefrontConfig
	resourceManager *game.ResourceManager
	settings        *game.SettingsManager
	input           InputSource
	cursor          CursorSetter

	store         *game.UIStore
	entityManager *ecs.EntityManager

	hotspotSystem    *systems.HotspotSystem
	mascotSystem     *systems.MascotSystem
	parallaxSystem   *systems.ParallaxSystem
	navigationSystem *systems.NavigationSystem
	renderSystem     *systems.RenderSystem

	mascotEntity    ecs.EntityID
	hotspotEntities map[types.Door]ecs.EntityID

	layout       config.ResolvedLayout
	viewW, viewH int

	t          float64 // 场景挂载以来的秒数
	assetsDone bool
	hudFont    *text.GoTextFace
}

// NewStorefrontScene 创建店面场景
func NewStorefrontScene(opts StorefrontOptions) *StorefrontScene {
	s := &StorefrontScene{
		cfg:             opts.Config,
		resourceManager: opts.Resources,
		settings:        opts.Settings,
		input:           opts.Input,
		cursor:          opts.Cursor,
		store:           game.NewUIStore(),
		entityManager:   ecs.NewEntityManager(),
		hotspotEntities: make(map[types.Door]ecs.EntityID),
		viewW:           config.GameWindowWidth,
		viewH:           config.GameWindowHeight,
	}
	if s.input == nil {
		s.input = utils.GetInputState
	}
	if s.cursor == nil {
		s.cursor = ebiten.SetCursorShape
	}
	if s.resourceManager == nil {
		s.resourceManager = game.NewResourceManager()
	}

	display := game.DefaultSettings()
	if s.settings != nil {
		display = s.settings.GetSettings()
	}

	s.layout = s.cfg.Layout(float64(s.viewW), float64(s.viewH))

	s.initEntities()

	s.hotspotSystem = systems.NewHotspotSystem(s.entityManager, s.store, s.cfg.Hotspot)
	s.parallaxSystem = systems.NewParallaxSystem(s.entityManager, s.cfg.Parallax, display.ParallaxEnabled)
	machine := systems.NewMascotMachine(s.cfg.Mascot, display.GateIntroOnReady)
	s.mascotSystem = systems.NewMascotSystem(s.entityManager, s.store, machine, s.mascotEntity, s.layout)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, s.cfg, s.layout)

	navigator := opts.Navigator
	if navigator == nil {
		navigator = systems.NavigatorFunc(func(door types.Door) {
			log.Printf("[StorefrontScene] 没有导航器，忽略到达 %v", door)
		})
	}
	s.navigationSystem = systems.NewNavigationSystem(s.store, navigator, s.cfg.Navigation.Delay)

	QueueStorefrontAssets(s.resourceManager, s.cfg)

	if face, err := s.resourceManager.LoadFont(art.FontRegular, 16); err == nil {
		s.hudFont = face
	} else {
		log.Printf("[StorefrontScene] Warning: 加载字体失败: %v", err)
	}

	log.Printf("[StorefrontScene] 挂载完成，等待 %d 个资源", s.resourceManager.Pending())
	return s
}

// initEntities 创建门热区实体和吉祥物实体
func (s *StorefrontScene) initEntities() {
	for _, door := range types.AllDoors {
		id := s.entityManager.CreateEntity()
		rect, _ := s.layout.HotspotRect(door)
		ecs.AddComponent(s.entityManager, id, &components.HotspotComponent{Door: door, Rect: rect})
		ecs.AddComponent(s.entityManager, id, &components.HoverHighlightComponent{Scale: 1.05})
		ecs.AddComponent(s.entityManager, id, &components.ClickableComponent{IsEnabled: true})
		ecs.AddComponent(s.entityManager, id, &components.SpriteComponent{})
		s.hotspotEntities[door] = id
	}

	s.mascotEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.mascotEntity, &components.MascotComponent{
		Position: s.layout.Offscreen,
		Width:    s.cfg.Mascot.SpriteWidth,
		Height:   s.cfg.Mascot.SpriteHeight,
	})
	ecs.AddComponent(s.entityManager, s.mascotEntity, &components.SpriteComponent{})
	ecs.AddComponent(s.entityManager, s.mascotEntity, &components.ShadowComponent{
		Width:  s.cfg.Mascot.SpriteWidth * 0.8,
		Height: 22,
		Alpha:  0.35,
		Scale:  1,
	})
}

// UIStore 返回场景的共享 UI 状态
func (s *StorefrontScene) UIStore() *game.UIStore {
	return s.store
}

// SetViewport 视口变化时重新解析布局
func (s *StorefrontScene) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.viewW, s.viewH = width, height
	s.layout = s.cfg.Layout(float64(width), float64(height))

	s.hotspotSystem.SetRects(s.layout)
	s.mascotSystem.SetLayout(s.layout)
	s.renderSystem.SetLayout(s.layout)
}

// Update 更新一帧
func (s *StorefrontScene) Update(deltaTime float64) {
	s.t += deltaTime

	if !s.assetsDone && s.resourceManager.Update(assetBudgetPerFrame) {
		s.attachImages()
		s.assetsDone = true
		s.store.SetReady(true)
		log.Printf("[StorefrontScene] 资源就绪 (t=%.2f)", s.t)
	}

	if s.settings != nil {
		s.parallaxSystem.SetEnabled(s.settings.GetSettings().ParallaxEnabled)
	}

	in := s.input()
	pointer := utils.ScreenToScene(float64(in.X), float64(in.Y), s.layout.ViewW, s.layout.ViewH, s.parallaxSystem.Offset())

	hovered := s.hotspotSystem.Update(pointer, in.JustPressed, s.t, deltaTime)
	if hovered {
		s.cursor(ebiten.CursorShapePointer)
	} else {
		s.cursor(ebiten.CursorShapeDefault)
	}

	s.parallaxSystem.Update(utils.NormalizePointer(float64(in.X), float64(in.Y), float64(s.viewW), float64(s.viewH)))
	s.mascotSystem.Update(s.t)
	s.navigationSystem.Update(deltaTime)
}

// attachImages 资源生成完成后把图片挂到实体和渲染系统上
func (s *StorefrontScene) attachImages() {
	rm := s.resourceManager

	s.renderSystem.SetBackground(rm.GetImage(game.ImageStorefront))
	s.renderSystem.SetShadowImage(rm.GetImage(game.ImageShadow))

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.mascotEntity); ok {
		sprite.Image = rm.GetImage(game.ImageZebra)
	}
	for door, id := range s.hotspotEntities {
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.Image = rm.GetImage(game.LabelImageID(door.Key()))
		}
	}
}

// Draw 绘制场景
func (s *StorefrontScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.t)

	if !s.assetsDone {
		s.drawLoadingBar(screen)
	}
	s.drawHUD(screen)
}

// drawLoadingBar 资源生成期间在底部显示进度条
func (s *StorefrontScene) drawLoadingBar(screen *ebiten.Image) {
	w := float32(s.viewW) * 0.4
	x := (float32(s.viewW) - w) / 2
	y := float32(s.viewH) - 40

	vector.DrawFilledRect(screen, x, y, w, 8, color.RGBA{R: 255, G: 255, B: 255, A: 60}, true)
	vector.DrawFilledRect(screen, x, y, w*float32(s.resourceManager.Progress()), 8, color.RGBA{R: 255, G: 209, B: 102, A: 255}, true)
}

// drawHUD 左上角显示快捷键提示和当前状态
func (s *StorefrontScene) drawHUD(screen *ebiten.Image) {
	if s.hudFont == nil {
		return
	}

	snap := s.store.Snapshot()
	line := snap.Motion.String()
	// 触摸设备没有键盘快捷键
	if !utils.IsMobile() {
		line = fmt.Sprintf("F11 fullscreen  P parallax   %s", line)
	}
	if snap.Target.Valid() {
		line += " -> " + snap.Target.String()
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 10)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 255, B: 255, A: 180})
	text.Draw(screen, line, s.hudFont, op)
}

// Dispose 离开场景时取消订阅
func (s *StorefrontScene) Dispose() {
	s.navigationSystem.Close()
	s.cursor(ebiten.CursorShapeDefault)
}
