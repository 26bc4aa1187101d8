package systems

import (
	"image/color"
	"math"

	"github.com/decker502/storefront/pkg/components"
	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/ecs"
	"github.com/decker502/storefront/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 店面场景渲染
//
// 渲染顺序（从底到顶）：
//   - 背景（contain 适配，居中于场景原点）
//   - 门热区：目标指示框 → 悬停发光 → 点击闪光 → 悬停标签
//   - 阴影 → 吉祥物
//
// 所有实体使用场景坐标（Y 向上），在这里统一减去视差相机偏移并转换为屏幕坐标。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.StorefrontConfig
	layout        config.ResolvedLayout

	background  *ebiten.Image
	shadowImage *ebiten.Image
}

var (
	targetIndicatorAlpha = 0.55
	clickFlashColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, cfg *config.StorefrontConfig, layout config.ResolvedLayout) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		cfg:           cfg,
		layout:        layout,
	}
}

// SetLayout 视口变化时更新布局
func (s *RenderSystem) SetLayout(layout config.ResolvedLayout) {
	s.layout = layout
}

// SetBackground 设置背景图
func (s *RenderSystem) SetBackground(img *ebiten.Image) {
	s.background = img
}

// SetShadowImage 设置阴影贴图（白色椭圆，绘制时着色）
func (s *RenderSystem) SetShadowImage(img *ebiten.Image) {
	s.shadowImage = img
}

// Draw 绘制整个店面场景
func (s *RenderSystem) Draw(screen *ebiten.Image, t float64) {
	camera := s.cameraOffset()

	s.drawBackground(screen, camera)
	s.drawHotspots(screen, camera, t)
	s.drawMascots(screen, camera)
}

// cameraOffset 读取视差相机偏移；没有相机实体时为原点
func (s *RenderSystem) cameraOffset() utils.Point {
	for _, id := range ecs.GetEntitiesWith1[*components.CameraComponent](s.entityManager) {
		cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, id)
		return cam.Offset
	}
	return utils.Point{}
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image, camera utils.Point) {
	if s.background == nil {
		screen.Fill(color.RGBA{R: 24, G: 22, B: 30, A: 255})
		return
	}

	bounds := s.background.Bounds()
	imgW, imgH := float64(bounds.Dx()), float64(bounds.Dy())
	fitW, fitH := utils.FitContain(imgW, imgH, s.layout.ViewW, s.layout.ViewH)
	if fitW == 0 {
		return
	}

	cx, cy := utils.SceneToScreen(utils.Point{}, s.layout.ViewW, s.layout.ViewH, camera)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(fitW/imgW, fitH/imgH)
	op.GeoM.Translate(cx-fitW/2, cy-fitH/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.background, op)
}

// screenRect 把场景矩形（左下角，Y 向上）转换为屏幕矩形（左上角，Y 向下）
func (s *RenderSystem) screenRect(r utils.Rect, camera utils.Point) (x, y, w, h float32) {
	sx, sy := utils.SceneToScreen(utils.Point{X: r.X, Y: r.Y + r.H}, s.layout.ViewW, s.layout.ViewH, camera)
	return float32(sx), float32(sy), float32(r.W), float32(r.H)
}

func (s *RenderSystem) drawHotspots(screen *ebiten.Image, camera utils.Point, t float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.HotspotComponent](s.entityManager) {
		hs, _ := ecs.GetComponent[*components.HotspotComponent](s.entityManager, id)
		accent := s.cfg.AccentColor(hs.Door)

		// 目标指示框
		if hs.IsTarget {
			x, y, w, h := s.screenRect(hs.Rect.Scale(1.02), camera)
			vector.StrokeRect(screen, x, y, w, h, 3, withAlpha(accent, targetIndicatorAlpha), true)
		}

		// 悬停发光
		if glow, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok && glow.IsActive {
			x, y, w, h := s.screenRect(hs.Rect.Scale(glow.Scale), camera)
			vector.DrawFilledRect(screen, x, y, w, h, withAlpha(accent, glow.Intensity), true)
		}

		// 点击闪光
		if hs.Clicking() && s.cfg.Hotspot.ClickFlash > 0 {
			alpha := hs.ClickFlashRemaining / s.cfg.Hotspot.ClickFlash * 0.6
			x, y, w, h := s.screenRect(hs.Rect, camera)
			vector.DrawFilledRect(screen, x, y, w, h, withAlpha(clickFlashColor, alpha), true)
		}

		// 悬停标签
		if hs.Hovered {
			s.drawLabel(screen, id, hs, camera, t)
		}
	}
}

// drawLabel 在门顶上方绘制标签，随时间轻微浮动
func (s *RenderSystem) drawLabel(screen *ebiten.Image, id ecs.EntityID, hs *components.HotspotComponent, camera utils.Point, t float64) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite.Image == nil {
		return
	}

	anchor := utils.Point{
		X: hs.Rect.X + hs.Rect.W/2,
		Y: hs.Rect.Y + hs.Rect.H + s.cfg.Hotspot.LabelOffset*s.layout.Scale + math.Sin(t*2)*3,
	}
	sx, sy := utils.SceneToScreen(anchor, s.layout.ViewW, s.layout.ViewH, camera)

	bounds := sprite.Image.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(s.layout.Scale, s.layout.Scale)
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite.Image, op)
}

func (s *RenderSystem) drawMascots(screen *ebiten.Image, camera utils.Point) {
	for _, id := range ecs.GetEntitiesWith2[*components.MascotComponent, *components.SpriteComponent](s.entityManager) {
		mascot, _ := ecs.GetComponent[*components.MascotComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		if shadow, ok := ecs.GetComponent[*components.ShadowComponent](s.entityManager, id); ok {
			shadow.ApplyLift(mascot.BobOffset)
			s.drawShadow(screen, mascot.Position, shadow, camera)
		}

		if sprite.Image == nil {
			continue
		}
		s.drawMascot(screen, mascot, sprite.Image, camera)
	}
}

// drawShadow 在脚底绘制椭圆阴影（不跟随起伏）
func (s *RenderSystem) drawShadow(screen *ebiten.Image, foot utils.Point, shadow *components.ShadowComponent, camera utils.Point) {
	if s.shadowImage == nil {
		return
	}

	bounds := s.shadowImage.Bounds()
	w := shadow.Width * shadow.Scale * s.layout.Scale
	h := shadow.Height * shadow.Scale * s.layout.Scale
	sx, sy := utils.SceneToScreen(foot, s.layout.ViewW, s.layout.ViewH, camera)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(sx-w/2, sy-h/2)
	op.ColorScale.Scale(0, 0, 0, shadow.CurrentAlpha())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.shadowImage, op)
}

// drawMascot 以脚底中点为锚点绘制吉祥物：翻转 → 缩放 → 旋转 → 平移
func (s *RenderSystem) drawMascot(screen *ebiten.Image, mascot *components.MascotComponent, img *ebiten.Image, camera utils.Point) {
	bounds := img.Bounds()
	imgW, imgH := float64(bounds.Dx()), float64(bounds.Dy())

	scaleX := mascot.Width * s.layout.Scale / imgW
	scaleY := mascot.Height * s.layout.Scale / imgH
	if mascot.FacingLeft {
		scaleX = -scaleX
	}

	pos := mascot.Position.Add(utils.Point{Y: mascot.BobOffset})
	sx, sy := utils.SceneToScreen(pos, s.layout.ViewW, s.layout.ViewH, camera)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-imgW/2, -imgH)
	op.GeoM.Scale(scaleX, scaleY)
	// 场景中逆时针为正，屏幕 Y 轴向下，需要取反
	op.GeoM.Rotate(-mascot.Rotation)
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// withAlpha 返回带透明度的预乘颜色
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
