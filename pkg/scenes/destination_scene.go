package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/storefront/pkg/art"
	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/game"
	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 返回按钮（屏幕坐标，左上角）
const (
	backButtonX      = 24
	backButtonY      = 24
	backButtonWidth  = 120
	backButtonHeight = 44
)

// DestinationOptions 目的地页面场景的依赖
type DestinationOptions struct {
	Config    *config.StorefrontConfig
	Resources *game.ResourceManager
	Door      types.Door

	// OnBack 点击返回按钮或按 Esc 时调用（通常加载店面路由）
	OnBack func()

	Input  InputSource
	Cursor CursorSetter

	// BackKey 本帧是否按下返回键，nil 时检测 Esc
	BackKey func() bool
}

// DestinationScene 门对应的目的地页面
// 显示整页图片（contain 适配）和左上角的返回按钮
type DestinationScene struct {
	cfg             *config.StorefrontConfig
	resourceManager *game.ResourceManager
	door            types.Door

	onBack  func()
	input   InputSource
	cursor  CursorSetter
	backKey func() bool

	page         *ebiten.Image
	font         *text.GoTextFace
	backHovered  bool
	leaving      bool
	viewW, viewH int
}

// NewDestinationScene 创建目的地页面场景
func NewDestinationScene(opts DestinationOptions) *DestinationScene {
	s := &DestinationScene{
		cfg:             opts.Config,
		resourceManager: opts.Resources,
		door:            opts.Door,
		onBack:          opts.OnBack,
		input:           opts.Input,
		cursor:          opts.Cursor,
		backKey:         opts.BackKey,
		viewW:           config.GameWindowWidth,
		viewH:           config.GameWindowHeight,
	}
	if s.input == nil {
		s.input = utils.GetInputState
	}
	if s.cursor == nil {
		s.cursor = ebiten.SetCursorShape
	}
	if s.backKey == nil {
		s.backKey = func() bool { return inpututil.IsKeyJustPressed(ebiten.KeyEscape) }
	}
	if s.resourceManager == nil {
		s.resourceManager = game.NewResourceManager()
	}

	// 直接启动到页面路由时页面图还没有生成
	QueuePageAssets(s.resourceManager, s.cfg)

	if face, err := s.resourceManager.LoadFont(art.FontBold, 18); err == nil {
		s.font = face
	} else {
		log.Printf("[DestinationScene] Warning: 加载字体失败: %v", err)
	}

	log.Printf("[DestinationScene] 打开 %v (%s)", s.door, s.cfg.Door(s.door).Route)
	return s
}

// Door 返回页面对应的门
func (s *DestinationScene) Door() types.Door {
	return s.door
}

// SetViewport 记录视口尺寸
func (s *DestinationScene) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		s.viewW, s.viewH = width, height
	}
}

// Update 更新一帧
func (s *DestinationScene) Update(deltaTime float64) {
	if s.page == nil {
		s.resourceManager.Update(assetBudgetPerFrame)
		s.page = s.resourceManager.GetImage(game.PageImageID(s.door.Key()))
	}

	in := s.input()
	s.backHovered = backButtonContains(in.X, in.Y)
	if s.backHovered {
		s.cursor(ebiten.CursorShapePointer)
	} else {
		s.cursor(ebiten.CursorShapeDefault)
	}

	if (s.backHovered && in.JustPressed) || s.backKey() {
		s.goBack()
	}
}

// goBack 每个页面实例只触发一次返回
func (s *DestinationScene) goBack() {
	if s.leaving {
		return
	}
	s.leaving = true
	log.Printf("[DestinationScene] 返回店面")
	if s.onBack != nil {
		s.onBack()
	}
}

func backButtonContains(x, y int) bool {
	return x >= backButtonX && x < backButtonX+backButtonWidth &&
		y >= backButtonY && y < backButtonY+backButtonHeight
}

// Draw 绘制页面
func (s *DestinationScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 246, G: 244, B: 240, A: 255})

	if s.page != nil {
		bounds := s.page.Bounds()
		w, h := utils.FitContain(float64(bounds.Dx()), float64(bounds.Dy()), float64(s.viewW), float64(s.viewH))

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
		op.GeoM.Translate((float64(s.viewW)-w)/2, (float64(s.viewH)-h)/2)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(s.page, op)
	}

	s.drawBackButton(screen)
}

func (s *DestinationScene) drawBackButton(screen *ebiten.Image) {
	accent := s.cfg.AccentColor(s.door)
	fill := color.RGBA{R: 20, G: 18, B: 26, A: 220}
	if s.backHovered {
		fill = accent
	}

	vector.DrawFilledRect(screen, backButtonX, backButtonY, backButtonWidth, backButtonHeight, fill, true)
	vector.StrokeRect(screen, backButtonX, backButtonY, backButtonWidth, backButtonHeight, 2, accent, true)

	if s.font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(backButtonX+backButtonWidth/2, backButtonY+backButtonHeight/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	if s.backHovered {
		op.ColorScale.ScaleWithColor(color.RGBA{R: 20, G: 18, B: 26, A: 255})
	}
	text.Draw(screen, "< Back", s.font, op)
}

// Dispose 离开页面时恢复默认光标
func (s *DestinationScene) Dispose() {
	s.cursor(ebiten.CursorShapeDefault)
}
