package scenes

import (
	"math"
	"testing"

	"github.com/decker502/storefront/pkg/components"
	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/ecs"
	"github.com/decker502/storefront/pkg/game"
	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const frame = 1.0 / 60

// scriptedInput 测试用的指针输入，点击只持续一帧
type scriptedInput struct {
	state utils.InputState
}

func (s *scriptedInput) read() utils.InputState {
	st := s.state
	s.state.JustPressed = false
	return st
}

func (s *scriptedInput) moveTo(x, y float64) {
	s.state.X, s.state.Y = int(math.Round(x)), int(math.Round(y))
}

// cursorRecorder 记录最后一次设置的光标
type cursorRecorder struct {
	last ebiten.CursorShapeType
	sets int
}

func (c *cursorRecorder) set(shape ebiten.CursorShapeType) {
	c.last = shape
	c.sets++
}

type recordingNavigator struct {
	calls []types.Door
}

func (r *recordingNavigator) NavigateTo(door types.Door) {
	r.calls = append(r.calls, door)
}

type storefrontFixture struct {
	scene  *StorefrontScene
	rm     *game.ResourceManager
	input  *scriptedInput
	cursor *cursorRecorder
	nav    *recordingNavigator
	cfg    *config.StorefrontConfig
}

func newStorefrontFixture(t *testing.T, settings *game.SettingsManager) *storefrontFixture {
	t.Helper()
	f := &storefrontFixture{
		rm:     game.NewResourceManager(),
		input:  &scriptedInput{},
		cursor: &cursorRecorder{},
		nav:    &recordingNavigator{},
		cfg:    config.DefaultStorefrontConfig(),
	}
	f.scene = NewStorefrontScene(StorefrontOptions{
		Config:    f.cfg,
		Resources: f.rm,
		Navigator: f.nav,
		Settings:  settings,
		Input:     f.input.read,
		Cursor:    f.cursor.set,
	})
	t.Cleanup(f.scene.Dispose)
	return f
}

// drain 跑帧直到资源就绪
func (f *storefrontFixture) drain(t *testing.T) int {
	t.Helper()
	for i := 1; i <= 20; i++ {
		f.scene.Update(frame)
		if f.scene.UIStore().Snapshot().Ready {
			return i
		}
	}
	t.Fatal("assets never became ready")
	return 0
}

// pointAt 把指针移到门热区中心（使用当前相机偏移）
func (f *storefrontFixture) pointAt(door types.Door) {
	rect, _ := f.scene.layout.HotspotRect(door)
	sx, sy := utils.SceneToScreen(rect.Center(), f.scene.layout.ViewW, f.scene.layout.ViewH, f.scene.parallaxSystem.Offset())
	f.input.moveTo(sx, sy)
}

// TestStorefrontAssetsBecomeReady 资源按帧预算生成，队列清空后标记就绪
func TestStorefrontAssetsBecomeReady(t *testing.T) {
	f := newStorefrontFixture(t, nil)

	if f.scene.UIStore().Snapshot().Ready {
		t.Fatal("scene should not be ready before any update")
	}
	// 店面 + 斑马 + 阴影 + 2 个标签 + 2 个页面
	if got := f.rm.Pending(); got != 7 {
		t.Fatalf("Pending() = %d, want 7", got)
	}

	frames := f.drain(t)
	if frames != 4 {
		t.Errorf("ready after %d frames, want 4 with a budget of %d", frames, assetBudgetPerFrame)
	}
	if len(f.rm.Failures()) != 0 {
		t.Errorf("unexpected failures: %v", f.rm.Failures())
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](f.scene.entityManager, f.scene.mascotEntity)
	if !ok || sprite.Image == nil {
		t.Error("mascot sprite not attached")
	}
	for door, id := range f.scene.hotspotEntities {
		label, ok := ecs.GetComponent[*components.SpriteComponent](f.scene.entityManager, id)
		if !ok || label.Image == nil {
			t.Errorf("label for %v not attached", door)
		}
	}

	// 再次挂载时图片已缓存，第一帧就绪
	again := NewStorefrontScene(StorefrontOptions{
		Config:    f.cfg,
		Resources: f.rm,
		Navigator: f.nav,
		Input:     (&scriptedInput{}).read,
		Cursor:    (&cursorRecorder{}).set,
	})
	defer again.Dispose()
	again.Update(frame)
	if !again.UIStore().Snapshot().Ready {
		t.Error("remounted scene should be ready on the first frame")
	}
}

// TestStorefrontHoverCursor 悬停切换光标并写入 Hover
func TestStorefrontHoverCursor(t *testing.T) {
	f := newStorefrontFixture(t, nil)

	f.pointAt(types.DoorFounders)
	f.scene.Update(frame)
	if got := f.scene.UIStore().Snapshot().Hover; got != types.DoorFounders {
		t.Errorf("Hover = %v, want Founders", got)
	}
	if f.cursor.last != ebiten.CursorShapePointer {
		t.Errorf("cursor = %v, want pointer", f.cursor.last)
	}

	f.input.moveTo(0, 0)
	f.scene.Update(frame)
	if got := f.scene.UIStore().Snapshot().Hover; got != types.DoorNone {
		t.Errorf("Hover = %v, want None", got)
	}
	if f.cursor.last != ebiten.CursorShapeDefault {
		t.Errorf("cursor = %v, want default", f.cursor.last)
	}
}

// TestStorefrontClickWalksAndNavigates 点击门：行走 → 到达落脚点 → 停顿后导航一次
func TestStorefrontClickWalksAndNavigates(t *testing.T) {
	f := newStorefrontFixture(t, nil)
	f.drain(t)

	f.pointAt(types.DoorVCs)
	f.input.state.JustPressed = true
	f.scene.Update(frame)

	snap := f.scene.UIStore().Snapshot()
	if snap.Target != types.DoorVCs || snap.Motion != types.MotionWalking {
		t.Fatalf("after click: target %v motion %v, want VCs walking", snap.Target, snap.Motion)
	}

	dest, _ := f.scene.layout.Destination(types.DoorVCs)
	arrived := false
	for i := 0; i < 600 && !arrived; i++ {
		f.scene.Update(frame)
		snap = f.scene.UIStore().Snapshot()
		arrived = snap.Motion == types.MotionArriving
	}
	if !arrived {
		t.Fatalf("mascot never arrived, last state %+v", snap)
	}
	if math.Abs(snap.Position.X-dest.X) > 1e-9 || math.Abs(snap.Position.Y-dest.Y) > 1e-9 {
		t.Errorf("arrival position = %+v, want %+v", snap.Position, dest)
	}
	if len(f.nav.calls) != 0 {
		t.Fatal("navigated before the delay")
	}

	for i := 0; i < 120; i++ {
		f.scene.Update(frame)
	}
	if len(f.nav.calls) != 1 || f.nav.calls[0] != types.DoorVCs {
		t.Errorf("navigator calls = %v, want [VCs]", f.nav.calls)
	}
}

// TestStorefrontSetViewport 视口变化时热区重新解析
func TestStorefrontSetViewport(t *testing.T) {
	f := newStorefrontFixture(t, nil)
	f.scene.SetViewport(800, 600)

	want := f.cfg.Layout(800, 600)
	for door, id := range f.scene.hotspotEntities {
		hs, _ := ecs.GetComponent[*components.HotspotComponent](f.scene.entityManager, id)
		rect, _ := want.HotspotRect(door)
		if hs.Rect != rect {
			t.Errorf("%v rect = %+v, want %+v", door, hs.Rect, rect)
		}
	}

	// 非法尺寸被忽略
	f.scene.SetViewport(0, 600)
	if f.scene.viewW != 800 || f.scene.viewH != 600 {
		t.Errorf("viewport = %dx%d, want 800x600", f.scene.viewW, f.scene.viewH)
	}
}

// TestStorefrontParallaxSetting 关闭视差后相机保持在原点
func TestStorefrontParallaxSetting(t *testing.T) {
	settings, _ := game.NewSettingsManager(nil)
	settings.SetParallaxEnabled(false)
	f := newStorefrontFixture(t, settings)

	f.input.moveTo(0, 0)
	for i := 0; i < 30; i++ {
		f.scene.Update(frame)
	}
	if off := f.scene.parallaxSystem.Offset(); off != (utils.Point{}) {
		t.Errorf("camera offset = %+v, want origin", off)
	}

	settings.SetParallaxEnabled(true)
	f.scene.Update(frame)
	if off := f.scene.parallaxSystem.Offset(); off.X <= 0 || off.Y <= 0 {
		t.Errorf("camera offset = %+v, want moving toward (+, +) for a top-left pointer", off)
	}
}

// TestStorefrontDispose 销毁后不再导航，光标恢复默认
func TestStorefrontDispose(t *testing.T) {
	f := newStorefrontFixture(t, nil)
	f.pointAt(types.DoorVCs)
	f.scene.Update(frame)

	f.scene.Dispose()
	if f.cursor.last != ebiten.CursorShapeDefault {
		t.Errorf("cursor = %v, want default after dispose", f.cursor.last)
	}

	store := f.scene.UIStore()
	store.Navigate(types.DoorVCs)
	store.SetMotionState(types.MotionArriving)
	f.scene.navigationSystem.Update(10)
	if len(f.nav.calls) != 0 {
		t.Errorf("navigator calls = %v after dispose, want none", f.nav.calls)
	}
}

// TestStorefrontDraw 绘制不依赖资源是否就绪
func TestStorefrontDraw(t *testing.T) {
	f := newStorefrontFixture(t, nil)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	f.scene.Draw(screen)
	f.drain(t)
	f.scene.Draw(screen)
}
