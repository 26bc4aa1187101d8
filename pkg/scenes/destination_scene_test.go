package scenes

import (
	"testing"

	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/game"
	"github.com/decker502/storefront/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

type destinationFixture struct {
	scene   *DestinationScene
	input   *scriptedInput
	cursor  *cursorRecorder
	backKey bool
	backs   int
}

func newDestinationFixture(t *testing.T, door types.Door) *destinationFixture {
	t.Helper()
	f := &destinationFixture{
		input:  &scriptedInput{},
		cursor: &cursorRecorder{},
	}
	f.scene = NewDestinationScene(DestinationOptions{
		Config:    config.DefaultStorefrontConfig(),
		Resources: game.NewResourceManager(),
		Door:      door,
		OnBack:    func() { f.backs++ },
		Input:     f.input.read,
		Cursor:    f.cursor.set,
		BackKey: func() bool {
			pressed := f.backKey
			f.backKey = false
			return pressed
		},
	})
	return f
}

// TestBackButtonContains 测试返回按钮命中
func TestBackButtonContains(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"左上角", backButtonX, backButtonY, true},
		{"中心", backButtonX + backButtonWidth/2, backButtonY + backButtonHeight/2, true},
		{"右边界外", backButtonX + backButtonWidth, backButtonY + 1, false},
		{"下边界外", backButtonX + 1, backButtonY + backButtonHeight, false},
		{"左侧", backButtonX - 1, backButtonY + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := backButtonContains(tt.x, tt.y); got != tt.want {
				t.Errorf("backButtonContains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestDestinationPageLoads 直接打开页面时页面图片按帧生成
func TestDestinationPageLoads(t *testing.T) {
	f := newDestinationFixture(t, types.DoorFounders)

	for i := 0; i < 5 && f.scene.page == nil; i++ {
		f.scene.Update(frame)
	}
	if f.scene.page == nil {
		t.Fatal("page image never loaded")
	}
	if f.scene.Door() != types.DoorFounders {
		t.Errorf("Door() = %v, want Founders", f.scene.Door())
	}

	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	f.scene.Draw(screen)
}

// TestDestinationBackClick 点击返回按钮只触发一次返回
func TestDestinationBackClick(t *testing.T) {
	f := newDestinationFixture(t, types.DoorVCs)

	f.input.moveTo(backButtonX+10, backButtonY+10)
	f.scene.Update(frame)
	if f.cursor.last != ebiten.CursorShapePointer {
		t.Errorf("cursor = %v, want pointer over back button", f.cursor.last)
	}
	if f.backs != 0 {
		t.Fatal("hover alone must not go back")
	}

	f.input.state.JustPressed = true
	f.scene.Update(frame)
	if f.backs != 1 {
		t.Fatalf("backs = %d, want 1", f.backs)
	}

	f.input.state.JustPressed = true
	f.scene.Update(frame)
	if f.backs != 1 {
		t.Errorf("backs = %d after second click, want 1", f.backs)
	}
}

// TestDestinationBackKey Esc 返回，按钮外的点击无效
func TestDestinationBackKey(t *testing.T) {
	f := newDestinationFixture(t, types.DoorVCs)

	f.input.moveTo(600, 400)
	f.input.state.JustPressed = true
	f.scene.Update(frame)
	if f.backs != 0 {
		t.Fatal("click outside the back button went back")
	}
	if f.cursor.last != ebiten.CursorShapeDefault {
		t.Errorf("cursor = %v, want default", f.cursor.last)
	}

	f.backKey = true
	f.scene.Update(frame)
	if f.backs != 1 {
		t.Errorf("backs = %d, want 1", f.backs)
	}
}

// TestDestinationSceneWithManager 返回后场景管理器在下一帧挂载新的店面
func TestDestinationSceneWithManager(t *testing.T) {
	cfg := config.DefaultStorefrontConfig()
	rm := game.NewResourceManager()
	sm := game.NewSceneManager()

	var storefronts int
	sm.SetSceneFactory(func(route string) game.Scene {
		if route == game.RouteStorefront {
			storefronts++
			return NewStorefrontScene(StorefrontOptions{
				Config:    cfg,
				Resources: rm,
				Navigator: sm,
				Input:     (&scriptedInput{}).read,
				Cursor:    (&cursorRecorder{}).set,
			})
		}
		return nil
	})

	input := &scriptedInput{}
	page := NewDestinationScene(DestinationOptions{
		Config:    cfg,
		Resources: rm,
		Door:      types.DoorVCs,
		OnBack:    func() { sm.LoadRoute(game.RouteStorefront) },
		Input:     input.read,
		Cursor:    (&cursorRecorder{}).set,
		BackKey:   func() bool { return false },
	})
	sm.SwitchTo(page)

	input.moveTo(backButtonX+5, backButtonY+5)
	input.state.JustPressed = true
	sm.Update(frame)
	if sm.GetCurrentScene() != page {
		t.Fatal("switch must be deferred to the next update")
	}

	sm.Update(frame)
	if _, ok := sm.GetCurrentScene().(*StorefrontScene); !ok {
		t.Fatalf("current scene = %T, want *StorefrontScene", sm.GetCurrentScene())
	}
	if storefronts != 1 || sm.CurrentRoute() != game.RouteStorefront {
		t.Errorf("storefronts = %d route = %q", storefronts, sm.CurrentRoute())
	}
}
