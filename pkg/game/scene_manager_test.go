package game

import (
	"testing"

	"github.com/decker502/storefront/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	disposed     bool
	viewW, viewH int
}

// Dispose records that the scene was replaced.
func (m *MockScene) Dispose() {
	m.disposed = true
}

// SetViewport records the viewport size.
func (m *MockScene) SetViewport(width, height int) {
	m.viewW, m.viewH = width, height
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.currentScene != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	// Don't set any scene, currentScene should be nil
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	// Create a dummy screen image
	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerDrawNoScene verifies that Draw handles nil scene gracefully.
func TestSceneManagerDrawNoScene(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(800, 600)
	// Don't set any scene, currentScene should be nil
	sm.Draw(screen) // Should not panic
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	// Switch to scene1
	sm.SwitchTo(scene1)
	sm.Update(0.016)

	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}
	if scene2.updateCalled {
		t.Error("Scene2's Update should not have been called yet")
	}

	// Switch to scene2
	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
}

// TestSceneManagerDisposesReplacedScene verifies that the previous scene is disposed on switch.
func TestSceneManagerDisposesReplacedScene(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.SwitchTo(scene1)
	if scene1.disposed {
		t.Error("switching to the same scene should not dispose it")
	}

	sm.SwitchTo(scene2)
	if !scene1.disposed {
		t.Error("replaced scene was not disposed")
	}
	if scene2.disposed {
		t.Error("active scene should not be disposed")
	}
}

// TestSceneManagerNavigateTo verifies that navigation loads the door route on the next update.
func TestSceneManagerNavigateTo(t *testing.T) {
	sm := NewSceneManager()
	created := map[string]*MockScene{}
	sm.SetSceneFactory(func(route string) Scene {
		if route == "/missing" {
			return nil
		}
		s := &MockScene{}
		created[route] = s
		return s
	})
	sm.SetRoute(types.DoorVCs, "/app/vcs")

	storefront := &MockScene{}
	sm.SwitchTo(storefront)

	sm.NavigateTo(types.DoorVCs)
	if sm.GetCurrentScene() != storefront {
		t.Fatal("the switch should wait for the next Update")
	}
	if sm.CurrentRoute() != "/app/vcs" {
		t.Errorf("CurrentRoute() = %q, want /app/vcs", sm.CurrentRoute())
	}

	sm.Update(0.016)
	page := created["/app/vcs"]
	if page == nil || sm.GetCurrentScene() != page {
		t.Fatal("destination scene not active after Update")
	}
	if !page.updateCalled {
		t.Error("new scene should be updated in the frame it becomes active")
	}
	if storefront.updateCalled {
		t.Error("old scene should not be updated after the switch")
	}
	if !storefront.disposed {
		t.Error("old scene should be disposed")
	}
}

// TestSceneManagerUnknownRoutes verifies that missing routes and factories are ignored.
func TestSceneManagerUnknownRoutes(t *testing.T) {
	sm := NewSceneManager()
	current := &MockScene{}
	sm.SwitchTo(current)

	sm.LoadRoute("/app/vcs")
	sm.Update(0.016)
	if sm.GetCurrentScene() != current {
		t.Error("LoadRoute without a factory should keep the current scene")
	}

	sm.SetSceneFactory(func(route string) Scene { return nil })
	sm.LoadRoute("/missing")
	sm.NavigateTo(types.DoorFounders)
	sm.Update(0.016)
	if sm.GetCurrentScene() != current {
		t.Error("unknown routes should keep the current scene")
	}
}

// TestSceneManagerViewportAndCallbacks verifies viewport forwarding and change callbacks.
func TestSceneManagerViewportAndCallbacks(t *testing.T) {
	sm := NewSceneManager()
	var changed []Scene
	sm.OnSceneChanged(func(s Scene) { changed = append(changed, s) })

	sm.SetViewport(1280, 720)
	scene1 := &MockScene{}
	sm.SwitchTo(scene1)
	if scene1.viewW != 1280 || scene1.viewH != 720 {
		t.Errorf("new scene viewport = %dx%d, want 1280x720", scene1.viewW, scene1.viewH)
	}

	sm.SetViewport(800, 600)
	if scene1.viewW != 800 || scene1.viewH != 600 {
		t.Errorf("active scene viewport = %dx%d, want 800x600", scene1.viewW, scene1.viewH)
	}

	if len(changed) != 1 || changed[0] != scene1 {
		t.Errorf("OnSceneChanged calls = %v, want [scene1]", changed)
	}
}
