package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene (e.g., the storefront or a destination page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，场景被替换时调用 Dispose 释放订阅等资源
type Disposable interface {
	Dispose()
}

// StoreProvider 是一个可选接口，拥有共享 UI 状态的场景实现它，
// 供状态查看器等外部观察者挂接
type StoreProvider interface {
	UIStore() *UIStore
}

// ViewportAware 是一个可选接口，场景据此响应视口尺寸变化
type ViewportAware interface {
	SetViewport(width, height int)
}
