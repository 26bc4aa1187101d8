package game

import (
	"log"

	"github.com/decker502/storefront/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// RouteStorefront 店面场景的路由
const RouteStorefront = "/"

// SceneFactory 场景工厂函数类型
// 根据路由创建场景，避免 game 包依赖具体场景实现；未知路由返回 nil
type SceneFactory func(route string) Scene

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	pendingScene Scene
	currentRoute string

	sceneFactory SceneFactory          // 场景工厂函数，用于创建新场景
	routes       map[types.Door]string // 门 -> 目的地路由

	viewportW, viewportH int
	onSceneChanged       []func(Scene)
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadRoute to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		routes: make(map[types.Door]string),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SetRoute 设置门对应的目的地路由
func (sm *SceneManager) SetRoute(door types.Door, route string) {
	sm.routes[door] = route
}

// Route 返回门对应的路由
func (sm *SceneManager) Route(door types.Door) (string, bool) {
	route, ok := sm.routes[door]
	return route, ok
}

// CurrentRoute 返回当前场景的路由（通过 SwitchTo 直接切换时为空）
func (sm *SceneManager) CurrentRoute() string {
	return sm.currentRoute
}

// OnSceneChanged 注册场景切换回调，切换生效后调用
func (sm *SceneManager) OnSceneChanged(fn func(Scene)) {
	sm.onSceneChanged = append(sm.onSceneChanged, fn)
}

// SwitchTo changes the active scene to the provided scene immediately.
// The previous scene is disposed if it implements Disposable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentRoute = ""
	sm.activate(scene)
}

func (sm *SceneManager) activate(scene Scene) {
	if old, ok := sm.currentScene.(Disposable); ok && sm.currentScene != scene {
		old.Dispose()
	}
	sm.currentScene = scene

	if va, ok := scene.(ViewportAware); ok && sm.viewportW > 0 && sm.viewportH > 0 {
		va.SetViewport(sm.viewportW, sm.viewportH)
	}
	for _, fn := range sm.onSceneChanged {
		fn(scene)
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadRoute 加载指定路由的场景
// 切换在下一次 Update 开始时生效，当前场景本帧的逻辑可以安全执行完
func (sm *SceneManager) LoadRoute(route string) {
	log.Printf("[SceneManager] 加载路由: %s", route)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(route)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", route)
		return
	}
	sm.pendingScene = newScene
	sm.currentRoute = route
}

// NavigateTo 切换到门对应的目的地页面
func (sm *SceneManager) NavigateTo(door types.Door) {
	route, ok := sm.routes[door]
	if !ok {
		log.Printf("[SceneManager] 错误: 门 %v 没有路由", door)
		return
	}
	sm.LoadRoute(route)
}

// SetViewport 记录视口尺寸并转发给当前场景
func (sm *SceneManager) SetViewport(width, height int) {
	if width == sm.viewportW && height == sm.viewportH {
		return
	}
	sm.viewportW, sm.viewportH = width, height
	if va, ok := sm.currentScene.(ViewportAware); ok {
		va.SetViewport(width, height)
	}
}

// Update updates the currently active scene.
// A scene loaded through LoadRoute becomes active here, before its first update.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.pendingScene != nil {
		next := sm.pendingScene
		sm.pendingScene = nil
		sm.activate(next)
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
