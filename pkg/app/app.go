// Package app 提供店面应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/embedded"
	"github.com/decker502/storefront/pkg/game"
	"github.com/decker502/storefront/pkg/inspect"
	"github.com/decker502/storefront/pkg/scenes"
	"github.com/decker502/storefront/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 嵌入的店面配置文件
const DefaultConfigPath = "data/storefront.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 以全屏启动（同时写入设置）
	Fullscreen bool
	// InspectAddr 状态查看器监听地址（如 ":7070"），为空则不启动
	InspectAddr string
	// ConfigPath 覆盖嵌入配置的 yaml 文件路径，为空则使用嵌入配置
	ConfigPath string
	// Route 启动路由，为空则进入店面
	Route string
}

// App 是店面应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	inspector       *inspect.Server
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 加载店面配置
// path 为空时读取嵌入的 data/storefront.yaml，嵌入资源也不可用时使用内置默认值
func LoadConfig(path string) (*config.StorefrontConfig, error) {
	if path != "" {
		return config.LoadStorefrontConfig(path)
	}
	if !embedded.IsInitialized() {
		log.Printf("[App] embedded 未初始化，使用内置默认配置")
		return config.DefaultStorefrontConfig(), nil
	}
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("读取 %s 失败: %w", DefaultConfigPath, err)
	}
	return config.ParseStorefrontConfig(data)
}

// NewApp 创建并初始化店面应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	storefrontConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("店面配置加载失败: %w", err)
	}

	settingsManager, _ := game.NewSettingsManager(game.OpenStorage(game.StorageAppName))
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}
	ebiten.SetFullscreen(settingsManager.GetSettings().Fullscreen)

	resourceManager := game.NewResourceManager()
	sceneManager := game.NewSceneManager()

	routes := make(map[string]types.Door)
	for _, door := range types.AllDoors {
		route := storefrontConfig.Door(door).Route
		sceneManager.SetRoute(door, route)
		routes[route] = door
	}

	sceneManager.SetSceneFactory(func(route string) game.Scene {
		if route == game.RouteStorefront {
			return scenes.NewStorefrontScene(scenes.StorefrontOptions{
				Config:    storefrontConfig,
				Resources: resourceManager,
				Navigator: sceneManager,
				Settings:  settingsManager,
			})
		}
		door, ok := routes[route]
		if !ok {
			return nil
		}
		return scenes.NewDestinationScene(scenes.DestinationOptions{
			Config:    storefrontConfig,
			Resources: resourceManager,
			Door:      door,
			OnBack:    func() { sceneManager.LoadRoute(game.RouteStorefront) },
		})
	})

	a := &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}

	if cfg.InspectAddr != "" {
		a.inspector = inspect.NewServer()
		if _, err := a.inspector.Start(cfg.InspectAddr); err != nil {
			return nil, fmt.Errorf("状态查看器启动失败: %w", err)
		}
		sceneManager.OnSceneChanged(func(scene game.Scene) {
			if provider, ok := scene.(game.StoreProvider); ok {
				a.inspector.Attach(provider.UIStore())
			} else {
				a.inspector.Attach(nil)
			}
		})
	}

	route := cfg.Route
	if route == "" {
		route = game.RouteStorefront
	}
	log.Printf("[App] 启动路由: %s", route)
	sceneManager.LoadRoute(route)
	if sceneManager.CurrentRoute() != route {
		return nil, fmt.Errorf("未知路由: %s", route)
	}

	return a, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if a.settingsManager.ToggleFullscreen() {
			ebiten.SetFullscreen(true)
		} else {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		}
	}

	// P 切换视差相机
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		enabled := a.settingsManager.ToggleParallax()
		log.Printf("[App] Parallax enabled: %v", enabled)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸跟随窗口大小（不低于最小视口），场景据此重新解析热区布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth, config.MinViewportWidth)
	h := max(outsideHeight, config.MinViewportHeight)
	a.sceneManager.SetViewport(w, h)
	return w, h
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 关闭状态查看器
func (a *App) Close() error {
	if a.inspector != nil {
		return a.inspector.Close()
	}
	return nil
}
