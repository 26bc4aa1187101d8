package config

// 窗口配置常量
//
// 店面场景是自适应布局：Layout() 直接使用窗口的逻辑尺寸，
// 这里的值只决定启动时的窗口大小和最小可用尺寸。
const (
	// GameWindowWidth 启动窗口宽度
	GameWindowWidth = 1280

	// GameWindowHeight 启动窗口高度
	GameWindowHeight = 720

	// MinViewportWidth 视口最小宽度（窗口被拖得更小时按此值布局）
	MinViewportWidth = 320

	// MinViewportHeight 视口最小高度
	MinViewportHeight = 240

	// WindowTitle 窗口标题
	WindowTitle = "Zebra Storefront"
)
