package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/storefront/pkg/app"
	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细日志")
	fullscreen  = flag.Bool("fullscreen", false, "以全屏启动")
	inspectAddr = flag.String("inspect", "", "状态查看器监听地址（如 :7070），为空则不启动")
	configPath  = flag.String("config", "", "覆盖嵌入配置的 storefront.yaml 路径")
	route       = flag.String("route", "", "启动路由（如 /app/vcs），默认进入店面")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	storefront, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		Fullscreen:  *fullscreen,
		InspectAddr: *inspectAddr,
		ConfigPath:  *configPath,
		Route:       *route,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer storefront.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(storefront); err != nil {
		log.Fatal(err)
	}
}
