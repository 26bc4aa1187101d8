// storefront_sim 在终端中运行店面的状态逻辑（无渲染）
//
// 用法：
//
//	go run ./cmd/storefront_sim [-config data/storefront.yaml] [-verbose]
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/storefront/pkg/config"
)

var (
	configPath = flag.String("config", "", "店面配置文件路径，为空则使用内置默认配置")
	verbose    = flag.Bool("verbose", false, "把系统日志写入 storefront_sim.log")
)

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *verbose {
		f, err := tea.LogToFile("storefront_sim.log", "sim")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	cfg := config.DefaultStorefrontConfig()
	if *configPath != "" {
		loaded, err := config.LoadStorefrontConfig(*configPath)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		cfg = loaded
	}

	p := tea.NewProgram(newModel(cfg, clipboard.WriteAll), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
