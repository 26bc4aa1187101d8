// Package art 程序化生成场景美术资源
//
// 店面背景、斑马精灵、门标签和目的地页面都用 gg 矢量绘制，
// 字体使用内置的 Go 字体（golang.org/x/image/font/gofont），不依赖外部素材文件。
// 生成结果是标准库 image.Image，由 game.ResourceManager 转换为 ebiten.Image。
package art

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle 字体样式
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontBold
)

var (
	fontOnce  sync.Once
	fontErr   error
	fontFaces map[FontStyle]*truetype.Font
)

func loadFonts() {
	fontFaces = make(map[FontStyle]*truetype.Font)
	sources := map[FontStyle][]byte{
		FontRegular: goregular.TTF,
		FontBold:    gobold.TTF,
	}
	for style, data := range sources {
		f, err := truetype.Parse(data)
		if err != nil {
			fontErr = fmt.Errorf("failed to parse font: %w", err)
			return
		}
		fontFaces[style] = f
	}
}

// NewFace 创建指定样式和字号的字体
func NewFace(style FontStyle, size float64) (font.Face, error) {
	fontOnce.Do(loadFonts)
	if fontErr != nil {
		return nil, fontErr
	}

	f, ok := fontFaces[style]
	if !ok {
		return nil, fmt.Errorf("unknown font style: %d", style)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
