package scenes

import (
	"image"

	"github.com/decker502/storefront/pkg/art"
	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/game"
	"github.com/decker502/storefront/pkg/types"
)

const (
	// assetBudgetPerFrame 每帧最多生成的图片数
	assetBudgetPerFrame = 2

	// spriteSupersample 精灵按绘制尺寸的倍数生成，缩小绘制时边缘更平滑
	spriteSupersample = 2

	pageWidth  = 1280
	pageHeight = 720
)

// QueueStorefrontAssets 把店面和目的地页面需要的图片加入生成队列
// 已缓存的图片不会重复生成，返回店面时可以立即就绪
func QueueStorefrontAssets(rm *game.ResourceManager, cfg *config.StorefrontConfig) {
	rm.Queue(game.ImageStorefront, func() (image.Image, error) {
		return art.Storefront(cfg), nil
	})

	zebraW := int(cfg.Mascot.SpriteWidth) * spriteSupersample
	zebraH := int(cfg.Mascot.SpriteHeight) * spriteSupersample
	rm.Queue(game.ImageZebra, func() (image.Image, error) {
		return art.Zebra(zebraW, zebraH), nil
	})
	rm.Queue(game.ImageShadow, func() (image.Image, error) {
		return art.Shadow(128, 32), nil
	})

	for _, door := range types.AllDoors {
		dc := cfg.Door(door)
		accent := cfg.AccentColor(door)
		rm.Queue(game.LabelImageID(door.Key()), func() (image.Image, error) {
			return art.Label(dc.Label, accent)
		})
	}

	QueuePageAssets(rm, cfg)
}

// QueuePageAssets 把目的地页面加入生成队列
func QueuePageAssets(rm *game.ResourceManager, cfg *config.StorefrontConfig) {
	for _, door := range types.AllDoors {
		dc := cfg.Door(door)
		accent := cfg.AccentColor(door)
		rm.Queue(game.PageImageID(door.Key()), func() (image.Image, error) {
			return art.Page(pageWidth, pageHeight, dc.Label, dc.Route, accent)
		})
	}
}
