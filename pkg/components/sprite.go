package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现
// 吉祥物实体存放精灵图，热区实体存放悬停标签图
type SpriteComponent struct {
	Image *ebiten.Image
}
