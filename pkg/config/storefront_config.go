package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
	"gopkg.in/yaml.v3"
)

// StorefrontConfig 店面场景配置
//
// 包含门热区、吉祥物动画参数、视差相机和导航延迟。
// 门热区以视口比例描述，通过 Layout() 解析为场景坐标。
//
// 配置文件位置: data/storefront.yaml
type StorefrontConfig struct {
	// Reference 背景参考分辨率
	Reference ReferenceSize `yaml:"reference"`

	// Doors 门配置，key 为 types.Door.Key()（如 "vcs", "founders"）
	// 必须覆盖 types.AllDoors 中的每一扇门
	Doors map[string]DoorConfig `yaml:"doors"`

	// Mascot 吉祥物动画参数
	Mascot MascotConfig `yaml:"mascot"`

	// Parallax 视差相机参数
	Parallax ParallaxConfig `yaml:"parallax"`

	// Hotspot 热区视觉反馈参数
	Hotspot HotspotConfig `yaml:"hotspot"`

	// Navigation 导航参数
	Navigation NavigationConfig `yaml:"navigation"`
}

// ReferenceSize 参考分辨率
type ReferenceSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DoorConfig 单扇门的配置
type DoorConfig struct {
	Label  string `yaml:"label"`
	Route  string `yaml:"route"`
	Accent string `yaml:"accent"` // 十六进制颜色，如 "#ffd166"

	// X, Y 热区左下角，视口宽/高的比例（相对视口中心）
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Width, Height 参考分辨率下的热区像素尺寸
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MascotConfig 吉祥物动画参数
type MascotConfig struct {
	// BaseX, BaseY 休息位置（视口比例）
	BaseX float64 `yaml:"baseX"`
	BaseY float64 `yaml:"baseY"`

	// OffscreenMargin 入场起点在视口左边缘外的距离（像素）
	OffscreenMargin float64 `yaml:"offscreenMargin"`

	// SpriteWidth, SpriteHeight 参考分辨率下的精灵尺寸
	SpriteWidth  float64 `yaml:"spriteWidth"`
	SpriteHeight float64 `yaml:"spriteHeight"`

	IntroDelay    float64 `yaml:"introDelay"`    // 入场延迟（秒）
	IntroDuration float64 `yaml:"introDuration"` // 入场时长（秒）

	WalkDuration     float64 `yaml:"walkDuration"`     // 行走时长（秒）
	ArcHeight        float64 `yaml:"arcHeight"`        // 路径弧高（像素）
	ArrivalThreshold float64 `yaml:"arrivalThreshold"` // 到达判定距离（像素）
	WalkCycleSpeed   float64 `yaml:"walkCycleSpeed"`   // 步伐频率
	WalkBobAmplitude float64 `yaml:"walkBobAmplitude"` // 步伐起伏幅度

	BreathingSpeed     float64 `yaml:"breathingSpeed"`
	BreathingAmplitude float64 `yaml:"breathingAmplitude"`
	IdleSwaySpeed      float64 `yaml:"idleSwaySpeed"`
	IdleSwayAmount     float64 `yaml:"idleSwayAmount"` // 弧度
	LookBias           float64 `yaml:"lookBias"`       // 看向悬停门的倾角（弧度）
	WalkLean           float64 `yaml:"walkLean"`       // 行走前倾角（弧度）
	RotationBlend      float64 `yaml:"rotationBlend"`  // 每帧旋转混合系数 (0, 1]

	SettleAmplitude float64 `yaml:"settleAmplitude"`
	SettleFrequency float64 `yaml:"settleFrequency"`
	SettleDamping   float64 `yaml:"settleDamping"`
}

// ParallaxConfig 视差相机参数
type ParallaxConfig struct {
	Amount float64 `yaml:"amount"` // 最大偏移（像素）
	Blend  float64 `yaml:"blend"`  // 每帧混合系数 (0, 1]
}

// HotspotConfig 热区视觉反馈参数
type HotspotConfig struct {
	ClickFlash     float64 `yaml:"clickFlash"` // 点击闪光持续时间（秒）
	GlowPulseSpeed float64 `yaml:"glowPulseSpeed"`
	GlowBase       float64 `yaml:"glowBase"`
	GlowRange      float64 `yaml:"glowRange"`
	LabelOffset    float64 `yaml:"labelOffset"` // 标签在门顶上方的距离（像素）
}

// NavigationConfig 导航参数
type NavigationConfig struct {
	// Delay 到达后到切换页面之间的停顿（秒）
	Delay float64 `yaml:"delay"`
}

// DefaultStorefrontConfig 返回内置默认配置（与 data/storefront.yaml 保持一致）
func DefaultStorefrontConfig() *StorefrontConfig {
	return &StorefrontConfig{
		Reference: ReferenceSize{Width: 1920, Height: 1080},
		Doors: map[string]DoorConfig{
			"vcs": {
				Label: "VCs", Route: "/app/vcs", Accent: "#ffd166",
				X: -0.18, Y: -0.43, Width: 100, Height: 200,
			},
			"founders": {
				Label: "Founders", Route: "/app/founders", Accent: "#ff6b9d",
				X: 0.12, Y: -0.40, Width: 120, Height: 220,
			},
		},
		Mascot: MascotConfig{
			BaseX: -0.32, BaseY: -0.42,
			OffscreenMargin: 240,
			SpriteWidth:     150, SpriteHeight: 260,
			IntroDelay: 0.1, IntroDuration: 1.5,
			WalkDuration: 2.0, ArcHeight: 12, ArrivalThreshold: 2.0,
			WalkCycleSpeed: 9, WalkBobAmplitude: 6,
			BreathingSpeed: 1.5, BreathingAmplitude: 2,
			IdleSwaySpeed: 0.6, IdleSwayAmount: 0.02,
			LookBias: 0.06, WalkLean: 0.08, RotationBlend: 0.1,
			SettleAmplitude: 3, SettleFrequency: 6, SettleDamping: 3,
		},
		Parallax: ParallaxConfig{Amount: 8, Blend: 0.1},
		Hotspot: HotspotConfig{
			ClickFlash: 0.3, GlowPulseSpeed: 3, GlowBase: 0.2, GlowRange: 0.1, LabelOffset: 40,
		},
		Navigation: NavigationConfig{Delay: 0.6},
	}
}

// LoadStorefrontConfig 从文件系统加载店面配置
//
// 参数:
//   - path: 配置文件路径（如 "data/storefront.yaml"）
//
// 返回:
//   - *StorefrontConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadStorefrontConfig(path string) (*StorefrontConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read storefront config: %w", err)
	}
	return ParseStorefrontConfig(data)
}

// ParseStorefrontConfig 解析 YAML 格式的店面配置并验证
func ParseStorefrontConfig(data []byte) (*StorefrontConfig, error) {
	var cfg StorefrontConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse storefront config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storefront config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 每一扇门都有配置（缺失门配置是加载期错误，而不是运行期查找失败）
//   - 热区尺寸、时长为正
//   - 混合系数位于 (0, 1]
//   - 强调色可以解析
func (c *StorefrontConfig) Validate() error {
	if c.Reference.Width <= 0 || c.Reference.Height <= 0 {
		return fmt.Errorf("reference size must be positive, got %.0fx%.0f",
			c.Reference.Width, c.Reference.Height)
	}

	for _, door := range types.AllDoors {
		dc, ok := c.Doors[door.Key()]
		if !ok {
			return fmt.Errorf("missing config for door %q", door.Key())
		}
		if dc.Width <= 0 || dc.Height <= 0 {
			return fmt.Errorf("door %q hotspot size must be positive, got %.1fx%.1f",
				door.Key(), dc.Width, dc.Height)
		}
		if _, err := ParseHexColor(dc.Accent); err != nil {
			return fmt.Errorf("door %q accent: %w", door.Key(), err)
		}
	}
	for key := range c.Doors {
		if _, ok := types.DoorFromKey(key); !ok {
			return fmt.Errorf("unknown door %q", key)
		}
	}

	m := c.Mascot
	if m.WalkDuration <= 0 {
		return fmt.Errorf("mascot walkDuration must be positive, got %.2f", m.WalkDuration)
	}
	if m.IntroDuration <= 0 {
		return fmt.Errorf("mascot introDuration must be positive, got %.2f", m.IntroDuration)
	}
	if m.IntroDelay < 0 {
		return fmt.Errorf("mascot introDelay must not be negative, got %.2f", m.IntroDelay)
	}
	if m.ArcHeight < 0 || m.ArrivalThreshold < 0 {
		return fmt.Errorf("mascot arcHeight/arrivalThreshold must not be negative")
	}
	if !validBlend(m.RotationBlend) {
		return fmt.Errorf("mascot rotationBlend must be in (0, 1], got %.2f", m.RotationBlend)
	}
	if !validBlend(c.Parallax.Blend) {
		return fmt.Errorf("parallax blend must be in (0, 1], got %.2f", c.Parallax.Blend)
	}
	if c.Hotspot.ClickFlash < 0 || c.Navigation.Delay < 0 {
		return fmt.Errorf("hotspot clickFlash and navigation delay must not be negative")
	}

	return nil
}

func validBlend(v float64) bool {
	return v > 0 && v <= 1
}

// Door 返回指定门的配置
// Validate() 保证每一扇真实的门都有配置；DoorNone 返回零值
func (c *StorefrontConfig) Door(d types.Door) DoorConfig {
	return c.Doors[d.Key()]
}

// AccentColor 返回门的强调色，解析失败时返回白色
func (c *StorefrontConfig) AccentColor(d types.Door) color.RGBA {
	col, err := ParseHexColor(c.Door(d).Accent)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return col
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// ResolvedLayout 按视口尺寸解析后的场景布局（场景坐标）
type ResolvedLayout struct {
	ViewW, ViewH float64

	// Scale 参考分辨率到当前视口的缩放
	Scale float64

	// Base 吉祥物休息位置（脚底）
	Base utils.Point

	// Offscreen 入场动画起点
	Offscreen utils.Point

	// Hotspots / Destinations 以 types.Door.Index() 为下标
	Hotspots     [types.DoorCount]utils.Rect
	Destinations [types.DoorCount]utils.Point
}

// Layout 根据视口尺寸解析布局
func (c *StorefrontConfig) Layout(viewW, viewH float64) ResolvedLayout {
	viewW = math.Max(viewW, MinViewportWidth)
	viewH = math.Max(viewH, MinViewportHeight)

	scale := math.Min(viewW, viewH) / c.Reference.Height

	l := ResolvedLayout{
		ViewW: viewW,
		ViewH: viewH,
		Scale: scale,
		Base:  utils.Point{X: viewW * c.Mascot.BaseX, Y: viewH * c.Mascot.BaseY},
	}
	l.Offscreen = utils.Point{X: -viewW/2 - c.Mascot.OffscreenMargin*scale, Y: l.Base.Y}

	for _, door := range types.AllDoors {
		dc := c.Door(door)
		rect := utils.Rect{
			X: viewW * dc.X,
			Y: viewH * dc.Y,
			W: dc.Width * scale,
			H: dc.Height * scale,
		}
		l.Hotspots[door.Index()] = rect
		l.Destinations[door.Index()] = rect.FloorAnchor()
	}

	return l
}

// HotspotRect 返回门的热区
func (l ResolvedLayout) HotspotRect(d types.Door) (utils.Rect, bool) {
	if !d.Valid() {
		return utils.Rect{}, false
	}
	return l.Hotspots[d.Index()], true
}

// Destination 返回门的落脚点（热区底边中点）
func (l ResolvedLayout) Destination(d types.Door) (utils.Point, bool) {
	if !d.Valid() {
		return utils.Point{}, false
	}
	return l.Destinations[d.Index()], true
}
