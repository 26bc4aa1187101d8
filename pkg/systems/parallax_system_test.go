package systems

import (
	"math"
	"testing"

	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/ecs"
	"github.com/decker502/storefront/pkg/utils"
)

// TestParallaxBlendsTowardTarget 每帧按混合系数逼近目标，X 取反，Y 同向
func TestParallaxBlendsTowardTarget(t *testing.T) {
	cfg := config.ParallaxConfig{Amount: 8, Blend: 0.1}
	ps := NewParallaxSystem(ecs.NewEntityManager(), cfg, true)

	ps.Update(utils.Point{X: 1, Y: 1})
	got := ps.Offset()
	if math.Abs(got.X-(-0.8)) > 1e-9 || math.Abs(got.Y-0.8) > 1e-9 {
		t.Errorf("first tick offset = %+v, want (-0.8, 0.8)", got)
	}

	prev := got
	for i := 0; i < 200; i++ {
		ps.Update(utils.Point{X: 1, Y: 1})
		cur := ps.Offset()
		if cur.X > prev.X || cur.Y < prev.Y {
			t.Fatalf("offset should move monotonically toward the target: %+v -> %+v", prev, cur)
		}
		if math.Abs(cur.X) > cfg.Amount || math.Abs(cur.Y) > cfg.Amount {
			t.Fatalf("offset %+v exceeds the max amount %v", cur, cfg.Amount)
		}
		prev = cur
	}

	if math.Abs(prev.X+8) > 1e-6 || math.Abs(prev.Y-8) > 1e-6 {
		t.Errorf("offset converged to %+v, want (-8, 8)", prev)
	}
}

// TestParallaxCentredPointer 指针在中心时相机不偏移
func TestParallaxCentredPointer(t *testing.T) {
	ps := NewParallaxSystem(ecs.NewEntityManager(), config.DefaultStorefrontConfig().Parallax, true)

	for i := 0; i < 10; i++ {
		ps.Update(utils.Point{})
	}
	if got := ps.Offset(); got != (utils.Point{}) {
		t.Errorf("offset = %+v, want origin", got)
	}
}

// TestParallaxDisabled 关闭视差后相机平滑回到原点
func TestParallaxDisabled(t *testing.T) {
	ps := NewParallaxSystem(ecs.NewEntityManager(), config.ParallaxConfig{Amount: 8, Blend: 0.5}, true)

	for i := 0; i < 20; i++ {
		ps.Update(utils.Point{X: -1, Y: 0})
	}
	if ps.Offset().X <= 0 {
		t.Fatalf("pointer on the left should move the camera right, got %+v", ps.Offset())
	}

	ps.SetEnabled(false)
	ps.Update(utils.Point{X: -1, Y: 0})
	first := ps.Offset().X
	if first <= 0 || first >= 8 {
		t.Errorf("disable should ease back, not jump: x = %v", first)
	}

	for i := 0; i < 60; i++ {
		ps.Update(utils.Point{X: -1, Y: 0})
	}
	if got := ps.Offset(); math.Abs(got.X) > 1e-6 {
		t.Errorf("offset = %+v, want back at origin", got)
	}
}
