package utils

import "math"

// Point 场景坐标中的二维点
// 原点位于视口中心，X 向右，Y 向上，1 单位 = 1 逻辑像素
// 值类型，所有插值函数都返回新的 Point
type Point struct {
	X, Y float64
}

// Add 返回两点之和
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Distance 两点之间的欧氏距离
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// LerpPoint 按分量线性插值
// t 不做截断：t 超出 [0, 1] 时按直线外推，由调用者负责提供有意义的 t
func LerpPoint(start, end Point, t float64) Point {
	return Point{
		X: Lerp(start.X, end.X, t),
		Y: Lerp(start.Y, end.Y, t),
	}
}

// Rect 场景坐标中的矩形热区
// (X, Y) 为左下角（Y 向上）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center 矩形中心
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// FloorAnchor 矩形底边中点（门槛位置）
func (r Rect) FloorAnchor() Point {
	return Point{X: r.X + r.W/2, Y: r.Y}
}

// Scale 以中心为基准缩放矩形
func (r Rect) Scale(s float64) Rect {
	c := r.Center()
	w, h := r.W*s, r.H*s
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}
