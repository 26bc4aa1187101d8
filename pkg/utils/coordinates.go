package utils

// 坐标转换工具
//
// 本项目使用两套坐标系统：
//   - **场景坐标**：原点在视口中心，X 向右，Y 向上（等价于视口大小的正交相机）
//   - **屏幕坐标**：原点在窗口左上角，Y 向下（Ebiten 默认）
//
// 视差相机的偏移量以场景坐标表示，渲染时从场景坐标中减去。

// SceneToScreen 将场景坐标转换为屏幕坐标
// camera 为视差相机偏移（场景坐标）
func SceneToScreen(p Point, viewW, viewH float64, camera Point) (float64, float64) {
	return viewW/2 + (p.X - camera.X), viewH/2 - (p.Y - camera.Y)
}

// ScreenToScene 将屏幕坐标转换为场景坐标
func ScreenToScene(sx, sy, viewW, viewH float64, camera Point) Point {
	return Point{
		X: sx - viewW/2 + camera.X,
		Y: viewH/2 - sy + camera.Y,
	}
}

// NormalizePointer 将屏幕指针位置归一化到 [-1, 1]（Y 向上）
func NormalizePointer(sx, sy, viewW, viewH float64) Point {
	if viewW <= 0 || viewH <= 0 {
		return Point{}
	}
	return Point{
		X: sx/viewW*2 - 1,
		Y: -(sy/viewH*2 - 1),
	}
}

// FitContain 计算图片以 contain 方式放入视口后的尺寸
// 整张图片可见，按较紧的一边缩放
func FitContain(imgW, imgH, viewW, viewH float64) (float64, float64) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0
	}
	viewAR := viewW / viewH
	imgAR := imgW / imgH

	scale := viewH / imgH
	if imgAR > viewAR {
		scale = viewW / imgW
	}
	return imgW * scale, imgH * scale
}
