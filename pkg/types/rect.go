package types

// Rect 轴对齐矩形（世界坐标，左上角 + 宽高）
type Rect struct {
	X, Y, W, H float64
}

// CenterX 返回矩形中心 X
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY 返回矩形中心 Y
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Right 返回矩形右边界
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom 返回矩形下边界
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps 严格重叠判断，仅边相接不算重叠
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() && r.Y < other.Bottom() && other.Y < r.Bottom()
}
