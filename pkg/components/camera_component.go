package components

// CameraComponent 跟随镜头状态
// 目标点为玩家中心，偏移为半个视口，渲染时 世界坐标 - Target + Offset = 屏幕坐标
type CameraComponent struct {
	// TargetX 目标X坐标（世界坐标，已钳制）
	TargetX float64

	// TargetY 目标Y坐标（固定为半屏高，无纵向滚动）
	TargetY float64

	// OffsetX, OffsetY 视口偏移（半个屏幕）
	OffsetX float64
	OffsetY float64

	// InSecretRoom 本帧镜头是否处于密室特例（不做世界边界钳制）
	InSecretRoom bool
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func (c *CameraComponent) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - c.TargetX + c.OffsetX, wy - c.TargetY + c.OffsetY
}
