package components

import "github.com/tanema/gween"

// CelebrationComponent 终点庆祝序列
// Active 一旦为 true 在本次会话内不会再变回 false
type CelebrationComponent struct {
	// Active 是否已触发
	Active bool

	// HappyFrame 开心动画当前帧
	HappyFrame int
	// HappyAccumulator 开心动画时间累加器
	HappyAccumulator float64
	// HappyLoops 已完成的完整循环次数
	HappyLoops int

	// BannerFrame 横幅动画当前帧
	BannerFrame int
	// BannerAccumulator 横幅动画时间累加器
	BannerAccumulator float64
	// BannerOffsetY 横幅上下浮动偏移
	BannerOffsetY float64
	// BannerTween 横幅浮动补间（来回反转）
	BannerTween *gween.Tween
	// BannerRising 当前补间方向（true 表示向上）
	BannerRising bool
	// BannerBobElapsed 当前半周期已经过的时间
	BannerBobElapsed float64

	// Done 开心动画已完成配置的循环次数
	Done bool
}
