package components

import "github.com/tanema/gween"

// BiomeComponent 背景生物群系段的显示与交叉淡化状态
//
// 同一时间最多只有一个淡化进行中；Elapsed 达到淡化时长的那一帧 FadingTo 成为 DisplayedSegment。
type BiomeComponent struct {
	// DisplayedSegment 当前完全显示的段
	DisplayedSegment int

	// Fading 是否正在淡化
	Fading bool
	// FadingFrom 淡出的段
	FadingFrom int
	// FadingTo 淡入的段
	FadingTo int

	// Progress 淡化进度 [0, 1]，线性
	Progress float64
	// Elapsed 本次淡化已经过的时间，决定淡化何时结束
	Elapsed float64
	// Tween 驱动 Progress 的补间，Fading 为 false 时为 nil
	Tween *gween.Tween
}

// Alphas 返回淡出段与淡入段的不透明度
func (b *BiomeComponent) Alphas() (outgoing, incoming float64) {
	if !b.Fading {
		return 1, 0
	}
	return 1 - b.Progress, b.Progress
}
