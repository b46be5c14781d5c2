package systems

import (
	"math"

	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BiomeSystem 背景生物群系段的交叉淡化
//
// 玩家中心所在段变化时启动一次线性淡化（gween 补间驱动进度）。
// 同一时间最多一个淡化；淡化中到达另一个段只改变 FadingTo，补间不重新开始。
type BiomeSystem struct {
	gameState *game.GameState
}

// NewBiomeSystem 创建生物群系系统
func NewBiomeSystem(gs *game.GameState) *BiomeSystem {
	return &BiomeSystem{gameState: gs}
}

// Update 推进一帧
func (s *BiomeSystem) Update(dt float64) {
	b := s.gameState.Biome
	segment := SegmentAt(s.gameState.Player.CenterX())

	if !b.Fading {
		if segment != b.DisplayedSegment {
			b.Fading = true
			b.FadingFrom = b.DisplayedSegment
			b.FadingTo = segment
			b.Progress = 0
			b.Elapsed = 0
			b.Tween = gween.New(0, 1, config.BiomeFadeDuration, ease.Linear)
			logger.Log.Debugf("[BiomeSystem] Fade %s -> %s",
				config.BiomeNames[b.FadingFrom], config.BiomeNames[b.FadingTo])
		}
		return
	}

	if segment != b.FadingTo {
		b.FadingTo = segment
	}

	// gween 以 float32 计时，累加误差会让补间晚一帧结束，结束时刻以 Elapsed 为准
	progress, finished := b.Tween.Update(float32(dt))
	b.Progress = math.Max(0, math.Min(1, float64(progress)))
	b.Elapsed += dt
	if finished || b.Elapsed >= config.BiomeFadeDuration-config.TimeEpsilon {
		b.DisplayedSegment = b.FadingTo
		b.Fading = false
		b.Progress = 0
		b.Elapsed = 0
		b.Tween = nil
	}
}

// SegmentAt 世界 X 所在的背景段，负坐标归为 0，超出右侧归为最后一段
func SegmentAt(x float64) int {
	if x < 0 {
		return 0
	}
	return clampInt(int(math.Floor(x/config.SegmentWidth)), 0, config.SegmentCount-1)
}
