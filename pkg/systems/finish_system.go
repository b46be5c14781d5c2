package systems

import (
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FinishSystem 终点庆祝序列
//
// 玩家第一次碰到终点旗时触发（只触发一次，之后不可撤销）：
// 停止背景音乐，播放欢呼音效，开心动画和祝贺横幅各自按自己的帧率播放。
// 开心动画完成 CelebrationLoops 次完整循环后设置 ShouldExit。
// 对话与移动的冻结由 GameState.Finished() 驱动。
type FinishSystem struct {
	gameState *game.GameState
	sounds    game.SoundPlayer
	music     game.MusicPlayer
}

// NewFinishSystem 创建终点系统，music 可为 nil
func NewFinishSystem(gs *game.GameState, sounds game.SoundPlayer, music game.MusicPlayer) *FinishSystem {
	return &FinishSystem{gameState: gs, sounds: sounds, music: music}
}

// Update 推进一帧
func (s *FinishSystem) Update(dt float64) {
	c := s.gameState.Celebration
	if !c.Active {
		if s.gameState.AtFinish {
			s.trigger()
		}
		return
	}
	if c.Done {
		return
	}

	s.updateHappy(dt)
	c.BannerFrame, c.BannerAccumulator = stepFrame(c.BannerFrame, c.BannerAccumulator, dt,
		config.TickFrameInterval(config.BannerFPS), config.BannerFrameCount)
	s.updateBannerBob(dt)
}

func (s *FinishSystem) trigger() {
	c := s.gameState.Celebration
	c.Active = true
	c.BannerRising = true
	c.BannerTween = newBannerBob(c.BannerRising)
	c.BannerBobElapsed = 0
	c.BannerOffsetY = config.BannerBobAmplitude

	if s.music != nil {
		s.music.StopMusic()
	}
	if s.sounds != nil {
		s.sounds.PlaySound(config.SoundCheer)
	}
	logger.Log.Infof("[FinishSystem] Finish reached at x=%.1f, celebration started", s.gameState.Player.X)
}

// updateHappy 开心动画，按逻辑帧取整后的间隔推进并统计完整循环
func (s *FinishSystem) updateHappy(dt float64) {
	c := s.gameState.Celebration
	interval := config.TickFrameInterval(config.HappyFPS)

	c.HappyAccumulator += dt
	for c.HappyAccumulator >= interval-config.TimeEpsilon {
		c.HappyAccumulator -= interval
		c.HappyFrame++
		if c.HappyFrame < config.HappyFrameCount {
			continue
		}
		c.HappyFrame = 0
		c.HappyLoops++
		if c.HappyLoops >= config.CelebrationLoops {
			c.HappyFrame = config.HappyFrameCount - 1
			c.Done = true
			s.gameState.ShouldExit = true
			logger.Log.Infof("[FinishSystem] Celebration finished after %d loops, requesting exit", c.HappyLoops)
			return
		}
	}
}

// updateBannerBob 横幅在 ±BannerBobAmplitude 之间来回浮动
// 每 BannerBobDuration 反向一次，半周期的结束以 float64 累计时间为准
func (s *FinishSystem) updateBannerBob(dt float64) {
	c := s.gameState.Celebration
	if c.BannerTween == nil {
		c.BannerTween = newBannerBob(c.BannerRising)
		c.BannerBobElapsed = 0
	}
	offset, finished := c.BannerTween.Update(float32(dt))
	c.BannerOffsetY = float64(offset)
	c.BannerBobElapsed += dt
	if finished || c.BannerBobElapsed >= config.BannerBobDuration-config.TimeEpsilon {
		if c.BannerRising {
			c.BannerOffsetY = -config.BannerBobAmplitude
		} else {
			c.BannerOffsetY = config.BannerBobAmplitude
		}
		c.BannerRising = !c.BannerRising
		c.BannerTween = newBannerBob(c.BannerRising)
		c.BannerBobElapsed = 0
	}
}

func newBannerBob(rising bool) *gween.Tween {
	if rising {
		return gween.New(config.BannerBobAmplitude, -config.BannerBobAmplitude, config.BannerBobDuration, ease.InOutQuad)
	}
	return gween.New(-config.BannerBobAmplitude, config.BannerBobAmplitude, config.BannerBobDuration, ease.InOutQuad)
}
