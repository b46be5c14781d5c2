package systems

import (
	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
)

// AnimationSystem 玩家与 NPC 的帧动画
//
// 玩家：行走与奔跑各有独立的帧计数，每帧只推进其中一个（由速度倍率选择），
// 切换时另一个归零；静止且未跳跃时全部归零。跳跃帧由 PhysicsSystem 根据跳跃时间计算。
// NPC：循环变体按自身帧率推进；嘴型同步变体只有当前说话的 NPC 跟随嘴型。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState

	walkInterval float64
	runInterval  float64
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager, gs *game.GameState) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
		gameState:     gs,
		walkInterval:  config.TickFrameInterval(config.WalkFPS),
		runInterval:   config.TickFrameInterval(config.RunFPS),
	}
}

// Update 推进一帧
func (s *AnimationSystem) Update(dt float64) {
	s.updatePlayer(dt)
	s.updateNPCs(dt)
}

func (s *AnimationSystem) updatePlayer(dt float64) {
	p := s.gameState.Player

	// 跳跃期间走/跑两个循环都冻结，落地后从原帧继续
	if p.IsJumping {
		p.Mode = components.ModeJump
		return
	}

	switch {
	case p.IsMoving && p.SpeedMultiplier > 1:
		p.WalkFrame, p.WalkAccumulator = 0, 0
		p.RunFrame, p.RunAccumulator = stepFrame(p.RunFrame, p.RunAccumulator, dt, s.runInterval, config.RunFrameCount)
		p.Mode = components.ModeRun
	case p.IsMoving:
		p.RunFrame, p.RunAccumulator = 0, 0
		p.WalkFrame, p.WalkAccumulator = stepFrame(p.WalkFrame, p.WalkAccumulator, dt, s.walkInterval, config.WalkFrameCount)
		p.Mode = components.ModeWalk
	default:
		p.WalkFrame, p.WalkAccumulator = 0, 0
		p.RunFrame, p.RunAccumulator = 0, 0
		p.Mode = components.ModeIdle
	}
}

func (s *AnimationSystem) updateNPCs(dt float64) {
	d := s.gameState.Dialogue
	for i, id := range s.gameState.NPCs {
		npc, ok := ecs.GetComponent[*components.NPCComponent](s.entityManager, id)
		if !ok {
			continue
		}
		anim, ok := ecs.GetComponent[*components.SpriteAnimationComponent](s.entityManager, id)
		if !ok {
			continue
		}

		variant := config.GetSpriteVariant(npc.Variant)
		switch variant.Anim {
		case config.AnimLoop:
			if variant.FPS > 0 {
				anim.Frame, anim.Accumulator = stepFrame(anim.Frame, anim.Accumulator, dt, 1/variant.FPS, variant.FrameCount)
			}
		case config.AnimMouthSync:
			anim.Frame = 0
			if d.ActiveNPC == i && d.MouthOpen {
				anim.Frame = 1
			}
		}
		anim.Frame = ClampFrame(anim.Frame, variant.FrameCount)
	}
}

// stepFrame 时间累加器推进：acc += dt，每满一个间隔前进一帧
func stepFrame(frame int, acc, dt, interval float64, count int) (int, float64) {
	if count <= 0 || interval <= 0 {
		return 0, 0
	}
	acc += dt
	for acc >= interval-config.TimeEpsilon {
		frame = (frame + 1) % count
		acc -= interval
	}
	return frame, acc
}

// ClampFrame 将帧索引限制在 [0, count-1]
func ClampFrame(frame, count int) int {
	if count <= 0 {
		return 0
	}
	return clampInt(frame, 0, count-1)
}
