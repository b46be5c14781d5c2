package systems

import (
	"math"

	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
)

// PhysicsSystem 玩家移动与脚本化跳跃
//
// 每帧顺序:
//  1. 推进已有的跳跃（本帧刚开始的跳跃下一帧才开始移动）
//  2. 读取方向与冲刺输入，水平移动并钳制到世界边界
//  3. 跳跃键边沿触发新的跳跃
//
// 对话中或到达终点后不响应移动、冲刺与跳跃输入。
type PhysicsSystem struct {
	gameState *game.GameState
	sounds    game.SoundPlayer
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(gs *game.GameState, sounds game.SoundPlayer) *PhysicsSystem {
	return &PhysicsSystem{
		gameState: gs,
		sounds:    sounds,
	}
}

// Update 推进一帧
func (s *PhysicsSystem) Update(dt float64) {
	p := s.gameState.Player
	in := s.gameState.Input

	if p.IsJumping {
		AdvanceJump(p, dt)
	}

	p.IsMoving = false
	p.SpeedMultiplier = 1
	if s.gameState.MovementLocked() {
		return
	}

	if in.Down.Sprint {
		p.SpeedMultiplier = config.SprintMultiplier
		if s.gameState.DebugMode {
			p.SpeedMultiplier = config.DebugSprintMultiplier
		}
	}
	if in.SprintPressed() {
		s.sounds.PlaySound(config.SoundSprint)
	}

	step := config.PlayerSpeed * p.SpeedMultiplier
	switch {
	case in.Down.Right:
		p.X += step
		p.Facing = 1
		p.IsMoving = true
	case in.Down.Left:
		p.X -= step
		p.Facing = -1
		p.IsMoving = true
	}
	p.X = clampFloat(p.X, s.gameState.WorldMinX(), config.WorldWidth-p.Width)

	if in.JumpPressed() && !p.IsJumping {
		p.IsJumping = true
		p.JumpTimer = 0
		p.JumpFrame = 0
		s.sounds.PlaySound(config.SoundJump)
	}
}

// AdvanceJump 推进跳跃计时并计算抛物线高度
// s = 4·H·(t/T)·(1−t/T)，达到时长后精确落回地面
func AdvanceJump(p *components.PlayerComponent, dt float64) {
	p.JumpTimer += dt
	if p.JumpTimer >= config.JumpDuration-config.TimeEpsilon {
		p.IsJumping = false
		p.JumpTimer = 0
		p.JumpFrame = 0
		p.Y = p.GroundY
		return
	}

	progress := math.Min(p.JumpTimer, config.JumpDuration) / config.JumpDuration
	height := 4 * config.JumpHeight * progress * (1 - progress)
	p.Y = math.Max(p.GroundY-height, 0)

	frame := int(progress * config.JumpFrameCount)
	p.JumpFrame = clampInt(frame, 0, config.JumpFrameCount-1)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
