package systems

import (
	"strings"
	"unicode"

	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"github.com/justPoosay/HydrosferaSymulator/pkg/utils"
)

// DialogueSystem NPC 对话状态机
//
// 状态转换：Idle → LineStarting → Revealing → LineComplete → (LineStarting | Idle)
//
// 职责：
//   - 靠近 NPC 按下 Enter 开始对话（该次按键只用于开始，不同时跳过）
//   - 打字机效果逐字显示，标点后停顿，每个非空白字符播放 NPC 的语音音效
//   - Revealing 时按 Enter 立即显示整行，LineComplete 时按 Enter 推进到下一行或结束
//   - 离开当前 NPC 交互区或到达终点时立即关闭对话，不推进行号
//   - 嘴型开合与 NPC 变体音效策略
type DialogueSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	sounds        game.SoundPlayer
	measurer      utils.TextMeasurer

	// BulkReveal 简化显示模式：Revealed = min(int(timer·speed), len)，无标点停顿
	BulkReveal bool
}

// NewDialogueSystem 创建对话系统
// measurer 为 nil 时不做换行
func NewDialogueSystem(em *ecs.EntityManager, gs *game.GameState, sounds game.SoundPlayer, measurer utils.TextMeasurer) *DialogueSystem {
	return &DialogueSystem{
		entityManager: em,
		gameState:     gs,
		sounds:        sounds,
		measurer:      measurer,
		BulkReveal:    config.DialogueBulkReveal,
	}
}

// SetMeasurer 替换文本测量器（字体热重载后调用）
func (s *DialogueSystem) SetMeasurer(m utils.TextMeasurer) {
	s.measurer = m
}

// Update 推进一帧
// 必须在 ProximitySystem 之后调用
func (s *DialogueSystem) Update(dt float64) {
	gs := s.gameState
	d := gs.Dialogue
	in := gs.Input

	if !d.IsActive() {
		if gs.NearNPC != components.NoNPC && !gs.Finished() && in.InteractPressed() {
			s.start(gs.NearNPC)
		}
		return
	}

	npc, ok := s.activeNPC()
	if !ok {
		d.Reset()
		return
	}

	if gs.Finished() {
		logger.Log.Debugf("[DialogueSystem] Closing dialogue with %s: finish reached", npc.Name)
		s.close(npc)
		return
	}
	if !gs.InActiveZone {
		logger.Log.Debugf("[DialogueSystem] Player left %s's zone on line %d", npc.Name, d.CurrentLine)
		s.close(npc)
		return
	}

	if in.InteractPressed() {
		switch d.State {
		case components.DialogueLineStarting, components.DialogueRevealing:
			s.skip(npc)
		case components.DialogueLineComplete:
			if !s.advance(npc) {
				return
			}
		}
	} else {
		s.reveal(npc, dt)
	}

	s.updateMouth(dt)
	s.updateCue(npc)
}

// start 与第 index 个 NPC 开始对话
func (s *DialogueSystem) start(index int) {
	id := s.gameState.NPCEntity(index)
	npc, ok := ecs.GetComponent[*components.NPCComponent](s.entityManager, id)
	if !ok || len(npc.Lines) == 0 {
		return
	}

	d := s.gameState.Dialogue
	d.Reset()
	d.ActiveNPC = index
	s.loadLine(npc, 0)

	logger.Log.Infof("[DialogueSystem] Dialogue started with %s (%d lines)", npc.Name, len(npc.Lines))

	variant := config.GetSpriteVariant(npc.Variant)
	if variant.CueSoundID != "" {
		s.sounds.PlaySound(variant.CueSoundID)
	}
}

// loadLine 载入第 line 行并换行，重置逐字显示状态
func (s *DialogueSystem) loadLine(npc *components.NPCComponent, line int) {
	d := s.gameState.Dialogue
	d.CurrentLine = line
	d.RawText = npc.Lines[line]

	wrapped := strings.Join(strings.Fields(d.RawText), " ")
	if s.measurer != nil {
		wrapped = utils.WordWrap(d.RawText, config.DialogueMaxTextWidth, s.measurer)
	}
	d.Wrapped = []rune(wrapped)

	d.Revealed = 0
	d.RevealTimer = 0
	d.PauseRemaining = 0
	d.MouthOpen = false
	d.MouthTimer = 0
	d.State = components.DialogueLineStarting
}

// reveal 逐字显示
// 开始一行的那一帧不累计时间；下一次调用进入 Revealing 并开始计时
func (s *DialogueSystem) reveal(npc *components.NPCComponent, dt float64) {
	d := s.gameState.Dialogue
	switch d.State {
	case components.DialogueLineStarting:
		d.State = components.DialogueRevealing
	case components.DialogueRevealing:
	default:
		return
	}

	if s.BulkReveal {
		d.RevealTimer += dt
		target := int(d.RevealTimer*config.TextSpeed + config.TimeEpsilon)
		if target > len(d.Wrapped) {
			target = len(d.Wrapped)
		}
		for d.Revealed < target {
			s.revealOne(npc)
		}
		s.completeIfDone()
		return
	}

	// 标点停顿期间只倒计时，剩余时间丢弃
	if d.PauseRemaining > 0 {
		d.PauseRemaining -= dt
		if d.PauseRemaining <= config.TimeEpsilon {
			d.PauseRemaining = 0
		}
		return
	}

	interval := config.RevealInterval()
	d.RevealTimer += dt
	for d.RevealTimer >= interval-config.TimeEpsilon && d.Revealed < len(d.Wrapped) {
		d.RevealTimer -= interval
		r := s.revealOne(npc)
		if strings.ContainsRune(config.PunctuationRunes, r) {
			d.PauseRemaining = config.PunctuationPause
			d.RevealTimer = 0
			break
		}
	}
	s.completeIfDone()
}

// revealOne 显示下一个字符并播放语音音效（空白字符不发声）
func (s *DialogueSystem) revealOne(npc *components.NPCComponent) rune {
	d := s.gameState.Dialogue
	r := d.Wrapped[d.Revealed]
	d.Revealed++
	if npc.SpeechSoundID != "" && !unicode.IsSpace(r) {
		s.sounds.PlaySound(npc.SpeechSoundID)
	}
	return r
}

func (s *DialogueSystem) completeIfDone() {
	d := s.gameState.Dialogue
	if d.FullyRevealed() {
		d.State = components.DialogueLineComplete
		d.RevealTimer = 0
		d.PauseRemaining = 0
	}
}

// skip 立即显示整行，为新出现的字符批量播放语音音效
func (s *DialogueSystem) skip(npc *components.NPCComponent) {
	d := s.gameState.Dialogue
	for d.Revealed < len(d.Wrapped) {
		s.revealOne(npc)
	}
	d.PauseRemaining = 0
	s.completeIfDone()
}

// advance 推进到下一行；已是最后一行时结束对话并返回 false
func (s *DialogueSystem) advance(npc *components.NPCComponent) bool {
	d := s.gameState.Dialogue
	next := d.CurrentLine + 1
	if next < len(npc.Lines) {
		s.loadLine(npc, next)
		return true
	}

	npc.DialogueFinished = true
	logger.Log.Infof("[DialogueSystem] Dialogue with %s finished", npc.Name)
	s.close(npc)
	return false
}

// close 结束对话：停止变体音效并清空会话
func (s *DialogueSystem) close(npc *components.NPCComponent) {
	variant := config.GetSpriteVariant(npc.Variant)
	if variant.CueSoundID != "" {
		s.sounds.StopSound(variant.CueSoundID)
	}
	s.gameState.Dialogue.Reset()
}

// updateMouth 仍有未显示的字符时按固定间隔开合，否则闭嘴
func (s *DialogueSystem) updateMouth(dt float64) {
	d := s.gameState.Dialogue
	if d.FullyRevealed() || d.State == components.DialogueLineComplete {
		d.MouthOpen = false
		d.MouthTimer = 0
		return
	}

	interval := config.MouthToggleInterval()
	d.MouthTimer += dt
	for d.MouthTimer >= interval-config.TimeEpsilon {
		d.MouthTimer -= interval
		d.MouthOpen = !d.MouthOpen
	}
}

// updateCue 维护 NPC 变体音效
func (s *DialogueSystem) updateCue(npc *components.NPCComponent) {
	variant := config.GetSpriteVariant(npc.Variant)
	if variant.CueSoundID == "" {
		return
	}

	playing := s.sounds.IsSoundPlaying(variant.CueSoundID)
	switch variant.Cue {
	case config.CueWhileRevealing:
		revealing := s.gameState.Dialogue.State != components.DialogueLineComplete
		if revealing && !playing {
			s.sounds.PlaySound(variant.CueSoundID)
		} else if !revealing && playing {
			s.sounds.StopSound(variant.CueSoundID)
		}
	case config.CueLoopWhileActive:
		if !playing {
			s.sounds.PlaySound(variant.CueSoundID)
		}
	}
}

func (s *DialogueSystem) activeNPC() (*components.NPCComponent, bool) {
	id := s.gameState.NPCEntity(s.gameState.Dialogue.ActiveNPC)
	return ecs.GetComponent[*components.NPCComponent](s.entityManager, id)
}
