package config

import "github.com/justPoosay/HydrosferaSymulator/pkg/types"

// AnimPolicy NPC 精灵的动画策略
type AnimPolicy int

const (
	// AnimMouthSync 帧 0 闭嘴，帧 1 张嘴；仅当前说话的 NPC 跟随嘴型开合
	AnimMouthSync AnimPolicy = iota
	// AnimLoop 按固定帧率循环播放
	AnimLoop
)

// CuePolicy NPC 变体音效的播放策略
type CuePolicy int

const (
	// CueNone 无变体音效
	CueNone CuePolicy = iota
	// CueWhileRevealing 字符出现时播放，整行显示完或跳过时停止
	CueWhileRevealing
	// CueLoopWhileActive 对话进行期间保持循环
	CueLoopWhileActive
)

// SpriteVariant NPC 外观变体的能力描述
// 在关卡构建时选定一次，之后通过查表分发，不在每帧重复分支
type SpriteVariant struct {
	// TextureID 精灵图资源 ID
	TextureID string
	// FrameWidth / FrameHeight 单帧尺寸
	FrameWidth  int
	FrameHeight int
	// FrameCount 帧数
	FrameCount int
	// FPS 循环动画帧率（仅 AnimLoop 使用）
	FPS float64
	// Anim 动画策略
	Anim AnimPolicy
	// CueSoundID 变体音效 ID（开始对话时播放），为空表示无
	CueSoundID string
	// Cue 变体音效策略
	Cue CuePolicy
}

// SpriteVariants 变体能力表
var SpriteVariants = map[types.NPCVariant]SpriteVariant{
	types.VariantHuman: {
		TextureID:   ImageNPC,
		FrameWidth:  316,
		FrameHeight: 362,
		FrameCount:  2,
		Anim:        AnimMouthSync,
	},
	types.VariantCatPop: {
		TextureID:   ImageCatPop,
		FrameWidth:  81,
		FrameHeight: 84,
		FrameCount:  2,
		Anim:        AnimMouthSync,
		CueSoundID:  SoundPop,
		Cue:         CueWhileRevealing,
	},
	types.VariantCatCrunch: {
		TextureID:   ImageCatCrunch,
		FrameWidth:  113,
		FrameHeight: 200,
		FrameCount:  24,
		FPS:         12,
		Anim:        AnimLoop,
		CueSoundID:  SoundCrunch,
		Cue:         CueLoopWhileActive,
	},
	types.VariantCatCry: {
		TextureID:   ImageCatCry,
		FrameWidth:  100,
		FrameHeight: 125,
		FrameCount:  60,
		FPS:         12,
		Anim:        AnimLoop,
	},
}

// GetSpriteVariant 查找变体配置，未知变体回退为普通 NPC
func GetSpriteVariant(v types.NPCVariant) SpriteVariant {
	if sv, ok := SpriteVariants[v]; ok {
		return sv
	}
	return SpriteVariants[types.VariantHuman]
}

// TickFrameInterval 将"每秒帧数"换算为按逻辑帧取整后的帧间隔（秒）
// 例如 6 fps → round(60/6)=10 帧 → 10/60 秒
func TickFrameInterval(fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	ticks := int(float64(LogicTicksPerSecond)/fps + 0.5)
	if ticks < 1 {
		ticks = 1
	}
	return float64(ticks) / float64(LogicTicksPerSecond)
}
