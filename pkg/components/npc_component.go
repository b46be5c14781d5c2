package components

import "github.com/justPoosay/HydrosferaSymulator/pkg/types"

// NPCComponent NPC 的静态数据
// 关卡构建后不再修改，只有 DialogueFinished 是会话内的临时标记
type NPCComponent struct {
	// Name NPC 名称（日志与调试显示）
	Name string
	// Bounds 碰撞盒
	Bounds types.Rect
	// Lines 按顺序显示的对话行
	Lines []string
	// Variant 外观变体
	Variant types.NPCVariant
	// SpeechSoundID 逐字音效 ID，为空表示没有
	SpeechSoundID string
	// DialogueFinished 该 NPC 的对话是否已完整播放过一次
	DialogueFinished bool
}

// InteractionZoneComponent NPC 的交互区域（以 NPC 为中心的更大矩形）
type InteractionZoneComponent struct {
	Rect types.Rect
}

// SpriteAnimationComponent 循环精灵动画的帧状态
type SpriteAnimationComponent struct {
	// Frame 当前帧
	Frame int
	// Accumulator 时间累加器（秒）
	Accumulator float64
}
