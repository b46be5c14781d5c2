// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// NPCVariant 定义 NPC 的外观变体
// 每个变体对应一套精灵图、帧几何和动画策略（见 config.SpriteVariants）
type NPCVariant int

const (
	// VariantHuman 普通 NPC（说话时张嘴）
	VariantHuman NPCVariant = iota
	// VariantCatPop 冒泡猫（说话时张嘴，逐字出现时播放 pop 音效）
	VariantCatPop
	// VariantCatCrunch 啃食猫（循环动画，对话期间循环播放 crunch 音效）
	VariantCatCrunch
	// VariantCatCry 哭泣猫（循环动画）
	VariantCatCry
)

// String 返回变体的字符串表示
func (v NPCVariant) String() string {
	switch v {
	case VariantHuman:
		return "Human"
	case VariantCatPop:
		return "CatPop"
	case VariantCatCrunch:
		return "CatCrunch"
	case VariantCatCry:
		return "CatCry"
	default:
		return "Unknown"
	}
}

// TriggerKind 定义触发区域的类型
type TriggerKind int

const (
	// TriggerSecretDoor 密室入口
	TriggerSecretDoor TriggerKind = iota
	// TriggerFinish 终点旗帜
	TriggerFinish
)

// String 返回触发类型的字符串表示
func (k TriggerKind) String() string {
	switch k {
	case TriggerSecretDoor:
		return "SecretDoor"
	case TriggerFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}
