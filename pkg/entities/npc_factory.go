package entities

import (
	"fmt"

	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/types"
)

// NPCSpec NPC 的关卡数据
type NPCSpec struct {
	Name string
	// X 碰撞盒左边 X（世界坐标）
	X       float64
	Variant types.NPCVariant
	// SpeechSoundID 逐字音效，为空表示没有
	SpeechSoundID string
	Lines         []string
}

// NPCBounds 返回站在地面上的 NPC 碰撞盒
func NPCBounds(x float64) types.Rect {
	return types.Rect{X: x, Y: config.NPCY, W: config.NPCWidth, H: config.NPCHeight}
}

// InteractionZone 以 NPC 为中心、宽 InteractionRadius 的交互区
// 顶部比 NPC 高 10 像素，高度覆盖跳跃中的玩家
func InteractionZone(bounds types.Rect) types.Rect {
	return types.Rect{
		X: bounds.CenterX() - config.InteractionRadius/2,
		Y: bounds.Y - 10,
		W: config.InteractionRadius,
		H: config.InteractionHeight,
	}
}

// NewNPCEntity 创建 NPC 实体
//
// 返回:
//   - ecs.EntityID: 创建的实体 ID，失败时为 ecs.InvalidEntity
//   - error: 参数无效时返回
func NewNPCEntity(em *ecs.EntityManager, spec NPCSpec) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if len(spec.Lines) == 0 {
		return ecs.InvalidEntity, fmt.Errorf("npc %q has no dialogue lines", spec.Name)
	}
	if _, ok := config.SpriteVariants[spec.Variant]; !ok {
		return ecs.InvalidEntity, fmt.Errorf("npc %q: unknown sprite variant %d", spec.Name, spec.Variant)
	}

	bounds := NPCBounds(spec.X)
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.NPCComponent{
		Name:          spec.Name,
		Bounds:        bounds,
		Lines:         append([]string(nil), spec.Lines...),
		Variant:       spec.Variant,
		SpeechSoundID: spec.SpeechSoundID,
	})
	ecs.AddComponent(em, id, &components.InteractionZoneComponent{Rect: InteractionZone(bounds)})
	ecs.AddComponent(em, id, &components.SpriteAnimationComponent{})
	return id, nil
}
