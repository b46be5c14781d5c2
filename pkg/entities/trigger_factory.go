package entities

import (
	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/types"
)

// SecretDoorRect 密室入口触发区，底边贴地
func SecretDoorRect() types.Rect {
	return types.Rect{
		X: config.SecretDoorX,
		Y: config.GroundY - config.SecretDoorHeight,
		W: config.SecretDoorWidth,
		H: config.SecretDoorHeight,
	}
}

// FinishFlagRect 终点旗帜触发区，底边贴地
func FinishFlagRect() types.Rect {
	return types.Rect{
		X: config.FinishFlagX,
		Y: config.GroundY - config.FinishFlagHeight,
		W: config.FinishFlagWidth,
		H: config.FinishFlagHeight,
	}
}

// NewTriggerEntity 创建静态触发区实体
func NewTriggerEntity(em *ecs.EntityManager, kind types.TriggerKind, rect types.Rect) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TriggerComponent{Kind: kind, Rect: rect})
	return id
}
