package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity 保留的无效实体ID
const InvalidEntity EntityID = 0

// EntityManager 持有关卡中的全部实体及其组件
//
// 关卡在场景创建时一次性构建，运行期间不增删实体。
// 查询结果按实体ID升序返回：关卡构建顺序即迭代顺序，
// 邻近检测的"首个命中"语义依赖这一点。
type EntityManager struct {
	nextID EntityID
	// 实体 -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]any
}

// NewEntityManager 创建空的实体管理器，首个实体 ID 为 1
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     InvalidEntity + 1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// component 按类型取出实体的组件
func (em *EntityManager) component(id EntityID, t reflect.Type) (any, bool) {
	comps, ok := em.components[id]
	if !ok {
		return nil, false
	}
	c, ok := comps[t]
	return c, ok
}

// entitiesWith 返回拥有类型 t 组件的实体（升序）
func (em *EntityManager) entitiesWith(t reflect.Type) []EntityID {
	var ids []EntityID
	for id, comps := range em.components {
		if _, ok := comps[t]; ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体挂载组件，同类型组件会被替换；实体不存在时忽略
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if comps, ok := em.components[id]; ok {
		comps[typeOf[T]()] = component
	}
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	c, ok := em.component(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := c.(T)
	return typed, ok
}

// GetEntitiesWith1 查询拥有组件 T 的实体（升序）
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[T]())
}
