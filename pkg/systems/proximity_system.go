package systems

import (
	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"github.com/justPoosay/HydrosferaSymulator/pkg/types"
	"github.com/solarlune/resolv"
)

// resolv 对象标签
const (
	tagPlayer = "player"
	tagNPC    = "npc"
	tagDoor   = "door"
	tagFinish = "finish"
)

const (
	// proximityCellSize 空间网格单元边长（像素）
	proximityCellSize = 32
	// proximityPad resolv 按整数单元登记对象（右/下边界减 1），
	// 登记时放大 1 像素使网格查询覆盖闭合矩形，不会漏掉亚像素重叠
	proximityPad = 1.0
)

// zoneBody 一个登记在空间网格中的交互区
type zoneBody struct {
	obj  *resolv.Object
	rect types.Rect
}

// ProximitySystem 玩家与 NPC 交互区、密室入口、终点旗帜的重叠检测
//
// 所有区域登记在 resolv.Space 中，每帧用玩家对象的 Check 取得候选区域，
// 再对候选做严格 AABB 判断（仅边相接不算重叠）。
// 每帧在状态转换之前刷新一次 GameState 中的检测结果：
//   - NearNPC: 按 GameState.NPCs 顺序第一个命中的 NPC
//   - InActiveZone: 玩家是否仍在当前对话 NPC 的交互区内
//   - AtSecretDoor / AtFinish: 触发区是否命中
type ProximitySystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState

	space  *resolv.Space
	player *resolv.Object
	zones  map[ecs.EntityID]*zoneBody
	hits   map[ecs.EntityID]bool
}

// NewProximitySystem 创建邻近检测系统
// 空间覆盖 [SecretRoomMinX, WorldWidth] 的整个世界，原点平移到密室左边界
func NewProximitySystem(em *ecs.EntityManager, gs *game.GameState) *ProximitySystem {
	width := int(config.WorldWidth - config.SecretRoomMinX)
	height := 2 * config.ScreenHeight
	s := &ProximitySystem{
		entityManager: em,
		gameState:     gs,
		space:         resolv.NewSpace(width, height, proximityCellSize, proximityCellSize),
		player:        resolv.NewObject(0, 0, gs.Player.Width+proximityPad, gs.Player.Height+proximityPad, tagPlayer),
		zones:         make(map[ecs.EntityID]*zoneBody),
		hits:          make(map[ecs.EntityID]bool),
	}
	s.space.Add(s.player)
	return s
}

// Update 刷新检测结果
func (s *ProximitySystem) Update() {
	gs := s.gameState
	s.syncZones()

	player := PlayerRect(gs.Player)
	s.player.X, s.player.Y = spaceX(player.X), player.Y
	s.player.Update()

	gs.AtSecretDoor = false
	gs.AtFinish = false
	for id := range s.hits {
		delete(s.hits, id)
	}
	if collision := s.player.Check(0, 0, tagNPC, tagDoor, tagFinish); collision != nil {
		for _, obj := range collision.Objects {
			id, ok := obj.Data.(ecs.EntityID)
			if !ok {
				continue
			}
			body := s.zones[id]
			if body == nil || !player.Overlaps(body.rect) {
				continue
			}
			s.hits[id] = true
			switch {
			case obj.HasTags(tagDoor):
				gs.AtSecretDoor = true
			case obj.HasTags(tagFinish):
				gs.AtFinish = true
			}
		}
	}

	gs.NearNPC = components.NoNPC
	gs.InActiveZone = false
	for i, id := range gs.NPCs {
		if !s.hits[id] {
			continue
		}
		if gs.NearNPC == components.NoNPC {
			gs.NearNPC = i
		}
		if i == gs.Dialogue.ActiveNPC {
			gs.InActiveZone = true
		}
	}
}

// syncZones 把 ECS 中的交互区与触发区同步到空间网格，矩形变化时重新登记
func (s *ProximitySystem) syncZones() {
	for _, id := range s.gameState.NPCs {
		if zone, ok := ecs.GetComponent[*components.InteractionZoneComponent](s.entityManager, id); ok {
			s.place(id, zone.Rect, tagNPC)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.TriggerComponent](s.entityManager) {
		trigger, _ := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id)
		tag := tagFinish
		if trigger.Kind == types.TriggerSecretDoor {
			tag = tagDoor
		}
		s.place(id, trigger.Rect, tag)
	}
}

func (s *ProximitySystem) place(id ecs.EntityID, r types.Rect, tag string) {
	body, ok := s.zones[id]
	if !ok {
		obj := resolv.NewObject(spaceX(r.X), r.Y, r.W+proximityPad, r.H+proximityPad, tag)
		obj.Data = id
		s.space.Add(obj)
		s.zones[id] = &zoneBody{obj: obj, rect: r}
		logger.Log.Debugf("[ProximitySystem] Registered %s zone for entity %d at (%.0f, %.0f)", tag, id, r.X, r.Y)
		return
	}
	if body.rect == r {
		return
	}
	body.rect = r
	body.obj.X, body.obj.Y = spaceX(r.X), r.Y
	body.obj.W, body.obj.H = r.W+proximityPad, r.H+proximityPad
	body.obj.Update()
}

// spaceX 世界 X 转为空间网格 X（网格原点在密室左边界）
func spaceX(x float64) float64 {
	return x - config.SecretRoomMinX
}

// PlayerRect 返回玩家碰撞盒
func PlayerRect(p *components.PlayerComponent) types.Rect {
	return types.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
