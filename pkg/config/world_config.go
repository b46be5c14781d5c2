package config

// 世界与屏幕布局常量
// 所有坐标使用"世界坐标系"，原点位于主世界最左侧；密室位于负坐标区域

// Screen & World (屏幕与世界尺寸)
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 1280
	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 720

	// SegmentWidth 每个生物群系背景段的宽度，与屏幕同宽
	SegmentWidth = 1280.0
	// SegmentCount 背景段数量
	SegmentCount = 6

	// WorldWidth 主世界宽度 = 段宽 × 段数
	WorldWidth = SegmentWidth * SegmentCount // 7680
	// WorldHeight 世界高度，与屏幕同高（无纵向滚动）
	WorldHeight = 720.0

	// GroundHeight 地面条带高度
	GroundHeight = 20.0
	// GroundY 地面上沿 Y 坐标
	GroundY = WorldHeight - GroundHeight
)

// Player (玩家)
const (
	// PlayerSpeed 每个逻辑帧的水平移动距离
	PlayerSpeed = 5.0
	// SprintMultiplier 按住 Shift 时的速度倍率
	SprintMultiplier = 3.0
	// DebugSprintMultiplier 调试模式下冲刺的速度倍率
	DebugSprintMultiplier = 6.0

	PlayerWidth  = 226.0
	PlayerHeight = 182.0

	// PlayerStartX 出生点 X
	PlayerStartX = 400.0
	// PlayerGroundY 玩家站在地面时的 Y（精灵底部留 10 像素阴影余量）
	PlayerGroundY = float64(ScreenHeight) - PlayerHeight - 10.0
)

// Jump (跳跃)
const (
	// JumpDuration 一次跳跃的总时长（秒）
	JumpDuration = 1.0
	// JumpHeight 抛物线顶点高度 = 世界高度的一半
	JumpHeight = WorldHeight / 2.0
)

// Player sprite sheets (玩家精灵图帧几何)
const (
	WalkFrameCount  = 5
	WalkFrameWidth  = 339
	WalkFrameHeight = 273
	WalkFPS         = 6

	RunFrameCount = 8
	RunFPS        = 12

	JumpFrameCount = 11

	HappyFrameCount = 8
	HappyFPS        = 10
)

// LogicTicksPerSecond 固定逻辑帧率
// 动画帧间隔按 round(60/fps) 个逻辑帧换算，保证 60 TPS 下的节奏不变
const LogicTicksPerSecond = 60

// TimeEpsilon 浮点时间累加的容差
// 60 个 1/60 累加的结果可能略小于 1.0
const TimeEpsilon = 1e-9

// NPC layout (NPC 布局)
const (
	NPCWidth  = 64.0
	NPCHeight = 120.0
	// NPCY NPC 碰撞盒顶部 Y
	NPCY = float64(ScreenHeight) - NPCHeight - 20.0

	// InteractionRadius 交互区域宽度
	InteractionRadius = 150.0
	// InteractionHeight 交互区域高度（覆盖跳跃中的玩家头部）
	InteractionHeight = PlayerHeight + 60.0

	// NPCRenderScale 精灵渲染高度相对碰撞盒高度的倍率
	NPCRenderScale = 2.2
	// NPCRenderOffsetY 精灵向下的偏移，使脚踩在地面上
	NPCRenderOffsetY = 18.0
)

// Secret room (密室)
const (
	// SecretRoomMinX 密室左边界（负坐标）
	SecretRoomMinX = -1280.0
	// SecretRoomWidth 密室宽度
	SecretRoomWidth = 1280.0
	// SecretRoomMidX 密室中点，密室内镜头固定于此
	SecretRoomMidX = SecretRoomMinX + SecretRoomWidth/2

	// SecretDoorX 密室入口触发区 X
	SecretDoorX = 60.0
	// SecretDoorWidth 密室入口宽度
	SecretDoorWidth = 100.0
	// SecretDoorHeight 密室入口高度
	SecretDoorHeight = 220.0
)

// Finish flag (终点旗帜)
const (
	FinishFlagWidth  = 80.0
	FinishFlagHeight = 200.0
	// FinishFlagX 终点旗帜 X（距离世界右边界 260 像素）
	FinishFlagX = WorldWidth - 260.0
)

// Celebration (终点庆祝)
const (
	// CelebrationLoops 开心动画播放完整循环的次数，之后程序退出
	CelebrationLoops = 3

	BannerFrameCount = 4
	BannerFPS        = 6
	BannerWidth      = 640.0
	BannerHeight     = 160.0
	// BannerBobDuration 横幅上下浮动的半周期（秒）
	BannerBobDuration = 0.6
	// BannerBobAmplitude 横幅浮动幅度（像素）
	BannerBobAmplitude = 12.0
)

// Biome cross-fade (生物群系淡入淡出)
const (
	// BiomeFadeDuration 相邻背景段交叉淡化时长（秒）
	BiomeFadeDuration = 0.8
)

// BiomeNames 每个背景段对应的生物群系名称（调试显示用）
var BiomeNames = [SegmentCount]string{
	"ocean", "river", "wetland", "city", "aral", "glacier",
}
