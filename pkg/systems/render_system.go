package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/types"
)

// DrawLayer 绘制层，列表内严格按 背景 → 世界 → 屏幕 排列
type DrawLayer int

const (
	// LayerBackground 背景（屏幕坐标，不随镜头移动）
	LayerBackground DrawLayer = iota
	// LayerWorld 世界（已做镜头变换）
	LayerWorld
	// LayerScreen 屏幕 UI
	LayerScreen
)

// DrawKind 绘制命令类型
type DrawKind int

const (
	DrawImage DrawKind = iota
	DrawRect
	DrawRectOutline
	DrawText
)

// DrawCommand 一条绘制命令（纯数据），坐标均为屏幕坐标
type DrawCommand struct {
	Layer DrawLayer
	Kind  DrawKind
	// Name 命令用途（测试与调试用）
	Name string

	X, Y, W, H float64

	// ImageID 纹理资源 ID；纹理缺失时以 Color 填充目标矩形
	ImageID string
	// Frame / FrameCount 横向精灵条中的帧
	Frame      int
	FrameCount int
	// FrameW / FrameH 单帧尺寸，0 表示按图片宽度 / FrameCount 推算
	FrameW, FrameH int
	FlipX          bool
	// Alpha 不透明度 [0, 1]
	Alpha float64

	Color       color.RGBA
	StrokeWidth float64

	Text     string
	FontSize float64
	Spacing  float64
}

// TextureSource 按资源 ID 取纹理
type TextureSource interface {
	LoadImageByID(resourceID string) (*ebiten.Image, error)
}

// FontSource 按资源 ID 与字号取字体
type FontSource interface {
	LoadFont(resourceID string, size float64) (*text.GoTextFace, error)
}

var (
	colorSky          = color.RGBA{102, 191, 255, 255}
	colorGround       = color.RGBA{0, 117, 44, 255}
	colorGroundLine   = color.RGBA{127, 106, 79, 255}
	colorSecretRoom   = color.RGBA{48, 24, 64, 255}
	colorNPCFallback  = color.RGBA{0, 121, 241, 255}
	colorPlayer       = color.RGBA{255, 161, 0, 255}
	colorDoor         = color.RGBA{112, 72, 40, 255}
	colorFlag         = color.RGBA{230, 41, 55, 255}
	colorBanner       = color.RGBA{253, 249, 0, 255}
	colorZoneIdle     = color.RGBA{253, 249, 0, 255}
	colorZoneNear     = color.RGBA{230, 41, 55, 255}
	colorZoneFinished = color.RGBA{80, 80, 80, 255}
	colorTrigger      = color.RGBA{200, 122, 255, 255}
	colorDialogueFill = color.RGBA{20, 20, 20, 220}
	colorWhite        = color.RGBA{255, 255, 255, 255}
	colorHUD          = color.RGBA{80, 80, 80, 255}
)

// biomeFallbackColors 背景图缺失时每段的底色
var biomeFallbackColors = [config.SegmentCount]color.RGBA{
	{0, 82, 172, 255},
	{102, 191, 255, 255},
	{110, 160, 120, 255},
	{150, 150, 160, 255},
	{211, 176, 131, 255},
	{220, 240, 255, 255},
}

const helpText = "Strzałki lub A/D: ruch. Shift: bieg. Spacja/W/Góra: skok. [Enter]: rozmowa."

// RenderSystem 渲染系统
//
// BuildDrawList 只读取 GameState 与 ECS 组件，生成确定顺序的绘制列表；
// Draw 用 Ebitengine 执行列表。纹理缺失时退化为纯色矩形。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	textures      TextureSource
	fonts         FontSource

	// warned 已报告过缺失的资源 ID，避免每帧重复日志
	warned map[string]bool
}

// NewRenderSystem 创建渲染系统，textures / fonts 可为 nil（全部以矩形绘制，不绘制文字）
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState, textures TextureSource, fonts FontSource) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
		textures:      textures,
		fonts:         fonts,
		warned:        make(map[string]bool),
	}
}

// ResetCaches 热重载后调用，重新报告缺失资源
func (s *RenderSystem) ResetCaches() {
	s.warned = make(map[string]bool)
}

// BuildDrawList 生成本帧的绘制列表
func (s *RenderSystem) BuildDrawList() []DrawCommand {
	list := make([]DrawCommand, 0, 32)
	list = s.appendBackground(list)
	list = s.appendWorld(list)
	list = s.appendScreen(list)
	return list
}

func (s *RenderSystem) appendBackground(list []DrawCommand) []DrawCommand {
	gs := s.gameState
	w, h := float64(config.ScreenWidth), float64(config.GroundY)

	if gs.Camera.InSecretRoom {
		list = append(list, backgroundImage("background", config.ImageSecretRoomBG, colorSecretRoom, 1, w, h))
	} else if b := gs.Biome; b.Fading {
		out, in := b.Alphas()
		list = append(list,
			backgroundImage("background-out", config.BiomeImageIDs[b.FadingFrom], biomeFallbackColors[b.FadingFrom], out, w, h),
			backgroundImage("background-in", config.BiomeImageIDs[b.FadingTo], biomeFallbackColors[b.FadingTo], in, w, h),
		)
	} else {
		seg := ClampFrame(b.DisplayedSegment, config.SegmentCount)
		list = append(list, backgroundImage("background", config.BiomeImageIDs[seg], biomeFallbackColors[seg], 1, w, h))
	}

	return append(list,
		DrawCommand{Layer: LayerBackground, Kind: DrawRect, Name: "ground",
			Y: config.GroundY, W: w, H: config.GroundHeight, Color: colorGround},
		DrawCommand{Layer: LayerBackground, Kind: DrawRect, Name: "ground-line",
			Y: config.GroundY, W: w, H: 1, Color: colorGroundLine},
	)
}

func backgroundImage(name, id string, fallback color.RGBA, alpha, w, h float64) DrawCommand {
	return DrawCommand{
		Layer: LayerBackground, Kind: DrawImage, Name: name,
		W: w, H: h, ImageID: id, Alpha: alpha, Color: fallback,
	}
}

func (s *RenderSystem) appendWorld(list []DrawCommand) []DrawCommand {
	gs := s.gameState
	triggers := ecs.GetEntitiesWith1[*components.TriggerComponent](s.entityManager)

	if gs.DebugMode {
		for i, id := range gs.NPCs {
			npc, ok := ecs.GetComponent[*components.NPCComponent](s.entityManager, id)
			zone, okZone := ecs.GetComponent[*components.InteractionZoneComponent](s.entityManager, id)
			if !ok || !okZone {
				continue
			}
			clr := colorZoneIdle
			if i == gs.NearNPC {
				clr = colorZoneNear
				if npc.DialogueFinished {
					clr = colorZoneFinished
				}
			}
			list = append(list, s.worldOutline("zone", zone.Rect, clr))
		}
		for _, id := range triggers {
			if trig, ok := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id); ok {
				list = append(list, s.worldOutline("trigger", trig.Rect, colorTrigger))
			}
		}
	}

	for _, id := range triggers {
		if trig, ok := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id); ok && trig.Kind == types.TriggerSecretDoor {
			list = append(list, s.worldImage("door", config.ImageSecretDoor, trig.Rect, colorDoor))
		}
	}

	for i, id := range gs.NPCs {
		if cmd, ok := s.npcCommand(i, id); ok {
			list = append(list, cmd)
		}
	}

	for _, id := range triggers {
		if trig, ok := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id); ok && trig.Kind == types.TriggerFinish {
			list = append(list, s.worldImage("flag", config.ImageFinishFlag, trig.Rect, colorFlag))
		}
	}

	return append(list, s.playerCommand())
}

// npcCommand NPC 精灵：高度为碰撞盒的 NPCRenderScale 倍，水平居中，脚底下移 NPCRenderOffsetY
func (s *RenderSystem) npcCommand(index int, id ecs.EntityID) (DrawCommand, bool) {
	npc, ok := ecs.GetComponent[*components.NPCComponent](s.entityManager, id)
	if !ok {
		return DrawCommand{}, false
	}
	variant := config.GetSpriteVariant(npc.Variant)
	frame := 0
	if anim, ok := ecs.GetComponent[*components.SpriteAnimationComponent](s.entityManager, id); ok {
		frame = ClampFrame(anim.Frame, variant.FrameCount)
	}

	renderH := npc.Bounds.H * config.NPCRenderScale
	renderW := renderH
	if variant.FrameHeight > 0 {
		renderW = float64(variant.FrameWidth) * renderH / float64(variant.FrameHeight)
	}
	x := npc.Bounds.CenterX() - renderW/2
	y := npc.Bounds.Bottom() - renderH + config.NPCRenderOffsetY
	sx, sy := s.gameState.Camera.WorldToScreen(x, y)

	return DrawCommand{
		Layer: LayerWorld, Kind: DrawImage, Name: fmt.Sprintf("npc-%d", index),
		X: sx, Y: sy, W: renderW, H: renderH,
		ImageID: variant.TextureID, Frame: frame, FrameCount: variant.FrameCount,
		FrameW: variant.FrameWidth, FrameH: variant.FrameHeight,
		Alpha: 1, Color: colorNPCFallback,
	}, true
}

// playerCommand 玩家精灵：终点后为开心动画，否则 跳跃 > 奔跑 > 行走/站立
func (s *RenderSystem) playerCommand() DrawCommand {
	gs := s.gameState
	p := gs.Player

	id, frame, count := config.ImageCatWalk, p.WalkFrame, config.WalkFrameCount
	frameW, frameH := config.WalkFrameWidth, config.WalkFrameHeight
	switch {
	case gs.Finished():
		id, frame, count = config.ImageCatHappy, gs.Celebration.HappyFrame, config.HappyFrameCount
		frameW, frameH = 0, 0
	case p.IsJumping:
		id, frame, count = config.ImageCatJump, p.JumpFrame, config.JumpFrameCount
		frameW, frameH = 0, 0
	case p.Mode == components.ModeRun:
		id, frame, count = config.ImageCatRun, p.RunFrame, config.RunFrameCount
		frameW, frameH = 0, 0
	}

	sx, sy := gs.Camera.WorldToScreen(p.X, p.Y)
	return DrawCommand{
		Layer: LayerWorld, Kind: DrawImage, Name: "player",
		X: sx, Y: sy, W: p.Width, H: p.Height,
		ImageID: id, Frame: ClampFrame(frame, count), FrameCount: count,
		FrameW: frameW, FrameH: frameH, FlipX: p.Facing < 0,
		Alpha: 1, Color: colorPlayer,
	}
}

func (s *RenderSystem) worldImage(name, id string, r types.Rect, fallback color.RGBA) DrawCommand {
	sx, sy := s.gameState.Camera.WorldToScreen(r.X, r.Y)
	return DrawCommand{
		Layer: LayerWorld, Kind: DrawImage, Name: name,
		X: sx, Y: sy, W: r.W, H: r.H, ImageID: id, Alpha: 1, Color: fallback,
	}
}

func (s *RenderSystem) worldOutline(name string, r types.Rect, clr color.RGBA) DrawCommand {
	sx, sy := s.gameState.Camera.WorldToScreen(r.X, r.Y)
	return DrawCommand{
		Layer: LayerWorld, Kind: DrawRectOutline, Name: name,
		X: sx, Y: sy, W: r.W, H: r.H, Color: clr, StrokeWidth: 2,
	}
}

func (s *RenderSystem) appendScreen(list []DrawCommand) []DrawCommand {
	gs := s.gameState

	if d := gs.Dialogue; d.IsActive() {
		box := DrawCommand{
			Layer: LayerScreen, Kind: DrawRect, Name: "dialogue-box",
			X: config.DialogueBoxX, Y: config.DialogueBoxY,
			W: config.DialogueBoxWidth, H: config.TextBoxHeight, Color: colorDialogueFill,
		}
		border := box
		border.Kind, border.Name = DrawRectOutline, "dialogue-border"
		border.Color, border.StrokeWidth = colorWhite, config.DialogueBoxBorder
		list = append(list, box, border, DrawCommand{
			Layer: LayerScreen, Kind: DrawText, Name: "dialogue-text",
			X: box.X + config.TextPadding, Y: box.Y + config.TextPadding,
			Text: d.VisibleText(), FontSize: config.TextFontSize, Spacing: config.TextCharSpacing,
			Color: colorWhite,
		})
	}

	active := "NONE"
	if gs.Dialogue.IsActive() {
		active = "YES"
	}
	list = append(list,
		hudText(10, 10, config.HUDFontSize, fmt.Sprintf("Player X: %.2f", gs.Player.X)),
		hudText(10, 40, config.HUDFontSize, "Active NPC: "+active),
		hudText(10, 70, config.HUDFontSize-2, helpText),
	)

	if c := gs.Celebration; c.Active {
		list = append(list, DrawCommand{
			Layer: LayerScreen, Kind: DrawImage, Name: "banner",
			X: (config.ScreenWidth - config.BannerWidth) / 2,
			Y: config.ScreenHeight/3 - config.BannerHeight/2 + c.BannerOffsetY,
			W: config.BannerWidth, H: config.BannerHeight,
			ImageID: config.ImageCongrats, Frame: ClampFrame(c.BannerFrame, config.BannerFrameCount),
			FrameCount: config.BannerFrameCount, Alpha: 1, Color: colorBanner,
		})
	}

	if gs.DebugMode {
		seg := gs.Biome.DisplayedSegment
		lines := []string{
			"DEBUG",
			fmt.Sprintf("X: %.1f  Y: %.1f", gs.Player.X, gs.Player.Y),
			fmt.Sprintf("Segment: %d (%s)", seg, config.BiomeNames[ClampFrame(seg, config.SegmentCount)]),
			fmt.Sprintf("Camera: %.1f", gs.Camera.TargetX),
			fmt.Sprintf("Dialogue: %s", gs.Dialogue.State),
			fmt.Sprintf("Secret: %v", gs.SecretUnlocked),
			fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()),
		}
		for i, line := range lines {
			cmd := hudText(config.ScreenWidth-320, 230+float64(i)*24, config.HUDFontSize, line)
			cmd.Name = "debug"
			list = append(list, cmd)
		}
	}
	return list
}

func hudText(x, y, size float64, s string) DrawCommand {
	return DrawCommand{
		Layer: LayerScreen, Kind: DrawText, Name: "hud",
		X: x, Y: y, Text: s, FontSize: size, Spacing: 1, Color: colorHUD,
	}
}
