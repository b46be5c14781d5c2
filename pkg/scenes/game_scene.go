package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/entities"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"github.com/justPoosay/HydrosferaSymulator/pkg/systems"
	"github.com/justPoosay/HydrosferaSymulator/pkg/utils"
)

// GameScene 唯一的游戏场景：横版世界、NPC 对话、密室与终点
//
// 每个逻辑帧的系统顺序固定：
// 输入 → 物理 → 邻近检测 → 密室/终点触发 → 对话 → 动画 → 镜头 → 背景淡化 → 音乐泵
type GameScene struct {
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager
	entityManager   *ecs.EntityManager
	gameState       *game.GameState

	sounds game.SoundPlayer
	music  game.MusicPlayer

	inputSystem      *systems.InputSystem
	physicsSystem    *systems.PhysicsSystem
	proximitySystem  *systems.ProximitySystem
	secretRoomSystem *systems.SecretRoomSystem
	finishSystem     *systems.FinishSystem
	dialogueSystem   *systems.DialogueSystem
	animationSystem  *systems.AnimationSystem
	cameraSystem     *systems.CameraSystem
	biomeSystem      *systems.BiomeSystem
	renderSystem     *systems.RenderSystem
}

// NewGameScene 创建游戏场景并构建关卡
//
// 参数:
//   - rm: 资源管理器，nil 时所有纹理以矩形绘制、不绘制文字
//   - am: 音频管理器，nil 时静音
//   - keys: 键盘读取器
//   - debug: 以调试模式启动
func NewGameScene(rm *game.ResourceManager, am *game.AudioManager, keys utils.KeyReader, debug bool) (*GameScene, error) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	gs.DebugMode = debug

	if err := entities.BuildLevel(em, gs); err != nil {
		return nil, err
	}

	scene := &GameScene{
		resourceManager: rm,
		audioManager:    am,
		entityManager:   em,
		gameState:       gs,
		sounds:          game.NopSoundPlayer{},
	}
	if am != nil {
		scene.sounds = am
		scene.music = am
	}

	var textures systems.TextureSource
	var fonts systems.FontSource
	if rm != nil {
		textures, fonts = rm, rm
	}

	scene.inputSystem = systems.NewInputSystem(gs, keys)
	scene.physicsSystem = systems.NewPhysicsSystem(gs, scene.sounds)
	scene.proximitySystem = systems.NewProximitySystem(em, gs)
	scene.secretRoomSystem = systems.NewSecretRoomSystem(gs)
	scene.finishSystem = systems.NewFinishSystem(gs, scene.sounds, scene.music)
	scene.dialogueSystem = systems.NewDialogueSystem(em, gs, scene.sounds, scene.newMeasurer())
	scene.animationSystem = systems.NewAnimationSystem(em, gs)
	scene.cameraSystem = systems.NewCameraSystem(gs)
	scene.biomeSystem = systems.NewBiomeSystem(gs)
	scene.renderSystem = systems.NewRenderSystem(em, gs, textures, fonts)

	scene.cameraSystem.Update()
	if scene.music != nil {
		scene.music.PlayMusic(config.MusicBackground)
	}

	logger.Log.Infof("[GameScene] Scene ready (debug=%v)", debug)
	return scene, nil
}

// newMeasurer 按对话字号创建文本测量器，没有资源管理器时返回 nil（不换行）
func (s *GameScene) newMeasurer() utils.TextMeasurer {
	if s.resourceManager == nil {
		return nil
	}
	face, err := s.resourceManager.LoadFont(config.FontUI, config.TextFontSize)
	if err != nil {
		logger.Log.Warnf("[GameScene] UI font unavailable, using fallback: %v", err)
	}
	if face == nil {
		return nil
	}
	return utils.FaceMeasurer{Face: face, Spacing: config.TextCharSpacing}
}

// Update 推进一个逻辑帧
func (s *GameScene) Update(deltaTime float64) {
	s.inputSystem.Update()
	if s.gameState.ReloadRequested {
		s.gameState.ReloadRequested = false
		s.reload()
	}

	s.physicsSystem.Update(deltaTime)
	s.proximitySystem.Update()
	s.secretRoomSystem.Update()
	s.finishSystem.Update(deltaTime)
	s.dialogueSystem.Update(deltaTime)
	s.animationSystem.Update(deltaTime)
	s.cameraSystem.Update()
	s.biomeSystem.Update(deltaTime)

	if s.music != nil {
		s.music.UpdateMusic()
	}
}

// reload 资源热重载：重新读取 resources.yaml，清空纹理、音频与字体缓存
func (s *GameScene) reload() {
	if s.resourceManager == nil {
		return
	}
	logger.Log.Infof("[GameScene] Reloading assets")
	if err := s.resourceManager.Reload(); err != nil {
		logger.Log.Warnf("[GameScene] Asset reload: %v", err)
	}
	if s.audioManager != nil {
		s.audioManager.Reset()
	}
	s.renderSystem.ResetCaches()
	s.dialogueSystem.SetMeasurer(s.newMeasurer())
}

// Draw 绘制当前帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// ShouldExit 庆祝结束后请求退出
func (s *GameScene) ShouldExit() bool {
	return s.gameState.ShouldExit
}

// GameState 返回场景的游戏状态（调试与测试用）
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}
