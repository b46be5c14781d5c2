package game

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 通过资源ID播放，无需关心路径
//
// 资源缺失时静默失败（记录一次警告），游戏继续运行。
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	musicPlayers    map[string]*audio.Player // 背景音乐播放器缓存（资源ID -> 播放器）
	missing         map[string]bool          // 已确认缺失的资源ID，避免重复加载与刷屏
	currentMusic    *audio.Player            // 当前播放的背景音乐
	currentMusicID  string                   // 当前播放的背景音乐ID
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 从头播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		logger.Log.Warnf("[AudioManager] Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// StopSound 停止音效并回到开头
func (am *AudioManager) StopSound(soundID string) {
	player, exists := am.soundPlayers[soundID]
	if !exists || !player.IsPlaying() {
		return
	}
	player.Pause()
	if err := player.Rewind(); err != nil {
		logger.Log.Warnf("[AudioManager] Failed to rewind sound %s: %v", soundID, err)
	}
}

// IsSoundPlaying 音效是否正在播放
func (am *AudioManager) IsSoundPlaying(soundID string) bool {
	player, exists := am.soundPlayers[soundID]
	return exists && player.IsPlaying()
}

// PlayMusic 播放背景音乐
// 背景音乐使用 MusicVolume 设置控制音量，循环播放
// 同一时间只能播放一首背景音乐
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}

	// 如果已经在播放同一首音乐，不重复播放
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getMusicPlayer(musicID)
	if player == nil {
		return false
	}

	volume := am.getMusicVolume()
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		logger.Log.Warnf("[AudioManager] Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID

	logger.Log.Infof("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// UpdateMusic 音乐泵，每帧调用一次
// 当前音乐因设备或流结束而停止时从头重新播放
func (am *AudioManager) UpdateMusic() {
	if am.currentMusic == nil || am.currentMusic.IsPlaying() {
		return
	}
	if err := am.currentMusic.Rewind(); err != nil {
		logger.Log.Warnf("[AudioManager] Failed to rewind music %s: %v", am.currentMusicID, err)
	}
	am.currentMusic.Play()
}

// Reset 停止所有声音并清空播放器缓存
// 资源热重载后调用，下次播放时重新加载
func (am *AudioManager) Reset() {
	musicID := am.currentMusicID
	am.StopMusic()
	for _, player := range am.soundPlayers {
		player.Pause()
	}
	am.soundPlayers = make(map[string]*audio.Player)
	am.musicPlayers = make(map[string]*audio.Player)
	am.missing = make(map[string]bool)
	if musicID != "" {
		am.PlayMusic(musicID)
	}
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.missing[soundID] {
		return nil
	}

	filePath, err := am.resourceManager.ResolvePath(soundID)
	if err != nil {
		logger.Log.Warnf("[AudioManager] Sound not found: %v", err)
		am.missing[soundID] = true
		return nil
	}

	player, err := am.resourceManager.LoadSoundEffect(filePath)
	if err != nil {
		logger.Log.Warnf("[AudioManager] Failed to load sound %s: %v", soundID, err)
		am.missing[soundID] = true
		return nil
	}
	logger.Log.Debugf("[AudioManager] Loaded sound %s from %s", soundID, filePath)
	am.soundPlayers[soundID] = player
	return player
}

// getMusicPlayer 获取或加载音乐播放器
func (am *AudioManager) getMusicPlayer(musicID string) *audio.Player {
	if player, exists := am.musicPlayers[musicID]; exists {
		return player
	}
	if am.missing[musicID] {
		return nil
	}

	filePath, err := am.resourceManager.ResolvePath(musicID)
	if err != nil {
		logger.Log.Warnf("[AudioManager] Music not found: %v", err)
		am.missing[musicID] = true
		return nil
	}

	// 使用 LoadAudio 加载（循环播放）
	player, err := am.resourceManager.LoadAudio(filePath)
	if err != nil {
		logger.Log.Warnf("[AudioManager] Failed to load music %s: %v", musicID, err)
		am.missing[musicID] = true
		return nil
	}
	am.musicPlayers[musicID] = player
	return player
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return 0.5 // 默认值
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 1.0 // 默认值
}

// PreloadSounds 预加载音效
// 在场景初始化时调用，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.getSoundPlayer(soundID) != nil {
			loaded++
		}
	}
	logger.Log.Infof("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}
