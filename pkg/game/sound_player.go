package game

// SoundPlayer 按资源 ID 播放音效
// AudioManager 是运行时实现；测试使用记录调用的假实现
type SoundPlayer interface {
	// PlaySound 从头播放音效，失败（缺失/禁用）返回 false
	PlaySound(soundID string) bool
	// StopSound 停止音效（未在播放时无操作）
	StopSound(soundID string)
	// IsSoundPlaying 音效是否正在播放
	IsSoundPlaying(soundID string) bool
}

// MusicPlayer 背景音乐接口
type MusicPlayer interface {
	PlayMusic(musicID string) bool
	StopMusic()
	// UpdateMusic 每帧调用一次，音乐意外停止时重新开始
	UpdateMusic()
}

// NopSoundPlayer 什么都不播放的 SoundPlayer（无音频设备时使用）
type NopSoundPlayer struct{}

func (NopSoundPlayer) PlaySound(string) bool      { return false }
func (NopSoundPlayer) StopSound(string)           {}
func (NopSoundPlayer) IsSoundPlaying(string) bool { return false }
