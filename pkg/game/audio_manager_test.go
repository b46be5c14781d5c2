package game

import "testing"

// 没有音频文件时 AudioManager 静默失败
func TestAudioManager_MissingResources(t *testing.T) {
	rm := NewResourceManager(testAudioContext, t.TempDir())
	if err := rm.LoadResourceConfig(); err != nil {
		t.Fatal(err)
	}
	am := NewAudioManager(rm, NewSettingsManager(""))

	if am.PlaySound("SOUND_MEOW1") {
		t.Error("PlaySound should fail for a missing file")
	}
	if am.IsSoundPlaying("SOUND_MEOW1") {
		t.Error("missing sound cannot be playing")
	}
	am.StopSound("SOUND_MEOW1")

	if am.PlayMusic("MUSIC_BLINDSPOTS") {
		t.Error("PlayMusic should fail for a missing file")
	}
	if am.currentMusicID != "" {
		t.Errorf("no music expected, got %q", am.currentMusicID)
	}
	am.UpdateMusic()
	am.Reset()
}

func TestAudioManager_DisabledBySettings(t *testing.T) {
	sm := NewSettingsManager("")
	sm.GetSettings().SoundEnabled = false
	sm.GetSettings().MusicEnabled = false

	rm := NewResourceManager(testAudioContext, t.TempDir())
	am := NewAudioManager(rm, sm)

	if am.PlaySound("SOUND_POP") {
		t.Error("sound disabled: PlaySound must return false")
	}
	if am.PlayMusic("MUSIC_BLINDSPOTS") {
		t.Error("music disabled: PlayMusic must return false")
	}
}

func TestAudioManager_Volumes(t *testing.T) {
	am := NewAudioManager(NewResourceManager(nil, ""), nil)
	if am.getMusicVolume() != 0.5 || am.getSoundVolume() != 1.0 {
		t.Errorf("unexpected default volumes %.2f/%.2f", am.getMusicVolume(), am.getSoundVolume())
	}

	sm := NewSettingsManager("")
	if err := sm.LoadBytes([]byte("musicVolume: 0.3\n")); err != nil {
		t.Fatal(err)
	}
	am = NewAudioManager(NewResourceManager(nil, ""), sm)
	if am.getMusicVolume() != 0.3 {
		t.Errorf("music volume = %.2f, want 0.3", am.getMusicVolume())
	}
}

var _ SoundPlayer = (*AudioManager)(nil)
var _ MusicPlayer = (*AudioManager)(nil)
var _ SoundPlayer = NopSoundPlayer{}
