package config

// 资源 ID 常量，对应 assets/config/resources.yaml 中的条目

// Images
const (
	ImageCatWalk  = "IMAGE_CAT_WALK"
	ImageCatRun   = "IMAGE_CAT_RUN"
	ImageCatJump  = "IMAGE_CAT_JUMP"
	ImageCatHappy = "IMAGE_CAT_HAPPY"

	ImageNPC       = "IMAGE_NPC"
	ImageCatPop    = "IMAGE_CAT_POP"
	ImageCatCrunch = "IMAGE_CAT_CRUNCH"
	ImageCatCry    = "IMAGE_CAT_CRY"

	ImageFinishFlag   = "IMAGE_FINISH_FLAG"
	ImageCongrats     = "IMAGE_CONGRATS"
	ImageSecretRoomBG = "IMAGE_BG_SECRET"
	ImageSecretDoor   = "IMAGE_SECRET_DOOR"
)

// BiomeImageIDs 每个背景段的图片 ID
var BiomeImageIDs = [SegmentCount]string{
	"IMAGE_BG_OCEAN",
	"IMAGE_BG_RIVER",
	"IMAGE_BG_WETLAND",
	"IMAGE_BG_CITY",
	"IMAGE_BG_ARAL",
	"IMAGE_BG_GLACIER",
}

// Sounds
const (
	SoundMeow1  = "SOUND_MEOW1"
	SoundMeow2  = "SOUND_MEOW2"
	SoundPop    = "SOUND_POP"
	SoundCrunch = "SOUND_CRUNCH"
	SoundJump   = "SOUND_JUMP"
	SoundSprint = "SOUND_SPRINT"
	SoundCheer  = "SOUND_CHEER"

	MusicBackground = "MUSIC_BLINDSPOTS"
)

// Fonts
const (
	FontUI = "FONT_UI"
)
