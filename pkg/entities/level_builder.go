package entities

import (
	"fmt"

	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"github.com/justPoosay/HydrosferaSymulator/pkg/types"
)

// LevelNPCs 主世界 NPC，从左到右排列
var LevelNPCs = []NPCSpec{
	{
		Name:          "Badaczka",
		X:             700,
		Variant:       types.VariantHuman,
		SpeechSoundID: config.SoundMeow1,
		Lines: []string{
			"Zróżnicowanie zasobów wody na świecie: jedne regiony mają dużo wody słodkiej, inne bardzo mało.",
			"Dostępność wody słodkiej zależy od klimatu, geologii i infrastruktury.",
			"Zrozumienie tego zróżnicowania jest kluczowe dla planowania i sprawiedliwego dostępu.",
		},
	},
	{
		Name:    "Kot Bąbelek",
		X:       1400,
		Variant: types.VariantCatPop,
		Lines: []string{
			"Niedobory wody dotykają miliardy ludzi. Przyczyny to wzrost populacji, zanieczyszczenia i zmiany klimatu.",
			"Susze i nadmierne pobory zasilają kryzysy wodne, szczególnie w krajach rozwijających się.",
			"Inwestycje w infrastrukturę, zarządzanie zasobami i edukacja są niezbędne, by łagodzić skutki.",
		},
	},
	{
		Name:          "Smutny Kot",
		X:             2100,
		Variant:       types.VariantCatCry,
		SpeechSoundID: config.SoundMeow2,
		Lines: []string{
			"Człowiek zagraża hydrosferze poprzez zanieczyszczenia, nadmierne pobory i degradację siedlisk.",
			"Plastiki, chemikalia i ścieki przemysłowe zmniejszają jakość wody i szkodzą organizmom.",
			"Ograniczanie emisji, regulacje i ochrona stref brzegowych to kluczowe działania.",
		},
	},
	{
		Name:    "Kot Chrupek",
		X:       2800,
		Variant: types.VariantCatCrunch,
		Lines: []string{
			"Jezioro Aralskie to przykład katastrofy ekologicznej: odpływ rzek do nawadniania zmniejszył jego powierzchnię.",
			"Wysoka Tama na Nilu miała korzyści w hydroenergetyce, ale zmieniła sedymentację i lokalne ekosystemy.",
			"Studium tych przykładów uczy nas o konsekwencjach dużych projektów wodnych i konieczności zrównoważenia.",
		},
	},
	{
		Name:          "Strażniczka",
		X:             3400,
		Variant:       types.VariantHuman,
		SpeechSoundID: config.SoundMeow1,
		Lines: []string{
			"Jak chronić hydrosferę? Oszczędzanie wody, oczyszczanie ścieków i redukcja zanieczyszczeń są podstawowe.",
			"Inwestycje w odnawialne źródła, zrównoważone rolnictwo i ochrona terenów przybrzeżnych są kluczowe.",
			"Edukacja i współpraca międzynarodowa umożliwiają długotrwałe rozwiązania dla całej hydrosfery.",
		},
	},
}

// SecretRoomNPC 密室里的 NPC
var SecretRoomNPC = NPCSpec{
	Name:          "Tajemniczy Kot",
	X:             config.SecretRoomMinX + 900,
	Variant:       types.VariantCatPop,
	SpeechSoundID: config.SoundMeow2,
	Lines: []string{
		"Znalazłeś sekretny pokój! Niewielu podróżników tu dociera.",
		"Tylko około 2,5% wody na Ziemi to woda słodka, a większość z niej jest zamknięta w lodowcach.",
		"Idź w prawo, aby wrócić do swojej podróży.",
	},
}

// BuildLevel 创建关卡：主世界 NPC、密室 NPC、密室入口与终点旗帜
// NPC 按创建顺序登记到 gs.NPCs，邻近检测按此顺序取第一个命中
func BuildLevel(em *ecs.EntityManager, gs *game.GameState) error {
	if em == nil || gs == nil {
		return fmt.Errorf("entity manager and game state are required")
	}

	specs := append(append([]NPCSpec(nil), LevelNPCs...), SecretRoomNPC)
	for _, spec := range specs {
		id, err := NewNPCEntity(em, spec)
		if err != nil {
			return fmt.Errorf("failed to build level: %w", err)
		}
		gs.NPCs = append(gs.NPCs, id)
		logger.Log.Debugf("[Level] NPC %q (%s) at x=%.0f, %d lines", spec.Name, spec.Variant, spec.X, len(spec.Lines))
	}

	NewTriggerEntity(em, types.TriggerSecretDoor, SecretDoorRect())
	NewTriggerEntity(em, types.TriggerFinish, FinishFlagRect())

	logger.Log.Infof("[Level] Built %d NPCs, secret door at x=%.0f, finish at x=%.0f",
		len(specs), config.SecretDoorX, config.FinishFlagX)
	return nil
}
