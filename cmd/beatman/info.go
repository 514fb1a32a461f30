package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-beatman/internal/metadata"
	"github.com/hazadus/go-beatman/internal/utils"
)

// createInfoCommand создает команду info с привязкой к экземпляру приложения
func (app *Application) createInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [folder]",
		Short: "Show details of a song level",
		Long:  `Display descriptor fields, difficulties, level hash and audio asset info for a song level.`,
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			app.mustLoad()
			app.showLevelInfo(args[0])
		},
	}
}

func (app *Application) showLevelInfo(id string) {
	record, err := app.Catalog.ByID(id)
	if err != nil {
		fmt.Printf("❌ Ошибка: %v\n", err)
		return
	}

	fmt.Printf("🎵 %s\n", record.Title())
	fmt.Printf("   Автор песни: %s\n", record.Info.SongAuthorName)
	fmt.Printf("   Автор уровня: %s\n", record.Info.LevelAuthorName)
	fmt.Printf("   BPM: %.1f\n", record.Info.BeatsPerMinute)
	fmt.Printf("   Версия описателя: %s\n", record.Info.Version)
	fmt.Printf("   Папка: %s\n", record.FolderPath)
	fmt.Printf("   Хеш уровня: %s\n", record.LevelHash)
	if folderSize, err := record.FolderSize(); err == nil {
		fmt.Printf("   Размер папки: %s\n", utils.FormatFileSize(folderSize))
	}
	fmt.Println()

	// Наборы карт по характеристикам
	for _, set := range record.Info.BeatmapSets {
		names := make([]string, 0, len(set.DifficultyBeatmaps))
		for _, beatmap := range set.DifficultyBeatmaps {
			names = append(names, fmt.Sprintf("%s (%d)", beatmap.Difficulty, beatmap.DifficultyRank))
		}
		fmt.Printf("   %s: %s\n", set.CharacteristicName, strings.Join(names, ", "))
	}

	// Сведения об аудиофайле читаются по возможности
	extractor := metadata.NewExtractor()
	assetInfo, err := extractor.Inspect(record.AudioPath())
	if err != nil {
		fmt.Printf("\n⚠️  Не удалось прочитать аудиофайл: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("   Аудиофайл: %s\n", record.Info.SongFilename)
	fmt.Printf("   Длительность: %s\n", utils.FormatDuration(assetInfo.Duration))
	fmt.Printf("   Размер: %s\n", utils.FormatFileSize(assetInfo.Size))
	if assetInfo.Artist != "" || assetInfo.Title != "" {
		fmt.Printf("   Теги: %s - %s\n", assetInfo.Artist, assetInfo.Title)
	}
}
