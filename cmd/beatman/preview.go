package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-beatman/internal/player"
	"github.com/hazadus/go-beatman/internal/utils"
)

// createPreviewCommand создает команду preview с привязкой к экземпляру приложения
func (app *Application) createPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [folder]",
		Short: "Play the audio of a song level",
		Long:  `Play the audio asset of a song level for auditioning.`,
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			app.mustLoad()
			app.previewLevel(args[0])
		},
	}
}

func (app *Application) previewLevel(id string) {
	record, err := app.Catalog.ByID(id)
	if err != nil {
		fmt.Printf("❌ Ошибка: %v\n", err)
		return
	}

	p := player.NewPlayer()
	defer p.Close()

	if err := p.Play(record); err != nil {
		fmt.Printf("❌ Ошибка воспроизведения: %v\n", err)
		return
	}

	// Выводим информацию об уровне
	fmt.Printf("🎵 Сейчас играет превью:\n")
	fmt.Printf("   Название: %s\n", record.Title())
	fmt.Printf("   Автор песни: %s\n", record.Info.SongAuthorName)
	fmt.Printf("   Автор уровня: %s\n", record.Info.LevelAuthorName)
	fmt.Println()

	// Ждем завершения воспроизведения, показывая прогресс
	for {
		select {
		case <-p.Done():
			fmt.Println("\n✅ Превью завершено")
			return
		case status := <-p.Progress():
			fmt.Printf("\r⏱️  Прогресс: %s / %s",
				utils.FormatDuration(status.Current),
				utils.FormatDuration(status.Total))
		}
	}
}
