package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-beatman/internal/playlist"
)

// createExportCommand создает команду export с привязкой к экземпляру приложения
func (app *Application) createExportCommand() *cobra.Command {
	var title string
	var author string

	cmd := &cobra.Command{
		Use:   "export [file] [folder]...",
		Short: "Export selected song levels to a playlist file",
		Long:  `Serialize selected song levels into a playlist file (.bplist) for the game.`,
		Args:  cobra.MinimumNArgs(2),
		Run: func(_ *cobra.Command, args []string) {
			app.mustLoad()
			app.exportPlaylist(title, author, args[0], args[1:])
		},
	}

	cmd.Flags().StringVar(&title, "title", "New Playlist", "playlist title")
	cmd.Flags().StringVar(&author, "author", "beatman", "playlist author")

	return cmd
}

func (app *Application) exportPlaylist(title, author, fileName string, ids []string) {
	// Относительные имена файлов сохраняются в папку плейлистов
	filePath := fileName
	if !filepath.IsAbs(filePath) {
		if err := os.MkdirAll(app.Config.PlaylistsDir, 0755); err != nil {
			fmt.Printf("❌ Ошибка создания папки плейлистов: %v\n", err)
			return
		}
		filePath = filepath.Join(app.Config.PlaylistsDir, fileName)
	}

	exporter := playlist.NewExporter(app.Catalog)
	summary, err := exporter.Export(title, author, ids, filePath)
	if err != nil {
		fmt.Printf("❌ Ошибка экспорта плейлиста: %v\n", err)
		return
	}

	for _, id := range summary.Skipped {
		fmt.Printf("⚠️  Уровень %q не найден в каталоге, пропущен\n", id)
	}

	fmt.Printf("✅ Плейлист сохранен: %s\n", filePath)
	fmt.Printf("   Уровней в плейлисте: %d\n", summary.Exported)
}
