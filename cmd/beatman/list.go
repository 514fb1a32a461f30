package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-beatman/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	var sortByTitle bool
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all song levels from the working directory",
		Long:  `Display a list of all song levels found in the working directory.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.mustLoad()
			app.listLevels(sortByTitle, filter)
		},
	}

	cmd.Flags().BoolVar(&sortByTitle, "sort", false, "sort levels by song title")
	cmd.Flags().StringVar(&filter, "filter", "", "show only levels matching the query")

	return cmd
}

func (app *Application) listLevels(sortByTitle bool, filter string) {
	if app.Catalog.Len() == 0 {
		fmt.Println("📚 В рабочей папке не найдено ни одного уровня.")
		return
	}

	if sortByTitle {
		app.Catalog.SortByTitle()
	}

	records := app.Catalog.Records()
	if filter != "" {
		records = app.Catalog.Filter(filter)
	}

	fmt.Printf("📚 Найдено уровней: %d\n\n", len(records))

	// Выводим заголовок таблицы
	fmt.Printf("%-40s %-25s %-25s %7s  %s\n",
		"Название", "Автор песни", "Автор уровня", "BPM", "Папка")
	fmt.Println(strings.Repeat("-", 130))

	// Выводим каждый уровень
	for _, record := range records {
		fmt.Printf("%-40s %-25s %-25s %7.1f  %s\n",
			utils.TruncateString(record.Title(), 38),
			utils.TruncateString(record.Info.SongAuthorName, 23),
			utils.TruncateString(record.Info.LevelAuthorName, 23),
			record.Info.BeatsPerMinute,
			record.ID)
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'beatman info [папка]' для просмотра деталей уровня")
}
