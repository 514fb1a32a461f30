package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createDeleteCommand создает команду delete с привязкой к экземпляру приложения
func (app *Application) createDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [folder]...",
		Short: "Delete song levels by folder name",
		Long:  `Delete one or more song level folders from disk and from the catalog.`,
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			app.mustLoad()
			app.deleteLevels(args)
		},
	}
}

func (app *Application) deleteLevels(ids []string) {
	// Удаляем уровни по одному, продолжая после отдельных ошибок
	results := app.Ops.BatchDelete(ids)

	succeeded := 0
	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("❌ %s: %v\n", result.ID, result.Err)
			continue
		}
		fmt.Printf("✅ Уровень %q удален\n", result.ID)
		succeeded++
	}

	fmt.Printf("\n🗑️  Удалено уровней: %d из %d\n", succeeded, len(results))
}
