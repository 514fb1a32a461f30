package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createRenameCommand создает команду rename с привязкой к экземпляру приложения
func (app *Application) createRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [folder] [new name]",
		Short: "Rename a song level folder",
		Long:  `Rename a song level folder on disk and update the catalog.`,
		Args:  cobra.ExactArgs(2),
		Run: func(_ *cobra.Command, args []string) {
			app.mustLoad()
			app.renameLevel(args[0], args[1])
		},
	}
}

func (app *Application) renameLevel(id, newName string) {
	if err := app.Ops.Rename(id, newName); err != nil {
		fmt.Printf("❌ Ошибка переименования: %v\n", err)
		return
	}

	fmt.Printf("✅ Папка переименована: %q → %q\n", id, newName)
}
