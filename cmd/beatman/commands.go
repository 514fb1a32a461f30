package main

import (
	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "beatman",
		Short: "A simple terminal tool to manage Beat Saber song levels",
		Long:  `A simple terminal tool to list, inspect, preview, rename and delete Beat Saber song levels.`,
	}

	// Флаг рабочей папки доступен всем командам
	rootCmd.PersistentFlags().StringVar(&app.workDir, "dir", "", "working directory with song levels (overrides config)")

	// Добавляем команды, передавая в них экземпляр приложения
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createInfoCommand())
	rootCmd.AddCommand(app.createDeleteCommand())
	rootCmd.AddCommand(app.createRenameCommand())
	rootCmd.AddCommand(app.createPreviewCommand())
	rootCmd.AddCommand(app.createExportCommand())
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
