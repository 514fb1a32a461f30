package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-beatman/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing, previewing and managing song levels.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.mustLoad()
			app.launchTUI()
		},
	}
}

func (app *Application) launchTUI() {
	// Создаем экземпляр TUI приложения
	tuiApp := tui.NewApp(app.Catalog, app.Ops)

	// Запускаем TUI
	if err := tuiApp.Run(); err != nil {
		// Если есть ошибка, выводим её и выходим
		panic(err)
	}
}
