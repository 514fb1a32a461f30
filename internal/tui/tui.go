// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-beatman/internal/catalog"
	"github.com/hazadus/go-beatman/internal/fileops"
	"github.com/hazadus/go-beatman/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	cat *catalog.Catalog
	ops *fileops.Ops
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(cat *catalog.Catalog, ops *fileops.Ops) *App {
	return &App{
		cat: cat,
		ops: ops,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	// Создаем модель для Bubble Tea
	model := app.NewMainModel(tuiApp.cat, tuiApp.ops)

	// Создаем программу Bubble Tea
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Запускаем программу
	_, err := p.Run()

	// Закрываем плеер после завершения программы
	model.Close()

	return err
}
