// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-beatman/internal/catalog"
	"github.com/hazadus/go-beatman/internal/fileops"
	"github.com/hazadus/go-beatman/internal/player"
	"github.com/hazadus/go-beatman/internal/tui/detail"
	"github.com/hazadus/go-beatman/internal/tui/rename"
	"github.com/hazadus/go-beatman/internal/tui/songlist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// SonglistScreen - экран списка уровней
	SonglistScreen ScreenType = iota
	// DetailScreen - экран деталей уровня с превью
	DetailScreen
	// RenameScreen - экран переименования папки уровня
	RenameScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	cat           *catalog.Catalog
	ops           *fileops.Ops
	currentScreen ScreenType
	songlistModel *songlist.Model
	detailModel   *detail.Model
	renameModel   *rename.Model
	globalPlayer  *player.Player // Глобальный плеер для переиспользования
}

// NewMainModel создает новую главную модель
func NewMainModel(cat *catalog.Catalog, ops *fileops.Ops) *MainModel {
	// Создаем модель списка уровней
	songlistModel := songlist.NewModel(cat, ops)

	// Создаем глобальный плеер один раз
	globalPlayer := player.NewPlayer()

	return &MainModel{
		cat:           cat,
		ops:           ops,
		currentScreen: SonglistScreen,
		songlistModel: songlistModel,
		detailModel:   nil, // Будет создана при выборе уровня
		renameModel:   nil, // Будет создана при переименовании
		globalPlayer:  globalPlayer,
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	// Инициализируем модель списка уровней
	return m.songlistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		switch msg.String() {
		case "ctrl+c":
			// Останавливаем плеер перед выходом
			if m.globalPlayer != nil {
				m.globalPlayer.Stop()
			}
			return m, tea.Quit
		}

	case songlist.SongSelectedMsg:
		// Переключаемся на экран деталей с выбранным уровнем
		m.currentScreen = DetailScreen
		m.detailModel = detail.NewModelWithPlayer(msg.Record, m.globalPlayer)
		return m, m.detailModel.Init()

	case songlist.SongRenameMsg:
		// Переключаемся на экран переименования
		m.currentScreen = RenameScreen
		m.renameModel = rename.NewModel(m.ops, msg.Record)
		return m, m.renameModel.Init()

	case detail.GoBackMsg:
		// Возвращаемся к списку уровней
		m.currentScreen = SonglistScreen
		m.detailModel = nil
		return m, nil

	case rename.GoBackMsg:
		// Возвращаемся к списку уровней из переименования
		m.currentScreen = SonglistScreen
		m.renameModel = nil
		// Обновляем данные в существующей модели списка
		m.songlistModel.RefreshData()
		return m, nil

	case rename.RenamedMsg:
		// Папка переименована, возвращаемся к обновленному списку
		m.currentScreen = SonglistScreen
		m.renameModel = nil
		m.songlistModel.RefreshData()
		return m, nil

	case tea.WindowSizeMsg:
		// Передаем размеры окна активной модели
		switch m.currentScreen {
		case SonglistScreen:
			var songlistCmd tea.Cmd
			m.songlistModel, songlistCmd = m.songlistModel.Update(msg)
			return m, songlistCmd
		case DetailScreen:
			if m.detailModel != nil {
				var detailCmd tea.Cmd
				updatedModel, detailCmd := m.detailModel.Update(msg)
				if detailModel, ok := updatedModel.(*detail.Model); ok {
					m.detailModel = detailModel
				}
				return m, detailCmd
			}
		case RenameScreen:
			if m.renameModel != nil {
				var renameCmd tea.Cmd
				m.renameModel, renameCmd = m.renameModel.Update(msg)
				return m, renameCmd
			}
		}
		return m, nil
	}

	// Передаем сообщение активной модели
	switch m.currentScreen {
	case SonglistScreen:
		var songlistCmd tea.Cmd
		m.songlistModel, songlistCmd = m.songlistModel.Update(msg)
		cmd = songlistCmd

	case DetailScreen:
		if m.detailModel != nil {
			var detailCmd tea.Cmd
			updatedModel, detailCmd := m.detailModel.Update(msg)
			if detailModel, ok := updatedModel.(*detail.Model); ok {
				m.detailModel = detailModel
			}
			cmd = detailCmd
		}

	case RenameScreen:
		if m.renameModel != nil {
			var renameCmd tea.Cmd
			m.renameModel, renameCmd = m.renameModel.Update(msg)
			cmd = renameCmd
		}
	}

	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case SonglistScreen:
		return m.songlistModel.View()

	case DetailScreen:
		if m.detailModel != nil {
			return m.detailModel.View()
		}
		return "Ошибка: модель деталей не инициализирована"

	case RenameScreen:
		if m.renameModel != nil {
			return m.renameModel.View()
		}
		return "Ошибка: модель переименования не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

// CurrentScreen возвращает тип текущего экрана
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Close закрывает ресурсы главной модели
func (m *MainModel) Close() {
	if m.globalPlayer != nil {
		m.globalPlayer.Close()
	}
}
