// Package detail содержит модель экрана деталей уровня с превью для TUI
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-beatman/internal/player"
	"github.com/hazadus/go-beatman/internal/song"
	"github.com/hazadus/go-beatman/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	songInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	difficultyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#aaaaaa"))

	hashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)
)

// GoBackMsg отправляется для возврата к списку уровней
type GoBackMsg struct{}

// ProgressMsg содержит обновления прогресса воспроизведения
type ProgressMsg struct {
	Status player.Status
}

// PlaybackFinishedMsg отправляется при завершении воспроизведения
type PlaybackFinishedMsg struct{}

// PlaybackErrorMsg отправляется при ошибке воспроизведения
type PlaybackErrorMsg struct {
	Error error
}

// Model представляет модель экрана деталей уровня
type Model struct {
	record      *song.Record
	player      *player.Player
	progressBar progress.Model
	status      player.Status
	isPlaying   bool
	error       error
	width       int
	height      int
}

// NewModelWithPlayer создает новую модель деталей с общим плеером приложения
func NewModelWithPlayer(record *song.Record, existingPlayer *player.Player) *Model {
	// Создаем прогресс-бар
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return &Model{
		record:      record,
		player:      existingPlayer,
		progressBar: prog,
		isPlaying:   false,
	}
}

// Init инициализирует модель и запускает превью
func (m *Model) Init() tea.Cmd {
	// Возвращаем команду для запуска воспроизведения
	return tea.Batch(
		m.startPlayback(),
		m.listenForProgress(),
	)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Обновляем ширину прогресс-бара
		m.progressBar.Width = min(60, msg.Width-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			// Останавливаем превью и возвращаемся к списку уровней
			m.player.Stop()
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case " ":
			// Пауза/воспроизведение
			m.player.Pause()
			m.isPlaying = !m.isPlaying
			return m, nil

		case "s":
			// Полная остановка превью
			m.player.Stop()
			m.isPlaying = false
			return m, nil

		case "p":
			// Запуск превью заново
			return m, tea.Batch(
				m.startPlayback(),
				m.listenForProgress(),
			)
		}

	case ProgressMsg:
		// Обновляем статус и прогресс-бар
		m.status = msg.Status
		m.isPlaying = msg.Status.IsPlaying

		// Вычисляем прогресс в процентах
		var percent float64
		if msg.Status.Total > 0 {
			percent = float64(msg.Status.Current) / float64(msg.Status.Total)
		}

		// Обновляем прогресс-бар и возвращаем команду для продолжения прослушивания
		return m, tea.Batch(
			m.progressBar.SetPercent(percent),
			m.listenForProgress(),
		)

	case PlaybackFinishedMsg:
		// Превью дозвучало до конца, остаемся на экране деталей
		m.isPlaying = false
		return m, nil

	case PlaybackErrorMsg:
		// Ошибка воспроизведения
		m.error = msg.Error
		m.isPlaying = false
		return m, nil

	case progress.FrameMsg:
		// Обновляем прогресс-бар
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// View отображает модель
func (m *Model) View() string {
	// Заголовок
	title := titleStyle.Render("🎵 " + m.record.Title())

	// Информация об уровне
	info := songInfoStyle.Render(fmt.Sprintf(
		"🎤 Автор песни: %s\n🛠  Автор уровня: %s\n🥁 BPM: %.1f\n📁 Папка: %s",
		m.record.Info.SongAuthorName,
		m.record.Info.LevelAuthorName,
		m.record.Info.BeatsPerMinute,
		m.record.ID,
	))

	// Наборы карт по характеристикам
	var difficulties strings.Builder
	for _, set := range m.record.Info.BeatmapSets {
		names := make([]string, 0, len(set.DifficultyBeatmaps))
		for _, beatmap := range set.DifficultyBeatmaps {
			names = append(names, fmt.Sprintf("%s (%d)", beatmap.Difficulty, beatmap.DifficultyRank))
		}
		difficulties.WriteString(fmt.Sprintf("%s: %s\n", set.CharacteristicName, strings.Join(names, ", ")))
	}

	hash := hashStyle.Render("Хеш уровня: " + m.record.LevelHash)

	if m.error != nil {
		return fmt.Sprintf(
			"%s\n\n%s\n%s\n\n%s\n\n%s",
			title,
			info,
			difficultyStyle.Render(difficulties.String()),
			errorStyle.Render("Ошибка превью: "+m.error.Error()),
			controlsStyle.Render("p: повторить • q/esc: назад к списку"),
		)
	}

	// Статус воспроизведения
	var statusIcon string
	if m.isPlaying {
		statusIcon = "▶️"
	} else {
		statusIcon = "⏸️"
	}
	statusText := statusStyle.Render(fmt.Sprintf("%s %s", statusIcon, formatStatus(m.isPlaying)))

	// Прогресс-бар и время
	progressView := m.progressBar.View()
	timeText := fmt.Sprintf(
		"%s / %s",
		utils.FormatDuration(m.status.Current),
		utils.FormatDuration(m.status.Total),
	)

	// Элементы управления
	controls := controlsStyle.Render(
		"Пробел: пауза • s: стоп • p: заново • q/esc: назад к списку",
	)

	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s\n\n%s\n\n%s\n%s\n\n%s",
		title,
		info,
		difficultyStyle.Render(difficulties.String()),
		hash,
		statusText,
		progressView,
		timeText,
		controls,
	)
}

// startPlayback запускает воспроизведение превью уровня
func (m *Model) startPlayback() tea.Cmd {
	return func() tea.Msg {
		err := m.player.Play(m.record)
		if err != nil {
			return PlaybackErrorMsg{Error: err}
		}
		m.isPlaying = true
		return nil
	}
}

// listenForProgress слушает обновления прогресса от плеера
func (m *Model) listenForProgress() tea.Cmd {
	return func() tea.Msg {
		select {
		case status, ok := <-m.player.Progress():
			if !ok {
				return PlaybackFinishedMsg{}
			}
			return ProgressMsg{Status: status}

		case _, ok := <-m.player.Done():
			if !ok {
				return PlaybackFinishedMsg{}
			}
			return PlaybackFinishedMsg{}
		}
	}
}

// Вспомогательные функции

func formatStatus(isPlaying bool) string {
	if isPlaying {
		return "Превью играет"
	}
	return "Пауза"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
