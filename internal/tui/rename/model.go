// Package rename содержит модель экрана переименования папки уровня для TUI
package rename

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-beatman/internal/fileops"
	"github.com/hazadus/go-beatman/internal/song"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Margin(1, 0)
)

// RenamedMsg отправляется когда папка уровня успешно переименована
type RenamedMsg struct {
	OldID string
	NewID string
}

// GoBackMsg отправляется при отмене переименования
type GoBackMsg struct{}

// Model представляет модель экрана переименования уровня
type Model struct {
	ops      *fileops.Ops
	record   *song.Record
	input    textinput.Model
	err      string
	success  string
	quitting bool
}

// NewModel создает новую модель переименования уровня
func NewModel(ops *fileops.Ops, record *song.Record) *Model {
	// Поле ввода нового имени папки
	input := textinput.New()
	input.Placeholder = "Введите новое имя папки"
	input.SetValue(record.ID)
	input.Focus()
	input.PromptStyle = focusedStyle
	input.TextStyle = focusedStyle

	return &Model{
		ops:    ops,
		record: record,
		input:  input,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			// Отменяем переименование
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "enter", "ctrl+s":
			// Применяем переименование
			return m, m.rename()
		}

	case tea.WindowSizeMsg:
		// Обновляем ширину поля ввода
		m.input.Width = msg.Width - 20
		return m, nil
	}

	// Обновляем поле ввода
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// rename переименовывает папку уровня на диске и в каталоге
func (m *Model) rename() tea.Cmd {
	return func() tea.Msg {
		oldID := m.record.ID
		newName := strings.TrimSpace(m.input.Value())

		if newName == oldID {
			// Имя не изменилось, просто возвращаемся к списку
			return GoBackMsg{}
		}

		if err := m.ops.Rename(oldID, newName); err != nil {
			m.err = fmt.Sprintf("Ошибка переименования: %v", err)
			m.success = ""
			return nil
		}

		m.err = ""
		m.success = fmt.Sprintf("Папка переименована: %q → %q", oldID, newName)

		// Возвращаемся к списку уровней через небольшую задержку
		return tea.Tick(time.Second, func(time.Time) tea.Msg {
			return RenamedMsg{OldID: oldID, NewID: newName}
		})()
	}
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return "Отмена переименования...\n"
	}

	var b strings.Builder

	// Заголовок
	b.WriteString(titleStyle.Render(fmt.Sprintf("Переименование уровня %q", m.record.Info.SongName)))
	b.WriteString("\n\n")

	// Поле ввода
	b.WriteString(labelStyle.Render("Имя папки:"))
	b.WriteString(" ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// Сообщения об ошибках или успехе
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	if m.success != "" {
		b.WriteString(successStyle.Render(m.success))
		b.WriteString("\n")
	}

	// Справка
	b.WriteString(helpStyle.Render("Enter: переименовать • Esc: отмена"))

	return b.String()
}
