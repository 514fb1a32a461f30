// Package songlist содержит модель экрана списка уровней для TUI
package songlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-beatman/internal/catalog"
	"github.com/hazadus/go-beatman/internal/fileops"
	"github.com/hazadus/go-beatman/internal/song"
	"github.com/hazadus/go-beatman/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("196"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// SongSelectedMsg отправляется при выборе уровня для просмотра
type SongSelectedMsg struct {
	Record *song.Record
}

// SongRenameMsg отправляется при выборе уровня для переименования
type SongRenameMsg struct {
	Record *song.Record
}

// songItem реализует интерфейс list.Item для уровня
type songItem struct {
	record *song.Record
}

func (i songItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.record.ID, i.record.Info.SongName, i.record.Info.SongAuthorName)
}

// songItemDelegate реализует отображение элементов списка
type songItemDelegate struct{}

func (d songItemDelegate) Height() int                             { return 1 }
func (d songItemDelegate) Spacing() int                            { return 0 }
func (d songItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d songItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(songItem)
	if !ok {
		return
	}

	// Форматируем строку в виде таблицы: Название | Автор | BPM | Папка
	str := fmt.Sprintf("%-40s %-25s %7.1f  %s",
		utils.TruncateString(i.record.Title(), 40),
		utils.TruncateString(i.record.Info.SongAuthorName, 25),
		i.record.Info.BeatsPerMinute,
		utils.TruncateString(i.record.ID, 30))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка уровней
type Model struct {
	list     list.Model
	cat      *catalog.Catalog
	ops      *fileops.Ops
	status   string
	quitting bool
}

// NewModel создает новую модель списка уровней
func NewModel(cat *catalog.Catalog, ops *fileops.Ops) *Model {
	// Преобразуем уровни в элементы списка
	records := cat.Records()
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = songItem{record: record}
	}

	// Создаем список
	l := list.New(items, songItemDelegate{}, 0, 0)
	l.Title = "Уровни"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list: l,
		cat:  cat,
		ops:  ops,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет данные модели без пересоздания
func (m *Model) RefreshData() {
	// Получаем актуальные уровни каталога
	records := m.cat.Records()

	// Преобразуем уровни в элементы списка
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = songItem{record: record}
	}

	// Обновляем элементы в существующем списке
	m.list.SetItems(items)
}

// selectedRecord возвращает выбранный в списке уровень
func (m *Model) selectedRecord() *song.Record {
	selectedItem := m.list.SelectedItem()
	if selectedItem == nil {
		return nil
	}
	item, ok := selectedItem.(songItem)
	if !ok {
		return nil
	}
	return item.record
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для заголовка и справки
		return m, nil

	case tea.KeyMsg:
		// Во время фильтрации клавиши уходят в строку поиска
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if record := m.selectedRecord(); record != nil {
				// Отправляем сообщение о выборе уровня
				return m, func() tea.Msg {
					return SongSelectedMsg{Record: record}
				}
			}

		case "r":
			if record := m.selectedRecord(); record != nil {
				// Отправляем сообщение о переименовании уровня
				return m, func() tea.Msg {
					return SongRenameMsg{Record: record}
				}
			}

		case "d":
			// Удаляем выбранный уровень с диска и из каталога
			if record := m.selectedRecord(); record != nil {
				if err := m.ops.Delete(record.ID); err != nil {
					m.status = fmt.Sprintf("Ошибка удаления: %v", err)
				} else {
					m.status = fmt.Sprintf("Уровень %q удален", record.ID)
				}
				m.RefreshData()
			}
			return m, nil
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	view := m.list.View()
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}
	// Добавляем дополнительную справку
	extraHelp := helpStyle.Render("Enter: детали и превью • r: переименовать • d: удалить • q: выход")
	return view + "\n" + extraHelp
}
