package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "bloom/internal/modules/journal/dto"
	"bloom/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type JournalPort interface {
	List(ctx context.Context, source string, limit int) ([]journaldto.EntryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type EntriesLoadedMsg struct {
	Entries []journaldto.EntryOutput
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type entryItem struct {
	entry journaldto.EntryOutput
}

func (i entryItem) Title() string { return i.entry.Title }
func (i entryItem) Description() string {
	return fmt.Sprintf("%s  %s", i.entry.CreatedAt.Local().Format("Jan 2 15:04"), i.entry.Source)
}
func (i entryItem) FilterValue() string { return i.entry.Title + " " + i.entry.Text }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    JournalPort
	list    list.Model
	preview viewport.Model
	width   int
	height  int
}

func New(port JournalPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Journal"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{port: port, list: l, preview: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload fetches the entries again, newest first.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return EntriesLoadedMsg{}
		}
		entries, err := m.port.List(context.Background(), "", 0)
		return EntriesLoadedMsg{Entries: entries, Err: err}
	}
}

// Filtering reports whether the list filter is capturing keys.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case EntriesLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Journal: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Entries))
		for i, e := range msg.Entries {
			items[i] = entryItem{entry: e}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.list.Select(0)
		m.preview.SetContent(m.renderSelected())
		return m, tea.Batch(cmds...)
	}

	prev := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	if m.list.Index() != prev {
		m.preview.SetContent(m.renderSelected())
	}
	m.preview, cmd = m.preview.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return theme.Muted.Render("No journal entries yet. Use \":journal <text>\" to write one.")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.preview.View())
}

func (m *Model) resize() {
	listW := m.width * 2 / 5
	m.list.SetSize(listW, m.height)
	m.preview.Width = m.width - listW
	m.preview.Height = m.height
}

func (m Model) renderSelected() string {
	item, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return ""
	}
	e := item.entry
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(e.Title) + "\n")
	sb.WriteString(theme.Muted.Render(e.CreatedAt.Local().Format("Monday, Jan 2 2006 15:04")) + "\n\n")
	sb.WriteString(e.Text + "\n")
	return sb.String()
}
