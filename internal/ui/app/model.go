package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	challengedto "bloom/internal/modules/challenge/dto"
	journaldto "bloom/internal/modules/journal/dto"
	profiledto "bloom/internal/modules/profile/dto"
	"bloom/internal/ui/components"
	"bloom/internal/ui/theme"
	journalview "bloom/internal/ui/views/journal"
	todayview "bloom/internal/ui/views/today"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type challengePort interface {
	InitForToday(ctx context.Context) (challengedto.ResultOutput, error)
	CheckIn(ctx context.Context, mood, energy *int, note, goalID string) (challengedto.ResultOutput, error)
	Accept(ctx context.Context) (challengedto.ResultOutput, error)
	Rotate(ctx context.Context, goalID string) (challengedto.ResultOutput, error)
	Skip(ctx context.Context, goalID string) (challengedto.ResultOutput, error)
	Complete(ctx context.Context) (challengedto.ResultOutput, error)
	Feedback(ctx context.Context, score *int, note *string) (challengedto.ResultOutput, error)
	Abandon(ctx context.Context, reason, note, goalID string) (challengedto.ResultOutput, error)
	SetPreferences(ctx context.Context, categories []string, duration, energy string) (challengedto.ResultOutput, error)
	Review(ctx context.Context, choice string, categories []string, duration, energy string) (challengedto.ResultOutput, error)
	ResetForDebug(ctx context.Context) (challengedto.ResultOutput, error)
}

type profilePort interface {
	Get(ctx context.Context) (profiledto.ProfileOutput, error)
	SetGoal(ctx context.Context, goalID string) (profiledto.ProfileOutput, error)
	CompleteOnboarding(ctx context.Context) (profiledto.ProfileOutput, error)
	Reset(ctx context.Context) error
}

type journalPort interface {
	journalview.JournalPort
	Add(ctx context.Context, title, text string) (journaldto.RecordOutput, error)
	Reset(ctx context.Context) error
}

// ─── tabs ────────────────────────────────────────────────────────────────────

type tabID int

const (
	tabToday tabID = iota
	tabJournal
	tabCount
)

var tabLabels = [tabCount]string{"Today", "Journal"}

// ─── async messages ──────────────────────────────────────────────────────────

type loadedMsg struct {
	today   challengedto.TodayOutput
	profile profiledto.ProfileOutput
	err     error
}

type resultMsg struct {
	op  string
	out challengedto.ResultOutput
	err error
}

type profileMsg struct {
	profile profiledto.ProfileOutput
	err     error
}

type journalAddedMsg struct {
	out journaldto.RecordOutput
	err error
}

type resetMsg struct {
	today challengedto.TodayOutput
	err   error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Accept   key.Binding
	Rotate   key.Binding
	Skip     key.Binding
	Complete key.Binding
	Palette  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		Accept:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept")),
		Rotate:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "another one")),
		Skip:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip today")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accept, k.Rotate, k.Skip, k.Complete},
		{k.Tab, k.Palette, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. Business logic stays behind the ports;
// the model only tracks what to show.
type Model struct {
	challenge challengePort
	profile   profilePort
	journal   journalPort

	journalView journalview.Model

	today    challengedto.TodayOutput
	goal     profiledto.ProfileOutput
	loaded   bool
	tab      tabID
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(challenge challengePort, profile profilePort, journal journalPort) Model {
	return Model{
		challenge:   challenge,
		profile:     profile,
		journal:     journal,
		journalView: journalview.New(journal),
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "loading",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.journalView.Init())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		var cmd tea.Cmd
		m.journalView, cmd = m.journalView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - 4})
		return m, cmd

	case loadedMsg:
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.today, m.goal, m.loaded = msg.today, msg.profile, true
		m.status = "ready"
		return m, nil

	case resultMsg:
		if msg.err != nil {
			m.status = msg.op + ": " + msg.err.Error()
			return m, nil
		}
		m.today = msg.out.Today
		if msg.out.Applied {
			m.status = msg.op + " done"
		} else {
			m.status = msg.op + ": nothing to do right now"
		}
		if msg.op == "feedback" || msg.op == "abandon" {
			return m, m.journalView.Reload()
		}
		return m, nil

	case profileMsg:
		if msg.err != nil {
			m.status = "goal: " + msg.err.Error()
			return m, nil
		}
		m.goal = msg.profile
		m.status = "goal set to " + msg.profile.GoalTitle
		return m, nil

	case resetMsg:
		if msg.err != nil {
			m.status = "debug reset: " + msg.err.Error()
			return m, nil
		}
		m.today, m.goal = msg.today, profiledto.ProfileOutput{}
		m.status = "all data reset"
		return m, m.journalView.Reload()

	case journalview.EntriesLoadedMsg:
		var cmd tea.Cmd
		m.journalView, cmd = m.journalView.Update(msg)
		return m, cmd

	case journalAddedMsg:
		switch {
		case msg.err != nil:
			m.status = "journal: " + msg.err.Error()
		case !msg.out.Recorded:
			m.status = "journal: nothing to save"
		default:
			m.status = "journal entry saved"
		}
		return m, m.journalView.Reload()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.tab == tabJournal && m.journalView.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.tab = (m.tab + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			cmd := m.palette.Open()
			return m, cmd
		}
		if m.tab == tabToday {
			return m, m.todayKey(msg)
		}
	}

	if m.tab == tabJournal {
		var cmd tea.Cmd
		m.journalView, cmd = m.journalView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) todayKey(msg tea.KeyMsg) tea.Cmd {
	goal := m.goal.GoalID
	switch {
	case key.Matches(msg, m.keys.Accept):
		return m.run("accept", func(ctx context.Context) (challengedto.ResultOutput, error) {
			return m.challenge.Accept(ctx)
		})
	case key.Matches(msg, m.keys.Rotate):
		return m.run("rotate", func(ctx context.Context) (challengedto.ResultOutput, error) {
			return m.challenge.Rotate(ctx, goal)
		})
	case key.Matches(msg, m.keys.Skip):
		return m.run("skip", func(ctx context.Context) (challengedto.ResultOutput, error) {
			return m.challenge.Skip(ctx, goal)
		})
	case key.Matches(msg, m.keys.Complete):
		return m.run("complete", func(ctx context.Context) (challengedto.ResultOutput, error) {
			return m.challenge.Complete(ctx)
		})
	}
	return nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.tab == tabJournal:
		content = m.journalView.View()
	case !m.loaded:
		content = theme.Muted.Render("loading…")
	default:
		content = todayview.Render(m.today, m.goal.GoalTitle, m.width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.tab {
			parts[i] = theme.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := "bloom  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if s := m.today.Session; s != nil && s.Outcome == "active" {
		left = theme.Hot.Render("● "+s.Challenge.Title) + "  " + left
	}
	right := theme.Muted.Render("a c r s  :command  ?:help  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	c, err := parseCommand(input)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	goal := m.goal.GoalID

	switch c.name {
	case "checkin":
		return m, m.run("checkin", func(ctx context.Context) (challengedto.ResultOutput, error) {
			return m.challenge.CheckIn(ctx, c.mood, c.energy, c.note, goal)
		})
	case "feedback":
		var note *string
		if c.note != "" {
			note = &c.note
		}
		return m, m.run("feedback", func(ctx context.Context) (challengedto.ResultOutput, error) {
			return m.challenge.Feedback(ctx, c.score, note)
		})
	case "abandon":
		return m, m.run("abandon", func(ctx context.Context) (challengedto.ResultOutput, error) {
			return m.challenge.Abandon(ctx, c.text, c.note, goal)
		})
	case "prefs":
		return m, m.run("prefs", func(ctx context.Context) (challengedto.ResultOutput, error) {
			return m.challenge.SetPreferences(ctx, c.categories, c.duration, c.energyPref)
		})
	case "review":
		return m, m.run("review", func(ctx context.Context) (challengedto.ResultOutput, error) {
			return m.challenge.Review(ctx, c.choice, c.categories, c.duration, c.energyPref)
		})
	case "debug:reset":
		return m, m.resetCmd()
	case "goal":
		return m, m.setGoalCmd(c.text)
	case "journal":
		m.tab = tabJournal
		return m, m.addJournalCmd(c.text)
	}
	return m, nil
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		profile, err := m.profile.Get(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		out, err := m.challenge.InitForToday(ctx)
		return loadedMsg{today: out.Today, profile: profile, err: err}
	}
}

func (m Model) run(op string, fn func(context.Context) (challengedto.ResultOutput, error)) tea.Cmd {
	return func() tea.Msg {
		out, err := fn(context.Background())
		return resultMsg{op: op, out: out, err: err}
	}
}

func (m Model) setGoalCmd(goalID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := m.profile.SetGoal(ctx, goalID); err != nil {
			return profileMsg{err: err}
		}
		profile, err := m.profile.CompleteOnboarding(ctx)
		return profileMsg{profile: profile, err: err}
	}
}

// resetCmd wipes challenges, journal and profile.
func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		out, err := m.challenge.ResetForDebug(ctx)
		if err != nil {
			return resetMsg{err: err}
		}
		if m.journal != nil {
			if err := m.journal.Reset(ctx); err != nil {
				return resetMsg{err: err}
			}
		}
		if err := m.profile.Reset(ctx); err != nil {
			return resetMsg{err: err}
		}
		return resetMsg{today: out.Today}
	}
}

func (m Model) addJournalCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if m.journal == nil {
			return journalAddedMsg{err: fmt.Errorf("journal is not configured")}
		}
		out, err := m.journal.Add(context.Background(), "", text)
		return journalAddedMsg{out: out, err: err}
	}
}
