package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/routeboard/internal/registry"
	"github.com/vovakirdan/routeboard/internal/storage"
)

// runsShown caps the rows loaded for one board.
const runsShown = 50

// RunBrowser reads recorded runs. *storage.Store satisfies it.
type RunBrowser interface {
	BestRuns(gameID string, limit int) ([]storage.RunRecord, error)
	RecentRuns(gameID string, limit int) ([]storage.RunRecord, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// runView selects which runs the table lists.
type runView int

const (
	viewBest   runView = iota // Lowest score first
	viewRecent                // Newest first
)

func (v runView) String() string {
	if v == viewRecent {
		return "RECENT RUNS"
	}
	return "BEST RUNS"
}

type scoreboardKeys struct {
	Scroll key.Binding
	Board  key.Binding
	View   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Board, k.View, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var (
	keyBoardPrev = key.NewBinding(key.WithKeys("left", "h", "shift+tab"))
	keyBoardNext = key.NewBinding(key.WithKeys("right", "l", "tab"))
	keyScroll    = key.NewBinding(key.WithKeys("up", "down", "k", "j", "pgup", "pgdown"))
)

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		Board:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "board")),
		View:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "best/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses the recorded runs of every board.
type ScoreboardModel struct {
	boards []registry.GameInfo
	cursor int
	view   runView
	runs   RunBrowser

	records []storage.RunRecord
	stats   *storage.GameStats
	loadErr error

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates the scoreboard. runs may be nil.
func NewScoreboardModel(runs RunBrowser, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: registry.List(),
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	if s, ok := runs.(*storage.Store); !ok || s != nil {
		m.runs = runs
	}
	m.table = m.newTable()
	m.reload()
	return m
}

// board returns the selected board, or false when nothing is registered.
func (m ScoreboardModel) board() (registry.GameInfo, bool) {
	if len(m.boards) == 0 {
		return registry.GameInfo{}, false
	}
	return m.boards[m.cursor], true
}

func (m ScoreboardModel) newTable() table.Model {
	first := table.Column{Title: "#", Width: 4}
	if m.view == viewRecent {
		first = table.Column{Title: "When", Width: 12}
	}
	columns := []table.Column{
		first,
		{Title: "Score", Width: 6},
		{Title: "Turns", Width: 6},
		{Title: "Eaten", Width: 6},
		{Title: "Seed", Width: 11},
	}
	if m.view == viewBest {
		columns = append(columns, table.Column{Title: "When", Width: 12})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("14"))
	t.SetStyles(st)
	return t
}

// reload fetches the selected board's runs and stats for the current view.
func (m *ScoreboardModel) reload() {
	m.records, m.stats, m.loadErr = nil, nil, nil
	b, ok := m.board()
	if ok && m.runs != nil {
		if m.view == viewRecent {
			m.records, m.loadErr = m.runs.RecentRuns(b.ID, runsShown)
		} else {
			m.records, m.loadErr = m.runs.BestRuns(b.ID, runsShown)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.runs.GetGameStats(b.ID)
		}
	}
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m ScoreboardModel) rows() []table.Row {
	best := -1
	if m.stats != nil && m.stats.RunsCount > 0 {
		best = m.stats.BestScore
	}
	rows := make([]table.Row, 0, len(m.records))
	for i, r := range m.records {
		when := r.CreatedAt.Format("Jan 02 15:04")
		score := strconv.Itoa(r.Score)
		if r.Score == best {
			score += "*"
		}
		row := table.Row{strconv.Itoa(i + 1), score, strconv.Itoa(r.Turns), strconv.Itoa(r.Eaten), fmt.Sprintf("%d", r.Seed)}
		if m.view == viewRecent {
			row[0] = when
		} else {
			row = append(row, when)
		}
		rows = append(rows, row)
	}
	return rows
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, keyBoardNext):
			m.step(1)
			return m, nil
		case key.Matches(msg, keyBoardPrev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.table = m.newTable()
			m.reload()
			return m, nil
		case key.Matches(msg, keyScroll):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(m.rows())
	}
	return m, nil
}

// step moves the board selection by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.boards)) % len(m.boards)
	m.reload()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(accent.Render(m.view.String()), m.width))
	b.WriteString("\n")

	title := "no boards"
	if g, ok := m.board(); ok {
		title = fmt.Sprintf("<  %s  (%d/%d)  >", g.Title, m.cursor+1, len(m.boards))
	}
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dim.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	switch {
	case m.runs == nil:
		body = "Run records are unavailable."
	case m.loadErr != nil:
		body = "Could not read runs: " + m.loadErr.Error()
	case len(m.records) == 0:
		body = "No runs recorded yet.\nClear this board to set one."
	}
	b.WriteString(centerText(frame.Render(body), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dim.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// statsLine summarizes the selected board, "*" marks the best score.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return "no clears yet"
	}
	return fmt.Sprintf("%d clears · best %d* · avg %.1f · %d eaten",
		m.stats.RunsCount, m.stats.BestScore, m.stats.AvgScore, m.stats.TotalEaten)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
