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

	"github.com/vovakirdan/lcd-invaders/internal/storage"
)

const (
	statsMinWidth = 80  // Narrower terminals show the table alone
	statsWidth    = 24  // Stats panel width including padding
	boardRounds   = 100 // Rounds loaded into the table

	// formationSize is the number of aliens a cleared board accounts for.
	formationSize = 9
)

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the high score table.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Mine    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Mine, k.Refresh, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Mine, k.Refresh},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Mine: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "only mine"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// boardExit records how the table was left.
type boardExit int

const (
	boardOpen boardExit = iota
	boardBack
	boardQuit
)

// ScoreboardModel lists the best rounds of one game with a stats panel.
type ScoreboardModel struct {
	store    *storage.Store
	gameID   string
	player   string
	onlyMine bool

	rounds []storage.ScoreEntry
	stats  *storage.GameStats
	err    error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	exit   boardExit
}

// NewScoreboardModel loads the table for gameID. The player name is used
// by the "only mine" filter.
func NewScoreboardModel(store *storage.Store, gameID, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		player: player,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newRoundTable(m.tableWidth(), height)
	m.reload()
	return m
}

// showStats reports whether the stats panel fits beside the table.
func (m ScoreboardModel) showStats() bool {
	return m.width >= statsMinWidth
}

func (m ScoreboardModel) tableWidth() int {
	w := m.width - 4
	if m.showStats() {
		w -= statsWidth + 3
	}
	return w
}

// newRoundTable builds the table, handing spare width to the player column.
func newRoundTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "Kills", Width: 5},
		{Title: "Ticks", Width: 6},
		{Title: "Played", Width: 12},
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2 // Cell padding
	}
	if spare := width - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)), // Title, borders and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload queries the store and refills the table.
func (m *ScoreboardModel) reload() {
	m.rounds, m.stats, m.err = nil, nil, nil
	if m.store == nil {
		m.fillTable()
		return
	}

	rounds, err := m.store.TopScores(m.gameID, boardRounds)
	if err == nil {
		m.stats, err = m.store.GetGameStats(m.gameID, formationSize)
	}
	m.rounds, m.err = rounds, err
	m.fillTable()
}

// fillTable copies the loaded rounds into table rows, applying the filter.
func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.rounds))
	for _, r := range m.rounds {
		if m.onlyMine && r.Player != m.player {
			continue
		}
		rows = append(rows, table.Row{
			strconv.Itoa(len(rows) + 1),
			r.Player,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Kills),
			strconv.Itoa(r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles keys and resizes.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = boardQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = boardBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Mine):
			m.onlyMine = !m.onlyMine
			m.fillTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRoundTable(m.tableWidth(), m.height)
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the title, stats panel, table and help.
func (m ScoreboardModel) View() string {
	if m.exit != boardOpen {
		return ""
	}

	title := "HIGH SCORES - " + strings.ToUpper(m.gameID)
	if m.onlyMine {
		title += " - " + m.player
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.tableView())
	if m.showStats() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.statsView(), "  ", body)
	} else {
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tableView() string {
	switch {
	case m.err != nil:
		return warnStyle.Render(m.err.Error())
	case len(m.table.Rows()) == 0 && m.onlyMine:
		return emptyStyle.Render("No rounds for " + m.player + " yet.")
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// statsView renders totals over every recorded round.
func (m ScoreboardModel) statsView() string {
	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("─", statsWidth-4))
	sb.WriteString("\n")

	st := m.stats
	if st == nil || st.Rounds == 0 {
		sb.WriteString(dimStyle.Render("no rounds yet"))
		return panelStyle.Width(statsWidth).Render(sb.String())
	}

	fmt.Fprintf(&sb, "Rounds   %d\n", st.Rounds)
	fmt.Fprintf(&sb, "Players  %d\n", st.Players)
	fmt.Fprintf(&sb, "Best     %d\n", st.HighScore)
	fmt.Fprintf(&sb, "Average  %.1f\n", st.AvgScore)
	fmt.Fprintf(&sb, "Kills    %d\n", st.TotalKills)
	fmt.Fprintf(&sb, "Cleared  %d\n", st.Wins)
	fmt.Fprintf(&sb, "Last     %s", st.LastPlayed.Format("Jan 02 15:04"))
	return panelStyle.Width(statsWidth).Render(sb.String())
}

// IsGoingBack reports whether the table was closed to return to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.exit == boardBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.exit == boardQuit
}

// RunScoreboard shows the table as a standalone program.
func RunScoreboard(store *storage.Store, gameID, player string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, gameID, player, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
