package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"liferpg/internal/engine"
	"liferpg/internal/oracle"
	"liferpg/internal/storage"
	"liferpg/internal/ui"
)

// RunHome opens the interactive home screen: stat bars, the quest grid, the
// oracle line and the system log.
func RunHome(ctx context.Context, svc *engine.Service, provider oracle.Provider, out io.Writer) error {
	m := newHomeModel(ctx, svc, provider)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

type homeModel struct {
	ctx      context.Context
	svc      *engine.Service
	provider oracle.Provider

	width  int
	height int

	stats  storage.PlayerStats
	quests []storage.Quest
	logs   []engine.LogEntry

	selected int
	message  string
	loading  bool
	err      error
}

type loadedMsg struct {
	stats  storage.PlayerStats
	quests []storage.Quest
	err    error
}

type triggeredMsg struct {
	res *engine.TriggerResult
	err error
}

// oracleMsg carries the motivational line. Replies can arrive in any order;
// whichever lands last wins the display field.
type oracleMsg struct {
	text string
}

func newHomeModel(ctx context.Context, svc *engine.Service, provider oracle.Provider) homeModel {
	return homeModel{
		ctx:      ctx,
		svc:      svc,
		provider: provider,
		loading:  true,
		message:  "Loading...",
	}
}

func (m homeModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m homeModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.svc.Stats(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		quests, err := m.svc.Quests(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{stats: stats, quests: quests}
	}
}

func (m homeModel) triggerCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.TriggerQuest(m.ctx, id)
		return triggeredMsg{res: res, err: err}
	}
}

func (m homeModel) oracleCmd(stats storage.PlayerStats) tea.Cmd {
	return func() tea.Msg {
		return oracleMsg{text: oracle.Fetch(m.ctx, m.provider, stats.Health, stats.Energy)}
	}
}

func (m homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.stats = msg.stats
		m.quests = msg.quests
		if m.selected >= len(m.quests) {
			m.selected = len(m.quests) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, m.oracleCmd(m.stats)
	case triggeredMsg:
		if msg.err != nil {
			m.message = "Quest failed: " + msg.err.Error()
			return m, nil
		}
		m.logs = m.svc.Log().Entries()
		m.message = fmt.Sprintf("%s %s (%s)", msg.res.Quest.Icon, msg.res.Quest.Title, msg.res.Entry.Impact)
		return m, m.loadCmd()
	case oracleMsg:
		m.message = msg.text
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.quests)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected < 0 || m.selected >= len(m.quests) {
				return m, nil
			}
			q := m.quests[m.selected]
			m.message = fmt.Sprintf("Doing %s...", q.Title)
			return m, m.triggerCmd(q.ID)
		}
	}
	return m, nil
}

func (m homeModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading && len(m.quests) == 0 {
		return "Loading...\n"
	}

	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconSparkle, "LIFE RPG") + "  " + ui.Muted.Render(time.Now().Format("Mon Jan 2")) + "\n\n")
	b.WriteString(ui.IconOracle + " " + ui.Gold.Render(m.message) + "\n\n")

	b.WriteString(statLine(ui.IconHeart, "HEALTH", m.stats.Health, ui.Health))
	b.WriteString(statLine(ui.IconEnergy, "ENERGY", m.stats.Energy, ui.Energy))
	b.WriteString(statLine(ui.IconXP, "XP", int(m.stats.Experience), ui.XP))
	b.WriteString("\n")

	b.WriteString(ui.H2.Render("DAILY QUESTS") + "\n")
	for i, q := range m.quests {
		line := fmt.Sprintf("%s %s  %s%s %s%s %s%s",
			q.Icon, q.Title,
			ui.IconHeart, ui.Signed(q.HPImpact),
			ui.IconEnergy, ui.Signed(q.EnergyImpact),
			ui.IconXP, ui.Signed(q.XPImpact))
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	b.WriteString(ui.H2.Render("SYSTEM LOGS") + "\n")
	if len(m.logs) == 0 {
		b.WriteString(ui.Muted.Render("Logs are empty...") + "\n")
	}
	for _, e := range m.logs {
		at := time.UnixMilli(e.Timestamp).Format("15:04:05")
		b.WriteString(fmt.Sprintf("%s > %s %s\n", ui.Muted.Render(at), e.Message, ui.Gold.Render(e.Impact)))
	}

	b.WriteString("\n" + ui.Muted.Render("↑/↓ select · enter do quest · r refresh · q quit") + "\n")
	return b.String()
}

func statLine(icon, label string, value int, fill lipgloss.Style) string {
	return fmt.Sprintf("%s %-7s %s %2d/%d\n", icon, label, ui.StatBar(value, engine.MaxStat, fill), value, engine.MaxStat)
}
