package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/refnetlabs/refnet/pkg/referral"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LeaderboardModel - Interactive leaderboard browsing
// =============================================================================

// leaderboardEntry is one row of the interactive leaderboard.
type leaderboardEntry struct {
	User   string
	Direct int
	Reach  int
}

// LeaderboardModel is the bubbletea model for browsing the reach leaderboard.
// Selecting an entry expands it to show the referrer's direct referrals.
type LeaderboardModel struct {
	Entries  []leaderboardEntry
	Cursor   int
	Expanded bool
	Height   int
	Offset   int

	network *referral.Network
}

// newLeaderboardModel builds the model from an already-ranked user list.
func newLeaderboardModel(n *referral.Network, users []string) LeaderboardModel {
	entries := make([]leaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = leaderboardEntry{
			User:   u,
			Direct: len(n.DirectReferrals(u)),
			Reach:  n.TotalReach(u),
		}
	}
	return LeaderboardModel{
		Entries: entries,
		Height:  15,
		network: n,
	}
}

func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.Expanded = false
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				m.Expanded = false
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m LeaderboardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Top Referrers"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ expand  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%2d. %-20s %s", cursor, i+1, e.User,
			listDimStyle.Render(fmt.Sprintf("direct %d · reach %d", e.Direct, e.Reach)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")

		if i == m.Cursor && m.Expanded {
			for _, candidate := range m.network.DirectReferrals(e.User) {
				b.WriteString(listDimStyle.Render(fmt.Sprintf("      %s %s", iconArrow, candidate)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}
