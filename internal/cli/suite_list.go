package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Caseforge/caseforge-cli/internal/core/suite"
	"github.com/Caseforge/caseforge-cli/internal/infra/storage"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Theme.PrimaryDark).
			MarginTop(1).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(Theme.Text)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(Theme.PrimaryStrong).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(Theme.TextSubtle).
			MarginTop(1)

	searchStyle = lipgloss.NewStyle().
			Foreground(Theme.PrimaryDark)
)

// SuiteListModel is the interactive browser over saved suites.
type SuiteListModel struct {
	suites         []*suite.Suite
	filteredSuites []*suite.Suite
	cursor         int
	searchInput    textinput.Model
	searching      bool
	selected       *suite.Suite
	statusMsg      string
}

func NewSuiteListModel(suites []*suite.Suite) SuiteListModel {
	ti := textinput.New()
	ti.Placeholder = "Search suites..."
	ti.CharLimit = 50

	return SuiteListModel{
		suites:         suites,
		filteredSuites: suites,
		searchInput:    ti,
	}
}

func (m SuiteListModel) Init() tea.Cmd {
	return nil
}

func (m SuiteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				m.searchInput.SetValue("")
				m.filteredSuites = m.suites
				m.cursor = 0
				return m, nil

			case "enter":
				m.searching = false
				m.searchInput.Blur()
				return m, nil

			default:
				var cmd tea.Cmd
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.filterSuites()
				m.cursor = 0
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "/":
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.filteredSuites)-1 {
				m.cursor++
			}

		case "d":
			if m.cursor < len(m.filteredSuites) {
				target := m.filteredSuites[m.cursor]
				if err := storage.DeleteSuite(target); err != nil {
					m.statusMsg = fmt.Sprintf("Delete failed: %v", err)
				} else {
					m.suites = removeSuite(m.suites, target.ID)
					m.filterSuites()
					if m.cursor >= len(m.filteredSuites) && m.cursor > 0 {
						m.cursor--
					}
					m.statusMsg = fmt.Sprintf("Deleted suite %q", target.Name)
				}
			}

		case "enter":
			if m.cursor < len(m.filteredSuites) {
				m.selected = m.filteredSuites[m.cursor]
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m *SuiteListModel) filterSuites() {
	query := strings.ToLower(m.searchInput.Value())
	if query == "" {
		m.filteredSuites = m.suites
		return
	}

	filtered := make([]*suite.Suite, 0)
	for _, s := range m.suites {
		if strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.InputKind), query) {
			filtered = append(filtered, s)
		}
	}
	m.filteredSuites = filtered
}

func removeSuite(suites []*suite.Suite, id string) []*suite.Suite {
	kept := make([]*suite.Suite, 0, len(suites))
	for _, s := range suites {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return kept
}

func (m SuiteListModel) View() string {
	var s strings.Builder

	s.WriteString(renderLogo())
	s.WriteString("\n")

	s.WriteString(titleStyle.Render("Select a Suite"))
	s.WriteString("\n\n")

	if m.searching {
		s.WriteString(searchStyle.Render("Search: "))
		s.WriteString(m.searchInput.View())
		s.WriteString("\n\n")
	} else {
		s.WriteString(helpStyle.Render("Press '/' to search"))
		s.WriteString("\n\n")
	}

	if len(m.filteredSuites) == 0 && !m.searching {
		s.WriteString(helpStyle.Render("No saved suites. Generate one with --story or --contract and --name."))
		s.WriteString("\n\n")
	} else {
		for i, st := range m.filteredSuites {
			cursor := " "
			if m.cursor == i {
				cursor = "▶"
			}

			line := fmt.Sprintf("%s %s\n  %s • Last used: %s",
				cursor,
				st.Name,
				st.Summary(),
				formatRelativeTime(st.UpdatedAt),
			)

			if m.cursor == i {
				s.WriteString(selectedItemStyle.Render(line))
			} else {
				s.WriteString(itemStyle.Render(line))
			}
			s.WriteString("\n\n")
		}
	}

	if m.statusMsg != "" {
		s.WriteString(helpStyle.Render(m.statusMsg))
		s.WriteString("\n")
	}

	help := "↑/k up • ↓/j down • enter open • d delete • / search • q quit"
	if m.searching {
		help = "esc cancel search • enter apply"
	}
	s.WriteString(helpStyle.Render(help))

	return s.String()
}

// renderLogo styles the block logo with the gradient; filler blocks (░)
// stay subtle.
func renderLogo() string {
	var s strings.Builder
	for i, line := range strings.Split(Logo, "\n") {
		for _, char := range line {
			if char == '░' {
				s.WriteString(lipgloss.NewStyle().Foreground(Theme.TextSubtle).Render(string(char)))
			} else {
				color := Theme.LogoGradient[i%len(Theme.LogoGradient)]
				s.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(string(char)))
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}

func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/24/7), "week")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/24/30), "month")
	default:
		return plural(int(diff.Hours()/24/365), "year")
	}
}

func plural(n int, unit string) string {
	if n <= 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// GetSelectedSuite returns the chosen suite (call after tea.Program exits).
func (m SuiteListModel) GetSelectedSuite() *suite.Suite {
	return m.selected
}
