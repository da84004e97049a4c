package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Caseforge/caseforge-cli/internal/core/renderer"
	"github.com/Caseforge/caseforge-cli/internal/core/suite"
)

var (
	caseTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Theme.Text)

	badgeStyle = lipgloss.NewStyle().
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Theme.Primary)

	bodyStyle = lipgloss.NewStyle().
			Foreground(Theme.TextMuted)

	codeStyle = lipgloss.NewStyle().
			Foreground(Theme.Success)
)

// ViewerModel browses the cases of a single generated suite and renders
// the selected case as framework code.
type ViewerModel struct {
	suite     *suite.Suite
	cursor    int
	format    string
	showCode  bool
	width     int
	statusMsg string
}

func NewViewerModel(s *suite.Suite, format string) ViewerModel {
	if !renderer.ValidTarget(format) {
		format = renderer.TargetJest
	}
	return ViewerModel{
		suite:  s,
		format: format,
		width:  80,
	}
}

func (m ViewerModel) Init() tea.Cmd {
	return nil
}

func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.statusMsg = ""
			}

		case "down", "j":
			if m.cursor < len(m.suite.Cases)-1 {
				m.cursor++
				m.statusMsg = ""
			}

		case "f", "tab":
			m.format = nextTarget(m.format)
			m.statusMsg = ""

		case "s":
			m.showCode = !m.showCode

		case "c":
			if len(m.suite.Cases) == 0 {
				break
			}
			code := renderer.Format(m.suite.Cases[m.cursor], m.format)
			if err := clipboard.WriteAll(code); err != nil {
				m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
			} else {
				m.statusMsg = fmt.Sprintf("Copied %s code for case %s", m.format, m.suite.Cases[m.cursor].ID)
			}

		case "e":
			name := renderer.ArtifactName(m.format)
			bundle := renderer.ExportAll(m.suite.Cases, m.format)
			if err := os.WriteFile(name, []byte(bundle), 0644); err != nil {
				m.statusMsg = fmt.Sprintf("Export failed: %v", err)
			} else {
				m.statusMsg = fmt.Sprintf("Exported %d cases to %s", len(m.suite.Cases), name)
			}
		}
	}

	return m, nil
}

func nextTarget(current string) string {
	for i, t := range renderer.Targets {
		if t == current {
			return renderer.Targets[(i+1)%len(renderer.Targets)]
		}
	}
	return renderer.TargetJest
}

func (m ViewerModel) View() string {
	var s strings.Builder

	header := fmt.Sprintf("Generated Test Cases (%d) • format: %s", len(m.suite.Cases), m.format)
	s.WriteString(titleStyle.Render(header))
	s.WriteString("\n\n")

	for i, tc := range m.suite.Cases {
		cursor := "  "
		if i == m.cursor {
			cursor = "▶ "
		}

		badge := badgeStyle.Foreground(TypeColor(tc.Type)).Render(fmt.Sprintf("[%s]", tc.Type))
		line := fmt.Sprintf("%s%s. %s %s", cursor, tc.ID, tc.Title, badge)

		if i == m.cursor {
			s.WriteString(selectedItemStyle.Render(line))
		} else {
			s.WriteString(itemStyle.Render(line))
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if len(m.suite.Cases) == 0 {
		s.WriteString(helpStyle.Render("This suite has no test cases."))
	} else {
		s.WriteString(m.renderCase(m.suite.Cases[m.cursor]))
	}

	if m.statusMsg != "" {
		s.WriteString("\n")
		s.WriteString(helpStyle.Render(m.statusMsg))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓ navigate • f format • s code • c copy • e export all • q quit"))

	return s.String()
}

func (m ViewerModel) renderCase(tc suite.TestCase) string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var s strings.Builder

	s.WriteString(caseTitleStyle.Render(tc.Title))
	s.WriteString("  ")
	s.WriteString(helpStyle.Render(fmt.Sprintf("priority: %s", tc.Priority)))
	s.WriteString("\n")
	s.WriteString(bodyStyle.Render(wordwrap.String(tc.Description, width)))
	s.WriteString("\n\n")

	if len(tc.Preconditions) > 0 {
		s.WriteString(sectionStyle.Render("Preconditions"))
		s.WriteString("\n")
		for _, pre := range tc.Preconditions {
			s.WriteString(bodyStyle.Render(wordwrap.String("  • "+pre, width)))
			s.WriteString("\n")
		}
		s.WriteString("\n")
	}

	s.WriteString(sectionStyle.Render("Test Steps"))
	s.WriteString("\n")
	for i, step := range tc.Steps {
		s.WriteString(bodyStyle.Render(wordwrap.String(fmt.Sprintf("  %d. %s", i+1, step), width)))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	s.WriteString(sectionStyle.Render("Expected Result"))
	s.WriteString("\n")
	s.WriteString(bodyStyle.Render(wordwrap.String("  "+tc.ExpectedResult, width)))
	s.WriteString("\n")

	if data := tc.TestDataJSON(); data != "" {
		s.WriteString("\n")
		s.WriteString(sectionStyle.Render("Test Data"))
		s.WriteString("\n")
		s.WriteString(codeStyle.Render(data))
		s.WriteString("\n")
	}

	if m.showCode {
		s.WriteString("\n")
		s.WriteString(sectionStyle.Render(fmt.Sprintf("Generated Code (%s)", m.format)))
		s.WriteString("\n")
		s.WriteString(codeStyle.Render(renderer.Format(tc, m.format)))
		s.WriteString("\n")
	}

	return s.String()
}
