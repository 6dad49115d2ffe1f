// Package tui provides the interactive plan review: the user inspects
// the proposed operations and simulated tree, then accepts or rejects
// the whole plan. Nothing is executed from here.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ordino/internal/domain"
	"ordino/internal/organizer"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// ReviewModel is the bubbletea model for plan review.
type ReviewModel struct {
	plan     organizer.Plan
	tree     string
	viewport viewport.Model
	cursor   int
	accepted bool
	status   string
	ready    bool
}

// NewReview creates a review model for a plan rooted at base.
func NewReview(plan organizer.Plan, base string) *ReviewModel {
	return &ReviewModel{
		plan: plan,
		tree: organizer.RenderTree(organizer.SimulateTree(plan.Operations, base)),
	}
}

// Init implements tea.Model.
func (m *ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.content())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.viewport.SetContent(m.content())
		case "down", "j":
			if m.cursor < len(m.plan.Operations)-1 {
				m.cursor++
			}
			m.viewport.SetContent(m.content())
		case "c":
			if m.cursor < len(m.plan.Operations) {
				dest := m.plan.Operations[m.cursor].Destination
				if err := clipboard.WriteAll(dest); err != nil {
					m.status = "clipboard unavailable"
				} else {
					m.status = "copied destination to clipboard"
				}
			}
		case "y", "enter":
			m.accepted = true
			return m, tea.Quit
		case "n", "q", "esc", "ctrl+c":
			m.accepted = false
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *ReviewModel) View() string {
	if !m.ready {
		return "loading..."
	}

	header := titleStyle.Render(fmt.Sprintf("Proposed plan: %d operations, %d skipped",
		len(m.plan.Operations), len(m.plan.Skipped)))

	help := helpStyle.Render("↑/↓ select · c copy destination · y accept · n reject")
	if m.status != "" {
		help = dimStyle.Render(m.status) + "\n" + help
	}

	return header + "\n\n" + m.viewport.View() + "\n" + help
}

// Accepted reports the user's decision after the program exits.
func (m *ReviewModel) Accepted() bool {
	return m.accepted
}

func (m *ReviewModel) content() string {
	var b strings.Builder

	for i, op := range m.plan.Operations {
		// Date, type and content modes allocate no identifiers.
		line := fmt.Sprintf("%s -> %s", op.Source, op.Destination)
		if op.ID != (domain.ID{}) {
			line = fmt.Sprintf("%s  %s", op.ID, line)
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	for _, skip := range m.plan.Skipped {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  skipped %s: %s", skip.Path, skip.Reason)))
		b.WriteString("\n")
	}

	b.WriteString("\n" + dimStyle.Render(m.tree))
	return b.String()
}

// Review runs the interactive review and reports whether the user
// accepted the plan.
func Review(plan organizer.Plan, base string) (bool, error) {
	model := NewReview(plan, base)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return false, fmt.Errorf("review failed: %w", err)
	}
	return final.(*ReviewModel).Accepted(), nil
}
