package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjndr/catena/internal/itembank"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.phase {
	case phaseQuitConfirm:
		content = m.renderQuitConfirm()
	case phaseFeedback:
		content = m.renderFeedback()
	case phaseSummary:
		content = m.renderSummary()
	default:
		content = m.renderQuestion()
	}

	v.SetContent(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content))
	return v
}

// statusLine shows the running ability estimate.
func (m Model) statusLine() string {
	se := "∞"
	if !math.IsInf(m.eng.StandardError(), 1) {
		se = fmt.Sprintf("%.2f", m.eng.StandardError())
	}
	line := fmt.Sprintf("item %d  ·  θ %.2f  ·  SE %s", len(m.eng.Responses())+1, m.eng.Theta(), se)
	if m.eng.Converged() {
		line += "  ·  " + styleCorrect.Render("converged")
	}
	return styleDim.Render(line)
}

func (m Model) renderQuestion() string {
	it := m.current

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(styleDim.Render("precision ") + m.precision.View(m.eng.StandardError(), m.seTarget))
	b.WriteString("\n\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("%s · %s", it.Level, it.Difficulty)))
	if m.reviewing {
		b.WriteString("  " + styleMarked.Render("⚑ review pass"))
	} else if m.marked.Contains(it.ID) {
		b.WriteString("  " + styleMarked.Render("⚑ marked"))
	}
	b.WriteString("\n\n")
	b.WriteString(styleQuestion.Render(it.Question))
	b.WriteString("\n\n")
	b.WriteString(renderChoices(it, m.selected))
	b.WriteString("\n")
	b.WriteString(styleHint.Render("↑↓ move · enter answer · 1-4 quick answer · m mark · s skip · esc end"))

	return styleCard.Width(min(m.width-4, 76)).Render(b.String())
}

func renderChoices(it *itembank.Item, selected int) string {
	labels := []string{"1", "2", "3", "4"}

	var b strings.Builder
	for i, opt := range it.Choices {
		prefix := "  "
		if i == selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, labels[i%len(labels)], opt)
		if i == selected {
			b.WriteString(styleSelected.Render(line))
		} else {
			b.WriteString(styleUnselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFeedback() string {
	var b strings.Builder

	if m.lastCorrect {
		b.WriteString(styleCorrect.Render("✓ Correct"))
	} else {
		b.WriteString(styleIncorrect.Render("✗ Incorrect"))
		b.WriteString("\n\n")
		b.WriteString(styleDim.Render("Answer: " + m.lastItem.Choices[m.lastItem.AnswerIndex]))
	}

	b.WriteString("\n\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("θ is now %.2f", m.eng.Theta())))
	b.WriteString("\n\n")
	if m.current == nil {
		b.WriteString(styleHint.Render("No items left — press any key for your results"))
	} else {
		b.WriteString(styleHint.Render("Press any key to continue"))
	}

	return styleCard.Width(min(m.width-4, 60)).Render(b.String())
}

func (m Model) renderQuitConfirm() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("End this attempt?"))
	b.WriteString("\n\n")
	b.WriteString(styleDim.Render("Your results so far will be saved."))
	b.WriteString("\n\n")
	b.WriteString(styleHint.Render("y end · n keep going"))
	return styleCard.Render(b.String())
}

func (m Model) renderSummary() string {
	s := m.eng.Summary()

	var b strings.Builder
	b.WriteString(styleTitle.Render("Attempt complete"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Ability estimate   %s\n", styleQuestion.Render(fmt.Sprintf("%.2f", s.Theta))))
	b.WriteString(fmt.Sprintf("Performance band   %s\n", styleQuestion.Render(string(s.Band))))
	if s.Converged {
		b.WriteString(fmt.Sprintf("Precision          %s\n", styleCorrect.Render("converged")))
	} else {
		b.WriteString(fmt.Sprintf("Precision          %s\n", styleDim.Render("not converged")))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Answered           %d (%d correct, %.0f%%)\n", s.TotalResponses, s.CorrectCount, s.AccuracyPct))
	if s.TotalResponses > 0 {
		b.WriteString(fmt.Sprintf("Avg time per item  %s\n", s.AvgElapsed.Round(100*time.Millisecond)))
	}

	if len(s.ByLevel) > 0 {
		b.WriteString("\n" + styleDim.Render("By cognitive level") + "\n")
		for _, lvl := range itembank.AllLevels() {
			if st, ok := s.ByLevel[lvl]; ok {
				b.WriteString(fmt.Sprintf("  %-14s %d/%d\n", lvl, st.Correct, st.Attempted))
			}
		}
	}
	if len(s.ByDifficulty) > 0 {
		b.WriteString("\n" + styleDim.Render("By difficulty") + "\n")
		for _, d := range itembank.AllDifficulties() {
			if st, ok := s.ByDifficulty[d]; ok {
				b.WriteString(fmt.Sprintf("  %-14s %d/%d\n", d, st.Correct, st.Attempted))
			}
		}
	}

	if m.marked.Len() > 0 {
		b.WriteString("\n" + styleMarked.Render("⚑ Marked for review") + "\n")
		for _, id := range m.marked.Pending() {
			b.WriteString("  " + id + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.saveErr != "":
		b.WriteString(styleIncorrect.Render("Save failed: "+m.saveErr) + "\n")
	case m.saved:
		b.WriteString(styleDim.Render("Saved as attempt "+s.AttemptID) + "\n")
	}
	b.WriteString(styleHint.Render("q quit"))

	return styleCard.Width(min(m.width-4, 60)).Render(b.String())
}
