package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arjndr/catena/internal/engine"
	"github.com/arjndr/catena/internal/irt"
	"github.com/arjndr/catena/internal/itembank"
	"github.com/arjndr/catena/internal/review"
	"github.com/arjndr/catena/internal/store"
)

// phase is the screen the player is currently on.
type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseQuitConfirm
	phaseSummary
)

// saveDoneMsg is sent when the attempt snapshot has been persisted.
type saveDoneMsg struct {
	Err error
}

// Model is the root Bubble Tea model for an interactive attempt.
type Model struct {
	eng      *engine.Engine
	attempts store.AttemptRepo
	marked   *review.Queue
	pool     []itembank.Item

	phase     phase
	current   *itembank.Item
	selected  int
	answered  map[string]bool
	started   time.Time
	precision precisionBar
	seTarget  float64

	// reviewing is true during the drain pass, when deferred items are
	// re-presented after the adaptive pass runs out.
	reviewing bool
	drain     []string
	drainPos  int

	lastItem    *itembank.Item
	lastCorrect bool

	saveErr string
	saved   bool
	errMsg  string

	width  int
	height int
}

// newModel starts the attempt and positions it on the first item.
func newModel(bank *itembank.Bank, est irt.Estimator, attempts store.AttemptRepo) (Model, error) {
	eng := engine.New(bank, est)
	first, err := eng.Start()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		eng:       eng,
		attempts:  attempts,
		marked:    review.NewQueue(),
		pool:      bank.Items,
		current:   first,
		answered:  make(map[string]bool),
		started:   time.Now(),
		precision: newPrecisionBar(30),
		seTarget:  est.SEThreshold,
	}
	if m.seTarget <= 0 {
		m.seTarget = defaultThreshold
	}
	if first == nil {
		// Empty pool: nothing to ask. Complete the engine so the saved
		// snapshot reflects a finished attempt.
		if err := eng.Finish(); err != nil {
			return Model{}, err
		}
		m.phase = phaseSummary
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	if m.phase == phaseSummary {
		return m.finishAttempt()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case saveDoneMsg:
		m.saved = msg.Err == nil
		if msg.Err != nil {
			m.saveErr = msg.Err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return m.endAttempt()
		case "n", "N", "esc":
			m.phase = phaseQuestion
		}
		return m, nil

	case phaseFeedback:
		// Any key continues.
		if m.current == nil {
			return m.endAttempt()
		}
		m.phase = phaseQuestion
		m.selected = 0
		m.started = time.Now()
		return m, nil

	case phaseSummary:
		switch key {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil
	}

	// Question phase.
	if m.current == nil {
		return m, nil
	}
	switch key {
	case "esc", "q":
		m.phase = phaseQuitConfirm
		return m, nil
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.current.Choices)-1 {
			m.selected++
		}
	case "m":
		if m.marked.Contains(m.current.ID) {
			m.marked.Resolve(m.current.ID)
		} else {
			m.marked.Defer(m.current.ID)
		}
	case "s":
		return m.skipItem()
	case "enter":
		return m.submitAnswer()
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(m.current.Choices) {
			m.selected = idx
			return m.submitAnswer()
		}
	}
	return m, nil
}

// submitAnswer records the response and moves to the feedback screen.
func (m Model) submitAnswer() (tea.Model, tea.Cmd) {
	correct := m.selected == m.current.AnswerIndex
	elapsed := time.Since(m.started)

	if _, err := m.eng.Record(m.current.ID, correct, elapsed); err != nil {
		m.errMsg = err.Error()
		return m, tea.Quit
	}
	m.answered[m.current.ID] = true

	// Answering an item settles any pending review mark on it.
	m.marked.Resolve(m.current.ID)

	m.lastItem = m.current
	m.lastCorrect = correct
	m.advanceItem()
	m.phase = phaseFeedback
	return m, nil
}

// skipItem defers the current item for later review and moves on without
// recording anything. Skipped items come back in the drain pass; skipping
// there just leaves them pending.
func (m Model) skipItem() (tea.Model, tea.Cmd) {
	if !m.reviewing {
		m.marked.Defer(m.current.ID)
	}
	m.advanceItem()
	if m.current == nil {
		return m.endAttempt()
	}
	m.selected = 0
	m.started = time.Now()
	return m, nil
}

// advanceItem picks what to present next: the most informative item the
// adaptive pass hasn't touched, then — once that runs out — the deferred
// items in deferral order. Sets current to nil when nothing is left.
func (m *Model) advanceItem() {
	if !m.reviewing {
		if next := engine.NextItem(m.pool, m.passedOver(), m.eng.Theta()); next != nil {
			m.current = next
			return
		}
		m.reviewing = true
		m.drain = m.marked.Pending()
		m.drainPos = 0
	}

	for m.drainPos < len(m.drain) {
		id := m.drain[m.drainPos]
		m.drainPos++
		if it := m.itemByID(id); it != nil && !m.answered[id] {
			m.current = it
			return
		}
	}
	m.current = nil
}

// passedOver returns the ids the adaptive selector must not serve:
// everything already answered plus everything currently deferred.
func (m Model) passedOver() map[string]bool {
	out := make(map[string]bool, len(m.answered)+m.marked.Len())
	for id := range m.answered {
		out[id] = true
	}
	for _, id := range m.marked.Pending() {
		out[id] = true
	}
	return out
}

func (m Model) itemByID(id string) *itembank.Item {
	for i := range m.pool {
		if m.pool[i].ID == id {
			return &m.pool[i]
		}
	}
	return nil
}

// endAttempt finalizes the engine and kicks off the snapshot save.
func (m Model) endAttempt() (tea.Model, tea.Cmd) {
	if err := m.eng.Finish(); err != nil {
		m.errMsg = err.Error()
		return m, tea.Quit
	}
	m.phase = phaseSummary
	return m, m.finishAttempt()
}

func (m Model) finishAttempt() tea.Cmd {
	if m.attempts == nil {
		return nil
	}
	snap := m.eng.Snapshot()
	attempts := m.attempts
	return func() tea.Msg {
		return saveDoneMsg{Err: attempts.Save(context.Background(), snap)}
	}
}

// Run starts the interactive attempt and blocks until it ends.
func Run(bank *itembank.Bank, est irt.Estimator, attempts store.AttemptRepo) error {
	m, err := newModel(bank, est, attempts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}

	if fm, ok := final.(Model); ok && fm.errMsg != "" {
		return fmt.Errorf("attempt aborted: %s", fm.errMsg)
	}
	return nil
}
