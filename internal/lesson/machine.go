package lesson

import "strings"

// Step is one stage of a day's lesson
type Step string

// Lesson steps, in traversal order
const (
	StepIntro      Step = "intro"
	StepTheory     Step = "theory"
	StepWisdom     Step = "wisdom"
	StepMeditation Step = "meditation"
	StepRitual     Step = "ritual"
	StepJournal    Step = "journal"
	StepSuccess    Step = "success"
)

var stepOrder = []Step{
	StepIntro,
	StepTheory,
	StepWisdom,
	StepMeditation,
	StepRitual,
	StepJournal,
	StepSuccess,
}

// Completer receives the reflection text exactly once, at the moment the
// journal step transitions to success
type Completer func(reflection string)

// Machine drives one day's lesson through its fixed step sequence. Moves
// are forward-only; the only gated transition is journal → success, which
// requires a non-empty reflection and fires the completion callback in the
// same action. The machine is not persisted: leaving the lesson view and
// coming back starts over at intro.
type Machine struct {
	step     Step
	complete Completer
}

// New creates a machine positioned at intro
func New(complete Completer) *Machine {
	return &Machine{step: StepIntro, complete: complete}
}

// Step returns the current step
func (m *Machine) Step() Step {
	return m.step
}

// StepIndex returns the position of the current step within the sequence
func (m *Machine) StepIndex() int {
	for i, s := range stepOrder {
		if s == m.step {
			return i
		}
	}
	return 0
}

// Steps returns the full step sequence
func Steps() []Step {
	return append([]Step(nil), stepOrder...)
}

// Advance moves to the next step. For every step before journal the move is
// unconditional and reflection is ignored. From journal, the move only
// fires when the reflection is non-empty after trimming; firing it invokes
// the completion callback with the reflection as written. At success the
// machine is terminal and Advance reports false.
func (m *Machine) Advance(reflection string) bool {
	switch m.step {
	case StepSuccess:
		return false
	case StepJournal:
		if strings.TrimSpace(reflection) == "" {
			return false
		}
		if m.complete != nil {
			m.complete(reflection)
		}
		m.step = StepSuccess
		return true
	default:
		m.step = stepOrder[m.StepIndex()+1]
		return true
	}
}

// Reset returns the machine to intro, as happens when the lesson view is
// re-entered
func (m *Machine) Reset() {
	m.step = StepIntro
}
