package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceWalksStepsInOrder(t *testing.T) {
	m := New(nil)

	assert.Equal(t, StepIntro, m.Step())

	expected := []Step{StepTheory, StepWisdom, StepMeditation, StepRitual, StepJournal}
	for _, step := range expected {
		assert.True(t, m.Advance(""))
		assert.Equal(t, step, m.Step())
	}
}

func TestReflectionIgnoredBeforeJournal(t *testing.T) {
	completed := 0
	m := New(func(string) { completed++ })

	// A reflection passed early has no effect on the traversal
	assert.True(t, m.Advance("demasiado pronto"))
	assert.Equal(t, StepTheory, m.Step())
	assert.Equal(t, 0, completed)
}

func TestJournalRejectsEmptyReflection(t *testing.T) {
	completed := 0
	m := New(func(string) { completed++ })
	advanceTo(m, StepJournal)

	assert.False(t, m.Advance(""))
	assert.False(t, m.Advance("   \n\t  "))
	assert.Equal(t, StepJournal, m.Step())
	assert.Equal(t, 0, completed)
}

func TestJournalCompletionFiresExactlyOnce(t *testing.T) {
	var got []string
	m := New(func(reflection string) { got = append(got, reflection) })
	advanceTo(m, StepJournal)

	assert.True(t, m.Advance("  el espacio se conserva  "))
	assert.Equal(t, StepSuccess, m.Step())
	// The reflection reaches the callback as written, untrimmed
	assert.Equal(t, []string{"  el espacio se conserva  "}, got)

	// Success is terminal: no further advance, no second completion
	assert.False(t, m.Advance("otra vez"))
	assert.Equal(t, StepSuccess, m.Step())
	assert.Len(t, got, 1)
}

func TestResetReturnsToIntro(t *testing.T) {
	m := New(nil)
	advanceTo(m, StepJournal)

	m.Reset()

	assert.Equal(t, StepIntro, m.Step())
	assert.Equal(t, 0, m.StepIndex())
}

func TestStepIndex(t *testing.T) {
	m := New(nil)
	for i := range Steps() {
		assert.Equal(t, i, m.StepIndex())
		m.Advance("reflexión")
	}
}

func advanceTo(m *Machine, target Step) {
	for m.Step() != target {
		m.Advance("")
	}
}
