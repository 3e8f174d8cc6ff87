package mentor

import (
	"testing"

	"github.com/example/adytum/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderSpy struct {
	saved [][]models.MentorChatMessage
}

func (r *recorderSpy) AppendMentorChat(messages []models.MentorChatMessage) models.UserProgress {
	r.saved = append(r.saved, messages)
	return models.UserProgress{}
}

func TestNewConversationStartsWithGreeting(t *testing.T) {
	c := NewConversation()

	msgs := c.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleModel, msgs[0].Role)
	assert.Equal(t, InitialGreeting, msgs[0].Text)
	assert.False(t, c.Busy())
}

func TestBeginAskRejectsBlankMessage(t *testing.T) {
	c := NewConversation()

	_, _, err := c.BeginAsk("   \n ")

	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, c.Messages(), 1)
}

func TestBeginAskExcludesGreetingFromHistory(t *testing.T) {
	c := NewConversation()

	history, epoch, err := c.BeginAsk("¿qué es la conciencia?")
	require.NoError(t, err)
	assert.Empty(t, history)

	c.FinishAsk(epoch, models.MentorChatMessage{Role: models.RoleModel, Text: "el océano"})

	history, _, err = c.BeginAsk("¿y las olas?")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "¿qué es la conciencia?", history[0].Text)
	assert.Equal(t, "el océano", history[1].Text)
}

func TestBeginAskRejectsWhileBusy(t *testing.T) {
	c := NewConversation()

	_, _, err := c.BeginAsk("primera pregunta")
	require.NoError(t, err)
	assert.True(t, c.Busy())

	_, _, err = c.BeginAsk("segunda pregunta")
	assert.ErrorIs(t, err, ErrBusy)
}

func TestFinishAskPairsQuestionWithAnswer(t *testing.T) {
	c := NewConversation()

	_, epoch, err := c.BeginAsk("¿qué misterio?")
	require.NoError(t, err)

	ok := c.FinishAsk(epoch, models.MentorChatMessage{Role: models.RoleModel, Text: "el que ya conoces"})
	assert.True(t, ok)
	assert.False(t, c.Busy())

	msgs := c.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, models.RoleUser, msgs[1].Role)
	assert.Equal(t, models.RoleModel, msgs[2].Role)
}

func TestResetDiscardsInFlightResponse(t *testing.T) {
	c := NewConversation()

	_, epoch, err := c.BeginAsk("pregunta abandonada")
	require.NoError(t, err)

	c.Reset()

	// The stale response arrives after the reset and must not reappear
	ok := c.FinishAsk(epoch, models.MentorChatMessage{Role: models.RoleModel, Text: "respuesta huérfana"})
	assert.False(t, ok)

	msgs := c.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, InitialGreeting, msgs[0].Text)
	assert.False(t, c.Busy())
}

func TestResetClearsBusy(t *testing.T) {
	c := NewConversation()
	_, _, err := c.BeginAsk("pregunta")
	require.NoError(t, err)

	c.Reset()

	assert.False(t, c.Busy())
	_, _, err = c.BeginAsk("nueva pregunta")
	assert.NoError(t, err)
}

func TestSaveRequiresDialogueBeyondGreeting(t *testing.T) {
	c := NewConversation()
	spy := &recorderSpy{}

	assert.False(t, c.CanSave())
	assert.False(t, c.Save(spy))
	assert.Empty(t, spy.saved)

	_, epoch, err := c.BeginAsk("una duda")
	require.NoError(t, err)
	c.FinishAsk(epoch, models.MentorChatMessage{Role: models.RoleModel, Text: "una respuesta"})

	assert.True(t, c.CanSave())
	assert.True(t, c.Save(spy))
	require.Len(t, spy.saved, 1)
	assert.Len(t, spy.saved[0], 3)
}
