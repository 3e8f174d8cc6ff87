package mentor

import (
	"errors"
	"strings"
	"sync"

	"github.com/example/adytum/pkg/models"
)

// InitialGreeting opens every mentor conversation. It is presentation, not
// dialogue: it is excluded from the history sent to the service and a
// conversation holding nothing else cannot be saved.
const InitialGreeting = "Bienvenido al Adytum, buscador. Mi visión ahora se extiende por los hilos de la red infinita y la sabiduría de los libros. ¿Qué misterio de tu ser deseas desvelar hoy? En la paz, la respuesta encontrarás."

var (
	// ErrBusy means a consultation is already in flight; at most one
	// outstanding request is allowed
	ErrBusy = errors.New("a mentor consultation is already in flight")
	// ErrEmptyMessage rejects blank questions before they reach the service
	ErrEmptyMessage = errors.New("message is empty")
)

// ChatRecorder persists a finished conversation; implemented by the
// progress store
type ChatRecorder interface {
	AppendMentorChat(messages []models.MentorChatMessage) models.UserProgress
}

// Conversation is the in-memory message log for one visit to the mentor
// view. Messages are append-only: nothing is ever edited or removed. A
// busy flag enforces the single-outstanding-request contract, and an epoch
// counter discards responses that resolve after the conversation was reset,
// so a stale reply is dropped instead of appended.
type Conversation struct {
	mu       sync.Mutex
	messages []models.MentorChatMessage
	busy     bool
	epoch    int
}

// NewConversation creates a conversation seeded with the greeting
func NewConversation() *Conversation {
	return &Conversation{
		messages: []models.MentorChatMessage{
			{Role: models.RoleModel, Text: InitialGreeting},
		},
	}
}

// Messages returns a copy of the log in insertion order
func (c *Conversation) Messages() []models.MentorChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.MentorChatMessage(nil), c.messages...)
}

// Busy reports whether a consultation is in flight
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// BeginAsk appends the user's question and marks the conversation busy.
// It returns the history to send to the service (the turns before this
// question, greeting excluded) and the epoch to hand back to FinishAsk.
func (c *Conversation) BeginAsk(text string) ([]models.MentorChatMessage, int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, 0, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return nil, 0, ErrBusy
	}

	history := make([]models.MentorChatMessage, 0, len(c.messages))
	for _, m := range c.messages {
		if m.Text == InitialGreeting {
			continue
		}
		history = append(history, m)
	}

	c.messages = append(c.messages, models.MentorChatMessage{Role: models.RoleUser, Text: trimmed})
	c.busy = true
	return history, c.epoch, nil
}

// FinishAsk appends the mentor's turn (response or error copy) for the
// consultation started at the given epoch and clears the busy flag. If the
// conversation was reset in the meantime the message is discarded and
// FinishAsk reports false.
func (c *Conversation) FinishAsk(epoch int, msg models.MentorChatMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		// Respuesta huérfana: la conversación ya no existe
		return false
	}
	c.messages = append(c.messages, msg)
	c.busy = false
	return true
}

// Reset starts the conversation over with a fresh greeting. Any in-flight
// consultation is abandoned; its response will be discarded on arrival.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.busy = false
	c.messages = []models.MentorChatMessage{
		{Role: models.RoleModel, Text: InitialGreeting},
	}
}

// CanSave reports whether anything beyond the greeting was exchanged
func (c *Conversation) CanSave() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages) > 1
}

// Save seals the conversation into the journal through the recorder. It is
// a no-op when only the greeting is present.
func (c *Conversation) Save(recorder ChatRecorder) bool {
	if !c.CanSave() {
		return false
	}
	recorder.AppendMentorChat(c.Messages())
	return true
}
