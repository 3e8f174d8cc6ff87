package models

// Roles for mentor chat messages
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatSource is an external source the mentor cited for an answer
type ChatSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// MentorChatMessage is a single turn in a mentor conversation
type MentorChatMessage struct {
	Role    string       `json:"role"`
	Text    string       `json:"text"`
	Sources []ChatSource `json:"sources,omitempty"`
}

// SavedMentorChat is a conversation promoted to the journal. Once saved,
// its messages are never edited or removed.
type SavedMentorChat struct {
	ID        string              `json:"id"`
	Date      string              `json:"date"`
	DayNumber int                 `json:"dayNumber"`
	Messages  []MentorChatMessage `json:"messages"`
}
