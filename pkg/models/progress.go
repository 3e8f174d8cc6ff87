package models

// UserProgress is the single root record describing an initiate's journey
// through the 21-day course. One record exists per installation; every
// mutation goes through the progress store.
type UserProgress struct {
	CurrentDay         int               `json:"currentDay"`
	CompletedDays      []int             `json:"completedDays"`
	Reflections        map[int]string    `json:"reflections"`
	MentorChats        []SavedMentorChat `json:"mentorChats"`
	Streak             int               `json:"streak"`
	LastAccess         string            `json:"lastAccess"`
	PreferredVoiceName string            `json:"preferredVoiceName,omitempty"`
}

// HasCompleted reports whether the given day is already sealed.
func (p *UserProgress) HasCompleted(day int) bool {
	for _, d := range p.CompletedDays {
		if d == day {
			return true
		}
	}
	return false
}
