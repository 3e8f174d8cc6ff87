package models

// FormalPractice is the day's formal exercise with ordered instructions
type FormalPractice struct {
	Title        string   `json:"title"`
	Duration     string   `json:"duration"`
	Instructions []string `json:"instructions"`
}

// Meditation is the day's guided meditation text
type Meditation struct {
	Title    string `json:"title"`
	Guidance string `json:"guidance"`
}

// Wisdom is the day's advice, optionally accompanied by a fable
type Wisdom struct {
	Advice     string `json:"advice"`
	FableTitle string `json:"fableTitle,omitempty"`
	Fable      string `json:"fable,omitempty"`
}

// Bridge links a station to its chapter in the theory library
type Bridge struct {
	Chapter string   `json:"chapter"`
	Topics  []string `json:"topics"`
}

// DailyContent is one station of the course: the fixed, immutable content
// for a single day, keyed by DayNumber.
type DailyContent struct {
	ID               string         `json:"id"`
	DayNumber        int            `json:"dayNumber"`
	Theme            string         `json:"theme"`
	Quote            string         `json:"quote"`
	Koan             string         `json:"koan"`
	Commentary       string         `json:"commentary"`
	FormalPractice   FormalPractice `json:"formalPractice"`
	Meditation       Meditation     `json:"meditation"`
	Wisdom           Wisdom         `json:"wisdom"`
	ReminderPractice string         `json:"reminderPractice"`
	Bridge           Bridge         `json:"bridge"`
}
