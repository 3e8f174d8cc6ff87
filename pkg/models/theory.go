package models

// TheorySection is a readable unit of the theory library
type TheorySection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TheoryChapter groups theory sections
type TheoryChapter struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Sections []TheorySection `json:"sections"`
}

// BookReference points at one of the author's source books
type BookReference struct {
	Title          string   `json:"title"`
	Summary        string   `json:"summary"`
	CorePrinciples []string `json:"corePrinciples"`
}
