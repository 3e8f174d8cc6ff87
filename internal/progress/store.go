package progress

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/example/adytum/pkg/models"
	"github.com/google/uuid"
)

// Storage keys, shared with the original web client
const (
	ProgressKey     = "adytum_v5_progress"
	OnboardedKey    = "adytum_onboarded"
	UserNameKey     = "adytum_user_name"
	ReadSectionsKey = "adytum_read_sections"
)

// DefaultUserName is used until the initiate picks a name during onboarding
const DefaultUserName = "Aprendiz"

// Storage is the durable key-value backend the store persists into
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store is the single source of truth for the progress record. Every read
// and every write goes through it so storage and in-memory state never
// diverge. Persistence is best-effort: a failed write keeps the in-memory
// record authoritative for the rest of the session, a corrupt stored record
// falls back to defaults. Neither condition is surfaced as an error to
// callers.
type Store struct {
	storage Storage

	mu     sync.Mutex
	cached *models.UserProgress
}

// NewStore creates a store over the given storage backend
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// DefaultProgress returns the record a fresh installation starts with
func DefaultProgress() models.UserProgress {
	return models.UserProgress{
		CurrentDay:    1,
		CompletedDays: []int{},
		Reflections:   map[int]string{},
		MentorChats:   []models.SavedMentorChat{},
		Streak:        0,
		LastAccess:    time.Now().Format(time.RFC3339),
	}
}

// Load returns the current progress record. A missing record yields the
// defaults; a malformed one is discarded with a log line and replaced by the
// defaults. Load never returns an error.
func (s *Store) Load() models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProgress(s.loadLocked())
}

func (s *Store) loadLocked() *models.UserProgress {
	if s.cached != nil {
		return s.cached
	}

	p := DefaultProgress()
	raw, ok, err := s.storage.Get(ProgressKey)
	if err != nil {
		log.Printf("Error al cargar progreso: %v", err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			// Registro corrupto: se descarta y se continúa con los valores por defecto
			log.Printf("Error al cargar progreso: %v", err)
			p = DefaultProgress()
		}
	}
	if p.Reflections == nil {
		p.Reflections = map[int]string{}
	}
	if p.CompletedDays == nil {
		p.CompletedDays = []int{}
	}
	if p.MentorChats == nil {
		p.MentorChats = []models.SavedMentorChat{}
	}

	s.cached = &p
	return s.cached
}

// Save replaces the whole record, persists it and refreshes the in-memory
// cache. The write is best-effort: on failure the in-memory record stays
// authoritative and the failure is only logged.
func (s *Store) Save(p models.UserProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked(p)
}

func (s *Store) saveLocked(p models.UserProgress) {
	next := cloneProgress(&p)
	s.cached = &next

	data, err := json.Marshal(next)
	if err != nil {
		log.Printf("Error al serializar progreso: %v", err)
		return
	}
	if err := s.storage.Set(ProgressKey, string(data)); err != nil {
		log.Printf("Error al guardar progreso: %v", err)
	}
}

// CompleteDay seals the current day: inserts it into completedDays, records
// the reflection, increments the streak and advances currentDay by one.
// The streak is a monotonic counter of completed lessons; nothing ever
// resets it.
func (s *Store) CompleteDay(reflection string) models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.loadLocked()
	next := cloneProgress(prev)
	if !next.HasCompleted(next.CurrentDay) {
		next.CompletedDays = append(next.CompletedDays, next.CurrentDay)
	}
	next.Reflections[next.CurrentDay] = reflection
	next.Streak = prev.Streak + 1
	next.CurrentDay = prev.CurrentDay + 1
	next.LastAccess = time.Now().Format(time.RFC3339)

	s.saveLocked(next)
	return cloneProgress(s.cached)
}

// UpdateReflection overwrites the journal entry for a day. The day does not
// need to be completed: the journal allows free editing of any visited day.
func (s *Store) UpdateReflection(day int, text string) models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneProgress(s.loadLocked())
	next.Reflections[day] = text
	next.LastAccess = time.Now().Format(time.RFC3339)

	s.saveLocked(next)
	return cloneProgress(s.cached)
}

// AppendMentorChat seals a mentor conversation into the journal, newest
// first. The chat gets a fresh id, the current timestamp and the course day
// active at save time.
func (s *Store) AppendMentorChat(messages []models.MentorChatMessage) models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneProgress(s.loadLocked())
	chat := models.SavedMentorChat{
		ID:        uuid.NewString(),
		Date:      time.Now().Format(time.RFC3339),
		DayNumber: next.CurrentDay,
		Messages:  append([]models.MentorChatMessage(nil), messages...),
	}
	next.MentorChats = append([]models.SavedMentorChat{chat}, next.MentorChats...)
	next.LastAccess = time.Now().Format(time.RFC3339)

	s.saveLocked(next)
	return cloneProgress(s.cached)
}

// SetPreferredVoice stores the narration voice preference. The name is
// advisory only and never validated against available voices.
func (s *Store) SetPreferredVoice(name string) models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneProgress(s.loadLocked())
	next.PreferredVoiceName = name
	next.LastAccess = time.Now().Format(time.RFC3339)

	s.saveLocked(next)
	return cloneProgress(s.cached)
}

// Onboarded reports whether onboarding was completed on this installation
func (s *Store) Onboarded() bool {
	value, ok, err := s.storage.Get(OnboardedKey)
	if err != nil {
		log.Printf("Error al leer el estado de iniciación: %v", err)
		return false
	}
	return ok && value == "true"
}

// SetOnboarded marks onboarding as completed
func (s *Store) SetOnboarded() {
	if err := s.storage.Set(OnboardedKey, "true"); err != nil {
		log.Printf("Error al guardar el estado de iniciación: %v", err)
	}
}

// UserName returns the initiate's display name
func (s *Store) UserName() string {
	name, ok, err := s.storage.Get(UserNameKey)
	if err != nil {
		log.Printf("Error al leer el nombre del iniciado: %v", err)
	}
	if !ok || name == "" {
		return DefaultUserName
	}
	return name
}

// SetUserName stores the initiate's display name
func (s *Store) SetUserName(name string) {
	if err := s.storage.Set(UserNameKey, name); err != nil {
		log.Printf("Error al guardar el nombre del iniciado: %v", err)
	}
}

// ReadSections returns the theory sections marked as integrated
func (s *Store) ReadSections() []string {
	raw, ok, err := s.storage.Get(ReadSectionsKey)
	if err != nil {
		log.Printf("Error cargando secciones leídas: %v", err)
		return []string{}
	}
	if !ok {
		return []string{}
	}
	var sections []string
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		log.Printf("Error cargando secciones leídas: %v", err)
		return []string{}
	}
	return sections
}

// ToggleReadSection flips the read mark for a theory section and returns
// the updated list
func (s *Store) ToggleReadSection(sectionID string) []string {
	sections := s.ReadSections()
	found := false
	next := make([]string, 0, len(sections)+1)
	for _, id := range sections {
		if id == sectionID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, sectionID)
	}

	data, err := json.Marshal(next)
	if err != nil {
		log.Printf("Error al serializar secciones leídas: %v", err)
		return next
	}
	if err := s.storage.Set(ReadSectionsKey, string(data)); err != nil {
		log.Printf("Error al guardar secciones leídas: %v", err)
	}
	return next
}

// cloneProgress copies the record so callers never share the cached maps
// and slices
func cloneProgress(p *models.UserProgress) models.UserProgress {
	out := *p
	out.CompletedDays = append([]int(nil), p.CompletedDays...)
	out.Reflections = make(map[int]string, len(p.Reflections))
	for day, text := range p.Reflections {
		out.Reflections[day] = text
	}
	out.MentorChats = append([]models.SavedMentorChat(nil), p.MentorChats...)
	return out
}
