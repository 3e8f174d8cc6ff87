package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/adytum/internal/content"
	"github.com/example/adytum/internal/progress"
	"github.com/go-co-op/gocron"
)

// Constantes para la ventana de notificaciones por defecto
const (
	DefaultNotificationStartHour = 8  // Hora de inicio de los recordatorios
	DefaultNotificationEndHour   = 22 // Hora de fin de los recordatorios
)

// Notifier interface for sending practice reminders
type Notifier interface {
	SendReminder(text string) error
}

// Scheduler manages the daily practice reminder. Once per hour, inside the
// notification window, it checks whether the initiate has touched the
// course today and, if not, sends the current day's anchor practice.
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	store     *progress.Store
	catalog   *content.Catalog

	lastSentDay string // fecha (YYYY-MM-DD) del último recordatorio enviado
}

// New creates a new scheduler instance
func New(notifier Notifier, store *progress.Store, catalog *content.Catalog) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	return &Scheduler{
		scheduler: s,
		notifier:  notifier,
		store:     store,
		catalog:   catalog,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Schedule hourly check for a pending practice reminder
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminder)

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminder sends the day's anchor practice if the course was
// not visited today
func (s *Scheduler) checkAndSendReminder() {
	currentHour := time.Now().Hour()

	startHour := DefaultNotificationStartHour
	endHour := DefaultNotificationEndHour

	// Comprobamos si la ventana está definida en variables de entorno
	if startHourStr := os.Getenv("NOTIFICATION_START_HOUR"); startHourStr != "" {
		if h, err := strconv.Atoi(startHourStr); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}

	if endHourStr := os.Getenv("NOTIFICATION_END_HOUR"); endHourStr != "" {
		if h, err := strconv.Atoi(endHourStr); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminder",
			currentHour, startHour, endHour)
		return
	}

	today := time.Now().Format("2006-01-02")
	if s.lastSentDay == today {
		// Ya se envió el recordatorio de hoy
		return
	}

	record := s.store.Load()
	if visited, err := time.Parse(time.RFC3339, record.LastAccess); err == nil {
		if visited.Format("2006-01-02") == today {
			// El iniciado ya practicó hoy
			return
		}
	}

	station := s.catalog.ForDay(record.CurrentDay)
	if err := s.notifier.SendReminder(station.ReminderPractice); err != nil {
		log.Printf("Error sending practice reminder: %v", err)
		return
	}

	s.lastSentDay = today
	log.Printf("Sent practice reminder for day %d", record.CurrentDay)
}

// RunManualCheck forces a reminder for the current day regardless of the
// notification window
func (s *Scheduler) RunManualCheck() error {
	record := s.store.Load()
	station := s.catalog.ForDay(record.CurrentDay)
	return s.notifier.SendReminder(station.ReminderPractice)
}
