package server

import (
	"net/http"
	"sync"

	"github.com/example/adytum/internal/content"
	"github.com/example/adytum/internal/lesson"
	"github.com/example/adytum/internal/mentor"
	"github.com/example/adytum/internal/progress"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server hosts the web client's API. Handlers stay thin: all course logic
// lives in the progress store, the lesson machine and the mentor packages.
type Server struct {
	store   *progress.Store
	catalog *content.Catalog
	mentor  mentor.Service // nil when no API key is configured
	conv    *mentor.Conversation
	config  *Config

	// One lesson session at a time; it resets whenever the lesson view
	// is re-entered
	lessonMu sync.Mutex
	lesson   *lesson.Machine
}

// New creates a server over the given core components. mentorSvc may be
// nil: the mentor endpoints then answer with a remediation error instead of
// failing at startup.
func New(store *progress.Store, catalog *content.Catalog, mentorSvc mentor.Service, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	return &Server{
		store:   store,
		catalog: catalog,
		mentor:  mentorSvc,
		conv:    mentor.NewConversation(),
		config:  config,
	}
}

// Router builds the gin engine with all API routes
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/state", s.handleState)
		api.POST("/onboarding", s.handleOnboarding)

		api.GET("/day", s.handleDay)

		api.POST("/lesson/start", s.handleLessonStart)
		api.POST("/lesson/advance", s.handleLessonAdvance)
		api.GET("/lesson", s.handleLesson)

		api.POST("/reflections/:day", s.handleUpdateReflection)
		api.POST("/voice", s.handleSetVoice)

		api.GET("/mentor", s.handleMentorState)
		api.POST("/mentor/message", s.handleMentorMessage)
		api.POST("/mentor/save", s.handleMentorSave)
		api.POST("/mentor/reset", s.handleMentorReset)

		api.GET("/library", s.handleLibrary)
		api.POST("/library/read/:section", s.handleToggleRead)
	}

	return router
}

// apiError writes the structured error envelope. All user-facing copy lives
// here, at the presentation edge; core errors only carry a kind.
func apiError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// Run starts the HTTP server on the configured port
func (s *Server) Run() error {
	return s.Router().Run(":" + s.config.Port)
}

// HTTPServer wraps the router in an http.Server for graceful shutdown
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:    ":" + s.config.Port,
		Handler: s.Router(),
	}
}
