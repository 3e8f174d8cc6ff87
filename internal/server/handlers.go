package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/example/adytum/internal/content"
	"github.com/example/adytum/internal/lesson"
	"github.com/example/adytum/internal/mentor"
	"github.com/example/adytum/pkg/models"
	"github.com/gin-gonic/gin"
)

// Copy shown when the mentor cannot be reached. The error kind decides
// which message the client sees; the core never carries UI strings.
const (
	copyMentorNotConfigured = "El Archimago no detecta tu esencia en este servidor. Configura GEMINI_API_KEY y reinicia el servicio."
	copyMentorUnavailable   = "ERROR: El éter no responde en este momento. Tu pregunta permanece; inténtalo de nuevo."
)

// GET /api/state
func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"progress":  s.store.Load(),
		"userName":  s.store.UserName(),
		"onboarded": s.store.Onboarded(),
	})
}

// POST /api/onboarding
func (s *Server) handleOnboarding(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		apiError(c, http.StatusBadRequest, "invalid_request", "cuerpo de petición inválido")
		return
	}

	if req.Name != "" {
		s.store.SetUserName(req.Name)
	}
	s.store.SetOnboarded()

	c.JSON(http.StatusOK, gin.H{
		"userName":  s.store.UserName(),
		"onboarded": true,
	})
}

// GET /api/day
func (s *Server) handleDay(c *gin.Context) {
	record := s.store.Load()
	station := s.catalog.ForDay(record.CurrentDay)

	chapter, _ := content.ChapterForBridge(station.Bridge.Chapter)
	c.JSON(http.StatusOK, gin.H{
		"content": station,
		"chapter": chapter,
	})
}

// POST /api/lesson/start
func (s *Server) handleLessonStart(c *gin.Context) {
	s.lessonMu.Lock()
	defer s.lessonMu.Unlock()

	// Entrar en la lección siempre empieza desde la introducción
	s.lesson = lesson.New(func(reflection string) {
		s.store.CompleteDay(reflection)
	})

	c.JSON(http.StatusOK, s.lessonState())
}

// GET /api/lesson
func (s *Server) handleLesson(c *gin.Context) {
	s.lessonMu.Lock()
	defer s.lessonMu.Unlock()

	if s.lesson == nil {
		apiError(c, http.StatusNotFound, "lesson_not_started", "no hay una lección en curso")
		return
	}
	c.JSON(http.StatusOK, s.lessonState())
}

// POST /api/lesson/advance
func (s *Server) handleLessonAdvance(c *gin.Context) {
	var req struct {
		Reflection string `json:"reflection"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		apiError(c, http.StatusBadRequest, "invalid_request", "cuerpo de petición inválido")
		return
	}

	s.lessonMu.Lock()
	defer s.lessonMu.Unlock()

	if s.lesson == nil {
		apiError(c, http.StatusNotFound, "lesson_not_started", "no hay una lección en curso")
		return
	}

	// A refused advance is not an error: the journal gate simply does not
	// fire on an empty reflection and success is terminal
	advanced := s.lesson.Advance(req.Reflection)

	state := s.lessonState()
	state["advanced"] = advanced
	c.JSON(http.StatusOK, state)
}

// lessonState snapshots the active lesson for the client. Callers hold
// lessonMu.
func (s *Server) lessonState() gin.H {
	record := s.store.Load()
	station := s.catalog.ForDay(record.CurrentDay)
	if s.lesson != nil && s.lesson.Step() == lesson.StepSuccess {
		// Tras sellar el día, la lección sigue mostrando su estación
		station = s.catalog.ForDay(record.CurrentDay - 1)
	}

	return gin.H{
		"step":      s.lesson.Step(),
		"stepIndex": s.lesson.StepIndex(),
		"steps":     lesson.Steps(),
		"content":   station,
	}
}

// POST /api/reflections/:day
func (s *Server) handleUpdateReflection(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		apiError(c, http.StatusBadRequest, "invalid_day", "día inválido")
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid_request", "cuerpo de petición inválido")
		return
	}

	// Overwrite semantics; the day does not need to be completed
	record := s.store.UpdateReflection(day, req.Text)
	c.JSON(http.StatusOK, gin.H{"progress": record})
}

// POST /api/voice
func (s *Server) handleSetVoice(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid_request", "cuerpo de petición inválido")
		return
	}

	record := s.store.SetPreferredVoice(req.Name)
	c.JSON(http.StatusOK, gin.H{"progress": record})
}

// GET /api/mentor
func (s *Server) handleMentorState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages":   s.conv.Messages(),
		"busy":       s.conv.Busy(),
		"canSave":    s.conv.CanSave(),
		"configured": s.mentor != nil,
	})
}

// POST /api/mentor/message
func (s *Server) handleMentorMessage(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid_request", "cuerpo de petición inválido")
		return
	}

	if s.mentor == nil {
		apiError(c, http.StatusServiceUnavailable, "mentor_not_configured", copyMentorNotConfigured)
		return
	}

	history, epoch, err := s.conv.BeginAsk(req.Message)
	switch {
	case errors.Is(err, mentor.ErrEmptyMessage):
		apiError(c, http.StatusBadRequest, "empty_message", "tu duda está vacía, iniciado")
		return
	case errors.Is(err, mentor.ErrBusy):
		apiError(c, http.StatusConflict, "mentor_busy", "el Archimago aún medita tu pregunta anterior")
		return
	}

	day := s.store.Load().CurrentDay
	reply, err := s.mentor.Respond(c.Request.Context(), day, history, req.Message)

	var msg models.MentorChatMessage
	var errCode string
	if err != nil {
		// Every question gets a paired answer: failures become a single
		// model-role message and never touch the progress record
		msg = models.MentorChatMessage{Role: models.RoleModel, Text: copyMentorUnavailable}
		errCode = "mentor_unavailable"
	} else {
		msg = models.MentorChatMessage{Role: models.RoleModel, Text: reply.Text, Sources: reply.Sources}
	}

	if !s.conv.FinishAsk(epoch, msg) {
		// La conversación fue reiniciada mientras tanto; se descarta la respuesta
		c.JSON(http.StatusOK, gin.H{"discarded": true, "messages": s.conv.Messages()})
		return
	}

	resp := gin.H{"message": msg, "messages": s.conv.Messages()}
	if errCode != "" {
		resp["errorCode"] = errCode
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/mentor/save
func (s *Server) handleMentorSave(c *gin.Context) {
	if !s.conv.Save(s.store) {
		apiError(c, http.StatusConflict, "nothing_to_save", "aún no hay diálogo que sellar")
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": s.store.Load()})
}

// POST /api/mentor/reset
func (s *Server) handleMentorReset(c *gin.Context) {
	s.conv.Reset()
	c.JSON(http.StatusOK, gin.H{"messages": s.conv.Messages()})
}

// GET /api/library
func (s *Server) handleLibrary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"chapters":      content.TheoryChapters(),
		"books":         content.BookReferences(),
		"readSections":  s.store.ReadSections(),
		"totalSections": content.TotalSections(),
	})
}

// POST /api/library/read/:section
func (s *Server) handleToggleRead(c *gin.Context) {
	sectionID := c.Param("section")
	if sectionID == "" {
		apiError(c, http.StatusBadRequest, "invalid_section", "sección inválida")
		return
	}
	c.JSON(http.StatusOK, gin.H{"readSections": s.store.ToggleReadSection(sectionID)})
}
