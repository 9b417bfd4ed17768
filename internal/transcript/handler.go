package transcript

import (
	"github.com/gin-gonic/gin"

	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/errors"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/logger"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/server"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/validation"
)

// Handler exposes the transcript service over HTTP.
type Handler struct {
	svc *Service
	log *logger.Logger
}

// NewHandler creates a transcript HTTP handler.
func NewHandler(svc *Service, log *logger.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.WithComponent("handler"),
	}
}

// RegisterRoutes mounts the transcript endpoints on the Gin engine.
func (h *Handler) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/transcribe", h.Transcribe)
	engine.GET("/transcripts/:video_id", h.GetTranscript)
}

// Transcribe handles POST /transcribe. The request body is validated before
// any outbound call is attempted.
func (h *Handler) Transcribe(c *gin.Context) {
	var req TranscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, errors.InvalidInput("", "request body must be valid JSON").WithCause(err))
		return
	}
	if err := validation.Validate(&req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	text, err := h.svc.Transcribe(c.Request.Context(), req.URL, req.Language)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, TranscribeResponse{Transcription: text})
}

// GetTranscript handles GET /transcripts/:video_id. The language query
// parameter defaults to the configured default language.
func (h *Handler) GetTranscript(c *gin.Context) {
	videoID := c.Param("video_id")
	language := c.DefaultQuery("language", h.svc.DefaultLanguage())

	text, err := h.svc.Transcribe(c.Request.Context(), videoID, language)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, TranscribeResponse{Transcription: text})
}
