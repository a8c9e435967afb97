package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/fortune-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/fortune-service/internal/app"
	"github.com/jsamuelsen/fortune-service/internal/domain"
)

// FortuneHandler serves the fortune API.
type FortuneHandler struct {
	service *app.FortuneService
}

// NewFortuneHandler creates a new fortune handler.
func NewFortuneHandler(service *app.FortuneService) *FortuneHandler {
	return &FortuneHandler{
		service: service,
	}
}

// GetRandomFortune handles GET /api/fortune.
// Responds 200 {"fortune": {...}} or 404 {"error": ["No fortunes found"]}.
func (h *FortuneHandler) GetRandomFortune(c *gin.Context) {
	f, err := h.service.GetRandomFortune(c.Request.Context())
	if err != nil {
		respondFortuneError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFortuneResponse(f))
}

// CreateFortune handles POST /api/fortune with a JSON or form body.
// Responds 200 with the stored fortune or 422 {"error": [...]}.
func (h *FortuneHandler) CreateFortune(c *gin.Context) {
	var req dto.CreateFortuneRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		if dto.IsBindingError(err) {
			dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "request body could not be decoded")
			return
		}

		respondFortuneError(c, err)

		return
	}

	f, err := h.service.CreateFortune(c.Request.Context(), req.Fortune)
	if err != nil {
		respondFortuneError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFortuneResponse(f))
}

// respondFortuneError renders user-facing failures as {"error": [...]} and
// everything else through the generic error envelope.
func respondFortuneError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, dto.NewMessagesResponse(domain.ValidationMessages(err)...))
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.NewMessagesResponse(dto.MsgNoFortunes))
	default:
		dto.HandleError(c, err)
	}
}
