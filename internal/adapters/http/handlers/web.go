package handlers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	//go:embed web/index.html
	indexHTML []byte

	//go:embed web/fortune.js
	fortuneJS []byte
)

// WebHandler serves the single-page browser UI.
type WebHandler struct{}

// NewWebHandler creates a new web handler.
func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

// Index serves the page at /.
func (h *WebHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// Script serves the component script.
func (h *WebHandler) Script(c *gin.Context) {
	c.Data(http.StatusOK, "text/javascript; charset=utf-8", fortuneJS)
}

// RegisterWebRoutes registers / and /fortune.js on the engine.
func (h *WebHandler) RegisterWebRoutes(engine *gin.Engine) {
	engine.GET("/", h.Index)
	engine.GET("/fortune.js", h.Script)
}
