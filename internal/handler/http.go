package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Connor-Kenway3/AmbassadorHub/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPHandler struct {
	catalog   *service.ProgramCatalog
	templates *template.Template
	title     string
	staticDir string
}

type Options struct {
	Title     string
	StaticDir string
}

func NewHTTPHandler(catalog *service.ProgramCatalog, templates *template.Template, opts Options) *HTTPHandler {
	return &HTTPHandler{
		catalog:   catalog,
		templates: templates,
		title:     opts.Title,
		staticDir: opts.StaticDir,
	}
}

// NewRouter returns a gin engine with logging and recovery installed and
// the handler's routes registered.
func NewRouter(h *HTTPHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(logger), Recovery(logger))
	h.SetupRoutes(router)
	return router
}

func (h *HTTPHandler) SetupRoutes(router *gin.Engine) {
	router.GET("/", h.serveIndex)
	router.Static("/static", h.staticDir)
}

// serveIndex renders into a buffer first so a template error becomes a 500
// instead of a truncated 200.
func (h *HTTPHandler) serveIndex(c *gin.Context) {
	page, err := NewHomePage(h.title, c.Request.URL.Path, h.catalog.GetPrograms())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, IndexTemplate, page); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, fmt.Errorf("render %s: %w", IndexTemplate, err))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
