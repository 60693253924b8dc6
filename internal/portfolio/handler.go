package portfolio

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-portfolio/internal/shared/server/respond"
)

const defaultMaxUploadBytes = 10 << 20

// Handler exposes the conversion endpoint.
type Handler struct {
	Svc      *Service
	MaxBytes int64
}

// NewHandler constructs a Handler. maxBytes <= 0 uses 10MB.
func NewHandler(svc *Service, maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxBytes: maxBytes}
}

// RegisterRoutes attaches the conversion endpoint and its stylesheet.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/api/convert", h.convert)
	r.GET(StylesheetPath, stylesheetHandler)
}

// MethodNotAllowed answers non-POST requests to the conversion endpoint.
func MethodNotAllowed(c *gin.Context) {
	c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
}

func (h *Handler) convert(c *gin.Context) {
	body, err := h.readBody(c)
	if err != nil {
		h.fail(c, h.Svc.Reject(err, 0))
		return
	}

	html, err := h.Svc.Convert(c.Request.Context(), body)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.HTML(c, http.StatusOK, html)
}

func (h *Handler) readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, newError(KindBadInput, nil)
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, newError(KindTooLarge, err)
		}
		return nil, newError(KindBadInput, err)
	}
	return body, nil
}

func (h *Handler) fail(c *gin.Context, err error) {
	var perr *Error
	if !errors.As(err, &perr) {
		perr = newError(KindTemplatingDefect, err)
	}
	c.Set("errorKind", string(perr.Kind))
	respond.Error(c, perr.Status(), perr.Summary, perr.Details())
}

func stylesheetHandler(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", Stylesheet())
}
