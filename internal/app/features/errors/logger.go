// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and renders the matching
// friendly page, so handlers can report and bail out in one call.
type ErrorLogger struct {
	Log  *zap.Logger
	Site seo.Site
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger, site seo.Site) *ErrorLogger {
	return &ErrorLogger{Log: logger, Site: site}
}

func (l *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
}

// LogUnavailable logs err and renders the 503 page with a retry link.
func (l *ErrorLogger) LogUnavailable(w http.ResponseWriter, r *http.Request, msg string, err error, retryURL string) {
	l.Log.Error(msg, l.fields(r, err)...)
	RenderUnavailable(w, r, l.Site, retryURL)
}

// LogNotFound logs at debug level and renders the 404 page.
func (l *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	l.Log.Debug(msg, zap.String("path", r.URL.Path))
	RenderNotFound(w, r, l.Site)
}

// LogBadRequest logs err and replies 400 with a short message.
func (l *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	l.Log.Warn(msg, l.fields(r, err)...)
	http.Error(w, userMsg, http.StatusBadRequest)
}
