package queries

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gamenight/server/internal/modules/core"
	"github.com/gamenight/server/internal/modules/session/display"
	"github.com/gamenight/server/internal/modules/session/domain"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

// previewPage carries Open-Graph metadata for link unfurlers and an
// immediate redirect to the canonical client URL for humans.
var previewPage = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta property="og:image" content="{{.Image}}">
<meta property="og:url" content="{{.URL}}">
<meta http-equiv="refresh" content="0; url={{.URL}}">
</head>
<body>
<a href="{{.URL}}">{{.Title}}</a>
</body>
</html>
`))

// PreviewHandler renders the share-preview page for a session.
type PreviewHandler struct {
	baseURL string
	logger  *zap.Logger
}

func NewPreviewHandler(baseURL string, logger *zap.Logger) *PreviewHandler {
	return &PreviewHandler{baseURL: baseURL, logger: logger}
}

func (h *PreviewHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	query := GetSessionQuery{SessionID: chi.URLParam(r, "id")}

	session, err := mediator.Send[GetSessionQuery, domain.Session](r.Context(), query)
	if err != nil {
		h.writePreviewError(w, err)
		return
	}

	meta := display.Preview(h.baseURL, session)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := previewPage.Execute(w, meta); err != nil {
		h.logger.Error("failed to render preview page", zap.Error(err))
	}
}

func (h *PreviewHandler) writePreviewError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError

	var commandErr core.CommandError
	if errors.As(err, &commandErr) {
		statusCode = commandErr.StatusCode
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	if statusCode == http.StatusNotFound {
		_, _ = w.Write([]byte("session not found"))
		return
	}
	_, _ = w.Write([]byte("failed to load session"))
}
