package queries

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gamenight/server/internal/modules/core"
	"github.com/gamenight/server/internal/modules/session/domain"
	"github.com/gamenight/server/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type GetSessionQuery struct {
	SessionID string
}

func (q GetSessionQuery) Validate() error {
	if q.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

func HandleGetSession(w http.ResponseWriter, r *http.Request) {
	query := GetSessionQuery{SessionID: chi.URLParam(r, "id")}

	response, err := mediator.Send[GetSessionQuery, domain.Session](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetSessionQueryHandler struct {
	sessions store.Store
}

func NewGetSessionQueryHandler(sessions store.Store) *GetSessionQueryHandler {
	return &GetSessionQueryHandler{sessions}
}

func (h *GetSessionQueryHandler) Handle(
	ctx context.Context,
	request GetSessionQuery,
) (domain.Session, error) {
	session, err := h.sessions.Get(ctx, request.SessionID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Session{}, core.NewCommandError(404, err)
	case err != nil:
		return domain.Session{}, core.NewCommandError(500, err)
	}

	return session, nil
}
