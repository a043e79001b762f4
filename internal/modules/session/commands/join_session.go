package commands

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

type JoinSessionCommand struct {
	SessionID string `json:"-"`
	Name      string `json:"name"`
}

func (c JoinSessionCommand) Validate() error {
	if c.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	return nil
}

func HandleJoinSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[JoinSessionCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.SessionID = chi.URLParam(r, "id")

	response, err := mediator.Send[JoinSessionCommand, domain.Session](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type JoinSessionCommandHandler struct {
	sessions store.Store
}

func NewJoinSessionCommandHandler(sessions store.Store) *JoinSessionCommandHandler {
	return &JoinSessionCommandHandler{sessions}
}

// Handle appends the participant inside the store's read-modify-write, so
// the capacity check always runs against the freshly loaded session.
func (h *JoinSessionCommandHandler) Handle(
	ctx context.Context,
	request JoinSessionCommand,
) (domain.Session, error) {
	session, err := h.sessions.Update(ctx, request.SessionID, func(s *domain.Session) error {
		return s.Join(request.Name)
	})

	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Session{}, core.NewCommandError(404, err)
	case errors.Is(err, domain.ErrSessionFull), errors.Is(err, domain.ErrMissingName):
		return domain.Session{}, core.NewCommandError(400, err)
	case err != nil:
		return domain.Session{}, core.NewCommandError(500, err)
	}

	return session, nil
}
