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

type RemoveParticipantCommand struct {
	SessionID string `json:"-"`
	Name      string `json:"name"`
}

func (c RemoveParticipantCommand) Validate() error {
	if c.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	return nil
}

func HandleRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[RemoveParticipantCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.SessionID = chi.URLParam(r, "id")

	response, err := mediator.Send[RemoveParticipantCommand, domain.Session](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type RemoveParticipantCommandHandler struct {
	sessions store.Store
}

func NewRemoveParticipantCommandHandler(sessions store.Store) *RemoveParticipantCommandHandler {
	return &RemoveParticipantCommandHandler{sessions}
}

// Handle removes every exact-match occurrence of the name. There is no
// authorization here: anyone holding the share link may remove anyone.
// That is the product's trust-the-link model, kept as designed.
func (h *RemoveParticipantCommandHandler) Handle(
	ctx context.Context,
	request RemoveParticipantCommand,
) (domain.Session, error) {
	session, err := h.sessions.Update(ctx, request.SessionID, func(s *domain.Session) error {
		s.RemoveParticipant(request.Name)
		return nil
	})

	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Session{}, core.NewCommandError(404, err)
	case err != nil:
		return domain.Session{}, core.NewCommandError(500, err)
	}

	return session, nil
}
