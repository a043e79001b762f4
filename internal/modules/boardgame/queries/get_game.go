package queries

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gamenight/server/internal/modules/boardgame"
	"github.com/gamenight/server/internal/modules/boardgame/domain"
	"github.com/gamenight/server/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type GetGameQuery struct {
	GameID string
}

func (q GetGameQuery) Validate() error {
	if q.GameID == "" {
		return fmt.Errorf("invalid GameID - '%s'", q.GameID)
	}

	return nil
}

func HandleGetGame(w http.ResponseWriter, r *http.Request) {
	query := GetGameQuery{GameID: chi.URLParam(r, "id")}

	response, err := mediator.Send[GetGameQuery, domain.GameInfo](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetGameQueryHandler struct {
	games *boardgame.Service
}

func NewGetGameQueryHandler(games *boardgame.Service) *GetGameQueryHandler {
	return &GetGameQueryHandler{games}
}

func (h *GetGameQueryHandler) Handle(
	ctx context.Context,
	request GetGameQuery,
) (domain.GameInfo, error) {
	info, err := h.games.GameByID(ctx, request.GameID)
	switch {
	case errors.Is(err, boardgame.ErrGameNotFound):
		return domain.GameInfo{}, core.NewCommandError(404, err)
	case err != nil:
		return domain.GameInfo{}, core.NewCommandError(500, fmt.Errorf("game lookup failed"))
	}

	return info, nil
}
