package queries

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gamenight/server/internal/modules/boardgame"
	"github.com/gamenight/server/internal/modules/boardgame/domain"
	"github.com/gamenight/server/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
)

type SearchGamesQuery struct {
	Query string
}

func (q SearchGamesQuery) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return fmt.Errorf("missing required query param 'q'")
	}

	return nil
}

func HandleSearchGames(w http.ResponseWriter, r *http.Request) {
	query := SearchGamesQuery{Query: r.URL.Query().Get("q")}

	response, err := mediator.Send[SearchGamesQuery, []domain.SearchResult](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type SearchGamesQueryHandler struct {
	games *boardgame.Service
}

func NewSearchGamesQueryHandler(games *boardgame.Service) *SearchGamesQueryHandler {
	return &SearchGamesQueryHandler{games}
}

func (h *SearchGamesQueryHandler) Handle(
	ctx context.Context,
	request SearchGamesQuery,
) ([]domain.SearchResult, error) {
	results, err := h.games.SearchGames(ctx, request.Query)
	if err != nil {
		return nil, core.NewCommandError(500, fmt.Errorf("game search failed"))
	}

	return results, nil
}
