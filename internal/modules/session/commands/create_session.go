package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	boardgame "github.com/gamenight/server/internal/modules/boardgame/domain"
	"github.com/gamenight/server/internal/modules/core"
	"github.com/gamenight/server/internal/modules/session/domain"
	"github.com/gamenight/server/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/google/uuid"
)

// GameFetcher is the slice of the boardgame service session creation needs:
// lookups that degrade instead of failing, so creation always succeeds.
type GameFetcher interface {
	GameOrPlaceholder(ctx context.Context, id, name string) boardgame.GameInfo
	EnrichGames(ctx context.Context, games []boardgame.GameInfo) []boardgame.GameInfo
}

// FlexibleGameInput is one candidate game in a flexible-mode session.
// Entries without an ID are user-typed custom games and are stored verbatim.
type FlexibleGameInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateSessionCommand struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	PlayersNeeded  int    `json:"playersNeeded"`
	OrganizerJoins bool   `json:"organizerJoins"`
	OrganizerName  string `json:"organizerName"`
	IsFlexible     bool   `json:"isFlexible"`

	GameName string `json:"gameName"`
	GameID   string `json:"gameId"`

	FlexibleGames []FlexibleGameInput `json:"flexibleGames"`
}

func (c CreateSessionCommand) Validate() error {
	if c.Date == "" {
		return fmt.Errorf("missing required field 'date'")
	}

	if _, err := time.Parse(domain.DateLayout, c.Date); err != nil {
		return fmt.Errorf("invalid date '%s' - expected %s", c.Date, domain.DateLayout)
	}

	if !domain.WithinSchedulingWindow(c.Date, time.Now()) {
		return fmt.Errorf("date '%s' is more than 30 days away", c.Date)
	}

	if c.Time == "" {
		return fmt.Errorf("missing required field 'time'")
	}

	if c.Location == "" {
		return fmt.Errorf("missing required field 'location'")
	}

	if c.PlayersNeeded < 1 {
		return fmt.Errorf("invalid playersNeeded - '%d'", c.PlayersNeeded)
	}

	if c.OrganizerJoins && strings.TrimSpace(c.OrganizerName) == "" {
		return fmt.Errorf("missing required field 'organizerName'")
	}

	if c.IsFlexible {
		if len(c.FlexibleGames) == 0 {
			return fmt.Errorf("flexibleGames requires at least one game")
		}

		for _, game := range c.FlexibleGames {
			if strings.TrimSpace(game.Name) == "" {
				return fmt.Errorf("every flexible game requires a name")
			}
		}

		return nil
	}

	if strings.TrimSpace(c.GameName) == "" {
		return fmt.Errorf("missing required field 'gameName'")
	}

	return nil
}

type CreateSessionResponse struct {
	ID string `json:"id"`
}

func HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateSessionCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[CreateSessionCommand, CreateSessionResponse](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type CreateSessionCommandHandler struct {
	sessions store.Store
	games    GameFetcher
}

func NewCreateSessionCommandHandler(sessions store.Store, games GameFetcher) *CreateSessionCommandHandler {
	return &CreateSessionCommandHandler{sessions: sessions, games: games}
}

// Handle builds the session for the chosen mode, dropping the other mode's
// fields, enriches games from the external database (failures degrade, never
// abort), and persists. The returned id resolves via get-by-id immediately.
func (h *CreateSessionCommandHandler) Handle(
	ctx context.Context,
	request CreateSessionCommand,
) (CreateSessionResponse, error) {
	session := domain.Session{
		ID:             uuid.NewString(),
		Date:           request.Date,
		Time:           request.Time,
		Location:       request.Location,
		PlayersNeeded:  request.PlayersNeeded,
		OrganizerJoins: request.OrganizerJoins,
		Participants:   []string{},
		IsFlexible:     request.IsFlexible,
		CreatedAt:      time.Now().UTC(),
	}

	if request.IsFlexible {
		candidates := make([]boardgame.GameInfo, 0, len(request.FlexibleGames))
		for _, game := range request.FlexibleGames {
			if game.ID == "" {
				candidates = append(candidates, boardgame.GameInfo{Name: game.Name})
				continue
			}
			candidates = append(candidates, boardgame.GameInfo{ID: game.ID, Name: game.Name})
		}

		session.FlexibleGames = h.games.EnrichGames(ctx, candidates)
	} else {
		session.GameName = request.GameName
		session.GameID = request.GameID

		if request.GameID != "" {
			gameData := h.games.GameOrPlaceholder(ctx, request.GameID, request.GameName)
			session.GameData = &gameData
		}
	}

	if request.OrganizerJoins {
		session.Participants = append(session.Participants, request.OrganizerName)
	}

	if err := h.sessions.Put(ctx, session); err != nil {
		return CreateSessionResponse{}, core.NewCommandError(500, err)
	}

	return CreateSessionResponse{ID: session.ID}, nil
}
