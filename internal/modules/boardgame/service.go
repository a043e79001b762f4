package boardgame

import (
	"context"
	"time"

	"github.com/gamenight/server/internal/modules/boardgame/domain"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// lookupInterval spaces out successive detail fetches so flexible-mode
// enrichment does not hammer the third-party service.
const lookupInterval = 100 * time.Millisecond

// Service is the lookup surface the rest of the application uses: free-text
// search, detail fetch, and the degrade-on-failure enrichment used during
// session creation.
type Service struct {
	client  *Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewService(client *Client, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(lookupInterval), 1),
		logger:  logger,
	}
}

// SearchGames returns lightweight candidates in the source's relevance order.
func (s *Service) SearchGames(ctx context.Context, query string) ([]domain.SearchResult, error) {
	items, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return NormalizeSearchResults(items), nil
}

// GameByID fetches and normalizes the full record for a game id.
func (s *Service) GameByID(ctx context.Context, id string) (domain.GameInfo, error) {
	raw, err := s.client.Thing(ctx, id)
	if err != nil {
		return domain.GameInfo{}, err
	}

	return Normalize(raw)
}

// GameOrPlaceholder fetches detail for a game selected during session
// creation. Failure never propagates: the session is still created, with a
// degraded record built from the user's original selection.
func (s *Service) GameOrPlaceholder(ctx context.Context, id, name string) domain.GameInfo {
	info, err := s.GameByID(ctx, id)
	if err != nil {
		s.logger.Warn("game detail fetch degraded to placeholder",
			zap.String("game_id", id),
			zap.Error(err))
		return domain.Placeholder(id, name)
	}

	return info
}

// EnrichGames resolves full detail for every entry that carries an external
// id, one call at a time with a fixed interval between calls. Custom entries
// (no id) pass through untouched, and each entry degrades independently.
func (s *Service) EnrichGames(ctx context.Context, games []domain.GameInfo) []domain.GameInfo {
	enriched := make([]domain.GameInfo, 0, len(games))

	for _, game := range games {
		if game.ID == "" {
			enriched = append(enriched, game)
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			enriched = append(enriched, domain.Placeholder(game.ID, game.Name))
			continue
		}

		enriched = append(enriched, s.GameOrPlaceholder(ctx, game.ID, game.Name))
	}

	return enriched
}
