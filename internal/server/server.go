package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gamenight/server/internal/config"
	"github.com/gamenight/server/internal/keepalive"
	"github.com/gamenight/server/internal/modules/boardgame"
	boardgamedomain "github.com/gamenight/server/internal/modules/boardgame/domain"
	boardgamequeries "github.com/gamenight/server/internal/modules/boardgame/queries"
	"github.com/gamenight/server/internal/modules/core"
	sessioncommands "github.com/gamenight/server/internal/modules/session/commands"
	sessiondomain "github.com/gamenight/server/internal/modules/session/domain"
	sessionqueries "github.com/gamenight/server/internal/modules/session/queries"
	"github.com/gamenight/server/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/migrate-go"
	"github.com/go-chi/chi"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const janitorInterval = time.Hour

// HTTPServer is the composition root: it wires the store, the external
// game-database client, the mediator pipeline, and the HTTP routes.
type HTTPServer struct {
	server  *http.Server
	logger  *zap.Logger
	config  config.Config
	cancel  context.CancelFunc
	baseCtx context.Context

	sessions store.Store
	postgres *store.PostgresStore
}

func NewHTTPServer(cfg config.Config) (*HTTPServer, error) {
	baseCtx, cancel := context.WithCancel(context.Background())

	s := &HTTPServer{
		logger:  cfg.Logger,
		config:  cfg,
		cancel:  cancel,
		baseCtx: baseCtx,
	}

	if err := s.setupStore(baseCtx, cfg); err != nil {
		cancel()
		return nil, err
	}

	games := boardgame.NewService(boardgame.NewClient(cfg.GameAPIURL), cfg.Logger)

	if err := registerHandlers(s.sessions, games, cfg); err != nil {
		cancel()
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(core.CorrelationIDHTTPMiddleware)

	preview := sessionqueries.NewPreviewHandler(cfg.PublicBaseURL, cfg.Logger)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/games", boardgamequeries.HandleSearchGames)
	r.Get("/game/{id}", boardgamequeries.HandleGetGame)
	r.Post("/table", sessioncommands.HandleCreateSession)
	r.Get("/table/{id}", sessionqueries.HandleGetSession)
	r.Post("/table/{id}/join", sessioncommands.HandleJoinSession)
	r.Post("/table/{id}/remove", sessioncommands.HandleRemoveParticipant)
	r.Get("/preview/{id}", preview.HandlePreview)

	s.server = &http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(cfg.Port)),
		Handler: r,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}

	return s, nil
}

func (s *HTTPServer) setupStore(ctx context.Context, cfg config.Config) error {
	switch cfg.SessionStore {
	case config.StorePostgres:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("%s is required for the postgres session store", config.DatabaseUrlEnv)
		}

		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return err
		}

		if err := migrate.Run(ctx, db, cfg.MigrationsPath); err != nil {
			return err
		}

		s.postgres = store.NewPostgresStore(db, cfg.SessionTTL)
		s.sessions = s.postgres
	case config.StoreRedis:
		if cfg.RedisURL == "" {
			return fmt.Errorf("%s is required for the redis session store", config.RedisUrlEnv)
		}

		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}

		s.sessions = store.NewRedisStore(redis.NewClient(opts), cfg.SessionTTL)
	case config.StoreMemory:
		s.sessions = store.NewMemoryStore(cfg.SessionTTL)
	default:
		return fmt.Errorf("unknown session store - '%s'", cfg.SessionStore)
	}

	return nil
}

func registerHandlers(sessions store.Store, games *boardgame.Service, cfg config.Config) error {
	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: cfg.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: cfg.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	// boardgame

	err := mediator.RegisterRequestHandler[boardgamequeries.SearchGamesQuery, []boardgamedomain.SearchResult](
		boardgamequeries.NewSearchGamesQueryHandler(games),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[boardgamequeries.GetGameQuery, boardgamedomain.GameInfo](
		boardgamequeries.NewGetGameQueryHandler(games),
	)
	if err != nil {
		return err
	}

	// session

	err = mediator.RegisterRequestHandler[sessioncommands.CreateSessionCommand, sessioncommands.CreateSessionResponse](
		sessioncommands.NewCreateSessionCommandHandler(sessions, games),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.JoinSessionCommand, sessiondomain.Session](
		sessioncommands.NewJoinSessionCommandHandler(sessions),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.RemoveParticipantCommand, sessiondomain.Session](
		sessioncommands.NewRemoveParticipantCommandHandler(sessions),
	)
	if err != nil {
		return err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.GetSessionQuery, sessiondomain.Session](
		sessionqueries.NewGetSessionQueryHandler(sessions),
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Ping(r.Context()); err != nil {
		core.WriteInternalServerError(w, r, err)
		return
	}

	core.WriteOK(w, r, map[string]string{"status": "ok"})
}

func (s *HTTPServer) Start() error {
	if s.postgres != nil {
		go s.runJanitor()
	}

	if s.config.KeepaliveURL != "" {
		pinger := keepalive.NewPinger(s.config.KeepaliveURL, s.config.KeepaliveInterval, s.logger)
		go pinger.Run(s.baseCtx)
	}

	s.logger.Info("server listening", zap.Int("port", s.config.Port))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) runJanitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.baseCtx.Done():
			return
		case <-ticker.C:
			if err := s.postgres.DeleteExpired(s.baseCtx); err != nil {
				s.logger.Warn("expired session cleanup failed", zap.Error(err))
			}
		}
	}
}
