package queries

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	boardgame "github.com/gamenight/server/internal/modules/boardgame/domain"
	"github.com/gamenight/server/internal/modules/session/domain"
	"github.com/gamenight/server/internal/modules/session/store"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eskrenkovic/mediator-go"
)

var sessions *store.MemoryStore

func TestMain(m *testing.M) {
	sessions = store.NewMemoryStore(domain.TTL)

	err := mediator.RegisterRequestHandler[GetSessionQuery, domain.Session](
		NewGetSessionQueryHandler(sessions),
	)
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(m.Run())
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Get("/table/{id}", HandleGetSession)
	r.Get("/preview/{id}", NewPreviewHandler("https://gamenight.test", zap.NewNop()).HandlePreview)
	return r
}

func seedSession(t *testing.T) domain.Session {
	t.Helper()

	session := domain.Session{
		ID:            uuid.NewString(),
		Date:          "2026-09-05",
		Time:          "18:00",
		Location:      "Cafe",
		PlayersNeeded: 4,
		Participants:  []string{"Alice"},
		GameName:      "Catan",
		GameData: &boardgame.GameInfo{
			Name:           "Catan",
			MinPlayingTime: "60",
			MaxPlayingTime: "120",
			Complexity:     "2.33",
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, sessions.Put(context.Background(), session))

	return session
}

func Test_GetSession_Returns_Stored_Session(t *testing.T) {
	// Arrange
	session := seedSession(t)

	server := httptest.NewServer(newRouter())
	defer server.Close()

	// Act
	resp, err := http.Get(server.URL + "/table/" + session.ID)

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loaded domain.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loaded))
	require.Equal(t, session.ID, loaded.ID)
	require.Equal(t, []string{"Alice"}, loaded.Participants)
}

func Test_GetSession_Returns_404_For_Unknown_ID(t *testing.T) {
	// Arrange
	server := httptest.NewServer(newRouter())
	defer server.Close()

	// Act
	resp, err := http.Get(server.URL + "/table/" + uuid.NewString())

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_Preview_Renders_OpenGraph_Metadata_And_Redirect(t *testing.T) {
	// Arrange
	session := seedSession(t)

	server := httptest.NewServer(newRouter())
	defer server.Close()

	// Act
	resp, err := http.Get(server.URL + "/preview/" + session.ID)

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(body)
	require.Contains(t, page, `og:title`)
	require.Contains(t, page, "Catan | 2026-09-05 18:00 | Cafe | hosted by Alice")
	require.Contains(t, page, "https://gamenight.test/table/"+session.ID)
	require.Contains(t, page, `http-equiv="refresh"`)
}

func Test_Preview_Returns_Plain_Text_404_For_Unknown_ID(t *testing.T) {
	// Arrange
	server := httptest.NewServer(newRouter())
	defer server.Close()

	// Act
	resp, err := http.Get(server.URL + "/preview/" + uuid.NewString())

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "session not found", string(body))
}
