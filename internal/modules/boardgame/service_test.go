package boardgame

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamenight/server/internal/modules/boardgame/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_GameOrPlaceholder_Degrades_On_Upstream_Failure(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewService(NewClient(server.URL), zap.NewNop())

	// Act
	info := service.GameOrPlaceholder(context.Background(), "13", "Catan")

	// Assert
	require.Equal(t, "13", info.ID)
	require.Equal(t, "Catan", info.Name)
	require.Equal(t, domain.NotAvailable, info.Complexity)
	require.Equal(t, domain.NotAvailable, info.MinPlayingTime)
}

func Test_EnrichGames_Passes_Custom_Entries_Through_Unchanged(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("custom games must not trigger external lookups")
	}))
	defer server.Close()

	service := NewService(NewClient(server.URL), zap.NewNop())

	// Act
	enriched := service.EnrichGames(context.Background(), []domain.GameInfo{
		{Name: "Homebrew Quest"},
	})

	// Assert
	require.Equal(t, []domain.GameInfo{{Name: "Homebrew Quest"}}, enriched)
}

func Test_EnrichGames_Degrades_Each_Failure_Independently(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "13" {
			_, _ = w.Write([]byte(`{"items": {"id": "13", "name": {"value": "Catan"}}}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewService(NewClient(server.URL), zap.NewNop())

	// Act
	enriched := service.EnrichGames(context.Background(), []domain.GameInfo{
		{ID: "13", Name: "Catan"},
		{ID: "181", Name: "Risk"},
	})

	// Assert
	require.Len(t, enriched, 2)
	require.Equal(t, "Catan", enriched[0].Name)
	require.NotEmpty(t, enriched[0].YoutubeLink)
	require.Equal(t, "181", enriched[1].ID)
	require.Equal(t, domain.NotAvailable, enriched[1].Complexity)
}

func Test_SearchGames_Normalizes_Candidates(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(
			`{"items": [{"id": "13", "name": {"value": "Catan"}, "yearpublished": {"value": "1995"}}]}`,
		))
	}))
	defer server.Close()

	service := NewService(NewClient(server.URL), zap.NewNop())

	// Act
	results, err := service.SearchGames(context.Background(), "catan")

	// Assert
	require.NoError(t, err)
	require.Equal(t, []domain.SearchResult{{ID: "13", Name: "Catan", YearPublished: "1995"}}, results)
}
