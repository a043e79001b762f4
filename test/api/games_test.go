package api

import (
	"net/http"
	"testing"

	"github.com/gamenight/server/internal/modules/boardgame/domain"

	"github.com/stretchr/testify/require"
)

func Test_SearchGames_Returns_Normalized_Results(t *testing.T) {
	// Act
	results, err := sendRequest[struct{}, []domain.SearchResult](
		fixture.client,
		fixture.baseURL+"/games?q=catan",
		http.MethodGet,
		struct{}{},
		hasStatus(t, http.StatusOK),
	)

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, results)
	require.Equal(t, "13", results[0].ID)
	require.Equal(t, "Catan", results[0].Name)
}

func Test_SearchGames_Returns_400_Without_Query(t *testing.T) {
	_, err := sendRequest[struct{}, map[string]string](
		fixture.client,
		fixture.baseURL+"/games",
		http.MethodGet,
		struct{}{},
		hasStatus(t, http.StatusBadRequest),
	)
	require.NoError(t, err)
}

func Test_GetGame_Returns_Normalized_Details(t *testing.T) {
	// Act
	game, err := sendRequest[struct{}, domain.GameInfo](
		fixture.client,
		fixture.baseURL+"/game/13",
		http.MethodGet,
		struct{}{},
		hasStatus(t, http.StatusOK),
	)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "Catan", game.Name)
	require.Equal(t, "2.33", game.Complexity)
	require.Equal(t, "https://boardgamegeek.com/boardgame/13", game.Link)
}

func Test_GetGame_Returns_404_For_Unknown_ID(t *testing.T) {
	_, err := sendRequest[struct{}, map[string]string](
		fixture.client,
		fixture.baseURL+"/game/99999",
		http.MethodGet,
		struct{}{},
		hasStatus(t, http.StatusNotFound),
	)
	require.NoError(t, err)
}
