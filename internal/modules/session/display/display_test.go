package display

import (
	"testing"

	boardgame "github.com/gamenight/server/internal/modules/boardgame/domain"
	"github.com/gamenight/server/internal/modules/session/domain"

	"github.com/stretchr/testify/require"
)

func Test_ComplexityCategory_Buckets_By_Threshold(t *testing.T) {
	require.Equal(t, "Light", ComplexityCategory(1.99))
	require.Equal(t, "Medium", ComplexityCategory(2))
	require.Equal(t, "Medium", ComplexityCategory(2.99))
	require.Equal(t, "Medium-Heavy", ComplexityCategory(3))
	require.Equal(t, "Medium-Heavy", ComplexityCategory(3.99))
	require.Equal(t, "Heavy", ComplexityCategory(4))
	require.Equal(t, "Heavy", ComplexityCategory(4.8))
}

func Test_ComplexityLabel_Renders_Category_And_Value(t *testing.T) {
	require.Equal(t, "Light (1.50)", ComplexityLabel("1.5"))
	require.Equal(t, "Medium-Heavy (3.20)", ComplexityLabel("3.20"))
}

func Test_ComplexityLabel_Is_NA_For_Missing_Value(t *testing.T) {
	require.Equal(t, "N/A", ComplexityLabel(""))
	require.Equal(t, "N/A", ComplexityLabel("N/A"))
	require.Equal(t, "N/A", ComplexityLabel("0"))
	require.Equal(t, "N/A", ComplexityLabel("not-a-number"))
}

func Test_PlayingTimeLabel_Renders_Single_And_Range(t *testing.T) {
	require.Equal(t, "30 min", PlayingTimeLabel("30", "30"))
	require.Equal(t, "30-60 min", PlayingTimeLabel("30", "60"))
}

func Test_PlayingTimeLabel_Is_NA_When_Either_Bound_Missing(t *testing.T) {
	require.Equal(t, "N/A", PlayingTimeLabel("", "60"))
	require.Equal(t, "N/A", PlayingTimeLabel("30", "N/A"))
}

func Test_ComplexityRange_Shows_Single_Category_When_Buckets_Match(t *testing.T) {
	// Arrange
	games := []boardgame.GameInfo{
		{Complexity: "2.10"},
		{Complexity: "2.90"},
	}

	// Act + Assert
	require.Equal(t, "Medium", ComplexityRange(games))
}

func Test_ComplexityRange_Spans_Categories(t *testing.T) {
	// Arrange
	games := []boardgame.GameInfo{
		{Complexity: "1.50"},
		{Complexity: "N/A"},
		{Complexity: "4.20"},
	}

	// Act + Assert
	require.Equal(t, "Light - Heavy", ComplexityRange(games))
}

func Test_ComplexityRange_Is_NA_Without_Parseable_Values(t *testing.T) {
	// Arrange
	games := []boardgame.GameInfo{
		{Complexity: "N/A"},
		{Complexity: ""},
	}

	// Act + Assert
	require.Equal(t, "N/A", ComplexityRange(games))
}

func Test_ShareLink_Embeds_Session_ID(t *testing.T) {
	require.Equal(t, "https://gamenight.test/table/abc", ShareLink("https://gamenight.test/", "abc"))
}

func Test_Preview_Single_Mode_Uses_Game_Thumbnail_And_Duration(t *testing.T) {
	// Arrange
	session := domain.Session{
		ID:            "abc",
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
			Thumbnail:      "https://example.test/catan.jpg",
		},
	}

	// Act
	meta := Preview("https://gamenight.test", session)

	// Assert
	require.Equal(t, "Catan | 2026-09-05 18:00 | Cafe | hosted by Alice", meta.Title)
	require.Equal(t, "Playing time: 60-120 min. Complexity: Medium (2.33).", meta.Description)
	require.Equal(t, "https://example.test/catan.jpg", meta.Image)
	require.Equal(t, "https://gamenight.test/table/abc", meta.URL)
}

func Test_Preview_Flexible_Mode_Lists_Game_Names(t *testing.T) {
	// Arrange
	session := domain.Session{
		ID:         "abc",
		Date:       "2026-09-05",
		Time:       "19:30",
		Location:   "Pub",
		IsFlexible: true,
		FlexibleGames: []boardgame.GameInfo{
			{Name: "Catan"},
			{Name: "Risk"},
		},
	}

	// Act
	meta := Preview("https://gamenight.test", session)

	// Assert
	require.Equal(t, "Catan, Risk | 2026-09-05 19:30 | Pub", meta.Title)
	require.Equal(t, "Pick a game: Catan, Risk", meta.Description)
	require.Equal(t, DefaultPreviewImage, meta.Image)
}

func Test_Preview_Falls_Back_To_Placeholder_Image(t *testing.T) {
	// Arrange
	session := domain.Session{ID: "abc", GameName: "Catan"}

	// Act
	meta := Preview("https://gamenight.test", session)

	// Assert
	require.Equal(t, DefaultPreviewImage, meta.Image)
	require.Equal(t, "Playing time: N/A. Complexity: N/A.", meta.Description)
}
