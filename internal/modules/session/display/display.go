// Package display computes presentation data from stored session state.
// Everything here is a pure function of its inputs; the presentation layer
// and the preview endpoint consume the results as-is.
package display

import (
	"fmt"
	"strconv"
	"strings"

	boardgame "github.com/gamenight/server/internal/modules/boardgame/domain"
	"github.com/gamenight/server/internal/modules/core"
	"github.com/gamenight/server/internal/modules/session/domain"
)

// DefaultPreviewImage is used when neither the session's game data nor any
// flexible game carries a thumbnail.
const DefaultPreviewImage = "https://placehold.co/600x400?text=Game+Night"

// ComplexityCategory buckets a numeric complexity weight. Thresholds are
// 2 / 3 / 4: Light, Medium, Medium-Heavy, Heavy.
func ComplexityCategory(value float64) string {
	switch {
	case value < 2:
		return "Light"
	case value < 3:
		return "Medium"
	case value < 4:
		return "Medium-Heavy"
	default:
		return "Heavy"
	}
}

// ComplexityLabel renders "<Category> (<value to 2dp>)", or "N/A" when the
// value is missing or not a positive number.
func ComplexityLabel(value string) string {
	weight, ok := parseComplexity(value)
	if !ok {
		return boardgame.NotAvailable
	}

	return fmt.Sprintf("%s (%.2f)", ComplexityCategory(weight), weight)
}

// PlayingTimeLabel renders "<min> min", "<min>-<max> min", or "N/A" when
// either bound is unknown.
func PlayingTimeLabel(min, max string) string {
	if missing(min) || missing(max) {
		return boardgame.NotAvailable
	}

	if min == max {
		return fmt.Sprintf("%s min", min)
	}

	return fmt.Sprintf("%s-%s min", min, max)
}

// ComplexityRange renders the category span across a set of games: "N/A"
// with no parseable values, a single category when min and max land in the
// same bucket, "<minCat> - <maxCat>" otherwise.
func ComplexityRange(games []boardgame.GameInfo) string {
	var (
		minWeight, maxWeight float64
		found                bool
	)

	for _, game := range games {
		weight, ok := parseComplexity(game.Complexity)
		if !ok {
			continue
		}

		if !found || weight < minWeight {
			minWeight = weight
		}
		if !found || weight > maxWeight {
			maxWeight = weight
		}
		found = true
	}

	if !found {
		return boardgame.NotAvailable
	}

	minCategory := ComplexityCategory(minWeight)
	maxCategory := ComplexityCategory(maxWeight)
	if minCategory == maxCategory {
		return minCategory
	}

	return fmt.Sprintf("%s - %s", minCategory, maxCategory)
}

// ShareLink is the canonical client URL for a session.
func ShareLink(baseURL, sessionID string) string {
	return fmt.Sprintf("%s/table/%s", strings.TrimRight(baseURL, "/"), sessionID)
}

// PreviewMeta is the Open-Graph data contract the preview page renders.
type PreviewMeta struct {
	Title       string
	Description string
	Image       string
	URL         string
}

// Preview derives link-preview metadata for a session.
func Preview(baseURL string, session domain.Session) PreviewMeta {
	title := fmt.Sprintf("%s | %s %s | %s", gameNames(session), session.Date, session.Time, session.Location)
	if len(session.Participants) > 0 {
		title = fmt.Sprintf("%s | hosted by %s", title, session.Participants[0])
	}

	return PreviewMeta{
		Title:       title,
		Description: previewDescription(session),
		Image:       previewImage(session),
		URL:         ShareLink(baseURL, session.ID),
	}
}

func gameNames(session domain.Session) string {
	if !session.IsFlexible {
		return session.GameName
	}

	names := core.Map(session.FlexibleGames, func(game boardgame.GameInfo) string {
		return game.Name
	})

	return strings.Join(names, ", ")
}

func previewDescription(session domain.Session) string {
	if session.IsFlexible {
		return fmt.Sprintf("Pick a game: %s", gameNames(session))
	}

	var game boardgame.GameInfo
	if session.GameData != nil {
		game = *session.GameData
	}

	return fmt.Sprintf(
		"Playing time: %s. Complexity: %s.",
		PlayingTimeLabel(game.MinPlayingTime, game.MaxPlayingTime),
		ComplexityLabel(game.Complexity),
	)
}

func previewImage(session domain.Session) string {
	if !session.IsFlexible && session.GameData != nil && session.GameData.Thumbnail != "" {
		return session.GameData.Thumbnail
	}

	if session.IsFlexible && len(session.FlexibleGames) > 0 && session.FlexibleGames[0].Thumbnail != "" {
		return session.FlexibleGames[0].Thumbnail
	}

	return DefaultPreviewImage
}

func parseComplexity(value string) (float64, bool) {
	if missing(value) {
		return 0, false
	}

	weight, err := strconv.ParseFloat(value, 64)
	if err != nil || weight <= 0 {
		return 0, false
	}

	return weight, true
}

func missing(value string) bool {
	return value == "" || value == boardgame.NotAvailable
}
