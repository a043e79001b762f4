package boardgame

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gamenight/server/internal/modules/boardgame/domain"
)

const (
	gamePageURLFormat  = "https://boardgamegeek.com/boardgame/%s"
	youtubeSearchURL   = "https://www.youtube.com/results?search_query="
	youtubeQuerySuffix = " how to play board game"
)

// record is a partially decoded external "thing". The source represents
// nested values inconsistently (object with a "value" field, list of such
// objects, or a bare scalar), so fields stay raw until extracted.
type record map[string]json.RawMessage

// extract is a single extraction strategy. It either resolves a string
// from the record or reports that it cannot.
type extract func(r record) (string, bool)

// firstOf tries each strategy in order; the first success wins.
func firstOf(strategies ...extract) extract {
	return func(r record) (string, bool) {
		for _, strategy := range strategies {
			if val, ok := strategy(r); ok {
				return val, true
			}
		}
		return "", false
	}
}

// field resolves a top-level key that may be an object {"value": x}, the
// first element of a list of such objects, or a bare scalar.
func field(key string) extract {
	return func(r record) (string, bool) {
		raw, ok := r[key]
		if !ok {
			return "", false
		}
		return scalarOrValue(raw)
	}
}

// statsField resolves a key nested under the "stats" object.
func statsField(key string) extract {
	return func(r record) (string, bool) {
		rawStats, ok := r["stats"]
		if !ok {
			return "", false
		}

		var stats record
		if err := json.Unmarshal(rawStats, &stats); err != nil {
			return "", false
		}

		raw, ok := stats[key]
		if !ok {
			return "", false
		}
		return scalarOrValue(raw)
	}
}

// averageWeight digs out statistics.ratings.averageweight.
func averageWeight(r record) (string, bool) {
	rawStatistics, ok := r["statistics"]
	if !ok {
		return "", false
	}

	var statistics record
	if err := json.Unmarshal(rawStatistics, &statistics); err != nil {
		return "", false
	}

	rawRatings, ok := statistics["ratings"]
	if !ok {
		return "", false
	}

	var ratings record
	if err := json.Unmarshal(rawRatings, &ratings); err != nil {
		return "", false
	}

	raw, ok := ratings["averageweight"]
	if !ok {
		return "", false
	}
	return scalarOrValue(raw)
}

// scalarOrValue turns a raw field into a string: bare string, bare number,
// {"value": x}, or the first element of a list of those.
func scalarOrValue(raw json.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", false
	}

	if strings.HasPrefix(trimmed, "[") {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
			return "", false
		}
		return scalarOrValue(list[0])
	}

	if strings.HasPrefix(trimmed, "{") {
		var obj struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil || obj.Value == nil {
			return "", false
		}
		return scalarOrValue(obj.Value)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return "", false
		}
		return asString, true
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return strconv.FormatFloat(asNumber, 'f', -1, 64), true
	}

	return "", false
}

// oneOrMany flattens the gateway's items field, which is an object for a
// single result and a list otherwise.
func oneOrMany(raw json.RawMessage) []json.RawMessage {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil
		}
		return list
	}

	return []json.RawMessage{raw}
}

var (
	extractName    = firstOf(field("name"))
	extractMinTime = firstOf(statsField("minplaytime"), field("minplaytime"))
	extractMaxTime = firstOf(statsField("maxplaytime"), field("maxplaytime"))
)

// Normalize turns a raw external thing record into a canonical GameInfo.
// Unresolvable numeric fields degrade to the "N/A" sentinel. A record with
// neither a name nor an id is reported as not found.
func Normalize(raw json.RawMessage) (domain.GameInfo, error) {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.GameInfo{}, err
	}

	id, _ := field("id")(r)
	name, hasName := extractName(r)
	if !hasName && id == "" {
		return domain.GameInfo{}, ErrGameNotFound
	}
	if !hasName {
		name = domain.PlaceholderName
	}

	info := domain.GameInfo{
		ID:             id,
		Name:           name,
		MinPlayingTime: orNotAvailable(extractMinTime(r)),
		MaxPlayingTime: orNotAvailable(extractMaxTime(r)),
		Complexity:     formatComplexity(averageWeight(r)),
		YoutubeLink:    YoutubeHowToPlayLink(name),
	}

	if id != "" {
		info.Link = fmt.Sprintf(gamePageURLFormat, id)
	}

	if thumbnail, ok := field("thumbnail")(r); ok {
		info.Thumbnail = thumbnail
	}

	if image, ok := field("image")(r); ok {
		info.Image = image
	}

	return info, nil
}

// NormalizeSearchResults maps raw search items to lightweight candidates,
// preserving source order. Malformed entries are skipped rather than
// failing the batch.
func NormalizeSearchResults(items []json.RawMessage) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(items))

	for _, item := range items {
		var r record
		if err := json.Unmarshal(item, &r); err != nil {
			continue
		}

		id, _ := field("id")(r)
		name, hasName := extractName(r)
		if id == "" && !hasName {
			continue
		}
		if !hasName {
			name = domain.PlaceholderName
		}

		results = append(results, domain.SearchResult{
			ID:            id,
			Name:          name,
			YearPublished: orNotAvailable(field("yearpublished")(r)),
		})
	}

	return results
}

// YoutubeHowToPlayLink builds the deterministic "how to play" search URL
// for a game name.
func YoutubeHowToPlayLink(name string) string {
	return youtubeSearchURL + url.QueryEscape(name+youtubeQuerySuffix)
}

func orNotAvailable(val string, ok bool) string {
	if !ok {
		return domain.NotAvailable
	}
	return val
}

func formatComplexity(val string, ok bool) string {
	if !ok {
		return domain.NotAvailable
	}

	weight, err := strconv.ParseFloat(val, 64)
	if err != nil || weight == 0 {
		return domain.NotAvailable
	}

	return strconv.FormatFloat(weight, 'f', 2, 64)
}
