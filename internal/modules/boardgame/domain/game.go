package domain

// NotAvailable is the sentinel for any metadata field that could not be
// resolved from the external game database. Display derivation depends on
// this exact literal, so fields degrade to it instead of being omitted.
const NotAvailable = "N/A"

// PlaceholderName is used when a record carries an id but no resolvable name.
const PlaceholderName = "Unknown Game"

// GameInfo is normalized metadata about a single board game. It is embedded
// in sessions, never persisted on its own. ID is empty for user-typed
// "custom" games in flexible mode.
type GameInfo struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	MinPlayingTime string `json:"minPlayingTime"`
	MaxPlayingTime string `json:"maxPlayingTime"`
	Complexity     string `json:"complexity"`
	Link           string `json:"link,omitempty"`
	YoutubeLink    string `json:"youtubeLink,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
	Image          string `json:"image,omitempty"`
}

// Placeholder builds the degraded GameInfo used when a detail fetch fails
// during session creation: the user's original selection, everything else
// unresolved.
func Placeholder(id, name string) GameInfo {
	if name == "" {
		name = PlaceholderName
	}

	return GameInfo{
		ID:             id,
		Name:           name,
		MinPlayingTime: NotAvailable,
		MaxPlayingTime: NotAvailable,
		Complexity:     NotAvailable,
	}
}

// SearchResult is a lightweight search candidate, kept in the relevance
// order returned by the external source.
type SearchResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	YearPublished string `json:"yearPublished"`
}
