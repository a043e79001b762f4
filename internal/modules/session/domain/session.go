package domain

import (
	"errors"
	"strings"
	"time"

	boardgame "github.com/gamenight/server/internal/modules/boardgame/domain"
)

const (
	// DateLayout is the calendar-date format sessions are created with.
	DateLayout = "2006-01-02"

	// SchedulingWindow is how far into the future a session can be planned.
	SchedulingWindow = 30 * 24 * time.Hour

	// TTL is how long a session lives before the store expires it.
	TTL = 24 * time.Hour
)

var (
	ErrSessionFull = errors.New("session is already full")
	ErrMissingName = errors.New("participant name is required")
)

// Session is a scheduled game-playing gathering. Exactly one of the two
// mode field sets is populated: GameName/GameID/GameData for single mode,
// FlexibleGames for flexible mode. The mode is fixed at creation.
type Session struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Location       string   `json:"location"`
	PlayersNeeded  int      `json:"playersNeeded"`
	OrganizerJoins bool     `json:"organizerJoins"`
	Participants   []string `json:"participants"`
	IsFlexible     bool     `json:"isFlexible"`

	GameName string              `json:"gameName,omitempty"`
	GameID   string              `json:"gameId,omitempty"`
	GameData *boardgame.GameInfo `json:"gameData,omitempty"`

	FlexibleGames []boardgame.GameInfo `json:"flexibleGames,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Join appends a participant, re-checking the capacity invariant against
// the current participant list. The first participant is by convention the
// organizer; duplicate names are allowed.
func (s *Session) Join(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingName
	}

	if len(s.Participants) >= s.PlayersNeeded {
		return ErrSessionFull
	}

	s.Participants = append(s.Participants, name)
	return nil
}

// RemoveParticipant drops every participant whose name matches exactly and
// reports how many were removed. The session itself is never deleted here;
// expiry is the store's job.
func (s *Session) RemoveParticipant(name string) int {
	remaining := make([]string, 0, len(s.Participants))
	removed := 0

	for _, participant := range s.Participants {
		if participant == name {
			removed++
			continue
		}
		remaining = append(remaining, participant)
	}

	s.Participants = remaining
	return removed
}

// WithinSchedulingWindow reports whether a calendar date falls on or before
// the scheduling horizon measured from now.
func WithinSchedulingWindow(date string, now time.Time) bool {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}

	return !parsed.After(now.Add(SchedulingWindow))
}
