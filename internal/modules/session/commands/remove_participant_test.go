package commands

import (
	"context"
	"testing"

	"github.com/gamenight/server/internal/modules/session/domain"
	"github.com/gamenight/server/internal/modules/session/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_RemoveParticipant_Removes_Every_Occurrence(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessions := store.NewMemoryStore(domain.TTL)
	handler := NewRemoveParticipantCommandHandler(sessions)

	session := seedSession(t, sessions, 5, "Alice", "Bob", "Alice")

	// Act
	updated, err := handler.Handle(ctx, RemoveParticipantCommand{SessionID: session.ID, Name: "Alice"})

	// Assert
	require.NoError(t, err)
	require.Equal(t, []string{"Bob"}, updated.Participants)
}

func Test_RemoveParticipant_Leaves_List_Unchanged_For_Absent_Name(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessions := store.NewMemoryStore(domain.TTL)
	handler := NewRemoveParticipantCommandHandler(sessions)

	session := seedSession(t, sessions, 3, "Alice")

	// Act
	updated, err := handler.Handle(ctx, RemoveParticipantCommand{SessionID: session.ID, Name: "Mallory"})

	// Assert
	require.NoError(t, err)
	require.Equal(t, []string{"Alice"}, updated.Participants)
}

func Test_RemoveParticipant_Returns_404_For_Unknown_Session(t *testing.T) {
	// Arrange
	ctx := context.Background()
	handler := NewRemoveParticipantCommandHandler(store.NewMemoryStore(domain.TTL))

	// Act
	_, err := handler.Handle(ctx, RemoveParticipantCommand{SessionID: uuid.NewString(), Name: "Alice"})

	// Assert
	requireCommandStatus(t, err, 404)
}

func Test_RemoveParticipant_Never_Deletes_The_Session(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sessions := store.NewMemoryStore(domain.TTL)
	handler := NewRemoveParticipantCommandHandler(sessions)

	session := seedSession(t, sessions, 2, "Alice")

	// Act
	_, err := handler.Handle(ctx, RemoveParticipantCommand{SessionID: session.ID, Name: "Alice"})

	// Assert
	require.NoError(t, err)

	remaining, err := sessions.Get(ctx, session.ID)
	require.NoError(t, err)
	require.Empty(t, remaining.Participants)
}
