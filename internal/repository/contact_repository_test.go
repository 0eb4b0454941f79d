package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisupply-api/internal/models"
	"medisupply-api/internal/store"
)

func testMessage() *models.ContactMessage {
	return &models.ContactMessage{
		FirstName: "Ana",
		LastName:  "Torres",
		Email:     "ana.torres@example.com",
		Subject:   "sales",
		Message:   "Interested in bulk pricing for surgical gloves.",
	}
}

func TestContactAddAssignsStatusAndTimestamp(t *testing.T) {
	repo := NewContactRepository(newTestGateway())
	ctx := context.Background()

	msg := testMessage()
	id, err := repo.Add(ctx, msg)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, models.ContactStatusNew, msg.Status)
	assert.False(t, msg.CreatedAt.IsZero())

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "ana.torres@example.com", messages[0].Email)
	assert.Equal(t, models.ContactStatusNew, messages[0].Status)
}

func TestContactInvalidEmailRejectedBeforeStore(t *testing.T) {
	col := &fakeCollection{}
	gw := NewGateway(&fakeDB{col: col},
		WithProbe(probeAlways(true)),
		WithRetryConfig(fastRetry()),
	)
	repo := NewContactRepository(gw)

	for _, email := range []string{"", "not-an-email", "a@b", "a b@c.com", "@missing.com"} {
		msg := testMessage()
		msg.Email = email
		_, err := repo.Add(context.Background(), msg)
		require.Error(t, err, "email %q", email)
		assert.Equal(t, store.CodeInvalidArgument, store.CodeOf(err))
	}
	// Ningún intento llegó al almacén.
	assert.Zero(t, col.insertCalls)
}

func TestContactInvalidSubjectRejected(t *testing.T) {
	repo := NewContactRepository(newTestGateway())

	msg := testMessage()
	msg.Subject = "spam"
	_, err := repo.Add(context.Background(), msg)
	require.Error(t, err)
	assert.Equal(t, store.CodeInvalidArgument, store.CodeOf(err))
}

func TestContactListNewestFirst(t *testing.T) {
	gw := newTestGateway()
	repo := NewContactRepository(gw)
	ctx := context.Background()

	first := testMessage()
	_, err := repo.Add(ctx, first)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	second := testMessage()
	second.Subject = "support"
	_, err = repo.Add(ctx, second)
	require.NoError(t, err)

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "support", messages[0].Subject)
	assert.Equal(t, "sales", messages[1].Subject)
}
