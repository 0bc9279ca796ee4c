package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodgy/internal/domains/booking/lifecycle"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from lifecycle.Status
		to   lifecycle.Status
		want bool
	}{
		{"pending to confirmed", lifecycle.StatusPending, lifecycle.StatusConfirmed, true},
		{"pending to cancelled", lifecycle.StatusPending, lifecycle.StatusCancelled, true},
		{"pending to completed", lifecycle.StatusPending, lifecycle.StatusCompleted, false},
		{"confirmed to in_progress", lifecycle.StatusConfirmed, lifecycle.StatusInProgress, true},
		{"confirmed to completed", lifecycle.StatusConfirmed, lifecycle.StatusCompleted, true},
		{"confirmed to cancelled", lifecycle.StatusConfirmed, lifecycle.StatusCancelled, true},
		{"in_progress to completed", lifecycle.StatusInProgress, lifecycle.StatusCompleted, true},
		{"in_progress to cancelled", lifecycle.StatusInProgress, lifecycle.StatusCancelled, false},
		{"completed is terminal", lifecycle.StatusCompleted, lifecycle.StatusCancelled, false},
		{"cancelled is terminal", lifecycle.StatusCancelled, lifecycle.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lifecycle.CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidateTransition(t *testing.T) {
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.StatusPending, lifecycle.StatusConfirmed))
	assert.Error(t, lifecycle.ValidateTransition(lifecycle.StatusCompleted, lifecycle.StatusCancelled))
}

func TestCancellable(t *testing.T) {
	assert.True(t, lifecycle.Cancellable(lifecycle.StatusPending))
	assert.True(t, lifecycle.Cancellable(lifecycle.StatusConfirmed))
	assert.False(t, lifecycle.Cancellable(lifecycle.StatusInProgress))
	assert.False(t, lifecycle.Cancellable(lifecycle.StatusCompleted))
	assert.False(t, lifecycle.Cancellable(lifecycle.StatusCancelled))
}

func TestActorLabel(t *testing.T) {
	assert.Equal(t, "guest", lifecycle.ActorGuest.Label())
	assert.Equal(t, "owner", lifecycle.ActorHost.Label())
	assert.Equal(t, "admin", lifecycle.ActorAdmin.Label())
	assert.Equal(t, "system", lifecycle.ActorSystem.Label())

	assert.True(t, lifecycle.ActorGuest.Valid())
	assert.False(t, lifecycle.Actor(42).Valid())
}
