package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errRedisDown = errors.New("redis down")

func TestKindOf(t *testing.T) {
	t.Run("Wrapped rejection keeps its kind", func(t *testing.T) {
		err := fmt.Errorf("failed to make turn: %w", ErrCellOccupied)

		assert.Equal(t, KindOccupied, KindOf(err))
		assert.ErrorIs(t, err, ErrCellOccupied)
	})

	t.Run("Infrastructure error has no kind", func(t *testing.T) {
		assert.Equal(t, KindUnknown, KindOf(errRedisDown))
	})
}

func TestReason(t *testing.T) {
	// Given: a wrapped rejection and a plain error
	wrapped := fmt.Errorf("join: %w", ErrOwnGame)

	// Then: the rejection keeps its stable text, the plain error gets the fallback
	assert.Equal(t, "Can't join your own game", Reason(wrapped, "oops"))
	assert.Equal(t, "oops", Reason(errRedisDown, "oops"))
}
