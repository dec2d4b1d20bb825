package fabrik

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_NextProducesSuccessiveValues(t *testing.T) {
	emails := NewSequence(func(n int) string {
		return fmt.Sprintf("user%d@example.com", n)
	})

	assert.Equal(t, "user1@example.com", emails.Next())
	assert.Equal(t, "user2@example.com", emails.Next())
	assert.Equal(t, "user3@example.com", emails.Next())
	assert.Equal(t, "user4@example.com", emails.Next())
}

func TestSequence_TakeProducesMultipleValues(t *testing.T) {
	usernames := NewSequence(func(n int) string {
		return fmt.Sprintf("jsmith%d", n)
	})

	assert.Equal(t, []string{"jsmith1", "jsmith2", "jsmith3"}, usernames.Take(3))
	assert.Equal(t, []string{"jsmith4", "jsmith5"}, usernames.Take(2))
}

func TestSequence_TakeContinuesAfterNext(t *testing.T) {
	ids := NewSequence(func(n int) int { return n })

	ids.Next()
	ids.Next()

	assert.Equal(t, []int{3, 4, 5}, ids.Take(3))
	assert.Equal(t, 6, ids.Next())
}

func TestSequence_TakeZeroIsEmpty(t *testing.T) {
	ids := NewSequence(func(n int) int { return n })

	assert.Empty(t, ids.Take(0))
	assert.Equal(t, 1, ids.Next(), "take(0) must not advance the counter")
}

func TestNewSequence_NilProducePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSequence[int](nil)
	})
}
