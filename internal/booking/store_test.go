package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cineseat/booking-gateway/internal/booking"
)

func TestStoreReturnsSameCoordinatorPerUser(t *testing.T) {
	s := booking.NewStore(newFakeAPI())

	a := s.Get("user-1")
	b := s.Get("user-1")
	other := s.Get("user-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
}

func TestStoreRemoveDropsCoordinator(t *testing.T) {
	s := booking.NewStore(newFakeAPI())

	a := s.Get("user-1")
	s.Remove("user-1")
	assert.NotSame(t, a, s.Get("user-1"))
}
