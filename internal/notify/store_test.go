package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAlerter struct {
	alerts []Notification
}

func (a *recordingAlerter) Alert(n Notification) {
	a.alerts = append(a.alerts, n)
}

func TestStore_Add(t *testing.T) {
	s := NewStore(nil)

	first := s.Add(TypeOrder, "New Order", "order from Sara", map[string]string{"orderId": "ord-1"})
	second := s.Add(TypeReservation, "New Reservation", "reservation from Omar", nil)

	t.Run("Assigns id, timestamp and unseen flag", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(first.ID, "notification_"))
		assert.False(t, first.Seen)
		assert.False(t, first.CreatedAt.IsZero())
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Most recent first", func(t *testing.T) {
		items := s.Notifications()
		require.Len(t, items, 2)
		assert.Equal(t, second.ID, items[0].ID)
		assert.Equal(t, first.ID, items[1].ID)
	})

	assert.Equal(t, 2, s.UnseenCount())
}

func TestStore_AlerterFires(t *testing.T) {
	alerter := &recordingAlerter{}
	s := NewStore(alerter)

	n := s.Add(TypeOrder, "New Order", "msg", nil)

	require.Len(t, alerter.alerts, 1)
	assert.Equal(t, n.ID, alerter.alerts[0].ID)
}

func TestStore_MarkSeen(t *testing.T) {
	s := NewStore(nil)
	a := s.Add(TypeOrder, "a", "a", nil)
	s.Add(TypeOrder, "b", "b", nil)

	s.MarkSeen(a.ID)

	assert.Equal(t, 1, s.UnseenCount())
	for _, n := range s.Notifications() {
		if n.ID == a.ID {
			assert.True(t, n.Seen)
		} else {
			assert.False(t, n.Seen)
		}
	}

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		s.MarkSeen("notification_0_nope")
		assert.Equal(t, 1, s.UnseenCount())
	})
}

func TestStore_MarkAllSeen(t *testing.T) {
	s := NewStore(nil)
	s.Add(TypeOrder, "a", "a", nil)
	s.Add(TypeReservation, "b", "b", nil)

	s.MarkAllSeen()

	assert.Equal(t, 0, s.UnseenCount())
	for _, n := range s.Notifications() {
		assert.True(t, n.Seen)
	}
}

func TestStore_ClearAll(t *testing.T) {
	s := NewStore(nil)
	s.Add(TypeOrder, "a", "a", nil)
	s.Add(TypeReservation, "b", "b", nil)

	s.ClearAll()

	assert.Empty(t, s.Notifications())
	assert.Equal(t, 0, s.UnseenCount())
}

func TestStore_NotificationsReturnsCopy(t *testing.T) {
	s := NewStore(nil)
	s.Add(TypeOrder, "a", "a", nil)

	items := s.Notifications()
	items[0].Seen = true

	assert.Equal(t, 1, s.UnseenCount())
}
