package model_test

import (
	"strconv"
	"testing"
	"time"

	"community-events/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(size string) *model.Event {
	return &model.Event{
		Name:          "Test Event",
		Member:        "jane.doe",
		StartTime:     time.Date(2026, 9, 20, 18, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 20, 21, 0, 0, 0, time.UTC),
		Status:        model.StatusPending,
		Staff:         []string{},
		EstimatedSize: size,
	}
}

func TestStaffNeeded(t *testing.T) {
	t.Run("floor of size over guests-per-staff", func(t *testing.T) {
		cases := map[string]int{
			"0":   0,
			"10":  0,
			"24":  0,
			"25":  1,
			"49":  1,
			"50":  2,
			"120": 4,
		}
		for size, want := range cases {
			assert.Equal(t, want, newEvent(size).StaffNeeded(), "size %s", size)
		}
	})

	t.Run("monotonically non-decreasing", func(t *testing.T) {
		prev := 0
		for size := 0; size <= 500; size += 5 {
			e := newEvent(strconv.Itoa(size))
			needed := e.StaffNeeded()
			assert.GreaterOrEqual(t, needed, prev)
			prev = needed
		}
	})

	t.Run("fallback for corrupted size", func(t *testing.T) {
		for _, size := range []string{"", "lots", "12a", "-5", "1.5"} {
			assert.Equal(t, model.FallbackStaffNeeded, newEvent(size).StaffNeeded(), "size %q", size)
		}
	})
}

func TestApprove(t *testing.T) {
	t.Run("staffed event becomes approved with expiration cleared", func(t *testing.T) {
		e := newEvent("50")
		expires := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		e.Expired = &expires
		e.Staff = []string{"alice", "bob"}

		e.Approve()

		assert.Equal(t, model.StatusApproved, e.Status)
		assert.Nil(t, e.Expired)
	})

	t.Run("understaffed event keeps its expiration timer", func(t *testing.T) {
		e := newEvent("50")
		expires := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		e.Expired = &expires
		e.Staff = []string{"alice"}

		e.Approve()

		assert.Equal(t, model.StatusUnderstaffed, e.Status)
		require.NotNil(t, e.Expired)
		assert.Equal(t, expires, *e.Expired)
	})

	t.Run("example scenario from the workflow", func(t *testing.T) {
		e := newEvent("50")
		assert.Equal(t, 2, e.StaffNeeded())

		e.Approve()
		assert.Equal(t, model.StatusUnderstaffed, e.Status)

		e.AddStaff("alice")
		assert.False(t, e.IsStaffed())
		assert.Equal(t, model.StatusUnderstaffed, e.Status)

		e.AddStaff("bob")
		assert.True(t, e.IsStaffed())
		assert.Equal(t, model.StatusApproved, e.Status)
	})
}

func TestCancel(t *testing.T) {
	statuses := []model.EventStatus{
		model.StatusPending, model.StatusUnderstaffed, model.StatusApproved,
		model.StatusCanceled, model.StatusOnHold, model.StatusExpired,
	}
	for _, status := range statuses {
		e := newEvent("50")
		e.Status = status
		e.Cancel()
		assert.Equal(t, model.StatusCanceled, e.Status, "from %s", status)
	}
}

func TestDeleteUndelete(t *testing.T) {
	t.Run("undelete restores the pre-delete status", func(t *testing.T) {
		e := newEvent("50")
		e.Status = model.StatusApproved

		e.Delete()
		assert.Equal(t, model.StatusDeleted, e.Status)

		e.Undelete()
		assert.Equal(t, model.StatusApproved, e.Status)
		assert.Nil(t, e.PrevStatus)
	})

	t.Run("undelete without a recorded prior status falls back to pending", func(t *testing.T) {
		e := newEvent("50")
		e.Status = model.StatusDeleted
		e.PrevStatus = nil

		e.Undelete()
		assert.Equal(t, model.StatusPending, e.Status)
	})

	t.Run("undelete is a no-op on a live event", func(t *testing.T) {
		e := newEvent("50")
		e.Status = model.StatusApproved

		e.Undelete()
		assert.Equal(t, model.StatusApproved, e.Status)
	})

	t.Run("delete is a no-op on an already deleted event", func(t *testing.T) {
		e := newEvent("50")
		e.Status = model.StatusApproved
		e.Delete()
		e.Delete()

		e.Undelete()
		assert.Equal(t, model.StatusApproved, e.Status)
	})
}

func TestExpire(t *testing.T) {
	e := newEvent("50")
	now := time.Date(2026, 9, 10, 7, 0, 0, 0, time.UTC)
	e.Expire(now)

	assert.Equal(t, model.StatusExpired, e.Status)
	require.NotNil(t, e.Expired)
	assert.Equal(t, now, *e.Expired)
}

func TestAddRemoveStaff(t *testing.T) {
	t.Run("duplicate signup is a no-op", func(t *testing.T) {
		e := newEvent("50")
		require.True(t, e.AddStaff("alice"))
		assert.False(t, e.AddStaff("alice"))
		assert.Equal(t, []string{"alice"}, e.Staff)
	})

	t.Run("crossing the threshold promotes understaffed to approved", func(t *testing.T) {
		e := newEvent("50")
		e.Status = model.StatusUnderstaffed
		e.AddStaff("alice")
		assert.Equal(t, model.StatusUnderstaffed, e.Status)
		e.AddStaff("bob")
		assert.Equal(t, model.StatusApproved, e.Status)
	})

	t.Run("promotion clears the expiration timer like approve does", func(t *testing.T) {
		e := newEvent("50")
		e.Status = model.StatusUnderstaffed
		expires := time.Date(2026, 9, 25, 12, 0, 0, 0, time.UTC)
		e.Expired = &expires
		e.Staff = []string{"alice"}

		e.AddStaff("bob")
		assert.Equal(t, model.StatusApproved, e.Status)
		assert.Nil(t, e.Expired)
	})

	t.Run("dropping below the threshold demotes approved to understaffed", func(t *testing.T) {
		e := newEvent("50")
		e.Status = model.StatusApproved
		e.Staff = []string{"alice", "bob"}

		require.True(t, e.RemoveStaff("bob"))
		assert.Equal(t, model.StatusUnderstaffed, e.Status)
	})

	t.Run("add then remove restores the original status at the boundary", func(t *testing.T) {
		e := newEvent("50")
		e.Status = model.StatusUnderstaffed
		e.Staff = []string{"alice"}

		e.AddStaff("bob")
		require.Equal(t, model.StatusApproved, e.Status)
		e.RemoveStaff("bob")
		assert.Equal(t, model.StatusUnderstaffed, e.Status)
	})

	t.Run("removing an unknown member is a no-op", func(t *testing.T) {
		e := newEvent("50")
		e.Staff = []string{"alice"}
		assert.False(t, e.RemoveStaff("mallory"))
		assert.Equal(t, []string{"alice"}, e.Staff)
	})
}

func TestDerivedPredicates(t *testing.T) {
	t.Run("team sign-off is independent of current staffing", func(t *testing.T) {
		for _, status := range []model.EventStatus{
			model.StatusUnderstaffed, model.StatusApproved, model.StatusCanceled,
		} {
			e := newEvent("50")
			e.Status = status
			assert.True(t, e.IsApproved(), "status %s", status)
		}
		for _, status := range []model.EventStatus{
			model.StatusPending, model.StatusOnHold, model.StatusExpired, model.StatusDeleted,
		} {
			e := newEvent("50")
			e.Status = status
			assert.False(t, e.IsApproved(), "status %s", status)
		}
	})

	t.Run("is past compares against start of today", func(t *testing.T) {
		today := time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC)
		e := newEvent("50")
		assert.True(t, e.IsPast(today))
		assert.False(t, e.IsPast(time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)))
	})
}
