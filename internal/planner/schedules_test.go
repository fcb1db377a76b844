package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

func TestAddScheduleThenLoad(t *testing.T) {
	f := newFixture(t)

	outcome, err := f.svc.AddSchedule(f.code, types.Schedule{
		ID: "sc1", Title: "Meeting", Date: "2024-05-01", Category: "업무", CreatedAt: t0,
	})
	require.NoError(t, err)
	assert.Equal(t, types.Applied, outcome)

	doc := f.doc(t)
	require.Len(t, doc.Schedules, 1)
	assert.Equal(t, types.Schedule{
		ID: "sc1", Title: "Meeting", Date: "2024-05-01", Category: "업무", CreatedAt: t0,
	}, doc.Schedules[0])
}

func TestAddScheduleCategoryFallback(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddSchedule(f.code, types.Schedule{ID: "sc1", Title: "Gym", Date: "2024-05-01", Category: "운동"})
	require.NoError(t, err)

	sc := f.doc(t).Schedules[0]
	assert.Equal(t, "개인", sc.Category, "non-member falls back to the first category")
	assert.Equal(t, t1.Truncate(1e6), sc.CreatedAt, "zero CreatedAt is stamped at millisecond precision")
}

func TestAddScheduleValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		sc      types.Schedule
		wantErr error
	}{
		{"missing id", types.Schedule{Title: "x", Date: "2024-05-01"}, types.ErrInvalidID},
		{"missing title", types.Schedule{ID: "s", Date: "2024-05-01"}, types.ErrInvalidTitle},
		{"bad date", types.Schedule{ID: "s", Title: "x", Date: "01/05/2024"}, types.ErrInvalidDate},
		{"bad time", types.Schedule{ID: "s", Title: "x", Date: "2024-05-01", EndTime: "9pm"}, types.ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.AddSchedule(f.code, tt.sc)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, f.doc(t).Schedules)
}

func TestAddScheduleDuplicateID(t *testing.T) {
	f := newFixture(t)
	sc := types.Schedule{ID: "sc1", Title: "Meeting", Date: "2024-05-01"}

	_, err := f.svc.AddSchedule(f.code, sc)
	require.NoError(t, err)
	_, err = f.svc.AddSchedule(f.code, sc)
	assert.ErrorIs(t, err, types.ErrDuplicateID)
	assert.Len(t, f.doc(t).Schedules, 1)
}

func TestUpdateScheduleIsolation(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"sc1", "sc2"} {
		_, err := f.svc.AddSchedule(f.code, types.Schedule{
			ID: id, Title: "Meeting " + id, Date: "2024-05-01", StartTime: "10:00",
			Category: "업무", Emoji: "📅", CreatedAt: t0,
		})
		require.NoError(t, err)
	}
	before := f.doc(t)

	outcome, err := f.svc.UpdateSchedule(f.code, "sc1", types.SchedulePatch{Title: types.Ptr("Standup")})
	require.NoError(t, err)
	assert.Equal(t, types.Applied, outcome)

	after := f.doc(t)
	want := before.Clone()
	want.Schedules[0].Title = "Standup"
	assert.Equal(t, want, after, "only the patched field changes; no timestamp is stamped")
}

func TestUpdateScheduleCategoryIsResolved(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AddSchedule(f.code, types.Schedule{ID: "sc1", Title: "x", Date: "2024-05-01", Category: "업무"})
	require.NoError(t, err)

	_, err = f.svc.UpdateSchedule(f.code, "sc1", types.SchedulePatch{Category: types.Ptr("unknown")})
	require.NoError(t, err)
	assert.Equal(t, "개인", f.doc(t).Schedules[0].Category)
}

func TestUpdateScheduleMissingIsNoop(t *testing.T) {
	f := newFixture(t)
	before := f.doc(t)

	outcome, err := f.svc.UpdateSchedule(f.code, "ghost", types.SchedulePatch{Title: types.Ptr("x")})
	require.NoError(t, err)
	assert.Equal(t, types.NotFound, outcome)
	assert.Equal(t, before, f.doc(t))
}

func TestUpdateScheduleRejectsInvalidPatch(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.UpdateSchedule(f.code, "sc1", types.SchedulePatch{Date: types.Ptr("tomorrow")})
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}

func TestDeleteScheduleIdempotent(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"sc1", "sc2"} {
		_, err := f.svc.AddSchedule(f.code, types.Schedule{ID: id, Title: "x", Date: "2024-05-01", CreatedAt: t0})
		require.NoError(t, err)
	}

	outcome, err := f.svc.DeleteSchedule(f.code, "sc1")
	require.NoError(t, err)
	assert.Equal(t, types.Applied, outcome)
	once := f.doc(t)

	outcome, err = f.svc.DeleteSchedule(f.code, "sc1")
	require.NoError(t, err)
	assert.Equal(t, types.NotFound, outcome)
	assert.Equal(t, once, f.doc(t))

	require.Len(t, once.Schedules, 1)
	assert.Equal(t, "sc2", once.Schedules[0].ID)
}

func TestSchedulesOn(t *testing.T) {
	f := newFixture(t)
	for _, sc := range []types.Schedule{
		{ID: "a", Title: "x", Date: "2024-05-01"},
		{ID: "b", Title: "y", Date: "2024-05-02"},
		{ID: "c", Title: "z", Date: "2024-05-01"},
	} {
		_, err := f.svc.AddSchedule(f.code, sc)
		require.NoError(t, err)
	}

	got, ok := f.svc.SchedulesOn(f.code, "2024-05-01")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	_, ok = f.svc.SchedulesOn("nope", "2024-05-01")
	assert.False(t, ok)
}
