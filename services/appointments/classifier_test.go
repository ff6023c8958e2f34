package appointments

import (
	"testing"
	"time"

	"nutribook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classifyNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

func appt(id string, date time.Time, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		ID:     id,
		UserID: "user-1",
		Date:   date,
		Status: status,
	}
}

func ids(appts []models.Appointment) []string {
	out := make([]string, len(appts))
	for i, a := range appts {
		out[i] = a.ID
	}
	return out
}

func TestClassify_PartitionRules(t *testing.T) {
	tests := []struct {
		name         string
		appt         models.Appointment
		wantUpcoming bool
	}{
		{
			name:         "future scheduled is upcoming",
			appt:         appt("a", classifyNow.Add(24*time.Hour), models.StatusScheduled),
			wantUpcoming: true,
		},
		{
			name:         "elapsed scheduled is past",
			appt:         appt("a", classifyNow.Add(-24*time.Hour), models.StatusScheduled),
			wantUpcoming: false,
		},
		{
			name:         "cancelled future is past",
			appt:         appt("a", classifyNow.Add(24*time.Hour), models.StatusCancelled),
			wantUpcoming: false,
		},
		{
			name:         "cancelled elapsed is past",
			appt:         appt("a", classifyNow.Add(-24*time.Hour), models.StatusCancelled),
			wantUpcoming: false,
		},
		{
			name:         "date exactly now is past",
			appt:         appt("a", classifyNow, models.StatusScheduled),
			wantUpcoming: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			view := Classify([]models.Appointment{tc.appt}, classifyNow)
			if tc.wantUpcoming {
				assert.Len(t, view.Upcoming, 1)
				assert.Empty(t, view.Past)
			} else {
				assert.Empty(t, view.Upcoming)
				assert.Len(t, view.Past, 1)
			}
		})
	}
}

func TestClassify_ExhaustiveAndDisjoint(t *testing.T) {
	appts := []models.Appointment{
		appt("a", classifyNow.Add(48*time.Hour), models.StatusScheduled),
		appt("b", classifyNow.Add(-48*time.Hour), models.StatusScheduled),
		appt("c", classifyNow.Add(24*time.Hour), models.StatusCancelled),
		appt("d", classifyNow.Add(72*time.Hour), models.StatusScheduled),
		appt("e", classifyNow.Add(-24*time.Hour), models.StatusCancelled),
	}

	view := Classify(appts, classifyNow)

	seen := map[string]int{}
	for _, a := range view.Upcoming {
		seen[a.ID]++
	}
	for _, a := range view.Past {
		seen[a.ID]++
	}
	require.Len(t, seen, len(appts))
	for id, count := range seen {
		assert.Equal(t, 1, count, "appointment %s must appear in exactly one bucket", id)
	}
}

func TestClassify_Ordering(t *testing.T) {
	appts := []models.Appointment{
		appt("far", classifyNow.Add(96*time.Hour), models.StatusScheduled),
		appt("soon", classifyNow.Add(2*time.Hour), models.StatusScheduled),
		appt("mid", classifyNow.Add(48*time.Hour), models.StatusScheduled),
		appt("old", classifyNow.Add(-96*time.Hour), models.StatusScheduled),
		appt("recent", classifyNow.Add(-2*time.Hour), models.StatusScheduled),
	}

	view := Classify(appts, classifyNow)

	// Upcoming soonest first, past most recent first.
	assert.Equal(t, []string{"soon", "mid", "far"}, ids(view.Upcoming))
	assert.Equal(t, []string{"recent", "old"}, ids(view.Past))
}

func TestClassify_EqualDatesKeepFeedOrder(t *testing.T) {
	sameDate := classifyNow.Add(24 * time.Hour)
	appts := []models.Appointment{
		appt("first", sameDate, models.StatusScheduled),
		appt("second", sameDate, models.StatusScheduled),
		appt("third", sameDate, models.StatusScheduled),
	}

	view := Classify(appts, classifyNow)
	assert.Equal(t, []string{"first", "second", "third"}, ids(view.Upcoming))
}

func TestClassify_CancellationMovesFutureToPast(t *testing.T) {
	future := classifyNow.Add(24 * time.Hour)

	before := Classify([]models.Appointment{appt("a", future, models.StatusScheduled)}, classifyNow)
	require.Equal(t, []string{"a"}, ids(before.Upcoming))

	after := Classify([]models.Appointment{appt("a", future, models.StatusCancelled)}, classifyNow)
	assert.Empty(t, after.Upcoming)
	assert.Equal(t, []string{"a"}, ids(after.Past))
}

func TestClassify_EmptyInput(t *testing.T) {
	view := Classify(nil, classifyNow)
	assert.NotNil(t, view.Upcoming)
	assert.NotNil(t, view.Past)
	assert.Empty(t, view.Upcoming)
	assert.Empty(t, view.Past)
}
