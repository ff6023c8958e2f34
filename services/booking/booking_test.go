package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	appointmentRepo "nutribook/database/repository/appointment"
	"nutribook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockApptRepo records Create calls and returns a configurable error.
type mockApptRepo struct {
	createCalls int
	createErr   error
	created     *models.Appointment
}

func (m *mockApptRepo) Create(_ context.Context, appt *models.Appointment) error {
	m.createCalls++
	m.created = appt
	return m.createErr
}

func (m *mockApptRepo) GetByID(context.Context, string) (*models.Appointment, error) {
	return nil, appointmentRepo.ErrNotFound
}

func (m *mockApptRepo) ListByUser(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}

func (m *mockApptRepo) SetStatus(context.Context, string, models.AppointmentStatus) error {
	return nil
}

func (m *mockApptRepo) Watch(context.Context, string) (<-chan []models.Appointment, error) {
	return nil, nil
}

type mockScheduler struct {
	calls []models.Appointment
	err   error
}

func (m *mockScheduler) ScheduleAppointmentReminder(appt models.Appointment) error {
	m.calls = append(m.calls, appt)
	return m.err
}

// fixedNow is a Monday; "5" (Rohith) is available Mondays at 80/hour but
// never on Tuesdays.
var fixedNow = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func newService(repo *mockApptRepo, sched *mockScheduler) *DefaultBookingService {
	svc := &DefaultBookingService{
		Repo: repo,
		Now:  func() time.Time { return fixedNow },
	}
	if sched != nil {
		svc.Reminders = sched
	}
	return svc
}

func validRequest() models.BookingRequest {
	// The following Monday, a week out.
	return models.BookingRequest{
		NutritionistID: "5",
		Date:           time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC),
		TimeSlot:       "10:00 AM",
	}
}

func TestBookAppointment_Validation(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		mutate  func(*models.BookingRequest)
		wantErr error
	}{
		{
			name:    "missing identity",
			userID:  "",
			mutate:  func(*models.BookingRequest) {},
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "missing date",
			userID:  "user-1",
			mutate:  func(r *models.BookingRequest) { r.Date = time.Time{} },
			wantErr: ErrIncompleteRequest,
		},
		{
			name:    "missing time slot",
			userID:  "user-1",
			mutate:  func(r *models.BookingRequest) { r.TimeSlot = "" },
			wantErr: ErrIncompleteRequest,
		},
		{
			name:   "date in the past",
			userID: "user-1",
			mutate: func(r *models.BookingRequest) {
				r.Date = fixedNow.Add(-24 * time.Hour)
			},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "unknown nutritionist",
			userID:  "user-1",
			mutate:  func(r *models.BookingRequest) { r.NutritionistID = "999" },
			wantErr: ErrUnknownNutritionist,
		},
		{
			name:   "day not in availability",
			userID: "user-1",
			mutate: func(r *models.BookingRequest) {
				// The following Tuesday; Rohith takes no Tuesday bookings.
				r.Date = time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
			},
			wantErr: ErrUnavailableDay,
		},
		{
			name:    "time slot not offered",
			userID:  "user-1",
			mutate:  func(r *models.BookingRequest) { r.TimeSlot = "10:30 AM" },
			wantErr: ErrInvalidTimeSlot,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockApptRepo{}
			svc := newService(repo, nil)

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.BookAppointment(context.Background(), tc.userID, req)
			require.ErrorIs(t, err, tc.wantErr)

			// Validation failures are local; the store must not be touched.
			assert.Equal(t, 0, repo.createCalls)
		})
	}
}

func TestBookAppointment_Success(t *testing.T) {
	repo := &mockApptRepo{}
	sched := &mockScheduler{}
	svc := newService(repo, sched)

	appt, err := svc.BookAppointment(context.Background(), "user-1", validRequest())
	require.NoError(t, err)
	require.NotNil(t, appt)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "user-1", appt.UserID)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, "5", appt.NutritionistID)

	// Name and price are snapshotted from the catalog at booking time.
	assert.Equal(t, "Rohith", appt.NutritionistName)
	assert.Equal(t, 80.0, appt.PricePerHour)

	assert.Equal(t, 1, repo.createCalls)
	require.Len(t, sched.calls, 1)
	assert.Equal(t, appt.ID, sched.calls[0].ID)
}

func TestBookAppointment_PersistenceFailure(t *testing.T) {
	repo := &mockApptRepo{createErr: errors.New("firestore unavailable")}
	svc := newService(repo, nil)

	_, err := svc.BookAppointment(context.Background(), "user-1", validRequest())
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 1, repo.createCalls)
}

func TestBookAppointment_ReminderFailureDoesNotFailBooking(t *testing.T) {
	repo := &mockApptRepo{}
	sched := &mockScheduler{err: errors.New("queue down")}
	svc := newService(repo, sched)

	appt, err := svc.BookAppointment(context.Background(), "user-1", validRequest())
	require.NoError(t, err)
	assert.NotNil(t, appt)
}
