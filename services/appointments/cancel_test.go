package appointments

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

// mockApptRepo serves appointments from an in-memory map and records status
// updates.
type mockApptRepo struct {
	appts        map[string]models.Appointment
	getErr       error
	setStatusErr error
	statusCalls  []string
	watchCh      chan []models.Appointment
}

func (m *mockApptRepo) Create(_ context.Context, appt *models.Appointment) error {
	m.appts[appt.ID] = *appt
	return nil
}

func (m *mockApptRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	appt, ok := m.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	return &appt, nil
}

func (m *mockApptRepo) ListByUser(_ context.Context, userID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApptRepo) SetStatus(_ context.Context, id string, status models.AppointmentStatus) error {
	m.statusCalls = append(m.statusCalls, id)
	if m.setStatusErr != nil {
		return m.setStatusErr
	}
	appt, ok := m.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	appt.Status = status
	m.appts[id] = appt
	return nil
}

func (m *mockApptRepo) Watch(ctx context.Context, _ string) (<-chan []models.Appointment, error) {
	out := make(chan []models.Appointment)
	go func() {
		defer close(out)
		for {
			select {
			case appts, ok := <-m.watchCh:
				if !ok {
					return
				}
				select {
				case out <- appts:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func newMockRepo(appts ...models.Appointment) *mockApptRepo {
	repo := &mockApptRepo{
		appts:   make(map[string]models.Appointment),
		watchCh: make(chan []models.Appointment, 4),
	}
	for _, a := range appts {
		repo.appts[a.ID] = a
	}
	return repo
}

func TestCancelAppointment_MarksCancelled(t *testing.T) {
	repo := newMockRepo(models.Appointment{
		ID:     "appt-1",
		UserID: "user-1",
		Date:   time.Now().Add(24 * time.Hour),
		Status: models.StatusScheduled,
	})
	svc := &DefaultAppointmentService{Repo: repo}

	err := svc.CancelAppointment(context.Background(), "user-1", "appt-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"appt-1"}, repo.statusCalls)
	assert.Equal(t, models.StatusCancelled, repo.appts["appt-1"].Status)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := newMockRepo()
	svc := &DefaultAppointmentService{Repo: repo}

	err := svc.CancelAppointment(context.Background(), "user-1", "missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.statusCalls)
}

func TestCancelAppointment_OtherUsersAppointmentIsNotFound(t *testing.T) {
	repo := newMockRepo(models.Appointment{
		ID:     "appt-1",
		UserID: "someone-else",
		Status: models.StatusScheduled,
	})
	svc := &DefaultAppointmentService{Repo: repo}

	err := svc.CancelAppointment(context.Background(), "user-1", "appt-1")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.statusCalls)
}

func TestCancelAppointment_AlreadyCancelled(t *testing.T) {
	repo := newMockRepo(models.Appointment{
		ID:     "appt-1",
		UserID: "user-1",
		Status: models.StatusCancelled,
	})
	svc := &DefaultAppointmentService{Repo: repo}

	err := svc.CancelAppointment(context.Background(), "user-1", "appt-1")
	require.ErrorIs(t, err, ErrAlreadyCancelled)

	// Cancellation is terminal; no second write happens.
	assert.Empty(t, repo.statusCalls)
	assert.Equal(t, models.StatusCancelled, repo.appts["appt-1"].Status)
}

func TestCancelAppointment_PersistenceFailure(t *testing.T) {
	repo := newMockRepo(models.Appointment{
		ID:     "appt-1",
		UserID: "user-1",
		Status: models.StatusScheduled,
	})
	repo.setStatusErr = errors.New("firestore unavailable")
	svc := &DefaultAppointmentService{Repo: repo}

	err := svc.CancelAppointment(context.Background(), "user-1", "appt-1")
	require.ErrorIs(t, err, ErrPersistence)
}
