package appointments

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "nutribook/database/repository/appointment"
	"nutribook/models"
	"nutribook/utils"

	"go.uber.org/zap"
)

// DefaultAppointmentService implements AppointmentService on top of the
// appointment repository's live snapshot stream.
type DefaultAppointmentService struct {
	Repo appointmentRepo.AppointmentRepository

	// TickInterval drives periodic re-evaluation so an appointment whose date
	// elapses without any store write still migrates from upcoming to past.
	// Zero means the 30s default.
	TickInterval time.Duration

	Now func() time.Time // overridable in tests; defaults to time.Now
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAppointmentService) tick() time.Duration {
	if s.TickInterval > 0 {
		return s.TickInterval
	}
	return 30 * time.Second
}

// ListAppointments re-materializes and classifies the user's full appointment
// set once.
func (s *DefaultAppointmentService) ListAppointments(ctx context.Context, userID string) (ClassifiedView, error) {
	appts, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return ClassifiedView{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return Classify(appts, s.now()), nil
}

// WatchAppointments subscribes to the user's appointment set and republishes
// a classified view on every snapshot and on every tick. Classification is
// side-effect-free on stored data; `now` is evaluated fresh each time.
func (s *DefaultAppointmentService) WatchAppointments(ctx context.Context, userID string) (<-chan ClassifiedView, func(), error) {
	logger := utils.GetLogger()

	watchCtx, cancel := context.WithCancel(ctx)
	updates, err := s.Repo.Watch(watchCtx, userID)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	out := make(chan ClassifiedView, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(s.tick())
		defer ticker.Stop()

		var current []models.Appointment
		seeded := false

		for {
			select {
			case appts, ok := <-updates:
				if !ok {
					return
				}
				current = appts
				seeded = true
			case <-ticker.C:
				// Re-classify against a fresh wall clock even without a store
				// event; skip until the initial snapshot has arrived.
				if !seeded {
					continue
				}
			case <-watchCtx.Done():
				return
			}

			select {
			case out <- Classify(current, s.now()):
			case <-watchCtx.Done():
				return
			}
		}
	}()

	logger.Debug("appointment watch started", zap.String("userId", userID))
	return out, cancel, nil
}
