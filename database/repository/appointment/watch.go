package appointmentRepo

import (
	"context"

	"nutribook/models"
	"nutribook/utils"

	"google.golang.org/api/iterator"

	"go.uber.org/zap"
)

// Watch subscribes to the user's appointment set via a Firestore snapshot
// stream. Every firing re-reads the complete matching result set and pushes it
// downstream; consumers never see diffs.
func (r *FirestoreAppointmentRepo) Watch(ctx context.Context, userID string) (<-chan []models.Appointment, error) {
	logger := utils.GetLogger()
	snaps := r.coll.Where("userId", "==", userID).Snapshots(ctx)

	out := make(chan []models.Appointment, 1)
	go func() {
		defer close(out)
		defer snaps.Stop()

		for {
			qs, err := snaps.Next()
			if err != nil {
				// Context cancellation tears the stream down; anything else is
				// a broken stream and logged before the channel closes.
				if ctx.Err() == nil {
					logger.Error("appointment snapshot stream failed",
						zap.String("userId", userID), zap.Error(err))
				}
				return
			}

			appts := make([]models.Appointment, 0, qs.Size)
			docs := qs.Documents
			for {
				snap, err := docs.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					logger.Error("failed to read appointment snapshot",
						zap.String("userId", userID), zap.Error(err))
					return
				}
				appt, err := decodeAppointment(snap)
				if err != nil {
					logger.Warn("skipping undecodable appointment document",
						zap.String("doc", snap.Ref.ID), zap.Error(err))
					continue
				}
				appts = append(appts, appt)
			}

			select {
			case out <- appts:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
