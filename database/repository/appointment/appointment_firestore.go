package appointmentRepo

import (
	"context"
	"fmt"

	"nutribook/database"
	"nutribook/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const appointmentsCollection = "appointments"

// FirestoreAppointmentRepo implements AppointmentRepository using Firestore.
type FirestoreAppointmentRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreAppointmentRepo creates a new AppointmentRepository backed by
// the "appointments" collection.
func NewFirestoreAppointmentRepo() AppointmentRepository {
	return &FirestoreAppointmentRepo{
		coll: database.FirestoreClient.Collection(appointmentsCollection),
	}
}

func (r *FirestoreAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	// Doc(id).Create fails if the document already exists, which keeps
	// appointment ids immutable once assigned.
	if _, err := r.coll.Doc(appt.ID).Create(ctx, appt); err != nil {
		return fmt.Errorf("failed to create appointment %s: %w", appt.ID, err)
	}
	return nil
}

func (r *FirestoreAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	snap, err := r.coll.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	appt, err := decodeAppointment(snap)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *FirestoreAppointmentRepo) ListByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	iter := r.coll.Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var appts []models.Appointment
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list appointments for user %s: %w", userID, err)
		}
		appt, err := decodeAppointment(snap)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	return appts, nil
}

func (r *FirestoreAppointmentRepo) SetStatus(ctx context.Context, id string, st models.AppointmentStatus) error {
	// Partial update: only the status field is rewritten.
	_, err := r.coll.Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(st)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update status of appointment %s: %w", id, err)
	}
	return nil
}

func decodeAppointment(snap *firestore.DocumentSnapshot) (models.Appointment, error) {
	var appt models.Appointment
	if err := snap.DataTo(&appt); err != nil {
		return appt, fmt.Errorf("failed to decode appointment %s: %w", snap.Ref.ID, err)
	}
	if appt.ID == "" {
		appt.ID = snap.Ref.ID
	}
	return appt, nil
}
