package appointments

import (
	"sort"
	"time"

	"nutribook/models"
)

// ClassifiedView is the derived read-side projection of a user's appointment
// set: two ordered buckets, recomputed in full on every change. It is never
// persisted.
type ClassifiedView struct {
	Upcoming []models.Appointment `json:"upcoming"`
	Past     []models.Appointment `json:"past"`
}

// Classify partitions the appointment set against the given wall-clock
// instant. An appointment is upcoming iff its date is in the future and it has
// not been cancelled; everything else (elapsed dates, cancelled future
// bookings) is past. Upcoming is ordered soonest first, past most recent
// first. Appointments sharing an identical date keep their input order.
func Classify(appts []models.Appointment, now time.Time) ClassifiedView {
	view := ClassifiedView{
		Upcoming: []models.Appointment{},
		Past:     []models.Appointment{},
	}

	for _, appt := range appts {
		if appt.Date.After(now) && !appt.Cancelled() {
			view.Upcoming = append(view.Upcoming, appt)
		} else {
			view.Past = append(view.Past, appt)
		}
	}

	sort.SliceStable(view.Upcoming, func(i, j int) bool {
		return view.Upcoming[i].Date.Before(view.Upcoming[j].Date)
	})
	sort.SliceStable(view.Past, func(i, j int) bool {
		return view.Past[i].Date.After(view.Past[j].Date)
	})

	return view
}
