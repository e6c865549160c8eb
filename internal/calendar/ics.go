// Package calendar renders reminders as an iCalendar feed.
package calendar

import (
	"fmt"
	"time"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const productID = "-//aevon-lab//remindex//EN"

// uidNamespace scopes the deterministic VEVENT UIDs.
var uidNamespace = uuid.MustParse("6f1c1f3e-8a51-4f57-9d8c-3a4b5f0e2c71")

const (
	statusCompleted   = "COMPLETED"
	statusNeedsAction = "NEEDS-ACTION"
)

// Export renders events as all-day VEVENTs in a single VCALENDAR. Positions
// are 1-based and feed into the UID, so the same record at the same position
// keeps its UID across exports.
func Export(events []*v1.Event, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	stamp := now.UTC()
	for i, evt := range events {
		ve := cal.AddEvent(EventUID(i+1, evt))
		ve.SetDtStampTime(stamp)
		ve.SetSummary(evt.Title())
		if evt.Description() != "" {
			ve.SetDescription(evt.Description())
		}
		ve.SetAllDayStartAt(evt.Date())
		ve.SetAllDayEndAt(evt.Date().AddDate(0, 0, 1))
		ve.SetProperty(ics.ComponentPropertyStatus, status(evt))
	}

	return cal.Serialize()
}

// EventUID derives a stable UID from the position, title and date.
func EventUID(pos int, evt *v1.Event) string {
	name := fmt.Sprintf("%d|%s|%s", pos, evt.Title(), evt.Date().Format(v1.DateLayout))
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@remindex"
}

func status(evt *v1.Event) string {
	if evt.Completed() {
		return statusCompleted
	}
	return statusNeedsAction
}
