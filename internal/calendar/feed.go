// Package calendar serializes approved and canceled events into an iCalendar
// feed for external calendar clients.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"community-events/internal/model"

	ics "github.com/arran4/golang-ical"
)

// Title is the feed summary for an event: the bare name when approved, the
// name suffixed with the upper-cased status otherwise, so canceled and
// on-hold entries read distinctly in subscribers' calendars.
func Title(e *model.Event) string {
	if e.Status == model.StatusApproved {
		return e.Name
	}
	return fmt.Sprintf("%s (%s)", e.Name, strings.ToUpper(string(e.Status)))
}

// Feed renders events as a VCALENDAR. Stored times are naive local values;
// loc anchors them to the configured zone before serialization.
func Feed(events []*model.Event, loc *time.Location) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//community-events//EN")

	for _, e := range events {
		entry := cal.AddEvent(e.EventID.String())
		entry.SetSummary(Title(e))
		entry.SetStartAt(localize(e.StartTime, loc))
		entry.SetEndAt(localize(e.EndTime, loc))
		entry.SetDtStampTime(time.Now())
	}
	return cal.Serialize()
}

func localize(naive time.Time, loc *time.Location) time.Time {
	return time.Date(naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), 0, loc)
}
