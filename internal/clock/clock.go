package clock

import "time"

// DefaultTimezone is the zone all event times are interpreted in,
// independent of the server's own zone.
const DefaultTimezone = "America/Los_Angeles"

// Clock supplies "now" and "start of today" as naive local times. Event
// timestamps are stored without a zone, so both values carry their local
// wall-clock fields with a UTC marker to keep comparisons consistent with
// what the database hands back.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type localClock struct {
	loc *time.Location
}

func New(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &localClock{loc: loc}, nil
}

func (c *localClock) Now() time.Time {
	n := time.Now().In(c.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), n.Nanosecond(), time.UTC)
}

func (c *localClock) Today() time.Time {
	n := time.Now().In(c.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// fixedClock pins the clock for tests and one-off sweeps.
type fixedClock struct {
	now time.Time
}

func Fixed(now time.Time) Clock {
	return &fixedClock{now: now}
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Today() time.Time {
	n := c.now
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}
