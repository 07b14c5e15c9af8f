// Package icron answers "when does this schedule fire" questions that
// the cron runner itself does not expose.
package icron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// TriggerInfo describes the previous and next fire times of a schedule
// relative to some reference time.
type TriggerInfo struct {
	Next       time.Time
	Last       time.Time
	Expression string

	TimeSinceLast time.Duration
	TimeUntilNext time.Duration
}

// parser accepts the standard five-field form plus an optional seconds
// field and descriptors like @hourly, matching what cron.New schedules.
var parser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour |
	cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// GetTriggerInfo resolves the previous and next fire times of cronExpr
// relative to refTime.
func GetTriggerInfo(cronExpr string, refTime time.Time) (*TriggerInfo, error) {
	schedule, err := parser.Parse(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}

	info := &TriggerInfo{
		Expression: cronExpr,
		Next:       schedule.Next(refTime),
		Last:       lastTrigger(schedule, refTime),
	}

	if !info.Last.IsZero() {
		info.TimeSinceLast = refTime.Sub(info.Last)
	}
	info.TimeUntilNext = info.Next.Sub(refTime)

	return info, nil
}

// lookbacks are tried smallest first so frequent schedules only scan a
// short window of fires.
var lookbacks = []time.Duration{
	time.Hour,
	24 * time.Hour,
	366 * 24 * time.Hour,
}

// lastTrigger finds the most recent fire time at or before refTime. Cron
// schedules only look forward, so scan forward from a point in the past
// and keep the last fire that does not pass refTime.
func lastTrigger(schedule cron.Schedule, refTime time.Time) time.Time {
	for _, lookback := range lookbacks {
		t := schedule.Next(refTime.Add(-lookback))
		if t.IsZero() || t.After(refTime) {
			continue
		}

		var last time.Time
		for !t.IsZero() && !t.After(refTime) {
			last = t
			t = schedule.Next(t)
		}
		return last
	}
	return time.Time{}
}
