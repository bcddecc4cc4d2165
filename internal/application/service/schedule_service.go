package service

import (
	"time"

	"github.com/dillkhus/cafe-pos/internal/config"
	"github.com/dillkhus/cafe-pos/internal/domain/enum"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
)

// ScheduleService decides which serving window, if any, is active for a
// given wall-clock moment in the cafe's timezone.
type ScheduleService struct {
	location     *time.Location
	dayStart     int
	dayEnd       int
	eveningStart int
	eveningEnd   int
	nowFn        func() time.Time
}

// NewScheduleService parses the configured operating hours and timezone.
// Any malformed value is a config load error; callers should treat it as
// fatal, since no session is possible without valid hours.
func NewScheduleService(cfg *config.HoursConfig) (*ScheduleService, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, apperror.NewConfigLoadError("unknown timezone "+cfg.Timezone, err)
	}

	s := &ScheduleService{location: loc, nowFn: time.Now}
	for _, bound := range []struct {
		value string
		dst   *int
	}{
		{cfg.DayStart, &s.dayStart},
		{cfg.DayEnd, &s.dayEnd},
		{cfg.EveningStart, &s.eveningStart},
		{cfg.EveningEnd, &s.eveningEnd},
	} {
		sec, err := parseTimeOfDay(bound.value)
		if err != nil {
			return nil, apperror.NewConfigLoadError("invalid operating hour "+bound.value, err)
		}
		*bound.dst = sec
	}
	return s, nil
}

// parseTimeOfDay converts an HH:MM:SS string into seconds since midnight.
func parseTimeOfDay(value string) (int, error) {
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}

// Now returns the current moment in the cafe's timezone.
func (s *ScheduleService) Now() time.Time {
	return s.nowFn().In(s.location)
}

// WindowAt returns the serving window active at the given moment. Both
// window boundaries are inclusive, matching the historical behavior.
func (s *ScheduleService) WindowAt(t time.Time) enum.ServiceWindow {
	local := t.In(s.location)
	sec := local.Hour()*3600 + local.Minute()*60 + local.Second()
	switch {
	case sec >= s.dayStart && sec <= s.dayEnd:
		return enum.WindowDay
	case sec >= s.eveningStart && sec <= s.eveningEnd:
		return enum.WindowEvening
	default:
		return enum.WindowClosed
	}
}

// CurrentWindow returns the serving window active right now.
func (s *ScheduleService) CurrentWindow() enum.ServiceWindow {
	return s.WindowAt(s.Now())
}

// Hours describes the configured serving windows for status responses.
type Hours struct {
	DayStart     string `json:"day_start"`
	DayEnd       string `json:"day_end"`
	EveningStart string `json:"evening_start"`
	EveningEnd   string `json:"evening_end"`
	Timezone     string `json:"timezone"`
}

// ConfiguredHours returns the active operating-hours configuration.
func (s *ScheduleService) ConfiguredHours() Hours {
	return Hours{
		DayStart:     formatTimeOfDay(s.dayStart),
		DayEnd:       formatTimeOfDay(s.dayEnd),
		EveningStart: formatTimeOfDay(s.eveningStart),
		EveningEnd:   formatTimeOfDay(s.eveningEnd),
		Timezone:     s.location.String(),
	}
}

func formatTimeOfDay(sec int) string {
	return time.Date(0, 1, 1, sec/3600, (sec/60)%60, sec%60, 0, time.UTC).Format("15:04:05")
}
