package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/coreybb/studio/models"
)

const (
	dateLayout        = "2006-01-02"
	clockLayout       = "15:04"
	quickDateLayout   = "1/2/2006"
	shortClockLayout  = "03:04 PM"
	previewDateLayout = "Monday, January 2, 2006"
)

// ErrInvalidSchedule is returned for schedule values that cannot be interpreted.
var ErrInvalidSchedule = errors.New("invalid schedule")

// QuickPick identifies one of the fixed-offset quick-schedule shortcuts.
type QuickPick string

const (
	QuickPickInOneHour QuickPick = "in_1_hour"
	QuickPickTomorrow  QuickPick = "tomorrow_9am"
	QuickPickNextWeek  QuickPick = "next_week"
	QuickPickNextMonth QuickPick = "next_month"
)

// The "Tomorrow 9 AM" shortcut is a plain 24h offset, not 09:00 the next day.
var quickPicks = []struct {
	pick   QuickPick
	label  string
	offset time.Duration
}{
	{QuickPickInOneHour, "In 1 Hour", time.Hour},
	{QuickPickTomorrow, "Tomorrow 9 AM", 24 * time.Hour},
	{QuickPickNextWeek, "Next Week", 7 * 24 * time.Hour},
	{QuickPickNextMonth, "Next Month", 30 * 24 * time.Hour},
}

// QuickPickOption is a quick-schedule shortcut evaluated against a clock.
type QuickPickOption struct {
	Pick    QuickPick `json:"pick"`
	Label   string    `json:"label"`
	Date    string    `json:"date"`
	Time    string    `json:"time"`
	Display string    `json:"display"` // e.g. "1/16/2024 at 09:00 AM"
	At      time.Time `json:"at"`
}

// QuickPickAt returns now plus the pick's fixed offset.
func QuickPickAt(pick QuickPick, now time.Time) (time.Time, error) {
	for _, qp := range quickPicks {
		if qp.pick == pick {
			return now.Add(qp.offset), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unknown quick pick %q", ErrInvalidSchedule, pick)
}

// QuickPicks evaluates every shortcut against now, rendered in loc.
func QuickPicks(now time.Time, loc *time.Location) []QuickPickOption {
	options := make([]QuickPickOption, 0, len(quickPicks))
	for _, qp := range quickPicks {
		at := now.Add(qp.offset).In(loc)
		options = append(options, QuickPickOption{
			Pick:    qp.pick,
			Label:   qp.label,
			Date:    at.Format(dateLayout),
			Time:    at.Format(clockLayout),
			Display: at.Format(quickDateLayout) + " at " + at.Format(shortClockLayout),
			At:      at,
		})
	}
	return options
}

// Apply fills the draft's date and time with at, as wall-clock values in loc.
func Apply(draft *models.ScheduleDraft, at time.Time, loc *time.Location) {
	local := at.In(loc)
	draft.Date = local.Format(dateLayout)
	draft.Time = local.Format(clockLayout)
}

// Location resolves a draft's timezone label to a fixed-offset location.
func Location(label string) (*time.Location, error) {
	tz, ok := models.LookupTimezone(label)
	if !ok {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidSchedule, label)
	}
	return tz.Location(), nil
}

// ParseScheduledAt combines a YYYY-MM-DD date and an HH:MM (or HH:MM:SS)
// time into an instant in loc.
func ParseScheduledAt(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidSchedule, date)
	}
	hour, min, sec, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, sec, 0, loc), nil
}

func parseClock(clock string) (hour, min, sec int, err error) {
	// Try HH:MM first
	t, err := time.Parse(clockLayout, clock)
	if err == nil {
		return t.Hour(), t.Minute(), 0, nil
	}

	// Some time pickers submit seconds
	t, err = time.Parse("15:04:05", clock)
	if err == nil {
		return t.Hour(), t.Minute(), t.Second(), nil
	}

	return 0, 0, 0, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidSchedule, clock)
}

// NextOccurrence returns the first repeat after at. None and custom
// policies have no computable next occurrence.
func NextOccurrence(repeat models.RepeatPolicy, at time.Time) (time.Time, bool) {
	switch repeat {
	case models.RepeatDaily:
		return at.AddDate(0, 0, 1), true
	case models.RepeatWeekly:
		return at.AddDate(0, 0, 7), true
	case models.RepeatMonthly:
		return at.AddDate(0, 1, 0), true
	default:
		return time.Time{}, false
	}
}

// ValidateDraft checks the enum fields of a draft and, when set, its date and time.
func ValidateDraft(draft models.ScheduleDraft) error {
	loc, err := Location(draft.Timezone)
	if err != nil {
		return err
	}
	if !models.IsValidRepeatPolicy(draft.Repeat) {
		return fmt.Errorf("%w: unknown repeat policy %q", ErrInvalidSchedule, draft.Repeat)
	}
	if !models.IsValidReminderOffset(draft.Reminder) {
		return fmt.Errorf("%w: unknown reminder %q", ErrInvalidSchedule, draft.Reminder)
	}
	if !models.IsValidAutoArchive(draft.AutoArchive) {
		return fmt.Errorf("%w: unknown auto-archive period %q", ErrInvalidSchedule, draft.AutoArchive)
	}
	if draft.Date != "" {
		if _, err := time.ParseInLocation(dateLayout, draft.Date, loc); err != nil {
			return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidSchedule, draft.Date)
		}
	}
	if draft.Time != "" {
		if _, _, _, err := parseClock(draft.Time); err != nil {
			return err
		}
	}
	return nil
}
