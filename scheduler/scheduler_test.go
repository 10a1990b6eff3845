package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/coreybb/studio/models"
)

var (
	testNow = time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)
	est     = time.FixedZone("UTC-5 (EST)", -5*60*60)
)

func TestQuickPicks(t *testing.T) {
	options := QuickPicks(testNow, est)

	tests := []struct {
		pick        QuickPick
		label       string
		wantDate    string
		wantTime    string
		wantDisplay string
	}{
		{QuickPickInOneHour, "In 1 Hour", "2024-01-15", "10:00", "1/15/2024 at 10:00 AM"},
		{QuickPickTomorrow, "Tomorrow 9 AM", "2024-01-16", "09:00", "1/16/2024 at 09:00 AM"},
		{QuickPickNextWeek, "Next Week", "2024-01-22", "09:00", "1/22/2024 at 09:00 AM"},
		{QuickPickNextMonth, "Next Month", "2024-02-14", "09:00", "2/14/2024 at 09:00 AM"},
	}

	if len(options) != len(tests) {
		t.Fatalf("QuickPicks() returned %d options, expected %d", len(options), len(tests))
	}
	for i, test := range tests {
		t.Run(string(test.pick), func(t *testing.T) {
			got := options[i]
			if got.Pick != test.pick || got.Label != test.label {
				t.Errorf("option %d = %s %q, expected %s %q", i, got.Pick, got.Label, test.pick, test.label)
			}
			if got.Date != test.wantDate {
				t.Errorf("Date = %q, expected %q", got.Date, test.wantDate)
			}
			if got.Time != test.wantTime {
				t.Errorf("Time = %q, expected %q", got.Time, test.wantTime)
			}
			if got.Display != test.wantDisplay {
				t.Errorf("Display = %q, expected %q", got.Display, test.wantDisplay)
			}
		})
	}
}

func TestQuickPickAt(t *testing.T) {
	at, err := QuickPickAt(QuickPickTomorrow, testNow)
	if err != nil {
		t.Fatalf("QuickPickAt() error = %v", err)
	}
	if want := testNow.Add(24 * time.Hour); !at.Equal(want) {
		t.Errorf("QuickPickAt() = %v, expected %v", at, want)
	}

	if _, err := QuickPickAt("yesterday", testNow); !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("QuickPickAt(unknown) error = %v, expected ErrInvalidSchedule", err)
	}
}

func TestApply(t *testing.T) {
	draft := models.DefaultScheduleDraft()
	Apply(&draft, testNow.Add(time.Hour), est)

	if draft.Date != "2024-01-15" || draft.Time != "10:00" {
		t.Errorf("Apply() = %s %s, expected 2024-01-15 10:00", draft.Date, draft.Time)
	}
	if draft.Reminder != models.Reminder1Hour || draft.Timezone != models.DefaultTimezoneLabel {
		t.Error("Apply() should only touch date and time")
	}
}

func TestApply_CrossesDateLine(t *testing.T) {
	ist, err := Location("UTC+5:30 (IST)")
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	draft := models.DefaultScheduleDraft()
	Apply(&draft, time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC), ist)

	if draft.Date != "2024-01-16" || draft.Time != "01:30" {
		t.Errorf("Apply() = %s %s, expected 2024-01-16 01:30", draft.Date, draft.Time)
	}
}

func TestParseScheduledAt(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    time.Time
		wantErr bool
	}{
		{"minutes", "2024-01-16", "09:00", time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC), false},
		{"seconds", "2024-01-16", "09:00:30", time.Date(2024, 1, 16, 14, 0, 30, 0, time.UTC), false},
		{"bad date", "01/16/2024", "09:00", time.Time{}, true},
		{"bad time", "2024-01-16", "9am", time.Time{}, true},
		{"out of range", "2024-01-16", "25:00", time.Time{}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseScheduledAt(test.date, test.clock, est)
			if test.wantErr {
				if !errors.Is(err, ErrInvalidSchedule) {
					t.Errorf("ParseScheduledAt() error = %v, expected ErrInvalidSchedule", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScheduledAt() error = %v", err)
			}
			if !got.Equal(test.want) {
				t.Errorf("ParseScheduledAt() = %v, expected %v", got, test.want)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	at := time.Date(2024, 1, 31, 9, 0, 0, 0, est)

	tests := []struct {
		repeat models.RepeatPolicy
		want   time.Time
		ok     bool
	}{
		{models.RepeatNone, time.Time{}, false},
		{models.RepeatCustom, time.Time{}, false},
		{models.RepeatDaily, time.Date(2024, 2, 1, 9, 0, 0, 0, est), true},
		{models.RepeatWeekly, time.Date(2024, 2, 7, 9, 0, 0, 0, est), true},
		{models.RepeatMonthly, time.Date(2024, 3, 2, 9, 0, 0, 0, est), true},
	}

	for _, test := range tests {
		t.Run(string(test.repeat), func(t *testing.T) {
			got, ok := NextOccurrence(test.repeat, at)
			if ok != test.ok || !got.Equal(test.want) {
				t.Errorf("NextOccurrence() = %v, %v, expected %v, %v", got, ok, test.want, test.ok)
			}
		})
	}
}

func TestValidateDraft(t *testing.T) {
	valid := models.DefaultScheduleDraft()
	if err := ValidateDraft(valid); err != nil {
		t.Errorf("ValidateDraft(default) error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.ScheduleDraft)
	}{
		{"timezone", func(d *models.ScheduleDraft) { d.Timezone = "Mars/Olympus" }},
		{"repeat", func(d *models.ScheduleDraft) { d.Repeat = "hourly" }},
		{"reminder", func(d *models.ScheduleDraft) { d.Reminder = "2hours" }},
		{"auto archive", func(d *models.ScheduleDraft) { d.AutoArchive = "2years" }},
		{"date", func(d *models.ScheduleDraft) { d.Date = "tomorrow" }},
		{"time", func(d *models.ScheduleDraft) { d.Time = "noon" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			draft := models.DefaultScheduleDraft()
			test.mutate(&draft)
			if err := ValidateDraft(draft); !errors.Is(err, ErrInvalidSchedule) {
				t.Errorf("ValidateDraft() error = %v, expected ErrInvalidSchedule", err)
			}
		})
	}
}
