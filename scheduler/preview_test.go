package scheduler

import (
	"testing"
	"time"

	"github.com/coreybb/studio/models"
)

func TestPreview_HiddenUntilDateAndTime(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
	}{
		{"both empty", "", ""},
		{"date only", "2024-01-16", ""},
		{"time only", "", "09:00"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			draft := models.DefaultScheduleDraft()
			draft.Date, draft.Time = test.date, test.time

			preview, ok, err := Preview(draft)
			if err != nil || ok || preview != nil {
				t.Errorf("Preview() = %v, %v, %v, expected nil, false, nil", preview, ok, err)
			}
		})
	}
}

func TestPreview_AfterTomorrowQuickPick(t *testing.T) {
	draft := models.DefaultScheduleDraft()
	at, _ := QuickPickAt(QuickPickTomorrow, testNow)
	Apply(&draft, at, est)

	preview, ok, err := Preview(draft)
	if err != nil || !ok {
		t.Fatalf("Preview() = %v, %v, expected a preview", ok, err)
	}

	if preview.PublicationDate != "Tuesday, January 16, 2024" {
		t.Errorf("PublicationDate = %q", preview.PublicationDate)
	}
	if preview.PublicationTime != "09:00 AM" {
		t.Errorf("PublicationTime = %q", preview.PublicationTime)
	}
	if preview.Timezone != "UTC-5 (EST)" {
		t.Errorf("Timezone = %q", preview.Timezone)
	}
	if preview.Reminder != "1 hour before publication" {
		t.Errorf("Reminder = %q", preview.Reminder)
	}
	if preview.Repeat != "" || preview.NextOccurrence != nil {
		t.Errorf("non-repeating draft has Repeat = %q, NextOccurrence = %v", preview.Repeat, preview.NextOccurrence)
	}
	if !preview.ScheduledFor.Equal(at) {
		t.Errorf("ScheduledFor = %v, expected %v", preview.ScheduledFor, at)
	}
	if preview.ReminderAt == nil || !preview.ReminderAt.Equal(at.Add(-time.Hour)) {
		t.Errorf("ReminderAt = %v, expected %v", preview.ReminderAt, at.Add(-time.Hour))
	}
}

func TestPreview_RepeatAndReminder(t *testing.T) {
	tests := []struct {
		name         string
		repeat       models.RepeatPolicy
		reminder     models.ReminderOffset
		wantRepeat   string
		wantReminder string
		wantNext     bool
	}{
		{"weekly with 15 minutes", models.RepeatWeekly, models.Reminder15Min, "Weekly", "15 minutes before publication", true},
		{"daily with 1 day", models.RepeatDaily, models.Reminder1Day, "Daily", "1 day before publication", true},
		{"custom without reminder", models.RepeatCustom, models.ReminderNone, "Custom", "", false},
		{"none with 1 week", models.RepeatNone, models.Reminder1Week, "", "1 week before publication", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			draft := models.DefaultScheduleDraft()
			draft.Date, draft.Time = "2024-03-01", "18:30"
			draft.Repeat, draft.Reminder = test.repeat, test.reminder

			preview, ok, err := Preview(draft)
			if err != nil || !ok {
				t.Fatalf("Preview() = %v, %v", ok, err)
			}
			if preview.PublicationTime != "06:30 PM" {
				t.Errorf("PublicationTime = %q, expected 06:30 PM", preview.PublicationTime)
			}
			if preview.Repeat != test.wantRepeat {
				t.Errorf("Repeat = %q, expected %q", preview.Repeat, test.wantRepeat)
			}
			if preview.Reminder != test.wantReminder {
				t.Errorf("Reminder = %q, expected %q", preview.Reminder, test.wantReminder)
			}
			if (preview.NextOccurrence != nil) != test.wantNext {
				t.Errorf("NextOccurrence = %v, expected present = %v", preview.NextOccurrence, test.wantNext)
			}
			if (preview.ReminderAt != nil) != (test.wantReminder != "") {
				t.Errorf("ReminderAt = %v, expected it only with a reminder", preview.ReminderAt)
			}
		})
	}
}

func TestPreview_InvalidDraft(t *testing.T) {
	draft := models.DefaultScheduleDraft()
	draft.Date, draft.Time = "2024-13-01", "09:00"
	if _, _, err := Preview(draft); err == nil {
		t.Error("expected an error for an impossible date")
	}
}
