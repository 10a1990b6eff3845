package scheduler

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/coreybb/studio/models"
)

var titleCaser = cases.Title(language.English)

// Preview derives the human-readable schedule summary from a draft. It
// returns ok=false, with no error, until both date and time are set.
func Preview(draft models.ScheduleDraft) (*models.SchedulePreview, bool, error) {
	if draft.Date == "" || draft.Time == "" {
		return nil, false, nil
	}

	loc, err := Location(draft.Timezone)
	if err != nil {
		return nil, false, err
	}
	at, err := ParseScheduledAt(draft.Date, draft.Time, loc)
	if err != nil {
		return nil, false, err
	}

	preview := &models.SchedulePreview{
		PublicationDate: at.Format(previewDateLayout),
		PublicationTime: at.Format(shortClockLayout),
		Timezone:        draft.Timezone,
		ScheduledFor:    at,
	}

	if draft.Repeat != "" && draft.Repeat != models.RepeatNone {
		preview.Repeat = titleCaser.String(string(draft.Repeat))
		if next, ok := NextOccurrence(draft.Repeat, at); ok {
			preview.NextOccurrence = &next
		}
	}

	if d, ok := draft.Reminder.Duration(); ok {
		preview.Reminder = draft.Reminder.Label() + " before publication"
		reminderAt := at.Add(-d)
		preview.ReminderAt = &reminderAt
	}

	return preview, true, nil
}
