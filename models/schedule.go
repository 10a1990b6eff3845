package models

import "time"

// RepeatPolicy defines how a scheduled publication repeats.
type RepeatPolicy string

const (
	RepeatNone    RepeatPolicy = "none"
	RepeatDaily   RepeatPolicy = "daily"
	RepeatWeekly  RepeatPolicy = "weekly"
	RepeatMonthly RepeatPolicy = "monthly"
	RepeatCustom  RepeatPolicy = "custom"
)

func IsValidRepeatPolicy(r RepeatPolicy) bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatCustom:
		return true
	default:
		return false
	}
}

// ReminderOffset is how long before publication a reminder fires.
type ReminderOffset string

const (
	ReminderNone  ReminderOffset = "none"
	Reminder15Min ReminderOffset = "15min"
	Reminder30Min ReminderOffset = "30min"
	Reminder1Hour ReminderOffset = "1hour"
	Reminder1Day  ReminderOffset = "1day"
	Reminder1Week ReminderOffset = "1week"
)

// Duration returns the offset, or false for ReminderNone and unknown values.
func (r ReminderOffset) Duration() (time.Duration, bool) {
	switch r {
	case Reminder15Min:
		return 15 * time.Minute, true
	case Reminder30Min:
		return 30 * time.Minute, true
	case Reminder1Hour:
		return time.Hour, true
	case Reminder1Day:
		return 24 * time.Hour, true
	case Reminder1Week:
		return 7 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Label renders the offset as "<n> <unit>", e.g. "15 minutes" or "1 day".
func (r ReminderOffset) Label() string {
	switch r {
	case Reminder15Min:
		return "15 minutes"
	case Reminder30Min:
		return "30 minutes"
	case Reminder1Hour:
		return "1 hour"
	case Reminder1Day:
		return "1 day"
	case Reminder1Week:
		return "1 week"
	default:
		return ""
	}
}

func IsValidReminderOffset(r ReminderOffset) bool {
	if r == ReminderNone {
		return true
	}
	_, ok := r.Duration()
	return ok
}

// AutoArchive is the retention period after which scheduled content is archived.
type AutoArchive string

const (
	AutoArchiveNever   AutoArchive = "never"
	AutoArchive1Month  AutoArchive = "1month"
	AutoArchive3Months AutoArchive = "3months"
	AutoArchive6Months AutoArchive = "6months"
	AutoArchive1Year   AutoArchive = "1year"
)

func IsValidAutoArchive(a AutoArchive) bool {
	switch a {
	case AutoArchiveNever, AutoArchive1Month, AutoArchive3Months, AutoArchive6Months, AutoArchive1Year:
		return true
	default:
		return false
	}
}

// Timezone is one of the selectable publication timezones.
type Timezone struct {
	Label         string `json:"label"`
	Description   string `json:"description"`
	OffsetMinutes int    `json:"offset_minutes"`
}

const DefaultTimezoneLabel = "UTC-5 (EST)"

// Timezones lists the selectable timezones in display order.
var Timezones = []Timezone{
	{Label: "UTC-8 (PST)", Description: "Pacific Standard Time", OffsetMinutes: -8 * 60},
	{Label: "UTC-7 (MST)", Description: "Mountain Standard Time", OffsetMinutes: -7 * 60},
	{Label: "UTC-6 (CST)", Description: "Central Standard Time", OffsetMinutes: -6 * 60},
	{Label: "UTC-5 (EST)", Description: "Eastern Standard Time", OffsetMinutes: -5 * 60},
	{Label: "UTC+0 (GMT)", Description: "Greenwich Mean Time", OffsetMinutes: 0},
	{Label: "UTC+1 (CET)", Description: "Central European Time", OffsetMinutes: 60},
	{Label: "UTC+5:30 (IST)", Description: "India Standard Time", OffsetMinutes: 5*60 + 30},
	{Label: "UTC+8 (CST)", Description: "China Standard Time", OffsetMinutes: 8 * 60},
	{Label: "UTC+9 (JST)", Description: "Japan Standard Time", OffsetMinutes: 9 * 60},
}

// LookupTimezone finds a timezone by its exact label.
func LookupTimezone(label string) (Timezone, bool) {
	for _, tz := range Timezones {
		if tz.Label == label {
			return tz, true
		}
	}
	return Timezone{}, false
}

// Location returns a fixed-offset location named after the label.
func (tz Timezone) Location() *time.Location {
	return time.FixedZone(tz.Label, tz.OffsetMinutes*60)
}

// ScheduleDraft is the schedule dialog's input. It lives only while the
// dialog is open and is never attached to a ContentItem.
type ScheduleDraft struct {
	Date              string         `json:"date"` // YYYY-MM-DD
	Time              string         `json:"time"` // HH:MM
	Timezone          string         `json:"timezone"`
	Repeat            RepeatPolicy   `json:"repeat"`
	Reminder          ReminderOffset `json:"reminder"`
	AutoArchive       AutoArchive    `json:"auto_archive"`
	AutoPromote       bool           `json:"auto_promote"`
	EmailNotification bool           `json:"email_notification"`
}

// DefaultScheduleDraft returns the dialog's initial values.
func DefaultScheduleDraft() ScheduleDraft {
	return ScheduleDraft{
		Timezone:          DefaultTimezoneLabel,
		Repeat:            RepeatNone,
		Reminder:          Reminder1Hour,
		AutoArchive:       AutoArchiveNever,
		EmailNotification: true,
	}
}

// SchedulePreview is derived from a ScheduleDraft on demand.
type SchedulePreview struct {
	PublicationDate string     `json:"publication_date"` // e.g. "Monday, January 15, 2024"
	PublicationTime string     `json:"publication_time"` // e.g. "09:00 AM"
	Timezone        string     `json:"timezone"`
	Repeat          string     `json:"repeat,omitempty"`
	Reminder        string     `json:"reminder,omitempty"`
	ScheduledFor    time.Time  `json:"scheduled_for"`
	ReminderAt      *time.Time `json:"reminder_at,omitempty"`
	NextOccurrence  *time.Time `json:"next_occurrence,omitempty"`
}
