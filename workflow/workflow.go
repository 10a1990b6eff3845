// Package workflow implements the upload modal and its layered schedule
// dialog as a state machine over models.UploadSession.
//
//	closed --Start--> type_chosen --OpenSchedule--> schedule_open
//	type_chosen   --PublishNow|SaveDraft|Dismiss--> closed
//	schedule_open --CancelSchedule--> type_chosen
//	schedule_open --SaveSchedule|ScheduleContent|Dismiss--> closed
//
// No transition writes to the catalog.
package workflow

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coreybb/studio/models"
	"github.com/coreybb/studio/scheduler"
)

var (
	// ErrInvalidTransition is returned when an action is not allowed in the session's state.
	ErrInvalidTransition = errors.New("invalid upload transition")
	// ErrInvalidInput is returned when form or schedule values fail validation.
	ErrInvalidInput = errors.New("invalid upload input")
)

// Action names a terminal action that closes a session.
type Action string

const (
	ActionPublishNow      Action = "publish_now"
	ActionSaveDraft       Action = "save_draft"
	ActionDismiss         Action = "dismiss"
	ActionSaveSchedule    Action = "save_schedule"
	ActionScheduleContent Action = "schedule_content"
)

// Start opens the upload modal for the chosen content type.
func Start(contentType models.ContentType, now time.Time) (*models.UploadSession, error) {
	if _, ok := models.ParseContentType(string(contentType)); !ok {
		return nil, fmt.Errorf("%w: unknown content type %q, must be one of: %s", ErrInvalidInput, contentType, models.ContentTypeNames())
	}
	now = now.UTC()
	return &models.UploadSession{
		ID:        uuid.NewString(),
		State:     models.UploadStateTypeChosen,
		Type:      contentType,
		Form:      models.DefaultUploadForm(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func requireState(s *models.UploadSession, action string, allowed ...models.UploadState) error {
	if slices.Contains(allowed, s.State) {
		return nil
	}
	return fmt.Errorf("%w: cannot %s while upload is %s", ErrInvalidTransition, action, s.State)
}

// UpdateForm replaces the form after validating it against the upload type.
func UpdateForm(s *models.UploadSession, form models.UploadForm) error {
	if err := requireState(s, "edit the form", models.UploadStateTypeChosen); err != nil {
		return err
	}
	if err := validateForm(s.Type, &form); err != nil {
		return err
	}
	s.Form = form
	return nil
}

func validateForm(contentType models.ContentType, form *models.UploadForm) error {
	if form.Label == "" {
		form.Label = models.ContentLabelBeginner
	}
	if !models.IsValidContentLabel(form.Label) {
		return fmt.Errorf("%w: unknown content label %q", ErrInvalidInput, form.Label)
	}
	for _, f := range form.Filters {
		if !slices.Contains(models.AvailableFilters, f) {
			return fmt.Errorf("%w: unknown filter %q", ErrInvalidInput, f)
		}
	}
	if form.Podcast != nil && contentType != models.ContentTypePodcast {
		return fmt.Errorf("%w: podcast settings are only allowed for podcast uploads", ErrInvalidInput)
	}
	if form.Hashtags == nil {
		form.Hashtags = []string{}
	}
	if form.Keywords == nil {
		form.Keywords = []string{}
	}
	if form.Filters == nil {
		form.Filters = []string{}
	}
	return nil
}

// ParseHashtags splits space-separated hashtag input, dropping empty entries.
func ParseHashtags(input string) []string {
	tags := strings.Fields(input)
	if tags == nil {
		return []string{}
	}
	return tags
}

// ParseKeywords splits comma-separated keyword input, trimming each entry
// and dropping empty ones.
func ParseKeywords(input string) []string {
	keywords := []string{}
	for _, k := range strings.Split(input, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// Close applies a terminal action. The form and any schedule draft are
// discarded; nothing is appended to the catalog.
func Close(s *models.UploadSession, action Action) error {
	var err error
	switch action {
	case ActionPublishNow, ActionSaveDraft:
		err = requireState(s, string(action), models.UploadStateTypeChosen)
	case ActionSaveSchedule, ActionScheduleContent:
		err = requireState(s, string(action), models.UploadStateScheduleOpen)
	case ActionDismiss:
		err = requireState(s, string(action), models.UploadStateTypeChosen, models.UploadStateScheduleOpen)
	default:
		err = fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}
	if err != nil {
		return err
	}

	s.State = models.UploadStateClosed
	s.Schedule = nil
	s.Form = models.DefaultUploadForm()
	return nil
}

// OpenSchedule layers the schedule dialog over the upload modal with a
// fresh draft.
func OpenSchedule(s *models.UploadSession) error {
	if err := requireState(s, "open the schedule", models.UploadStateTypeChosen); err != nil {
		return err
	}
	draft := models.DefaultScheduleDraft()
	s.Schedule = &draft
	s.State = models.UploadStateScheduleOpen
	return nil
}

// CancelSchedule closes only the schedule dialog, discarding its draft.
func CancelSchedule(s *models.UploadSession) error {
	if err := requireState(s, "cancel the schedule", models.UploadStateScheduleOpen); err != nil {
		return err
	}
	s.Schedule = nil
	s.State = models.UploadStateTypeChosen
	return nil
}

// QuickSchedule fills the draft's date and time with now plus the pick's
// offset, in the draft's timezone.
func QuickSchedule(s *models.UploadSession, pick scheduler.QuickPick, now time.Time) error {
	if err := requireState(s, "quick schedule", models.UploadStateScheduleOpen); err != nil {
		return err
	}
	at, err := scheduler.QuickPickAt(pick, now)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	loc, err := scheduler.Location(s.Schedule.Timezone)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	scheduler.Apply(s.Schedule, at, loc)
	return nil
}

// UpdateSchedule replaces the draft after validating it.
func UpdateSchedule(s *models.UploadSession, draft models.ScheduleDraft) error {
	if err := requireState(s, "edit the schedule", models.UploadStateScheduleOpen); err != nil {
		return err
	}
	if err := scheduler.ValidateDraft(draft); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	s.Schedule = &draft
	return nil
}

// Preview derives the schedule preview. ok is false until both date and
// time are set.
func Preview(s *models.UploadSession) (*models.SchedulePreview, bool, error) {
	if err := requireState(s, "preview the schedule", models.UploadStateScheduleOpen); err != nil {
		return nil, false, err
	}
	preview, ok, err := scheduler.Preview(*s.Schedule)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return preview, ok, nil
}
