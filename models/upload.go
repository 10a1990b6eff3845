package models

import "time"

// ContentLabel is the difficulty label attached to an upload.
type ContentLabel string

const (
	ContentLabelBeginner     ContentLabel = "beginner"
	ContentLabelIntermediate ContentLabel = "intermediate"
	ContentLabelAdvanced     ContentLabel = "advanced"
	ContentLabelExpert       ContentLabel = "expert"
)

func IsValidContentLabel(l ContentLabel) bool {
	switch l {
	case ContentLabelBeginner, ContentLabelIntermediate, ContentLabelAdvanced, ContentLabelExpert:
		return true
	default:
		return false
	}
}

// AvailableFilters is the fixed set of custom filters offered on the upload form.
var AvailableFilters = []string{
	"beginner-friendly",
	"step-by-step",
	"advanced",
	"problem-solving",
	"interactive",
	"visual-learning",
	"code-examples",
	"best-practices",
}

// PodcastSettings are only meaningful for podcast uploads.
type PodcastSettings struct {
	Anonymous  bool `json:"anonymous"`
	Group      bool `json:"group"`
	Public     bool `json:"public"`
	Individual bool `json:"individual"`
}

type InteractionSettings struct {
	AllowComments     bool `json:"allow_comments"`
	EnableSuggestions bool `json:"enable_suggestions"`
	AutoShareLink     bool `json:"auto_share_link"`
}

// UploadForm holds the metadata entered in the upload modal. It is never
// written to the catalog.
type UploadForm struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Category       string              `json:"category"`
	SubCategory    string              `json:"sub_category"`
	CustomCategory string              `json:"custom_category"`
	Label          ContentLabel        `json:"label"`
	Hashtags       []string            `json:"hashtags"`
	Keywords       []string            `json:"keywords"`
	Filters        []string            `json:"filters"`
	Podcast        *PodcastSettings    `json:"podcast,omitempty"`
	Interaction    InteractionSettings `json:"interaction"`
}

// DefaultUploadForm returns the form as the modal first shows it.
func DefaultUploadForm() UploadForm {
	return UploadForm{
		Label:    ContentLabelBeginner,
		Hashtags: []string{},
		Keywords: []string{},
		Filters:  []string{},
		Interaction: InteractionSettings{
			AllowComments:     true,
			EnableSuggestions: true,
			AutoShareLink:     true,
		},
	}
}

// UploadState is a state of the upload workflow.
type UploadState string

const (
	UploadStateClosed       UploadState = "closed"
	UploadStateTypeChosen   UploadState = "type_chosen"
	UploadStateScheduleOpen UploadState = "schedule_open"
)

// UploadSession is one pass through the upload modal. Schedule is non-nil
// only while the schedule dialog is open.
type UploadSession struct {
	ID        string         `json:"id"`
	State     UploadState    `json:"state"`
	Type      ContentType    `json:"type"`
	Form      UploadForm     `json:"form"`
	Schedule  *ScheduleDraft `json:"schedule,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Clone returns a deep copy of the session.
func (s UploadSession) Clone() UploadSession {
	out := s
	out.Form.Hashtags = append([]string{}, s.Form.Hashtags...)
	out.Form.Keywords = append([]string{}, s.Form.Keywords...)
	out.Form.Filters = append([]string{}, s.Form.Filters...)
	if s.Form.Podcast != nil {
		p := *s.Form.Podcast
		out.Form.Podcast = &p
	}
	if s.Schedule != nil {
		d := *s.Schedule
		out.Schedule = &d
	}
	return out
}
