package models

// ContentStatus defines the set of allowed statuses for a ContentItem.
type ContentStatus string

const (
	ContentStatusPublished ContentStatus = "published"
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusThrottled ContentStatus = "throttled"
)

// IsValidContentStatus reports whether s names a known status.
func IsValidContentStatus(s ContentStatus) bool {
	switch s {
	case ContentStatusPublished, ContentStatusDraft, ContentStatusThrottled:
		return true
	default:
		return false
	}
}

// Toggled returns the status after a throttle toggle. Throttled content is
// republished; anything else, drafts included, becomes throttled.
func (s ContentStatus) Toggled() ContentStatus {
	if s == ContentStatusThrottled {
		return ContentStatusPublished
	}
	return ContentStatusThrottled
}

// BadgeColor is the status badge styling used by the studio cards.
func (s ContentStatus) BadgeColor() string {
	switch s {
	case ContentStatusPublished:
		return "green"
	case ContentStatusDraft:
		return "yellow"
	default:
		return "red"
	}
}

// ThrottleActionLabel is the label of the throttle button for an item in this status.
func (s ContentStatus) ThrottleActionLabel() string {
	if s == ContentStatusThrottled {
		return "Unthrottle"
	}
	return "Throttle"
}

type ContentItem struct {
	ID             int64         `json:"id" toml:"id"`
	Title          string        `json:"title" toml:"title"`
	Type           ContentType   `json:"type" toml:"type"`
	Status         ContentStatus `json:"status" toml:"status"`
	Category       string        `json:"category" toml:"category"`
	SubCategory    string        `json:"sub_category" toml:"sub_category"`
	CustomCategory string        `json:"custom_category,omitempty" toml:"custom_category"`
	Views          int64         `json:"views" toml:"views"`
	Hashtags       []string      `json:"hashtags" toml:"hashtags"`
	CreatedAt      string        `json:"created_at" toml:"created_at"` // display-only date, e.g. "2024-01-15"
	Thumbnail      string        `json:"thumbnail,omitempty" toml:"thumbnail"`
	Description    string        `json:"description" toml:"description"`
	ShareLink      string        `json:"share_link" toml:"share_link"`
	IsAnonymous    *bool         `json:"is_anonymous,omitempty" toml:"is_anonymous"` // podcasts only
	IsGroup        *bool         `json:"is_group,omitempty" toml:"is_group"`         // podcasts only
	Filters        []string      `json:"filters" toml:"filters"`
	Keywords       []string      `json:"keywords" toml:"keywords"`
}

// Clone returns a deep copy so callers cannot alias the store's slices.
func (c ContentItem) Clone() ContentItem {
	out := c
	out.Hashtags = append([]string{}, c.Hashtags...)
	out.Filters = append([]string{}, c.Filters...)
	out.Keywords = append([]string{}, c.Keywords...)
	if c.IsAnonymous != nil {
		v := *c.IsAnonymous
		out.IsAnonymous = &v
	}
	if c.IsGroup != nil {
		v := *c.IsGroup
		out.IsGroup = &v
	}
	return out
}
