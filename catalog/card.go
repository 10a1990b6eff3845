package catalog

import (
	"github.com/dustin/go-humanize"

	"github.com/coreybb/studio/models"
)

const (
	cardHashtagLimit = 3
	cardKeywordLimit = 2
	cardFilterLimit  = 1
)

// Card is the grid-view projection of a content item.
type Card struct {
	ID             int64                `json:"id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Type           models.ContentType   `json:"type"`
	Icon           string               `json:"icon"`
	Color          string               `json:"color"`
	Thumbnail      string               `json:"thumbnail,omitempty"`
	Status         models.ContentStatus `json:"status"`
	StatusColor    string               `json:"status_color"`
	ThrottleAction string               `json:"throttle_action"`
	Views          int64                `json:"views"`
	ViewsDisplay   string               `json:"views_display"` // e.g. "1,250 views"
	Category       string               `json:"category"`
	SubCategory    string               `json:"sub_category"`
	CustomCategory string               `json:"custom_category,omitempty"`
	Hashtags       []string             `json:"hashtags"`
	MoreHashtags   int                  `json:"more_hashtags"`
	Keywords       []string             `json:"keywords"`
	Filters        []string             `json:"filters"`
	IsAnonymous    bool                 `json:"is_anonymous,omitempty"`
	IsGroup        bool                 `json:"is_group,omitempty"`
	ShareLink      string               `json:"share_link"`
}

// NewCard projects item into its grid card.
func NewCard(item models.ContentItem) Card {
	pres, _ := item.Type.Presentation()
	hashtags, more := head(item.Hashtags, cardHashtagLimit)
	keywords, _ := head(item.Keywords, cardKeywordLimit)
	filters, _ := head(item.Filters, cardFilterLimit)

	card := Card{
		ID:             item.ID,
		Title:          item.Title,
		Description:    item.Description,
		Type:           item.Type,
		Icon:           pres.Icon,
		Color:          pres.Color,
		Thumbnail:      item.Thumbnail,
		Status:         item.Status,
		StatusColor:    item.Status.BadgeColor(),
		ThrottleAction: item.Status.ThrottleActionLabel(),
		Views:          item.Views,
		ViewsDisplay:   humanize.Comma(item.Views) + " views",
		Category:       item.Category,
		SubCategory:    item.SubCategory,
		CustomCategory: item.CustomCategory,
		Hashtags:       hashtags,
		MoreHashtags:   more,
		Keywords:       keywords,
		Filters:        filters,
		ShareLink:      item.ShareLink,
	}
	if item.Type == models.ContentTypePodcast {
		card.IsAnonymous = item.IsAnonymous != nil && *item.IsAnonymous
		card.IsGroup = item.IsGroup != nil && *item.IsGroup
	}
	return card
}

// NewCards projects every item, preserving order.
func NewCards(items []models.ContentItem) []Card {
	cards := make([]Card, len(items))
	for i, item := range items {
		cards[i] = NewCard(item)
	}
	return cards
}

// head returns at most n leading values and how many were left out.
func head(values []string, n int) ([]string, int) {
	if len(values) <= n {
		return append([]string{}, values...), 0
	}
	return append([]string{}, values[:n]...), len(values) - n
}
