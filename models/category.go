package models

// Category groups content for the selection inputs. Nothing ties a
// ContentItem's free-text category back to this list.
type Category struct {
	ID               string   `json:"id" toml:"id"`
	Name             string   `json:"name" toml:"name"`
	SubCategories    []string `json:"sub_categories" toml:"sub_categories"`
	CustomCategories []string `json:"custom_categories" toml:"custom_categories"`
}
