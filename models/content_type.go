package models

import "strings"

// ContentType defines the closed set of content kinds a mentor can publish.
type ContentType string

const (
	ContentTypeReel    ContentType = "reel"
	ContentTypeBlog    ContentType = "blog"
	ContentTypeVideo   ContentType = "video"
	ContentTypeLink    ContentType = "link"
	ContentTypePDF     ContentType = "pdf"
	ContentTypeGitHub  ContentType = "github"
	ContentTypeImage   ContentType = "image"
	ContentTypePodcast ContentType = "podcast"
)

// AllContentTypes returns the content types in upload tile order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentTypeReel,
		ContentTypeBlog,
		ContentTypeVideo,
		ContentTypeLink,
		ContentTypePDF,
		ContentTypeGitHub,
		ContentTypeImage,
		ContentTypePodcast,
	}
}

// ParseContentType checks if the provided string is a valid ContentType.
// Matching is exact; "PDF" is not a content type.
func ParseContentType(s string) (ContentType, bool) {
	ct := ContentType(s)
	if _, ok := ct.Presentation(); ok {
		return ct, true
	}
	return "", false
}

// TypePresentation is the display metadata shown for a content type.
type TypePresentation struct {
	ID     ContentType `json:"id"`
	Name   string      `json:"name"`
	Icon   string      `json:"icon"`
	Color  string      `json:"color"`
	Accept string      `json:"accept"` // file picker filter, empty for links
}

// Presentation returns the display metadata for the type, or false for an
// unknown type. Every constant in AllContentTypes must have a case here.
func (t ContentType) Presentation() (TypePresentation, bool) {
	p := TypePresentation{ID: t, Accept: "*/*"}
	switch t {
	case ContentTypeReel:
		p.Name, p.Icon, p.Color, p.Accept = "Reels", "🎬", "bg-pink-500", "video/*"
	case ContentTypeBlog:
		p.Name, p.Icon, p.Color = "Blogs", "📝", "bg-blue-500"
	case ContentTypeVideo:
		p.Name, p.Icon, p.Color, p.Accept = "Videos", "🎥", "bg-red-500", "video/*"
	case ContentTypeLink:
		p.Name, p.Icon, p.Color, p.Accept = "Links", "🔗", "bg-green-500", ""
	case ContentTypePDF:
		p.Name, p.Icon, p.Color, p.Accept = "PDF Files", "📄", "bg-orange-500", ".pdf"
	case ContentTypeGitHub:
		p.Name, p.Icon, p.Color = "GitHub Repo", "💻", "bg-gray-700"
	case ContentTypeImage:
		p.Name, p.Icon, p.Color, p.Accept = "Images", "🖼️", "bg-purple-500", "image/*"
	case ContentTypePodcast:
		p.Name, p.Icon, p.Color = "Podcast", "🎙️", "bg-indigo-500"
	default:
		return TypePresentation{}, false
	}
	return p, true
}

// ContentTypeNames returns a comma-separated list of valid types, for error messages.
func ContentTypeNames() string {
	all := AllContentTypes()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
