package event

import (
	"encoding/json"
	"time"
)

type CategoryView struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type AttachmentView struct {
	Type  AttachmentType `json:"type"`
	Title string         `json:"title"`
	Path  string         `json:"path"`
}

// ListView is an event localized for the event list.
type ListView struct {
	ID            int64           `json:"id"`
	Slug          string          `json:"slug"`
	Title         string          `json:"title"`
	Category      CategoryView    `json:"category"`
	PublishedAt   *time.Time      `json:"published_at"`
	OrganizerInfo json.RawMessage `json:"organizer_info"`
}

// DetailView is an event localized for its detail page.
type DetailView struct {
	ListView

	Content     *string          `json:"content"`
	Location    *string          `json:"location"`
	Attachments []AttachmentView `json:"attachments"`
}
