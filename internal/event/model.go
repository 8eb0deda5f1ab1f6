package event

import (
	"encoding/json"
	"time"
)

// Status is the publication state of an event.
type Status int

const (
	StatusDraft Status = iota
	StatusPublished
	StatusArchived
)

type AttachmentType string

const (
	AttachmentImage AttachmentType = "image"
	AttachmentFile  AttachmentType = "file"
	AttachmentLink  AttachmentType = "link"
)

type Category struct {
	ID        int64
	Slug      string
	Names     map[string]string // locale -> name
	IsActive  bool
	SortOrder int
}

type Event struct {
	ID            int64
	CategoryID    int64
	Status        Status
	StartsAt      *time.Time
	EndsAt        *time.Time
	PublishedAt   *time.Time
	OrganizerInfo json.RawMessage
	IsTarget      bool
	IsFeatured    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time

	Category     Category
	Translations []Translation
	Attachments  []Attachment
}

// Translation holds the locale-specific content of an event. An event has at most one per locale.
type Translation struct {
	ID       int64
	EventID  int64
	Locale   string
	Title    string
	Content  *string
	Location *string
}

type Attachment struct {
	ID        int64
	EventID   int64
	Type      AttachmentType
	Path      string
	Title     string
	SortOrder int
}
