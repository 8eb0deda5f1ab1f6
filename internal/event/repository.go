package event

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/eventsapi/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("event repository: event not found")
	ErrQueryFailed = errors.New("event repository: query failed")
)

type repository struct {
	db db.Executor
}

var _ Repository = (*repository)(nil)

// Only published events that were not soft-deleted are visible.
const selectVisibleEvents = `
SELECT e.id, e.category_id, e.status, e.starts_at, e.ends_at, e.published_at, e.organizer_info,
       e.is_target, e.is_featured, e.created_at, e.updated_at,
       c.id, c.slug, c.names, c.is_active, c.sort_order
FROM events e
JOIN event_categories c ON c.id = e.category_id
WHERE e.deleted_at IS NULL AND e.status = $1`

const QueryEventList = selectVisibleEvents + `
ORDER BY e.published_at DESC NULLS LAST, e.id DESC
LIMIT $2 OFFSET $3`

func (r *repository) List(ctx context.Context, limit, offset int) ([]Event, error) {
	exec := db.ExecutorFromContext(ctx, r.db)

	rows, err := exec.QueryContext(ctx, QueryEventList, int64(StatusPublished), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event repository: iterate over event rows: %w", err)
	}

	if len(events) == 0 {
		return []Event{}, nil
	}

	ids := make([]int64, 0, len(events))
	for i := range events {
		ids = append(ids, events[i].ID)
	}

	translations, err := r.translationsByEvent(ctx, exec, ids)
	if err != nil {
		return nil, err
	}

	for i := range events {
		events[i].Translations = translations[events[i].ID]
	}

	return events, nil
}

const QueryEventFind = selectVisibleEvents + `
AND e.id = $2`

func (r *repository) Find(ctx context.Context, eventID int64) (*Event, error) {
	exec := db.ExecutorFromContext(ctx, r.db)

	row := exec.QueryRowContext(ctx, QueryEventFind, int64(StatusPublished), eventID)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find event with id %d: %w", eventID, err)
	}

	translations, err := r.translationsByEvent(ctx, exec, []int64{e.ID})
	if err != nil {
		return nil, err
	}
	e.Translations = translations[e.ID]

	attachments, err := r.attachments(ctx, exec, e.ID)
	if err != nil {
		return nil, err
	}
	e.Attachments = attachments

	return e, nil
}

const QueryTranslationsByEvents = `
SELECT id, event_id, locale, title, content, location
FROM event_translations
WHERE event_id = ANY($1)
ORDER BY event_id, id`

func (r *repository) translationsByEvent(ctx context.Context, exec db.Executor, eventIDs []int64) (map[int64][]Translation, error) {
	rows, err := exec.QueryContext(ctx, QueryTranslationsByEvents, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: list translations: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	translations := make(map[int64][]Translation, len(eventIDs))
	for rows.Next() {
		var (
			t        Translation
			content  sql.NullString
			location sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.EventID, &t.Locale, &t.Title, &content, &location); err != nil {
			return nil, fmt.Errorf("event repository: scan translation row: %w", err)
		}
		t.Content = stringPtr(content)
		t.Location = stringPtr(location)
		translations[t.EventID] = append(translations[t.EventID], t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event repository: iterate over translation rows: %w", err)
	}

	return translations, nil
}

const QueryAttachmentsByEvent = `
SELECT id, event_id, type, path, COALESCE(title, ''), sort_order
FROM event_attachments
WHERE event_id = $1
ORDER BY sort_order, id`

func (r *repository) attachments(ctx context.Context, exec db.Executor, eventID int64) ([]Attachment, error) {
	rows, err := exec.QueryContext(ctx, QueryAttachmentsByEvent, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: list attachments of event %d: %v", ErrQueryFailed, eventID, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var attachments []Attachment
	for rows.Next() {
		var a Attachment
		if err := rows.Scan(&a.ID, &a.EventID, &a.Type, &a.Path, &a.Title, &a.SortOrder); err != nil {
			return nil, fmt.Errorf("event repository: scan attachment row: %w", err)
		}
		attachments = append(attachments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event repository: iterate over attachment rows: %w", err)
	}

	return attachments, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*Event, error) {
	var (
		e                             Event
		startsAt, endsAt, publishedAt sql.NullTime
		organizerInfo, categoryNames  []byte
	)

	err := row.Scan(
		&e.ID, &e.CategoryID, &e.Status, &startsAt, &endsAt, &publishedAt, &organizerInfo,
		&e.IsTarget, &e.IsFeatured, &e.CreatedAt, &e.UpdatedAt,
		&e.Category.ID, &e.Category.Slug, &categoryNames, &e.Category.IsActive, &e.Category.SortOrder,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("event repository: scan event row: %w", err)
	}

	e.StartsAt = timePtr(startsAt)
	e.EndsAt = timePtr(endsAt)
	e.PublishedAt = timePtr(publishedAt)

	if len(organizerInfo) > 0 {
		e.OrganizerInfo = json.RawMessage(organizerInfo)
	}

	if len(categoryNames) > 0 {
		if err := json.Unmarshal(categoryNames, &e.Category.Names); err != nil {
			return nil, fmt.Errorf("event repository: decode names of category %d: %w", e.Category.ID, err)
		}
	}

	return &e, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func NewRepository(exec db.Executor) *repository {
	return &repository{db: exec}
}
