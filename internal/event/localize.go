package event

import (
	"fmt"
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// FallbackLocale is tried when the requested locale has no content.
const FallbackLocale = "zh-TW"

const (
	noTranslation = "No Translation"
	noCategory    = "No Category"
)

// NormalizeLocale canonicalizes a BCP 47 tag, so "en-us" becomes "en-US".
// Tags that do not parse are returned unchanged.
func NormalizeLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	return tag.String()
}

// sameLocale reports whether two tags name the same locale once canonicalized,
// so "en-us" matches "en-US" and "iw" matches "he".
func sameLocale(a, b string) bool {
	return NormalizeLocale(a) == NormalizeLocale(b)
}

// pickTranslation returns the translation stored under locale verbatim, else
// one whose locale is the same once canonicalized, else the one for
// FallbackLocale, else the first one. It returns nil when there are none.
func pickTranslation(translations []Translation, locale string) *Translation {
	if len(translations) == 0 {
		return nil
	}

	for i := range translations {
		if translations[i].Locale == locale {
			return &translations[i]
		}
	}

	for i := range translations {
		if sameLocale(translations[i].Locale, locale) {
			return &translations[i]
		}
	}

	for i := range translations {
		if translations[i].Locale == FallbackLocale {
			return &translations[i]
		}
	}

	return &translations[0]
}

// localizedText looks up locale verbatim, then a key that is the same locale
// once canonicalized, then FallbackLocale, in a locale-keyed map.
// Empty values count as missing.
func localizedText(texts map[string]string, locale, fallback string) string {
	if text := texts[locale]; text != "" {
		return text
	}

	for _, key := range slices.Sorted(maps.Keys(texts)) {
		if text := texts[key]; text != "" && sameLocale(key, locale) {
			return text
		}
	}

	if text := texts[FallbackLocale]; text != "" {
		return text
	}

	return fallback
}

func newListView(e *Event, locale string) ListView {
	title := noTranslation
	if t := pickTranslation(e.Translations, locale); t != nil {
		title = t.Title
	}

	return ListView{
		ID:    e.ID,
		Slug:  fmt.Sprintf("%s-%d", e.Category.Slug, e.ID),
		Title: title,
		Category: CategoryView{
			Slug: e.Category.Slug,
			Name: localizedText(e.Category.Names, locale, noCategory),
		},
		PublishedAt:   e.PublishedAt,
		OrganizerInfo: e.OrganizerInfo,
	}
}

func newDetailView(e *Event, locale string) *DetailView {
	view := &DetailView{
		ListView:    newListView(e, locale),
		Attachments: make([]AttachmentView, 0, len(e.Attachments)),
	}

	if t := pickTranslation(e.Translations, locale); t != nil {
		view.Content = t.Content
		view.Location = t.Location
	}

	for _, a := range e.Attachments {
		view.Attachments = append(view.Attachments, AttachmentView{
			Type:  a.Type,
			Title: a.Title,
			Path:  a.Path,
		})
	}

	return view
}
