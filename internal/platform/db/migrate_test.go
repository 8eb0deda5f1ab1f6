package db

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrations_Embedded(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(migrations, migrationsDir+"/*.sql")
	if err != nil {
		t.Fatalf("fs.Glob: %v", err)
	}

	if len(files) == 0 {
		t.Fatal("no migrations were embedded")
	}

	for _, file := range files {
		content, err := fs.ReadFile(migrations, file)
		if err != nil {
			t.Fatalf("fs.ReadFile(%q): %v", file, err)
		}

		for _, annotation := range []string{"-- +goose Up", "-- +goose Down"} {
			if !strings.Contains(string(content), annotation) {
				t.Errorf("migration %s is missing the %q annotation", file, annotation)
			}
		}
	}
}

func TestMigrations_CreateEventTables(t *testing.T) {
	t.Parallel()

	content, err := fs.ReadFile(migrations, migrationsDir+"/00001_create_event_tables.sql")
	if err != nil {
		t.Fatalf("fs.ReadFile: %v", err)
	}

	for _, table := range []string{"event_categories", "events", "event_translations", "event_attachments"} {
		if !strings.Contains(string(content), "CREATE TABLE IF NOT EXISTS "+table+" (") {
			t.Errorf("migration does not create table %s", table)
		}
	}
}
