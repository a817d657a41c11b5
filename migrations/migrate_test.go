package migrations

import (
	"strings"
	"testing"
)

func TestEmbeddedMigrationsPresent(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	if err != nil {
		t.Fatalf("reading embedded migrations: %v", err)
	}

	want := []string{
		"00001_create_users.sql",
		"00002_create_listings.sql",
	}
	found := make(map[string]bool, len(entries))
	for _, e := range entries {
		found[e.Name()] = true
	}
	for _, name := range want {
		if !found[name] {
			t.Errorf("migration %s not embedded", name)
		}
	}
}

func TestMigrationsHaveGooseMarkers(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	if err != nil {
		t.Fatalf("reading embedded migrations: %v", err)
	}

	for _, e := range entries {
		data, err := embedMigrations.ReadFile(e.Name())
		if err != nil {
			t.Fatalf("reading %s: %v", e.Name(), err)
		}
		sql := string(data)
		if !strings.Contains(sql, "+goose Up") {
			t.Errorf("%s is missing a +goose Up section", e.Name())
		}
		if !strings.Contains(sql, "+goose Down") {
			t.Errorf("%s is missing a +goose Down section", e.Name())
		}
	}
}

func TestUsersMigrationEnforcesUniqueEmail(t *testing.T) {
	data, err := embedMigrations.ReadFile("00001_create_users.sql")
	if err != nil {
		t.Fatalf("reading users migration: %v", err)
	}
	if !strings.Contains(string(data), "UNIQUE KEY uniq_users_email") {
		t.Error("users table must enforce email uniqueness at the database level")
	}
}
