package database

import (
	"testing"
)

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "no placeholders",
			query: "SELECT 1",
			want:  "SELECT 1",
		},
		{
			name:  "single placeholder",
			query: "SELECT * FROM t WHERE id = ?",
			want:  "SELECT * FROM t WHERE id = $1",
		},
		{
			name:  "multiple placeholders numbered in order",
			query: "INSERT INTO t (a, b, c) VALUES (?, ?, ?)",
			want:  "INSERT INTO t (a, b, c) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewritePlaceholdersToNumbered(tt.query); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSQLiteUpsertQuery(t *testing.T) {
	d := NewSQLiteDialect()
	got := d.UpsertQuery("preferences", []string{"id", "child_name"}, "id")
	want := "INSERT INTO preferences (id, child_name) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET child_name = excluded.child_name"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMySQLUpsertQuery(t *testing.T) {
	d := NewMySQLDialect()
	got := d.UpsertQuery("preferences", []string{"id", "child_name"}, "id")
	want := "INSERT INTO preferences (id, child_name) VALUES (?, ?) ON DUPLICATE KEY UPDATE child_name = VALUES(child_name)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPostgresUpsertQuery(t *testing.T) {
	d := NewPostgresDialect()
	upsert := d.UpsertQuery("preferences", []string{"id", "child_name"}, "id")
	got := d.RewriteQuery(upsert)
	want := "INSERT INTO preferences (id, child_name) VALUES ($1, $2) ON CONFLICT(id) DO UPDATE SET child_name = excluded.child_name"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMySQLDSNParseTime(t *testing.T) {
	d := NewMySQLDialect()
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "bare url",
			url:  "user:pass@tcp(localhost:3306)/app",
			want: "user:pass@tcp(localhost:3306)/app?parseTime=true",
		},
		{
			name: "existing query params",
			url:  "user:pass@tcp(localhost:3306)/app?charset=utf8",
			want: "user:pass@tcp(localhost:3306)/app?charset=utf8&parseTime=true",
		},
		{
			name: "parseTime already set",
			url:  "user:pass@tcp(localhost:3306)/app?parseTime=false",
			want: "user:pass@tcp(localhost:3306)/app?parseTime=false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.DSN(DialectConfig{URL: tt.url}); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
