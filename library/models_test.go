package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		author    string
		category  string
		wantField string
	}{
		{name: "valid", title: "Dune", author: "Frank Herbert", category: "Science Fiction"},
		{name: "blank category defaults", title: "Dune", author: "Frank Herbert"},
		{name: "whitespace category defaults", title: "Dune", author: "Frank Herbert", category: "   "},
		{name: "empty title", author: "Frank Herbert", wantField: "book title"},
		{name: "whitespace title", title: "   ", author: "Frank Herbert", wantField: "book title"},
		{name: "empty author", title: "Dune", wantField: "book author"},
		{name: "whitespace author", title: "Dune", author: "\t\n", wantField: "book author"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBook(tt.title, tt.author, tt.category)
			if tt.wantField != "" {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Dune", b.Title)
			assert.Equal(t, "Frank Herbert", b.Author)
			if tt.category == "" || tt.category == "   " {
				assert.Equal(t, DefaultCategory, b.Category)
			} else {
				assert.Equal(t, "Science Fiction", b.Category)
			}
			assert.Empty(t, b.DueDate)
		})
	}
}

func TestNewBookTrimsFields(t *testing.T) {
	b, err := NewBook("  Dune  ", " Frank Herbert ", "  Science Fiction ")
	require.NoError(t, err)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "Frank Herbert", b.Author)
	assert.Equal(t, "Science Fiction", b.Category)
}

func TestNewCheckedOutBook(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		author    string
		dueDate   string
		wantField string
	}{
		{name: "valid", title: "Dune", author: "Frank Herbert", dueDate: "2026-09-14"},
		{name: "missing title", author: "Frank Herbert", dueDate: "2026-09-14", wantField: "checked out book title"},
		{name: "missing author", title: "Dune", dueDate: "2026-09-14", wantField: "checked out book author"},
		{name: "missing due date", title: "Dune", author: "Frank Herbert", wantField: "checked out book due date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, err := NewCheckedOutBook(tt.title, tt.author, tt.dueDate)
			if tt.wantField != "" {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2026-09-14", cb.DueDate)
		})
	}
}

func TestNewMember(t *testing.T) {
	m, err := NewMember("  Alice  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", m.Name)
	assert.Empty(t, m.Books)
	assert.NotNil(t, m.CheckedOut)

	_, err = NewMember("   ")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "member name", vErr.Field)
}

func TestMemberBookList(t *testing.T) {
	m, err := NewMember("Alice")
	require.NoError(t, err)

	m.AddBook("Dune")
	m.AddBook("1984")
	m.AddBook("Dune") // idempotent
	assert.Equal(t, []string{"Dune", "1984"}, m.Books)

	// membership is exact, not case-insensitive
	assert.True(t, m.HasBook("Dune"))
	assert.False(t, m.HasBook("dune"))

	m.CheckedOut["Dune"] = CheckedOutBook{Title: "Dune", Author: "Frank Herbert", DueDate: "2026-09-14"}
	assert.True(t, m.RemoveBook("Dune"))
	assert.False(t, m.RemoveBook("Dune"))
	assert.Equal(t, []string{"1984"}, m.Books)
	assert.NotContains(t, m.CheckedOut, "Dune")
}
