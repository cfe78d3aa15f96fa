package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDataManager(t *testing.T) (*DataManager, string) {
	t.Helper()
	dir := t.TempDir()
	dm, err := NewDataManager(
		filepath.Join(dir, "books.json"),
		filepath.Join(dir, "members.json"),
		filepath.Join(dir, "ledger.txt"),
	)
	require.NoError(t, err)
	return dm, dir
}

func TestLoadBooksMissingFile(t *testing.T) {
	dm, _ := newTestDataManager(t)
	books, err := dm.LoadBooks()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestLoadBooksCorruptFile(t *testing.T) {
	dm, dir := newTestDataManager(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "books.json"), []byte("{not json"), 0o644))

	_, err := dm.LoadBooks()
	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestLoadBooksSalvagesGoodRecords(t *testing.T) {
	dm, dir := newTestDataManager(t)
	// five entries, two malformed: one non-object, one missing the author
	raw := `[
		{"title": "Dune", "author": "Frank Herbert", "category": "Science Fiction", "due_date": null},
		"not an object",
		{"title": "1984", "author": "George Orwell"},
		{"title": "No Author Here"},
		{"title": "Foundation", "author": "Isaac Asimov", "due_date": "2026-09-14"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "books.json"), []byte(raw), 0o644))

	books, err := dm.LoadBooks()
	require.NoError(t, err)
	require.Len(t, books, 3)

	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "Science Fiction", books[0].Category)
	assert.Empty(t, books[0].DueDate)

	assert.Equal(t, "1984", books[1].Title)
	assert.Equal(t, DefaultCategory, books[1].Category, "missing category defaults")

	assert.Equal(t, "2026-09-14", books[2].DueDate)
}

func TestBooksRoundTrip(t *testing.T) {
	dm, _ := newTestDataManager(t)

	onLoan := &Book{Title: "Foundation", Author: "Isaac Asimov", Category: "Science Fiction", DueDate: "2026-09-14"}
	books := []*Book{
		{Title: "Dune", Author: "Frank Herbert", Category: "Science Fiction"},
		onLoan,
	}
	require.NoError(t, dm.SaveBooks(books))

	loaded, err := dm.LoadBooks()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, *books[0], *loaded[0])
	assert.Equal(t, *onLoan, *loaded[1])
}

func TestLoadMembersSalvageAndLegacy(t *testing.T) {
	dm, dir := newTestDataManager(t)
	raw := `[
		{"name": "Alice", "books": ["Dune"], "checked_out_books": {
			"Dune": {"title": "Dune", "author": "Frank Herbert", "due_date": "2026-09-14"},
			"Broken": {"title": "Broken", "author": ""}
		}},
		{"name": "Bob", "books": ["Old Tome"]},
		{"nickname": "no name key"},
		42
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "members.json"), []byte(raw), 0o644))

	members, err := dm.LoadMembers()
	require.NoError(t, err)
	require.Len(t, members, 2)

	alice := members[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, []string{"Dune"}, alice.Books)
	assert.Contains(t, alice.CheckedOut, "Dune")
	assert.NotContains(t, alice.CheckedOut, "Broken", "invalid loan detail is dropped")

	bob := members[1]
	assert.Equal(t, []string{"Old Tome"}, bob.Books)
	assert.Empty(t, bob.CheckedOut, "legacy member loads without detail records")
	assert.NotNil(t, bob.CheckedOut)
}

func TestMembersRoundTrip(t *testing.T) {
	dm, _ := newTestDataManager(t)

	alice, err := NewMember("Alice")
	require.NoError(t, err)
	alice.AddBook("Dune")
	alice.CheckedOut["Dune"] = CheckedOutBook{Title: "Dune", Author: "Frank Herbert", DueDate: "2026-09-14"}

	require.NoError(t, dm.SaveMembers([]*Member{alice}))

	loaded, err := dm.LoadMembers()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, alice.Name, loaded[0].Name)
	assert.Equal(t, alice.Books, loaded[0].Books)
	assert.Equal(t, alice.CheckedOut, loaded[0].CheckedOut)
}

func TestLedger(t *testing.T) {
	dm, _ := newTestDataManager(t)

	history, err := dm.TransactionHistory()
	require.NoError(t, err)
	assert.Empty(t, history, "no ledger yet")

	at := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	require.NoError(t, dm.LogTransaction("Issued", "Dune", "Alice", at))
	require.NoError(t, dm.LogTransaction("Returned", "Dune", "Alice", at.Add(time.Hour)))

	history, err = dm.TransactionHistory()
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, `2026-08-31T15:30:00Z - Issued "Dune" to Alice`, history[0])
	assert.Equal(t, `2026-08-31T16:30:00Z - Returned "Dune" from Alice`, history[1])
	assert.False(t, strings.HasSuffix(history[1], "\n"))
}
