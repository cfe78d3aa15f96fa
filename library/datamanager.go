package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DataManager persists catalog state as flat JSON arrays and keeps an
// append-only transaction ledger. Saves overwrite the whole file; a crash
// mid-write can corrupt it. That durability gap is part of the contract.
type DataManager struct {
	booksFile   string
	membersFile string
	ledgerFile  string
}

// NewDataManager builds a DataManager over the three file paths, creating
// parent directories so first-run saves succeed.
func NewDataManager(booksFile, membersFile, ledgerFile string) (*DataManager, error) {
	for _, f := range []string{booksFile, membersFile, ledgerFile} {
		if dir := filepath.Dir(f); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
		}
	}
	return &DataManager{
		booksFile:   booksFile,
		membersFile: membersFile,
		ledgerFile:  ledgerFile,
	}, nil
}

type bookRecord struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	DueDate  string `json:"due_date"`
}

type memberRecord struct {
	Name       string                      `json:"name"`
	Books      []string                    `json:"books"`
	CheckedOut map[string]checkedOutRecord `json:"checked_out_books"`
}

type checkedOutRecord struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	DueDate string `json:"due_date"`
}

// LoadBooks reads the books file. A missing file yields an empty catalog.
// A file that does not parse as a JSON array yields ErrCorruptData. Inside
// a parseable array, recovery is record by record: entries that are not
// objects or fail book validation are dropped and the rest survive.
func (dm *DataManager) LoadBooks() ([]*Book, error) {
	raw, err := readArray(dm.booksFile)
	if err != nil {
		return nil, err
	}

	books := []*Book{}
	for _, rec := range raw {
		var r bookRecord
		if err := json.Unmarshal(rec, &r); err != nil {
			continue
		}
		b, err := NewBook(r.Title, r.Author, r.Category)
		if err != nil {
			continue
		}
		b.DueDate = strings.TrimSpace(r.DueDate)
		books = append(books, b)
	}
	return books, nil
}

// SaveBooks overwrites the books file with the full list.
func (dm *DataManager) SaveBooks(books []*Book) error {
	return writeArray(dm.booksFile, books)
}

// LoadMembers reads the members file with the same salvage policy as
// LoadBooks. Legacy records without checked_out_books load fine; malformed
// loan detail entries are dropped individually.
func (dm *DataManager) LoadMembers() ([]*Member, error) {
	raw, err := readArray(dm.membersFile)
	if err != nil {
		return nil, err
	}

	members := []*Member{}
	for _, rec := range raw {
		var r memberRecord
		if err := json.Unmarshal(rec, &r); err != nil {
			continue
		}
		m, err := NewMember(r.Name)
		if err != nil {
			continue
		}
		if len(r.Books) > 0 {
			m.Books = append(m.Books, r.Books...)
		}
		for title, co := range r.CheckedOut {
			cb, err := NewCheckedOutBook(co.Title, co.Author, co.DueDate)
			if err != nil {
				continue
			}
			m.CheckedOut[title] = *cb
		}
		members = append(members, m)
	}
	return members, nil
}

// SaveMembers overwrites the members file with the full list.
func (dm *DataManager) SaveMembers(members []*Member) error {
	return writeArray(dm.membersFile, members)
}

// LogTransaction appends one ledger line:
//
//	<RFC3339 timestamp> - <Issued|Returned> "<title>" <to|from> <member>
func (dm *DataManager) LogTransaction(action, title, member string, at time.Time) error {
	direction := "from"
	if action == "Issued" {
		direction = "to"
	}
	line := fmt.Sprintf("%s - %s %q %s %s\n", at.Format(time.RFC3339), action, title, direction, member)

	f, err := os.OpenFile(dm.ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: ledger: %v", ErrIOFailure, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("%w: ledger: %v", ErrIOFailure, err)
	}
	return nil
}

// TransactionHistory returns every ledger line, oldest first, or an empty
// slice when no ledger exists yet.
func (dm *DataManager) TransactionHistory() ([]string, error) {
	data, err := os.ReadFile(dm.ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return []string{}, nil
	}
	return lines, nil
}

func readArray(path string) ([]jsoniter.RawMessage, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, filepath.Base(path), err)
	}
	return raw, nil
}

func writeArray(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIOFailure, filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIOFailure, filepath.Base(path), err)
	}
	return nil
}
