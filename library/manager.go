package library

import (
	"log/slog"
	"time"
)

// LibraryManager is a thin façade over the catalog, keeping CLI code simple.
// It wires the DataManager and the Library together and loads persisted
// state up front.
type LibraryManager struct {
	lib  *Library
	data *DataManager
}

// ManagerConfig carries the knobs a LibraryManager needs. The zero value of
// LoanDays means "use the default"; a nil Clock means time.Now.
type ManagerConfig struct {
	BooksFile   string
	MembersFile string
	LedgerFile  string
	LoanDays    int
	Clock       func() time.Time
	Logger      *slog.Logger
}

// NewLibraryManager opens (or creates) the data files and loads the catalog.
// A missing file starts empty; a corrupt one surfaces ErrCorruptData and the
// caller decides whether to start over or abort.
func NewLibraryManager(cfg ManagerConfig) (*LibraryManager, error) {
	data, err := NewDataManager(cfg.BooksFile, cfg.MembersFile, cfg.LedgerFile)
	if err != nil {
		return nil, err
	}

	opts := []Option{}
	if cfg.LoanDays != 0 {
		opts = append(opts, WithLoanPeriod(cfg.LoanDays))
	}
	if cfg.Clock != nil {
		opts = append(opts, WithClock(cfg.Clock))
	}
	if cfg.Logger != nil {
		opts = append(opts, WithLogger(cfg.Logger))
	}

	lib := NewLibrary(data, opts...)
	if err := lib.Load(); err != nil {
		return nil, err
	}
	return &LibraryManager{lib: lib, data: data}, nil
}

// Save persists the current catalog state.
func (lm *LibraryManager) Save() error { return lm.lib.Save() }

// ------------------ Book helpers ------------------

// AddBook validates and shelves a new book.
func (lm *LibraryManager) AddBook(title, author, category string) (*Book, error) {
	b, err := NewBook(title, author, category)
	if err != nil {
		return nil, err
	}
	lm.lib.AddBook(b)
	return b, nil
}

func (lm *LibraryManager) FindBook(title string) *Book { return lm.lib.FindBook(title) }
func (lm *LibraryManager) AvailableBooks() []*Book     { return lm.lib.AvailableBooks() }

// ------------------ Member helpers ------------------

// AddMember validates and registers a new member.
func (lm *LibraryManager) AddMember(name string) (*Member, error) {
	m, err := NewMember(name)
	if err != nil {
		return nil, err
	}
	if err := lm.lib.AddMember(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (lm *LibraryManager) FindMember(name string) *Member { return lm.lib.FindMember(name) }
func (lm *LibraryManager) Members() []*Member             { return lm.lib.Members() }

func (lm *LibraryManager) MemberBooks(name string) ([]string, error) {
	return lm.lib.MemberBooks(name)
}

// ------------------ Circulation ------------------

// IssueBook checks a book out with the configured loan period.
func (lm *LibraryManager) IssueBook(title, memberName string) error {
	return lm.lib.IssueDefault(title, memberName)
}

// IssueBookFor checks a book out with an explicit loan period in days.
func (lm *LibraryManager) IssueBookFor(title, memberName string, days int) error {
	return lm.lib.Issue(title, memberName, days)
}

// ReturnBook takes a book back and reshelves it under the supplied author.
func (lm *LibraryManager) ReturnBook(title, memberName, author string) error {
	return lm.lib.Return(title, memberName, author)
}

func (lm *LibraryManager) OverdueBooks() []OverdueBook { return lm.lib.OverdueBooks() }

// ------------------ Search ------------------

func (lm *LibraryManager) SearchBooks(query string, mode SearchMode) []*Book {
	return lm.lib.SearchBooks(query, mode)
}

func (lm *LibraryManager) BooksByCategory(category string) []*Book {
	return lm.lib.BooksByCategory(category)
}

func (lm *LibraryManager) Categories() []string { return lm.lib.Categories() }

// ------------------ Ledger ------------------

func (lm *LibraryManager) TransactionHistory() ([]string, error) {
	return lm.data.TransactionHistory()
}
