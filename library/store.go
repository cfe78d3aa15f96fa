package library

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Library is the in-memory catalog: the books currently on the shelf and the
// registered members. A title held by some member must not simultaneously
// appear on the shelf; the circulation methods maintain that exclusion.
//
// The catalog assumes a single owner goroutine. Callers that want concurrent
// access must add their own locking around it.
type Library struct {
	books   []*Book
	members []*Member

	now      func() time.Time
	loanDays int
	data     *DataManager
	log      *slog.Logger
}

// Option configures a Library.
type Option func(*Library)

// WithClock overrides the time source used for due dates and ledger
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Library) { l.now = now }
}

// WithLoanPeriod overrides the default loan period in calendar days.
func WithLoanPeriod(days int) Option {
	return func(l *Library) { l.loanDays = days }
}

// WithLogger overrides the logger used for swallowed ledger failures.
func WithLogger(log *slog.Logger) Option {
	return func(l *Library) { l.log = log }
}

// DefaultLoanDays is the loan period applied when none is configured.
const DefaultLoanDays = 14

// NewLibrary creates an empty catalog backed by the given DataManager.
func NewLibrary(data *DataManager, opts ...Option) *Library {
	l := &Library{
		books:    []*Book{},
		members:  []*Member{},
		now:      time.Now,
		loanDays: DefaultLoanDays,
		data:     data,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoanDays returns the configured default loan period.
func (l *Library) LoanDays() int { return l.loanDays }

// AddBook puts a book on the shelf. Duplicate titles are legal; multiple
// physical copies are modeled as distinct entries.
func (l *Library) AddBook(b *Book) {
	l.books = append(l.books, b)
}

// AddMember registers a member. Names are unique case-insensitively.
func (l *Library) AddMember(m *Member) error {
	if l.FindMember(m.Name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateMember, m.Name)
	}
	l.members = append(l.members, m)
	return nil
}

// FindBook returns the first shelved book whose title matches
// case-insensitively, or nil. With duplicate titles the first copy wins.
func (l *Library) FindBook(title string) *Book {
	for _, b := range l.books {
		if strings.EqualFold(b.Title, title) {
			return b
		}
	}
	return nil
}

// FindMember returns the first member whose name matches case-insensitively,
// or nil.
func (l *Library) FindMember(name string) *Member {
	for _, m := range l.members {
		if strings.EqualFold(m.Name, name) {
			return m
		}
	}
	return nil
}

// AvailableBooks returns a copy of the shelf list.
func (l *Library) AvailableBooks() []*Book {
	out := make([]*Book, len(l.books))
	copy(out, l.books)
	return out
}

// Members returns a copy of the member list.
func (l *Library) Members() []*Member {
	out := make([]*Member, len(l.members))
	copy(out, l.members)
	return out
}

// MemberBooks returns a copy of the titles currently checked out by the
// named member.
func (l *Library) MemberBooks(name string) ([]string, error) {
	m := l.FindMember(name)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrMemberNotFound, name)
	}
	out := make([]string, len(m.Books))
	copy(out, m.Books)
	return out, nil
}

// Load replaces the in-memory state with the persisted one.
func (l *Library) Load() error {
	books, err := l.data.LoadBooks()
	if err != nil {
		return fmt.Errorf("load library data: %w", err)
	}
	members, err := l.data.LoadMembers()
	if err != nil {
		return fmt.Errorf("load library data: %w", err)
	}
	l.books = books
	l.members = members
	return nil
}

// Save writes the full in-memory state back to the data files.
func (l *Library) Save() error {
	if err := l.data.SaveBooks(l.books); err != nil {
		return fmt.Errorf("save library data: %w", err)
	}
	if err := l.data.SaveMembers(l.members); err != nil {
		return fmt.Errorf("save library data: %w", err)
	}
	return nil
}
