package library

import "strings"

// DefaultCategory is assigned to books created without a category.
const DefaultCategory = "General"

// Book represents a single physical copy in the catalog. A non-empty DueDate
// (ISO 8601, YYYY-MM-DD) marks the copy as checked out; the authoritative
// loan record lives on the borrowing Member.
type Book struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	DueDate  string `json:"due_date,omitempty"`
}

// NewBook validates and builds an available book. Title and author must be
// non-empty after trimming; a blank category defaults to DefaultCategory.
func NewBook(title, author, category string) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	category = strings.TrimSpace(category)

	if title == "" {
		return nil, &ValidationError{Field: "book title"}
	}
	if author == "" {
		return nil, &ValidationError{Field: "book author"}
	}
	if category == "" {
		category = DefaultCategory
	}

	return &Book{Title: title, Author: author, Category: category}, nil
}

// CheckedOutBook is a denormalized snapshot of a loan, stored per member.
// It survives independently of the catalog copy, which is off the shelf
// while the loan is active.
type CheckedOutBook struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	DueDate string `json:"due_date"`
}

// NewCheckedOutBook validates and builds a loan snapshot. All three fields
// are required.
func NewCheckedOutBook(title, author, dueDate string) (*CheckedOutBook, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	dueDate = strings.TrimSpace(dueDate)

	if title == "" {
		return nil, &ValidationError{Field: "checked out book title"}
	}
	if author == "" {
		return nil, &ValidationError{Field: "checked out book author"}
	}
	if dueDate == "" {
		return nil, &ValidationError{Field: "checked out book due date"}
	}

	return &CheckedOutBook{Title: title, Author: author, DueDate: dueDate}, nil
}

// Member represents a registered library member. Books holds the titles
// currently on loan in checkout order; CheckedOut carries the per-title loan
// details. Legacy data may populate Books without CheckedOut entries; such
// loans have an unknown due date and are never reported overdue.
type Member struct {
	Name       string                    `json:"name"`
	Books      []string                  `json:"books"`
	CheckedOut map[string]CheckedOutBook `json:"checked_out_books"`
}

// NewMember validates and builds a member with no active loans.
func NewMember(name string) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "member name"}
	}
	return &Member{
		Name:       name,
		Books:      []string{},
		CheckedOut: map[string]CheckedOutBook{},
	}, nil
}

// HasBook reports whether the member currently holds the exact title.
func (m *Member) HasBook(title string) bool {
	for _, t := range m.Books {
		if t == title {
			return true
		}
	}
	return false
}

// AddBook appends the title to the member's loans unless already present.
func (m *Member) AddBook(title string) {
	if !m.HasBook(title) {
		m.Books = append(m.Books, title)
	}
}

// RemoveBook removes the title from the member's loans and reports whether
// it was held. The detail record, if any, is removed alongside.
func (m *Member) RemoveBook(title string) bool {
	for i, t := range m.Books {
		if t == title {
			m.Books = append(m.Books[:i], m.Books[i+1:]...)
			delete(m.CheckedOut, title)
			return true
		}
	}
	return false
}
