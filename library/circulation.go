package library

import (
	"fmt"
	"time"
)

// dueDateLayout is the ISO 8601 date format used for due dates.
const dueDateLayout = "2006-01-02"

// Issue checks the first shelved copy of title out to the named member for
// the given number of calendar days. A title already on loan is simply not
// on the shelf, so issuing it again fails with ErrBookNotFound.
//
// The ledger append is best effort: a write failure is logged and swallowed,
// and the issue still succeeds.
func (l *Library) Issue(title, memberName string, days int) error {
	book := l.FindBook(title)
	if book == nil {
		return fmt.Errorf("%w: %q is not available", ErrBookNotFound, title)
	}

	member := l.FindMember(memberName)
	if member == nil {
		return fmt.Errorf("%w: %q", ErrMemberNotFound, memberName)
	}

	l.removeBook(book)

	due := l.today().AddDate(0, 0, days).Format(dueDateLayout)
	book.DueDate = due // vestigial; the member's detail record is authoritative

	member.AddBook(book.Title)
	if member.CheckedOut == nil {
		member.CheckedOut = map[string]CheckedOutBook{}
	}
	member.CheckedOut[book.Title] = CheckedOutBook{
		Title:   book.Title,
		Author:  book.Author,
		DueDate: due,
	}

	if err := l.data.LogTransaction("Issued", book.Title, member.Name, l.now()); err != nil {
		l.log.Warn("ledger write failed", "action", "Issued", "title", book.Title, "err", err)
	}
	return nil
}

// IssueDefault issues with the configured default loan period.
func (l *Library) IssueDefault(title, memberName string) error {
	return l.Issue(title, memberName, l.loanDays)
}

// Return takes the exact title back from the named member and reshelves it
// as a fresh available copy built from the caller-supplied author. The
// supplied author is authoritative even when it disagrees with history; the
// category is defaulted because the original copy was discarded at issue
// time.
func (l *Library) Return(title, memberName, author string) error {
	member := l.FindMember(memberName)
	if member == nil {
		return fmt.Errorf("%w: %q", ErrMemberNotFound, memberName)
	}

	if !member.HasBook(title) {
		return fmt.Errorf("%w: member %q does not have %q", ErrBookNotFound, member.Name, title)
	}

	member.RemoveBook(title)

	returned, err := NewBook(title, author, "")
	if err != nil {
		return err
	}
	l.books = append(l.books, returned)

	if err := l.data.LogTransaction("Returned", title, member.Name, l.now()); err != nil {
		l.log.Warn("ledger write failed", "action", "Returned", "title", title, "err", err)
	}
	return nil
}

// OverdueBook identifies one overdue loan.
type OverdueBook struct {
	Member      string
	Title       string
	DaysOverdue int
}

// OverdueBooks reports every loan whose due date is strictly before today,
// grouped by member in registration order, titles in checkout order. Loans
// with a missing or unparseable due date are skipped.
func (l *Library) OverdueBooks() []OverdueBook {
	today := l.today()
	var overdue []OverdueBook

	for _, m := range l.members {
		for _, title := range m.Books {
			rec, ok := m.CheckedOut[title]
			if !ok {
				continue // legacy loan, due date unknown
			}
			due, err := time.Parse(dueDateLayout, rec.DueDate)
			if err != nil {
				continue
			}
			if due.Before(today) {
				days := int(today.Sub(due).Hours() / 24)
				overdue = append(overdue, OverdueBook{
					Member:      m.Name,
					Title:       title,
					DaysOverdue: days,
				})
			}
		}
	}
	return overdue
}

// removeBook drops the given copy from the shelf.
func (l *Library) removeBook(book *Book) {
	for i, b := range l.books {
		if b == book {
			l.books = append(l.books[:i], l.books[i+1:]...)
			return
		}
	}
}

// today returns the clock's date truncated to midnight UTC, so day
// arithmetic against parsed due dates is exact.
func (l *Library) today() time.Time {
	t := l.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
