package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"library-circulation/config"
	"library-circulation/library"
)

func main() {
	// A missing .env is fine; the environment and defaults cover everything.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "library",
		Short:        "Track a library's catalog, members, and book circulation",
		SilenceUsage: true,
	}

	root.AddCommand(
		newAddBookCmd(logger),
		newAddMemberCmd(logger),
		newIssueCmd(logger),
		newReturnCmd(logger),
		newBooksCmd(logger),
		newMembersCmd(logger),
		newMemberBooksCmd(logger),
		newSearchCmd(logger),
		newOverdueCmd(logger),
		newCategoriesCmd(logger),
		newHistoryCmd(logger),
	)
	return root
}

// openManager loads the catalog from the configured data files. A corrupt
// data file aborts the command; the operator decides what to do with it.
func openManager(logger *slog.Logger) (*library.LibraryManager, error) {
	cfg := config.NewConfig()
	mgr, err := library.NewLibraryManager(library.ManagerConfig{
		BooksFile:   cfg.Data.BooksFile,
		MembersFile: cfg.Data.MembersFile,
		LedgerFile:  cfg.Data.LedgerFile,
		LoanDays:    cfg.Loan.PeriodDays,
		Logger:      logger,
	})
	if err != nil {
		if errors.Is(err, library.ErrCorruptData) {
			return nil, fmt.Errorf("%w\nfix or remove the file under %s to continue", err, cfg.Data.Dir)
		}
		return nil, err
	}
	return mgr, nil
}

func newAddBookCmd(logger *slog.Logger) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "add-book TITLE AUTHOR",
		Short: "Add a book to the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			b, err := mgr.AddBook(args[0], args[1], category)
			if err != nil {
				return err
			}
			if err := mgr.Save(); err != nil {
				return err
			}
			fmt.Printf("Added book %q by %s (%s)\n", b.Title, b.Author, b.Category)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "book category (default General)")
	return cmd
}

func newAddMemberCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "add-member NAME",
		Short: "Register a library member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			m, err := mgr.AddMember(args[0])
			if err != nil {
				return err
			}
			if err := mgr.Save(); err != nil {
				return err
			}
			fmt.Printf("Added member %q\n", m.Name)
			return nil
		},
	}
}

func newIssueCmd(logger *slog.Logger) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "issue TITLE MEMBER",
		Short: "Check a book out to a member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("days") {
				err = mgr.IssueBookFor(args[0], args[1], days)
			} else {
				err = mgr.IssueBook(args[0], args[1])
			}
			if err != nil {
				return err
			}
			if err := mgr.Save(); err != nil {
				return err
			}
			fmt.Printf("Issued %q to %s\n", args[0], args[1])
			return nil
		},
	}
	cmd.Flags().IntVarP(&days, "days", "d", 0, "loan period in days (default from config)")
	return cmd
}

func newReturnCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "return TITLE MEMBER AUTHOR",
		Short: "Return a book from a member",
		Long: "Return a book from a member. The author is required to rebuild " +
			"the catalog entry, because the shelved copy was removed at issue time.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			if err := mgr.ReturnBook(args[0], args[1], args[2]); err != nil {
				return err
			}
			if err := mgr.Save(); err != nil {
				return err
			}
			fmt.Printf("Returned %q from %s\n", args[0], args[1])
			return nil
		},
	}
}

func newBooksCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List all available books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			printBooks(mgr.AvailableBooks())
			return nil
		},
	}
}

func newMembersCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List all members and their checked out books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			members := mgr.Members()
			if len(members) == 0 {
				fmt.Println("No members registered.")
				return nil
			}
			fmt.Printf("%-30s %s\n", "Name", "Books Checked Out")
			fmt.Println(strings.Repeat("-", 80))
			for _, m := range members {
				books := "none"
				if len(m.Books) > 0 {
					books = strings.Join(m.Books, ", ")
				}
				fmt.Printf("%-30s %s\n", truncateString(m.Name, 30), books)
			}
			return nil
		},
	}
}

func newMemberBooksCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "member-books NAME",
		Short: "List the books checked out by one member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			titles, err := mgr.MemberBooks(args[0])
			if err != nil {
				return err
			}
			if len(titles) == 0 {
				fmt.Printf("%s has no books checked out.\n", args[0])
				return nil
			}
			for _, t := range titles {
				fmt.Println(t)
			}
			return nil
		},
	}
}

func newSearchCmd(logger *slog.Logger) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search available books by title, author, or both",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			results := mgr.SearchBooks(args[0], library.SearchMode(mode))
			if len(results) == 0 {
				fmt.Printf("No books found matching %q.\n", args[0])
				return nil
			}
			fmt.Printf("Found %d book(s) matching %q:\n", len(results), args[0])
			printBooks(results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "both", "search mode: title, author, or both")
	return cmd
}

func newOverdueCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List all overdue loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			overdue := mgr.OverdueBooks()
			if len(overdue) == 0 {
				fmt.Println("No overdue books.")
				return nil
			}
			fmt.Printf("%-30s %-40s %s\n", "Member", "Title", "Days Overdue")
			fmt.Println(strings.Repeat("-", 85))
			for _, o := range overdue {
				fmt.Printf("%-30s %-40s %d\n",
					truncateString(o.Member, 30), truncateString(o.Title, 40), o.DaysOverdue)
			}
			return nil
		},
	}
}

func newCategoriesCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [CATEGORY]",
		Short: "List categories, or the available books in one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				categories := mgr.Categories()
				if len(categories) == 0 {
					fmt.Println("No categories.")
					return nil
				}
				for _, c := range categories {
					fmt.Printf("%s (%d)\n", c, len(mgr.BooksByCategory(c)))
				}
				return nil
			}
			books := mgr.BooksByCategory(args[0])
			if len(books) == 0 {
				fmt.Printf("No available books in category %q.\n", args[0])
				return nil
			}
			printBooks(books)
			return nil
		},
	}
}

func newHistoryCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the transaction ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager(logger)
			if err != nil {
				return err
			}
			lines, err := mgr.TransactionHistory()
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				fmt.Println("No transactions recorded.")
				return nil
			}
			for _, line := range lines {
				fmt.Println(line)
			}
			return nil
		},
	}
}

func printBooks(books []*library.Book) {
	if len(books) == 0 {
		fmt.Println("No books available in the library.")
		return
	}
	fmt.Printf("%-40s %-30s %s\n", "Title", "Author", "Category")
	fmt.Println(strings.Repeat("-", 90))
	for _, b := range books {
		fmt.Printf("%-40s %-30s %s\n",
			truncateString(b.Title, 40), truncateString(b.Author, 30), b.Category)
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
