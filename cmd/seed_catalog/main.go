package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"library-circulation/config"
	"library-circulation/library"
)

// seedBooks maps title -> {author, category}.
var seedBooks = map[string][2]string{
	"1984":                       {"George Orwell", "Dystopian"},
	"Animal Farm":                {"George Orwell", "Dystopian"},
	"Dune":                       {"Frank Herbert", "Science Fiction"},
	"Foundation":                 {"Isaac Asimov", "Science Fiction"},
	"The Fellowship of the Ring": {"J.R.R. Tolkien", "Fantasy"},
	"The Two Towers":             {"J.R.R. Tolkien", "Fantasy"},
	"The Return of the King":     {"J.R.R. Tolkien", "Fantasy"},
	"Pride and Prejudice":        {"Jane Austen", "Romance"},
	"Romeo and Juliet":           {"William Shakespeare", "Drama"},
	"The Great Gatsby":           {"F. Scott Fitzgerald", "Literature"},
	"The Art of War":             {"Sun Tzu", "Philosophy"},
	"The Three Musketeers":       {"Alexandre Dumas", "Adventure"},
	"The Pragmatic Programmer":   {"Andrew Hunt", "Technical"},
	"Python Crash Course":        {"Eric Matthes", "Technical"},
	"A Brief History of Time":    {"Stephen Hawking", ""},
}

var seedMembers = []string{"Alice", "Bob", "Charlie", "Diana"}

func main() {
	_ = godotenv.Load()
	cfg := config.NewConfig()

	// Start from a clean slate so reseeding is repeatable.
	fmt.Println("Cleaning up existing data files...")
	for _, file := range []string{cfg.Data.BooksFile, cfg.Data.MembersFile, cfg.Data.LedgerFile} {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			fmt.Printf("Warning: Could not remove %s: %v\n", file, err)
		}
	}
	fmt.Println("Data cleanup complete.")

	mgr, err := library.NewLibraryManager(library.ManagerConfig{
		BooksFile:   cfg.Data.BooksFile,
		MembersFile: cfg.Data.MembersFile,
		LedgerFile:  cfg.Data.LedgerFile,
		LoanDays:    cfg.Loan.PeriodDays,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}

	successCount := 0
	errorCount := 0

	fmt.Printf("Seeding %d books...\n", len(seedBooks))
	for title, meta := range seedBooks {
		fmt.Printf("Adding: %s by %s... ", title, meta[0])
		if _, err := mgr.AddBook(title, meta[0], meta[1]); err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}
		fmt.Println("SUCCESS")
		successCount++
	}

	fmt.Printf("Seeding %d members...\n", len(seedMembers))
	for _, name := range seedMembers {
		fmt.Printf("Adding: %s... ", name)
		if _, err := mgr.AddMember(name); err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}
		fmt.Println("SUCCESS")
		successCount++
	}

	if err := mgr.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSeeding complete!\n")
	fmt.Printf("Successfully added: %d records\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)
	fmt.Printf("Catalog now holds %d books in %d categories and %d members.\n",
		len(mgr.AvailableBooks()), len(mgr.Categories()), len(mgr.Members()))
}
