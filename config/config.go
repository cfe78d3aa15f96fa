package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config carries the environment-driven settings for the circulation
// tracker. Every knob has a default so the CLI works out of the box.
type Config struct {
	Data Data
	Loan Loan
}

type Data struct {
	Dir         string // Directory holding the flat data files
	BooksFile   string
	MembersFile string
	LedgerFile  string
}

type Loan struct {
	PeriodDays int // Default loan period for issued books
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("library_data_dir", "data")
	v.SetDefault("library_books_file", "books.json")
	v.SetDefault("library_members_file", "members.json")
	v.SetDefault("library_ledger_file", "ledger.txt")
	v.SetDefault("library_loan_days", 14)

	dir := v.GetString("LIBRARY_DATA_DIR")

	return &Config{
		Data: Data{
			Dir:         dir,
			BooksFile:   filepath.Join(dir, v.GetString("LIBRARY_BOOKS_FILE")),
			MembersFile: filepath.Join(dir, v.GetString("LIBRARY_MEMBERS_FILE")),
			LedgerFile:  filepath.Join(dir, v.GetString("LIBRARY_LEDGER_FILE")),
		},
		Loan: Loan{
			PeriodDays: v.GetInt("LIBRARY_LOAN_DAYS"),
		},
	}
}
