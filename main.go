package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"library-catalog/library"
)

// Config holds the application configuration.
type Config struct {
	DBPath    string
	BackupDir string
}

// loadConfig reads configuration from environment variables with defaults.
func loadConfig() Config {
	return Config{
		DBPath:    getEnv("LIBRARY_DB", "library.db"),
		BackupDir: getEnv("LIBRARY_BACKUP_DIR", "backups"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func initLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	initLogger()
	cfg := loadConfig()

	rootCmd := &cobra.Command{
		Use:   "libcat",
		Short: "Single-operator library catalog manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := library.NewManager(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer mgr.Close()
			log.Info().Str("db", cfg.DBPath).Msg("store opened")
			runSession(mgr, cfg)
			return nil
		},
	}

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot the database into the backup directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := library.NewManager(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer mgr.Close()
			dest, err := mgr.CreateBackup(cfg.BackupDir)
			if err != nil {
				return err
			}
			log.Info().Str("snapshot", dest).Msg("backup created")
			fmt.Println("Backup created at", dest)
			return nil
		},
	}

	restoreCmd := &cobra.Command{
		Use:   "restore <snapshot>",
		Short: "Replace the database with a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := library.NewManager(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer mgr.Close()
			if err := mgr.RestoreBackup(args[0]); err != nil {
				return err
			}
			log.Info().Str("snapshot", args[0]).Msg("database restored")
			fmt.Println("Database restored from", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(backupCmd, restoreCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// Interactive session
// ---------------------------------------------------------------------------

func runSession(mgr *library.Manager, cfg Config) {
	sc := bufio.NewScanner(os.Stdin)
	fmt.Println("=== Library Catalog Manager ===")

	for {
		fmt.Println("\n1) Login")
		fmt.Println("2) Exit")
		choice := prompt(sc, "Choice: ")
		switch choice {
		case "1":
			account, err := login(sc, mgr)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if account.Role == library.RoleAdmin {
				adminMenu(sc, mgr, cfg, account)
			} else {
				memberMenu(sc, mgr, account)
			}
		case "2", "":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func login(sc *bufio.Scanner, mgr *library.Manager) (*library.Account, error) {
	username := prompt(sc, "Username: ")
	password, err := readPassword("Password: ")
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return mgr.Authenticate(username, password)
}

// readPassword securely reads a password with masking.
func readPassword(label string) (string, error) {
	fmt.Print(label)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}

func adminMenu(sc *bufio.Scanner, mgr *library.Manager, cfg Config, account *library.Account) {
	for {
		fmt.Printf("\nLogged in as ADMIN: %s\n", account.Username)
		fmt.Println("1) Account Management")
		fmt.Println("2) Catalog Management")
		fmt.Println("3) Issue / Return")
		fmt.Println("4) Search & Filter")
		fmt.Println("5) Dashboard & Reports")
		fmt.Println("6) Backup / Restore")
		fmt.Println("7) Reset Any Account Password")
		fmt.Println("8) Change My Password")
		fmt.Println("0) Logout")
		switch prompt(sc, "Choice: ") {
		case "1":
			accountManagementMenu(sc, mgr)
		case "2":
			catalogManagementMenu(sc, mgr)
		case "3":
			issueReturnMenu(sc, mgr)
		case "4":
			searchFilterMenu(sc, mgr)
		case "5":
			reportsMenu(sc, mgr)
		case "6":
			backupRestoreMenu(sc, mgr, cfg)
		case "7":
			handleResetPassword(sc, mgr)
		case "8":
			handleChangePassword(sc, mgr, account.ID)
		case "0":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func memberMenu(sc *bufio.Scanner, mgr *library.Manager, account *library.Account) {
	for {
		fmt.Printf("\nLogged in as MEMBER: %s\n", account.Username)
		fmt.Println("1) Search Books")
		fmt.Println("2) My Loans")
		fmt.Println("3) Return Book")
		fmt.Println("4) Change My Password")
		fmt.Println("0) Logout")
		switch prompt(sc, "Choice: ") {
		case "1":
			handleSearchBooks(sc, mgr)
		case "2":
			handleMyLoans(mgr, account.ID)
		case "3":
			handleReturnLoan(sc, mgr)
		case "4":
			handleChangePassword(sc, mgr, account.ID)
		case "0":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

// ------------------ Account management ------------------

func accountManagementMenu(sc *bufio.Scanner, mgr *library.Manager) {
	for {
		fmt.Println("\nAccount Management")
		fmt.Println("1) Create account")
		fmt.Println("2) Update account")
		fmt.Println("3) Delete account")
		fmt.Println("4) List accounts")
		fmt.Println("0) Back")
		switch prompt(sc, "Choice: ") {
		case "1":
			handleCreateAccount(sc, mgr)
		case "2":
			handleUpdateAccount(sc, mgr)
		case "3":
			handleDeleteAccount(sc, mgr)
		case "4":
			handleListAccounts(mgr)
		case "0":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func handleCreateAccount(sc *bufio.Scanner, mgr *library.Manager) {
	username := prompt(sc, "Username: ")
	password, err := readPassword("Password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	role := library.Role(prompt(sc, "Role (admin/member): "))

	id, err := mgr.CreateAccount(username, password, role)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Created account '%s' with ID %d\n", username, id)
}

func handleUpdateAccount(sc *bufio.Scanner, mgr *library.Manager) {
	id, ok := promptID(sc, "Account ID to update: ")
	if !ok {
		return
	}
	newUsername := prompt(sc, "New username (leave blank to keep): ")
	newRole := prompt(sc, "New role (admin/member) (leave blank to keep): ")

	if err := mgr.UpdateAccount(id, newUsername, library.Role(newRole)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Account updated.")
}

func handleDeleteAccount(sc *bufio.Scanner, mgr *library.Manager) {
	id, ok := promptID(sc, "Account ID to delete: ")
	if !ok {
		return
	}
	if err := mgr.DeleteAccount(id); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Account deleted.")
}

func handleListAccounts(mgr *library.Manager) {
	accounts, err := mgr.GetAllAccounts()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts registered.")
		return
	}
	fmt.Printf("%-5s %-25s %-10s %-20s\n", "ID", "Username", "Role", "Created")
	fmt.Println(strings.Repeat("-", 65))
	for _, a := range accounts {
		fmt.Printf("%-5d %-25s %-10s %-20s\n",
			a.ID, truncateString(a.Username, 25), a.Role, a.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}

func handleResetPassword(sc *bufio.Scanner, mgr *library.Manager) {
	username := prompt(sc, "Username to reset: ")
	newPassword, err := readPassword(fmt.Sprintf("New password for %s: ", username))
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	if err := mgr.ResetPassword(username, newPassword); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Password reset for '%s'\n", username)
}

func handleChangePassword(sc *bufio.Scanner, mgr *library.Manager, accountID int64) {
	password, err := readPassword("New password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	confirm, err := readPassword("Confirm new password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	if err := mgr.ChangePassword(accountID, password, confirm); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Password changed successfully.")
}

// ------------------ Catalog management ------------------

func catalogManagementMenu(sc *bufio.Scanner, mgr *library.Manager) {
	for {
		fmt.Println("\nCatalog Management")
		fmt.Println("1) Add book")
		fmt.Println("2) Update book")
		fmt.Println("3) Override book status")
		fmt.Println("4) Delete book")
		fmt.Println("5) List all books")
		fmt.Println("0) Back")
		switch prompt(sc, "Choice: ") {
		case "1":
			handleAddBook(sc, mgr)
		case "2":
			handleUpdateBook(sc, mgr)
		case "3":
			handleOverrideStatus(sc, mgr)
		case "4":
			handleDeleteBook(sc, mgr)
		case "5":
			handleListBooks(mgr)
		case "0":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func handleAddBook(sc *bufio.Scanner, mgr *library.Manager) {
	title := prompt(sc, "Title: ")
	author := prompt(sc, "Author: ")
	category := prompt(sc, "Category: ")

	id, err := mgr.AddBook(title, author, category)
	if err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Added book ID %d\n", id)
}

func handleUpdateBook(sc *bufio.Scanner, mgr *library.Manager) {
	id, ok := promptID(sc, "Book ID to update: ")
	if !ok {
		return
	}
	book, err := mgr.GetBook(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Leave blank to keep existing value.")
	title := prompt(sc, fmt.Sprintf("Title [%s]: ", book.Title))
	author := prompt(sc, fmt.Sprintf("Author [%s]: ", book.Author))
	category := prompt(sc, fmt.Sprintf("Category [%s]: ", book.Category))

	if err := mgr.UpdateBook(id, title, author, category); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Book updated.")
}

func handleOverrideStatus(sc *bufio.Scanner, mgr *library.Manager) {
	id, ok := promptID(sc, "Book ID: ")
	if !ok {
		return
	}
	status := library.Status(prompt(sc, "Status (Available/Issued): "))
	fmt.Println("Warning: overriding status bypasses the loan records.")
	if err := mgr.OverrideBookStatus(id, status); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Status overridden.")
}

func handleDeleteBook(sc *bufio.Scanner, mgr *library.Manager) {
	id, ok := promptID(sc, "Book ID to delete: ")
	if !ok {
		return
	}
	if err := mgr.DeleteBook(id); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Book deleted.")
}

func handleListBooks(mgr *library.Manager) {
	books, err := mgr.GetAllBooks()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printBooks(books)
}

// ------------------ Issue & return ------------------

func issueReturnMenu(sc *bufio.Scanner, mgr *library.Manager) {
	for {
		fmt.Println("\nIssue & Return")
		fmt.Println("1) Issue book")
		fmt.Println("2) Return book")
		fmt.Println("3) List currently issued books")
		fmt.Println("0) Back")
		switch prompt(sc, "Choice: ") {
		case "1":
			handleIssueBook(sc, mgr)
		case "2":
			handleReturnLoan(sc, mgr)
		case "3":
			handleOpenLoans(mgr)
		case "0":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func handleIssueBook(sc *bufio.Scanner, mgr *library.Manager) {
	bookID, ok := promptID(sc, "Book ID to issue: ")
	if !ok {
		return
	}
	accountID, ok := promptID(sc, "Issue to Account ID: ")
	if !ok {
		return
	}

	var issueDate, dueDate time.Time
	if s := prompt(sc, "Issue date (YYYY-MM-DD) [today]: "); s != "" {
		var err error
		if issueDate, err = time.Parse(library.DateFormat, s); err != nil {
			fmt.Printf("Invalid date: %s\n", s)
			return
		}
	}
	if s := prompt(sc, "Due date (YYYY-MM-DD) [2 weeks from issue]: "); s != "" {
		var err error
		if dueDate, err = time.Parse(library.DateFormat, s); err != nil {
			fmt.Printf("Invalid date: %s\n", s)
			return
		}
	}

	loan, err := mgr.IssueBook(bookID, accountID, issueDate, dueDate)
	if err != nil {
		fmt.Printf("Error issuing book: %v\n", err)
		return
	}
	fmt.Printf("Book issued. Loan ID %d, due %s\n", loan.ID, loan.DueDate.Format(library.DateFormat))
}

func handleReturnLoan(sc *bufio.Scanner, mgr *library.Manager) {
	loanID, ok := promptID(sc, "Loan ID to return: ")
	if !ok {
		return
	}
	if err := mgr.ReturnLoan(loanID); err != nil {
		fmt.Printf("Error returning book: %v\n", err)
		return
	}
	fmt.Println("Book returned successfully.")
}

func handleOpenLoans(mgr *library.Manager) {
	loans, err := mgr.OpenLoans()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(loans) == 0 {
		fmt.Println("No currently issued books.")
		return
	}
	printLoans(loans)
}

func handleMyLoans(mgr *library.Manager, accountID int64) {
	loans, err := mgr.LoansForAccount(accountID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(loans) == 0 {
		fmt.Println("No loans for you.")
		return
	}
	printLoans(loans)
}

// ------------------ Search & filter ------------------

func searchFilterMenu(sc *bufio.Scanner, mgr *library.Manager) {
	for {
		fmt.Println("\nSearch & Filter")
		fmt.Println("1) Search books")
		fmt.Println("2) Filter by status")
		fmt.Println("0) Back")
		switch prompt(sc, "Choice: ") {
		case "1":
			handleSearchBooks(sc, mgr)
		case "2":
			handleFilterByStatus(sc, mgr)
		case "0":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func handleSearchBooks(sc *bufio.Scanner, mgr *library.Manager) {
	fmt.Println("Search by: 1) Title 2) Author 3) Category 4) Show all")
	var (
		books []*library.Book
		err   error
	)
	switch prompt(sc, "Choice: ") {
	case "1":
		books, err = mgr.SearchBooks(library.SearchByTitle, prompt(sc, "Title contains: "))
	case "2":
		books, err = mgr.SearchBooks(library.SearchByAuthor, prompt(sc, "Author contains: "))
	case "3":
		books, err = mgr.SearchBooks(library.SearchByCategory, prompt(sc, "Category contains: "))
	case "4":
		books, err = mgr.GetAllBooks()
	default:
		fmt.Println("Invalid choice.")
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printBooks(books)
}

func handleFilterByStatus(sc *bufio.Scanner, mgr *library.Manager) {
	fmt.Println("Filter by: 1) Available 2) Issued")
	var status library.Status
	switch prompt(sc, "Choice: ") {
	case "1":
		status = library.StatusAvailable
	case "2":
		status = library.StatusIssued
	default:
		fmt.Println("Invalid choice.")
		return
	}
	books, err := mgr.BooksByStatus(status)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printBooks(books)
}

// ------------------ Reports ------------------

func reportsMenu(sc *bufio.Scanner, mgr *library.Manager) {
	for {
		fmt.Println("\nDashboard & Reports")
		fmt.Println("1) Summary dashboard")
		fmt.Println("2) Top 5 most issued books")
		fmt.Println("3) Monthly issues trend")
		fmt.Println("4) Monthly returns trend")
		fmt.Println("5) Loans per account")
		fmt.Println("6) Category-wise availability")
		fmt.Println("0) Back")
		switch prompt(sc, "Choice: ") {
		case "1":
			handleDashboard(mgr)
		case "2":
			handleTopBooks(mgr)
		case "3":
			handleMonthCounts(mgr.LoansByMonth, "Issued")
		case "4":
			handleMonthCounts(mgr.ReturnsByMonth, "Returned")
		case "5":
			handleLoansPerAccount(mgr)
		case "6":
			handleCategoryAvailability(mgr)
		case "0":
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func handleDashboard(mgr *library.Manager) {
	stats, err := mgr.GetDashboardStats()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Summary Statistics:")
	fmt.Println("Total Books:", stats.TotalBooks)
	fmt.Println("Issued Books:", stats.IssuedBooks)
	fmt.Println("Available Books:", stats.AvailableBooks)
	fmt.Println("Total Accounts:", stats.TotalAccounts)
	fmt.Println("Open Loans:", stats.OpenLoans)
}

func handleTopBooks(mgr *library.Manager) {
	top, err := mgr.TopBooks(5)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(top) == 0 {
		fmt.Println("No data")
		return
	}
	fmt.Printf("%-5s %-35s %-25s %-12s\n", "ID", "Title", "Author", "TimesIssued")
	fmt.Println(strings.Repeat("-", 80))
	for _, b := range top {
		fmt.Printf("%-5d %-35s %-25s %-12d\n",
			b.BookID, truncateString(b.Title, 35), truncateString(b.Author, 25), b.Count)
	}
}

func handleMonthCounts(query func() ([]*library.MonthCount, error), label string) {
	counts, err := query()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(counts) == 0 {
		fmt.Println("No data")
		return
	}
	fmt.Printf("%-10s %-10s\n", "Month", label)
	fmt.Println(strings.Repeat("-", 22))
	for _, m := range counts {
		fmt.Printf("%-10s %-10d\n", m.Month, m.Count)
	}
}

func handleLoansPerAccount(mgr *library.Manager) {
	counts, err := mgr.LoansPerAccount()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(counts) == 0 {
		fmt.Println("No data")
		return
	}
	fmt.Printf("%-25s %-10s\n", "Username", "Loans")
	fmt.Println(strings.Repeat("-", 36))
	for _, c := range counts {
		fmt.Printf("%-25s %-10d\n", truncateString(c.Username, 25), c.Count)
	}
}

func handleCategoryAvailability(mgr *library.Manager) {
	counts, err := mgr.AvailableByCategory()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(counts) == 0 {
		fmt.Println("No data")
		return
	}
	fmt.Printf("%-25s %-10s\n", "Category", "Available")
	fmt.Println(strings.Repeat("-", 36))
	for _, c := range counts {
		fmt.Printf("%-25s %-10d\n", truncateString(c.Category, 25), c.Count)
	}
}

// ------------------ Backup & restore ------------------

func backupRestoreMenu(sc *bufio.Scanner, mgr *library.Manager, cfg Config) {
	fmt.Println("\n1) Backup database  2) Restore database")
	switch prompt(sc, "Choice: ") {
	case "1":
		dest, err := mgr.CreateBackup(cfg.BackupDir)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		log.Info().Str("snapshot", dest).Msg("backup created")
		fmt.Println("Backup created at", dest)
	case "2":
		snapshots, err := library.ListBackups(cfg.BackupDir)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(snapshots) == 0 {
			fmt.Println("No backups found.")
			return
		}
		for i, name := range snapshots {
			fmt.Printf("%d) %s\n", i+1, name)
		}
		choice, ok := promptID(sc, "Choose backup number to restore: ")
		if !ok || choice < 1 || choice > int64(len(snapshots)) {
			fmt.Println("Invalid choice.")
			return
		}
		src := snapshots[choice-1]
		if err := mgr.RestoreBackup(src); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		log.Info().Str("snapshot", src).Msg("database restored")
		fmt.Println("Database restored from", src)
	default:
		fmt.Println("Invalid choice.")
	}
}

// ------------------ Helpers ------------------

func prompt(sc *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

func promptID(sc *bufio.Scanner, label string) (int64, bool) {
	s := prompt(sc, label)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Printf("Invalid ID: %s\n", s)
		return 0, false
	}
	return id, true
}

func printBooks(books []*library.Book) {
	if len(books) == 0 {
		fmt.Println("No books found.")
		return
	}
	fmt.Printf("%-5s %-35s %-25s %-18s %-10s\n", "ID", "Title", "Author", "Category", "Status")
	fmt.Println(strings.Repeat("-", 95))
	for _, b := range books {
		fmt.Printf("%-5d %-35s %-25s %-18s %-10s\n",
			b.ID,
			truncateString(b.Title, 35),
			truncateString(b.Author, 25),
			truncateString(b.Category, 18),
			b.Status)
	}
}

func printLoans(loans []*library.LoanDetail) {
	fmt.Printf("%-7s %-7s %-35s %-20s %-12s %-12s %-9s\n",
		"LoanID", "BookID", "Title", "Borrower", "Issued", "Due", "Returned")
	fmt.Println(strings.Repeat("-", 105))
	for _, l := range loans {
		returned := "No"
		if l.Returned {
			returned = "Yes"
		}
		fmt.Printf("%-7d %-7d %-35s %-20s %-12s %-12s %-9s\n",
			l.ID, l.BookID,
			truncateString(l.Title, 35),
			truncateString(l.Username, 20),
			l.IssueDate.Format(library.DateFormat),
			l.DueDate.Format(library.DateFormat),
			returned)
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
