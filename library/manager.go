package library

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Manager is a thin façade over the Database, keeping CLI code simple. It
// owns input validation and credential hashing; the Database owns SQL.
type Manager struct {
	db *Database
}

// NewManager opens (or creates) the SQLite database at dbPath.
func NewManager(dbPath string) (*Manager, error) {
	db, err := NewDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	return &Manager{db: db}, nil
}

// Close closes the underlying database.
func (m *Manager) Close() error { return m.db.Close() }

// ------------------ Account helpers ------------------

// CreateAccount validates the inputs, hashes the secret with bcrypt and
// stores the account.
func (m *Manager) CreateAccount(username, password string, role Role) (int64, error) {
	if strings.TrimSpace(username) == "" {
		return 0, fmt.Errorf("username cannot be blank: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(password) == "" {
		return 0, fmt.Errorf("password cannot be blank: %w", ErrInvalidInput)
	}
	if !role.Valid() {
		return 0, fmt.Errorf("role %q: %w", role, ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	return m.db.CreateAccount(strings.TrimSpace(username), string(hash), role)
}

// Authenticate verifies username/secret and yields the account on success.
// Missing accounts and wrong secrets report the same error.
func (m *Manager) Authenticate(username, password string) (*Account, error) {
	account, err := m.db.GetAccountByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("invalid username or password: %w", ErrNotFound)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("invalid username or password: %w", ErrNotFound)
	}
	return account, nil
}

// ChangePassword sets a new secret for an account. Both entered values must
// match before the change is accepted.
func (m *Manager) ChangePassword(accountID int64, password, confirm string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be blank: %w", ErrInvalidInput)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match: %w", ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return m.db.SetPasswordHash(accountID, string(hash))
}

// ResetPassword lets an admin set any account's secret by username, without
// knowing the old one.
func (m *Manager) ResetPassword(username, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return fmt.Errorf("password cannot be blank: %w", ErrInvalidInput)
	}
	account, err := m.db.GetAccountByUsername(username)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return m.db.SetPasswordHash(account.ID, string(hash))
}

func (m *Manager) GetAccount(id int64) (*Account, error) { return m.db.GetAccount(id) }
func (m *Manager) GetAllAccounts() ([]*Account, error)   { return m.db.GetAllAccounts() }
func (m *Manager) DeleteAccount(id int64) error          { return m.db.DeleteAccount(id) }

// UpdateAccount changes username and/or role; empty values keep the field.
func (m *Manager) UpdateAccount(id int64, newUsername string, newRole Role) error {
	return m.db.UpdateAccount(id, strings.TrimSpace(newUsername), newRole)
}

// ------------------ Catalog helpers ------------------

// AddBook validates the descriptive fields and stores the book as Available.
func (m *Manager) AddBook(title, author, category string) (int64, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(author) == "" || strings.TrimSpace(category) == "" {
		return 0, fmt.Errorf("title, author and category are required: %w", ErrInvalidInput)
	}
	return m.db.AddBook(strings.TrimSpace(title), strings.TrimSpace(author), strings.TrimSpace(category))
}

func (m *Manager) GetBook(id int64) (*Book, error) { return m.db.GetBook(id) }
func (m *Manager) GetAllBooks() ([]*Book, error)   { return m.db.GetAllBooks() }
func (m *Manager) DeleteBook(id int64) error       { return m.db.DeleteBook(id) }

func (m *Manager) UpdateBook(id int64, title, author, category string) error {
	return m.db.UpdateBook(id, strings.TrimSpace(title), strings.TrimSpace(author), strings.TrimSpace(category))
}

// OverrideBookStatus is the administrative escape hatch around the loan
// engine; it can desynchronize status from the loan records.
func (m *Manager) OverrideBookStatus(id int64, status Status) error {
	return m.db.OverrideBookStatus(id, status)
}

// ------------------ Search ------------------

func (m *Manager) SearchBooks(field SearchField, q string) ([]*Book, error) {
	return m.db.SearchBooks(field, q)
}

func (m *Manager) BooksByStatus(status Status) ([]*Book, error) {
	return m.db.BooksByStatus(status)
}

// ------------------ Circulation ------------------

func (m *Manager) IssueBook(bookID, accountID int64, issueDate, dueDate time.Time) (*Loan, error) {
	return m.db.IssueBook(bookID, accountID, issueDate, dueDate)
}

func (m *Manager) ReturnLoan(loanID int64) error     { return m.db.ReturnLoan(loanID) }
func (m *Manager) GetLoan(id int64) (*Loan, error)   { return m.db.GetLoan(id) }
func (m *Manager) OpenLoans() ([]*LoanDetail, error) { return m.db.OpenLoans() }

func (m *Manager) LoansForAccount(accountID int64) ([]*LoanDetail, error) {
	return m.db.LoansForAccount(accountID)
}

// ------------------ Reporting ------------------

func (m *Manager) GetDashboardStats() (*DashboardStats, error)    { return m.db.GetDashboardStats() }
func (m *Manager) TopBooks(n int) ([]*BookLoanCount, error)       { return m.db.TopBooks(n) }
func (m *Manager) LoansByMonth() ([]*MonthCount, error)           { return m.db.LoansByMonth() }
func (m *Manager) ReturnsByMonth() ([]*MonthCount, error)         { return m.db.ReturnsByMonth() }
func (m *Manager) LoansPerAccount() ([]*AccountLoanCount, error)  { return m.db.LoansPerAccount() }
func (m *Manager) AvailableByCategory() ([]*CategoryCount, error) { return m.db.AvailableByCategory() }

// ------------------ Backup ------------------

func (m *Manager) CreateBackup(dir string) (string, error) { return m.db.CreateBackup(dir) }
func (m *Manager) RestoreBackup(src string) error          { return m.db.RestoreBackup(src) }
