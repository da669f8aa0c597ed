package library

import "time"

// DateFormat is the calendar-date layout used for issue and due dates.
// Loans carry whole days only, never a time of day.
const DateFormat = "2006-01-02"

// Status is the availability flag on a Book. It is denormalized: in the
// common path it mirrors whether an open loan exists for the book, and only
// the loan engine (or an explicit administrative override) may change it.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusIssued    Status = "Issued"
)

// Valid reports whether s is one of the two recognized statuses.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusIssued
}

// Role is the access tier of an Account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the two recognized roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Account represents a registered operator or member.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Don't serialize password hash
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Book represents a catalog item and its current availability.
type Book struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Status   Status `json:"status"`
}

// Loan records a single issue of a book to an account. A loan is created by
// the issue operation and mutated exactly once, when it is returned; at most
// one loan per book may be open (Returned == false) at any time.
type Loan struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	AccountID int64     `json:"account_id"`
	IssueDate time.Time `json:"issue_date"`
	DueDate   time.Time `json:"due_date"`
	Returned  bool      `json:"returned"`
}

// LoanDetail is a loan joined with the book title and borrower username for
// listing screens.
type LoanDetail struct {
	Loan
	Title    string `json:"title"`
	Username string `json:"username"`
}
