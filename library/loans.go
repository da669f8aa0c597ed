package library

import (
	"database/sql"
	"fmt"
	"time"
)

// LoanPeriodDays is the default loan period applied when no due date is
// supplied to IssueBook.
const LoanPeriodDays = 14

// IssueBook creates an open loan for a book and flips the book's status to
// Issued, in one transaction. A zero issueDate defaults to today; a zero
// dueDate defaults to issueDate plus LoanPeriodDays. The status read, the
// loan insert and the status write commit or roll back together, which is
// what keeps the denormalized status flag in step with the loan records.
func (d *Database) IssueBook(bookID, accountID int64, issueDate, dueDate time.Time) (*Loan, error) {
	if issueDate.IsZero() {
		issueDate = time.Now()
	}
	issueDate = truncateToDay(issueDate)
	if dueDate.IsZero() {
		dueDate = issueDate.AddDate(0, 0, LoanPeriodDays)
	}
	dueDate = truncateToDay(dueDate)

	tx, err := d.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRow(`SELECT status FROM books WHERE id=?`, bookID).Scan(&status)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("book %d: %w", bookID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if Status(status) == StatusIssued {
		return nil, fmt.Errorf("book %d: %w", bookID, ErrAlreadyIssued)
	}

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM accounts WHERE id=?)`, accountID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("account %d: %w", accountID, ErrNotFound)
	}

	res, err := tx.Stmt(d.addLoanStmt).Exec(
		bookID, accountID, issueDate.Format(DateFormat), dueDate.Format(DateFormat))
	if err != nil {
		return nil, err
	}
	loanID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`UPDATE books SET status=? WHERE id=?`, string(StatusIssued), bookID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &Loan{
		ID:        loanID,
		BookID:    bookID,
		AccountID: accountID,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Returned:  false,
	}, nil
}

// ReturnLoan closes an open loan and flips the referenced book's status back
// to Available, in one transaction. Returning a closed loan is rejected with
// ErrAlreadyReturned rather than silently accepted.
func (d *Database) ReturnLoan(loanID int64) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var bookID int64
	var returned bool
	err = tx.QueryRow(`SELECT book_id,returned FROM loans WHERE id=?`, loanID).Scan(&bookID, &returned)
	if err == sql.ErrNoRows {
		return fmt.Errorf("loan %d: %w", loanID, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if returned {
		return fmt.Errorf("loan %d: %w", loanID, ErrAlreadyReturned)
	}

	if _, err := tx.Exec(`UPDATE loans SET returned=1 WHERE id=?`, loanID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE books SET status=? WHERE id=?`, string(StatusAvailable), bookID); err != nil {
		return err
	}
	return tx.Commit()
}

// GetLoan fetches a single loan record.
func (d *Database) GetLoan(id int64) (*Loan, error) {
	var l Loan
	var issue, due string
	err := d.db.QueryRow(`SELECT id,book_id,account_id,issue_date,due_date,returned FROM loans WHERE id=?`, id).
		Scan(&l.ID, &l.BookID, &l.AccountID, &issue, &due, &l.Returned)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("loan %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if l.IssueDate, err = time.Parse(DateFormat, issue); err != nil {
		return nil, fmt.Errorf("loan %d issue date: %w", id, err)
	}
	if l.DueDate, err = time.Parse(DateFormat, due); err != nil {
		return nil, fmt.Errorf("loan %d due date: %w", id, err)
	}
	return &l, nil
}

// OpenLoans lists all currently open loans joined with book title and
// borrower username, newest first.
func (d *Database) OpenLoans() ([]*LoanDetail, error) {
	return d.queryLoanDetails(`
        SELECT loans.id, loans.book_id, loans.account_id, loans.issue_date, loans.due_date, loans.returned,
               books.title, accounts.username
        FROM loans
        JOIN books ON books.id = loans.book_id
        JOIN accounts ON accounts.id = loans.account_id
        WHERE loans.returned=0
        ORDER BY loans.issue_date DESC`)
}

// LoansForAccount lists every loan, open or closed, held by one account.
func (d *Database) LoansForAccount(accountID int64) ([]*LoanDetail, error) {
	return d.queryLoanDetails(`
        SELECT loans.id, loans.book_id, loans.account_id, loans.issue_date, loans.due_date, loans.returned,
               books.title, COALESCE(accounts.username,'')
        FROM loans
        JOIN books ON books.id = loans.book_id
        LEFT JOIN accounts ON accounts.id = loans.account_id
        WHERE loans.account_id=?
        ORDER BY loans.issue_date DESC`, accountID)
}

// OpenLoanForBook returns the single open loan for a book, or ErrNotFound.
func (d *Database) OpenLoanForBook(bookID int64) (*Loan, error) {
	var l Loan
	var issue, due string
	err := d.db.QueryRow(`SELECT id,book_id,account_id,issue_date,due_date,returned FROM loans WHERE book_id=? AND returned=0`, bookID).
		Scan(&l.ID, &l.BookID, &l.AccountID, &issue, &due, &l.Returned)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("open loan for book %d: %w", bookID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	l.IssueDate, _ = time.Parse(DateFormat, issue)
	l.DueDate, _ = time.Parse(DateFormat, due)
	return &l, nil
}

func (d *Database) queryLoanDetails(query string, args ...any) ([]*LoanDetail, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loans := []*LoanDetail{}
	for rows.Next() {
		var l LoanDetail
		var issue, due string
		if err := rows.Scan(&l.ID, &l.BookID, &l.AccountID, &issue, &due, &l.Returned, &l.Title, &l.Username); err != nil {
			return nil, err
		}
		l.IssueDate, _ = time.Parse(DateFormat, issue)
		l.DueDate, _ = time.Parse(DateFormat, due)
		loans = append(loans, &l)
	}
	return loans, rows.Err()
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
