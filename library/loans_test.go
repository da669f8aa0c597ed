package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertStatusConsistent checks the core invariant: a book is Issued iff it
// has exactly one open loan, Available iff it has none.
func assertStatusConsistent(t *testing.T, db *Database, bookID int64) {
	t.Helper()
	book, err := db.GetBook(bookID)
	require.NoError(t, err)

	var open int
	err = db.db.QueryRow(`SELECT COUNT(*) FROM loans WHERE book_id=? AND returned=0`, bookID).Scan(&open)
	require.NoError(t, err)

	switch book.Status {
	case StatusIssued:
		assert.Equal(t, 1, open, "Issued book must have exactly one open loan")
	case StatusAvailable:
		assert.Equal(t, 0, open, "Available book must have no open loans")
	default:
		t.Fatalf("unrecognized status %q", book.Status)
	}
}

func seedBookAndAccount(t *testing.T, db *Database) (bookID, accountID int64) {
	t.Helper()
	bookID, err := db.AddBook("1984", "George Orwell", "Fiction")
	require.NoError(t, err)
	accountID, err = db.CreateAccount("alice", "hash", RoleMember)
	require.NoError(t, err)
	return bookID, accountID
}

func TestIssueAndReturnRoundTrip(t *testing.T) {
	db := tempDB(t)
	bookID, accountID := seedBookAndAccount(t, db)

	loan, err := db.IssueBook(bookID, accountID, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.False(t, loan.Returned)
	assert.Equal(t, bookID, loan.BookID)
	assert.Equal(t, accountID, loan.AccountID)

	book, err := db.GetBook(bookID)
	require.NoError(t, err)
	assert.Equal(t, StatusIssued, book.Status)
	assertStatusConsistent(t, db, bookID)

	require.NoError(t, db.ReturnLoan(loan.ID))

	book, err = db.GetBook(bookID)
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, book.Status)
	assertStatusConsistent(t, db, bookID)

	// Exactly one closed loan remains.
	closed, err := db.GetLoan(loan.ID)
	require.NoError(t, err)
	assert.True(t, closed.Returned)
	loans, err := db.LoansForAccount(accountID)
	require.NoError(t, err)
	assert.Len(t, loans, 1)
}

func TestIssueDefaultsDueDate(t *testing.T) {
	db := tempDB(t)
	bookID, accountID := seedBookAndAccount(t, db)

	issueDate, err := time.Parse(DateFormat, "2024-01-01")
	require.NoError(t, err)

	loan, err := db.IssueBook(bookID, accountID, issueDate, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", loan.IssueDate.Format(DateFormat))
	assert.Equal(t, "2024-01-15", loan.DueDate.Format(DateFormat))

	// Dates survive a round trip through storage.
	stored, err := db.GetLoan(loan.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", stored.DueDate.Format(DateFormat))
}

func TestIssueDefaultsIssueDateToToday(t *testing.T) {
	db := tempDB(t)
	bookID, accountID := seedBookAndAccount(t, db)

	loan, err := db.IssueBook(bookID, accountID, time.Time{}, time.Time{})
	require.NoError(t, err)

	today := time.Now().Format(DateFormat)
	assert.Equal(t, today, loan.IssueDate.Format(DateFormat))
	assert.Equal(t, loan.IssueDate.AddDate(0, 0, LoanPeriodDays), loan.DueDate)
}

func TestIssueExplicitDueDate(t *testing.T) {
	db := tempDB(t)
	bookID, accountID := seedBookAndAccount(t, db)

	issueDate, _ := time.Parse(DateFormat, "2024-03-10")
	dueDate, _ := time.Parse(DateFormat, "2024-03-17")

	loan, err := db.IssueBook(bookID, accountID, issueDate, dueDate)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-17", loan.DueDate.Format(DateFormat))
}

func TestIssueAlreadyIssued(t *testing.T) {
	db := tempDB(t)
	bookID, accountID := seedBookAndAccount(t, db)

	_, err := db.IssueBook(bookID, accountID, time.Time{}, time.Time{})
	require.NoError(t, err)

	// Second issue fails and creates no second loan record.
	_, err = db.IssueBook(bookID, accountID, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, ErrAlreadyIssued)

	var count int
	require.NoError(t, db.db.QueryRow(`SELECT COUNT(*) FROM loans WHERE book_id=?`, bookID).Scan(&count))
	assert.Equal(t, 1, count)
	assertStatusConsistent(t, db, bookID)
}

func TestReturnAlreadyReturned(t *testing.T) {
	db := tempDB(t)
	bookID, accountID := seedBookAndAccount(t, db)

	loan, err := db.IssueBook(bookID, accountID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.NoError(t, db.ReturnLoan(loan.ID))

	err = db.ReturnLoan(loan.ID)
	assert.ErrorIs(t, err, ErrAlreadyReturned)

	// The double return must not have flipped status again.
	book, err := db.GetBook(bookID)
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, book.Status)
}

func TestIssueMissingBookOrAccount(t *testing.T) {
	db := tempDB(t)
	bookID, accountID := seedBookAndAccount(t, db)

	_, err := db.IssueBook(99999, accountID, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = db.IssueBook(bookID, 99999, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, ErrNotFound)

	// The failed issue must not have marked the book Issued.
	book, err := db.GetBook(bookID)
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, book.Status)
	assertStatusConsistent(t, db, bookID)
}

func TestReturnMissingLoan(t *testing.T) {
	db := tempDB(t)
	assert.ErrorIs(t, db.ReturnLoan(424242), ErrNotFound)
}

func TestOpenLoansListing(t *testing.T) {
	db := tempDB(t)
	bookID, accountID := seedBookAndAccount(t, db)
	otherID, err := db.AddBook("Hamlet", "William Shakespeare", "Classic")
	require.NoError(t, err)

	first, err := db.IssueBook(bookID, accountID, time.Time{}, time.Time{})
	require.NoError(t, err)
	_, err = db.IssueBook(otherID, accountID, time.Time{}, time.Time{})
	require.NoError(t, err)

	open, err := db.OpenLoans()
	require.NoError(t, err)
	assert.Len(t, open, 2)

	require.NoError(t, db.ReturnLoan(first.ID))
	open, err = db.OpenLoans()
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Hamlet", open[0].Title)
	assert.Equal(t, "alice", open[0].Username)
}

func TestOpenLoanForBook(t *testing.T) {
	db := tempDB(t)
	bookID, accountID := seedBookAndAccount(t, db)

	_, err := db.OpenLoanForBook(bookID)
	assert.ErrorIs(t, err, ErrNotFound)

	loan, err := db.IssueBook(bookID, accountID, time.Time{}, time.Time{})
	require.NoError(t, err)

	open, err := db.OpenLoanForBook(bookID)
	require.NoError(t, err)
	assert.Equal(t, loan.ID, open.ID)
}

// TestLoanLifecycleScenario walks the end-to-end sequence: duplicate account
// rejected, fresh book Available, issue flips to Issued, re-issue rejected,
// return flips back, re-return rejected.
func TestLoanLifecycleScenario(t *testing.T) {
	db := tempDB(t)

	aliceID, err := db.CreateAccount("alice", "secret-hash", RoleMember)
	require.NoError(t, err)
	_, err = db.CreateAccount("alice", "secret-hash", RoleMember)
	require.ErrorIs(t, err, ErrDuplicateUsername)

	bookID, err := db.AddBook("1984", "Orwell", "Fiction")
	require.NoError(t, err)
	book, err := db.GetBook(bookID)
	require.NoError(t, err)
	require.Equal(t, StatusAvailable, book.Status)

	loan, err := db.IssueBook(bookID, aliceID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.False(t, loan.Returned)
	book, _ = db.GetBook(bookID)
	require.Equal(t, StatusIssued, book.Status)

	_, err = db.IssueBook(bookID, aliceID, time.Time{}, time.Time{})
	require.ErrorIs(t, err, ErrAlreadyIssued)

	require.NoError(t, db.ReturnLoan(loan.ID))
	book, _ = db.GetBook(bookID)
	require.Equal(t, StatusAvailable, book.Status)
	stored, err := db.GetLoan(loan.ID)
	require.NoError(t, err)
	require.True(t, stored.Returned)

	require.ErrorIs(t, db.ReturnLoan(loan.ID), ErrAlreadyReturned)
	assertStatusConsistent(t, db, bookID)
}

// Repeated issue/return cycles must keep status and loan records in step,
// accumulating one closed record per cycle.
func TestRepeatedCyclesKeepInvariant(t *testing.T) {
	db := tempDB(t)
	bookID, accountID := seedBookAndAccount(t, db)

	for i := 0; i < 5; i++ {
		loan, err := db.IssueBook(bookID, accountID, time.Time{}, time.Time{})
		require.NoError(t, err)
		assertStatusConsistent(t, db, bookID)
		require.NoError(t, db.ReturnLoan(loan.ID))
		assertStatusConsistent(t, db, bookID)
	}

	loans, err := db.LoansForAccount(accountID)
	require.NoError(t, err)
	assert.Len(t, loans, 5)
	for _, l := range loans {
		assert.True(t, l.Returned)
	}
}
