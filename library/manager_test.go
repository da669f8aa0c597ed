package library

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	mgr, err := NewManager(filepath.Join(dir, "lib.db"))
	if err != nil {
		t.Fatalf("mgr: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })
	return mgr
}

func TestCreateAccountValidation(t *testing.T) {
	mgr := newManager(t)

	_, err := mgr.CreateAccount("", "secret", RoleMember)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = mgr.CreateAccount("alice", "", RoleMember)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = mgr.CreateAccount("alice", "secret", "superuser")
	assert.ErrorIs(t, err, ErrInvalidInput)

	id, err := mgr.CreateAccount("alice", "secret", RoleMember)
	require.NoError(t, err)

	account, err := mgr.GetAccount(id)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", account.PasswordHash, "secret must be stored hashed")
}

func TestAuthenticate(t *testing.T) {
	mgr := newManager(t)

	_, err := mgr.CreateAccount("alice", "secret", RoleMember)
	require.NoError(t, err)

	account, err := mgr.Authenticate("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)

	_, err = mgr.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = mgr.Authenticate("nobody", "secret")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangePasswordRequiresConfirmation(t *testing.T) {
	mgr := newManager(t)

	id, err := mgr.CreateAccount("alice", "secret", RoleMember)
	require.NoError(t, err)

	err = mgr.ChangePassword(id, "newpass", "different")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = mgr.ChangePassword(id, "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, mgr.ChangePassword(id, "newpass", "newpass"))

	_, err = mgr.Authenticate("alice", "secret")
	assert.Error(t, err, "old password must stop working")
	_, err = mgr.Authenticate("alice", "newpass")
	assert.NoError(t, err)
}

func TestResetPassword(t *testing.T) {
	mgr := newManager(t)

	_, err := mgr.CreateAccount("bob", "original", RoleMember)
	require.NoError(t, err)

	require.NoError(t, mgr.ResetPassword("bob", "fresh"))
	_, err = mgr.Authenticate("bob", "fresh")
	assert.NoError(t, err)

	err = mgr.ResetPassword("ghost", "whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerAddBookValidation(t *testing.T) {
	mgr := newManager(t)

	_, err := mgr.AddBook("", "Author", "Category")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = mgr.AddBook("Title", "  ", "Category")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = mgr.AddBook("Title", "Author", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	id, err := mgr.AddBook("  Hamlet  ", "William Shakespeare", "Classic")
	require.NoError(t, err)
	book, err := mgr.GetBook(id)
	require.NoError(t, err)
	assert.Equal(t, "Hamlet", book.Title, "fields are trimmed")
}

func TestManagerLoanFlow(t *testing.T) {
	mgr := newManager(t)

	accountID, err := mgr.CreateAccount("alice", "secret", RoleMember)
	require.NoError(t, err)
	bookID, err := mgr.AddBook("1984", "George Orwell", "Fiction")
	require.NoError(t, err)

	loan, err := mgr.IssueBook(bookID, accountID, time.Time{}, time.Time{})
	require.NoError(t, err)

	mine, err := mgr.LoansForAccount(accountID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "1984", mine[0].Title)

	require.NoError(t, mgr.ReturnLoan(loan.ID))
	open, err := mgr.OpenLoans()
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestDeleteAccountLeavesLoans(t *testing.T) {
	mgr := newManager(t)

	accountID, err := mgr.CreateAccount("alice", "secret", RoleMember)
	require.NoError(t, err)
	bookID, err := mgr.AddBook("1984", "George Orwell", "Fiction")
	require.NoError(t, err)
	loan, err := mgr.IssueBook(bookID, accountID, time.Time{}, time.Time{})
	require.NoError(t, err)

	// Permissive delete: the open loan dangles rather than blocking.
	require.NoError(t, mgr.DeleteAccount(accountID))
	stored, err := mgr.GetLoan(loan.ID)
	require.NoError(t, err)
	assert.False(t, stored.Returned)
}
