package library

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05"

// CreateAccount inserts an account with an already-computed password hash.
// Username uniqueness is enforced by the schema and surfaced as
// ErrDuplicateUsername.
func (d *Database) CreateAccount(username, passwordHash string, role Role) (int64, error) {
	res, err := d.addAccountStmt.Exec(username, passwordHash, string(role), time.Now().Format(timestampFormat))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("account %q: %w", username, ErrDuplicateUsername)
		}
		return 0, err
	}
	return res.LastInsertId()
}

// GetAccount fetches a single account by id.
func (d *Database) GetAccount(id int64) (*Account, error) {
	return d.scanAccount(d.db.QueryRow(
		`SELECT id,username,password_hash,role,created_at FROM accounts WHERE id=?`, id))
}

// GetAccountByUsername fetches a single account by its unique username.
func (d *Database) GetAccountByUsername(username string) (*Account, error) {
	return d.scanAccount(d.db.QueryRow(
		`SELECT id,username,password_hash,role,created_at FROM accounts WHERE username=?`, username))
}

func (d *Database) scanAccount(row *sql.Row) (*Account, error) {
	var a Account
	var role, created string
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &role, &created)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	a.Role = Role(role)
	a.CreatedAt, _ = time.Parse(timestampFormat, created)
	return &a, nil
}

// GetAllAccounts returns all accounts ordered by id.
func (d *Database) GetAllAccounts() ([]*Account, error) {
	rows, err := d.db.Query(`SELECT id,username,password_hash,role,created_at FROM accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*Account{}
	for rows.Next() {
		var a Account
		var role, created string
		if err := rows.Scan(&a.ID, &a.Username, &a.PasswordHash, &role, &created); err != nil {
			return nil, err
		}
		a.Role = Role(role)
		a.CreatedAt, _ = time.Parse(timestampFormat, created)
		accounts = append(accounts, &a)
	}
	return accounts, rows.Err()
}

// UpdateAccount changes the username and/or role of an account. Empty values
// keep the existing field.
func (d *Database) UpdateAccount(id int64, newUsername string, newRole Role) error {
	sets := []string{}
	args := []any{}
	if newUsername != "" {
		sets = append(sets, "username=?")
		args = append(args, newUsername)
	}
	if newRole != "" {
		if !newRole.Valid() {
			return fmt.Errorf("role %q: %w", newRole, ErrInvalidInput)
		}
		sets = append(sets, "role=?")
		args = append(args, string(newRole))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := d.db.Exec(`UPDATE accounts SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("account %q: %w", newUsername, ErrDuplicateUsername)
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAccount removes an account unconditionally. Open loans referencing
// the account are left in place; see the delete policy note in DESIGN.md.
func (d *Database) DeleteAccount(id int64) error {
	res, err := d.db.Exec(`DELETE FROM accounts WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account %d: %w", id, ErrNotFound)
	}
	return nil
}

// SetPasswordHash replaces the stored credential hash for an account.
func (d *Database) SetPasswordHash(id int64, passwordHash string) error {
	res, err := d.db.Exec(`UPDATE accounts SET password_hash=? WHERE id=?`, passwordHash, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account %d: %w", id, ErrNotFound)
	}
	return nil
}
