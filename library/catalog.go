package library

import (
	"database/sql"
	"fmt"
	"strings"
)

// AddBook inserts a book with status forced to Available.
func (d *Database) AddBook(title, author, category string) (int64, error) {
	res, err := d.addBookStmt.Exec(title, author, category, string(StatusAvailable))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetBook fetches a single book.
func (d *Database) GetBook(id int64) (*Book, error) {
	var b Book
	var status string
	err := d.db.QueryRow(`SELECT id,title,author,category,status FROM books WHERE id=?`, id).
		Scan(&b.ID, &b.Title, &b.Author, &b.Category, &status)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	b.Status = Status(status)
	return &b, nil
}

// GetAllBooks returns the full catalog ordered by id.
func (d *Database) GetAllBooks() ([]*Book, error) {
	return d.queryBooks(`SELECT id,title,author,category,status FROM books ORDER BY id`)
}

// UpdateBook changes the descriptive fields of a book. Empty values keep the
// existing field. Status is deliberately not touched here; the loan engine
// owns it, and OverrideBookStatus is the administrative escape hatch.
func (d *Database) UpdateBook(id int64, title, author, category string) error {
	sets := []string{}
	args := []any{}
	if title != "" {
		sets = append(sets, "title=?")
		args = append(args, title)
	}
	if author != "" {
		sets = append(sets, "author=?")
		args = append(args, author)
	}
	if category != "" {
		sets = append(sets, "category=?")
		args = append(args, category)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := d.db.Exec(`UPDATE books SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	return nil
}

// OverrideBookStatus sets the status flag directly, bypassing the loan
// engine. This is a documented consistency risk: the caller takes
// responsibility for the status agreeing with the open-loan records.
func (d *Database) OverrideBookStatus(id int64, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("status %q: %w", status, ErrInvalidInput)
	}
	res, err := d.db.Exec(`UPDATE books SET status=? WHERE id=?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteBook removes a book unconditionally, even with an open loan against
// it; see the delete policy note in DESIGN.md.
func (d *Database) DeleteBook(id int64) error {
	res, err := d.db.Exec(`DELETE FROM books WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	return nil
}

// SearchField selects which column a catalog search matches against.
type SearchField string

const (
	SearchByTitle    SearchField = "title"
	SearchByAuthor   SearchField = "author"
	SearchByCategory SearchField = "category"
)

// SearchBooks returns books whose field contains q, case-insensitively.
// No matches yields an empty slice, not an error.
func (d *Database) SearchBooks(field SearchField, q string) ([]*Book, error) {
	var column string
	switch field {
	case SearchByTitle:
		column = "title"
	case SearchByAuthor:
		column = "author"
	case SearchByCategory:
		column = "category"
	default:
		return nil, fmt.Errorf("search field %q: %w", field, ErrInvalidInput)
	}
	// SQLite LIKE is case-insensitive for ASCII.
	return d.queryBooks(
		`SELECT id,title,author,category,status FROM books WHERE `+column+` LIKE ? ORDER BY id`,
		"%"+q+"%")
}

// BooksByStatus returns books filtered on the status flag.
func (d *Database) BooksByStatus(status Status) ([]*Book, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, ErrInvalidInput)
	}
	return d.queryBooks(
		`SELECT id,title,author,category,status FROM books WHERE status=? ORDER BY id`,
		string(status))
}

func (d *Database) queryBooks(query string, args ...any) ([]*Book, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		var b Book
		var status string
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &status); err != nil {
			return nil, err
		}
		b.Status = Status(status)
		books = append(books, &b)
	}
	return books, rows.Err()
}
