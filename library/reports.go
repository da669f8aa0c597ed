package library

// Read-only aggregate queries consumed by the reporting surface. All of them
// tolerate an empty store by returning zero counts or empty slices; rendering
// "no data" is the caller's job.

// DashboardStats is the summary block shown on the admin dashboard.
type DashboardStats struct {
	TotalBooks     int
	AvailableBooks int
	IssuedBooks    int
	TotalAccounts  int
	OpenLoans      int
}

// GetDashboardStats computes the aggregate counts in one pass.
func (d *Database) GetDashboardStats() (*DashboardStats, error) {
	var s DashboardStats
	err := d.db.QueryRow(`
        SELECT
            (SELECT COUNT(*) FROM books),
            (SELECT COUNT(*) FROM books WHERE status=?),
            (SELECT COUNT(*) FROM books WHERE status=?),
            (SELECT COUNT(*) FROM accounts),
            (SELECT COUNT(*) FROM loans WHERE returned=0)`,
		string(StatusAvailable), string(StatusIssued)).
		Scan(&s.TotalBooks, &s.AvailableBooks, &s.IssuedBooks, &s.TotalAccounts, &s.OpenLoans)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// BookLoanCount pairs a book with how many times it has been loaned.
type BookLoanCount struct {
	BookID int64
	Title  string
	Author string
	Count  int
}

// TopBooks returns the n most-loaned books, most loaned first. Books that
// were never loaned still appear (with a zero count) when the catalog is
// smaller than n.
func (d *Database) TopBooks(n int) ([]*BookLoanCount, error) {
	rows, err := d.db.Query(`
        SELECT books.id, books.title, books.author, COUNT(loans.id) AS cnt
        FROM books LEFT JOIN loans ON books.id = loans.book_id
        GROUP BY books.id
        ORDER BY cnt DESC, books.id
        LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := []*BookLoanCount{}
	for rows.Next() {
		var b BookLoanCount
		if err := rows.Scan(&b.BookID, &b.Title, &b.Author, &b.Count); err != nil {
			return nil, err
		}
		top = append(top, &b)
	}
	return top, rows.Err()
}

// MonthCount is a per-month aggregate, with Month in "YYYY-MM" form.
type MonthCount struct {
	Month string
	Count int
}

// LoansByMonth counts loans grouped by issue month.
func (d *Database) LoansByMonth() ([]*MonthCount, error) {
	return d.queryMonthCounts(
		`SELECT substr(issue_date,1,7) AS month, COUNT(*) FROM loans GROUP BY month ORDER BY month`)
}

// ReturnsByMonth counts closed loans grouped by due month.
func (d *Database) ReturnsByMonth() ([]*MonthCount, error) {
	return d.queryMonthCounts(
		`SELECT substr(due_date,1,7) AS month, COUNT(*) FROM loans WHERE returned=1 GROUP BY month ORDER BY month`)
}

func (d *Database) queryMonthCounts(query string) ([]*MonthCount, error) {
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []*MonthCount{}
	for rows.Next() {
		var m MonthCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, err
		}
		counts = append(counts, &m)
	}
	return counts, rows.Err()
}

// AccountLoanCount pairs an account with how many loans it has taken.
type AccountLoanCount struct {
	Username string
	Count    int
}

// LoansPerAccount counts loans per account, skipping accounts that never
// borrowed anything.
func (d *Database) LoansPerAccount() ([]*AccountLoanCount, error) {
	rows, err := d.db.Query(`
        SELECT accounts.username, COUNT(loans.id) AS cnt
        FROM accounts LEFT JOIN loans ON accounts.id = loans.account_id
        GROUP BY accounts.username
        HAVING cnt > 0
        ORDER BY cnt DESC, accounts.username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []*AccountLoanCount{}
	for rows.Next() {
		var c AccountLoanCount
		if err := rows.Scan(&c.Username, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, &c)
	}
	return counts, rows.Err()
}

// CategoryCount pairs a category with a book count.
type CategoryCount struct {
	Category string
	Count    int
}

// AvailableByCategory counts currently available books per category.
func (d *Database) AvailableByCategory() ([]*CategoryCount, error) {
	rows, err := d.db.Query(`
        SELECT category, COUNT(*) FROM books WHERE status=? GROUP BY category ORDER BY category`,
		string(StatusAvailable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []*CategoryCount{}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, &c)
	}
	return counts, rows.Err()
}
