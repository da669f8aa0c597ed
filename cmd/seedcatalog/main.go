package main

import (
	"fmt"
	"os"
	"time"

	"library-catalog/library"
)

// Seeds a fresh database with demo accounts, a sample catalog and a handful
// of open loans. Safe to re-run: existing data is left untouched.

func main() {
	dbPath := "library.db"
	if v, ok := os.LookupEnv("LIBRARY_DB"); ok {
		dbPath = v
	}

	mgr, err := library.NewManager(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer mgr.Close()

	accounts, err := mgr.GetAllAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts: %v\n", err)
		os.Exit(1)
	}

	accountIDs := []int64{}
	if len(accounts) > 0 {
		fmt.Println("Accounts already present, skipping account seed.")
		for _, a := range accounts {
			if a.Role == library.RoleMember {
				accountIDs = append(accountIDs, a.ID)
			}
		}
	} else {
		if _, err := mgr.CreateAccount("admin", "admin123", library.RoleAdmin); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding admin: %v\n", err)
			os.Exit(1)
		}
		for i := 1; i <= 5; i++ {
			id, err := mgr.CreateAccount(fmt.Sprintf("member%d", i), fmt.Sprintf("pass%d", i), library.RoleMember)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error seeding member%d: %v\n", i, err)
				os.Exit(1)
			}
			accountIDs = append(accountIDs, id)
		}
		fmt.Println("Seeded accounts (default admin: admin/admin123)")
	}

	books, err := mgr.GetAllBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %v\n", err)
		os.Exit(1)
	}
	if len(books) > 0 {
		fmt.Println("Catalog already present, nothing to do.")
		return
	}

	sampleBooks := [][3]string{
		{"To Kill a Mockingbird", "Harper Lee", "Fiction"},
		{"1984", "George Orwell", "Fiction"},
		{"A Brief History of Time", "Stephen Hawking", "Science"},
		{"The Selfish Gene", "Richard Dawkins", "Science"},
		{"The Alchemist", "Paulo Coelho", "Fiction"},
		{"Clean Code", "Robert C. Martin", "Programming"},
		{"Introduction to Algorithms", "Cormen et al.", "Programming"},
		{"Principles of Economics", "Mankiw", "Economics"},
		{"Indian Polity", "Laxmikanth", "Political Science"},
		{"Art of War", "Sun Tzu", "Philosophy"},
		{"The Odyssey", "Homer", "Classic"},
		{"Hamlet", "William Shakespeare", "Classic"},
		{"The Great Gatsby", "F. Scott Fitzgerald", "Fiction"},
		{"Sapiens", "Yuval Noah Harari", "History"},
		{"Guns, Germs, and Steel", "Jared Diamond", "History"},
		{"The Pragmatic Programmer", "Andrew Hunt", "Programming"},
		{"Computer Networks", "Tanenbaum", "Programming"},
		{"Data Science from Scratch", "Joel Grus", "Programming"},
		{"The Road", "Cormac McCarthy", "Fiction"},
		{"The Catcher in the Rye", "J.D. Salinger", "Fiction"},
	}

	bookIDs := []int64{}
	for _, b := range sampleBooks {
		id, err := mgr.AddBook(b[0], b[1], b[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding book %q: %v\n", b[0], err)
			os.Exit(1)
		}
		bookIDs = append(bookIDs, id)
	}
	fmt.Printf("Seeded %d sample books\n", len(bookIDs))

	if len(accountIDs) == 0 {
		fmt.Println("No member accounts available, skipping loan seed.")
		return
	}

	// Open a few staggered loans so the reports have something to show.
	today := time.Now()
	seeded := 0
	for i := 0; i < 9 && i < len(bookIDs); i++ {
		accountID := accountIDs[i%len(accountIDs)]
		issueDate := today.AddDate(0, 0, -(2 + i))
		dueDate := today.AddDate(0, 0, 14-i)
		if _, err := mgr.IssueBook(bookIDs[i], accountID, issueDate, dueDate); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding loan for book %d: %v\n", bookIDs[i], err)
			os.Exit(1)
		}
		seeded++
	}
	fmt.Printf("Seeded %d open loans\n", seeded)
}
