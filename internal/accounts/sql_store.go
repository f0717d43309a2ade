package accounts

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/gophmarks/internal/migrations"
	"github.com/dmitrijs2005/gophmarks/internal/models"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Dialect captures the per-database differences of SQLStore.
type Dialect struct {
	Name        string
	Driver      string
	GooseName   string
	Placeholder func(n int) string
}

var (
	SQLite = Dialect{
		Name:        "sqlite",
		Driver:      "sqlite",
		GooseName:   "sqlite3",
		Placeholder: func(int) string { return "?" },
	}
	Postgres = Dialect{
		Name:        "postgres",
		Driver:      "pgx",
		GooseName:   "postgres",
		Placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	}
)

// SQLStore keeps accounts in a single table. Save swaps the table content in
// one transaction, which keeps the whole-mapping semantics of the file store.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLStore wraps an already opened and migrated database.
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

// OpenSQLStore opens dsn with the dialect's driver and applies migrations.
func OpenSQLStore(ctx context.Context, dialect Dialect, dsn string) (*SQLStore, error) {
	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if dialect.Name == SQLite.Name {
		// one connection, otherwise ":memory:" databases diverge per connection
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return NewSQLStore(db, dialect), nil
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(dialect.GooseName); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func (s *SQLStore) Load(ctx context.Context) (map[string]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username, password, mobile, city FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	defer rows.Close()

	result := make(map[string]models.Account)
	for rows.Next() {
		var username string
		var a models.Account
		if err := rows.Scan(&username, &a.Password, &a.Mobile, &a.City); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result[username] = a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}

	return result, nil
}

func (s *SQLStore) Save(ctx context.Context, accounts map[string]models.Account) (err error) {
	insert := fmt.Sprintf(
		`INSERT INTO accounts (username, password, mobile, city) VALUES (%s, %s, %s, %s)`,
		s.dialect.Placeholder(1), s.dialect.Placeholder(2), s.dialect.Placeholder(3), s.dialect.Placeholder(4),
	)

	usernames := make([]string, 0, len(accounts))
	for u := range accounts {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("failed to commit accounts: %w", cerr)
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("failed to clear accounts: %w", err)
	}

	for _, u := range usernames {
		a := accounts[u]
		if _, err = tx.ExecContext(ctx, insert, u, a.Password, a.Mobile, a.City); err != nil {
			return fmt.Errorf("failed to save account[%s]: %w", u, err)
		}
	}

	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
