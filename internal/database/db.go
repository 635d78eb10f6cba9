package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the two application tables if they do not exist yet.  It is
// safe to run on every startup.  Timestamps are stored as RFC 3339 strings,
// so the columns are VARCHAR rather than DATETIME.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id         VARCHAR(36)  NOT NULL,
			name       VARCHAR(255) NOT NULL,
			email      VARCHAR(255) NOT NULL,
			password   VARCHAR(255) NOT NULL,
			created_at VARCHAR(35)  NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS bookings (
			booking_id   VARCHAR(32)  NOT NULL,
			movie_name   VARCHAR(255) NOT NULL,
			date         VARCHAR(64)  NOT NULL,
			time         VARCHAR(64)  NOT NULL,
			theater      VARCHAR(255) NOT NULL,
			address      VARCHAR(255) NOT NULL,
			booked_by    VARCHAR(255) NOT NULL,
			user_name    VARCHAR(255) NOT NULL,
			seats        VARCHAR(255) NOT NULL,
			amount_paid  VARCHAR(64)  NOT NULL,
			booking_time VARCHAR(35)  NOT NULL,
			PRIMARY KEY (booking_id),
			KEY idx_bookings_booked_by (booked_by)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
