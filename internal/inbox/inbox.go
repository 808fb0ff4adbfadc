// Package inbox records contact-form submissions locally. Nothing is sent
// anywhere: messages land in an sqlite table which, with the default DSN,
// lives in memory for the lifetime of the process.
package inbox

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite"
)

// MaxMessageLen caps the message body, in runes.
const MaxMessageLen = 5000

var (
	ErrInvalidSubmission = errors.New("invalid contact submission")
	ErrClosed            = errors.New("inbox closed")
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	body        TEXT NOT NULL,
	hashed_addr TEXT NOT NULL,  -- client address, salted and hashed
	received_at INTEGER NOT NULL -- unix nanoseconds
)`

// Submission is the raw form input.
type Submission struct {
	Name       string
	Email      string
	Message    string
	ClientAddr string
}

// Validate trims the fields and checks they are usable.
func (s *Submission) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Message = strings.TrimSpace(s.Message)

	switch {
	case s.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidSubmission)
	case s.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidSubmission)
	case s.Message == "":
		return fmt.Errorf("%w: message is required", ErrInvalidSubmission)
	case utf8.RuneCountInString(s.Message) > MaxMessageLen:
		return fmt.Errorf("%w: message longer than %d characters", ErrInvalidSubmission, MaxMessageLen)
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return fmt.Errorf("%w: email: %w", ErrInvalidSubmission, err)
	}
	return nil
}

// Message is a recorded submission.
type Message struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Body       string    `json:"body"`
	HashedAddr string    `json:"hashed_addr"`
	ReceivedAt time.Time `json:"received_at"`
}

// Store is the sqlite-backed inbox.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open connects to dsn and creates the table when missing.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open inbox: %w", err)
	}
	// A single connection keeps an in-memory database alive.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create inbox schema: %w", err)
	}

	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	return &Store{db: db, salt: hex.EncodeToString(salt), now: time.Now}, nil
}

// hashAddr is consistent per address within one process.
func (s *Store) hashAddr(addr string) string {
	h := sha256.New()
	h.Write([]byte(addr + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Record validates and stores a submission.
func (s *Store) Record(ctx context.Context, sub Submission) (Message, error) {
	if err := sub.Validate(); err != nil {
		return Message{}, err
	}
	msg := Message{
		Name:       sub.Name,
		Email:      sub.Email,
		Body:       sub.Message,
		HashedAddr: s.hashAddr(sub.ClientAddr),
		ReceivedAt: s.now().UTC(),
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (name, email, body, hashed_addr, received_at) VALUES (?, ?, ?, ?, ?)`,
		msg.Name, msg.Email, msg.Body, msg.HashedAddr, msg.ReceivedAt.UnixNano())
	if err != nil {
		return Message{}, s.wrap("record message", err)
	}
	if msg.ID, err = res.LastInsertId(); err != nil {
		return Message{}, s.wrap("record message", err)
	}
	return msg, nil
}

// Recent returns up to limit messages, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, body, hashed_addr, received_at
		FROM messages
		ORDER BY received_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, s.wrap("query messages", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var (
			m  Message
			ns int64
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.HashedAddr, &ns); err != nil {
			return nil, s.wrap("scan message", err)
		}
		m.ReceivedAt = time.Unix(0, ns).UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

// Count returns the number of stored messages.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&n); err != nil {
		return 0, s.wrap("count messages", err)
	}
	return n, nil
}

// Purge deletes messages received before cutoff.
func (s *Store) Purge(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE received_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, s.wrap("purge messages", err)
	}
	return res.RowsAffected()
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) wrap(op string, err error) error {
	if errors.Is(err, sql.ErrConnDone) || strings.Contains(err.Error(), "database is closed") {
		return fmt.Errorf("%s: %w", op, ErrClosed)
	}
	return fmt.Errorf("%s: %w", op, err)
}
