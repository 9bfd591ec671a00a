// Package audit persists a tamper-evident trail of security-relevant
// actions to SQLite. Every encrypt, decrypt, and key operation appends one
// row; the document itself never enters the log, only its content hash.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/presswerk/presswerk-go/pkg/presswerk/abi"
	"github.com/presswerk/presswerk-go/pkg/presswerk/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS audit_log (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp      INTEGER NOT NULL,
	action         TEXT NOT NULL,
	document_hash  TEXT NOT NULL,
	success        INTEGER NOT NULL,
	details        TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_audit_log_timestamp ON audit_log(timestamp);
`

// Entry is one appended audit row.
type Entry struct {
	ID           int64
	Timestamp    time.Time
	Action       string
	DocumentHash string
	Success      bool
	Details      string
}

// Record returns the fixed-layout boundary view of the entry. The action and
// hash strings travel out of line, so their pointer slots stay null here.
func (e Entry) Record() abi.AuditEntryRecord {
	return abi.AuditEntryRecord{
		Timestamp: uint64(e.Timestamp.Unix()),
		EntryID:   uint64(e.ID),
		Success:   e.Success,
	}
}

// Log is an append-only audit trail. Rows are never updated or deleted
// through this type.
type Log struct {
	db  *sql.DB
	log logging.Logger
}

// Open opens (creating if needed) the audit database at path. A nil logger
// binds to the default.
func Open(path string, log logging.Logger) (*Log, error) {
	if log == nil {
		log = logging.New(nil)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: apply schema: %w", err)
	}
	return &Log{db: db, log: log}, nil
}

// OpenInMemory opens a private in-memory audit log, used in tests and
// ephemeral runs.
func OpenInMemory(log logging.Logger) (*Log, error) {
	return Open(":memory:", log)
}

// Append records one action and returns the row id. docHash is the hex
// content hash of the document acted on; it may be empty for actions with no
// document, such as key generation.
func (l *Log) Append(action, docHash string, success bool, details string) (int64, error) {
	now := time.Now()
	res, err := l.db.Exec(
		`INSERT INTO audit_log (timestamp, action, document_hash, success, details) VALUES (?, ?, ?, ?, ?)`,
		now.Unix(), action, docHash, boolToInt(success), details,
	)
	if err != nil {
		return 0, fmt.Errorf("audit: append %s: %w", action, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("audit: append %s: %w", action, err)
	}
	l.log.Debug(context.Background(), "audit entry appended",
		"id", id, "action", action, "success", success)
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	rows, err := l.db.Query(
		`SELECT id, timestamp, action, document_hash, success, details
		 FROM audit_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: query recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		var success int
		if err := rows.Scan(&e.ID, &ts, &e.Action, &e.DocumentHash, &success, &e.Details); err != nil {
			return nil, fmt.Errorf("audit: scan entry: %w", err)
		}
		e.Timestamp = time.Unix(ts, 0)
		e.Success = success != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit: iterate entries: %w", err)
	}
	return entries, nil
}

// Count returns the total number of entries.
func (l *Log) Count() (int64, error) {
	var n int64
	if err := l.db.QueryRow(`SELECT COUNT(*) FROM audit_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("audit: count entries: %w", err)
	}
	return n, nil
}

// Close releases the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
