package session

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"synapse-go/internal/logger"
	"synapse-go/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id            TEXT PRIMARY KEY,
	scenario_id   TEXT NOT NULL,
	area          TEXT NOT NULL,
	user_role     TEXT NOT NULL,
	transcript    BLOB NOT NULL,
	score         REAL NOT NULL,
	metrics_json  TEXT NOT NULL,
	report_json   TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS sessions_updated_at ON sessions(updated_at);
`

// zstd frame magic number, little endian.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// SQLiteStore keeps sessions in a single SQLite table. Transcripts are stored
// as JSON, zstd-compressed when compress is on. Rows written either way stay
// readable after the flag flips.
type SQLiteStore struct {
	db       *sql.DB
	compress bool
	enc      *zstd.Encoder
	dec      *zstd.Decoder
	now      func() time.Time
	log      *logrus.Entry
}

// NewSQLiteStore opens the database at path and runs migrations.
func NewSQLiteStore(path string, compress bool) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma busy_timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &SQLiteStore{
		db:       db,
		compress: compress,
		enc:      enc,
		dec:      dec,
		now:      time.Now,
		log:      logger.New().WithComponent("session-store").WithField("path", path),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	s.dec.Close()
	return s.db.Close()
}

// Save inserts the record or replaces the stored one with the same ID.
// created_at of an existing row is kept.
func (s *SQLiteStore) Save(ctx context.Context, r *Record) error {
	if r.ID == "" {
		return fmt.Errorf("save session: empty id")
	}
	transcript, err := s.encodeTranscript(r.Conversation)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	metricsJSON, err := json.Marshal(r.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	reportJSON, err := json.Marshal(r.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	now := s.now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, scenario_id, area, user_role, transcript, score, metrics_json, report_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			scenario_id  = excluded.scenario_id,
			area         = excluded.area,
			user_role    = excluded.user_role,
			transcript   = excluded.transcript,
			score        = excluded.score,
			metrics_json = excluded.metrics_json,
			report_json  = excluded.report_json,
			updated_at   = excluded.updated_at`,
		r.ID, r.ScenarioID, string(r.Area), r.UserRole, transcript, r.Score(),
		string(metricsJSON), string(reportJSON),
		r.CreatedAt.Format(timeLayout), r.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert session %s: %w", r.ID, err)
	}
	s.log.WithFields(logrus.Fields{
		"session_id": r.ID,
		"score":      r.Score(),
		"transcript": len(transcript),
		"compressed": s.compress,
	}).Debug("session saved")
	return nil
}

// timeLayout is fixed width so the text columns sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const selectColumns = `SELECT id, scenario_id, area, user_role, transcript, metrics_json, report_json, created_at, updated_at FROM sessions`

// Get returns the stored session or an error wrapping ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	r, err := s.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return r, nil
}

// List returns the most recently updated sessions first. limit <= 0 means all.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Record, error) {
	q := selectColumns + ` ORDER BY updated_at DESC, id ASC`
	args := []interface{}{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func (s *SQLiteStore) scan(sc scanner) (*Record, error) {
	var (
		r                       Record
		area                    string
		transcript              []byte
		metricsJSON, reportJSON string
		createdAt, updatedAt    string
	)
	if err := sc.Scan(&r.ID, &r.ScenarioID, &area, &r.UserRole, &transcript, &metricsJSON, &reportJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	r.Area = types.Area(area)

	conv, err := s.decodeTranscript(transcript)
	if err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	r.Conversation = conv
	if err := json.Unmarshal([]byte(metricsJSON), &r.Metrics); err != nil {
		return nil, fmt.Errorf("unmarshal metrics: %w", err)
	}
	if err := json.Unmarshal([]byte(reportJSON), &r.Report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	r.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	r.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
	return &r, nil
}

func (s *SQLiteStore) encodeTranscript(c types.Conversation) ([]byte, error) {
	raw, err := json.Marshal(c.Turns)
	if err != nil {
		return nil, err
	}
	if !s.compress {
		return raw, nil
	}
	return s.enc.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

func (s *SQLiteStore) decodeTranscript(blob []byte) (types.Conversation, error) {
	raw := blob
	if bytes.HasPrefix(blob, zstdMagic) {
		var err error
		raw, err = s.dec.DecodeAll(blob, nil)
		if err != nil {
			return types.Conversation{}, fmt.Errorf("zstd: %w", err)
		}
	}
	var turns []types.Turn
	if err := json.Unmarshal(raw, &turns); err != nil {
		return types.Conversation{}, err
	}
	return types.Conversation{Turns: turns}, nil
}
