package scores

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Record is one best time for a difficulty.
type Record struct {
	Duration time.Duration
	SetAt    time.Time
}

func (r Record) String() string {
	d := r.Duration.Round(time.Second)
	if h := int(d.Hours()); h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d",
			h, int(d.Minutes())%60, int(d.Seconds())%60)
	}
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Store keeps the best completion time per difficulty seed in a local
// sqlite file. Values are gob-encoded [Record]s.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

var ErrNotFound = fmt.Errorf("no record for this difficulty")

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return NewStore(db)
}

func NewStore(db *sql.DB) (*Store, error) {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS besttimes (
	seed	TEXT PRIMARY KEY,
	record	BLOB
);`)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Best retrieves the record for a difficulty seed. If the difficulty was
// never won, [ErrNotFound] is returned.
func (s *Store) Best(seed string) (Record, error) {
	var (
		record Record
		v      []uint8
	)
	if err := s.db.QueryRow(
		`SELECT record FROM besttimes WHERE seed = ?;`,
		seed).Scan(&v); err == sql.ErrNoRows {
		return record, ErrNotFound
	} else if err != nil {
		return record, err
	}
	err := gob.NewDecoder(bytes.NewReader(v)).Decode(&record)
	return record, err
}

// Submit files a completion time and reports whether it improved on the
// stored best. Slower times leave the table untouched.
func (s *Store) Submit(seed string, d time.Duration) (improved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	best, err := s.Best(seed)
	if err == nil && best.Duration <= d {
		return false, nil
	} else if err != nil && err != ErrNotFound {
		return false, err
	}

	var buf bytes.Buffer
	record := Record{Duration: d, SetAt: time.Now().UTC()}
	if err := gob.NewEncoder(&buf).Encode(record); err != nil {
		return false, err
	}
	_, err = s.db.Exec(`
INSERT INTO besttimes (seed, record)
VALUES(?, ?)
ON CONFLICT(seed)
DO UPDATE SET record=excluded.record;`,
		seed, buf.Bytes())
	return err == nil, err
}

// Count returns the number of difficulties with a recorded best time.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM besttimes;`).Scan(&count)
	return count, err
}
