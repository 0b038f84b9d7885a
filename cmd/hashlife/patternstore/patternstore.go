// ─────────────────────────────────────────────────────────────────────────────
// [Package]: patternstore — named-pattern persistence for the demo CLI
//
// Purpose:
//   - Gives cmd/hashlife somewhere to load starting patterns from and save
//     them back to, outside the computational core.
//   - Exercises the teacher's sonnet/go-sqlite3/x-crypto dependencies, which
//     the core packages (bitops through universe) have no use for.
//
// Grounded on syncharvester/syncharvester.go's sonnet.Unmarshal JSON
// decoding and its sql.Open("sqlite3", ...) persistence call, restyled
// around a small named-pattern library instead of Uniswap pool reserves.
// ─────────────────────────────────────────────────────────────────────────────

package patternstore

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/crypto/sha3"

	"github.com/Quinten-van-Woerkom/hashlife/cell"
)

// Pattern is one named starting configuration.
type Pattern struct {
	Name   string `json:"name"`
	Glyphs string `json:"glyphs"`
}

// Library is an ordered collection of named patterns. index is a
// by-name lookup cache keyed by xxhash.Sum64, rebuilt lazily the first
// time Find runs after Patterns changes shape (construction, Add, or a
// Load* call) rather than name-hashed on every lookup.
type Library struct {
	Patterns []Pattern `json:"patterns"`

	index map[uint64]int `json:"-"`
}

// Add appends a pattern encoded in cell's textual '*'/'.'/'$' format (the
// printable rows joined by '$') and invalidates the lookup cache.
func (l *Library) Add(name string, b cell.Block) {
	l.Patterns = append(l.Patterns, Pattern{Name: name, Glyphs: strings.ReplaceAll(b.String(), "\n", "$")})
	l.index = nil
}

// Find decodes the named pattern's block, or reports false if no pattern by
// that name is present.
func (l *Library) Find(name string) (cell.Block, bool) {
	l.ensureIndex()
	i, ok := l.index[xxhash.Sum64String(name)]
	if !ok {
		return cell.Block{}, false
	}
	return cell.FromText(l.Patterns[i].Glyphs), true
}

func (l *Library) ensureIndex() {
	if l.index != nil {
		return
	}
	l.index = make(map[uint64]int, len(l.Patterns))
	for i, p := range l.Patterns {
		l.index[xxhash.Sum64String(p.Name)] = i
	}
}

// Fingerprint returns a sha3-256 digest of the library's canonical JSON
// encoding, to be stored alongside a saved library so a loader can detect
// truncation or corruption before feeding patterns into the engine.
func (l *Library) Fingerprint() ([32]byte, error) {
	encoded, err := sonnet.Marshal(l)
	if err != nil {
		return [32]byte{}, fmt.Errorf("patternstore: fingerprinting: %w", err)
	}
	return sha3.Sum256(encoded), nil
}

// LoadJSON decodes a Library from r.
func LoadJSON(r io.Reader) (Library, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Library{}, fmt.Errorf("patternstore: reading: %w", err)
	}
	var l Library
	if err := sonnet.Unmarshal(data, &l); err != nil {
		return Library{}, fmt.Errorf("patternstore: decoding json: %w", err)
	}
	return l, nil
}

// SaveJSON encodes l to w.
func SaveJSON(w io.Writer, l Library) error {
	encoded, err := sonnet.Marshal(l)
	if err != nil {
		return fmt.Errorf("patternstore: encoding json: %w", err)
	}
	_, err = w.Write(encoded)
	return err
}

const createTableStatement = `CREATE TABLE IF NOT EXISTS pattern (name TEXT PRIMARY KEY, glyphs TEXT NOT NULL)`

// LoadSQLite reads every row of the pattern table at path into a Library.
func LoadSQLite(path string) (Library, error) {
	if _, err := os.Stat(path); err != nil {
		return Library{}, fmt.Errorf("patternstore: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return Library{}, fmt.Errorf("patternstore: opening %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT name, glyphs FROM pattern ORDER BY name")
	if err != nil {
		return Library{}, fmt.Errorf("patternstore: querying %s: %w", path, err)
	}
	defer rows.Close()

	var l Library
	for rows.Next() {
		var p Pattern
		if err := rows.Scan(&p.Name, &p.Glyphs); err != nil {
			return Library{}, fmt.Errorf("patternstore: scanning row: %w", err)
		}
		l.Patterns = append(l.Patterns, p)
	}
	return l, rows.Err()
}

// SaveSQLite writes l's patterns to the pattern table at path, creating the
// table if absent and overwriting any row with a matching name.
func SaveSQLite(path string, l Library) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("patternstore: opening %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(createTableStatement); err != nil {
		return fmt.Errorf("patternstore: creating table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("patternstore: starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO pattern (name, glyphs) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("patternstore: preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range l.Patterns {
		if _, err := stmt.Exec(p.Name, p.Glyphs); err != nil {
			return fmt.Errorf("patternstore: inserting %q: %w", p.Name, err)
		}
	}
	return tx.Commit()
}
