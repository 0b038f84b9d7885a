package patternstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quinten-van-Woerkom/hashlife/cell"
)

func testLibrary() Library {
	var l Library
	l.Add("blinker", cell.Blinker())
	l.Add("glider", cell.Glider())
	return l
}

func TestAddAndFindRoundTrips(t *testing.T) {
	l := testLibrary()
	got, ok := l.Find("glider")
	assert.True(t, ok)
	assert.Equal(t, cell.Glider(), got)
}

func TestFindMissingPatternReportsFalse(t *testing.T) {
	l := testLibrary()
	_, ok := l.Find("nonexistent")
	assert.False(t, ok)
}

func TestJSONRoundTrip(t *testing.T) {
	l := testLibrary()
	var buf bytes.Buffer
	require.NoError(t, SaveJSON(&buf, l))

	loaded, err := LoadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, l, loaded)
}

func TestFingerprintIsStableAcrossEqualLibraries(t *testing.T) {
	a := testLibrary()
	b := testLibrary()
	fa, err := a.Fingerprint()
	require.NoError(t, err)
	fb, err := b.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
}

func TestFingerprintDiffersWhenLibraryDiffers(t *testing.T) {
	a := testLibrary()
	b := testLibrary()
	b.Add("block", cell.Block4())

	fa, err := a.Fingerprint()
	require.NoError(t, err)
	fb, err := b.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, fa, fb)
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.db")
	l := testLibrary()

	require.NoError(t, SaveSQLite(path, l))
	loaded, err := LoadSQLite(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, l.Patterns, loaded.Patterns)
}

func TestLoadSQLiteMissingFileIsAnError(t *testing.T) {
	_, err := LoadSQLite(filepath.Join(os.TempDir(), "does-not-exist-hashlife.db"))
	assert.Error(t, err)
}
