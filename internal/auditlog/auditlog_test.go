package auditlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() Entry {
	return Entry{
		Timestamp:   time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC),
		EntryID:     "2026-08-001",
		Description: "sold goods for 50000 cash",
		Type:        "sale",
		Amount:      "50000.00",
		Confidence:  "1.00",
		Assumptions: "",
		Questions:   "",
	}
}

func TestAppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "audit.csv")

	first := sampleEntry()
	require.NoError(t, Append(path, []Entry{first}))

	second := sampleEntry()
	second.EntryID = "2026-08-002"
	second.Description = "paid rent 30000"
	second.Type = "expense"
	second.Assumptions = "no payment channel stated; assumed bank"
	require.NoError(t, Append(path, []Entry{second}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestAppend_DescriptionWithCommasSurvives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")

	e := sampleEntry()
	e.Description = `paid rent, electricity, and "misc" 30000`
	require.NoError(t, Append(path, []Entry{e}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e.Description, entries[0].Description)
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntry_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"just", "three", "fields"})
	assert.Error(t, err)
}
