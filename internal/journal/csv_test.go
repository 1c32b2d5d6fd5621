package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

func TestWriteEntries(t *testing.T) {
	entry := NewEntry("2026-08-001", testDate(), "sold goods for 50000 cash", "INV-7", model.TypeSale, []model.JournalLine{
		{AccountCode: chart.CodeCash, AccountName: "Cash", Debit: dec("50000")},
		{AccountCode: chart.CodeSales, AccountName: "Sales Revenue", Credit: dec("50000")},
	})
	entry.Status = model.StatusPosted

	var buf strings.Builder
	require.NoError(t, WriteEntries(&buf, []model.JournalEntry{entry}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "2026-08-001,2026-08-15,1000,Cash,50000.00,,,sold goods for 50000 cash,INV-7,sale,posted", lines[1])
	assert.Equal(t, "2026-08-001,2026-08-15,4000,Sales Revenue,,50000.00,,sold goods for 50000 cash,INV-7,sale,posted", lines[2])
}

func TestWriteEntries_Empty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteEntries(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())
}
