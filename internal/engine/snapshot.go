package engine

import (
	"encoding/json"
	"fmt"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// snapshot is the serialized engine state. The blob is opaque to the
// host: it owns the storage medium, the engine owns the format.
type snapshot struct {
	Version        int                   `json:"version"`
	JournalEntries []model.JournalEntry  `json:"journalEntries"`
	LedgerAccounts []model.LedgerAccount `json:"ledgerAccounts"`
	CustomAccounts []model.ChartAccount  `json:"customAccounts"`
}

const snapshotVersion = 1

// Snapshot serializes the journal, ledger, and custom accounts.
func (e *Engine) Snapshot() ([]byte, error) {
	snap := snapshot{
		Version:        snapshotVersion,
		JournalEntries: e.entries,
		LedgerAccounts: e.book.Accounts(),
		CustomAccounts: e.chart.Custom(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing state: %w", err)
	}
	return data, nil
}

// Restore replaces the engine state from a snapshot blob. A malformed
// blob is swallowed: the engine stays at its default empty state so
// the host never crashes on a corrupt file.
func (e *Engine) Restore(data []byte) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		e.initState(nil, nil, nil)
		return
	}
	e.initState(snap.CustomAccounts, snap.LedgerAccounts, snap.JournalEntries)
}
