// Package engine orchestrates the extraction, classification, journal
// building, and posting pipeline behind a single facade. The engine is
// an explicit state value: transitions return results plus a list of
// events for the caller to dispatch, and nothing inside it calls back
// out. It expects a single writer; wrap it in a mutex if the host is
// concurrent.
package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/classify"
	"github.com/bookkeep-dev/bookkeep/internal/config"
	"github.com/bookkeep-dev/bookkeep/internal/extract"
	"github.com/bookkeep-dev/bookkeep/internal/id"
	"github.com/bookkeep-dev/bookkeep/internal/journal"
	"github.com/bookkeep-dev/bookkeep/internal/ledger"
	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// ErrRejected marks an entry that failed posting validation. The entry
// travels alongside so the caller can inspect and correct it.
var ErrRejected = errors.New("journal entry rejected")

// Engine holds the mutable ledger state and the immutable pipeline
// configuration.
type Engine struct {
	cfg     *config.Config
	chart   *chart.Service
	builder *journal.Builder
	book    *ledger.Book
	entries []model.JournalEntry
}

// New creates an Engine with the base chart of accounts and an empty
// ledger.
func New(cfg *config.Config) *Engine {
	e := &Engine{cfg: cfg}
	e.initState(nil, nil, nil)
	return e
}

func (e *Engine) initState(custom []model.ChartAccount, accounts []model.LedgerAccount, entries []model.JournalEntry) {
	e.chart = chart.NewService(custom)
	e.builder = journal.NewBuilder(e.chart, e.cfg.Loans.InterestShare)
	if accounts == nil {
		e.book = ledger.NewBook()
	} else {
		e.book = ledger.NewBookFromAccounts(accounts)
	}
	e.entries = entries
}

// ProcessParams are the inputs to ProcessTransaction. Amount overrides
// extraction when positive; a zero Date means now.
type ProcessParams struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
}

// ProcessResult is what one successful submission produces.
type ProcessResult struct {
	Entry          model.JournalEntry
	Interpretation model.Interpretation
	Summary        string
}

// ProcessTransaction runs the full pipeline for one description and
// posts the resulting entry. When no usable amount is found it returns
// (nil, nil, nil) and changes nothing: the caller should ask the user
// for clarification rather than treat it as a failure.
func (e *Engine) ProcessTransaction(params ProcessParams) (*ProcessResult, []Event, error) {
	ex := extract.Extract(params.Description, params.Category)
	if params.Amount.IsPositive() {
		ex.Amount = params.Amount
		ex.HasAmount = true
	}
	if !ex.HasAmount {
		return nil, nil, nil
	}

	nature := classify.Nature(ex)
	initial := classify.TransactionType(ex, nature)
	interp, flags := classify.Refine(params.Description, ex, initial, e.cfg)
	interp.Confidence = classify.Score(ex, interp)

	lines := e.builder.Build(journal.Request{
		Type:         interp.TransactionType,
		Description:  params.Description,
		CategoryHint: params.Category,
		Net:          interp.NetAmount,
		VAT:          interp.VATAmount,
		WHT:          interp.WHTAmount,
		Method:       interp.PaymentMethod,
		IsCredit:     interp.IsCredit,
		Flags:        flags,
	})

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := journal.NewEntry(e.nextEntryID(date), date, params.Description, "", interp.TransactionType, lines)
	result := &ProcessResult{Interpretation: interp}

	events, err := e.post(&entry)
	result.Entry = entry
	if err != nil {
		return result, nil, err
	}
	result.Summary = summarize(entry, interp)
	return result, events, nil
}

// PostManualJournalEntry records a professionally prepared entry,
// bypassing interpretation but not the balance invariant. Unbalanced
// input is rejected whole: the returned entry carries IsBalanced=false
// and nothing is applied to the ledger.
func (e *Engine) PostManualJournalEntry(narration string, date time.Time, lines []model.JournalLine, reference string) (model.JournalEntry, []Event, error) {
	if date.IsZero() {
		date = time.Now()
	}
	for i := range lines {
		if lines[i].AccountName == "" {
			if a, ok := e.chart.Get(lines[i].AccountCode); ok {
				lines[i].AccountName = a.Name
			}
		}
	}

	entry := journal.NewEntry(e.nextEntryID(date), date, narration, reference, model.TypeAdjustment, lines)
	events, err := e.post(&entry)
	return entry, events, err
}

// post validates and applies one entry atomically. On any validation
// failure the entry is marked rejected and the ledger is untouched.
func (e *Engine) post(entry *model.JournalEntry) ([]Event, error) {
	if verrs := journal.Validate(*entry, e.chart); len(verrs) > 0 {
		entry.Status = model.StatusRejected
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("%w: %s", ErrRejected, strings.Join(msgs, "; "))
	}

	entry.Status = model.StatusPosted
	if err := e.book.Post(*entry, e.chart); err != nil {
		entry.Status = model.StatusRejected
		return nil, fmt.Errorf("%w: %v", ErrRejected, err)
	}

	e.entries = append(e.entries, *entry)
	event := newEvent(EventEntryPosted, entry.Date, entry.ID,
		fmt.Sprintf("%s posted: %s (%s)", entry.ID, entry.Narration, entry.TotalDebits.StringFixed(2)))
	return []Event{event}, nil
}

// AddCustomAccount registers a user-defined account. Duplicate codes
// fail with chart.ErrDuplicateCode.
func (e *Engine) AddCustomAccount(code, name string, class model.AccountClass, subClass string) (model.ChartAccount, []Event, error) {
	account, err := e.chart.Add(code, name, class, subClass)
	if err != nil {
		return model.ChartAccount{}, nil, err
	}
	event := newEvent(EventAccountAdded, time.Now(), "",
		fmt.Sprintf("account %s (%s) added to chart", account.Code, account.Name))
	return account, []Event{event}, nil
}

// GenerateTrialBalance derives the trial balance from the ledger.
func (e *Engine) GenerateTrialBalance() ledger.TrialBalance {
	return e.book.TrialBalance()
}

// GenerateStatements derives the financial statement draft.
func (e *Engine) GenerateStatements() ledger.Statements {
	return e.book.Statements()
}

// AccountBalance returns the closing balance for an account code.
func (e *Engine) AccountBalance(code string) decimal.Decimal {
	return e.book.Balance(code)
}

// AccountHistory returns the posted entry trail for an account code.
func (e *Engine) AccountHistory(code string) []model.LedgerEntry {
	return e.book.History(code)
}

// JournalEntries returns all posted entries in submission order.
func (e *Engine) JournalEntries() []model.JournalEntry {
	out := make([]model.JournalEntry, len(e.entries))
	copy(out, e.entries)
	return out
}

// ChartAccounts returns the current chart of accounts.
func (e *Engine) ChartAccounts() []model.ChartAccount {
	return e.chart.All()
}

// CreateClosingEntries zeroes all income and expense accounts into
// Retained Earnings at period end and posts the resulting entries.
func (e *Engine) CreateClosingEntries(date time.Time) ([]model.JournalEntry, []Event, error) {
	if date.IsZero() {
		date = time.Now()
	}

	incomeLines, expenseLines := e.book.ClosingLines()

	var posted []model.JournalEntry
	var events []Event
	for _, set := range []struct {
		narration string
		lines     []model.JournalLine
	}{
		{"Close income accounts to Retained Earnings", incomeLines},
		{"Close expense accounts to Retained Earnings", expenseLines},
	} {
		if len(set.lines) == 0 {
			continue
		}
		entry := journal.NewEntry(e.nextEntryID(date), date, set.narration, "", model.TypeClosing, set.lines)
		evs, err := e.post(&entry)
		if err != nil {
			return posted, events, err
		}
		posted = append(posted, entry)
		events = append(events, evs...)
	}

	if len(posted) > 0 {
		events = append(events, newEvent(EventPeriodClosed, date, "",
			fmt.Sprintf("period closed with %d closing entries", len(posted))))
	}
	return posted, events, nil
}

// Reset clears all state back to an empty ledger with the base chart
// of accounts re-initialized.
func (e *Engine) Reset() []Event {
	e.initState(nil, nil, nil)
	return []Event{newEvent(EventReset, time.Now(), "", "ledger state reset")}
}

// nextEntryID issues the next deterministic sequential ID for the
// entry's year-month.
func (e *Engine) nextEntryID(date time.Time) string {
	year, month := date.Year(), int(date.Month())
	maxSeq := 0
	for _, entry := range e.entries {
		y, m, seq, err := id.ParseEntryID(entry.ID)
		if err != nil || y != year || m != month {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return id.FormatEntryID(year, month, maxSeq+1)
}

// summarize renders a one-line human-readable description of a posted
// entry for the caller's UI.
func summarize(entry model.JournalEntry, interp model.Interpretation) string {
	var parts []string
	for _, l := range entry.Lines {
		if !l.Debit.IsZero() {
			parts = append(parts, fmt.Sprintf("debit %s %s", l.AccountName, l.Debit.StringFixed(2)))
		} else {
			parts = append(parts, fmt.Sprintf("credit %s %s", l.AccountName, l.Credit.StringFixed(2)))
		}
	}
	return fmt.Sprintf("Recorded %s: %s (confidence %s)",
		entry.TransactionType, strings.Join(parts, ", "), interp.Confidence.StringFixed(2))
}
