package ledger

import (
	"time"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

// List view options.
const (
	OptionAll = iota + 1
	OptionPastWeek
	OptionPastMonth
	OptionCustom
)

// NumOptions is the number of list views.
const NumOptions = OptionCustom

const (
	daysInWeek  = 7
	daysInMonth = 30
	dayPad      = 1
)

// Query selects a list view. Start and End are only read for OptionCustom.
type Query struct {
	Option int
	Today  time.Time
	Start  time.Time
	End    time.Time
}

// List returns the transactions selected by q in ledger order.
func (l *Ledger) List(q Query) ([]model.Transaction, error) {
	switch q.Option {
	case OptionAll:
		return l.Transactions(), nil
	case OptionPastWeek:
		return PastWeek(l.transactions, q.Today), nil
	case OptionPastMonth:
		return PastMonth(l.transactions, q.Today), nil
	case OptionCustom:
		return Between(l.transactions, q.Start, q.End), nil
	default:
		return nil, &IndexError{Index: q.Option, Size: NumOptions}
	}
}

// PastWeek keeps transactions dated within the 7 days ending today.
func PastWeek(txs []model.Transaction, today time.Time) []model.Transaction {
	return after(txs, model.Day(today).AddDate(0, 0, -(daysInWeek+dayPad)))
}

// PastMonth keeps transactions dated within the 30 days ending today.
func PastMonth(txs []model.Transaction, today time.Time) []model.Transaction {
	return after(txs, model.Day(today).AddDate(0, 0, -(daysInMonth+dayPad)))
}

// Between keeps transactions dated from start to end inclusive.
func Between(txs []model.Transaction, start, end time.Time) []model.Transaction {
	lo := model.Day(start).AddDate(0, 0, -dayPad)
	hi := model.Day(end).AddDate(0, 0, dayPad)
	out := []model.Transaction{}
	for _, tx := range txs {
		if tx.Date.After(lo) && tx.Date.Before(hi) {
			out = append(out, tx)
		}
	}
	return out
}

func after(txs []model.Transaction, bound time.Time) []model.Transaction {
	out := []model.Transaction{}
	for _, tx := range txs {
		if tx.Date.After(bound) {
			out = append(out, tx)
		}
	}
	return out
}
