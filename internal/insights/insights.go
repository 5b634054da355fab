// Package insights aggregates the ledger by category.
package insights

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

// CategoryTotal sums income and expense amounts for one category.
type CategoryTotal struct {
	Category model.Category
	Income   decimal.Decimal
	Expense  decimal.Decimal
}

// Net returns income minus expense.
func (c CategoryTotal) Net() decimal.Decimal { return c.Income.Sub(c.Expense) }

// Summary is the per-category breakdown of a set of transactions.
type Summary struct {
	Totals  []CategoryTotal // one per category, in category order
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Summarize totals txs by category.
func Summarize(txs []model.Transaction) Summary {
	byCategory := make(map[model.Category]*CategoryTotal)
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, c := range model.Categories() {
		s.Totals = append(s.Totals, CategoryTotal{Category: c, Income: decimal.Zero, Expense: decimal.Zero})
	}
	for i := range s.Totals {
		byCategory[s.Totals[i].Category] = &s.Totals[i]
	}

	for _, tx := range txs {
		total, ok := byCategory[tx.Category]
		if !ok {
			continue
		}
		switch tx.Type {
		case model.TypeIncome:
			total.Income = total.Income.Add(tx.Amount)
			s.Income = s.Income.Add(tx.Amount)
		case model.TypeExpense:
			total.Expense = total.Expense.Add(tx.Amount)
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	return s
}

// Markdown renders the summary as a markdown table, skipping empty categories.
func (s Summary) Markdown() string {
	var b strings.Builder
	b.WriteString("# Insights\n\n")
	b.WriteString("| category | income | expense | net |\n|---|---:|---:|---:|\n")
	for _, t := range s.Totals {
		if t.Income.IsZero() && t.Expense.IsZero() {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			t.Category, t.Income.StringFixed(2), t.Expense.StringFixed(2), t.Net().StringFixed(2))
	}
	fmt.Fprintf(&b, "| **total** | %s | %s | %s |\n",
		s.Income.StringFixed(2), s.Expense.StringFixed(2), s.Income.Sub(s.Expense).StringFixed(2))
	return b.String()
}
