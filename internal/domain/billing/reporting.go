package billing

import (
	"sort"
	"time"

	"fieldserve_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// UnknownClientKey groups invoices that carry no client id in the
// top-outstanding report.
const UnknownClientKey = "unknown"

// AgingBuckets holds outstanding balances bucketed by days overdue.
// Invoices not yet due are excluded entirely; the report is strictly
// past-due oriented.
type AgingBuckets struct {
	Days0To30  decimal.Decimal `json:"days_0_30"`
	Days31To60 decimal.Decimal `json:"days_31_60"`
	Days61To90 decimal.Decimal `json:"days_61_90"`
	Days90Plus decimal.Decimal `json:"days_90_plus"`
}

// ComputeAgingBuckets buckets the balance of every non-void invoice with a
// positive balance and a due date at or before now by floor(days overdue).
func ComputeAgingBuckets(invoices []entities.Invoice, now time.Time) AgingBuckets {
	b := AgingBuckets{
		Days0To30:  decimal.Zero,
		Days31To60: decimal.Zero,
		Days61To90: decimal.Zero,
		Days90Plus: decimal.Zero,
	}
	for _, inv := range invoices {
		if inv.Status == entities.InvoiceStatusVoid || !inv.BalanceDue.IsPositive() {
			continue
		}
		if inv.DueDate == nil || inv.DueDate.After(now) {
			continue
		}
		days := int(now.Sub(*inv.DueDate) / (24 * time.Hour))
		switch {
		case days <= 30:
			b.Days0To30 = b.Days0To30.Add(inv.BalanceDue)
		case days <= 60:
			b.Days31To60 = b.Days31To60.Add(inv.BalanceDue)
		case days <= 90:
			b.Days61To90 = b.Days61To90.Add(inv.BalanceDue)
		default:
			b.Days90Plus = b.Days90Plus.Add(inv.BalanceDue)
		}
	}
	return b
}

// StatusCounts is a portfolio-level single-pass summary.
type StatusCounts struct {
	Awaiting         int             `json:"awaiting"`
	Overdue          int             `json:"overdue"`
	Paid             int             `json:"paid"`
	OutstandingTotal decimal.Decimal `json:"outstanding_total"`
}

// ComputeStatusCounts aggregates invoice states. Overdue-ness is computed
// live from balance and due date, never trusted from the stored status.
func ComputeStatusCounts(invoices []entities.Invoice, now time.Time) StatusCounts {
	c := StatusCounts{OutstandingTotal: decimal.Zero}
	for _, inv := range invoices {
		if inv.Status == entities.InvoiceStatusVoid {
			continue
		}
		switch {
		case inv.IsOverdue(now):
			c.Overdue++
		case inv.BalanceDue.IsZero() && inv.AmountPaid.IsPositive():
			c.Paid++
		case inv.BalanceDue.IsPositive() && inv.SentAt != nil:
			c.Awaiting++
		}
		if inv.BalanceDue.IsPositive() {
			c.OutstandingTotal = c.OutstandingTotal.Add(inv.BalanceDue)
		}
	}
	return c
}

// ClientBalance is one row of the top-outstanding report.
type ClientBalance struct {
	ClientID string          `json:"client_id"`
	Balance  decimal.Decimal `json:"balance"`
}

// TopOutstanding groups outstanding balances by client, largest first,
// truncated to limit. Invoices without a client id group under
// UnknownClientKey. Ties break by ascending client id so the order is
// deterministic regardless of input order.
func TopOutstanding(invoices []entities.Invoice, limit int) []ClientBalance {
	if limit <= 0 {
		limit = 5
	}

	totals := make(map[string]decimal.Decimal)
	for _, inv := range invoices {
		if inv.Status == entities.InvoiceStatusVoid || !inv.BalanceDue.IsPositive() {
			continue
		}
		key := UnknownClientKey
		if inv.ClientID != nil && *inv.ClientID != "" {
			key = *inv.ClientID
		}
		totals[key] = totals[key].Add(inv.BalanceDue)
	}

	out := make([]ClientBalance, 0, len(totals))
	for id, bal := range totals {
		out = append(out, ClientBalance{ClientID: id, Balance: bal})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Balance.Equal(out[j].Balance) {
			return out[i].Balance.GreaterThan(out[j].Balance)
		}
		return out[i].ClientID < out[j].ClientID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
