package billing

import (
	"testing"
	"time"

	"fieldserve_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func agingInvoice(id, balance string, daysOverdue int, clientID string, status entities.InvoiceStatus, now time.Time) entities.Invoice {
	due := now.AddDate(0, 0, -daysOverdue)
	inv := entities.Invoice{
		ID:         id,
		CompanyID:  "co-1",
		Status:     status,
		Total:      dec(balance),
		AmountPaid: decimal.Zero,
		BalanceDue: dec(balance),
		DueDate:    &due,
	}
	if clientID != "" {
		inv.ClientID = &clientID
	}
	return inv
}

func TestComputeAgingBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 10)

	invoices := []entities.Invoice{
		agingInvoice("a", "100", 5, "c1", entities.InvoiceStatusSent, now),
		agingInvoice("b", "200", 30, "c1", entities.InvoiceStatusSent, now),
		agingInvoice("c", "300", 31, "c2", entities.InvoiceStatusPastDue, now),
		agingInvoice("d", "400", 90, "c2", entities.InvoiceStatusPastDue, now),
		agingInvoice("e", "500", 91, "c3", entities.InvoiceStatusPastDue, now),
		// excluded: void, zero balance, not yet due
		agingInvoice("f", "999", 40, "c3", entities.InvoiceStatusVoid, now),
		agingInvoice("g", "0", 40, "c3", entities.InvoiceStatusPaid, now),
		{ID: "h", Status: entities.InvoiceStatusSent, BalanceDue: dec("50"), DueDate: &future},
		{ID: "i", Status: entities.InvoiceStatusDraft, BalanceDue: dec("75")},
	}

	b := ComputeAgingBuckets(invoices, now)

	if !b.Days0To30.Equal(dec("300")) {
		t.Fatalf("0-30: expected 300, got %s", b.Days0To30)
	}
	if !b.Days31To60.Equal(dec("300")) {
		t.Fatalf("31-60: expected 300, got %s", b.Days31To60)
	}
	if !b.Days61To90.Equal(dec("400")) {
		t.Fatalf("61-90: expected 400, got %s", b.Days61To90)
	}
	if !b.Days90Plus.Equal(dec("500")) {
		t.Fatalf("90+: expected 500, got %s", b.Days90Plus)
	}

	t.Run("bucket sum equals filtered balance sum", func(t *testing.T) {
		want := decimal.Zero
		for _, inv := range invoices {
			if inv.Status == entities.InvoiceStatusVoid || !inv.BalanceDue.IsPositive() {
				continue
			}
			if inv.DueDate == nil || inv.DueDate.After(now) {
				continue
			}
			want = want.Add(inv.BalanceDue)
		}
		got := b.Days0To30.Add(b.Days31To60).Add(b.Days61To90).Add(b.Days90Plus)
		if !got.Equal(want) {
			t.Fatalf("partition law broken: buckets sum %s, filtered sum %s", got, want)
		}
	})
}

func TestComputeStatusCounts(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sent := now.AddDate(0, 0, -10)
	future := now.AddDate(0, 0, 10)

	overdue := agingInvoice("a", "100", 45, "c1", entities.InvoiceStatusSent, now) // stale stored status
	overdue.SentAt = &sent

	awaiting := entities.Invoice{ID: "b", Status: entities.InvoiceStatusAwaitingPayment, Total: dec("200"), BalanceDue: dec("200"), AmountPaid: decimal.Zero, DueDate: &future, SentAt: &sent}
	paid := entities.Invoice{ID: "c", Status: entities.InvoiceStatusPaid, Total: dec("300"), BalanceDue: decimal.Zero, AmountPaid: dec("300")}
	void := entities.Invoice{ID: "d", Status: entities.InvoiceStatusVoid, Total: dec("400"), BalanceDue: dec("400")}

	c := ComputeStatusCounts([]entities.Invoice{overdue, awaiting, paid, void}, now)

	if c.Overdue != 1 {
		t.Fatalf("overdue: expected 1, got %d", c.Overdue)
	}
	if c.Awaiting != 1 {
		t.Fatalf("awaiting: expected 1, got %d", c.Awaiting)
	}
	if c.Paid != 1 {
		t.Fatalf("paid: expected 1, got %d", c.Paid)
	}
	if !c.OutstandingTotal.Equal(dec("300")) {
		t.Fatalf("outstanding: expected 300, got %s", c.OutstandingTotal)
	}
}

func TestTopOutstanding(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	invoices := []entities.Invoice{
		agingInvoice("a", "100", 5, "c-alpha", entities.InvoiceStatusSent, now),
		agingInvoice("b", "250", 5, "c-alpha", entities.InvoiceStatusSent, now),
		agingInvoice("c", "300", 5, "c-beta", entities.InvoiceStatusSent, now),
		agingInvoice("d", "350", 5, "", entities.InvoiceStatusSent, now),
		agingInvoice("e", "350", 5, "c-gamma", entities.InvoiceStatusSent, now),
		agingInvoice("f", "999", 5, "c-void", entities.InvoiceStatusVoid, now),
	}

	rows := TopOutstanding(invoices, 5)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0].ClientID != "c-alpha" || !rows[0].Balance.Equal(dec("350")) {
		t.Fatalf("row 0: %+v", rows[0])
	}
	// three-way tie at 350: alpha < c-gamma < unknown, ascending id
	if rows[1].ClientID != "c-gamma" {
		t.Fatalf("tie-break broken, row 1: %+v", rows[1])
	}
	if rows[2].ClientID != UnknownClientKey {
		t.Fatalf("missing client not grouped under sentinel, row 2: %+v", rows[2])
	}
	if rows[3].ClientID != "c-beta" || !rows[3].Balance.Equal(dec("300")) {
		t.Fatalf("row 3: %+v", rows[3])
	}

	t.Run("limit truncates", func(t *testing.T) {
		rows := TopOutstanding(invoices, 2)
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
	})
}
