package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldserve_crm/internal/domain/billing"
	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidActor         = errors.New("invalid actor")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrGatewayDeclined      = errors.New("payment gateway declined the charge")
)

// RecordPaymentInput is the command to reconcile money against an invoice.
// CardPayload is the raw provider request, only read for the card method.
type RecordPaymentInput struct {
	InvoiceID   string
	Amount      decimal.Decimal
	Method      string
	CardPayload json.RawMessage
}

// IPaymentUseCase encapsulates payment reconciliation.
//
// Manual methods (cash, check, bank transfer) are recorded directly. Card
// payments are charged through the gateway first; only an approved charge
// reaches the ledger. Either way the invoice balance and status are
// recomputed through the reconciliation rules.

type IPaymentUseCase interface {
	Record(ctx context.Context, in RecordPaymentInput) (entities.Payment, entities.Invoice, error)
	Void(ctx context.Context, paymentID, voidedBy string) (entities.Payment, entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, invoiceRepo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, invoiceRepo: invoiceRepo, gateway: gateway}
}

func (u *PaymentUseCase) Record(ctx context.Context, in RecordPaymentInput) (entities.Payment, entities.Invoice, error) {
	in.InvoiceID = strings.TrimSpace(in.InvoiceID)
	if in.InvoiceID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidInvoiceID
	}
	method := entities.PaymentMethod(strings.TrimSpace(in.Method))
	if !method.Valid() {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidPaymentMethod
	}
	if !in.Amount.IsPositive() {
		return entities.Payment{}, entities.Invoice{}, billing.ErrInvalidPaymentAmount
	}

	inv, _, err := u.invoiceRepo.GetByID(ctx, in.InvoiceID)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvoiceNotFound
	}

	// Reject before touching the gateway: an overpayment must never reach
	// the card processor.
	if inv.Status == entities.InvoiceStatusVoid {
		return entities.Payment{}, entities.Invoice{}, billing.ErrInvoiceVoid
	}
	if in.Amount.GreaterThan(inv.BalanceDue) {
		return entities.Payment{}, entities.Invoice{}, billing.ErrOverpaymentNotAllowed
	}

	now := time.Now().UTC()
	paymentID := uuid.NewString()

	if method == entities.PaymentMethodCard {
		providerID, err := u.chargeCard(ctx, inv, in)
		if err != nil {
			return entities.Payment{}, entities.Invoice{}, err
		}
		paymentID = providerID
	}

	p := entities.Payment{
		ID:        paymentID,
		InvoiceID: inv.ID,
		CompanyID: inv.CompanyID,
		Amount:    in.Amount,
		Method:    method,
		PaidAt:    now,
	}

	reconciled, err := billing.ApplyPayment(inv, p, now)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}

	updatedInvoice, err := u.invoiceRepo.Update(ctx, reconciled)
	if err != nil {
		log.Printf("[payment][usecase] ledger written but invoice update failed invoice_id=%s payment_id=%s err=%v", inv.ID, created.ID, err)
		return entities.Payment{}, entities.Invoice{}, err
	}
	return created, updatedInvoice, nil
}

// chargeCard runs the provider charge and returns the provider payment id.
// The invoice id rides along as external_reference so provider events can
// be reconciled later; the charged amount is always ours, never the
// caller's payload.
func (u *PaymentUseCase) chargeCard(ctx context.Context, inv entities.Invoice, in RecordPaymentInput) (string, error) {
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}

	payload := in.CardPayload
	if len(payload) == 0 || !json.Valid(payload) {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.ID)
	}
	amount, _ := in.Amount.Round(2).Float64()
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return "", err
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway charge failed invoice_id=%s err=%v", inv.ID, err)
		return "", err
	}
	if providerStatus != "approved" {
		log.Printf("[payment][usecase] gateway declined invoice_id=%s provider_status=%s", inv.ID, providerStatus)
		return "", ErrGatewayDeclined
	}
	return providerID, nil
}

func (u *PaymentUseCase) Void(ctx context.Context, paymentID, voidedBy string) (entities.Payment, entities.Invoice, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidPaymentID
	}
	voidedBy = strings.TrimSpace(voidedBy)
	if voidedBy == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidActor
	}

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrPaymentNotFound
	}

	inv, _, err := u.invoiceRepo.GetByID(ctx, p.InvoiceID)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvoiceNotFound
	}

	reconciled, voided, err := billing.VoidPayment(inv, p, voidedBy, time.Now().UTC())
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}

	updatedPayment, err := u.repo.Update(ctx, voided)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}

	updatedInvoice, err := u.invoiceRepo.Update(ctx, reconciled)
	if err != nil {
		log.Printf("[payment][usecase] payment voided but invoice update failed invoice_id=%s payment_id=%s err=%v", inv.ID, p.ID, err)
		return entities.Payment{}, entities.Invoice{}, err
	}
	return updatedPayment, updatedInvoice, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}
