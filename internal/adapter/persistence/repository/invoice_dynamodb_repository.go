package repository

import (
	"context"
	"errors"

	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesCompanyIDIndex   = "company_id-index"
)

type invoiceLineItemRecord struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Type         string `dynamodbav:"type"`
	Quantity     string `dynamodbav:"quantity"`
	UnitPrice    string `dynamodbav:"unit_price"`
	DisplayOrder int    `dynamodbav:"display_order"`
}

type invoiceItem struct {
	ID            string                  `dynamodbav:"id"`
	CompanyID     string                  `dynamodbav:"company_id"`
	ClientID      string                  `dynamodbav:"client_id,omitempty"`
	ProjectID     string                  `dynamodbav:"project_id,omitempty"`
	OpportunityID string                  `dynamodbav:"opportunity_id,omitempty"`
	EstimateID    string                  `dynamodbav:"estimate_id,omitempty"`
	Status        string                  `dynamodbav:"status"`
	Subtotal      string                  `dynamodbav:"subtotal"`
	TaxAmount     string                  `dynamodbav:"tax_amount"`
	Total         string                  `dynamodbav:"total"`
	AmountPaid    string                  `dynamodbav:"amount_paid"`
	BalanceDue    string                  `dynamodbav:"balance_due"`
	TaxRate       string                  `dynamodbav:"tax_rate"`
	DueDate       string                  `dynamodbav:"due_date,omitempty"`
	SentAt        string                  `dynamodbav:"sent_at,omitempty"`
	PaidAt        string                  `dynamodbav:"paid_at,omitempty"`
	CreatedAt     string                  `dynamodbav:"created_at"`
	UpdatedAt     string                  `dynamodbav:"updated_at"`
	LineItems     []invoiceLineItemRecord `dynamodbav:"line_items"`
}

// InvoiceDynamoRepository persists Invoice documents in DynamoDB.
//
// Line items are embedded and fixed at creation. Update rewrites only the
// invoice head so the rows can never be clobbered by a reconciliation.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice, items []entities.InvoiceLineItem) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv, items))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, []entities.InvoiceLineItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, nil, err
	}
	inv, items := fromInvoiceItem(it)
	return inv, items, nil
}

// Update rewrites the mutable head fields. Line items are untouched.
// A missing item yields a zero-value entity with a nil error.
func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: inv.ID},
		},
		UpdateExpression: aws.String(
			"SET #status = :status, amount_paid = :amount_paid, balance_due = :balance_due, " +
				"due_date = :due_date, sent_at = :sent_at, paid_at = :paid_at, updated_at = :updated_at",
		),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":      &types.AttributeValueMemberS{Value: string(inv.Status)},
			":amount_paid": &types.AttributeValueMemberS{Value: decimalToString(inv.AmountPaid)},
			":balance_due": &types.AttributeValueMemberS{Value: decimalToString(inv.BalanceDue)},
			":due_date":    &types.AttributeValueMemberS{Value: timePtrToString(inv.DueDate)},
			":sent_at":     &types.AttributeValueMemberS{Value: timePtrToString(inv.SentAt)},
			":paid_at":     &types.AttributeValueMemberS{Value: timePtrToString(inv.PaidAt)},
			":updated_at":  &types.AttributeValueMemberS{Value: timeToString(inv.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	updated, _ := fromInvoiceItem(it)
	return updated, nil
}

func (r *InvoiceDynamoRepository) ListByCompanyID(ctx context.Context, companyID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		inv, _ := fromInvoiceItem(it)
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func toInvoiceItem(inv entities.Invoice, items []entities.InvoiceLineItem) invoiceItem {
	records := make([]invoiceLineItemRecord, 0, len(items))
	for _, li := range items {
		records = append(records, invoiceLineItemRecord{
			ID:           li.ID,
			Name:         li.Name,
			Type:         string(li.Type),
			Quantity:     decimalToString(li.Quantity),
			UnitPrice:    decimalToString(li.UnitPrice),
			DisplayOrder: li.DisplayOrder,
		})
	}
	return invoiceItem{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		ClientID:      strPtrToString(inv.ClientID),
		ProjectID:     strPtrToString(inv.ProjectID),
		OpportunityID: strPtrToString(inv.OpportunityID),
		EstimateID:    strPtrToString(inv.EstimateID),
		Status:        string(inv.Status),
		Subtotal:      decimalToString(inv.Subtotal),
		TaxAmount:     decimalToString(inv.TaxAmount),
		Total:         decimalToString(inv.Total),
		AmountPaid:    decimalToString(inv.AmountPaid),
		BalanceDue:    decimalToString(inv.BalanceDue),
		TaxRate:       decimalToString(inv.TaxRate),
		DueDate:       timePtrToString(inv.DueDate),
		SentAt:        timePtrToString(inv.SentAt),
		PaidAt:        timePtrToString(inv.PaidAt),
		CreatedAt:     timeToString(inv.CreatedAt),
		UpdatedAt:     timeToString(inv.UpdatedAt),
		LineItems:     records,
	}
}

func fromInvoiceItem(it invoiceItem) (entities.Invoice, []entities.InvoiceLineItem) {
	items := make([]entities.InvoiceLineItem, 0, len(it.LineItems))
	for _, rec := range it.LineItems {
		items = append(items, entities.InvoiceLineItem{
			ID:           rec.ID,
			InvoiceID:    it.ID,
			Name:         rec.Name,
			Type:         entities.LineItemType(rec.Type),
			Quantity:     decimalFromString(rec.Quantity),
			UnitPrice:    decimalFromString(rec.UnitPrice),
			DisplayOrder: rec.DisplayOrder,
		})
	}
	inv := entities.Invoice{
		ID:            it.ID,
		CompanyID:     it.CompanyID,
		ClientID:      strPtrFromString(it.ClientID),
		ProjectID:     strPtrFromString(it.ProjectID),
		OpportunityID: strPtrFromString(it.OpportunityID),
		EstimateID:    strPtrFromString(it.EstimateID),
		Status:        entities.InvoiceStatus(it.Status),
		Subtotal:      decimalFromString(it.Subtotal),
		TaxAmount:     decimalFromString(it.TaxAmount),
		Total:         decimalFromString(it.Total),
		AmountPaid:    decimalFromString(it.AmountPaid),
		BalanceDue:    decimalFromString(it.BalanceDue),
		TaxRate:       decimalFromString(it.TaxRate),
		DueDate:       timePtrFromString(it.DueDate),
		SentAt:        timePtrFromString(it.SentAt),
		PaidAt:        timePtrFromString(it.PaidAt),
		CreatedAt:     timeFromString(it.CreatedAt),
		UpdatedAt:     timeFromString(it.UpdatedAt),
	}
	return inv, items
}
