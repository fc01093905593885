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
	defaultEstimatesTableName   = "estimates"
	estimatesOpportunityIDIndex = "opportunity_id-index"
)

type estimateLineItemRecord struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Type            string `dynamodbav:"type"`
	Quantity        string `dynamodbav:"quantity"`
	UnitPrice       string `dynamodbav:"unit_price"`
	DiscountPercent string `dynamodbav:"discount_percent"`
	Taxable         bool   `dynamodbav:"taxable"`
	Optional        bool   `dynamodbav:"optional"`
	DisplayOrder    int    `dynamodbav:"display_order"`
}

type estimateItem struct {
	ID              string                   `dynamodbav:"id"`
	CompanyID       string                   `dynamodbav:"company_id"`
	OpportunityID   string                   `dynamodbav:"opportunity_id,omitempty"`
	ClientID        string                   `dynamodbav:"client_id,omitempty"`
	ProjectID       string                   `dynamodbav:"project_id,omitempty"`
	Status          string                   `dynamodbav:"status"`
	TaxRate         string                   `dynamodbav:"tax_rate"`
	DiscountPercent string                   `dynamodbav:"discount_percent"`
	Subtotal        string                   `dynamodbav:"subtotal"`
	TaxAmount       string                   `dynamodbav:"tax_amount"`
	Total           string                   `dynamodbav:"total"`
	Version         int                      `dynamodbav:"version"`
	ParentID        string                   `dynamodbav:"parent_id,omitempty"`
	SentAt          string                   `dynamodbav:"sent_at,omitempty"`
	CreatedAt       string                   `dynamodbav:"created_at"`
	UpdatedAt       string                   `dynamodbav:"updated_at"`
	LineItems       []estimateLineItemRecord `dynamodbav:"line_items"`
}

// EstimateDynamoRepository persists Estimate documents in DynamoDB.
//
// Line items are embedded in the estimate document so a write is atomic:
// the stored totals always match the stored rows.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: opportunity_id-index (PK: opportunity_id)

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate, items []entities.EstimateLineItem) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e, items))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, []entities.EstimateLineItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, nil, err
	}
	e, items := fromEstimateItem(it)
	return e, items, nil
}

// GetByOpportunityID returns the newest estimate attached to an opportunity.
// Revisions share the opportunity; the highest version wins.
func (r *EstimateDynamoRepository) GetByOpportunityID(ctx context.Context, opportunityID string) (entities.Estimate, []entities.EstimateLineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesOpportunityIDIndex),
		KeyConditionExpression: aws.String("opportunity_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: opportunityID},
		},
	})
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil, nil
	}

	var newest estimateItem
	for i, raw := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Estimate{}, nil, err
		}
		if i == 0 || it.Version > newest.Version {
			newest = it
		}
	}
	e, items := fromEstimateItem(newest)
	return e, items, nil
}

// Update replaces the whole document, rows included. A missing item yields
// a zero-value entity with a nil error.
func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate, items []entities.EstimateLineItem) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e, items))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.Estimate, items []entities.EstimateLineItem) estimateItem {
	records := make([]estimateLineItemRecord, 0, len(items))
	for _, li := range items {
		records = append(records, estimateLineItemRecord{
			ID:              li.ID,
			Name:            li.Name,
			Type:            string(li.Type),
			Quantity:        decimalToString(li.Quantity),
			UnitPrice:       decimalToString(li.UnitPrice),
			DiscountPercent: decimalToString(li.DiscountPercent),
			Taxable:         li.Taxable,
			Optional:        li.Optional,
			DisplayOrder:    li.DisplayOrder,
		})
	}
	return estimateItem{
		ID:              e.ID,
		CompanyID:       e.CompanyID,
		OpportunityID:   strPtrToString(e.OpportunityID),
		ClientID:        strPtrToString(e.ClientID),
		ProjectID:       strPtrToString(e.ProjectID),
		Status:          string(e.Status),
		TaxRate:         decimalToString(e.TaxRate),
		DiscountPercent: decimalToString(e.DiscountPercent),
		Subtotal:        decimalToString(e.Subtotal),
		TaxAmount:       decimalToString(e.TaxAmount),
		Total:           decimalToString(e.Total),
		Version:         e.Version,
		ParentID:        strPtrToString(e.ParentID),
		SentAt:          timePtrToString(e.SentAt),
		CreatedAt:       timeToString(e.CreatedAt),
		UpdatedAt:       timeToString(e.UpdatedAt),
		LineItems:       records,
	}
}

func fromEstimateItem(it estimateItem) (entities.Estimate, []entities.EstimateLineItem) {
	items := make([]entities.EstimateLineItem, 0, len(it.LineItems))
	for _, rec := range it.LineItems {
		items = append(items, entities.EstimateLineItem{
			ID:              rec.ID,
			EstimateID:      it.ID,
			Name:            rec.Name,
			Type:            entities.LineItemType(rec.Type),
			Quantity:        decimalFromString(rec.Quantity),
			UnitPrice:       decimalFromString(rec.UnitPrice),
			DiscountPercent: decimalFromString(rec.DiscountPercent),
			Taxable:         rec.Taxable,
			Optional:        rec.Optional,
			DisplayOrder:    rec.DisplayOrder,
		})
	}
	e := entities.Estimate{
		ID:              it.ID,
		CompanyID:       it.CompanyID,
		OpportunityID:   strPtrFromString(it.OpportunityID),
		ClientID:        strPtrFromString(it.ClientID),
		ProjectID:       strPtrFromString(it.ProjectID),
		Status:          entities.EstimateStatus(it.Status),
		TaxRate:         decimalFromString(it.TaxRate),
		DiscountPercent: decimalFromString(it.DiscountPercent),
		Subtotal:        decimalFromString(it.Subtotal),
		TaxAmount:       decimalFromString(it.TaxAmount),
		Total:           decimalFromString(it.Total),
		Version:         it.Version,
		ParentID:        strPtrFromString(it.ParentID),
		SentAt:          timePtrFromString(it.SentAt),
		CreatedAt:       timeFromString(it.CreatedAt),
		UpdatedAt:       timeFromString(it.UpdatedAt),
	}
	return e, items
}
