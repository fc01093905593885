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
	"github.com/shopspring/decimal"
)

const (
	defaultOpportunitiesTableName = "opportunities"
	opportunitiesCompanyIDIndex   = "company_id-index"
)

type opportunityItem struct {
	ID             string `dynamodbav:"id"`
	CompanyID      string `dynamodbav:"company_id"`
	ContactName    string `dynamodbav:"contact_name"`
	ContactEmail   string `dynamodbav:"contact_email,omitempty"`
	ContactPhone   string `dynamodbav:"contact_phone,omitempty"`
	EstimatedValue string `dynamodbav:"estimated_value,omitempty"`
	Stage          string `dynamodbav:"stage"`
	LossReason     string `dynamodbav:"loss_reason,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	LastActivityAt string `dynamodbav:"last_activity_at,omitempty"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// OpportunityDynamoRepository persists Opportunity entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)

type OpportunityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOpportunityRepository = (*OpportunityDynamoRepository)(nil)

func NewOpportunityDynamoRepository(ddb *dynamodb.Client) *OpportunityDynamoRepository {
	return &OpportunityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OPPORTUNITIES_TABLE", defaultOpportunitiesTableName),
	}
}

func (r *OpportunityDynamoRepository) Create(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error) {
	av, err := attributevalue.MarshalMap(toOpportunityItem(o))
	if err != nil {
		return entities.Opportunity{}, err
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
		return entities.Opportunity{}, err
	}
	return o, nil
}

func (r *OpportunityDynamoRepository) GetByID(ctx context.Context, id string) (entities.Opportunity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Opportunity{}, err
	}
	if len(out.Item) == 0 {
		return entities.Opportunity{}, nil
	}

	var it opportunityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Opportunity{}, err
	}
	return fromOpportunityItem(it), nil
}

// Update replaces the stored document. The item must already exist; a
// missing item yields a zero-value entity with a nil error.
func (r *OpportunityDynamoRepository) Update(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error) {
	av, err := attributevalue.MarshalMap(toOpportunityItem(o))
	if err != nil {
		return entities.Opportunity{}, err
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
			return entities.Opportunity{}, nil
		}
		return entities.Opportunity{}, err
	}
	return o, nil
}

func (r *OpportunityDynamoRepository) ListByCompanyID(ctx context.Context, companyID string) ([]entities.Opportunity, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(opportunitiesCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Opportunity, 0, len(out.Items))
	for _, raw := range out.Items {
		var it opportunityItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOpportunityItem(it))
	}
	return items, nil
}

func toOpportunityItem(o entities.Opportunity) opportunityItem {
	var estimated string
	if o.EstimatedValue != nil {
		estimated = decimalToString(*o.EstimatedValue)
	}
	return opportunityItem{
		ID:             o.ID,
		CompanyID:      o.CompanyID,
		ContactName:    o.ContactName,
		ContactEmail:   o.ContactEmail,
		ContactPhone:   o.ContactPhone,
		EstimatedValue: estimated,
		Stage:          string(o.Stage),
		LossReason:     strPtrToString(o.LossReason),
		CreatedAt:      timeToString(o.CreatedAt),
		LastActivityAt: timePtrToString(o.LastActivityAt),
		UpdatedAt:      timeToString(o.UpdatedAt),
	}
}

func fromOpportunityItem(it opportunityItem) entities.Opportunity {
	var estimated *decimal.Decimal
	if it.EstimatedValue != "" {
		d := decimalFromString(it.EstimatedValue)
		estimated = &d
	}
	return entities.Opportunity{
		ID:             it.ID,
		CompanyID:      it.CompanyID,
		ContactName:    it.ContactName,
		ContactEmail:   it.ContactEmail,
		ContactPhone:   it.ContactPhone,
		EstimatedValue: estimated,
		Stage:          entities.Stage(it.Stage),
		LossReason:     strPtrFromString(it.LossReason),
		CreatedAt:      timeFromString(it.CreatedAt),
		LastActivityAt: timePtrFromString(it.LastActivityAt),
		UpdatedAt:      timeFromString(it.UpdatedAt),
	}
}
