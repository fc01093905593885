package repository

import (
	"context"
	"sort"

	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStageTransitionsTableName = "stage_transitions"
	transitionsOpportunityIDIndex    = "opportunity_id-index"
)

type stageTransitionItem struct {
	ID            string `dynamodbav:"id"`
	OpportunityID string `dynamodbav:"opportunity_id"`
	FromStage     string `dynamodbav:"from_stage"`
	ToStage       string `dynamodbav:"to_stage"`
	Actor         string `dynamodbav:"actor"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// StageTransitionDynamoRepository persists the append-only stage audit log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: opportunity_id-index (PK: opportunity_id)

type StageTransitionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStageTransitionRepository = (*StageTransitionDynamoRepository)(nil)

func NewStageTransitionDynamoRepository(ddb *dynamodb.Client) *StageTransitionDynamoRepository {
	return &StageTransitionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STAGE_TRANSITIONS_TABLE", defaultStageTransitionsTableName),
	}
}

func (r *StageTransitionDynamoRepository) Append(ctx context.Context, tr entities.StageTransition) (entities.StageTransition, error) {
	av, err := attributevalue.MarshalMap(toStageTransitionItem(tr))
	if err != nil {
		return entities.StageTransition{}, err
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
		return entities.StageTransition{}, err
	}
	return tr, nil
}

// ListByOpportunityID returns the transitions for an opportunity ordered
// oldest first. The GSI does not guarantee order, so results are sorted here.
func (r *StageTransitionDynamoRepository) ListByOpportunityID(ctx context.Context, opportunityID string) ([]entities.StageTransition, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transitionsOpportunityIDIndex),
		KeyConditionExpression: aws.String("opportunity_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: opportunityID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.StageTransition, 0, len(out.Items))
	for _, raw := range out.Items {
		var it stageTransitionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromStageTransitionItem(it))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func toStageTransitionItem(tr entities.StageTransition) stageTransitionItem {
	return stageTransitionItem{
		ID:            tr.ID,
		OpportunityID: tr.OpportunityID,
		FromStage:     string(tr.FromStage),
		ToStage:       string(tr.ToStage),
		Actor:         tr.Actor,
		CreatedAt:     timeToString(tr.CreatedAt),
	}
}

func fromStageTransitionItem(it stageTransitionItem) entities.StageTransition {
	return entities.StageTransition{
		ID:            it.ID,
		OpportunityID: it.OpportunityID,
		FromStage:     entities.Stage(it.FromStage),
		ToStage:       entities.Stage(it.ToStage),
		Actor:         it.Actor,
		CreatedAt:     timeFromString(it.CreatedAt),
	}
}
