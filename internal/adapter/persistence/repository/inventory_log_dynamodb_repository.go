package repository

import (
	"context"
	"strings"
	"time"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInventoryLogsTableName = "inventory_logs"
	inventoryLogsGSI1PK           = "INVENTORY_LOG"
)

type inventoryLogItem struct {
	ID          string   `dynamodbav:"id"`
	GSI1PK      string   `dynamodbav:"gsi1pk"`
	ProductID   string   `dynamodbav:"product_id,omitempty"`
	ProductName string   `dynamodbav:"product_name,omitempty"`
	UserID      string   `dynamodbav:"user_id,omitempty"`
	Change      int      `dynamodbav:"change"`
	Cost        *float64 `dynamodbav:"cost,omitempty"`
	Type        string   `dynamodbav:"type"`
	Note        string   `dynamodbav:"note,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
}

// InventoryLogDynamoRepository persists InventoryLog entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: created_at-index (PK: gsi1pk, SK: created_at)

type InventoryLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryLogRepository = (*InventoryLogDynamoRepository)(nil)

func NewInventoryLogDynamoRepository(ddb *dynamodb.Client) *InventoryLogDynamoRepository {
	return &InventoryLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTORY_LOGS_TABLE", defaultInventoryLogsTableName),
	}
}

func (r *InventoryLogDynamoRepository) Create(ctx context.Context, l entities.InventoryLog) (entities.InventoryLog, error) {
	av, err := attributevalue.MarshalMap(toInventoryLogItem(l))
	if err != nil {
		return entities.InventoryLog{}, err
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
		return entities.InventoryLog{}, err
	}
	return l, nil
}

func (r *InventoryLogDynamoRepository) List(ctx context.Context) ([]entities.InventoryLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: inventoryLogsGSI1PK},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInventoryLogs(out.Items)
}

func (r *InventoryLogDynamoRepository) ListInRange(ctx context.Context, from, to time.Time, userID string) ([]entities.InventoryLog, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk AND created_at BETWEEN :from AND :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: inventoryLogsGSI1PK},
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	}
	if userID != "" {
		in.FilterExpression = aws.String("user_id = :uid")
		in.ExpressionAttributeValues[":uid"] = &types.AttributeValueMemberS{Value: userID}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalInventoryLogs(out.Items)
}

func (r *InventoryLogDynamoRepository) ListSalesSince(ctx context.Context, from time.Time) ([]entities.InventoryLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk AND created_at >= :from"),
		FilterExpression:       aws.String("#type = :type"),
		ExpressionAttributeNames: map[string]string{
			"#type": "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: inventoryLogsGSI1PK},
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":type": &types.AttributeValueMemberS{Value: string(entities.InventoryLogTypeSale)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInventoryLogs(out.Items)
}

// Search runs the activity-log query: key condition on the date window when
// given, everything else as filter expressions. Text search matches the note
// or the denormalized product name.
func (r *InventoryLogDynamoRepository) Search(ctx context.Context, q interfaces.InventoryLogQuery) ([]entities.InventoryLog, error) {
	in := &dynamodb.QueryInput{
		TableName: aws.String(r.tableName),
		IndexName: aws.String(createdAtIndex),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: inventoryLogsGSI1PK},
		},
		ScanIndexForward: aws.Bool(false),
	}

	switch {
	case q.From != nil && q.To != nil:
		in.KeyConditionExpression = aws.String("gsi1pk = :pk AND created_at BETWEEN :from AND :to")
		in.ExpressionAttributeValues[":from"] = &types.AttributeValueMemberS{Value: formatTime(*q.From)}
		in.ExpressionAttributeValues[":to"] = &types.AttributeValueMemberS{Value: formatTime(*q.To)}
	case q.From != nil:
		in.KeyConditionExpression = aws.String("gsi1pk = :pk AND created_at >= :from")
		in.ExpressionAttributeValues[":from"] = &types.AttributeValueMemberS{Value: formatTime(*q.From)}
	case q.To != nil:
		in.KeyConditionExpression = aws.String("gsi1pk = :pk AND created_at <= :to")
		in.ExpressionAttributeValues[":to"] = &types.AttributeValueMemberS{Value: formatTime(*q.To)}
	default:
		in.KeyConditionExpression = aws.String("gsi1pk = :pk")
	}

	var filters []string
	names := map[string]string{}
	if q.UserID != "" {
		filters = append(filters, "user_id = :uid")
		in.ExpressionAttributeValues[":uid"] = &types.AttributeValueMemberS{Value: q.UserID}
	}
	if q.Type != "" {
		filters = append(filters, "#type = :type")
		names["#type"] = "type"
		in.ExpressionAttributeValues[":type"] = &types.AttributeValueMemberS{Value: string(q.Type)}
	}
	if q.Search != "" {
		filters = append(filters, "(contains(note, :search) OR contains(product_name, :search))")
		in.ExpressionAttributeValues[":search"] = &types.AttributeValueMemberS{Value: q.Search}
	}
	if len(filters) > 0 {
		in.FilterExpression = aws.String(strings.Join(filters, " AND "))
	}
	if len(names) > 0 {
		in.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalInventoryLogs(out.Items)
}

func unmarshalInventoryLogs(raw []map[string]types.AttributeValue) ([]entities.InventoryLog, error) {
	logs := make([]entities.InventoryLog, 0, len(raw))
	for _, item := range raw {
		var it inventoryLogItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		logs = append(logs, fromInventoryLogItem(it))
	}
	return logs, nil
}

func toInventoryLogItem(l entities.InventoryLog) inventoryLogItem {
	return inventoryLogItem{
		ID:          l.ID,
		GSI1PK:      inventoryLogsGSI1PK,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		UserID:      l.UserID,
		Change:      l.Change,
		Cost:        l.Cost,
		Type:        string(l.Type),
		Note:        l.Note,
		CreatedAt:   formatTime(l.CreatedAt),
	}
}

func fromInventoryLogItem(it inventoryLogItem) entities.InventoryLog {
	return entities.InventoryLog{
		ID:          it.ID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		UserID:      it.UserID,
		Change:      it.Change,
		Cost:        it.Cost,
		Type:        entities.InventoryLogType(it.Type),
		Note:        it.Note,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
