package repository

import (
	"context"
	"time"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersGSI1PK           = "ORDER"
)

type orderLineItem struct {
	ID          string  `dynamodbav:"id"`
	OrderID     string  `dynamodbav:"order_id"`
	ProductID   string  `dynamodbav:"product_id"`
	ProductName string  `dynamodbav:"product_name,omitempty"`
	Quantity    int     `dynamodbav:"quantity"`
	Price       float64 `dynamodbav:"price"`
}

type orderItem struct {
	ID        string          `dynamodbav:"id"`
	GSI1PK    string          `dynamodbav:"gsi1pk"`
	UserID    string          `dynamodbav:"user_id,omitempty"`
	StaffID   string          `dynamodbav:"staff_id,omitempty"`
	Items     []orderLineItem `dynamodbav:"items"`
	Total     float64         `dynamodbav:"total"`
	IsPaid    bool            `dynamodbav:"is_paid"`
	CreatedAt string          `dynamodbav:"created_at"`
	UpdatedAt string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: created_at-index (PK: gsi1pk, SK: created_at)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: ordersGSI1PK},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) ListInRange(ctx context.Context, from, to time.Time, staffID string) ([]entities.Order, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk AND created_at BETWEEN :from AND :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: ordersGSI1PK},
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	}
	if staffID != "" {
		in.FilterExpression = aws.String("staff_id = :sid")
		in.ExpressionAttributeValues[":sid"] = &types.AttributeValueMemberS{Value: staffID}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) ListSince(ctx context.Context, from time.Time) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk AND created_at >= :from"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: ordersGSI1PK},
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(out.Items)
}

func unmarshalOrders(raw []map[string]types.AttributeValue) ([]entities.Order, error) {
	orders := make([]entities.Order, 0, len(raw))
	for _, item := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, l := range o.Items {
		lines = append(lines, orderLineItem{
			ID:          l.ID,
			OrderID:     l.OrderID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price,
		})
	}
	return orderItem{
		ID:        o.ID,
		GSI1PK:    ordersGSI1PK,
		UserID:    o.UserID,
		StaffID:   o.StaffID,
		Items:     lines,
		Total:     o.Total,
		IsPaid:    o.IsPaid,
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	lines := make([]entities.OrderItem, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.OrderItem{
			ID:          l.ID,
			OrderID:     l.OrderID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price,
		})
	}
	return entities.Order{
		ID:        it.ID,
		UserID:    it.UserID,
		StaffID:   it.StaffID,
		Items:     lines,
		Total:     it.Total,
		IsPaid:    it.IsPaid,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
