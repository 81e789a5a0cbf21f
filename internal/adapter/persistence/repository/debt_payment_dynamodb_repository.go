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
	defaultDebtPaymentsTableName = "debt_payments"
	debtPaymentsGSI1PK           = "DEBT_PAYMENT"
)

type debtPaymentItem struct {
	ID        string  `dynamodbav:"id"`
	GSI1PK    string  `dynamodbav:"gsi1pk"`
	UserID    string  `dynamodbav:"user_id"`
	Amount    float64 `dynamodbav:"amount"`
	CreatedAt string  `dynamodbav:"created_at"`
}

// DebtPaymentDynamoRepository persists DebtPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: created_at-index (PK: gsi1pk, SK: created_at)

type DebtPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDebtPaymentRepository = (*DebtPaymentDynamoRepository)(nil)

func NewDebtPaymentDynamoRepository(ddb *dynamodb.Client) *DebtPaymentDynamoRepository {
	return &DebtPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEBT_PAYMENTS_TABLE", defaultDebtPaymentsTableName),
	}
}

func (r *DebtPaymentDynamoRepository) Create(ctx context.Context, p entities.DebtPayment) (entities.DebtPayment, error) {
	av, err := attributevalue.MarshalMap(toDebtPaymentItem(p))
	if err != nil {
		return entities.DebtPayment{}, err
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
		return entities.DebtPayment{}, err
	}
	return p, nil
}

func (r *DebtPaymentDynamoRepository) List(ctx context.Context, userID string) ([]entities.DebtPayment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: debtPaymentsGSI1PK},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if userID != "" {
		in.FilterExpression = aws.String("user_id = :uid")
		in.ExpressionAttributeValues[":uid"] = &types.AttributeValueMemberS{Value: userID}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalDebtPayments(out.Items)
}

func (r *DebtPaymentDynamoRepository) ListInRange(ctx context.Context, from, to time.Time, userID string) ([]entities.DebtPayment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk AND created_at BETWEEN :from AND :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: debtPaymentsGSI1PK},
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
	return unmarshalDebtPayments(out.Items)
}

func unmarshalDebtPayments(raw []map[string]types.AttributeValue) ([]entities.DebtPayment, error) {
	payments := make([]entities.DebtPayment, 0, len(raw))
	for _, item := range raw {
		var it debtPaymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromDebtPaymentItem(it))
	}
	return payments, nil
}

func toDebtPaymentItem(p entities.DebtPayment) debtPaymentItem {
	return debtPaymentItem{
		ID:        p.ID,
		GSI1PK:    debtPaymentsGSI1PK,
		UserID:    p.UserID,
		Amount:    p.Amount,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func fromDebtPaymentItem(it debtPaymentItem) entities.DebtPayment {
	return entities.DebtPayment{
		ID:        it.ID,
		UserID:    it.UserID,
		Amount:    it.Amount,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
