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
	defaultSessionsTableName = "sessions"
	sessionsGSI1PK           = "SESSION"
)

type sessionItem struct {
	ID           string   `dynamodbav:"id"`
	GSI1PK       string   `dynamodbav:"gsi1pk"`
	UserID       string   `dynamodbav:"user_id,omitempty"`
	StaffID      string   `dynamodbav:"staff_id,omitempty"`
	StartTime    string   `dynamodbav:"start_time"`
	EndTime      string   `dynamodbav:"end_time,omitempty"`
	Duration     *int     `dynamodbav:"duration,omitempty"`
	LimitMinutes *int     `dynamodbav:"limit_minutes,omitempty"`
	PostNumber   *int     `dynamodbav:"post_number,omitempty"`
	Cost         *float64 `dynamodbav:"cost,omitempty"`
	Status       string   `dynamodbav:"status"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists Session entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: created_at-index (PK: gsi1pk, SK: created_at)

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.Session{}, err
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
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

// Save replaces the whole item; the usecase owns the lifecycle checks.
func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.Session) (entities.Session, error) {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.Session{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) List(ctx context.Context) ([]entities.Session, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: sessionsGSI1PK},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalSessions(out.Items)
}

func (r *SessionDynamoRepository) ListActive(ctx context.Context) ([]entities.Session, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: sessionsGSI1PK},
			":status": &types.AttributeValueMemberS{Value: string(entities.SessionStatusActive)},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalSessions(out.Items)
}

func (r *SessionDynamoRepository) ListInRange(ctx context.Context, from, to time.Time, staffID string) ([]entities.Session, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(createdAtIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk AND created_at BETWEEN :from AND :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: sessionsGSI1PK},
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
	return unmarshalSessions(out.Items)
}

func unmarshalSessions(raw []map[string]types.AttributeValue) ([]entities.Session, error) {
	sessions := make([]entities.Session, 0, len(raw))
	for _, item := range raw {
		var it sessionItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		sessions = append(sessions, fromSessionItem(it))
	}
	return sessions, nil
}

func toSessionItem(s entities.Session) sessionItem {
	it := sessionItem{
		ID:           s.ID,
		GSI1PK:       sessionsGSI1PK,
		UserID:       s.UserID,
		StaffID:      s.StaffID,
		StartTime:    formatTime(s.StartTime),
		Duration:     s.Duration,
		LimitMinutes: s.LimitMinutes,
		PostNumber:   s.PostNumber,
		Cost:         s.Cost,
		Status:       string(s.Status),
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
	if s.EndTime != nil {
		it.EndTime = formatTime(*s.EndTime)
	}
	return it
}

func fromSessionItem(it sessionItem) entities.Session {
	s := entities.Session{
		ID:           it.ID,
		UserID:       it.UserID,
		StaffID:      it.StaffID,
		StartTime:    parseTime(it.StartTime),
		Duration:     it.Duration,
		LimitMinutes: it.LimitMinutes,
		PostNumber:   it.PostNumber,
		Cost:         it.Cost,
		Status:       entities.SessionStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	if it.EndTime != "" {
		end := parseTime(it.EndTime)
		s.EndTime = &end
	}
	return s
}
