package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"tradie_quote/internal/domain/entities"
	"tradie_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName     = "quotes"
	defaultQuoteItemsTableName = "quote_items"
	quotesUserIDIndex          = "user_id-index"
	quoteItemsQuoteIDIndex     = "quote_id-index"

	// DynamoDB BatchWriteItem hard cap.
	batchWriteMaxItems = 25
)

type quoteItemRecord struct {
	ID        string `dynamodbav:"id"`
	QuoteID   string `dynamodbav:"quote_id"`
	Name      string `dynamodbav:"name"`
	Type      string `dynamodbav:"type"`
	Unit      string `dynamodbav:"unit"`
	Qty       string `dynamodbav:"qty"`
	Cost      string `dynamodbav:"cost"`
	Total     string `dynamodbav:"total"`
	CreatedAt string `dynamodbav:"created_at"`
}

type quoteRecord struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	ClientID    string `dynamodbav:"client_id,omitempty"`
	JobTitle    string `dynamodbav:"job_title"`
	Description string `dynamodbav:"description"`
	Summary     string `dynamodbav:"summary"`
	Status      string `dynamodbav:"status"`
	Subtotal    string `dynamodbav:"subtotal"`
	GSTAmount   string `dynamodbav:"gst_amount"`
	Total       string `dynamodbav:"total"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote and QuoteItem entities in DynamoDB.
//
// Table requirements:
//   - quotes: PK id (string), GSI user_id-index (PK: user_id)
//   - quote_items: PK id (string), GSI quote_id-index (PK: quote_id)
//
// Money fields are stored as strings to avoid float drift through the
// marshal/unmarshal round trip.
type QuoteDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	itemsTableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		itemsTableName: getenvDefault("QUOTE_ITEMS_TABLE", defaultQuoteItemsTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteRecord(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) CreateItems(ctx context.Context, items []entities.QuoteItem) error {
	if len(items) == 0 {
		return nil
	}

	writes := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		av, err := attributevalue.MarshalMap(toQuoteItemRecord(item))
		if err != nil {
			return err
		}
		writes = append(writes, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}

	for start := 0; start < len(writes); start += batchWriteMaxItems {
		end := start + batchWriteMaxItems
		if end > len(writes) {
			end = len(writes)
		}
		_, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.itemsTableName: writes[start:end],
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRecord(it), nil
}

func (r *QuoteDynamoRepository) ListItemsByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTableName),
		IndexName:              aws.String(quoteItemsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuoteItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItemRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItemRecord(it))
	}
	return items, nil
}

func (r *QuoteDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteRecord(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRecord(it), nil
}

func toQuoteRecord(q entities.Quote) quoteRecord {
	return quoteRecord{
		ID:          q.ID,
		UserID:      q.UserID,
		ClientID:    q.ClientID,
		JobTitle:    q.JobTitle,
		Description: q.Description,
		Summary:     q.Summary,
		Status:      string(q.Status),
		Subtotal:    floatToString(q.Subtotal),
		GSTAmount:   floatToString(q.GSTAmount),
		Total:       floatToString(q.Total),
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteRecord(it quoteRecord) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	gstAmount, _ := strconv.ParseFloat(it.GSTAmount, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)
	return entities.Quote{
		ID:          it.ID,
		UserID:      it.UserID,
		ClientID:    it.ClientID,
		JobTitle:    it.JobTitle,
		Description: it.Description,
		Summary:     it.Summary,
		Status:      entities.QuoteStatus(it.Status),
		Subtotal:    subtotal,
		GSTAmount:   gstAmount,
		Total:       total,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func toQuoteItemRecord(item entities.QuoteItem) quoteItemRecord {
	return quoteItemRecord{
		ID:        item.ID,
		QuoteID:   item.QuoteID,
		Name:      item.Name,
		Type:      string(item.Type),
		Unit:      string(item.Unit),
		Qty:       floatToString(item.Qty),
		Cost:      floatToString(item.Cost),
		Total:     floatToString(item.Total),
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItemRecord(it quoteItemRecord) entities.QuoteItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	qty, _ := strconv.ParseFloat(it.Qty, 64)
	cost, _ := strconv.ParseFloat(it.Cost, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)
	return entities.QuoteItem{
		ID:        it.ID,
		QuoteID:   it.QuoteID,
		Name:      it.Name,
		Type:      entities.ItemType(it.Type),
		Unit:      entities.UnitKind(it.Unit),
		Qty:       qty,
		Cost:      cost,
		Total:     total,
		CreatedAt: createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
