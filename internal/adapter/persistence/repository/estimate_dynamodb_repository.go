package repository

import (
	"context"
	"errors"
	"time"

	"onecrew_paving/internal/domain/entities"
	"onecrew_paving/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// transactDeleteBatchSize is the DynamoDB TransactWriteItems limit.
const transactDeleteBatchSize = 100

type detailedItemRecord struct {
	Name   string  `dynamodbav:"name"`
	Units  float64 `dynamodbav:"units"`
	Time   float64 `dynamodbav:"time"`
	Rate   float64 `dynamodbav:"rate"`
	Margin float64 `dynamodbav:"margin"`
	Cost   float64 `dynamodbav:"cost"`
	Price  float64 `dynamodbav:"price"`
}

type detailedItemsRecord struct {
	Labor     []detailedItemRecord `dynamodbav:"labor"`
	Materials []detailedItemRecord `dynamodbav:"materials"`
	Equipment []detailedItemRecord `dynamodbav:"equipment"`
}

type estimateItem struct {
	CustomerID    string              `dynamodbav:"customerId"`
	ID            string              `dynamodbav:"id"`
	DetailedItems detailedItemsRecord `dynamodbav:"detailedItems"`
	TotalCost     float64             `dynamodbav:"totalCost"`
	TotalPrice    float64             `dynamodbav:"totalPrice"`
	CreatedAt     string              `dynamodbav:"createdAt"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: customerId (string)
//   - SK: id (string)
//
// The customer partition stands in for a per-customer sub-collection:
// listing, cascading deletes and id scoping all happen within one
// partition. Payload attribute names match the JSON document so partial
// merges from clients land on the same attributes a full write produces.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, customerID string, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(customerID, e))
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

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, customerID, estimateID string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            estimateKey(customerID, estimateID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Estimate, error) {
	estimates := make([]entities.Estimate, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#cid = :cid"),
			ExpressionAttributeNames: map[string]string{
				"#cid": "customerId",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: customerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			estimates = append(estimates, fromEstimateItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return estimates, nil
}

// Update merges fields into an existing document. A missing document
// returns the zero Estimate with a nil error; it is never upserted.
func (r *EstimateDynamoRepository) Update(ctx context.Context, customerID, estimateID string, fields map[string]interface{}) (entities.Estimate, error) {
	updateExpr, values, names, err := buildSetExpression(fields, "customerId", "id")
	if err != nil {
		return entities.Estimate{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       estimateKey(customerID, estimateID),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, customerID, estimateID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       estimateKey(customerID, estimateID),
	})
	return err
}

// DeleteAllByCustomerID removes every estimate in the customer partition.
// Deletes go through TransactWriteItems so each batch lands atomically; the
// transaction limit caps a batch at 100 documents.
func (r *EstimateDynamoRepository) DeleteAllByCustomerID(ctx context.Context, customerID string) error {
	ids, err := r.listIDs(ctx, customerID)
	if err != nil {
		return err
	}

	for start := 0; start < len(ids); start += transactDeleteBatchSize {
		end := start + transactDeleteBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		items := make([]types.TransactWriteItem, 0, end-start)
		for _, id := range ids[start:end] {
			items = append(items, types.TransactWriteItem{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key:       estimateKey(customerID, id),
				},
			})
		}

		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *EstimateDynamoRepository) listIDs(ctx context.Context, customerID string) ([]string, error) {
	ids := make([]string, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#cid = :cid"),
			ProjectionExpression:   aws.String("#id"),
			ExpressionAttributeNames: map[string]string{
				"#cid": "customerId",
				"#id":  "id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: customerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
				ids = append(ids, v.Value)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return ids, nil
}

func estimateKey(customerID, estimateID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"customerId": &types.AttributeValueMemberS{Value: customerID},
		"id":         &types.AttributeValueMemberS{Value: estimateID},
	}
}

func toEstimateItem(customerID string, e entities.Estimate) estimateItem {
	return estimateItem{
		CustomerID: customerID,
		ID:         e.ID,
		DetailedItems: detailedItemsRecord{
			Labor:     toDetailedItemRecords(e.DetailedItems.Labor),
			Materials: toDetailedItemRecords(e.DetailedItems.Materials),
			Equipment: toDetailedItemRecords(e.DetailedItems.Equipment),
		},
		TotalCost:  e.TotalCost,
		TotalPrice: e.TotalPrice,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Estimate{
		ID: it.ID,
		DetailedItems: entities.DetailedItems{
			Labor:     fromDetailedItemRecords(it.DetailedItems.Labor),
			Materials: fromDetailedItemRecords(it.DetailedItems.Materials),
			Equipment: fromDetailedItemRecords(it.DetailedItems.Equipment),
		},
		TotalCost:  it.TotalCost,
		TotalPrice: it.TotalPrice,
		CreatedAt:  createdAt,
	}
}

func toDetailedItemRecords(items []entities.DetailedItem) []detailedItemRecord {
	records := make([]detailedItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, detailedItemRecord(item))
	}
	return records
}

func fromDetailedItemRecords(records []detailedItemRecord) []entities.DetailedItem {
	items := make([]entities.DetailedItem, 0, len(records))
	for _, record := range records {
		items = append(items, entities.DetailedItem(record))
	}
	return items
}
