package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BatchGetItem accepts at most 100 keys per call.
const batchGetLimit = 100

const maxUnprocessedRetries = 5

type workOrderItem struct {
	ID                 string `dynamodbav:"id"`
	RequestID          string `dynamodbav:"request_id"`
	TechnicianRole     string `dynamodbav:"technician_role"`
	TechnicianRoleName string `dynamodbav:"technician_role_name"`
	RequestType        string `dynamodbav:"request_type"`
	Status             string `dynamodbav:"status"`
	POCreated          bool   `dynamodbav:"po_created"`
	POID               string `dynamodbav:"po_id,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)
//   - GSI: status-index (PK: status)
type WorkOrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoDBAPI, tables Tables) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{ddb: ddb, tableName: tables.WorkOrders}
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

// GetMany reads the given work orders with strongly consistent BatchGetItem calls,
// retrying unprocessed keys. Missing ids are skipped. Result order follows ids.
func (r *WorkOrderDynamoRepository) GetMany(ctx context.Context, ids []string) ([]entities.WorkOrder, error) {
	byID := make(map[string]entities.WorkOrder, len(ids))
	for start := 0; start < len(ids); start += batchGetLimit {
		end := min(start+batchGetLimit, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, idKey(id))
		}

		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt > maxUnprocessedRetries {
				return nil, errors.New("batch get work orders: unprocessed keys left after retries")
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it workOrderItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				byID[it.ID] = fromWorkOrderItem(it)
			}
			request = out.UnprocessedKeys
		}
	}

	items := make([]entities.WorkOrder, 0, len(byID))
	for _, id := range ids {
		if wo, ok := byID[id]; ok {
			items = append(items, wo)
		}
	}
	return items, nil
}

// UpdateStatus sets the status of an existing work order. With allowedFrom set, the
// write is guarded on the current status and a rejected guard surfaces as
// interfaces.ErrConditionalCheckFailed; a missing work order yields a zero value.
func (r *WorkOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus, allowedFrom []entities.WorkOrderStatus) (entities.WorkOrder, error) {
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#po_created": "po_created",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":     stringValue(string(status)),
		":false":      boolValue(false),
		":updated_at": stringValue(nowString()),
	}
	// A work order with a purchase order keeps its REPLACE outcome.
	cond := "attribute_exists(#id) AND (attribute_not_exists(#po_created) OR #po_created = :false OR #status = :status)"
	if len(allowedFrom) > 0 {
		from := make([]string, 0, len(allowedFrom))
		for _, s := range allowedFrom {
			from = append(from, string(s))
		}
		cond += " AND " + inCondition("#status", "from", from, values)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 idKey(id),
		ConditionExpression:                 aws.String(cond),
		UpdateExpression:                    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            names,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.WorkOrder{}, nil
			}
			return entities.WorkOrder{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.WorkOrder, error) {
	items, err := r.query(ctx, workOrdersRequestIDIndex, "request_id", requestID)
	if err != nil {
		return nil, err
	}
	// Role order U, P, T; the index gives no ordering guarantee.
	order := map[entities.TechnicianRole]int{}
	for i, role := range entities.TechnicianRoles {
		order[role] = i
	}
	sortStable(items, func(a, b entities.WorkOrder) bool { return order[a.TechnicianRole] < order[b.TechnicianRole] })
	return items, nil
}

func (r *WorkOrderDynamoRepository) ListByStatus(ctx context.Context, status entities.WorkOrderStatus) ([]entities.WorkOrder, error) {
	items, err := r.query(ctx, workOrdersStatusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	sortNewestFirst(items, func(wo entities.WorkOrder) time.Time { return wo.CreatedAt })
	return items, nil
}

func (r *WorkOrderDynamoRepository) query(ctx context.Context, index, attr, value string) ([]entities.WorkOrder, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": stringValue(value),
		},
	})

	var items []entities.WorkOrder
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query work orders by %s: %w", strings.TrimSuffix(index, "-index"), err)
		}
		for _, raw := range page.Items {
			var it workOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromWorkOrderItem(it))
		}
	}
	return items, nil
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:                 wo.ID,
		RequestID:          wo.RequestID,
		TechnicianRole:     string(wo.TechnicianRole),
		TechnicianRoleName: wo.TechnicianRoleName,
		RequestType:        wo.RequestType,
		Status:             string(wo.Status),
		POCreated:          wo.POCreated,
		POID:               wo.POID,
		CreatedAt:          formatTime(wo.CreatedAt),
		UpdatedAt:          formatTime(wo.UpdatedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	return entities.WorkOrder{
		ID:                 it.ID,
		RequestID:          it.RequestID,
		TechnicianRole:     entities.TechnicianRole(it.TechnicianRole),
		TechnicianRoleName: it.TechnicianRoleName,
		RequestType:        it.RequestType,
		Status:             entities.WorkOrderStatus(it.Status),
		POCreated:          it.POCreated,
		POID:               it.POID,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
