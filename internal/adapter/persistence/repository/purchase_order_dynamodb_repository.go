package repository

import (
	"context"
	"fmt"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type purchaseOrderItem struct {
	ID          string `dynamodbav:"id"`
	RequestID   string `dynamodbav:"request_id"`
	WorkOrderID string `dynamodbav:"wo_id"`
	ItemName    string `dynamodbav:"item_name"`
	Quantity    int    `dynamodbav:"quantity"`
	// Price is kept as its decimal string so no precision is lost in the N type.
	Price     string `dynamodbav:"price"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PurchaseOrderDynamoRepository persists PurchaseOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)
//
// Creation also updates the work orders and requests tables in the same transaction.
type PurchaseOrderDynamoRepository struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderDynamoRepository)(nil)

const (
	transactConflictAttempts = 4
	transactConflictBackoff  = 25 * time.Millisecond
)

// NewPurchaseOrderDynamoRepository uses all three tables of the entity store.
func NewPurchaseOrderDynamoRepository(ddb DynamoDBAPI, tables Tables) *PurchaseOrderDynamoRepository {
	return &PurchaseOrderDynamoRepository{ddb: ddb, tables: tables}
}

// CreateForWorkOrder writes the purchase order, flags the work order and bumps the
// request counter in one transaction. Any failed guard cancels all three writes.
func (r *PurchaseOrderDynamoRepository) CreateForWorkOrder(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	now := time.Now().UTC()
	if po.CreatedAt.IsZero() {
		po.CreatedAt = now
	}
	po.UpdatedAt = now
	if po.Status == "" {
		po.Status = entities.PurchaseOrderStatusCreated
	}

	poAV, err := attributevalue.MarshalMap(toPurchaseOrderItem(po))
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	updatedAt := stringValue(formatTime(now))

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.tables.PurchaseOrders),
				Item:                     poAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.tables.WorkOrders),
				Key:       idKey(po.WorkOrderID),
				ConditionExpression: aws.String(
					"attribute_exists(#id) AND #request_id = :request_id AND #status = :replace AND #po_created = :false",
				),
				UpdateExpression: aws.String("SET #po_created = :true, #po_id = :po_id, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#request_id": "request_id",
					"#status":     "status",
					"#po_created": "po_created",
					"#po_id":      "po_id",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":request_id": stringValue(po.RequestID),
					":replace":    stringValue(string(entities.WorkOrderStatusReplace)),
					":false":      boolValue(false),
					":true":       boolValue(true),
					":po_id":      stringValue(po.ID),
					":updated_at": updatedAt,
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.tables.Requests),
				Key:       idKey(po.RequestID),
				ConditionExpression: aws.String(
					"attribute_exists(#id) AND #status = :inspected AND #replacement_required = :true" +
						" AND #purchase_orders_created < #total_replacements",
				),
				UpdateExpression: aws.String("SET #updated_at = :updated_at ADD #purchase_orders_created :one"),
				ExpressionAttributeNames: map[string]string{
					"#id":                      "id",
					"#status":                  "status",
					"#replacement_required":    "replacement_required",
					"#purchase_orders_created": "purchase_orders_created",
					"#total_replacements":      "total_replacements",
					"#updated_at":              "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":inspected":  stringValue(string(entities.RequestStatusInspectionCompleted)),
					":true":       boolValue(true),
					":one":        intValue(1),
					":updated_at": updatedAt,
				},
			},
		},
	}

	// Sibling purchase orders all bump the same request item, so concurrent ones
	// can cancel each other with TransactionConflict. Those are retried; a guard
	// that fails on a later attempt still ends as a conditional failure.
	for attempt := 1; ; attempt++ {
		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems:      items,
			ClientRequestToken: aws.String(fmt.Sprintf("%s-%d", po.ID, attempt)),
		})
		if err == nil {
			return po, nil
		}
		if isTransactionConditionFailed(err) {
			return entities.PurchaseOrder{}, interfaces.ErrConditionalCheckFailed
		}
		if !isTransactionConflict(err) || attempt == transactConflictAttempts {
			return entities.PurchaseOrder{}, err
		}
		select {
		case <-ctx.Done():
			return entities.PurchaseOrder{}, ctx.Err()
		case <-time.After(time.Duration(attempt) * transactConflictBackoff):
		}
	}
}

// ListAll scans the whole purchase orders table, newest first.
func (r *PurchaseOrderDynamoRepository) ListAll(ctx context.Context) ([]entities.PurchaseOrder, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tables.PurchaseOrders),
	})

	var items []entities.PurchaseOrder
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan purchase orders: %w", err)
		}
		decoded, err := decodePurchaseOrders(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	sortNewestFirst(items, func(po entities.PurchaseOrder) time.Time { return po.CreatedAt })
	return items, nil
}

func (r *PurchaseOrderDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.PurchaseOrder, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.PurchaseOrders),
		IndexName:              aws.String(purchaseOrdersRequestIDIndex),
		KeyConditionExpression: aws.String("#request_id = :request_id"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": stringValue(requestID),
		},
	})

	var items []entities.PurchaseOrder
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query purchase orders by request: %w", err)
		}
		decoded, err := decodePurchaseOrders(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	sortNewestFirst(items, func(po entities.PurchaseOrder) time.Time { return po.CreatedAt })
	return items, nil
}

func decodePurchaseOrders(raw []map[string]types.AttributeValue) ([]entities.PurchaseOrder, error) {
	out := make([]entities.PurchaseOrder, 0, len(raw))
	for _, av := range raw {
		var it purchaseOrderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		po, err := fromPurchaseOrderItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, po)
	}
	return out, nil
}

func toPurchaseOrderItem(po entities.PurchaseOrder) purchaseOrderItem {
	return purchaseOrderItem{
		ID:          po.ID,
		RequestID:   po.RequestID,
		WorkOrderID: po.WorkOrderID,
		ItemName:    po.ItemName,
		Quantity:    po.Quantity,
		Price:       po.Price.String(),
		Status:      string(po.Status),
		CreatedAt:   formatTime(po.CreatedAt),
		UpdatedAt:   formatTime(po.UpdatedAt),
	}
}

func fromPurchaseOrderItem(it purchaseOrderItem) (entities.PurchaseOrder, error) {
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return entities.PurchaseOrder{}, fmt.Errorf("purchase order %s: invalid price %q: %w", it.ID, it.Price, err)
	}
	return entities.PurchaseOrder{
		ID:          it.ID,
		RequestID:   it.RequestID,
		WorkOrderID: it.WorkOrderID,
		ItemName:    it.ItemName,
		Quantity:    it.Quantity,
		Price:       price,
		Status:      entities.PurchaseOrderStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}, nil
}
