package repository

import (
	"context"
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

type requestItem struct {
	ID                    string   `dynamodbav:"id"`
	CustomerName          string   `dynamodbav:"customer_name"`
	PhoneNumber           string   `dynamodbav:"phone_number"`
	Location              string   `dynamodbav:"location"`
	RequestType           string   `dynamodbav:"request_type"`
	Description           string   `dynamodbav:"description"`
	Status                string   `dynamodbav:"status"`
	WorkOrderIDs          []string `dynamodbav:"workorder_ids"`
	ReplacementRequired   bool     `dynamodbav:"replacement_required"`
	TotalReplacements     int      `dynamodbav:"total_replacements"`
	PurchaseOrdersCreated int      `dynamodbav:"purchase_orders_created"`
	CreatedAt             string   `dynamodbav:"created_at"`
	UpdatedAt             string   `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists Request entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-created_at-index (PK: status, SK: created_at)
//
// Request creation also writes the work orders table, inside the same transaction.
type RequestDynamoRepository struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

// NewRequestDynamoRepository uses tables.Requests and tables.WorkOrders.
func NewRequestDynamoRepository(ddb DynamoDBAPI, tables Tables) *RequestDynamoRepository {
	return &RequestDynamoRepository{ddb: ddb, tables: tables}
}

// CreateWithWorkOrders writes the request and all its work orders with one
// TransactWriteItems call: either every document becomes visible or none does.
func (r *RequestDynamoRepository) CreateWithWorkOrders(ctx context.Context, req entities.Request, workOrders []entities.WorkOrder) error {
	reqAV, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	idName := map[string]string{"#id": "id"}

	items := make([]types.TransactWriteItem, 0, len(workOrders)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.tables.Requests),
			Item:                     reqAV,
			ConditionExpression:      notExists,
			ExpressionAttributeNames: idName,
		},
	})
	for _, wo := range workOrders {
		woAV, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.tables.WorkOrders),
				Item:                     woAV,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: idName,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems:      items,
		ClientRequestToken: aws.String(req.ID),
	})
	return err
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.Request, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Requests),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Request{}, err
	}
	if len(out.Item) == 0 {
		return entities.Request{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it), nil
}

// Transition moves the request status when the stored status is one of t.From.
// A rejected guard is reported as applied=false, not as an error.
func (r *RequestDynamoRepository) Transition(ctx context.Context, id string, t entities.RequestTransition) (bool, error) {
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to":         stringValue(string(t.To)),
		":updated_at": stringValue(nowString()),
	}
	sets := []string{"#status = :to", "#updated_at = :updated_at"}
	conds := []string{"attribute_exists(#id)"}

	if len(t.From) > 0 {
		from := make([]string, 0, len(t.From))
		for _, s := range t.From {
			from = append(from, string(s))
		}
		conds = append(conds, inCondition("#status", "from", from, values))
	}
	if t.ReplacementRequired != nil {
		names["#replacement_required"] = "replacement_required"
		values[":replacement_required"] = boolValue(*t.ReplacementRequired)
		sets = append(sets, "#replacement_required = :replacement_required")
	}
	if t.TotalReplacements != nil {
		names["#total_replacements"] = "total_replacements"
		names["#purchase_orders_created"] = "purchase_orders_created"
		values[":total_replacements"] = intValue(*t.TotalReplacements)
		values[":zero"] = intValue(0)
		sets = append(sets, "#total_replacements = :total_replacements", "#purchase_orders_created = :zero")
	}
	if t.RequireAllPurchaseOrders {
		names["#total_replacements"] = "total_replacements"
		names["#purchase_orders_created"] = "purchase_orders_created"
		conds = append(conds, "#purchase_orders_created >= #total_replacements")
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tables.Requests),
		Key:                       idKey(id),
		ConditionExpression:       aws.String(strings.Join(conds, " AND ")),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListByStatuses queries the status index once per status and merges the pages,
// newest first.
func (r *RequestDynamoRepository) ListByStatuses(ctx context.Context, statuses []entities.RequestStatus) ([]entities.Request, error) {
	var items []entities.Request
	for _, status := range statuses {
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tables.Requests),
			IndexName:              aws.String(requestsStatusCreatedAtIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": stringValue(string(status)),
			},
			ScanIndexForward: aws.Bool(false),
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("query requests by status %s: %w", status, err)
			}
			for _, raw := range page.Items {
				var it requestItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				items = append(items, fromRequestItem(it))
			}
		}
	}
	sortNewestFirst(items, func(r entities.Request) time.Time { return r.CreatedAt })
	return items, nil
}

func toRequestItem(r entities.Request) requestItem {
	ids := r.WorkOrderIDs
	if ids == nil {
		ids = []string{}
	}
	return requestItem{
		ID:                    r.ID,
		CustomerName:          r.CustomerName,
		PhoneNumber:           r.PhoneNumber,
		Location:              r.Location,
		RequestType:           r.RequestType,
		Description:           r.Description,
		Status:                string(r.Status),
		WorkOrderIDs:          ids,
		ReplacementRequired:   r.ReplacementRequired,
		TotalReplacements:     r.TotalReplacements,
		PurchaseOrdersCreated: r.PurchaseOrdersCreated,
		CreatedAt:             formatTime(r.CreatedAt),
		UpdatedAt:             formatTime(r.UpdatedAt),
	}
}

func fromRequestItem(it requestItem) entities.Request {
	return entities.Request{
		ID:                    it.ID,
		CustomerName:          it.CustomerName,
		PhoneNumber:           it.PhoneNumber,
		Location:              it.Location,
		RequestType:           it.RequestType,
		Description:           it.Description,
		Status:                entities.RequestStatus(it.Status),
		WorkOrderIDs:          it.WorkOrderIDs,
		ReplacementRequired:   it.ReplacementRequired,
		TotalReplacements:     it.TotalReplacements,
		PurchaseOrdersCreated: it.PurchaseOrdersCreated,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
