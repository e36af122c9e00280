package repository

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestWorkOrderDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("returns updated work order", func(t *testing.T) {
		attrs, _ := attributevalue.MarshalMap(workOrderItem{ID: "WO-1", RequestID: "SN-1", Status: "GOOD"})
		fake := &fakeDynamoDB{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return &dynamodb.UpdateItemOutput{Attributes: attrs}, nil
			},
		}
		repo := NewWorkOrderDynamoRepository(fake, testTables)
		wo, err := repo.UpdateStatus(context.Background(), "WO-1", entities.WorkOrderStatusGood,
			[]entities.WorkOrderStatus{entities.WorkOrderStatusPending})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusGood {
			t.Fatalf("unexpected status %s", wo.Status)
		}
		in := fake.updates[0]
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND (attribute_not_exists(#po_created) OR #po_created = :false OR #status = :status) AND #status IN (:from0)" {
			t.Fatalf("unexpected condition: %s", aws.ToString(in.ConditionExpression))
		}
		if in.ReturnValuesOnConditionCheckFailure != types.ReturnValuesOnConditionCheckFailureAllOld {
			t.Fatalf("expected ALL_OLD on condition failure")
		}
	})

	t.Run("missing work order", func(t *testing.T) {
		fake := &fakeDynamoDB{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewWorkOrderDynamoRepository(fake, testTables)
		wo, err := repo.UpdateStatus(context.Background(), "WO-x", entities.WorkOrderStatusGood, nil)
		if err != nil || wo.ID != "" {
			t.Fatalf("expected zero value and nil error, got %+v %v", wo, err)
		}
	})

	t.Run("purchased work order keeps its outcome", func(t *testing.T) {
		old, _ := attributevalue.MarshalMap(workOrderItem{ID: "WO-1", Status: "REPLACE", POCreated: true})
		fake := &fakeDynamoDB{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Item: old}
			},
		}
		repo := NewWorkOrderDynamoRepository(fake, testTables)
		_, err := repo.UpdateStatus(context.Background(), "WO-1", entities.WorkOrderStatusGood, nil)
		if !errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			t.Fatalf("expected ErrConditionalCheckFailed, got %v", err)
		}
		in := fake.updates[0]
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND (attribute_not_exists(#po_created) OR #po_created = :false OR #status = :status)" {
			t.Fatalf("unexpected condition: %s", aws.ToString(in.ConditionExpression))
		}
		if v, ok := in.ExpressionAttributeValues[":false"].(*types.AttributeValueMemberBOOL); !ok || v.Value {
			t.Fatalf("expected :false bound to false, got %#v", in.ExpressionAttributeValues[":false"])
		}
	})

	t.Run("guard rejected", func(t *testing.T) {
		old, _ := attributevalue.MarshalMap(workOrderItem{ID: "WO-1", Status: "REPLACE"})
		fake := &fakeDynamoDB{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Item: old}
			},
		}
		repo := NewWorkOrderDynamoRepository(fake, testTables)
		_, err := repo.UpdateStatus(context.Background(), "WO-1", entities.WorkOrderStatusGood,
			[]entities.WorkOrderStatus{entities.WorkOrderStatusPending})
		if !errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			t.Fatalf("expected ErrConditionalCheckFailed, got %v", err)
		}
	})
}

func TestWorkOrderDynamoRepository_GetMany_RetriesUnprocessed(t *testing.T) {
	u, _ := attributevalue.MarshalMap(workOrderItem{ID: "WO-U", Status: "GOOD"})
	p, _ := attributevalue.MarshalMap(workOrderItem{ID: "WO-P", Status: "REPLACE"})
	calls := 0
	fake := &fakeDynamoDB{
		batchGetItem: func(in *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error) {
			calls++
			if calls == 1 {
				return &dynamodb.BatchGetItemOutput{
					Responses: map[string][]map[string]types.AttributeValue{"work_orders": {p}},
					UnprocessedKeys: map[string]types.KeysAndAttributes{
						"work_orders": {Keys: []map[string]types.AttributeValue{idKey("WO-U")}, ConsistentRead: aws.Bool(true)},
					},
				}, nil
			}
			return &dynamodb.BatchGetItemOutput{
				Responses: map[string][]map[string]types.AttributeValue{"work_orders": {u}},
			}, nil
		},
	}
	repo := NewWorkOrderDynamoRepository(fake, testTables)

	items, err := repo.GetMany(context.Background(), []string{"WO-U", "WO-P", "WO-T"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected a retry for unprocessed keys, got %d calls", calls)
	}
	if len(items) != 2 || items[0].ID != "WO-U" || items[1].ID != "WO-P" {
		t.Fatalf("expected ids order kept and missing skipped, got %+v", items)
	}
	if !aws.ToBool(fake.batchGets[0].RequestItems["work_orders"].ConsistentRead) {
		t.Fatalf("expected consistent reads")
	}
}

func TestWorkOrderDynamoRepository_ListByRequestID_SortsByRole(t *testing.T) {
	var raw []map[string]types.AttributeValue
	for _, role := range []string{"T", "U", "P"} {
		av, _ := attributevalue.MarshalMap(workOrderItem{ID: "WO-" + role, RequestID: "SN-1", TechnicianRole: role})
		raw = append(raw, av)
	}
	fake := &fakeDynamoDB{
		query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: raw}, nil
		},
	}
	repo := NewWorkOrderDynamoRepository(fake, testTables)

	items, err := repo.ListByRequestID(context.Background(), "SN-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ""
	for _, wo := range items {
		got += string(wo.TechnicianRole)
	}
	if got != "UPT" {
		t.Fatalf("expected U, P, T order, got %s", got)
	}
	if aws.ToString(fake.queries[0].IndexName) != workOrdersRequestIDIndex {
		t.Fatalf("unexpected index %s", aws.ToString(fake.queries[0].IndexName))
	}
}
