package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"fieldservice/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Index names. Table requirements are documented on each repository.
const (
	requestsStatusCreatedAtIndex = "status-created_at-index"
	workOrdersRequestIDIndex     = "request_id-index"
	workOrdersStatusIndex        = "status-index"
	purchaseOrdersRequestIDIndex = "request_id-index"
)

// itemTimeLayout has a fixed-width fraction so timestamps sort lexicographically,
// which the created_at range key relies on.
const itemTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Tables names the three tables of the entity store.
type Tables = config.Tables

func formatTime(t time.Time) string {
	return t.UTC().Format(itemTimeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func nowString() string {
	return formatTime(time.Now())
}

func stringValue(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func boolValue(v bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: v}
}

func intValue(v int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", v)}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": stringValue(id)}
}

// inCondition renders "#name IN (:prefix0, :prefix1, ...)" and adds the values.
func inCondition(name, prefix string, values []string, into map[string]types.AttributeValue) string {
	placeholders := make([]string, 0, len(values))
	for i, v := range values {
		p := fmt.Sprintf(":%s%d", prefix, i)
		placeholders = append(placeholders, p)
		into[p] = stringValue(v)
	}
	return fmt.Sprintf("%s IN (%s)", name, strings.Join(placeholders, ", "))
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// isTransactionConditionFailed reports whether a TransactWriteItems call was
// cancelled because one of its guards did not hold.
func isTransactionConditionFailed(err error) bool {
	return hasCancellationReason(err, "ConditionalCheckFailed")
}

// isTransactionConflict reports whether a TransactWriteItems call was cancelled
// because another transaction was writing one of its items at the same time.
// Nothing was written, so the call can be repeated.
func isTransactionConflict(err error) bool {
	return hasCancellationReason(err, "TransactionConflict")
}

func hasCancellationReason(err error, code string) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == code {
			return true
		}
	}
	return false
}

// sortNewestFirst orders by created_at descending; ties keep input order.
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

func sortStable[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
