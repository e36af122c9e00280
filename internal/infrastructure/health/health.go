package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/heptiolabs/healthcheck"
)

const goroutineThreshold = 10000

// TableDescriber is the subset of *dynamodb.Client the readiness check needs.
type TableDescriber interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// NewHandler returns the liveness/readiness handler. It serves /live and /ready
// relative to where it is mounted.
func NewHandler(readiness map[string]healthcheck.Check) healthcheck.Handler {
	h := healthcheck.NewHandler()
	h.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(goroutineThreshold))
	for name, check := range readiness {
		h.AddReadinessCheck(name, check)
	}
	return h
}

// DynamoDBTablesCheck fails while any of the tables is missing or not ACTIVE.
func DynamoDBTablesCheck(client TableDescriber, tables []string, timeout time.Duration) healthcheck.Check {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		for _, table := range tables {
			out, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
			if err != nil {
				return fmt.Errorf("describe table %s: %w", table, err)
			}
			if out.Table == nil || out.Table.TableStatus != types.TableStatusActive {
				return fmt.Errorf("table %s is not active", table)
			}
		}
		return nil
	}
}
