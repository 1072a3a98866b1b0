// Package dynamo holds the pieces shared by the DynamoDB-backed repositories:
// the narrow client interface they depend on, paginated scans, and attribute
// decoding that tolerates numbers stored as strings.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// API is the subset of *dynamodb.Client the repositories use.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ API = (*dynamodb.Client)(nil)

// ScanAll follows LastEvaluatedKey until the scan is exhausted. Items are
// returned in storage order. The input is not modified.
func ScanAll(ctx context.Context, api API, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	params := *input
	items := make([]map[string]types.AttributeValue, 0)
	for {
		out, err := api.Scan(ctx, &params)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		params.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// ScanFirst returns the first item matching the scan filter, or nil. Filters
// apply after each page is read, so it keeps paging until a match shows up.
func ScanFirst(ctx context.Context, api API, input *dynamodb.ScanInput) (map[string]types.AttributeValue, error) {
	params := *input
	for {
		out, err := api.Scan(ctx, &params)
		if err != nil {
			return nil, err
		}
		if len(out.Items) > 0 {
			return out.Items[0], nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil, nil
		}
		params.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// IsConditionalCheckFailed reports whether a conditional write was rejected.
func IsConditionalCheckFailed(err error) bool {
	var ccfe *types.ConditionalCheckFailedException
	return errors.As(err, &ccfe)
}

// FlexInt decodes an integer stored either as N or as a numeric S attribute.
type FlexInt int

func (f *FlexInt) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	default:
		return fmt.Errorf("unsupported attribute type %T for integer", av)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		fl, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return fmt.Errorf("parse integer %q: %w", raw, err)
		}
		n = int(fl)
	}
	*f = FlexInt(n)
	return nil
}
