package table

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/muhammadheryan/table-booking/model"
	"github.com/muhammadheryan/table-booking/repository/dynamo"
)

// ErrAlreadyExists is returned by Insert when the id is taken.
var ErrAlreadyExists = errors.New("table already exists")

type TableRepository interface {
	// Put stores the table, replacing any table with the same id.
	Put(ctx context.Context, table *model.TableEntity) error
	// Insert stores the table only if no table with the same id exists.
	Insert(ctx context.Context, table *model.TableEntity) error
	List(ctx context.Context) ([]model.TableEntity, error)
	// GetByID returns nil, nil when the table does not exist.
	GetByID(ctx context.Context, id string) (*model.TableEntity, error)
	// GetByNumber returns nil, nil when no table has that seating number.
	GetByNumber(ctx context.Context, number int) (*model.TableEntity, error)
}

type Dynamo struct {
	client    dynamo.API
	tableName string
}

func NewTableRepository(client dynamo.API, tableName string) TableRepository {
	return &Dynamo{client: client, tableName: tableName}
}

const attrID = "id"

type tableItem struct {
	ID       string          `dynamodbav:"id"`
	Number   dynamo.FlexInt  `dynamodbav:"number"`
	Places   dynamo.FlexInt  `dynamodbav:"places"`
	IsVip    bool            `dynamodbav:"isVip"`
	MinOrder *dynamo.FlexInt `dynamodbav:"minOrder,omitempty"`
}

func (s *Dynamo) Put(ctx context.Context, table *model.TableEntity) error {
	item, err := marshalTable(table)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put table %s: %w", table.ID, err)
	}
	return nil
}

func (s *Dynamo) Insert(ctx context.Context, table *model.TableEntity) error {
	item, err := marshalTable(table)
	if err != nil {
		return err
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name(attrID))).
		Build()
	if err != nil {
		return fmt.Errorf("build insert condition: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(s.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if dynamo.IsConditionalCheckFailed(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert table %s: %w", table.ID, err)
	}
	return nil
}

func (s *Dynamo) List(ctx context.Context) ([]model.TableEntity, error) {
	items, err := dynamo.ScanAll(ctx, s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})
	if err != nil {
		return nil, fmt.Errorf("scan tables: %w", err)
	}

	tables := make([]model.TableEntity, 0, len(items))
	for _, item := range items {
		t, err := unmarshalTable(item)
		if err != nil {
			return nil, err
		}
		tables = append(tables, *t)
	}
	return tables, nil
}

func (s *Dynamo) GetByID(ctx context.Context, id string) (*model.TableEntity, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			attrID: &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get table %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return unmarshalTable(out.Item)
}

func (s *Dynamo) GetByNumber(ctx context.Context, number int) (*model.TableEntity, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("number").Equal(expression.Value(number))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build number filter: %w", err)
	}

	item, err := dynamo.ScanFirst(ctx, s.client, &dynamodb.ScanInput{
		TableName:                 aws.String(s.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("scan table number %d: %w", number, err)
	}
	if item == nil {
		return nil, nil
	}
	return unmarshalTable(item)
}

func marshalTable(t *model.TableEntity) (map[string]types.AttributeValue, error) {
	it := tableItem{
		ID:     t.ID,
		Number: dynamo.FlexInt(t.Number),
		Places: dynamo.FlexInt(t.Places),
		IsVip:  t.IsVip,
	}
	if t.MinOrder != nil {
		m := dynamo.FlexInt(*t.MinOrder)
		it.MinOrder = &m
	}

	item, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, fmt.Errorf("marshal table %s: %w", t.ID, err)
	}
	return item, nil
}

func unmarshalTable(item map[string]types.AttributeValue) (*model.TableEntity, error) {
	var it tableItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return nil, fmt.Errorf("unmarshal table: %w", err)
	}

	t := &model.TableEntity{
		ID:     it.ID,
		Number: int(it.Number),
		Places: int(it.Places),
		IsVip:  it.IsVip,
	}
	if it.MinOrder != nil {
		m := int(*it.MinOrder)
		t.MinOrder = &m
	}
	return t, nil
}
