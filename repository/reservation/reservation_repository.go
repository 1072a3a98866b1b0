package reservation

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

// ErrDuplicateID is returned by Create when the reservation id is already taken.
var ErrDuplicateID = errors.New("reservation id already exists")

type ReservationRepository interface {
	Create(ctx context.Context, r *model.ReservationEntity) error
	List(ctx context.Context) ([]model.ReservationEntity, error)
	// ListByTableAndDate returns every reservation of one table on one date.
	ListByTableAndDate(ctx context.Context, tableNumber int, date string) ([]model.ReservationEntity, error)
}

type Dynamo struct {
	client    dynamo.API
	tableName string
}

func NewReservationRepository(client dynamo.API, tableName string) ReservationRepository {
	return &Dynamo{client: client, tableName: tableName}
}

type reservationItem struct {
	ReservationID string         `dynamodbav:"reservationId"`
	TableNumber   dynamo.FlexInt `dynamodbav:"tableNumber"`
	ClientName    string         `dynamodbav:"clientName"`
	PhoneNumber   string         `dynamodbav:"phoneNumber"`
	Date          string         `dynamodbav:"date"`
	SlotTimeStart string         `dynamodbav:"slotTimeStart"`
	SlotTimeEnd   string         `dynamodbav:"slotTimeEnd"`
	CreatedBy     string         `dynamodbav:"createdBy,omitempty"`
	CreatedAt     string         `dynamodbav:"createdAt,omitempty"`
}

func (s *Dynamo) Create(ctx context.Context, r *model.ReservationEntity) error {
	item, err := attributevalue.MarshalMap(reservationItem{
		ReservationID: r.ReservationID,
		TableNumber:   dynamo.FlexInt(r.TableNumber),
		ClientName:    r.ClientName,
		PhoneNumber:   r.PhoneNumber,
		Date:          r.Date,
		SlotTimeStart: r.SlotTimeStart,
		SlotTimeEnd:   r.SlotTimeEnd,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal reservation %s: %w", r.ReservationID, err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("reservationId"))).
		Build()
	if err != nil {
		return fmt.Errorf("build reservation condition: %w", err)
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
			return ErrDuplicateID
		}
		return fmt.Errorf("put reservation %s: %w", r.ReservationID, err)
	}
	return nil
}

func (s *Dynamo) List(ctx context.Context) ([]model.ReservationEntity, error) {
	items, err := dynamo.ScanAll(ctx, s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})
	if err != nil {
		return nil, fmt.Errorf("scan reservations: %w", err)
	}
	return unmarshalReservations(items)
}

func (s *Dynamo) ListByTableAndDate(ctx context.Context, tableNumber int, date string) ([]model.ReservationEntity, error) {
	// "date" is a DynamoDB reserved word; the builder aliases every name.
	filt := expression.Name("tableNumber").Equal(expression.Value(tableNumber)).
		And(expression.Name("date").Equal(expression.Value(date)))
	expr, err := expression.NewBuilder().WithFilter(filt).Build()
	if err != nil {
		return nil, fmt.Errorf("build reservation filter: %w", err)
	}

	items, err := dynamo.ScanAll(ctx, s.client, &dynamodb.ScanInput{
		TableName:                 aws.String(s.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("scan reservations for table %d on %s: %w", tableNumber, date, err)
	}
	return unmarshalReservations(items)
}

func unmarshalReservations(items []map[string]types.AttributeValue) ([]model.ReservationEntity, error) {
	var rows []reservationItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal reservations: %w", err)
	}

	out := make([]model.ReservationEntity, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.ReservationEntity{
			ReservationID: r.ReservationID,
			TableNumber:   int(r.TableNumber),
			ClientName:    r.ClientName,
			PhoneNumber:   r.PhoneNumber,
			Date:          r.Date,
			SlotTimeStart: r.SlotTimeStart,
			SlotTimeEnd:   r.SlotTimeEnd,
			CreatedBy:     r.CreatedBy,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out, nil
}
