package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lavacar_xpto/internal/domain/entities"
	"lavacar_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWashOrdersTableName = "wash_orders"
	washOrdersTenantIndex      = "tenant_id-index"
)

type washOrderItem struct {
	ID               string `dynamodbav:"id"`
	TenantID         string `dynamodbav:"tenant_id"`
	VehiclePlate     string `dynamodbav:"vehicle_plate"`
	VehicleModel     string `dynamodbav:"vehicle_model,omitempty"`
	ClientName       string `dynamodbav:"client_name,omitempty"`
	Status           string `dynamodbav:"status"`
	QueuePosition    int    `dynamodbav:"queue_position"`
	EnteredAt        string `dynamodbav:"entered_at"`
	StartedAt        string `dynamodbav:"started_at,omitempty"`
	FinishedAt       string `dynamodbav:"finished_at,omitempty"`
	EstimatedMinutes int    `dynamodbav:"estimated_minutes"`
	TotalValue       string `dynamodbav:"total_value"`
	Discount         string `dynamodbav:"discount,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// WashOrderDynamoRepository persists WashOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id, SK: entered_at)
//   - Streams enabled with NEW_AND_OLD_IMAGES (feeds live tracking)
//
// All tenant-scoped reads go through the GSI so a busy tenant never scans
// past its own partition.

type WashOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWashOrderRepository = (*WashOrderDynamoRepository)(nil)

func NewWashOrderDynamoRepository(ddb *dynamodb.Client) *WashOrderDynamoRepository {
	return &WashOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WASH_ORDERS_TABLE", defaultWashOrdersTableName),
	}
}

func (r *WashOrderDynamoRepository) Create(ctx context.Context, o entities.WashOrder) (entities.WashOrder, error) {
	it := toWashOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WashOrder{}, err
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
		return entities.WashOrder{}, err
	}
	return o, nil
}

func (r *WashOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WashOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WashOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WashOrder{}, nil
	}
	return UnmarshalWashOrderItem(out.Item)
}

// Save overwrites an existing order. Creation goes through Create so an id
// collision never silently replaces another tenant's order.
func (r *WashOrderDynamoRepository) Save(ctx context.Context, o entities.WashOrder) (entities.WashOrder, error) {
	it := toWashOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WashOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WashOrder{}, err
	}
	return o, nil
}

func (r *WashOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *WashOrderDynamoRepository) ListByTenantStatuses(ctx context.Context, tenantID string, statuses []entities.OrderStatus) ([]entities.WashOrder, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(washOrdersTenantIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	}
	if len(statuses) > 0 {
		filter, vals, names := statusFilter(statuses)
		input.FilterExpression = aws.String(filter)
		for k, v := range vals {
			input.ExpressionAttributeValues[k] = v
		}
		input.ExpressionAttributeNames = names
	}

	orders := make([]entities.WashOrder, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			o, err := UnmarshalWashOrderItem(raw)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return orders, nil
}

// FindCurrentByPlate returns the most recent non-terminal order carrying the
// plate, or a zero-value order when the plate is not being serviced. Newest
// first via the entered_at range key, so the first filtered hit wins.
func (r *WashOrderDynamoRepository) FindCurrentByPlate(ctx context.Context, tenantID, plate string) (entities.WashOrder, error) {
	filter, vals, names := statusFilter(entities.TrackableStatuses())
	vals[":tid"] = &types.AttributeValueMemberS{Value: tenantID}
	vals[":plate"] = &types.AttributeValueMemberS{Value: plate}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(washOrdersTenantIndex),
		KeyConditionExpression:    aws.String("tenant_id = :tid"),
		FilterExpression:          aws.String("vehicle_plate = :plate AND (" + filter + ")"),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ScanIndexForward:          aws.Bool(false),
	}

	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return entities.WashOrder{}, err
		}
		if len(out.Items) > 0 {
			return UnmarshalWashOrderItem(out.Items[0])
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entities.WashOrder{}, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// UpdatePosition rewrites only the stored queue position. The reindex path
// calls this for every shifted order; a missing order is not an error there,
// so the conditional failure maps to a zero value like GetByID absence.
func (r *WashOrderDynamoRepository) UpdatePosition(ctx context.Context, id string, position int) (entities.WashOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #queue_position = :position, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":position":   &types.AttributeValueMemberN{Value: strconv.Itoa(position)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#queue_position": "queue_position",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WashOrder{}, nil
		}
		return entities.WashOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WashOrder{}, nil
	}
	return UnmarshalWashOrderItem(out.Attributes)
}

// statusFilter builds "#status IN (:s0, :s1, ...)" for the given statuses.
func statusFilter(statuses []entities.OrderStatus) (string, map[string]types.AttributeValue, map[string]string) {
	placeholders := make([]string, 0, len(statuses))
	vals := make(map[string]types.AttributeValue, len(statuses))
	for i, s := range statuses {
		ph := fmt.Sprintf(":s%d", i)
		placeholders = append(placeholders, ph)
		vals[ph] = &types.AttributeValueMemberS{Value: string(s)}
	}
	filter := "#status IN (" + strings.Join(placeholders, ", ") + ")"
	return filter, vals, map[string]string{"#status": "status"}
}

// UnmarshalWashOrderItem decodes a raw DynamoDB item into a WashOrder. The
// streams feed reuses it so table writes and stream records stay in one
// wire format.
func UnmarshalWashOrderItem(raw map[string]types.AttributeValue) (entities.WashOrder, error) {
	var it washOrderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.WashOrder{}, err
	}
	return fromWashOrderItem(it), nil
}

func toWashOrderItem(o entities.WashOrder) washOrderItem {
	it := washOrderItem{
		ID:               o.ID,
		TenantID:         o.TenantID,
		VehiclePlate:     o.VehiclePlate,
		VehicleModel:     o.VehicleModel,
		ClientName:       o.ClientName,
		Status:           string(o.Status),
		QueuePosition:    o.QueuePosition,
		EnteredAt:        o.EnteredAt.UTC().Format(time.RFC3339Nano),
		EstimatedMinutes: o.EstimatedMinutes,
		TotalValue:       floatToString(o.TotalValue),
		CreatedAt:        o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.Discount != 0 {
		it.Discount = floatToString(o.Discount)
	}
	if o.StartedAt != nil {
		it.StartedAt = o.StartedAt.UTC().Format(time.RFC3339Nano)
	}
	if o.FinishedAt != nil {
		it.FinishedAt = o.FinishedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromWashOrderItem(it washOrderItem) entities.WashOrder {
	enteredAt, _ := time.Parse(time.RFC3339Nano, it.EnteredAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	totalValue, _ := strconv.ParseFloat(it.TotalValue, 64)
	discount, _ := strconv.ParseFloat(it.Discount, 64)

	o := entities.WashOrder{
		ID:               it.ID,
		TenantID:         it.TenantID,
		VehiclePlate:     it.VehiclePlate,
		VehicleModel:     it.VehicleModel,
		ClientName:       it.ClientName,
		Status:           entities.OrderStatus(it.Status),
		QueuePosition:    it.QueuePosition,
		EnteredAt:        enteredAt,
		EstimatedMinutes: it.EstimatedMinutes,
		TotalValue:       totalValue,
		Discount:         discount,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.StartedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.StartedAt); err == nil {
			o.StartedAt = &ts
		}
	}
	if it.FinishedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.FinishedAt); err == nil {
			o.FinishedAt = &ts
		}
	}
	return o
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
