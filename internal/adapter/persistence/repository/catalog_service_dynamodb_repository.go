package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"lavacar_xpto/internal/domain/entities"
	"lavacar_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCatalogTableName = "catalog_services"
	catalogTenantIndex      = "tenant_id-index"
)

type catalogServiceItem struct {
	ID              string `dynamodbav:"id"`
	TenantID        string `dynamodbav:"tenant_id"`
	Name            string `dynamodbav:"name"`
	Description     string `dynamodbav:"description,omitempty"`
	Price           string `dynamodbav:"price"`
	DurationMinutes int    `dynamodbav:"duration_minutes"`
	SortOrder       int    `dynamodbav:"sort_order"`
	Active          bool   `dynamodbav:"active"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// CatalogServiceDynamoRepository persists CatalogService entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type CatalogServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogServiceRepository = (*CatalogServiceDynamoRepository)(nil)

func NewCatalogServiceDynamoRepository(ddb *dynamodb.Client) *CatalogServiceDynamoRepository {
	return &CatalogServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_SERVICES_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogServiceDynamoRepository) Create(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	it := toCatalogServiceItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CatalogService{}, err
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
		return entities.CatalogService{}, err
	}
	return s, nil
}

func (r *CatalogServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogService{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogService{}, nil
	}

	var it catalogServiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogService{}, err
	}
	return fromCatalogServiceItem(it), nil
}

func (r *CatalogServiceDynamoRepository) Save(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	it := toCatalogServiceItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CatalogService{}, err
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
		return entities.CatalogService{}, err
	}
	return s, nil
}

func (r *CatalogServiceDynamoRepository) ListByTenant(ctx context.Context, tenantID string, onlyActive bool) ([]entities.CatalogService, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(catalogTenantIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	}
	if onlyActive {
		input.FilterExpression = aws.String("active = :active")
		input.ExpressionAttributeValues[":active"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	services := make([]entities.CatalogService, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it catalogServiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			services = append(services, fromCatalogServiceItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	// Display order is a catalog concern, not a storage one.
	sort.SliceStable(services, func(i, j int) bool {
		if services[i].SortOrder != services[j].SortOrder {
			return services[i].SortOrder < services[j].SortOrder
		}
		return services[i].Name < services[j].Name
	})
	return services, nil
}

func toCatalogServiceItem(s entities.CatalogService) catalogServiceItem {
	return catalogServiceItem{
		ID:              s.ID,
		TenantID:        s.TenantID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           floatToString(s.Price),
		DurationMinutes: s.DurationMinutes,
		SortOrder:       s.SortOrder,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCatalogServiceItem(it catalogServiceItem) entities.CatalogService {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.CatalogService{
		ID:              it.ID,
		TenantID:        it.TenantID,
		Name:            it.Name,
		Description:     it.Description,
		Price:           price,
		DurationMinutes: it.DurationMinutes,
		SortOrder:       it.SortOrder,
		Active:          it.Active,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
