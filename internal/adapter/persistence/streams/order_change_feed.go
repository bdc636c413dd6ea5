package streams

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lavacar_xpto/internal/adapter/persistence/repository"
	"lavacar_xpto/internal/domain/entities"
	"lavacar_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
	log "github.com/sirupsen/logrus"
)

const defaultPollInterval = 2 * time.Second

// OrderChangeFeed tails the wash orders table's DynamoDB Stream and turns
// stream records into OrderChangeEvents. One Subscribe call owns one polling
// goroutine; the SubscriptionManager multiplexes it per tenant, so the table
// is never tailed more than once per tenant per process.
//
// The table must have Streams enabled with NEW_AND_OLD_IMAGES, otherwise
// update records cannot carry the previous snapshot and Subscribe fails on
// the first DescribeTable.

// TableAPI is the slice of the DynamoDB client the feed uses, satisfied by
// *dynamodb.Client.
type TableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// StreamsAPI is the slice of the DynamoDB Streams client the feed uses,
// satisfied by *dynamodbstreams.Client.
type StreamsAPI interface {
	DescribeStream(ctx context.Context, params *dynamodbstreams.DescribeStreamInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.DescribeStreamOutput, error)
	GetShardIterator(ctx context.Context, params *dynamodbstreams.GetShardIteratorInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetShardIteratorOutput, error)
	GetRecords(ctx context.Context, params *dynamodbstreams.GetRecordsInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetRecordsOutput, error)
}

type OrderChangeFeed struct {
	ddb          TableAPI
	streams      StreamsAPI
	tableName    string
	pollInterval time.Duration
}

var _ interfaces.IOrderChangeFeed = (*OrderChangeFeed)(nil)

func NewOrderChangeFeed(ddb TableAPI, streamsClient StreamsAPI, tableName string, pollInterval time.Duration) *OrderChangeFeed {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &OrderChangeFeed{
		ddb:          ddb,
		streams:      streamsClient,
		tableName:    tableName,
		pollInterval: pollInterval,
	}
}

// Subscribe starts tailing at LATEST and delivers every change on the
// tenant's orders until stop is called or the stream breaks. The events
// channel is closed in both cases; only the subscriber can tell them apart
// (it called stop or it did not).
func (f *OrderChangeFeed) Subscribe(ctx context.Context, tenantID string) (<-chan entities.OrderChangeEvent, func(), error) {
	if f == nil || f.ddb == nil || f.streams == nil {
		return nil, nil, errors.New("change feed not initialized")
	}

	streamArn, err := f.latestStreamArn(ctx)
	if err != nil {
		return nil, nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	events := make(chan entities.OrderChangeEvent, 64)
	go f.tail(runCtx, streamArn, tenantID, events)

	return events, cancel, nil
}

func (f *OrderChangeFeed) latestStreamArn(ctx context.Context) (string, error) {
	out, err := f.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(f.tableName),
	})
	if err != nil {
		return "", fmt.Errorf("describe table %s: %w", f.tableName, err)
	}
	if out.Table == nil || out.Table.LatestStreamArn == nil || *out.Table.LatestStreamArn == "" {
		return "", fmt.Errorf("table %s has no stream enabled", f.tableName)
	}
	return *out.Table.LatestStreamArn, nil
}

// tail polls every open shard of the stream in turn. Shard topology changes
// rarely (splits on throughput, rolls roughly daily), so re-listing shards
// only when an iterator is exhausted keeps the call volume low.
func (f *OrderChangeFeed) tail(ctx context.Context, streamArn, tenantID string, events chan<- entities.OrderChangeEvent) {
	defer close(events)

	iterators, err := f.openShardIterators(ctx, streamArn)
	if err != nil {
		log.Printf("[tracking][streams] shard discovery failed stream=%s err=%v", streamArn, err)
		return
	}
	log.Printf("[tracking][streams] tailing stream=%s shards=%d tenant_id=%s", streamArn, len(iterators), tenantID)

	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		next := make(map[string]string, len(iterators))
		for shardID, iterator := range iterators {
			out, err := f.streams.GetRecords(ctx, &dynamodbstreams.GetRecordsInput{
				ShardIterator: aws.String(iterator),
			})
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				var expired *streamtypes.ExpiredIteratorException
				if errors.As(err, &expired) {
					// Fell too far behind; take a fresh iterator at the
					// shard's current tip so the shard stays in the
					// polling set.
					fresh, iterErr := f.streams.GetShardIterator(ctx, &dynamodbstreams.GetShardIteratorInput{
						StreamArn:         aws.String(streamArn),
						ShardId:           aws.String(shardID),
						ShardIteratorType: streamtypes.ShardIteratorTypeLatest,
					})
					if iterErr != nil {
						if ctx.Err() == nil {
							log.Printf("[tracking][streams] iterator refresh failed shard=%s err=%v", shardID, iterErr)
						}
						return
					}
					if fresh.ShardIterator != nil {
						next[shardID] = *fresh.ShardIterator
					}
					continue
				}
				log.Printf("[tracking][streams] get records failed shard=%s err=%v", shardID, err)
				return
			}

			for _, record := range out.Records {
				ev, ok := toOrderChangeEvent(record)
				if !ok {
					continue
				}
				if !eventBelongsTo(ev, tenantID) {
					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}

			if out.NextShardIterator != nil {
				next[shardID] = *out.NextShardIterator
			}
		}

		if len(next) == 0 {
			// Every shard closed (daily roll). Pick up the replacement shards.
			iterators, err = f.openShardIterators(ctx, streamArn)
			if err != nil {
				if ctx.Err() == nil {
					log.Printf("[tracking][streams] shard refresh failed stream=%s err=%v", streamArn, err)
				}
				return
			}
			continue
		}
		iterators = next
	}
}

func (f *OrderChangeFeed) openShardIterators(ctx context.Context, streamArn string) (map[string]string, error) {
	iterators := make(map[string]string)
	var lastShardID *string
	for {
		out, err := f.streams.DescribeStream(ctx, &dynamodbstreams.DescribeStreamInput{
			StreamArn:             aws.String(streamArn),
			ExclusiveStartShardId: lastShardID,
		})
		if err != nil {
			return nil, err
		}
		if out.StreamDescription == nil {
			return nil, errors.New("empty stream description")
		}

		for _, shard := range out.StreamDescription.Shards {
			// A closed shard has an ending sequence number; LATEST on it
			// yields nothing, so only open shards matter.
			if shard.SequenceNumberRange != nil && shard.SequenceNumberRange.EndingSequenceNumber != nil {
				continue
			}
			iterOut, err := f.streams.GetShardIterator(ctx, &dynamodbstreams.GetShardIteratorInput{
				StreamArn:         aws.String(streamArn),
				ShardId:           shard.ShardId,
				ShardIteratorType: streamtypes.ShardIteratorTypeLatest,
			})
			if err != nil {
				return nil, err
			}
			if iterOut.ShardIterator != nil {
				iterators[aws.ToString(shard.ShardId)] = *iterOut.ShardIterator
			}
		}

		lastShardID = out.StreamDescription.LastEvaluatedShardId
		if lastShardID == nil {
			return iterators, nil
		}
	}
}

func toOrderChangeEvent(record streamtypes.Record) (entities.OrderChangeEvent, bool) {
	if record.Dynamodb == nil {
		return entities.OrderChangeEvent{}, false
	}

	ev := entities.OrderChangeEvent{}
	switch record.EventName {
	case streamtypes.OperationTypeInsert:
		ev.Type = entities.OrderChangeInsert
	case streamtypes.OperationTypeModify:
		ev.Type = entities.OrderChangeUpdate
	case streamtypes.OperationTypeRemove:
		ev.Type = entities.OrderChangeDelete
	default:
		return entities.OrderChangeEvent{}, false
	}

	if len(record.Dynamodb.OldImage) > 0 {
		if o, err := repository.UnmarshalWashOrderItem(convertStreamImage(record.Dynamodb.OldImage)); err == nil {
			ev.Before = &o
		}
	}
	if len(record.Dynamodb.NewImage) > 0 {
		if o, err := repository.UnmarshalWashOrderItem(convertStreamImage(record.Dynamodb.NewImage)); err == nil {
			ev.After = &o
		}
	}
	if ev.Before == nil && ev.After == nil {
		return entities.OrderChangeEvent{}, false
	}
	return ev, true
}

func eventBelongsTo(ev entities.OrderChangeEvent, tenantID string) bool {
	if ev.After != nil && ev.After.TenantID == tenantID {
		return true
	}
	return ev.Before != nil && ev.Before.TenantID == tenantID
}

// convertStreamImage maps the streams flavor of AttributeValue onto the
// dynamodb one. The SDK ships them as distinct types even though the wire
// shape is identical, so the item decoder can be shared with the table reads.
func convertStreamImage(image map[string]streamtypes.AttributeValue) map[string]ddbtypes.AttributeValue {
	out := make(map[string]ddbtypes.AttributeValue, len(image))
	for k, v := range image {
		if converted := convertStreamAttr(v); converted != nil {
			out[k] = converted
		}
	}
	return out
}

func convertStreamAttr(v streamtypes.AttributeValue) ddbtypes.AttributeValue {
	switch av := v.(type) {
	case *streamtypes.AttributeValueMemberS:
		return &ddbtypes.AttributeValueMemberS{Value: av.Value}
	case *streamtypes.AttributeValueMemberN:
		return &ddbtypes.AttributeValueMemberN{Value: av.Value}
	case *streamtypes.AttributeValueMemberB:
		return &ddbtypes.AttributeValueMemberB{Value: av.Value}
	case *streamtypes.AttributeValueMemberBOOL:
		return &ddbtypes.AttributeValueMemberBOOL{Value: av.Value}
	case *streamtypes.AttributeValueMemberNULL:
		return &ddbtypes.AttributeValueMemberNULL{Value: av.Value}
	case *streamtypes.AttributeValueMemberSS:
		return &ddbtypes.AttributeValueMemberSS{Value: av.Value}
	case *streamtypes.AttributeValueMemberNS:
		return &ddbtypes.AttributeValueMemberNS{Value: av.Value}
	case *streamtypes.AttributeValueMemberBS:
		return &ddbtypes.AttributeValueMemberBS{Value: av.Value}
	case *streamtypes.AttributeValueMemberL:
		list := make([]ddbtypes.AttributeValue, 0, len(av.Value))
		for _, item := range av.Value {
			if converted := convertStreamAttr(item); converted != nil {
				list = append(list, converted)
			}
		}
		return &ddbtypes.AttributeValueMemberL{Value: list}
	case *streamtypes.AttributeValueMemberM:
		return &ddbtypes.AttributeValueMemberM{Value: convertStreamImage(av.Value)}
	default:
		return nil
	}
}
