package streams

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"lavacar_xpto/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

func streamImage(id, tenantID, plate, status string) map[string]streamtypes.AttributeValue {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC).Format(time.RFC3339Nano)
	return map[string]streamtypes.AttributeValue{
		"id":                &streamtypes.AttributeValueMemberS{Value: id},
		"tenant_id":         &streamtypes.AttributeValueMemberS{Value: tenantID},
		"vehicle_plate":     &streamtypes.AttributeValueMemberS{Value: plate},
		"status":            &streamtypes.AttributeValueMemberS{Value: status},
		"queue_position":    &streamtypes.AttributeValueMemberN{Value: "2"},
		"entered_at":        &streamtypes.AttributeValueMemberS{Value: now},
		"estimated_minutes": &streamtypes.AttributeValueMemberN{Value: "45"},
		"total_value":       &streamtypes.AttributeValueMemberS{Value: "80.5"},
		"created_at":        &streamtypes.AttributeValueMemberS{Value: now},
		"updated_at":        &streamtypes.AttributeValueMemberS{Value: now},
	}
}

func TestToOrderChangeEvent(t *testing.T) {
	t.Run("modify record carries both images", func(t *testing.T) {
		record := streamtypes.Record{
			EventName: streamtypes.OperationTypeModify,
			Dynamodb: &streamtypes.StreamRecord{
				OldImage: streamImage("o-1", "t-1", "ABC1234", "aguardando"),
				NewImage: streamImage("o-1", "t-1", "ABC1234", "lavando"),
			},
		}

		ev, ok := toOrderChangeEvent(record)
		if !ok {
			t.Fatalf("expected a usable event")
		}
		if ev.Type != entities.OrderChangeUpdate {
			t.Fatalf("expected update, got %v", ev.Type)
		}
		if ev.Before == nil || ev.Before.Status != entities.OrderStatusAguardando {
			t.Fatalf("unexpected before image: %+v", ev.Before)
		}
		if ev.After == nil || ev.After.Status != entities.OrderStatusLavando {
			t.Fatalf("unexpected after image: %+v", ev.After)
		}
		if ev.After.QueuePosition != 2 || ev.After.EstimatedMinutes != 45 {
			t.Fatalf("numeric attributes lost in conversion: %+v", ev.After)
		}
		if ev.After.TotalValue != 80.5 {
			t.Fatalf("expected total 80.5, got %v", ev.After.TotalValue)
		}
	})

	t.Run("remove record only has the old image", func(t *testing.T) {
		record := streamtypes.Record{
			EventName: streamtypes.OperationTypeRemove,
			Dynamodb: &streamtypes.StreamRecord{
				OldImage: streamImage("o-1", "t-1", "ABC1234", "aguardando"),
			},
		}

		ev, ok := toOrderChangeEvent(record)
		if !ok {
			t.Fatalf("expected a usable event")
		}
		if ev.Type != entities.OrderChangeDelete {
			t.Fatalf("expected delete, got %v", ev.Type)
		}
		if ev.Before == nil || ev.After != nil {
			t.Fatalf("expected only a before image: %+v", ev)
		}
	})

	t.Run("record without images is skipped", func(t *testing.T) {
		record := streamtypes.Record{
			EventName: streamtypes.OperationTypeModify,
			Dynamodb:  &streamtypes.StreamRecord{},
		}
		if _, ok := toOrderChangeEvent(record); ok {
			t.Fatalf("expected the record skipped")
		}
	})
}

type fakeTableAPI struct {
	streamArn string
}

func (f *fakeTableAPI) DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{
		Table: &ddbtypes.TableDescription{LatestStreamArn: aws.String(f.streamArn)},
	}, nil
}

type recordsPage struct {
	err     error
	records []streamtypes.Record
	next    string
}

// fakeStreamsAPI scripts GetRecords by iterator token. GetShardIterator
// hands out "shardID#n" tokens, one per call, so a test can give the first
// iterator of a shard a different fate than the second.
type fakeStreamsAPI struct {
	mu       sync.Mutex
	shards   []streamtypes.Shard
	pages    map[string]recordsPage
	iterSeqs map[string]int
}

func (f *fakeStreamsAPI) DescribeStream(ctx context.Context, in *dynamodbstreams.DescribeStreamInput, _ ...func(*dynamodbstreams.Options)) (*dynamodbstreams.DescribeStreamOutput, error) {
	return &dynamodbstreams.DescribeStreamOutput{
		StreamDescription: &streamtypes.StreamDescription{Shards: f.shards},
	}, nil
}

func (f *fakeStreamsAPI) GetShardIterator(ctx context.Context, in *dynamodbstreams.GetShardIteratorInput, _ ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetShardIteratorOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.iterSeqs == nil {
		f.iterSeqs = make(map[string]int)
	}
	shardID := aws.ToString(in.ShardId)
	f.iterSeqs[shardID]++
	token := fmt.Sprintf("%s#%d", shardID, f.iterSeqs[shardID])
	return &dynamodbstreams.GetShardIteratorOutput{ShardIterator: aws.String(token)}, nil
}

func (f *fakeStreamsAPI) GetRecords(ctx context.Context, in *dynamodbstreams.GetRecordsInput, _ ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetRecordsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	token := aws.ToString(in.ShardIterator)
	page, ok := f.pages[token]
	if !ok {
		// Unscripted iterator: idle at the tip.
		return &dynamodbstreams.GetRecordsOutput{NextShardIterator: aws.String(token)}, nil
	}
	if page.err != nil {
		return nil, page.err
	}
	return &dynamodbstreams.GetRecordsOutput{
		Records:           page.records,
		NextShardIterator: aws.String(page.next),
	}, nil
}

func TestOrderChangeFeed_RefreshesExpiredIterator(t *testing.T) {
	insert := streamtypes.Record{
		EventName: streamtypes.OperationTypeInsert,
		Dynamodb: &streamtypes.StreamRecord{
			NewImage: streamImage("o-9", "t-1", "XYZ9876", "aguardando"),
		},
	}

	// Shard A's first iterator expires while shard B stays healthy. A must
	// come back with a fresh iterator and still deliver its next record.
	streamsAPI := &fakeStreamsAPI{
		shards: []streamtypes.Shard{
			{ShardId: aws.String("shard-a")},
			{ShardId: aws.String("shard-b")},
		},
		pages: map[string]recordsPage{
			"shard-a#1": {err: &streamtypes.ExpiredIteratorException{Message: aws.String("iterator expired")}},
			"shard-a#2": {records: []streamtypes.Record{insert}, next: "shard-a-tail"},
			"shard-b#1": {next: "shard-b#1"},
		},
	}
	feed := NewOrderChangeFeed(&fakeTableAPI{streamArn: "arn:aws:dynamodb:stream/wash_orders"}, streamsAPI, "wash_orders", 5*time.Millisecond)

	events, stop, err := feed.Subscribe(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer stop()

	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatalf("feed closed instead of refreshing the expired iterator")
		}
		if ev.Type != entities.OrderChangeInsert || ev.After == nil || ev.After.ID != "o-9" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("shard dropped after iterator expiry, no event delivered")
	}

	streamsAPI.mu.Lock()
	refreshes := streamsAPI.iterSeqs["shard-a"]
	streamsAPI.mu.Unlock()
	if refreshes != 2 {
		t.Fatalf("expected a second iterator for the expired shard, got %d requests", refreshes)
	}
}

func TestEventBelongsTo(t *testing.T) {
	mine := &entities.WashOrder{TenantID: "t-1"}
	other := &entities.WashOrder{TenantID: "t-2"}

	if !eventBelongsTo(entities.OrderChangeEvent{After: mine}, "t-1") {
		t.Fatalf("expected a match on the new image")
	}
	if !eventBelongsTo(entities.OrderChangeEvent{Before: mine}, "t-1") {
		t.Fatalf("expected a match on the old image")
	}
	if eventBelongsTo(entities.OrderChangeEvent{Before: other, After: other}, "t-1") {
		t.Fatalf("expected another tenant's event filtered out")
	}
}
