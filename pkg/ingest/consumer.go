package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"coopsense.io/poultry-telemetry-service/pkg/common"
)

const readBlock = 5 * time.Second

// StreamConsumer turns a Redis Stream consumer group into deliveries for
// the coordinator. One blocking read is one delivery; messages are acked
// only after the whole delivery went through, so store failures leave them
// pending for redelivery.
type StreamConsumer struct {
	Client      *redis.Client
	Coordinator *Coordinator
	Stream      string
	Group       string
	Consumer    string
	BatchSize   int64
}

// EnsureGroup creates the consumer group, creating the stream with it when
// needed. An already existing group is fine.
func (sc *StreamConsumer) EnsureGroup(ctx context.Context) error {
	err := sc.Client.XGroupCreateMkStream(ctx, sc.Stream, sc.Group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group %s: %w", sc.Group, err)
	}
	return nil
}

// Run consumes deliveries until the context is cancelled, backing off
// exponentially while reads or the store keep failing.
func (sc *StreamConsumer) Run(ctx context.Context) error {
	logger := common.GetLoggerWith(common.LoggerNameStreamConsumer)

	if err := sc.EnsureGroup(ctx); err != nil {
		return err
	}

	logger.Info("Stream consumer started",
		zap.String("stream", sc.Stream),
		zap.String("consumer_group", sc.Group),
		zap.String("consumer_name", sc.Consumer))

	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			if err := sc.consumeOnce(ctx); err != nil {
				logger.Error("Failed to consume delivery",
					zap.Error(err),
					zap.Duration("backoff", backoff))

				select {
				case <-ctx.Done():
					return nil
				case <-time.After(backoff):
					backoff *= 2
					if backoff > maxBackoff {
						backoff = maxBackoff
					}
				}
			} else {
				backoff = time.Second
			}
		}
	}
}

func (sc *StreamConsumer) consumeOnce(ctx context.Context) error {
	streams, err := sc.Client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    sc.Group,
		Consumer: sc.Consumer,
		Streams:  []string{sc.Stream, ">"},
		Count:    sc.BatchSize,
		Block:    readBlock,
	}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return fmt.Errorf("failed to read from stream %s: %w", sc.Stream, err)
	}

	var ids []string
	var messages []any
	for _, stream := range streams {
		for _, msg := range stream.Messages {
			ids = append(ids, msg.ID)
			if data, ok := msg.Values["data"]; ok {
				messages = append(messages, data)
			} else {
				messages = append(messages, msg.Values)
			}
		}
	}

	if len(messages) == 0 {
		return nil
	}

	// Malformed messages are consumed by the coordinator and acked with
	// the rest; retrying them would make a poison pill.
	if _, err := sc.Coordinator.HandleDelivery(messages); err != nil {
		return err
	}

	return sc.Client.XAck(ctx, sc.Stream, sc.Group, ids...).Err()
}
