package queue

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"
)

var _ Publisher = (*RedisPublisher)(nil)

// RedisPublisher publishes change events as JSON on a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

func NewRedisPublisher(opts RedisOptions) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		Protocol: 2, // Connection protocol
	})

	return &RedisPublisher{client: client, channel: opts.Channel}
}

// Ping checks the connection to the Redis server.
func (r *RedisPublisher) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Subscribe returns the events published on the channel until ctx is done.
func (r *RedisPublisher) Subscribe(ctx context.Context) (<-chan Event, error) {
	sub := r.client.Subscribe(ctx, r.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

func (r *RedisPublisher) Close() error {
	return r.client.Close()
}
