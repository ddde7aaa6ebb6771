package oracle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/shared/uid"
)

type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStream queues requests for an external oracle on a redis stream. The oracle answers through
// the fulfillment endpoint.
type RedisStream struct {
	client StreamAdder
	ids    uid.UIDGenerator
	stream string
	maxLen int64
	now    func() time.Time
}

func NewRedisStream(client StreamAdder, ids uid.UIDGenerator, stream string, maxLen int64) (*RedisStream, error) {
	if client == nil {
		return nil, errors.New("oracle: redis client is required")
	}
	if stream == "" {
		stream = "vrf:requests"
	}
	return &RedisStream{client: client, ids: ids, stream: stream, maxLen: maxLen, now: time.Now}, nil
}

func (s *RedisStream) SubmitRequest(ctx context.Context, request domain.OracleRequest) (string, error) {
	handle, err := s.ids.Generate(ctx)
	if err != nil {
		return "", fmt.Errorf("oracle: failed to assign request handle: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"request_handle":     handle,
			"num_words":          strconv.FormatUint(uint64(request.NumWords), 10),
			"callback_gas_limit": strconv.FormatUint(uint64(request.CallbackGasLimit), 10),
			"confirmations":      strconv.FormatUint(uint64(request.Confirmations), 10),
			"anchor":             strconv.FormatUint(request.Anchor, 10),
			"requested_at":       s.now().UTC().Format(time.RFC3339Nano),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return "", fmt.Errorf("oracle: failed to enqueue request %s: %w", handle, err)
	}

	return handle, nil
}
