package oracle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type sequenceIDs struct {
	mu   sync.Mutex
	next int
	err  error
}

func (s *sequenceIDs) Generate(context.Context) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return "req-" + big.NewInt(int64(s.next)).String(), nil
}

type manualPosition struct {
	mu       sync.Mutex
	position uint64
}

func (m *manualPosition) CurrentPosition(context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position, nil
}

func (m *manualPosition) set(position uint64) {
	m.mu.Lock()
	m.position = position
	m.mu.Unlock()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type LocalVRFSuite struct {
	suite.Suite

	chain  *manualPosition
	oracle *LocalVRF
}

func (s *LocalVRFSuite) SetupTest() {
	key, err := crypto.GenerateKey()
	require.NoError(s.T(), err)

	s.chain = &manualPosition{position: 100}
	s.oracle, err = NewLocalVRF(key, &sequenceIDs{}, s.chain, 8, discardLogger())
	require.NoError(s.T(), err)
}

func (s *LocalVRFSuite) TestAnswerIsDeterministicAndVerifiable() {
	request := domain.OracleRequest{NumWords: 3, Anchor: 100}

	first, err := s.oracle.Answer("req-1", request)
	require.NoError(s.T(), err)
	second, err := s.oracle.Answer("req-1", request)
	require.NoError(s.T(), err)

	require.Len(s.T(), first.RandomWords, 3)
	assert.Equal(s.T(), first.RandomWords, second.RandomWords)
	assert.NotEqual(s.T(), first.RandomWords[0], first.RandomWords[1])
	for _, word := range first.RandomWords {
		assert.LessOrEqual(s.T(), word.BitLen(), 256)
	}

	assert.True(s.T(), VerifyProof(s.oracle.PublicKey(), "req-1", 100, first.Proof))
	assert.False(s.T(), VerifyProof(s.oracle.PublicKey(), "req-1", 101, first.Proof))
	assert.False(s.T(), VerifyProof(s.oracle.PublicKey(), "req-2", 100, first.Proof))
	assert.False(s.T(), VerifyProof(s.oracle.PublicKey(), "req-1", 100, first.Proof[:10]))

	other, err := s.oracle.Answer("req-2", request)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), first.RandomWords[0], other.RandomWords[0])
}

func (s *LocalVRFSuite) TestTickWaitsForConfirmations() {
	handle, err := s.oracle.SubmitRequest(context.Background(), domain.OracleRequest{NumWords: 1, Confirmations: 3, Anchor: 100})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, s.oracle.Pending())

	s.chain.set(102)
	delivered, err := s.oracle.Tick(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0, delivered)

	s.chain.set(103)
	delivered, err = s.oracle.Tick(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, delivered)
	assert.Equal(s.T(), 0, s.oracle.Pending())

	fulfillment := <-s.oracle.Deliveries()
	assert.Equal(s.T(), handle, fulfillment.Handle)
	assert.Len(s.T(), fulfillment.RandomWords, 1)
}

func (s *LocalVRFSuite) TestSubmitRequestRejectsZeroWords() {
	_, err := s.oracle.SubmitRequest(context.Background(), domain.OracleRequest{NumWords: 0})
	require.Error(s.T(), err)
	assert.Equal(s.T(), 0, s.oracle.Pending())
}

type stubPendingSource struct {
	commitments []domain.Commitment
	err         error
	limit       int
}

func (s *stubPendingSource) ListPending(_ context.Context, limit int) ([]domain.Commitment, error) {
	s.limit = limit
	return s.commitments, s.err
}

func (s *LocalVRFSuite) TestHydrate_TableDriven() {
	listErr := errors.New("db down")

	tests := []struct {
		name      string
		source    *stubPendingSource
		setup     func()
		assertion func(int, error)
	}{
		{
			name:   "propagates list error",
			source: &stubPendingSource{err: listErr},
			assertion: func(restored int, err error) {
				assert.ErrorIs(s.T(), err, listErr)
				assert.Equal(s.T(), 0, restored)
				assert.Equal(s.T(), 0, s.oracle.Pending())
			},
		},
		{
			name: "restores requested commitments and skips incomplete rows",
			source: &stubPendingSource{commitments: []domain.Commitment{
				{RequestHandle: "req-7", NumWords: 2, CallbackGasLimit: 100000, Anchor: 90},
				{RequestHandle: "", NumWords: 1, Anchor: 91},
				{RequestHandle: "req-8", NumWords: 0, Anchor: 92},
			}},
			assertion: func(restored int, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), 1, restored)
				assert.Equal(s.T(), 1, s.oracle.Pending())
			},
		},
		{
			name: "keeps requests already queued",
			source: &stubPendingSource{commitments: []domain.Commitment{
				{RequestHandle: "req-1", NumWords: 1, Anchor: 100},
			}},
			setup: func() {
				_, err := s.oracle.SubmitRequest(context.Background(), domain.OracleRequest{NumWords: 1, Anchor: 100})
				require.NoError(s.T(), err)
			},
			assertion: func(restored int, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), 0, restored)
				assert.Equal(s.T(), 1, s.oracle.Pending())
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setup != nil {
				tc.setup()
			}

			restored, err := s.oracle.Hydrate(context.Background(), tc.source, 3, 25)
			assert.Equal(s.T(), 25, tc.source.limit)
			tc.assertion(restored, err)
		})
	}
}

func (s *LocalVRFSuite) TestHydratedRequestIsAnsweredLikeTheOriginal() {
	request := domain.OracleRequest{NumWords: 2, Confirmations: 3, Anchor: 90}
	expected, err := s.oracle.Answer("req-7", request)
	require.NoError(s.T(), err)

	restored, err := s.oracle.Hydrate(context.Background(), &stubPendingSource{commitments: []domain.Commitment{
		{RequestHandle: "req-7", NumWords: 2, Anchor: 90},
	}}, 3, 10)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, restored)

	s.chain.set(93)
	delivered, err := s.oracle.Tick(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, delivered)

	fulfillment := <-s.oracle.Deliveries()
	assert.Equal(s.T(), "req-7", fulfillment.Handle)
	assert.Equal(s.T(), expected.RandomWords, fulfillment.RandomWords)
}

func TestLocalVRFSuite(t *testing.T) {
	suite.Run(t, new(LocalVRFSuite))
}

type recordingSink struct {
	mu      sync.Mutex
	handles []string
	err     error
}

func (r *recordingSink) Fulfill(_ context.Context, handle string, _ []*big.Int) (vo.FulfillmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles = append(r.handles, handle)
	return vo.FulfillmentResult{RequestHandle: handle}, r.err
}

func TestPump_DeliversUntilClosed(t *testing.T) {
	deliveries := make(chan Fulfillment, 3)
	deliveries <- Fulfillment{Handle: "a", RandomWords: []*big.Int{big.NewInt(1)}}
	deliveries <- Fulfillment{Handle: "b", RandomWords: []*big.Int{big.NewInt(2)}}
	close(deliveries)

	sink := &recordingSink{err: vo.ErrUnknownRequest}
	done := make(chan struct{})
	go func() {
		Pump(context.Background(), deliveries, sink, discardLogger())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump did not stop after the channel closed")
	}
	assert.Equal(t, []string{"a", "b"}, sink.handles)
}

type stubStream struct {
	args *redis.XAddArgs
	err  error
}

func (s *stubStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	s.args = a
	cmd := redis.NewStringCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
	} else {
		cmd.SetVal("1-0")
	}
	return cmd
}

func TestRedisStream_SubmitRequest_TableDriven(t *testing.T) {
	streamErr := errors.New("redis unavailable")

	tests := []struct {
		name      string
		stream    *stubStream
		ids       *sequenceIDs
		assertion func(t *testing.T, stream *stubStream, handle string, err error)
	}{
		{
			name:   "enqueues request fields",
			stream: &stubStream{},
			ids:    &sequenceIDs{},
			assertion: func(t *testing.T, stream *stubStream, handle string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "req-1", handle)
				require.NotNil(t, stream.args)
				assert.Equal(t, "vrf:requests", stream.args.Stream)
				assert.Equal(t, int64(1000), stream.args.MaxLen)
				assert.True(t, stream.args.Approx)

				values := stream.args.Values.(map[string]interface{})
				assert.Equal(t, "req-1", values["request_handle"])
				assert.Equal(t, "1", values["num_words"])
				assert.Equal(t, "150000", values["callback_gas_limit"])
				assert.Equal(t, "3", values["confirmations"])
				assert.Equal(t, "77", values["anchor"])
			},
		},
		{
			name:   "wraps redis error",
			stream: &stubStream{err: streamErr},
			ids:    &sequenceIDs{},
			assertion: func(t *testing.T, _ *stubStream, handle string, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, streamErr)
				assert.Empty(t, handle)
			},
		},
		{
			name:   "propagates handle generation error",
			stream: &stubStream{},
			ids:    &sequenceIDs{err: errors.New("clock moved backwards")},
			assertion: func(t *testing.T, stream *stubStream, handle string, err error) {
				require.Error(t, err)
				assert.Nil(t, stream.args)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewRedisStream(tc.stream, tc.ids, "", 1000)
			require.NoError(t, err)

			handle, err := client.SubmitRequest(context.Background(), domain.OracleRequest{
				NumWords:         1,
				CallbackGasLimit: 150000,
				Confirmations:    3,
				Anchor:           77,
			})
			tc.assertion(t, tc.stream, handle, err)
		})
	}
}
