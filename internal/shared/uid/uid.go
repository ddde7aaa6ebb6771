package uid

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

type Strategy string

const (
	StrategySnowflake Strategy = "snowflake"
	StrategyUUIDv7    Strategy = "uuidv7"
)

type Options struct {
	Strategy Strategy
	// NodeID must be unique per instance for snowflake ids (0-1023).
	NodeID int64
}

// UIDGenerator issues oracle request handles. Implementations must be safe for concurrent use.
type UIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

func New(opts Options) (UIDGenerator, error) {
	switch opts.Strategy {
	case StrategySnowflake:
		return NewSnowflake(opts.NodeID)
	case StrategyUUIDv7, "":
		return NewUUIDv7(), nil
	default:
		return nil, fmt.Errorf("uid: unknown strategy %q", opts.Strategy)
	}
}

type snowflakeGenerator struct {
	mu   sync.Mutex
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (UIDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("uid: failed to create snowflake node: %w", err)
	}
	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) Generate(context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.node.Generate().String(), nil
}

type uuidv7Generator struct{}

func NewUUIDv7() UIDGenerator {
	return uuidv7Generator{}
}

func (uuidv7Generator) Generate(context.Context) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uid: failed to generate uuid v7: %w", err)
	}
	return id.String(), nil
}
