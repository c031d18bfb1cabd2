package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out unique IDs for sessions and searches.
type Generator interface {
	GenerateID() int64
	GenerateString() string
}

// SnowflakeGenerator implements Generator with Twitter Snowflake IDs.
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes a new ID generator.
// nodeID must be unique per running instance (0-1023).
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) generate() snowflake.ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.node.Generate()
}

func (g *SnowflakeGenerator) GenerateID() int64 {
	return g.generate().Int64()
}

// GenerateString returns the base58 form, short enough for cookies and log lines.
func (g *SnowflakeGenerator) GenerateString() string {
	return g.generate().Base58()
}
