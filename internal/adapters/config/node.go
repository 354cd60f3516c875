package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lein/internal/core/ports"
)

// NodeID is the unique identifier for the configuration store Graft node.
const NodeID graft.ID = "adapter.config_store"

func init() {
	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigStore, error) {
			path, err := DefaultPath()
			if err != nil {
				return nil, err
			}
			return NewStore(path), nil
		},
	})
}
