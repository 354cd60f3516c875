package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/lein/internal/adapters/logger"
	"go.trai.ch/lein/internal/core/ports"
)

// FactoryNodeID is the unique identifier for the tracer factory Graft node.
const FactoryNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.TracerFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TracerFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log, os.Stderr), nil
		},
	})
}
