package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lein/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lein/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lein/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/lein/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/lein/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.LauncherNodeID,
			shell.ChannelNodeID,
			telemetry.FactoryNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.ConfigStore](ctx)
	if err != nil {
		return nil, err
	}
	launcher, err := graft.Dep[ports.ProcessLauncher](ctx)
	if err != nil {
		return nil, err
	}
	channel, err := graft.Dep[ports.ExecutionChannel](ctx)
	if err != nil {
		return nil, err
	}
	tracers, err := graft.Dep[ports.TracerFactory](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(store, launcher, channel, tracers, log), nil
}
