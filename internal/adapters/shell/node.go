package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lein/internal/core/ports"
)

const (
	// LauncherNodeID is the graft node producing the process launcher.
	LauncherNodeID graft.ID = "adapter.launcher"
	// ChannelNodeID is the graft node producing the execution channel.
	ChannelNodeID graft.ID = "adapter.channel"
)

func init() {
	graft.Register(graft.Node[ports.ProcessLauncher]{
		ID:        LauncherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessLauncher, error) {
			return NewLauncher(), nil
		},
	})

	graft.Register(graft.Node[ports.ExecutionChannel]{
		ID:        ChannelNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExecutionChannel, error) {
			return NewLocalChannel(), nil
		},
	})
}
