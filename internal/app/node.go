package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stow/internal/adapters/cargo"              //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/adapters/git"                //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/adapters/output"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/core/ports"
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
			cargo.LockfileNodeID,
			cargo.ManifestNodeID,
			fs.WalkerNodeID,
			git.NodeID,
			output.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	lockfiles, err := graft.Dep[ports.LockfileLoader](ctx)
	if err != nil {
		return nil, err
	}

	codec, err := graft.Dep[ports.ManifestCodec](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.ManifestFinder](ctx)
	if err != nil {
		return nil, err
	}

	gitClient, err := graft.Dep[ports.GitClient](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.SourceWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, lockfiles, codec, finder, gitClient, writer, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
