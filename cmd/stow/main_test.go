package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stow/internal/adapters/telemetry"
	"go.trai.ch/stow/internal/app"
	"go.trai.ch/stow/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller, log *mocks.MockLogger) *app.Components {
	application := app.New(
		mocks.NewMockConfigLoader(ctrl),
		mocks.NewMockLockfileLoader(ctrl),
		mocks.NewMockManifestCodec(ctrl),
		mocks.NewMockManifestFinder(ctrl),
		mocks.NewMockGitClient(ctrl),
		mocks.NewMockSourceWriter(ctrl),
		log,
		telemetry.NewNoOp(),
	)

	return &app.Components{
		App:       application,
		Logger:    log,
		Telemetry: telemetry.NewNoOp(),
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().SetVerbose(false)
	log.EXPECT().SetJSON(false)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return newComponents(ctrl, log), func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}

// TestRun_ProviderError verifies that initialization failures are printed to stderr.
func TestRun_ProviderError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: wiring failed\n", stderr.String())
}

// TestRun_CommandError verifies that command failures are reported through the logger.
func TestRun_CommandError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	log.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any())

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return newComponents(ctrl, log), func() {}, nil
	}

	exitCode := run(context.Background(), []string{"clean", "unexpected"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
