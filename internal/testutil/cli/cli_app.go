package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/app"
	internalcli "github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/config"
)

// Output holds what a command wrote to each stream
type Output struct {
	Stdout string
	Stderr string
}

// captureStreams captures stdout and stderr during function execution
func captureStreams(t *testing.T, fn func()) Output {
	t.Helper()

	oldStdout, oldStderr := os.Stdout, os.Stderr

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdout pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}

	os.Stdout, os.Stderr = outW, errW

	collect := func(r io.Reader) <-chan string {
		ch := make(chan string)
		go func() {
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, r)
			ch <- buf.String()
		}()
		return ch
	}
	outC, errC := collect(outR), collect(errR)

	defer func() {
		os.Stdout, os.Stderr = oldStdout, oldStderr
	}()

	fn()

	_ = outW.Close()
	_ = errW.Close()

	return Output{Stdout: <-outC, Stderr: <-errC}
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns its stdout. The app is injected through the command context so
// commands never open the configured database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	out, err := ExecuteCLICommandFull(t, context.Background(), testApp, config.Default(), cmd, args)
	return out.Stdout, err
}

// ExecuteCLICommandFull executes a CLI command with a specific context,
// configuration and test app, capturing both output streams.
func ExecuteCLICommandFull(t *testing.T, ctx context.Context, testApp *app.App, cfg *config.Config, cmd *cobra.Command, args []string) (Output, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx = internalcli.WithConfig(internalcli.WithApp(ctx, testApp), cfg)

	SetupCobraCommand(cmd, args)

	var executeErr error
	out := captureStreams(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return out, executeErr
}
