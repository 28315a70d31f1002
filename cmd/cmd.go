// Package cmd provides CLI command implementations for Quiver.
package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quiverlabs/quiver-go/internal/graph"
	"github.com/quiverlabs/quiver-go/worker"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ServeCmd runs the analytics engine over stdio.
type ServeCmd struct {
	Debug bool `help:"Enable human-readable debug logging"`
}

// Run executes the serve command.
func (c *ServeCmd) Run() error {
	logger, err := newLogger(c.Debug)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := <-osSignalChannel()
		logger.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	fmt.Fprintln(os.Stderr, "Starting analytics engine...")

	server := worker.NewServer(graph.NewLinkGraph(), logger)
	if err := server.Run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("running engine: %w", err)
	}

	return nil
}

// OpsCmd lists the protocol operations the engine answers.
type OpsCmd struct {
	JSON bool `help:"Emit the catalog as JSON"`
}

// Run executes the ops command.
func (c *OpsCmd) Run() error {
	operations := worker.Operations()

	if c.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(operations)
	}

	fmt.Printf("Supported operations (%d):\n", len(operations))
	for _, op := range operations {
		fmt.Printf("\n  %s\n    %s\n", op.Name, op.Description)
	}

	return nil
}

// ReplayCmd replays a request script against a fresh engine.
type ReplayCmd struct {
	Path   string `arg:"" help:"Script file with one JSON request envelope per line"`
	Pretty bool   `help:"Indent response JSON"`
}

// Run executes the replay command.
func (c *ReplayCmd) Run() error {
	file, err := os.Open(c.Path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer func() { _ = file.Close() }()

	server := worker.NewServer(graph.NewLinkGraph(), zap.NewNop())

	encoder := json.NewEncoder(os.Stdout)
	if c.Pretty {
		encoder.SetIndent("", "  ")
	}

	succeeded, failed, skipped := 0, 0, 0

	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadBytes('\n')

		trimmed := bytes.TrimSpace(line)
		if len(trimmed) > 0 {
			var req worker.Request
			if err := json.Unmarshal(trimmed, &req); err != nil {
				fmt.Fprintf(os.Stderr, "Skipping undecodable line: %v\n", err)
				skipped++
			} else {
				if req.ID == "" {
					req.ID = uuid.NewString()
				}

				resp := server.Dispatch(req)
				if err := encoder.Encode(resp); err != nil {
					return fmt.Errorf("writing response: %w", err)
				}

				if resp.Success {
					succeeded++
				} else {
					failed++
				}
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("reading script: %w", readErr)
		}
	}

	green := color.New(color.FgGreen)
	_, _ = green.Fprintf(color.Error, "✓ Replay complete: %d succeeded, %d failed, %d skipped\n", succeeded, failed, skipped)

	return nil
}

// Helper functions

// osSignalChannel returns a channel that receives OS signals for graceful shutdown.
func osSignalChannel() <-chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	return sigChan
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// CLI is the root Kong command structure.
type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`
	Verbose bool             `short:"v" help:"Enable verbose output"`
	Quiet   bool             `short:"q" help:"Suppress non-essential output"`

	// Commands
	Serve  ServeCmd  `cmd:"" help:"Serve the analytics engine over stdio"`
	Ops    OpsCmd    `cmd:"" help:"List supported protocol operations"`
	Replay ReplayCmd `cmd:"" help:"Replay a request script against a fresh engine"`
}

// NewCLI creates a new CLI instance.
func NewCLI() *CLI {
	return &CLI{}
}

// Execute parses command-line arguments and executes the selected command.
func (c *CLI) Execute(args []string) error {
	kongCtx := kong.Parse(c,
		kong.Name("quiver-go"),
		kong.Description("Graph and search analytics engine for linked note corpora"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": Version,
		},
	)

	return kongCtx.Run()
}
