// Command cublas-info reports whether the native cuBLAS library can be
// loaded and what a fresh context looks like. It is a diagnostic tool for
// checking an installation before wiring the wrapper into a service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gpukit/cublas-go/pkg/cublas"
	"github.com/gpukit/cublas-go/pkg/cublas/emulib"
	"github.com/gpukit/cublas-go/pkg/cublas/logging"
)

func main() {
	cmd := &cli.Command{
		Name:    "cublas-info",
		Usage:   "diagnose the cuBLAS installation and session defaults",
		Version: cublas.WrapperVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML config file with library_path / search_paths / log_level",
			},
			&cli.StringFlag{
				Name:  "lib-path",
				Usage: "exact path to the libcublas shared object",
			},
			&cli.BoolFlag{
				Name:  "emulate",
				Usage: "run against the in-memory emulation instead of the real library",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "probe",
				Usage: "load the library and report where it came from",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := setup(cmd); err != nil {
						return err
					}
					fmt.Printf("wrapper version: %s\n", cublas.WrapperVersion())
					if cmd.Bool("emulate") {
						fmt.Println("library: in-memory emulation")
						return nil
					}
					if path := cublas.LibraryPath(); path != "" {
						fmt.Printf("library: %s\n", path)
					} else {
						fmt.Println("library: resolved by the system loader")
					}
					return nil
				},
			},
			{
				Name:  "modes",
				Usage: "create a context and report its session state",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := setup(cmd); err != nil {
						return err
					}
					return reportModes()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cublas-info: %v\n", err)
		os.Exit(1)
	}
}

// setup resolves configuration from the config file and flags, wires logging,
// and brings up either the real library or the emulation.
func setup(cmd *cli.Command) error {
	var cfg cublas.Config
	if path := cmd.String("config"); path != "" {
		loaded, err := cublas.LoadConfigFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if path := cmd.String("lib-path"); path != "" {
		cfg.LibraryPath = path
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	cublas.SetLogger(logging.New(slog.New(handler)))

	if cmd.Bool("emulate") {
		// The restore func is dropped on purpose; the emulation stays
		// installed for the life of the process.
		emulib.New().Install()
		return nil
	}
	return cublas.Init(cfg)
}

func reportModes() error {
	ctx, err := cublas.NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	if version, err := ctx.Version(); err == nil {
		fmt.Printf("native version: %d\n", version)
	}

	pointerMode, err := ctx.PointerMode()
	if err != nil {
		return err
	}
	fmt.Printf("pointer mode:   %s\n", pointerMode)

	atomicsMode, err := ctx.AtomicsMode()
	if err != nil {
		return err
	}
	fmt.Printf("atomics mode:   %s\n", atomicsMode)
	return nil
}
