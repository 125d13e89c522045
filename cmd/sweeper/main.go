package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/velikov/sweeper/internal/config"
	"github.com/velikov/sweeper/internal/mines"
	"github.com/velikov/sweeper/internal/session"
)

var log = logrus.New()

type options struct {
	configPath string
	width      int
	height     int
	mineCount  int
	preset     string
	seed       uint64
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "sweeper",
		Short: "Terminal minesweeper",
		Long: "sweeper is a single-player terminal minesweeper.\n\n" +
			"Board dimensions come from flags, a named preset, or an interactive\n" +
			"prompt when neither is given. Moves are lines of the form `x y [action]`\n" +
			"with actions clear (default), flag and question.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file path")
	cmd.Flags().IntVarP(&opts.width, "width", "W", 0, "board width")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 0, "board height")
	cmd.Flags().IntVarP(&opts.mineCount, "mines", "m", 0, "mine count")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "named board preset (see config)")
	cmd.Flags().Uint64VarP(&opts.seed, "seed", "s", 0, "mine placement seed (0 = time-based)")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cfg := config.Default()
	if opts.configPath != "" {
		if err := config.ReadConfig(opts.configPath, &cfg); err != nil {
			return fmt.Errorf("unable to read config %s: %w", opts.configPath, err)
		}
	}

	setupLogging(cfg)
	log.WithFields(cfg.Fields()).Debug("config")

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	entry := log.WithField("session_id", uuid.NewString())
	sess := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), rng, entry)

	if board, ok, err := boardFromOptions(cfg, opts, rng); err != nil {
		return err
	} else if ok {
		sess.SetBoard(board)
	}

	return sess.Run()
}

// boardFromOptions builds a board when flags pin it down: either a preset
// name or a full width/height/mines triple. ok is false when nothing was
// requested and the session should prompt interactively.
func boardFromOptions(cfg config.Config, opts options, rng *rand.Rand) (*mines.Board, bool, error) {
	if opts.preset != "" {
		preset, found := cfg.Presets[opts.preset]
		if !found {
			return nil, false, fmt.Errorf("unknown preset %q", opts.preset)
		}
		board, err := mines.NewBoard(preset.Width, preset.Height, preset.MineCount, rng)
		if err != nil {
			return nil, false, fmt.Errorf("preset %q: %w", opts.preset, err)
		}
		return board, true, nil
	}

	if opts.width == 0 && opts.height == 0 && opts.mineCount == 0 {
		return nil, false, nil
	}
	if opts.width <= 0 || opts.height <= 0 {
		return nil, false, errors.New("--width and --height must both be positive")
	}
	board, err := mines.NewBoard(opts.width, opts.height, opts.mineCount, rng)
	if err != nil {
		return nil, false, err
	}
	return board, true, nil
}

func setupLogging(cfg config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.SetLevel(level)
		l.SetOutput(os.Stderr)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}
}
