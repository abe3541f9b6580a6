// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/lib/go/logger"
	"github.com/black-desk/wswatch/pkg/wswatch/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flags struct {
	CfgPath string
}

var rootCmd = &cobra.Command{
	Use:   "wswatch",
	Short: "A workspace change detection daemon",
	Long: `Watch workspace roots and stream the changes worth showing
to the user over a websocket.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf(
				"\n\n%w\n"+CheckDocumentString,
				err,
			)

			return
		}()
		err = rootCmdRun()
		return
	},
}

func rootCmdRun() (err error) {
	log := logger.Get("wswatch")

	var cfg *config.Config
	cfg, err = loadConfig(log)
	if err != nil {
		return
	}

	d, err := injectedWSWatch(cfg, log)
	if err != nil {
		return
	}

	ctx, cancel := signalContext()
	defer cancel(nil)

	err = d.Run(ctx)
	return exitStatus(ctx, log, err)
}

// loadConfig reads the file given by --config. A missing default file
// is not an error, the built-in configuration is used instead.
func loadConfig(log *zap.SugaredLogger) (ret *config.Config, err error) {
	content, err := os.ReadFile(flags.CfgPath)
	if errors.Is(err, os.ErrNotExist) && flags.CfgPath == defaultCfgPath() {
		log.Infow("Configuration file missing fallback to default config.",
			"file", flags.CfgPath,
		)

		content = []byte(config.DefaultConfig)
		err = nil
	} else if err != nil {
		log.Errorw("Failed to read configuration from file",
			"file", flags.CfgPath,
			"error", err)

		Wrap(&err, "read configuration from %s", flags.CfgPath)
		return
	}

	ret, err = config.New(
		config.WithContent(content),
		config.WithLogger(log),
	)
	return
}

// signalContext is cancelled with ErrCancelBySignal
// on the first SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelCauseFunc) {
	ctx, cancel := context.WithCancelCause(context.Background())

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			cancel(&ErrCancelBySignal{Signal: sig})
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func exitStatus(ctx context.Context, log *zap.SugaredLogger, err error) error {
	if err == nil {
		return nil
	}

	log.Debugw(
		"Exited with error.",
		"error", err,
	)

	var cancelBySignal *ErrCancelBySignal
	if errors.As(context.Cause(ctx), &cancelBySignal) &&
		errors.Is(err, context.Canceled) {
		log.Infow("Signal received, exiting...",
			"signal", cancelBySignal.Signal,
		)
		return nil
	}

	return err
}

func defaultCfgPath() string {
	dir := os.Getenv("CONFIGURATION_DIRECTORY")
	if dir == "" {
		return WSWatchCfgPath
	}

	return filepath.Join(dir, "config.yaml")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&flags.CfgPath,
		"config", "c", defaultCfgPath(),
		"the configure file to use",
	)
}
