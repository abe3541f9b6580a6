// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"os"

	"github.com/black-desk/lib/go/logger"
	"github.com/black-desk/wswatch/pkg/emitter"
	"github.com/black-desk/wswatch/pkg/wswatch/config"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <path>...",
	Short: "Watch workspaces in the foreground",
	Long: `Watch the given workspace roots and print one fs-change signal
per line to standard output until interrupted.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		err = watchCmdRun(args)
		return
	},
}

func watchCmdRun(roots []string) (err error) {
	log := logger.Get("wswatch")

	var cfg *config.Config
	cfg, err = loadConfig(log)
	if err != nil {
		return
	}

	cfg.Workspaces = roots

	var w *emitter.Writer
	w, err = emitter.NewWriter(os.Stdout)
	if err != nil {
		return
	}

	m, err := injectedManager(cfg, log, w)
	if err != nil {
		return
	}

	ctx, cancel := signalContext()
	defer cancel(nil)

	err = m.Run(ctx)
	return exitStatus(ctx, log, err)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
