// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/classify"
	"github.com/black-desk/wswatch/pkg/wswatch/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <path>",
	Short: "Show how a workspace root would be watched",
	Long: `Print whether the path looks cloud synced, whether it lives on
a remote filesystem, and the notification strategy a session on it would use.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		err = classifyCmdRun(args[0])
		return
	},
}

type classifyResult struct {
	Path      string `json:"path"`
	CloudSync bool   `json:"cloud_sync"`
	RemoteFS  bool   `json:"remote_fs"`
	Strategy  string `json:"strategy"`
}

func classifyCmdRun(path string) (err error) {
	defer Wrap(&err, "classify %s", path)

	log := zap.NewNop().Sugar()

	var cfg *config.Config
	cfg, err = loadConfig(log)
	if err != nil {
		return
	}

	path, err = filepath.Abs(path)
	if err != nil {
		return
	}

	c := provideClassifier(cfg)
	selector := provideSelector(cfg, c, log)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	err = enc.Encode(&classifyResult{
		Path:      path,
		CloudSync: c.IsCloudSyncPath(path),
		RemoteFS:  classify.IsRemoteFS(path),
		Strategy:  selector.Select(path).String(),
	})
	return
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
