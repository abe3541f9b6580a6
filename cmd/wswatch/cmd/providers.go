// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/black-desk/wswatch/pkg/classify"
	"github.com/black-desk/wswatch/pkg/emitter"
	"github.com/black-desk/wswatch/pkg/filter"
	"github.com/black-desk/wswatch/pkg/fswatch"
	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/manager"
	"github.com/black-desk/wswatch/pkg/server"
	"github.com/black-desk/wswatch/pkg/strategy"
	"github.com/black-desk/wswatch/pkg/wswatch"
	"github.com/black-desk/wswatch/pkg/wswatch/config"
	"go.uber.org/zap"
)

func provideClassifier(cfg *config.Config) *classify.Classifier {
	return classify.New(
		classify.WithCloudSyncMarkers(cfg.Classify.CloudSyncMarkers),
		classify.WithMetadataDir(cfg.Classify.MetadataDir),
		classify.WithTransientExtensions(cfg.Classify.TransientExtensions),
		classify.WithTransientPrefixes(cfg.Classify.TransientPrefixes),
	)
}

func provideSelector(
	cfg *config.Config,
	c *classify.Classifier,
	logger *zap.SugaredLogger,
) *strategy.Selector {
	opts := []strategy.SelectorOpt{
		strategy.WithClassifier(c),
		strategy.WithPolling(
			cfg.Polling.Interval,
			cfg.Polling.CompareContents,
		),
		strategy.WithLogger(logger),
	}

	if cfg.Polling.DetectRemoteFS {
		opts = append(opts, strategy.WithRemoteFSProbe(classify.IsRemoteFS))
	}

	return strategy.NewSelector(opts...)
}

func provideWatcherFactory(
	cfg *config.Config, logger *zap.SugaredLogger,
) fswatch.Factory {
	return fswatch.NewFactory(
		fswatch.WithBufferSize(cfg.ChannelBuffer),
		fswatch.WithLogger(logger),
	)
}

func provideFilterOpts(
	cfg *config.Config, c *classify.Classifier,
) []filter.Opt {
	return []filter.Opt{
		filter.WithClassifier(c),
		filter.WithIgnoredNames(cfg.Filter.IgnoredNames),
		filter.WithGitignore(cfg.Filter.Gitignore),
	}
}

func provideManager(
	cfg *config.Config,
	selector *strategy.Selector,
	factory fswatch.Factory,
	e interfaces.Emitter,
	filterOpts []filter.Opt,
	logger *zap.SugaredLogger,
) (
	*manager.Manager, error,
) {
	return manager.New(
		manager.WithSelector(selector),
		manager.WithWatcherFactory(factory),
		manager.WithEmitter(e),
		manager.WithFilterOpts(filterOpts...),
		manager.WithPolicy(manager.Policy(cfg.Rewatch)),
		manager.WithWorkspaces(cfg.Workspaces),
		manager.WithLogger(logger),
	)
}

func provideHub(logger *zap.SugaredLogger) (*emitter.Hub, error) {
	return emitter.NewHub(
		emitter.WithHubLogger(logger),
	)
}

func provideEmitter(hub *emitter.Hub) interfaces.Emitter {
	return hub
}

func provideServer(
	cfg *config.Config,
	m *manager.Manager,
	hub *emitter.Hub,
	selector *strategy.Selector,
	c *classify.Classifier,
	logger *zap.SugaredLogger,
) (
	*server.Server, error,
) {
	return server.New(
		server.WithListen(cfg.Listen),
		server.WithManager(m),
		server.WithEvents(hub),
		server.WithSelector(selector),
		server.WithClassifier(c),
		server.WithLogger(logger),
	)
}

func provideWSWatch(
	cfg *config.Config,
	m *manager.Manager,
	s *server.Server,
	hub *emitter.Hub,
	logger *zap.SugaredLogger,
) (
	*wswatch.WSWatch, error,
) {
	return wswatch.New(
		wswatch.WithConfig(cfg),
		wswatch.WithLogger(logger),
		wswatch.WithManager(m),
		wswatch.WithServer(s),
		wswatch.WithCloser(hub),
	)
}
