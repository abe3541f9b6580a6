// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/black-desk/wswatch/pkg/interfaces"
	"github.com/black-desk/wswatch/pkg/manager"
	"github.com/black-desk/wswatch/pkg/wswatch"
	"github.com/black-desk/wswatch/pkg/wswatch/config"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func injectedWSWatch(
	*config.Config, *zap.SugaredLogger,
) (
	*wswatch.WSWatch, error,
) {
	panic(wire.Build(daemonSet))
}

func injectedManager(
	*config.Config, *zap.SugaredLogger, interfaces.Emitter,
) (
	*manager.Manager, error,
) {
	panic(wire.Build(managerSet))
}

var managerSet = wire.NewSet(
	provideClassifier,
	provideFilterOpts,
	provideManager,
	provideSelector,
	provideWatcherFactory,
)

var daemonSet = wire.NewSet(
	managerSet,
	provideEmitter,
	provideHub,
	provideServer,
	provideWSWatch,
)
