// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-pass-shell/internal/client"
	"github.com/MKhiriev/go-pass-shell/internal/config"
	"github.com/MKhiriev/go-pass-shell/internal/logger"
	"github.com/MKhiriev/go-pass-shell/internal/session"
	"github.com/MKhiriev/go-pass-shell/internal/transport"
	"github.com/MKhiriev/go-pass-shell/internal/tui"
	"github.com/MKhiriev/go-pass-shell/internal/utils"
	"github.com/MKhiriev/go-pass-shell/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bootLog := logger.NewClientLogger(config.DefaultAppName, "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}
	_ = bootLog.Close()

	log := logger.NewClientLogger(cfg.App.Name, cfg.App.LogPath)
	defer log.Close()

	buildInfo := models.NewAppBuildInfo(cfg.App.Name, buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	sessionID := utils.NewUUIDGenerator().Generate()

	ws, err := transport.NewWebSocket(cfg.Transport, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create transport")
	}

	ui, err := tui.New(ws, session.Options{
		Resource:  cfg.Protocol.Resource,
		Dialect:   cfg.Protocol.Dialect,
		Logout:    cfg.Protocol.Logout,
		Open:      cfg.Protocol.Open,
		SessionID: sessionID,
	}, tui.Options{
		NoticeTTL: cfg.UI.NoticeTTL,
		AltScreen: cfg.UI.AltScreen,
		BuildInfo: buildInfo,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ws, ui, sessionID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("%s\n", info.AppName())
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
