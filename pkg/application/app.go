// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hyperledger-iroha/harness/pkg/client"
	"github.com/hyperledger-iroha/harness/pkg/config"
	"github.com/hyperledger-iroha/harness/pkg/constants"
	"github.com/hyperledger-iroha/harness/pkg/report"
)

// Harness bundles the collaborators every command needs: logger,
// configuration, and the report sink.
type Harness struct {
	Log      *zap.SugaredLogger
	Conf     *config.Config
	Reporter report.Reporter
	baseDir  string
}

func New() *Harness {
	return &Harness{}
}

func (app *Harness) Setup(baseDir string, log *zap.SugaredLogger, conf *config.Config, reporter report.Reporter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Reporter = reporter
}

func (app *Harness) GetBaseDir() string {
	return app.baseDir
}

func (app *Harness) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Harness) GetReportDir() string {
	return filepath.Join(app.baseDir, constants.ReportDir)
}

func (app *Harness) GetISIDir() string {
	return filepath.Join(app.baseDir, constants.ISITempDirName)
}

// NewClient builds a CLI client wired to the harness collaborators.
func (app *Harness) NewClient() *client.Client {
	return client.New(app.Conf, app.Reporter, app.Log)
}
