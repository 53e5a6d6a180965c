// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hyperledger-iroha/harness/cmd/isicmd"
	"github.com/hyperledger-iroha/harness/cmd/smokecmd"
	"github.com/hyperledger-iroha/harness/pkg/application"
	"github.com/hyperledger-iroha/harness/pkg/config"
	"github.com/hyperledger-iroha/harness/pkg/constants"
	"github.com/hyperledger-iroha/harness/pkg/report"
	"github.com/hyperledger-iroha/harness/pkg/ux"
)

var (
	app = application.New()

	logLevel string
	cfgFile  string
	Version  = "0.3.0"
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "iroha-harness",
		Long: `Iroha CLI harness - drives the Iroha client binary for test automation.

The harness builds invocations of the external Iroha CLI, executes them as
subprocesses, captures stdout/stderr, and records every execution as named
report artifacts.

COMMAND OVERVIEW:

  smoke   Run a domain/account/asset round trip against the configured node
  isi     Submit JSON-templated instructions through the binary's stdin

CONFIGURATION:

  The client binary and its config file come from the harness config file,
  or from the IROHA_CLI_BINARY / IROHA_CLI_CONFIG environment variables.
  Torii endpoints listed under torii-urls are picked at random before each
  execution.

For detailed command help, use: iroha-harness <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.iroha-harness/harness.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")

	rootCmd.AddCommand(smokecmd.NewCmd(app))
	rootCmd.AddCommand(isicmd.NewCmd(app))

	return rootCmd
}

func createApp(*cobra.Command, []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}
	if err := initConfig(baseDir); err != nil {
		return err
	}

	reporter, err := report.NewDirReporter(filepath.Join(baseDir, constants.ReportDir))
	if err != nil {
		return err
	}

	cf := config.New()
	cf.SetISIDir(filepath.Join(baseDir, constants.ISITempDirName))

	app.Setup(baseDir, log, cf, reporter)
	ux.NewUserLog(log, os.Stdout)
	return nil
}

func setupEnv() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("unable to get system user: %w", err)
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)
	if err := os.MkdirAll(baseDir, constants.DefaultPerms755); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Join(baseDir, constants.LogDir), constants.DefaultPerms755); err != nil {
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (*zap.SugaredLogger, error) {
	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = level
	logCfg.OutputPaths = []string{filepath.Join(baseDir, constants.LogDir, "harness.log")}
	logCfg.ErrorOutputPaths = []string{"stderr"}

	log, err := logCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return log.Sugar(), nil
}

func initConfig(baseDir string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(baseDir)
		viper.SetConfigName("harness")
		viper.SetConfigType("json")
	}
	viper.AutomaticEnv()

	// A missing config file is fine; everything can come from env vars.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return nil
		}
		if cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
	return nil
}

func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
