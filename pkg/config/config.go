// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/spf13/viper"

	"github.com/hyperledger-iroha/harness/pkg/constants"
)

// Config owns everything an execution borrows from its surroundings: the
// path of the client binary, the client config file passed via --config,
// the pool of Torii endpoints, and the process environment. The harness
// borrows a Config, it never manages its lifecycle.
type Config struct {
	binaryPath       string
	clientConfigPath string
	templatesDir     string
	isiDir           string
	toriiURLs        []string
	env              map[string]string
	rng              *rand.Rand
}

// New builds a Config from viper settings, falling back to process
// environment variables for the binary and client config paths.
func New() *Config {
	c := &Config{
		binaryPath:       viper.GetString("cli-binary"),
		clientConfigPath: viper.GetString("cli-config"),
		templatesDir:     viper.GetString("isi-templates-dir"),
		isiDir:           viper.GetString("isi-dir"),
		toriiURLs:        viper.GetStringSlice("torii-urls"),
		env:              map[string]string{},
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if c.binaryPath == "" {
		c.binaryPath = os.Getenv(constants.CLIBinaryEnvVar)
	}
	if c.clientConfigPath == "" {
		c.clientConfigPath = os.Getenv(constants.CLIConfigEnvVar)
	}
	if c.templatesDir == "" {
		c.templatesDir = constants.ISITemplatesDirName
	}
	if c.isiDir == "" {
		c.isiDir = os.TempDir()
	}
	return c
}

func (c *Config) BinaryPath() string {
	return c.binaryPath
}

func (c *Config) SetBinaryPath(path string) {
	c.binaryPath = path
}

func (c *Config) ClientConfigPath() string {
	return c.clientConfigPath
}

func (c *Config) SetClientConfigPath(path string) {
	c.clientConfigPath = path
}

// TemplatesDir is the fixed directory JSON instruction templates are read from.
func (c *Config) TemplatesDir() string {
	return c.templatesDir
}

func (c *Config) SetTemplatesDir(dir string) {
	c.templatesDir = dir
}

// ISIDir is where modified instruction documents are written before piping.
func (c *Config) ISIDir() string {
	return c.isiDir
}

func (c *Config) SetISIDir(dir string) {
	c.isiDir = dir
}

func (c *Config) SetToriiURLs(urls []string) {
	c.toriiURLs = urls
}

// SetEnv overrides a single environment variable for spawned processes.
func (c *Config) SetEnv(key, value string) {
	c.env[key] = value
}

// Env returns the process environment for spawned commands: the parent
// environment with overrides applied, in deterministic order.
func (c *Config) Env() []string {
	env := os.Environ()
	keys := make([]string, 0, len(c.env))
	for k := range c.env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+c.env[k])
	}
	return env
}

// RandomizeToriiURL picks one endpoint from the pool and exports it as
// TORII_URL for subsequent executions. Each execution targets a random
// node so a test run spreads submissions across the network.
func (c *Config) RandomizeToriiURL() string {
	if len(c.toriiURLs) == 0 {
		return c.env[constants.ToriiURLEnvVar]
	}
	url := c.toriiURLs[c.rng.Intn(len(c.toriiURLs))]
	c.env[constants.ToriiURLEnvVar] = url
	return url
}
