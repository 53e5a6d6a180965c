// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperledger-iroha/harness/pkg/config"
	"github.com/hyperledger-iroha/harness/pkg/constants"
)

// NewTestConfig builds the execution config for an e2e run. The client
// binary and its config file come from the environment; when no binary is
// configured a stub standing in for the Iroha CLI is written under a temp
// dir so the suite stays runnable on a bare machine.
func NewTestConfig() (*config.Config, error) {
	cfg := config.New()
	if cfg.BinaryPath() == "" {
		dir, err := os.MkdirTemp("", "iroha-harness-e2e")
		if err != nil {
			return nil, err
		}
		stub, err := WriteStubBinary(dir)
		if err != nil {
			return nil, err
		}
		cfg.SetBinaryPath(stub)
	}
	if cfg.ClientConfigPath() == "" {
		cfg.SetClientConfigPath("client.toml")
	}
	templates, err := FindTemplatesDir()
	if err != nil {
		return nil, err
	}
	cfg.SetTemplatesDir(templates)
	cfg.SetISIDir(os.TempDir())
	return cfg, nil
}

// WriteStubBinary writes a shell script that behaves like the Iroha CLI
// as far as the harness observes it: it echoes its arguments, drains and
// repeats stdin, prints a fake transaction hash, and keeps a running list
// of registered IDs so list queries reflect earlier registrations.
func WriteStubBinary(dir string) (string, error) {
	state := filepath.Join(dir, "state.txt")
	script := fmt.Sprintf(`#!/bin/sh
echo "args: $*"
if [ ! -t 0 ]; then cat; fi
for arg in "$@"; do
  case "$arg" in
    --id=*) echo "${arg#--id=}" >> %q ;;
  esac
done
case "$*" in
  *"list all"*) [ -f %q ] && cat %q ;;
esac
echo "Transaction hash: 7d1e8d2c4b6a5f3e9c0d1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c2d"
`, state, state, state)

	path := filepath.Join(dir, "iroha")
	if err := os.WriteFile(path, []byte(script), constants.DefaultPerms755); err != nil {
		return "", err
	}
	return path, nil
}

// FindTemplatesDir walks up from the working directory until it finds the
// repo's instruction template dir. The suite runs from tests/e2e, so two
// levels up is the usual hit.
func FindTemplatesDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, constants.ISITemplatesDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s dir found above %s", constants.ISITemplatesDirName, dir)
		}
		dir = parent
	}
}
