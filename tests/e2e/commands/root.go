// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package commands

import (
	"github.com/hyperledger-iroha/harness/pkg/client"
	"github.com/hyperledger-iroha/harness/tests/e2e/utils"
	"github.com/onsi/gomega"
)

// NewClient builds a client for a spec, wired to the suite config and the
// ginkgo report.
func NewClient() *client.Client {
	cfg, err := utils.NewTestConfig()
	gomega.Expect(err).Should(gomega.BeNil())
	return client.New(cfg, utils.GinkgoReporter{}, nil)
}

// GetVersion runs the binary's version sub-command.
func GetVersion(cli *client.Client) string {
	_, err := cli.Version()
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}
