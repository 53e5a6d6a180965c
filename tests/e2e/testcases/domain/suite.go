// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/hyperledger-iroha/harness/pkg/client"
	"github.com/hyperledger-iroha/harness/pkg/models"
	"github.com/hyperledger-iroha/harness/tests/e2e/commands"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Domain]", func() {
	var (
		cli        *client.Client
		domainName string
	)

	ginkgo.BeforeEach(func() {
		cli = commands.NewClient()
		domainName = fmt.Sprintf("garden_%d", time.Now().UnixNano())
	})

	ginkgo.AfterEach(func() {
		gomega.Expect(cli.Close()).Should(gomega.BeNil())
	})

	ginkgo.It("reports a version", func() {
		out := commands.GetVersion(cli)
		gomega.Expect(out).ShouldNot(gomega.BeEmpty())
	})

	ginkgo.It("registers a domain and sees it listed", func() {
		commands.RegisterDomain(cli, domainName)
		gomega.Expect(cli.TransactionHash).ShouldNot(gomega.BeEmpty())

		err := cli.WaitFor(func() bool {
			return strings.Contains(commands.ListDomains(cli), domainName)
		})
		gomega.Expect(err).Should(gomega.BeNil())
	})

	ginkgo.It("runs a mint, transfer and burn round trip", func() {
		commands.RegisterDomain(cli, domainName)
		commands.RegisterAccount(cli, "ed0120AAAA", domainName)
		commands.RegisterAccount(cli, "ed0120BBBB", domainName)
		commands.RegisterAssetDefinition(cli, "rose", domainName, 2)

		definition := models.AssetDefinition{Name: "rose", Domain: domainName}
		alice := models.Account{Signatory: "ed0120AAAA", Domain: domainName}
		bob := models.Account{Signatory: "ed0120BBBB", Domain: domainName}

		commands.MintAsset(cli, definition, alice, "100")
		gomega.Expect(cli.TransactionHash).ShouldNot(gomega.BeEmpty())

		commands.TransferAsset(cli, definition, alice, bob, "40")
		commands.BurnAsset(cli, bob, definition, "10")
	})

	ginkgo.It("registers an NFT with piped content", func() {
		commands.RegisterDomain(cli, domainName)
		out := commands.RegisterNFT(cli, "portrait", domainName, `{"author":"alice"}`)
		gomega.Expect(out).ShouldNot(gomega.BeEmpty())
	})
})
