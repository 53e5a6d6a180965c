// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package isi

import (
	"github.com/hyperledger-iroha/harness/pkg/client"
	"github.com/hyperledger-iroha/harness/pkg/models"
	"github.com/hyperledger-iroha/harness/tests/e2e/commands"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Instructions]", func() {
	var cli *client.Client

	alice := models.Account{
		Signatory: "ed0120CE7FA46C9DCE7EA4B125E2E36BDB63EA33073E7590AC92816AE1E861B7048B03",
		Domain:    "wonderland",
	}

	ginkgo.BeforeEach(func() {
		cli = commands.NewClient()
	})

	ginkgo.AfterEach(func() {
		gomega.Expect(cli.Close()).Should(gomega.BeNil())
	})

	ginkgo.It("grants and revokes a permission", func() {
		out := commands.GrantPermission(cli, alice, "CanSetParameters")
		gomega.Expect(out).ShouldNot(gomega.BeEmpty())
		gomega.Expect(cli.TransactionHash).ShouldNot(gomega.BeEmpty())

		commands.RevokePermission(cli, alice, "CanSetParameters")
		gomega.Expect(cli.TransactionHash).ShouldNot(gomega.BeEmpty())
	})

	ginkgo.It("registers a trigger under an authority", func() {
		out := commands.RegisterTrigger(cli, alice)
		gomega.Expect(out).ShouldNot(gomega.BeEmpty())
	})

	ginkgo.It("unregisters an asset", func() {
		asset := models.Asset{
			Definition: models.AssetDefinition{Name: "rose", Domain: "wonderland"},
			Account:    alice,
		}
		commands.UnregisterAsset(cli, asset)
		gomega.Expect(cli.TransactionHash).ShouldNot(gomega.BeEmpty())
	})

	ginkgo.It("survives a malformed instruction", func() {
		stdout, stderr := commands.SendWrongInstruction(cli)
		// the node rejects the document; either stream may carry the refusal
		gomega.Expect(stdout + stderr).ShouldNot(gomega.BeEmpty())
	})
})
