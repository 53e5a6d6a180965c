// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package commands

import (
	"github.com/hyperledger-iroha/harness/pkg/client"
	"github.com/hyperledger-iroha/harness/pkg/models"
	"github.com/onsi/gomega"
)

// RegisterDomain registers a domain and returns the captured stdout.
func RegisterDomain(cli *client.Client, domain string) string {
	_, err := cli.Register().Domain(domain)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// ListDomains queries all domains, bypassing the staged buffer.
func ListDomains(cli *client.Client) string {
	_, err := cli.ExecuteArgs("domain", "list", "all")
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// RegisterAccount registers an account under a domain.
func RegisterAccount(cli *client.Client, signatory string, domain string) string {
	_, err := cli.Register().Account(signatory, domain)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// RegisterAssetDefinition registers an asset kind under a domain.
func RegisterAssetDefinition(cli *client.Client, asset string, domain string, scale uint32) string {
	_, err := cli.Register().AssetDefinition(asset, domain, scale)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// MintAsset mints value units of an asset onto an account.
func MintAsset(cli *client.Client, definition models.AssetDefinition, account models.Account, value string) string {
	_, err := cli.Mint().Asset(definition, account, value)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// TransferAsset moves quantity of an asset between two accounts.
func TransferAsset(cli *client.Client, definition models.AssetDefinition, from models.Account, to models.Account, quantity string) string {
	_, err := cli.Transfer(definition, from, to, quantity)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// BurnAsset destroys quantity of an account's asset.
func BurnAsset(cli *client.Client, account models.Account, definition models.AssetDefinition, quantity string) string {
	_, err := cli.Burn(account, definition, quantity)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// RegisterNFT registers an NFT whose JSON content is piped via stdin.
func RegisterNFT(cli *client.Client, name string, domain string, content string) string {
	_, err := cli.Register().NFT(name, domain, content)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}
