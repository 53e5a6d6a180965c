// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package commands

import (
	"github.com/hyperledger-iroha/harness/pkg/client"
	"github.com/hyperledger-iroha/harness/pkg/models"
	"github.com/onsi/gomega"
)

// GrantPermission grants the named permission to an account via a piped
// instruction document.
func GrantPermission(cli *client.Client, destination models.Account, permission string) string {
	_, err := cli.GrantPermission(destination, permission)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// RevokePermission revokes the named permission from an account.
func RevokePermission(cli *client.Client, destination models.Account, permission string) string {
	_, err := cli.RevokePermission(destination, permission)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// RegisterTrigger submits the trigger registration document with the
// given authority.
func RegisterTrigger(cli *client.Client, authority models.Account) string {
	_, err := cli.RegisterTrigger(authority)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// UnregisterAsset submits the asset unregistration document.
func UnregisterAsset(cli *client.Client, asset models.Asset) string {
	_, err := cli.UnregisterAsset(asset)
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout
}

// SendWrongInstruction submits a malformed instruction document. Spawning
// must still succeed; rejection shows up in the captured output.
func SendWrongInstruction(cli *client.Client) (string, string) {
	_, err := cli.SendWrongInstruction()
	gomega.Expect(err).Should(gomega.BeNil())
	return cli.Stdout, cli.Stderr
}
