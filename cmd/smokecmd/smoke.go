// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package smokecmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperledger-iroha/harness/pkg/application"
	"github.com/hyperledger-iroha/harness/pkg/client"
	"github.com/hyperledger-iroha/harness/pkg/models"
	"github.com/hyperledger-iroha/harness/pkg/ux"
)

var (
	domainName   string
	signatory    string
	recipientKey string
	waitSecs     uint32
)

// NewCmd returns the smoke command: a register/mint/list round trip that
// proves the configured binary and node are reachable end to end.
func NewCmd(app *application.Harness) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run a domain/account/asset round trip against the configured node",
		RunE: func(*cobra.Command, []string) error {
			return runSmoke(app)
		},
	}
	cmd.Flags().StringVar(&domainName, "domain", "smoke_wonderland", "domain registered by the round trip")
	cmd.Flags().StringVar(&signatory, "signatory", "ed0120CE7FA46C9DCE7EA4B125E2E36BDB63EA33073E7590AC92816AE1E861B7048B03", "signatory public key for the smoke account")
	cmd.Flags().StringVar(&recipientKey, "recipient", "ed0120E9F632D3034BAB6BB26D92AC8FD93EF878D9C5E69E01B61B4C47101F2E1508AC", "signatory public key for the transfer recipient")
	cmd.Flags().Uint32Var(&waitSecs, "wait", 20, "seconds to wait for the domain to appear in listings")
	return cmd
}

type step struct {
	name string
	run  func(cli *client.Client) (*client.Client, error)
}

func runSmoke(app *application.Harness) error {
	account := models.Account{Signatory: signatory, Domain: domainName}
	recipient := models.Account{Signatory: recipientKey, Domain: domainName}
	definition := models.AssetDefinition{Name: "rose", Domain: domainName}

	steps := []step{
		{"register domain", func(cli *client.Client) (*client.Client, error) {
			return cli.Register().Domain(domainName)
		}},
		{"register account", func(cli *client.Client) (*client.Client, error) {
			return cli.Register().Account(account.Signatory, account.Domain)
		}},
		{"register recipient account", func(cli *client.Client) (*client.Client, error) {
			return cli.Register().Account(recipient.Signatory, recipient.Domain)
		}},
		{"register asset definition", func(cli *client.Client) (*client.Client, error) {
			return cli.Register().AssetDefinition(definition.Name, definition.Domain, 2)
		}},
		{"mint asset", func(cli *client.Client) (*client.Client, error) {
			return cli.Mint().Asset(definition, account, "100")
		}},
		{"transfer asset", func(cli *client.Client) (*client.Client, error) {
			return cli.Transfer(definition, account, recipient, "40")
		}},
	}

	cli := app.NewClient()
	defer func() { _ = cli.Close() }()

	table := ux.DefaultTable()
	_ = table.Append([]string{"STEP", "STDERR", "TX HASH"})

	for _, s := range steps {
		cli.Reset()
		result, err := s.run(cli)
		if err != nil {
			ux.Logger.RedXToUser("%s: %s", s.name, err)
			return fmt.Errorf("smoke step %q: %w", s.name, err)
		}
		_ = table.Append([]string{s.name, firstLine(result.Stderr), result.TransactionHash})
		app.Log.Infof("smoke step %q done, hash=%q", s.name, result.TransactionHash)
	}

	ux.Logger.PrintToUser("waiting for domain %q to appear in listings", domainName)
	err := cli.WaitFor(func() bool {
		listed, listErr := cli.ListAll().Execute()
		return listErr == nil && strings.Contains(listed.Stdout, domainName)
	}, time.Duration(waitSecs)*time.Second)
	if err != nil {
		ux.Logger.RedXToUser("domain %q never showed up: %s", domainName, err)
		return err
	}

	_ = table.Render()
	ux.Logger.GreenCheckmarkToUser("smoke round trip complete")
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
