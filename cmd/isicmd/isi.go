// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package isicmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperledger-iroha/harness/pkg/application"
	"github.com/hyperledger-iroha/harness/pkg/isi"
	"github.com/hyperledger-iroha/harness/pkg/ux"
)

var overrides []string

// NewCmd returns the isi command tree.
func NewCmd(app *application.Harness) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isi",
		Short: "Work with JSON-templated Iroha instructions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newSubmitCmd(app))
	return cmd
}

func newSubmitCmd(app *application.Harness) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [templateName]",
		Short: "Render an instruction template and pipe it into the client binary",
		Long: `Render an instruction template and pipe it into the client binary.

Reads <templateName> from the template directory, applies --set overrides
(path.to.key=value), writes the result to the instruction temp directory,
and executes:

  cat <tempfile> | <binary> --config=<path> transaction stdin`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return submitISI(app, args[0])
		},
	}
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "field override as path.to.key=value (repeatable)")
	return cmd
}

func submitISI(app *application.Harness, templateName string) error {
	changes := make([]isi.Change, 0, len(overrides))
	for _, o := range overrides {
		change, err := isi.ParseChange(o)
		if err != nil {
			return err
		}
		changes = append(changes, change)
	}

	cli := app.NewClient()
	cli, err := cli.SubmitISITemplate(templateName, changes)
	if err != nil {
		return fmt.Errorf("failed to submit %s: %w", templateName, err)
	}

	ux.Logger.PrintToUser("%s", cli.Stdout)
	if cli.Stderr != "" {
		ux.Logger.RedXToUser("%s", cli.Stderr)
	}
	if cli.TransactionHash != "" {
		ux.Logger.GreenCheckmarkToUser("transaction hash: %s", cli.TransactionHash)
	}
	return nil
}
