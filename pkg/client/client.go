// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client wraps the external Iroha CLI binary for test automation.
// A Client keeps a mutable token buffer seeded with the binary path and
// config flag; fluent methods stage sub-commands and flags onto it, and
// executions freeze the buffer into a CommandSpec, spawn the binary,
// capture its output, and restore the buffer to its base form.
//
// The builder surface deliberately mirrors the historical wrapper: entity
// methods (Domain, Account, Asset, Transfer, Burn, AssetDefinition, NFT,
// Version) execute immediately as their final side effect, while verb
// methods (Register, Mint, ListAll, ListFilter) only stage tokens and need
// an explicit Execute. Callers depend on both behaviors, so neither is
// unified.
package client

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hyperledger-iroha/harness/pkg/config"
	"github.com/hyperledger-iroha/harness/pkg/constants"
	"github.com/hyperledger-iroha/harness/pkg/isi"
	"github.com/hyperledger-iroha/harness/pkg/models"
	"github.com/hyperledger-iroha/harness/pkg/report"
)

// Client drives the Iroha CLI binary. Not safe for concurrent use; each
// test owns its own Client.
type Client struct {
	cfg      *config.Config
	executor *Executor

	tokens []string

	// Captured output of the most recent execution. Overwritten on every
	// execution, cleared on Reset.
	Stdout          string
	Stderr          string
	TransactionHash string
}

// New builds a Client around a borrowed configuration. The reporter and
// logger may be nil.
func New(cfg *config.Config, reporter report.Reporter, log *zap.SugaredLogger) *Client {
	c := &Client{
		cfg:      cfg,
		executor: NewExecutor(cfg, reporter, log),
	}
	c.tokens = c.base()
	return c
}

func (c *Client) base() []string {
	return []string{
		c.cfg.BinaryPath(),
		constants.ConfigFlagPrefix + c.cfg.ClientConfigPath(),
	}
}

// Tokens returns a copy of the staged command buffer.
func (c *Client) Tokens() []string {
	tokens := make([]string, len(c.tokens))
	copy(tokens, c.tokens)
	return tokens
}

// Reset restores the command buffer to its base form and clears captured
// output.
func (c *Client) Reset() {
	c.tokens = c.base()
	c.Stdout = ""
	c.Stderr = ""
}

// Close resets the client so it can be reused. Mirrors context-manager
// exit in the historical wrapper.
func (c *Client) Close() error {
	c.Reset()
	return nil
}

// WaitFor polls cond until it holds, bounded by the optional timeout.
func (c *Client) WaitFor(cond func() bool, timeout ...time.Duration) error {
	return WaitFor(cond, timeout...)
}

// insertEntity places an entity noun right after the base pair, before any
// staged verb, producing e.g. "domain register --id=...".
func (c *Client) insertEntity(entities ...string) {
	rest := make([]string, len(c.tokens)-2)
	copy(rest, c.tokens[2:])
	c.tokens = append(c.tokens[:2:2], entities...)
	c.tokens = append(c.tokens, rest...)
}

func (c *Client) append(tokens ...string) {
	c.tokens = append(c.tokens, tokens...)
}

// Register stages the 'register' verb.
func (c *Client) Register() *Client {
	c.append(constants.RegisterCmd)
	return c
}

// Mint stages the 'mint' verb.
func (c *Client) Mint() *Client {
	c.append(constants.MintCmd)
	return c
}

// ListAll stages 'list all'.
func (c *Client) ListAll() *Client {
	c.append(constants.ListCmd, constants.ListAllCmd)
	return c
}

// ListFilter stages 'list filter' with the given predicate, serialized
// verbatim.
func (c *Client) ListFilter(criteria string) *Client {
	c.append(constants.ListCmd, constants.ListFilterCmd, criteria)
	return c
}

// Domain targets a domain by ID and executes immediately.
func (c *Client) Domain(domain string) (*Client, error) {
	c.insertEntity(constants.DomainEntity)
	c.append(constants.IDFlagPrefix + domain)
	return c.Execute()
}

// Account targets an account by signatory and domain and executes
// immediately.
func (c *Client) Account(signatory string, domain string) (*Client, error) {
	c.insertEntity(constants.AccountEntity)
	c.append(constants.IDFlagPrefix + models.Account{Signatory: signatory, Domain: domain}.String())
	return c.Execute()
}

// Asset targets a concrete asset holding with a quantity and executes
// immediately.
func (c *Client) Asset(definition models.AssetDefinition, account models.Account, value string) (*Client, error) {
	c.insertEntity(constants.AssetEntity)
	c.append(constants.IDFlagPrefix + models.Asset{Definition: definition, Account: account}.String())
	c.append(constants.QuantityFlagPrefix + value)
	return c.Execute()
}

// Transfer moves quantity of an asset between accounts and executes
// immediately. Unlike the other entity methods this one appends its
// sub-command instead of inserting it; preserved as-is since callers
// assert on the resulting invocation.
func (c *Client) Transfer(definition models.AssetDefinition, from models.Account, to models.Account, quantity string) (*Client, error) {
	c.append(constants.AssetEntity, constants.TransferCmd)
	c.append(constants.ToFlagPrefix + to.String())
	c.append(constants.IDFlagPrefix + models.Asset{Definition: definition, Account: from}.String())
	c.append(constants.QuantityFlagPrefix + quantity)
	return c.Execute()
}

// Burn destroys quantity of an account's asset and executes immediately.
func (c *Client) Burn(account models.Account, definition models.AssetDefinition, quantity string) (*Client, error) {
	c.append(constants.AssetEntity, constants.BurnCmd)
	c.append(constants.IDFlagPrefix + models.Asset{Definition: definition, Account: account}.String())
	c.append(constants.QuantityFlagPrefix + quantity)
	return c.Execute()
}

// AssetDefinition registers an asset kind under a domain, with an optional
// numeric scale, and executes immediately.
func (c *Client) AssetDefinition(asset string, domain string, scale ...uint32) (*Client, error) {
	c.insertEntity(constants.AssetEntity, constants.AssetDefinitionEntity)
	c.append(constants.IDFlagPrefix + models.AssetDefinition{Name: asset, Domain: domain}.String())
	if len(scale) > 0 {
		c.append(constants.ScaleFlagPrefix + strconv.FormatUint(uint64(scale[0]), 10))
	}
	return c.Execute()
}

// NFT targets a non-fungible token, piping its JSON content through stdin,
// and executes immediately.
func (c *Client) NFT(name string, domain string, content string) (*Client, error) {
	c.insertEntity(constants.NFTEntity)
	c.append(constants.IDFlagPrefix + models.NFT{Name: name, Domain: domain}.String())

	// Content arrives on stdin: stage an echo producer in front of the
	// buffer, separated by a literal pipe token.
	c.tokens = append([]string{"echo", content, constants.PipeToken}, c.tokens...)

	return c.Execute()
}

// Version runs the binary's version sub-command.
func (c *Client) Version() (*Client, error) {
	c.append(constants.VersionCmd)
	return c.Execute()
}

// Execute freezes the staged buffer and runs it, then restores the buffer
// to its base form. A literal "|" token splits the buffer into a producer
// and a consumer executed as a two-process pipe.
func (c *Client) Execute() (*Client, error) {
	return c.run(c.tokens)
}

// ExecuteArgs runs the base invocation extended with the given tokens,
// bypassing the staged buffer. The buffer is still reset afterwards.
func (c *Client) ExecuteArgs(tokens ...string) (*Client, error) {
	return c.run(append(c.base(), tokens...))
}

func (c *Client) run(tokens []string) (*Client, error) {
	c.cfg.RandomizeToriiURL()

	var (
		res Result
		err error
	)
	if idx := indexOf(tokens, constants.PipeToken); idx >= 0 {
		res, err = c.executor.RunPipe(SpecFromTokens(tokens[:idx]), SpecFromTokens(tokens[idx+1:]))
	} else {
		res, err = c.executor.Run(SpecFromTokens(tokens))
	}

	c.Stdout = res.Stdout
	c.Stderr = res.Stderr
	c.TransactionHash = res.TransactionHash
	c.tokens = c.base()

	if err != nil {
		return c, err
	}
	return c, nil
}

// RegisterTrigger submits the register-trigger instruction template with
// the trigger authority replaced.
func (c *Client) RegisterTrigger(authority models.Account) (*Client, error) {
	return c.SubmitISITemplate(constants.RegisterTriggerTemplate, []isi.Change{
		{Path: []string{"Register", "Trigger", "action", "authority"}, Value: authority.String()},
	})
}

// UnregisterAsset submits the unregister-asset instruction template with
// the target asset ID replaced.
func (c *Client) UnregisterAsset(asset models.Asset) (*Client, error) {
	return c.SubmitISITemplate(constants.UnregisterAssetTemplate, []isi.Change{
		{Path: []string{"Unregister", "Asset", "object"}, Value: asset.String()},
	})
}

// GrantPermission submits the grant-permission instruction template,
// granting the named permission to the destination account.
func (c *Client) GrantPermission(destination models.Account, permission string) (*Client, error) {
	return c.SubmitISITemplate(constants.GrantPermissionTemplate, []isi.Change{
		{Path: []string{"Grant", "Permission", "object", "name"}, Value: permission},
		{Path: []string{"Grant", "Permission", "destination"}, Value: destination.String()},
	})
}

// RevokePermission submits the revoke-permission instruction template,
// revoking the named permission from the destination account.
func (c *Client) RevokePermission(destination models.Account, permission string) (*Client, error) {
	return c.SubmitISITemplate(constants.RevokePermissionTemplate, []isi.Change{
		{Path: []string{"Revoke", "Permission", "object", "name"}, Value: permission},
		{Path: []string{"Revoke", "Permission", "destination"}, Value: destination.String()},
	})
}

// SendWrongInstruction submits a deliberately malformed instruction so
// tests can assert on the node's rejection output.
func (c *Client) SendWrongInstruction() (*Client, error) {
	return c.SubmitISITemplate(constants.WrongInstructionTemplate, nil)
}

// SubmitISITemplate renders an instruction template with the given
// overrides and pipes the resulting file into the binary's
// "transaction stdin" sub-command.
func (c *Client) SubmitISITemplate(templateName string, changes []isi.Change) (*Client, error) {
	path, err := isi.Render(c.cfg.TemplatesDir(), templateName, c.cfg.ISIDir(), changes)
	if err != nil {
		return c, fmt.Errorf("failed to render %s: %w", templateName, err)
	}

	first := NewCommandSpec("cat", path)
	second := SpecFromTokens(append(c.base(), constants.TransactionCmd, constants.StdinCmd))

	c.cfg.RandomizeToriiURL()
	res, err := c.executor.RunPipe(first, second)

	c.Stdout = res.Stdout
	c.Stderr = res.Stderr
	c.TransactionHash = res.TransactionHash
	c.tokens = c.base()

	if err != nil {
		return c, err
	}
	return c, nil
}

func indexOf(tokens []string, token string) int {
	for i, t := range tokens {
		if t == token {
			return i
		}
	}
	return -1
}
