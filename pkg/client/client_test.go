// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger-iroha/harness/pkg/config"
	"github.com/hyperledger-iroha/harness/pkg/models"
)

// echoClient builds a client whose "binary" is /bin/echo, so captured
// stdout is exactly the argument list the builder produced.
func echoClient() *Client {
	cfg := config.New()
	cfg.SetBinaryPath("/bin/echo")
	cfg.SetClientConfigPath("client.toml")
	return New(cfg, nil, nil)
}

func TestBufferStartsWithBaseForm(t *testing.T) {
	require := require.New(t)

	c := echoClient()
	require.Equal([]string{"/bin/echo", "--config=client.toml"}, c.Tokens())
}

func TestResetRestoresBaseForm(t *testing.T) {
	require := require.New(t)

	c := echoClient()
	c.Register().Mint().ListAll().ListFilter("CanBurnAsset")
	require.Len(c.Tokens(), 9)

	c.Reset()
	require.Equal([]string{"/bin/echo", "--config=client.toml"}, c.Tokens())
	require.Empty(c.Stdout)
	require.Empty(c.Stderr)
}

func TestCloseResetsForReuse(t *testing.T) {
	require := require.New(t)

	c := echoClient()
	c.Register()
	require.NoError(c.Close())
	require.Equal([]string{"/bin/echo", "--config=client.toml"}, c.Tokens())
}

func TestVerbMethodsOnlyStage(t *testing.T) {
	require := require.New(t)

	c := echoClient()
	c.Register()
	require.Equal([]string{"/bin/echo", "--config=client.toml", "register"}, c.Tokens())
	require.Empty(c.Stdout, "staging must not execute")

	c.Reset()
	c.Mint()
	require.Equal([]string{"/bin/echo", "--config=client.toml", "mint"}, c.Tokens())

	c.Reset()
	c.ListAll()
	require.Equal([]string{"/bin/echo", "--config=client.toml", "list", "all"}, c.Tokens())

	c.Reset()
	c.ListFilter(`{"Asset":"CanBurn"}`)
	require.Equal([]string{"/bin/echo", "--config=client.toml", "list", "filter", `{"Asset":"CanBurn"}`}, c.Tokens())
}

func TestDomainExecutesImmediately(t *testing.T) {
	require := require.New(t)

	c, err := echoClient().Domain("wonderland")
	require.NoError(err)
	require.Equal("--config=client.toml domain --id=wonderland\n", c.Stdout)
	// buffer is back to base after the implicit execution
	require.Equal([]string{"/bin/echo", "--config=client.toml"}, c.Tokens())
}

func TestEntityNounInsertsBeforeStagedVerb(t *testing.T) {
	require := require.New(t)

	c, err := echoClient().Register().Domain("wonderland")
	require.NoError(err)
	require.Equal("--config=client.toml domain register --id=wonderland\n", c.Stdout)
}

func TestAccountInvocation(t *testing.T) {
	require := require.New(t)

	c, err := echoClient().Register().Account("ed0120ABCD", "wonderland")
	require.NoError(err)
	require.Equal("--config=client.toml account register --id=ed0120ABCD@wonderland\n", c.Stdout)
}

func TestAssetInvocation(t *testing.T) {
	require := require.New(t)

	definition := models.AssetDefinition{Name: "rose", Domain: "wonderland"}
	account := models.Account{Signatory: "ed0120ABCD", Domain: "wonderland"}

	c, err := echoClient().Mint().Asset(definition, account, "100")
	require.NoError(err)
	require.Equal(
		"--config=client.toml asset mint --id=rose#wonderland#ed0120ABCD@wonderland --quantity=100\n",
		c.Stdout,
	)
}

func TestTransferAppendsInsteadOfInserting(t *testing.T) {
	require := require.New(t)

	definition := models.AssetDefinition{Name: "rose", Domain: "wonderland"}
	alice := models.Account{Signatory: "ed0120AAAA", Domain: "wonderland"}
	bob := models.Account{Signatory: "ed0120BBBB", Domain: "garden"}

	c, err := echoClient().Transfer(definition, alice, bob, "5")
	require.NoError(err)
	require.Equal(
		"--config=client.toml asset transfer --to=ed0120BBBB@garden --id=rose#wonderland#ed0120AAAA@wonderland --quantity=5\n",
		c.Stdout,
	)
}

func TestBurnInvocation(t *testing.T) {
	require := require.New(t)

	definition := models.AssetDefinition{Name: "rose", Domain: "wonderland"}
	alice := models.Account{Signatory: "ed0120AAAA", Domain: "wonderland"}

	c, err := echoClient().Burn(alice, definition, "3")
	require.NoError(err)
	require.Equal(
		"--config=client.toml asset burn --id=rose#wonderland#ed0120AAAA@wonderland --quantity=3\n",
		c.Stdout,
	)
}

func TestAssetDefinitionWithScale(t *testing.T) {
	require := require.New(t)

	c, err := echoClient().Register().AssetDefinition("rose", "wonderland", 2)
	require.NoError(err)
	require.Equal(
		"--config=client.toml asset definition register --id=rose#wonderland --scale=2\n",
		c.Stdout,
	)
}

func TestAssetDefinitionWithoutScale(t *testing.T) {
	require := require.New(t)

	c, err := echoClient().Register().AssetDefinition("rose", "wonderland")
	require.NoError(err)
	require.Equal("--config=client.toml asset definition register --id=rose#wonderland\n", c.Stdout)
}

func TestNFTPipesContentThroughStdin(t *testing.T) {
	require := require.New(t)

	c, err := echoClient().Register().NFT("snowflake", "looking_glass", `{"color":"white"}`)
	require.NoError(err)
	// only the consumer's output is captured; the echoed content feeds
	// its stdin and /bin/echo ignores stdin entirely
	require.Equal("--config=client.toml nft register --id=snowflake$looking_glass\n", c.Stdout)
	require.NotContains(c.Stdout, `{"color":"white"}`)
}

func TestVersionInvocation(t *testing.T) {
	require := require.New(t)

	c, err := echoClient().Version()
	require.NoError(err)
	require.Equal("--config=client.toml version\n", c.Stdout)
}

func TestExecuteArgsBypassesStagedBuffer(t *testing.T) {
	require := require.New(t)

	c := echoClient()
	c.Register() // staged but bypassed
	c, err := c.ExecuteArgs("domain", "list", "all")
	require.NoError(err)
	require.Equal("--config=client.toml domain list all\n", c.Stdout)
	require.Equal([]string{"/bin/echo", "--config=client.toml"}, c.Tokens())
}

func TestExecutionOverwritesPreviousCapture(t *testing.T) {
	require := require.New(t)

	c, err := echoClient().Domain("wonderland")
	require.NoError(err)
	first := c.Stdout

	c, err = c.Domain("looking_glass")
	require.NoError(err)
	require.NotEqual(first, c.Stdout)
	require.Contains(c.Stdout, "looking_glass")
}

func TestSubmitISITemplateGrantPermission(t *testing.T) {
	require := require.New(t)

	stub := writeStubBinary(t)

	cfg := config.New()
	cfg.SetBinaryPath(stub)
	cfg.SetClientConfigPath("client.toml")
	cfg.SetTemplatesDir("testdata")
	cfg.SetISIDir(t.TempDir())

	c := New(cfg, nil, nil)
	c, err := c.GrantPermission(models.Account{Signatory: "ed0120ABCD", Domain: "wonderland"}, "CanSetParameters")
	require.NoError(err)

	// the stub echoes its args, then its stdin
	require.Contains(c.Stdout, "args: --config=client.toml transaction stdin")
	require.Contains(c.Stdout, `"name": "CanSetParameters"`)
	require.Contains(c.Stdout, `"destination": "ed0120ABCD@wonderland"`)
}

func TestSubmitISITemplateMissingTemplate(t *testing.T) {
	require := require.New(t)

	cfg := config.New()
	cfg.SetBinaryPath("/bin/echo")
	cfg.SetClientConfigPath("client.toml")
	cfg.SetTemplatesDir("testdata")
	cfg.SetISIDir(t.TempDir())

	c := New(cfg, nil, nil)
	_, err := c.SubmitISITemplate("no_such_template.json", nil)
	require.Error(err)
}

// writeStubBinary drops a shell script that prints its argument list and
// then relays stdin, standing in for the external client binary.
func writeStubBinary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iroha_stub")
	script := "#!/bin/sh\necho \"args: $*\"\ncat\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}
