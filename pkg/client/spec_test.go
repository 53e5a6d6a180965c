// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandSpecFreezesItsArguments(t *testing.T) {
	require := require.New(t)

	args := []string{"domain", "--id=wonderland"}
	spec := NewCommandSpec("/bin/iroha", args...)

	// mutating the source slice must not reach the frozen spec
	args[0] = "mutated"
	require.Equal([]string{"domain", "--id=wonderland"}, spec.Args())

	// nor can a caller mutate the frozen command through the accessor
	got := spec.Args()
	got[0] = "mutated"
	require.Equal([]string{"domain", "--id=wonderland"}, spec.Args())
}

func TestSpecFromTokens(t *testing.T) {
	require := require.New(t)

	spec := SpecFromTokens([]string{"/bin/iroha", "--config=client.toml", "list", "all"})
	require.Equal("/bin/iroha", spec.Binary())
	require.Equal([]string{"--config=client.toml", "list", "all"}, spec.Args())
	require.Equal("/bin/iroha --config=client.toml list all", spec.String())
}

func TestSpecFromEmptyTokens(t *testing.T) {
	spec := SpecFromTokens(nil)
	require.Empty(t, spec.Binary())
	require.Empty(t, spec.Args())
}
