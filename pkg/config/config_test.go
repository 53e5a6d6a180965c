// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger-iroha/harness/pkg/constants"
)

func TestEnvContainsOverrides(t *testing.T) {
	require := require.New(t)

	c := New()
	c.SetEnv("IROHA_TEST_KEY", "42")

	env := c.Env()
	require.Contains(env, "IROHA_TEST_KEY=42")
}

func TestRandomizeToriiURLPicksFromPool(t *testing.T) {
	require := require.New(t)

	c := New()
	c.SetToriiURLs([]string{"http://127.0.0.1:8080"})

	url := c.RandomizeToriiURL()
	require.Equal("http://127.0.0.1:8080", url)
	require.Contains(c.Env(), constants.ToriiURLEnvVar+"=http://127.0.0.1:8080")
}

func TestRandomizeToriiURLStaysInPool(t *testing.T) {
	require := require.New(t)

	pool := []string{
		"http://127.0.0.1:8080",
		"http://127.0.0.1:8081",
		"http://127.0.0.1:8082",
	}
	c := New()
	c.SetToriiURLs(pool)

	for i := 0; i < 20; i++ {
		require.Contains(pool, c.RandomizeToriiURL())
	}
}

func TestRandomizeToriiURLEmptyPoolKeepsCurrent(t *testing.T) {
	require := require.New(t)

	c := New()
	c.SetEnv(constants.ToriiURLEnvVar, "http://127.0.0.1:9999")
	require.Equal("http://127.0.0.1:9999", c.RandomizeToriiURL())
}
