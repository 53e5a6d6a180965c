// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package client

import "regexp"

// Transaction hashes are SHA-256 digests printed as 64 hex digits.
var transactionHashPattern = regexp.MustCompile(`\b[0-9A-Fa-f]{64}\b`)

// ExtractTransactionHash scans stdout for the first transaction hash.
// Best effort: returns the empty string when no hash is printed.
func ExtractTransactionHash(stdout string) string {
	return transactionHashPattern.FindString(stdout)
}
