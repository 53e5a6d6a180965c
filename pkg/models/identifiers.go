// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import "fmt"

// Account identifies a ledger account by its signatory public key and domain.
type Account struct {
	Signatory string
	Domain    string
}

func (a Account) String() string {
	return a.Signatory + "@" + a.Domain
}

// AssetDefinition identifies an asset kind registered under a domain.
type AssetDefinition struct {
	Name   string
	Domain string
}

func (d AssetDefinition) String() string {
	return d.Name + "#" + d.Domain
}

// Asset identifies a concrete asset holding: a definition owned by an account.
type Asset struct {
	Definition AssetDefinition
	Account    Account
}

// String renders the full asset ID, e.g. "rose#wonderland#ed0120...@wonderland".
func (a Asset) String() string {
	return fmt.Sprintf("%s#%s#%s", a.Definition.Name, a.Definition.Domain, a.Account)
}

// NFT identifies a non-fungible token under a domain.
type NFT struct {
	Name   string
	Domain string
}

func (n NFT) String() string {
	return n.Name + "$" + n.Domain
}
