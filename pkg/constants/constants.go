// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".iroha-harness"
	LogDir      = "logs"
	ReportDir   = "reports"

	// ConfigFlagPrefix is glued to the client config path to form the
	// second base token of every invocation.
	ConfigFlagPrefix = "--config="

	IDFlagPrefix       = "--id="
	QuantityFlagPrefix = "--quantity="
	ScaleFlagPrefix    = "--scale="
	ToFlagPrefix       = "--to="

	TransactionCmd = "transaction"
	StdinCmd       = "stdin"

	RegisterCmd   = "register"
	MintCmd       = "mint"
	ListCmd       = "list"
	ListAllCmd    = "all"
	ListFilterCmd = "filter"
	VersionCmd    = "version"

	DomainEntity          = "domain"
	AccountEntity         = "account"
	AssetEntity           = "asset"
	AssetDefinitionEntity = "definition"
	NFTEntity             = "nft"
	TransferCmd           = "transfer"
	BurnCmd               = "burn"

	// PipeToken separates a producer command from a consumer command
	// inside a staged token buffer.
	PipeToken = "|"

	ISITemplatesDirName = "assets/json_isi_examples"
	ISITempDirName      = "isi"
	ISITempFilePrefix   = "isi_"

	RegisterTriggerTemplate  = "register_trigger.json"
	UnregisterAssetTemplate  = "unregister_asset.json"
	GrantPermissionTemplate  = "grant_permission.json"
	RevokePermissionTemplate = "revoke_permission.json"
	WrongInstructionTemplate = "wrong_instruction.json"

	DefaultWaitTimeout  = 20 * time.Second
	DefaultPollInterval = 250 * time.Millisecond

	StdoutAttachment = "stdout"
	StderrAttachment = "stderr"

	ToriiURLEnvVar  = "TORII_URL"
	CLIBinaryEnvVar = "IROHA_CLI_BINARY"
	CLIConfigEnvVar = "IROHA_CLI_CONFIG"
	RunE2EEnvVar    = "RUN_E2E"
)
