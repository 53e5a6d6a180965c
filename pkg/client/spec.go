// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package client

import "strings"

// CommandSpec is an immutable description of a single subprocess
// invocation. Builder state lives in Client; by the time an execution
// starts it has been frozen into one of these.
type CommandSpec struct {
	binary string
	args   []string
}

// NewCommandSpec freezes a binary path and its arguments.
func NewCommandSpec(binary string, args ...string) CommandSpec {
	frozen := make([]string, len(args))
	copy(frozen, args)
	return CommandSpec{binary: binary, args: frozen}
}

// SpecFromTokens freezes a full token sequence where the first token is
// the binary path.
func SpecFromTokens(tokens []string) CommandSpec {
	if len(tokens) == 0 {
		return CommandSpec{}
	}
	return NewCommandSpec(tokens[0], tokens[1:]...)
}

func (s CommandSpec) Binary() string {
	return s.binary
}

// Args returns a copy of the argument list.
func (s CommandSpec) Args() []string {
	args := make([]string, len(s.args))
	copy(args, s.args)
	return args
}

func (s CommandSpec) String() string {
	return strings.Join(append([]string{s.binary}, s.args...), " ")
}
