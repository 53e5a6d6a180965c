// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package isi prepares Iroha-specific instruction documents for submission.
// An instruction template is a JSON array of instruction objects kept under
// a fixed template directory; before submission a set of path-keyed field
// overrides is applied to the first instruction and the result is written
// to a temp file which is piped into the client binary.
package isi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperledger-iroha/harness/pkg/constants"
)

// Change replaces the field at the given nested key path with Value.
type Change struct {
	Path  []string
	Value any
}

// Document is a parsed instruction template: a JSON array of instructions.
type Document []any

// Load reads and parses a template file from dir.
func Load(dir string, name string) (Document, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read instruction template %s: %w", name, err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse instruction template %s: %w", name, err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("instruction template %s holds no instructions", name)
	}
	return doc, nil
}

// Apply walks each change's key path inside the first instruction of doc
// and replaces the addressed field. All other fields are left untouched.
func Apply(doc Document, changes []Change) error {
	for _, change := range changes {
		if len(change.Path) == 0 {
			return fmt.Errorf("empty override path")
		}
		element, ok := doc[0].(map[string]any)
		if !ok {
			return fmt.Errorf("instruction is not a JSON object")
		}
		for _, key := range change.Path[:len(change.Path)-1] {
			next, ok := element[key].(map[string]any)
			if !ok {
				return fmt.Errorf("override path %s: key %q is not an object", strings.Join(change.Path, "."), key)
			}
			element = next
		}
		element[change.Path[len(change.Path)-1]] = change.Value
	}
	return nil
}

// WriteTemp writes doc to dir under the template's temp name and returns
// the written path.
func WriteTemp(dir string, templateName string, doc Document) (string, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode instruction document: %w", err)
	}
	if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
		return "", fmt.Errorf("failed to create instruction dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, constants.ISITempFilePrefix+templateName)
	if err := os.WriteFile(path, raw, constants.WriteReadReadPerms); err != nil {
		return "", fmt.Errorf("failed to write instruction file %s: %w", path, err)
	}
	return path, nil
}

// Render loads templateName from templatesDir, applies changes, and writes
// the modified document under outDir. Returns the temp file path.
func Render(templatesDir string, templateName string, outDir string, changes []Change) (string, error) {
	doc, err := Load(templatesDir, templateName)
	if err != nil {
		return "", err
	}
	if err := Apply(doc, changes); err != nil {
		return "", fmt.Errorf("template %s: %w", templateName, err)
	}
	return WriteTemp(outDir, templateName, doc)
}

// ParseChange turns a "a.b.c=value" override into a Change. Used by the
// harness CLI; library callers build Change values directly.
func ParseChange(arg string) (Change, error) {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return Change{}, fmt.Errorf("invalid override %q, expected path.to.key=value", arg)
	}
	return Change{Path: strings.Split(parts[0], "."), Value: parts[1]}, nil
}
