// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package isi

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadParsesTemplate(t *testing.T) {
	require := require.New(t)

	doc, err := Load("testdata", "grant_permission.json")
	require.NoError(err)
	require.Len(doc, 1)

	instruction, ok := doc[0].(map[string]any)
	require.True(ok)
	require.Contains(instruction, "Grant")
}

func TestLoadMissingTemplate(t *testing.T) {
	_, err := Load("testdata", "no_such.json")
	require.Error(t, err)
}

func TestApplyReplacesExactlyTheAddressedFields(t *testing.T) {
	require := require.New(t)

	doc, err := Load("testdata", "grant_permission.json")
	require.NoError(err)

	err = Apply(doc, []Change{
		{Path: []string{"Grant", "Permission", "object", "name"}, Value: "CanBurnAsset"},
		{Path: []string{"Grant", "Permission", "destination"}, Value: "ed0120FFFF@garden"},
	})
	require.NoError(err)

	permission := doc[0].(map[string]any)["Grant"].(map[string]any)["Permission"].(map[string]any)
	object := permission["object"].(map[string]any)
	require.Equal("CanBurnAsset", object["name"])
	require.Equal("ed0120FFFF@garden", permission["destination"])
	// untouched sibling fields survive
	require.Contains(object, "payload")
	require.Nil(object["payload"])
}

func TestApplyBadPathIsAnError(t *testing.T) {
	require := require.New(t)

	doc, err := Load("testdata", "grant_permission.json")
	require.NoError(err)

	err = Apply(doc, []Change{
		{Path: []string{"Grant", "NoSuchKey", "name"}, Value: "x"},
	})
	require.Error(err)

	err = Apply(doc, []Change{{Path: nil, Value: "x"}})
	require.Error(err)
}

func TestWriteTempUsesTemplateName(t *testing.T) {
	require := require.New(t)

	doc := Document{map[string]any{"Register": map[string]any{"Domain": "wonderland"}}}
	dir := t.TempDir()

	path, err := WriteTemp(dir, "register_domain.json", doc)
	require.NoError(err)
	require.Equal(filepath.Join(dir, "isi_register_domain.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(err)

	var reread Document
	require.NoError(json.Unmarshal(raw, &reread))
	require.Equal(doc, reread)
}

func TestRenderEndToEnd(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path, err := Render("testdata", "register_trigger.json", dir, []Change{
		{Path: []string{"Register", "Trigger", "action", "authority"}, Value: "ed0120ABCD@wonderland"},
	})
	require.NoError(err)

	raw, err := os.ReadFile(path)
	require.NoError(err)

	var doc Document
	require.NoError(json.Unmarshal(raw, &doc))
	action := doc[0].(map[string]any)["Register"].(map[string]any)["Trigger"].(map[string]any)["action"].(map[string]any)
	require.Equal("ed0120ABCD@wonderland", action["authority"])
	// the rest of the template is untouched
	require.Equal("Indefinitely", action["repeats"])
}

func TestRenderWithoutChangesCopiesTemplate(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path, err := Render("testdata", "wrong_instruction.json", dir, nil)
	require.NoError(err)

	original, err := Load("testdata", "wrong_instruction.json")
	require.NoError(err)

	raw, err := os.ReadFile(path)
	require.NoError(err)
	var written Document
	require.NoError(json.Unmarshal(raw, &written))
	require.Equal(original, written)
}

func TestParseChange(t *testing.T) {
	require := require.New(t)

	change, err := ParseChange("Grant.Permission.destination=alice@wonderland")
	require.NoError(err)
	require.Equal([]string{"Grant", "Permission", "destination"}, change.Path)
	require.Equal("alice@wonderland", change.Value)

	_, err = ParseChange("missing-value")
	require.Error(err)

	_, err = ParseChange("=value")
	require.Error(err)
}
