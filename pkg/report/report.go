// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package report receives named text artifacts produced by harness
// executions. The harness never depends on a concrete reporting backend;
// it only needs something that accepts named attachments.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperledger-iroha/harness/pkg/constants"
)

// Reporter accepts named text attachments after every execution.
type Reporter interface {
	Attach(name string, content string)
}

// Noop discards all attachments.
type Noop struct{}

func (Noop) Attach(string, string) {}

// DirReporter writes each attachment as a numbered text file under a run
// directory, so a test run leaves a browsable trail of every stdout/stderr
// pair in invocation order.
type DirReporter struct {
	dir string
	seq int
}

func NewDirReporter(dir string) (*DirReporter, error) {
	if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed to create report dir %s: %w", dir, err)
	}
	return &DirReporter{dir: dir}, nil
}

func (r *DirReporter) Attach(name string, content string) {
	r.seq++
	fileName := fmt.Sprintf("%03d_%s.txt", r.seq, sanitize(name))
	// Attachment failures must never fail the run being reported on.
	_ = os.WriteFile(filepath.Join(r.dir, fileName), []byte(content), constants.WriteReadReadPerms)
}

// Dir returns the directory attachments are written to.
func (r *DirReporter) Dir() string {
	return r.dir
}

func sanitize(name string) string {
	replacer := strings.NewReplacer("/", "_", " ", "_", string(os.PathSeparator), "_")
	return replacer.Replace(name)
}
