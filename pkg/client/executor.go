// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package client

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/hyperledger-iroha/harness/pkg/config"
	"github.com/hyperledger-iroha/harness/pkg/constants"
	"github.com/hyperledger-iroha/harness/pkg/report"
)

// Result carries everything captured from one execution. A non-zero exit
// status of the binary is data, not a failure of the harness: callers
// assert on Stdout/Stderr/ExitCode themselves.
type Result struct {
	Stdout          string
	Stderr          string
	TransactionHash string
	ExitCode        int
}

// Executor runs frozen command specs. It is stateless between calls;
// environment comes from the configuration collaborator and captured
// output is attached to the reporter after every run.
type Executor struct {
	cfg      *config.Config
	reporter report.Reporter
	log      *zap.SugaredLogger
}

func NewExecutor(cfg *config.Config, reporter report.Reporter, log *zap.SugaredLogger) *Executor {
	if reporter == nil {
		reporter = report.Noop{}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Executor{cfg: cfg, reporter: reporter, log: log}
}

// Run spawns a single process, blocks until it exits, and captures its
// output. The returned error covers spawn and plumbing failures only.
/* #nosec G204 */
func (e *Executor) Run(spec CommandSpec) (Result, error) {
	cmd := exec.Command(spec.Binary(), spec.Args()...)
	cmd.Env = e.cfg.Env()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.log.Debugf("executing %q", spec.String())
	err := cmd.Run()

	res := e.capture(stdout.String(), stderr.String(), exitCode(err))
	if err != nil && !isExitError(err) {
		return res, fmt.Errorf("failed to run %s: %w", spec.Binary(), err)
	}
	return res, nil
}

// RunPipe spawns two processes with the first one's stdout feeding the
// second one's stdin. Only the second process's output is captured; the
// first exists purely as a producer.
/* #nosec G204 */
func (e *Executor) RunPipe(first CommandSpec, second CommandSpec) (Result, error) {
	firstCmd := exec.Command(first.Binary(), first.Args()...)
	firstCmd.Env = e.cfg.Env()

	secondCmd := exec.Command(second.Binary(), second.Args()...)
	secondCmd.Env = e.cfg.Env()

	pipe, err := firstCmd.StdoutPipe()
	if err != nil {
		return e.capture("", "", 0), fmt.Errorf("failed to open pipe from %s: %w", first.Binary(), err)
	}
	secondCmd.Stdin = pipe

	var stdout, stderr bytes.Buffer
	secondCmd.Stdout = &stdout
	secondCmd.Stderr = &stderr

	e.log.Debugf("executing %q | %q", first.String(), second.String())
	if err := firstCmd.Start(); err != nil {
		return e.capture("", "", 0), fmt.Errorf("failed to start %s: %w", first.Binary(), err)
	}
	if err := secondCmd.Start(); err != nil {
		_ = firstCmd.Wait()
		return e.capture("", "", 0), fmt.Errorf("failed to start %s: %w", second.Binary(), err)
	}

	// The consumer drains the pipe, so it must be reaped before the
	// producer. The producer's exit status is not inspected.
	waitErr := secondCmd.Wait()
	_ = firstCmd.Wait()

	res := e.capture(stdout.String(), stderr.String(), exitCode(waitErr))
	if waitErr != nil && !isExitError(waitErr) {
		return res, fmt.Errorf("failed to run %s: %w", second.Binary(), waitErr)
	}
	return res, nil
}

func (e *Executor) capture(stdout string, stderr string, code int) Result {
	res := Result{
		Stdout:          stdout,
		Stderr:          stderr,
		TransactionHash: ExtractTransactionHash(stdout),
		ExitCode:        code,
	}
	e.reporter.Attach(constants.StdoutAttachment, res.Stdout)
	e.reporter.Attach(constants.StderrAttachment, res.Stderr)
	return res
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 0
}
