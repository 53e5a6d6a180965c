// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	ginkgo "github.com/onsi/ginkgo/v2"
)

// GinkgoReporter forwards command output attachments into the ginkgo
// report of the currently running spec.
type GinkgoReporter struct{}

func (GinkgoReporter) Attach(name string, content string) {
	ginkgo.AddReportEntry(name, ginkgo.ReportEntryVisibilityFailureOrVerbose, content)
}
