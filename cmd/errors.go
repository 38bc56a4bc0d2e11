/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errReportsDirRequired = errors.New("reports-dir is required (set via --reports-dir or REPORTS_DIR env var)")
	errReportsDirMissing  = errors.New("reports directory does not exist")
)
