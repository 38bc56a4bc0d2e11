/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import "errors"

var (
	// ErrNotFound indicates the underlying report resource does not exist.
	ErrNotFound = errors.New("report not found")
	// ErrMalformedData indicates the document is not valid JSON or is
	// missing required fields.
	ErrMalformedData = errors.New("malformed report data")
)
