// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrUnknownPage is returned by render when no template was parsed for
	// the requested page.
	ErrUnknownPage = errors.New("unknown page")

	// ErrStorageUnhealthy is reported by /healthz when a backing store does
	// not answer.
	ErrStorageUnhealthy = errors.New("storage is unhealthy")
)
