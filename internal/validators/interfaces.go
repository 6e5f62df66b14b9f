// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks submitted credentials before they reach the
// hasher or the store.
package validators

import "context"

// Validator validates a value. When fields are given only those fields are
// checked; otherwise every rule applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
