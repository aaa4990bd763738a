// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks bridge request bodies before they reach the
// service layer.
//
// A Validator accepts any supported request value (or pointer to one) and
// an optional list of field names restricting which checks run. With no
// fields every check for that type runs.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
