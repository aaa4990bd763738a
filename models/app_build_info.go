// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnknown = "N/A"

// AppBuildInfo carries build-time metadata injected through linker flags.
// It is printed at startup and shown in the dashboard footer.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; empty values are reported as "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) Version() string { return orUnknown(a.version) }
func (a AppBuildInfo) Date() string    { return orUnknown(a.date) }
func (a AppBuildInfo) Commit() string  { return orUnknown(a.commit) }

// String renders the metadata as a single footer line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("relief-sync %s (%s, %s)", a.Version(), a.Commit(), a.Date())
}

func orUnknown(v string) string {
	if v == "" {
		return buildInfoUnknown
	}
	return v
}
