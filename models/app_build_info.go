// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// notAvailable stands in for build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into a binary with
// -ldflags. It is read-only once built.
type AppBuildInfo struct {
	version, date, commit string
}

// NewAppBuildInfo records the linker-provided values, substituting "N/A" for
// blanks.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	fill := func(v string) string {
		if v == "" {
			return notAvailable
		}
		return v
	}
	return AppBuildInfo{version: fill(version), date: fill(date), commit: fill(commit)}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }
