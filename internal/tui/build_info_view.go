// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trust-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Программа", "GoTrustKeeper"},
		{"Версия", info.BuildVersion()},
		{"Дата", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%-10s│ %s\n", row[0], valueOrNA(row[1]))
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
