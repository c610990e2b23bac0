// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

const (
	appName    = "QUBE ADMIN CLI - BMG"
	appTagline = "User and worker management"
)

// RenderBuildInfo renders the --version output.
func RenderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(appName)
	b.WriteString("\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date:    ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit:  ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")

	return b.String()
}

func renderBanner(apiURL string, info models.AppBuildInfo) string {
	box := bannerStyle.Render(appName + "\n" + appTagline)
	return fmt.Sprintf("\n%s\n\nAPI: %s\n%s\n", box, apiURL, helpStyle.Render(info.String()))
}
