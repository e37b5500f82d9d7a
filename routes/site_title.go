/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"os"
	"strings"

	"github.com/flamego/template"

	"github.com/humaidq/medreport/i18n"
)

const publicSiteTitleEnvVar = "PUBLIC_SITE_TITLE"

func setPublicSiteTitle(data template.Data, lang i18n.Language) {
	title := strings.TrimSpace(os.Getenv(publicSiteTitleEnvVar))
	if title == "" {
		title = i18n.T(lang, i18n.KeyAppName)
	}

	data["PageTitle"] = title
}
