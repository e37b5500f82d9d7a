/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/humaidq/medreport/logging"

var appLogger = logging.Logger(logging.SourceApp)
var exportLogger = logging.Logger(logging.SourceExport)
var requestStdLogger = logging.StdLogger(logging.SourceWebRequest)
