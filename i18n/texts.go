/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package i18n

// UI string keys used outside templates.
const (
	KeyAppName                = "appName"
	KeyErrorNoFile            = "errorNoFile"
	KeyErrorAnalysis          = "errorAnalysis"
	KeyErrorAnalysisInFlight  = "errorAnalysisInFlight"
	KeyErrorUnsupportedFile   = "errorUnsupportedFile"
	KeyErrorFileTooLarge      = "errorFileTooLarge"
	KeyErrorEmptyFile         = "errorEmptyFile"
	KeyErrorUpload            = "errorUpload"
	KeyErrorExportUnavailable = "errorExportUnavailable"
	KeyErrorExportFailed      = "errorExportFailed"
	KeyErrorNoResult          = "errorNoResult"
	KeySeverityHigh           = "severityHigh"
	KeySeverityLow            = "severityLow"
	KeySeverityNormal         = "severityNormal"
	KeySeverityNone           = "severityNone"
	KeyBreakdownTitle         = "breakdownTitle"
	KeyRecommendationsTitle   = "recommendationsTitle"
	KeyAdvancedAnalysisTitle  = "advancedAnalysisTitle"
	KeyResultsTableTest       = "resultsTableTest"
	KeyResultsTableValue      = "resultsTableValue"
	KeyResultsTableRef        = "resultsTableRef"
	KeyResultsTableInterp     = "resultsTableInterp"
	KeyPageLabel              = "pageLabel"
	KeyDisclaimer             = "disclaimer"
	KeyFileSelected           = "fileSelected"
	KeyFileCleared            = "fileCleared"
)

var texts = map[Language]map[string]string{
	English: {
		"appName":                "AI Medical Report Analyzer",
		"uploadTitle":            "Upload Medical Report",
		"uploadPrompt":           "Drag & drop a file here, or click to select a file",
		"supportedFormats":       "Supported formats: PDF, JPG, PNG",
		"uploadButton":           "Upload",
		"clearButton":            "Remove file",
		"analyzeButton":          "Analyze Report",
		"analyzingButton":        "Analyzing...",
		"welcomeTitle":           "Welcome to the AI Medical Report Analyzer",
		"welcomeMessage":         "Upload a medical report image to begin analysis. The system will provide a detailed breakdown for both patients and physicians.",
		"loadingMessage":         "Processing report... This may take a moment.",
		"patientSummaryTitle":    "Simplified Summary for the Patient",
		"physicianReportTitle":   "Professional Report for Physicians",
		"recommendationsTitle":   "Recommendations",
		"advancedAnalysisTitle":  "Advanced Analysis",
		"print":                  "Print",
		"exportPdf":              "Export PDF",
		"exportPreparing":        "Preparing export...",
		"toggleLanguage":         "Switch to Arabic",
		"toggleTheme":            "Toggle Theme",
		"toggleFullscreen":       "Toggle Fullscreen",
		"toggleFontSize":         "Change Font Size",
		"resultsTableTest":       "Test",
		"resultsTableValue":      "Value",
		"resultsTableRef":        "Reference Range",
		"resultsTableInterp":     "Interpretation",
		"pageLabel":              "Page",
		"previousPage":           "Previous",
		"nextPage":               "Next",
		"fingerprint":            "Fingerprint",
		"previewUnavailable":     "PDF document selected",
		"breakdownTitle":         "Result overview",
		"severityHigh":           "High / Critical",
		"severityLow":            "Low",
		"severityNormal":         "Normal",
		"severityNone":           "Other",
		"errorNoFile":            "Please select a file to analyze.",
		"errorAnalysis":          "An error occurred during analysis. Please try again.",
		"errorAnalysisInFlight":  "An analysis is already in progress.",
		"errorUnsupportedFile":   "Unsupported file type. Please upload a PDF, JPG or PNG file.",
		"errorFileTooLarge":      "The file is too large.",
		"errorEmptyFile":         "The selected file is empty.",
		"errorUpload":            "Failed to read the uploaded file.",
		"errorExportUnavailable": "PDF export is not ready yet. Please try again in a moment.",
		"errorExportFailed":      "Failed to export the report as PDF.",
		"errorNoResult":          "There is no analysis to export yet.",
		"disclaimer":             "This analysis is generated automatically and does not replace a consultation with a physician.",
		"fileSelected":           "Report selected. Press Analyze Report to continue.",
		"fileCleared":            "The report was removed.",
	},
	Arabic: {
		"appName":                "محلل التقارير الطبية بالذكاء الاصطناعي",
		"uploadTitle":            "رفع تقرير طبي",
		"uploadPrompt":           "اسحب وأفلت الملف هنا، أو انقر لاختيار ملف",
		"supportedFormats":       "الصيغ المدعومة: PDF, JPG, PNG",
		"uploadButton":           "رفع",
		"clearButton":            "إزالة الملف",
		"analyzeButton":          "تحليل التقرير",
		"analyzingButton":        "جاري التحليل...",
		"welcomeTitle":           "مرحباً بك في محلل التقارير الطبية",
		"welcomeMessage":         "ارفع صورة تقرير طبي لبدء التحليل. سيقوم النظام بتقديم شرح مفصل للمرضى والأطباء.",
		"loadingMessage":         "جاري معالجة التقرير... قد يستغرق هذا بعض الوقت.",
		"patientSummaryTitle":    "ملخص مبسط للمريض",
		"physicianReportTitle":   "تقرير احترافي للأطباء",
		"recommendationsTitle":   "التوصيات",
		"advancedAnalysisTitle":  "تحليل متقدم",
		"print":                  "طباعة",
		"exportPdf":              "تصدير PDF",
		"exportPreparing":        "جاري تجهيز التصدير...",
		"toggleLanguage":         "التحويل إلى الإنجليزية",
		"toggleTheme":            "تبديل المظهر",
		"toggleFullscreen":       "ملء الشاشة",
		"toggleFontSize":         "تغيير حجم الخط",
		"resultsTableTest":       "الاختبار",
		"resultsTableValue":      "القيمة",
		"resultsTableRef":        "النطاق المرجعي",
		"resultsTableInterp":     "التفسير",
		"pageLabel":              "صفحة",
		"previousPage":           "السابق",
		"nextPage":               "التالي",
		"fingerprint":            "البصمة",
		"previewUnavailable":     "تم اختيار مستند PDF",
		"breakdownTitle":         "نظرة عامة على النتائج",
		"severityHigh":           "مرتفع / حرج",
		"severityLow":            "منخفض",
		"severityNormal":         "طبيعي",
		"severityNone":           "أخرى",
		"errorNoFile":            "يرجى اختيار ملف لتحليله.",
		"errorAnalysis":          "حدث خطأ أثناء التحليل. يرجى المحاولة مرة أخرى.",
		"errorAnalysisInFlight":  "يوجد تحليل قيد التنفيذ بالفعل.",
		"errorUnsupportedFile":   "نوع الملف غير مدعوم. يرجى رفع ملف PDF أو JPG أو PNG.",
		"errorFileTooLarge":      "حجم الملف كبير جداً.",
		"errorEmptyFile":         "الملف المحدد فارغ.",
		"errorUpload":            "تعذرت قراءة الملف المرفوع.",
		"errorExportUnavailable": "تصدير PDF غير جاهز بعد. يرجى المحاولة بعد لحظات.",
		"errorExportFailed":      "تعذر تصدير التقرير بصيغة PDF.",
		"errorNoResult":          "لا يوجد تحليل لتصديره بعد.",
		"disclaimer":             "هذا التحليل مُنشأ آلياً ولا يغني عن استشارة الطبيب.",
		"fileSelected":           "تم اختيار التقرير. اضغط تحليل التقرير للمتابعة.",
		"fileCleared":            "تمت إزالة التقرير.",
	},
}
