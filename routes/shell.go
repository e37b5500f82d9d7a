/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strconv"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/medreport/export"
	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/render"
	"github.com/humaidq/medreport/state"
	"github.com/humaidq/medreport/upload"
)

func negotiatedLanguage(c flamego.Context) i18n.Language {
	return i18n.Negotiate(c.Request().Header.Get("Accept-Language"))
}

// ensureState returns the session state, creating it in the negotiated
// language on first visit.
func ensureState(c flamego.Context, s session.Session, store *state.Store) state.State {
	return store.Ensure(s.ID(), negotiatedLanguage(c))
}

// updateState applies fn to the session state, creating the state first if
// it was pruned.
func updateState(c flamego.Context, s session.Session, store *state.Store, fn func(*state.State) error) (state.State, error) {
	ensureState(c, s, store)
	return store.Update(s.ID(), fn)
}

func setShellData(data template.Data, st state.State) {
	data["Lang"] = string(st.Language)
	data["Dir"] = st.Language.Dir()
	data["IsRTL"] = st.Language.IsRTL()
	data["Theme"] = string(st.Theme)
	data["FontSize"] = string(st.FontSize)
	data["T"] = i18n.Texts(st.Language)
	setPublicSiteTitle(data, st.Language)
}

// Home renders the app shell: upload panel, status and the report.
func Home(c flamego.Context, t template.Template, data template.Data, s session.Session, store *state.Store, exporter *export.Controller) {
	st := ensureState(c, s, store)
	setShellData(data, st)

	data["State"] = st
	data["File"] = st.File
	data["Loading"] = st.Loading()
	data["CanAnalyze"] = st.CanAnalyze()
	data["AcceptAttr"] = upload.AcceptAttr
	data["ExportReady"] = exporter.Ready()

	if st.ErrorKey != "" {
		data["ErrorMessage"] = i18n.T(st.Language, st.ErrorKey)
	}

	if st.Result != nil {
		setReportData(data, st)
	}

	t.HTML(http.StatusOK, "home")
}

func setReportData(data template.Data, st state.State) {
	rep := render.Render(st.Result, st.Language)
	container := render.NewContainer(rep, st.ResultPage)
	current := container.CurrentPage()

	data["Report"] = rep
	data["CurrentPage"] = current
	data["CurrentPageNumber"] = current + 1
	data["PageCount"] = container.PageCount()
	data["HasPrevious"] = container.HasPrevious()
	data["HasNext"] = container.HasNext()
	data["PreviousPage"] = current - 1
	data["NextPage"] = current + 1

	charts := make(map[int]string, len(rep.Pages))
	for _, page := range rep.Pages {
		chart, err := render.SeverityChart(page.Physician, st.Language)
		if err != nil {
			webLogger.Warn("failed to render severity chart", "page", page.Number, "error", err)
			continue
		}
		if chart != "" {
			charts[page.Index] = chart
		}
	}
	data["Charts"] = charts
}

// ToggleLanguage flips the session language. The result is kept.
func ToggleLanguage(c flamego.Context, s session.Session, store *state.Store) {
	mutateAndReturn(c, s, store, func(st *state.State) error {
		st.ToggleLanguage()
		return nil
	})
}

// ToggleTheme flips between light and dark.
func ToggleTheme(c flamego.Context, s session.Session, store *state.Store) {
	mutateAndReturn(c, s, store, func(st *state.State) error {
		st.ToggleTheme()
		return nil
	})
}

// CycleFontSize steps the base font size.
func CycleFontSize(c flamego.Context, s session.Session, store *state.Store) {
	mutateAndReturn(c, s, store, func(st *state.State) error {
		st.CycleFontSize()
		return nil
	})
}

// SetResultPage selects the report page shown on screen.
func SetResultPage(c flamego.Context, s session.Session, store *state.Store) {
	page, err := strconv.Atoi(c.Request().FormValue("page"))
	if err != nil {
		webLogger.Warn("invalid page selection", append([]interface{}{"error", errInvalidPage}, baseRequestFields(c, s)...)...)
		c.Redirect("/", http.StatusSeeOther)

		return
	}

	mutateAndReturn(c, s, store, func(st *state.State) error {
		st.SetResultPage(page)
		return nil
	})
}

func mutateAndReturn(c flamego.Context, s session.Session, store *state.Store, fn func(*state.State) error) {
	if _, err := updateState(c, s, store, fn); err != nil {
		webLogger.Error("failed to update session state", append([]interface{}{"error", err}, baseRequestFields(c, s)...)...)
	}

	c.Redirect("/", http.StatusSeeOther)
}
