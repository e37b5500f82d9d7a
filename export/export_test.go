// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/humaidq/medreport/i18n"
	"github.com/humaidq/medreport/render"
	"github.com/humaidq/medreport/report"
)

func bt(en, ar string) report.BilingualText {
	return report.BilingualText{EN: en, AR: ar}
}

func sampleContainer(lang i18n.Language) *render.Container {
	result := &report.AnalysisResult{
		Pages: []report.ReportPage{
			{
				PageTitle: bt("Blood Panel", "لوحة الدم"),
				PatientSummary: &report.PatientSummary{
					Title:   bt("Summary", "ملخص"),
					Summary: bt("Your results are mostly within range. Iron is a little low.", "نتائجك ضمن المعدل."),
				},
				PhysicianReport: &report.PhysicianReport{
					Title:        bt("Physician Report", "تقرير الطبيب"),
					Introduction: bt("Complete blood count.", "تعداد الدم الكامل."),
					ResultsTable: []report.ResultRow{
						{Test: bt("Hemoglobin", "الهيموغلوبين"), Value: "10.1 g/dL", ReferenceRange: "13-17", Interpretation: bt("Low", "منخفض")},
						{Test: bt("Glucose", "الجلوكوز"), Value: "90 mg/dL", ReferenceRange: "70-100", Interpretation: bt("Normal", "طبيعي")},
					},
					AdvancedAnalysis: bt("Consistent with mild iron deficiency.", "يتوافق مع نقص خفيف في الحديد."),
				},
			},
			{
				PageTitle: bt("Advice", "نصائح"),
				Recommendations: &report.Recommendations{
					Nutritional: &report.RecommendationGroup{
						Title:  bt("Diet", "الغذاء"),
						Points: []report.BilingualText{bt("Eat leafy greens", "تناول الخضار الورقية")},
					},
				},
			},
		},
	}

	return render.NewContainer(render.Render(result, lang), 0)
}

type fakeRasterizer struct {
	sawExportMode bool
	sawPages      int
	container     *render.Container
	err           error
	panicWith     any
}

func (f *fakeRasterizer) Rasterize(_ context.Context, doc Document, _ RasterOptions) (image.Image, error) {
	f.sawExportMode = f.container.ExportMode()
	f.sawPages = len(doc.Pages)

	if f.panicWith != nil {
		panic(f.panicWith)
	}
	if f.err != nil {
		return nil, f.err
	}

	img := image.NewRGBA(image.Rect(0, 0, 100, 400))
	for y := 0; y < 400; y++ {
		img.Set(50, y, color.Black)
	}

	return img, nil
}

func readyController(r Rasterizer) *Controller {
	readiness := NewReadiness()
	readiness.Resolve(&Capabilities{Rasterizer: r})

	return NewController(readiness, time.Second)
}

func TestPageCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		h, w, pw, ph float64
		want         int
	}{
		{4000, 1000, 595, 842, 3},
		{842, 595, 595, 842, 1},
		{843, 595, 595, 842, 2},
		{0, 595, 595, 842, 0},
		{100, 0, 595, 842, 0},
	}

	for _, tt := range tests {
		if got := PageCount(tt.h, tt.w, tt.pw, tt.ph); got != tt.want {
			t.Fatalf("PageCount(%v, %v, %v, %v) = %d, want %d", tt.h, tt.w, tt.pw, tt.ph, got, tt.want)
		}
	}
}

func TestWritePDFPaginates(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 100, 400))

	var buf bytes.Buffer
	if err := WritePDF(&buf, img, "Report"); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Fatalf("expected pdf header, got %q", out[:min(len(out), 16)])
	}
	if got := strings.Count(out, "/Type /Page\n"); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}

	if err := WritePDF(&bytes.Buffer{}, image.NewRGBA(image.Rect(0, 0, 0, 0)), "x"); !errors.Is(err, ErrExportFailed) {
		t.Fatalf("expected ErrExportFailed for empty bitmap, got %v", err)
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	r := NewReadiness()
	if r.Ready() {
		t.Fatal("expected not ready")
	}
	if _, err := r.Wait(context.Background(), 0); !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("expected ErrExportUnavailable, got %v", err)
	}
	if _, err := r.Wait(context.Background(), 10*time.Millisecond); !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("expected timeout to be unavailable, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Wait(ctx, time.Minute); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}

	caps := &Capabilities{}
	go r.Resolve(caps)

	got, err := r.Wait(context.Background(), time.Second)
	if err != nil || got != caps {
		t.Fatalf("expected resolved capabilities, got %v, %v", got, err)
	}

	r.Fail(errors.New("late"))
	if !r.Ready() {
		t.Fatal("expected first settlement to win")
	}
}

func TestReadinessFail(t *testing.T) {
	t.Parallel()

	r := NewReadiness()
	loadErr := errors.New("font missing")
	r.Fail(loadErr)

	if r.Ready() {
		t.Fatal("expected failed readiness to be not ready")
	}

	_, err := r.Wait(context.Background(), time.Second)
	if !errors.Is(err, ErrExportUnavailable) || !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
}

func TestControllerSettled(t *testing.T) {
	t.Parallel()

	r := NewReadiness()
	c := NewController(r, time.Second)

	select {
	case <-c.Settled():
		t.Fatal("expected unsettled controller")
	default:
	}

	r.Fail(errors.New("font missing"))

	select {
	case <-c.Settled():
	case <-time.After(time.Second):
		t.Fatal("expected settled after Fail")
	}

	if c.Ready() {
		t.Fatal("expected failed controller to be not ready")
	}
}

func TestExportPDFSetsAndClearsExportMode(t *testing.T) {
	t.Parallel()

	container := sampleContainer(i18n.English)
	raster := &fakeRasterizer{container: container}
	c := readyController(raster)

	if !c.Ready() {
		t.Fatal("expected controller ready")
	}

	var buf bytes.Buffer
	if err := c.ExportPDF(context.Background(), container, Options{Reference: "ref"}, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	if !raster.sawExportMode {
		t.Fatal("expected export mode during rasterization")
	}
	if raster.sawPages != 2 {
		t.Fatalf("expected all 2 pages rasterized, got %d", raster.sawPages)
	}
	if container.ExportMode() {
		t.Fatal("expected export mode cleared")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected pdf output")
	}
}

func TestExportPDFClearsMarkerOnError(t *testing.T) {
	t.Parallel()

	container := sampleContainer(i18n.English)
	raster := &fakeRasterizer{container: container, err: errors.New("canvas too large")}
	c := readyController(raster)

	var buf bytes.Buffer
	err := c.ExportPDF(context.Background(), container, Options{}, &buf)
	if !errors.Is(err, ErrExportFailed) {
		t.Fatalf("expected ErrExportFailed, got %v", err)
	}
	if container.ExportMode() {
		t.Fatal("expected export mode cleared after error")
	}
	if buf.Len() != 0 {
		t.Fatal("expected nothing written on failure")
	}
}

func TestExportPDFClearsMarkerOnPanic(t *testing.T) {
	t.Parallel()

	container := sampleContainer(i18n.English)
	raster := &fakeRasterizer{container: container, panicWith: "out of memory"}
	c := readyController(raster)

	err := c.ExportPDF(context.Background(), container, Options{}, &bytes.Buffer{})
	if !errors.Is(err, ErrExportFailed) {
		t.Fatalf("expected ErrExportFailed, got %v", err)
	}
	if container.ExportMode() {
		t.Fatal("expected export mode cleared after panic")
	}
}

func TestExportPDFUnavailable(t *testing.T) {
	t.Parallel()

	container := sampleContainer(i18n.English)
	raster := &fakeRasterizer{container: container}

	c := NewController(NewReadiness(), 10*time.Millisecond)
	if c.Ready() {
		t.Fatal("expected controller not ready")
	}

	err := c.ExportPDF(context.Background(), container, Options{}, &bytes.Buffer{})
	if !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("expected ErrExportUnavailable, got %v", err)
	}
	if raster.sawExportMode || container.ExportMode() {
		t.Fatal("expected export mode never set")
	}

	empty := render.NewContainer(render.Render(nil, i18n.English), 0)
	err = readyController(raster).ExportPDF(context.Background(), empty, Options{}, &bytes.Buffer{})
	if !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("expected ErrExportUnavailable for empty report, got %v", err)
	}
}

func TestRasterizeSampleReport(t *testing.T) {
	t.Parallel()

	caps, err := LoadCapabilities(CapabilityOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	for _, lang := range []i18n.Language{i18n.English, i18n.Arabic} {
		container := sampleContainer(lang)
		container.SetExportMode(true)

		doc := Document{Language: lang, Pages: container.VisiblePages()}
		img, err := caps.Rasterizer.Rasterize(context.Background(), doc, RasterOptions{
			Scale:     1,
			Dark:      lang == i18n.Arabic,
			Reference: "abc123",
		})
		if err != nil {
			t.Fatalf("rasterize %s: %v", lang, err)
		}

		b := img.Bounds()
		if b.Dx() != pageWidthPx {
			t.Fatalf("expected width %d, got %d", pageWidthPx, b.Dx())
		}
		if b.Dy() <= qrSizePx {
			t.Fatalf("expected content below header, got height %d", b.Dy())
		}
	}
}

func TestRasterizeRejectsEmptyAndCancelled(t *testing.T) {
	t.Parallel()

	caps, err := LoadCapabilities(CapabilityOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := caps.Rasterizer.Rasterize(context.Background(), Document{}, RasterOptions{}); !errors.Is(err, ErrExportFailed) {
		t.Fatalf("expected ErrExportFailed, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := Document{Language: i18n.English, Pages: sampleContainer(i18n.English).Report().Pages}
	if _, err := caps.Rasterizer.Rasterize(ctx, doc, RasterOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoadCapabilitiesMissingArabicFont(t *testing.T) {
	t.Parallel()

	_, err := LoadCapabilities(CapabilityOptions{ArabicFontPath: "/nonexistent/font.ttf"})
	if err == nil {
		t.Fatal("expected error for missing font")
	}

	r := LoadAsync(CapabilityOptions{ArabicFontPath: "/nonexistent/font.ttf"})
	if _, err := r.Wait(context.Background(), 5*time.Second); !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("expected ErrExportUnavailable, got %v", err)
	}
}
