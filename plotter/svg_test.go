package plotter

import (
	"strings"
	"testing"

	"github.com/dicebar-xyz/go-dicebar/stats"
)

func TestNewSVGPlotter(t *testing.T) {
	plotter := NewSVGPlotter(800, 600)

	if plotter.Width != 800 {
		t.Errorf("Expected width 800, got %f", plotter.Width)
	}
	if plotter.Height != 600 {
		t.Errorf("Expected height 600, got %f", plotter.Height)
	}
	if plotter.XLabel != "Purchases" {
		t.Errorf("Expected default XLabel 'Purchases', got '%s'", plotter.XLabel)
	}
	if plotter.YLabel != "Customers" {
		t.Errorf("Expected default YLabel 'Customers', got '%s'", plotter.YLabel)
	}
	if plotter.Series != nil || plotter.Bars != nil {
		t.Error("Expected no series or bars initially")
	}
}

func TestSetTitle(t *testing.T) {
	plotter := NewSVGPlotter(800, 600)
	plotter.SetTitle("Test Plot")

	if plotter.Title != "Test Plot" {
		t.Errorf("Expected title 'Test Plot', got '%s'", plotter.Title)
	}

	// Test chaining
	result := plotter.SetTitle("Another Title")
	if result != plotter {
		t.Error("SetTitle should return the plotter for chaining")
	}
}

func TestSetLabels(t *testing.T) {
	plotter := NewSVGPlotter(800, 600)
	plotter.SetXLabel("X Axis").SetYLabel("Y Axis")

	if plotter.XLabel != "X Axis" {
		t.Errorf("Expected XLabel 'X Axis', got '%s'", plotter.XLabel)
	}
	if plotter.YLabel != "Y Axis" {
		t.Errorf("Expected YLabel 'Y Axis', got '%s'", plotter.YLabel)
	}
}

func TestAddBars(t *testing.T) {
	plotter := NewSVGPlotter(800, 600)
	h := stats.Histogram{Edges: []float64{20, 25, 30}, Counts: []int{4, 2}}
	plotter.AddBars(h, "outcomes", "")

	if len(plotter.Bars) != 1 {
		t.Fatalf("Expected 1 bar series, got %d", len(plotter.Bars))
	}
	if plotter.Bars[0].Color == "" {
		t.Error("Expected default color to be assigned")
	}
	if plotter.Bars[0].Label != "outcomes" {
		t.Errorf("Expected label 'outcomes', got '%s'", plotter.Bars[0].Label)
	}
}

func TestRenderHistogram(t *testing.T) {
	h := stats.Histogram{
		Edges:  []float64{20, 24, 28, 32, 36},
		Counts: []int{10, 40, 30, 5},
	}

	plotter := NewSVGPlotter(800, 600)
	plotter.SetTitle("Purchases to Complete the Menu")
	plotter.AddBars(h, "simulated", "")
	svg := plotter.Render()

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("Expected well-formed SVG document")
	}
	if !strings.Contains(svg, "Purchases to Complete the Menu") {
		t.Error("Expected title in SVG output")
	}
	if strings.Count(svg, "<rect") < 5 {
		t.Errorf("Expected a rect per bin plus background, got %d", strings.Count(svg, "<rect"))
	}
	if plotter.LastPlot == nil {
		t.Fatal("Expected LastPlot metadata to be stored")
	}
	if plotter.LastPlot.Ymin != 0 {
		t.Errorf("Expected bars anchored at zero, got ymin %f", plotter.LastPlot.Ymin)
	}
}

func TestRenderWithOverlay(t *testing.T) {
	h := stats.Histogram{Edges: []float64{20, 30, 40}, Counts: []int{5, 15}}

	plotter := NewSVGPlotter(800, 600)
	plotter.AddBars(h, "simulated", "")
	plotter.AddSeries([]float64{25, 35}, []float64{5, 15}, "expected", "")
	svg := plotter.Render()

	if !strings.Contains(svg, "<path") {
		t.Error("Expected line overlay path in SVG output")
	}
	if !strings.Contains(svg, "expected") || !strings.Contains(svg, "simulated") {
		t.Error("Expected legend entries for both series")
	}
}

func TestRenderEmpty(t *testing.T) {
	plotter := NewSVGPlotter(400, 300)
	svg := plotter.Render()

	if !strings.HasPrefix(svg, "<svg") {
		t.Error("Expected valid SVG even with no data")
	}
}

func TestEscape(t *testing.T) {
	plotter := NewSVGPlotter(400, 300)
	plotter.SetTitle("a < b & c > d")
	svg := plotter.Render()

	if !strings.Contains(svg, "a &lt; b &amp; c &gt; d") {
		t.Error("Expected title to be XML-escaped")
	}
}

func TestPlotHistogramConvenience(t *testing.T) {
	h := stats.Histogram{Edges: []float64{20, 25, 30}, Counts: []int{3, 7}}
	svg, data := PlotHistogram(h, 640, 480, "Outcomes", "Purchases", "Customers")

	if !strings.Contains(svg, "Outcomes") {
		t.Error("Expected title in rendered SVG")
	}
	if data == nil {
		t.Fatal("Expected plot metadata")
	}
	if len(data.Bars) != 1 {
		t.Errorf("Expected 1 bar series in metadata, got %d", len(data.Bars))
	}
}
