// Package plotter provides SVG rendering for simulation outcome
// distributions: histogram bars with optional line overlays.
package plotter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dicebar-xyz/go-dicebar/stats"
)

// Series represents a single line series to plot.
type Series struct {
	X     []float64
	Y     []float64
	Label string
	Color string
}

// Bars represents a histogram bar series.
type Bars struct {
	Edges  []float64
	Counts []int
	Label  string
	Color  string
}

// PlotData contains metadata about the last rendered plot.
type PlotData struct {
	PlotID     string
	Margin     map[string]float64
	PlotWidth  float64
	PlotHeight float64
	Xmin       float64
	Xmax       float64
	Ymin       float64
	Ymax       float64
	Series     []Series
	Bars       []Bars
}

// SVGPlotter creates SVG plots with customizable styling.
type SVGPlotter struct {
	Width      float64
	Height     float64
	Margin     map[string]float64
	PlotWidth  float64
	PlotHeight float64
	Title      string
	XLabel     string
	YLabel     string
	Series     []Series
	Bars       []Bars
	LastPlot   *PlotData
}

// NewSVGPlotter creates a new SVG plotter with the given dimensions.
func NewSVGPlotter(width, height float64) *SVGPlotter {
	margin := map[string]float64{"top": 40, "right": 30, "bottom": 50, "left": 60}
	pw := width - margin["left"] - margin["right"]
	ph := height - margin["top"] - margin["bottom"]
	return &SVGPlotter{
		Width:      width,
		Height:     height,
		Margin:     margin,
		PlotWidth:  pw,
		PlotHeight: ph,
		XLabel:     "Purchases",
		YLabel:     "Customers",
	}
}

// SetTitle sets the plot title.
func (p *SVGPlotter) SetTitle(t string) *SVGPlotter {
	p.Title = t
	return p
}

// SetXLabel sets the X-axis label.
func (p *SVGPlotter) SetXLabel(s string) *SVGPlotter {
	p.XLabel = s
	return p
}

// SetYLabel sets the Y-axis label.
func (p *SVGPlotter) SetYLabel(s string) *SVGPlotter {
	p.YLabel = s
	return p
}

// AddSeries adds a line series to the plot.
// If color is empty, a default color from a palette will be used.
func (p *SVGPlotter) AddSeries(x, y []float64, label, color string) *SVGPlotter {
	if color == "" {
		colors := []string{"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00", "#a65628", "#f781bf"}
		color = colors[len(p.Series)%len(colors)]
	}
	p.Series = append(p.Series, Series{X: x, Y: y, Label: label, Color: color})
	return p
}

// AddBars adds a histogram bar series to the plot.
func (p *SVGPlotter) AddBars(h stats.Histogram, label, color string) *SVGPlotter {
	if color == "" {
		color = "#2563eb"
	}
	p.Bars = append(p.Bars, Bars{Edges: h.Edges, Counts: h.Counts, Label: label, Color: color})
	return p
}

// Render generates the SVG string and stores metadata in LastPlot.
func (p *SVGPlotter) Render() string {
	// Compute data ranges across bars and lines
	xmin := math.Inf(1)
	xmax := math.Inf(-1)
	ymin := 0.0
	ymax := math.Inf(-1)

	for _, b := range p.Bars {
		if len(b.Edges) > 0 {
			if b.Edges[0] < xmin {
				xmin = b.Edges[0]
			}
			if b.Edges[len(b.Edges)-1] > xmax {
				xmax = b.Edges[len(b.Edges)-1]
			}
		}
		for _, c := range b.Counts {
			if float64(c) > ymax {
				ymax = float64(c)
			}
		}
	}
	for _, s := range p.Series {
		for i := range s.X {
			if s.X[i] < xmin {
				xmin = s.X[i]
			}
			if s.X[i] > xmax {
				xmax = s.X[i]
			}
			if s.Y[i] > ymax {
				ymax = s.Y[i]
			}
		}
	}

	// Handle edge cases
	if math.IsInf(xmin, 1) || math.IsInf(xmax, -1) {
		xmin = 0
		xmax = 1
	}
	if math.IsInf(ymax, -1) {
		ymax = 1
	}

	xrange := xmax - xmin
	if xrange == 0 {
		xrange = 1
	}
	yrange := ymax - ymin
	if yrange == 0 {
		yrange = 1
	}

	// Add padding; bars sit on the axis so only the top gets headroom
	xmin -= xrange * 0.05
	xmax += xrange * 0.05
	ymax += yrange * 0.1

	// Scaling functions
	sx := func(x float64) float64 {
		return p.Margin["left"] + ((x-xmin)/(xmax-xmin))*p.PlotWidth
	}
	sy := func(y float64) float64 {
		return p.Margin["top"] + p.PlotHeight - ((y-ymin)/(ymax-ymin))*p.PlotHeight
	}

	plotID := "plot_" + strconv.FormatInt(int64(math.Round(1000000*math.Abs(xmin+xmax+ymin+ymax))), 10)

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" id="%s">`,
		int(p.Width), int(p.Height), plotID))

	// Background rectangle for visibility on dark themes
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="#f8f9fa" rx="8"/>`,
		int(p.Width), int(p.Height)))

	// Title
	if p.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%f" y="25" text-anchor="middle" font-family="Arial, sans-serif" font-size="16" font-weight="bold">%s</text>`,
			p.Width/2, escape(p.Title)))
	}

	// Axes
	sb.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="#333" stroke-width="2"/>`,
		p.Margin["left"], p.Margin["top"], p.Margin["left"], p.Margin["top"]+p.PlotHeight))
	sb.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="#333" stroke-width="2"/>`,
		p.Margin["left"], p.Margin["top"]+p.PlotHeight, p.Margin["left"]+p.PlotWidth, p.Margin["top"]+p.PlotHeight))

	// Axis labels
	sb.WriteString(fmt.Sprintf(`<text x="%f" y="%f" text-anchor="middle" font-family="Arial, sans-serif" font-size="12">%s</text>`,
		p.Margin["left"]+p.PlotWidth/2, p.Height-10, escape(p.XLabel)))
	sb.WriteString(fmt.Sprintf(`<text x="15" y="%f" text-anchor="middle" font-family="Arial, sans-serif" font-size="12" transform="rotate(-90, 15, %f)">%s</text>`,
		p.Margin["top"]+p.PlotHeight/2, p.Margin["top"]+p.PlotHeight/2, escape(p.YLabel)))

	// Grid and ticks
	numXTicks := 5
	numYTicks := 5
	for i := 0; i <= numXTicks; i++ {
		x := xmin + (xmax-xmin)*float64(i)/float64(numXTicks)
		px := sx(x)
		sb.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="#333" stroke-width="1"/>`,
			px, p.Margin["top"]+p.PlotHeight, px, p.Margin["top"]+p.PlotHeight+5))
		sb.WriteString(fmt.Sprintf(`<text x="%f" y="%f" text-anchor="middle" font-family="Arial, sans-serif" font-size="10">%.1f</text>`,
			px, p.Margin["top"]+p.PlotHeight+20, x))
		sb.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="#ddd" stroke-width="0.5"/>`,
			px, p.Margin["top"], px, p.Margin["top"]+p.PlotHeight))
	}
	for i := 0; i <= numYTicks; i++ {
		y := ymin + (ymax-ymin)*float64(i)/float64(numYTicks)
		py := sy(y)
		sb.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="#333" stroke-width="1"/>`,
			p.Margin["left"]-5, py, p.Margin["left"], py))
		sb.WriteString(fmt.Sprintf(`<text x="%f" y="%f" text-anchor="end" font-family="Arial, sans-serif" font-size="10">%.0f</text>`,
			p.Margin["left"]-10, py+4, y))
		sb.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="#ddd" stroke-width="0.5"/>`,
			p.Margin["left"], py, p.Margin["left"]+p.PlotWidth, py))
	}

	// Bars first so line overlays stay visible
	for _, b := range p.Bars {
		for i, c := range b.Counts {
			x0 := sx(b.Edges[i])
			x1 := sx(b.Edges[i+1])
			y0 := sy(float64(c))
			y1 := sy(0)
			sb.WriteString(fmt.Sprintf(`<rect x="%f" y="%f" width="%f" height="%f" fill="%s" fill-opacity="0.75" stroke="#fff" stroke-width="0.5"/>`,
				x0, y0, x1-x0, y1-y0, b.Color))
		}
	}

	// Line series
	for _, s := range p.Series {
		if len(s.X) == 0 {
			continue
		}
		path := strings.Builder{}
		for i := range s.X {
			px := sx(s.X[i])
			py := sy(s.Y[i])
			if i == 0 {
				path.WriteString(fmt.Sprintf("M%f,%f", px, py))
			} else {
				path.WriteString(fmt.Sprintf(" L%f,%f", px, py))
			}
		}
		sb.WriteString(fmt.Sprintf(`<path d="%s" stroke="%s" stroke-width="2" fill="none"/>`,
			path.String(), s.Color))
	}

	// Legend
	legendY := p.Margin["top"] + 10
	writeLegend := func(label, color string) {
		if label == "" {
			return
		}
		x1 := p.Width - p.Margin["right"] - 50
		x2 := p.Width - p.Margin["right"] - 30
		sb.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="%s" stroke-width="2"/>`,
			x1, legendY, x2, legendY, color))
		sb.WriteString(fmt.Sprintf(`<text x="%f" y="%f" font-family="Arial, sans-serif" font-size="10">%s</text>`,
			x2+5, legendY+4, escape(label)))
		legendY += 20
	}
	for _, b := range p.Bars {
		writeLegend(b.Label, b.Color)
	}
	for _, s := range p.Series {
		writeLegend(s.Label, s.Color)
	}

	sb.WriteString(`</svg>`)

	// Store metadata
	p.LastPlot = &PlotData{
		PlotID:     plotID,
		Margin:     p.Margin,
		PlotWidth:  p.PlotWidth,
		PlotHeight: p.PlotHeight,
		Xmin:       xmin,
		Xmax:       xmax,
		Ymin:       ymin,
		Ymax:       ymax,
		Series:     p.Series,
		Bars:       p.Bars,
	}

	return sb.String()
}

// PlotHistogram is a convenience function to render an outcome histogram.
func PlotHistogram(h stats.Histogram, width, height float64, title, xlabel, ylabel string) (string, *PlotData) {
	plotter := NewSVGPlotter(width, height)
	if title != "" {
		plotter.SetTitle(title)
	}
	if xlabel != "" {
		plotter.SetXLabel(xlabel)
	}
	if ylabel != "" {
		plotter.SetYLabel(ylabel)
	}
	plotter.AddBars(h, "", "")

	svg := plotter.Render()
	return svg, plotter.LastPlot
}

// escape performs minimal escaping for SVG/XML text content.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
