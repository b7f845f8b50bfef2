package ui

import (
	"sync"

	"github.com/jdlms/operadoras-dashboard/internal/api"
	"github.com/jdlms/operadoras-dashboard/internal/dashboard"
	"github.com/jdlms/operadoras-dashboard/internal/format"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Bar is one labelled value of the chart
type Bar struct {
	Label string
	Value float64
}

// BarChart draws horizontal bars, one row per label
type BarChart struct {
	*tview.Box

	mu         sync.Mutex
	bars       []Bar
	generation uint64
	barColor   tcell.Color
	emptyText  string
}

// NewBarChart creates an empty chart
func NewBarChart(title string) *BarChart {
	c := &BarChart{
		Box:       tview.NewBox(),
		barColor:  BarColor,
		emptyText: "Sem dados",
	}
	c.SetBorder(true).SetTitle(title)
	return c
}

// SetBars replaces the data and returns the generation that owns it
func (c *BarChart) SetBars(bars []Bar) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.bars = append([]Bar(nil), bars...)
	return c.generation
}

// Release clears the data if generation still owns it
func (c *BarChart) Release(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation == generation {
		c.bars = nil
	}
}

// Bars returns a copy of the current data
func (c *BarChart) Bars() []Bar {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Bar(nil), c.bars...)
}

// Draw implements tview.Primitive
func (c *BarChart) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)
	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	bars := c.Bars()
	textStyle := tcell.StyleDefault.Foreground(tview.Styles.PrimaryTextColor).Background(tview.Styles.PrimitiveBackgroundColor)
	if len(bars) == 0 {
		drawText(screen, x, y, width, c.emptyText, textStyle)
		return
	}

	labelWidth, valueWidth := 0, 0
	values := make([]string, len(bars))
	peak := 0.0
	for i, b := range bars {
		labelWidth = max(labelWidth, len([]rune(b.Label)))
		values[i] = format.MoneyFloat(b.Value)
		valueWidth = max(valueWidth, len([]rune(values[i])))
		peak = max(peak, b.Value)
	}

	barSpace := width - labelWidth - valueWidth - 2
	barStyle := tcell.StyleDefault.Foreground(c.barColor).Background(tview.Styles.PrimitiveBackgroundColor)

	for i, b := range bars {
		if i >= height {
			break
		}
		row := y + i
		drawText(screen, x, row, labelWidth, b.Label, textStyle)

		length := 0
		if peak > 0 && barSpace > 0 {
			length = int(b.Value / peak * float64(barSpace))
		}
		for col := 0; col < length; col++ {
			screen.SetContent(x+labelWidth+1+col, row, '█', nil, barStyle)
		}
		drawText(screen, x+labelWidth+2+length, row, valueWidth, values[i], textStyle)
	}
}

// drawText writes text clipped to maxWidth cells
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
}

// ChartRenderer draws the UF distribution into a mounted BarChart
type ChartRenderer struct {
	chart  *BarChart
	redraw func()
}

// NewChartRenderer renders into chart and calls redraw after each change
func NewChartRenderer(chart *BarChart, redraw func()) *ChartRenderer {
	return &ChartRenderer{chart: chart, redraw: redraw}
}

// RenderChart implements dashboard.ChartRenderer
func (r *ChartRenderer) RenderChart(distribution []api.UFTotal) dashboard.Chart {
	bars := make([]Bar, 0, len(distribution))
	for _, d := range distribution {
		bars = append(bars, Bar{Label: d.UF, Value: d.Total.InexactFloat64()})
	}
	h := &chartHandle{renderer: r, generation: r.chart.SetBars(bars)}
	r.triggerRedraw()
	return h
}

func (r *ChartRenderer) triggerRedraw() {
	if r.redraw != nil {
		r.redraw()
	}
}

type chartHandle struct {
	renderer   *ChartRenderer
	generation uint64
	once       sync.Once
}

// Destroy clears the chart unless a newer render already replaced it
func (h *chartHandle) Destroy() {
	h.once.Do(func() {
		h.renderer.chart.Release(h.generation)
		h.renderer.triggerRedraw()
	})
}
