package dashboard

import "github.com/jdlms/operadoras-dashboard/internal/api"

// Chart is a live chart instance
type Chart interface {
	Destroy()
}

// ChartRenderer draws the UF distribution. Implementations draw into a target
// that already exists when RenderChart is called.
type ChartRenderer interface {
	RenderChart(distribution []api.UFTotal) Chart
}

// renderChart replaces the live chart, destroying the previous one first
func (c *Controller) renderChart(distribution []api.UFTotal) {
	if c.charts == nil {
		return
	}

	c.chartMu.Lock()
	defer c.chartMu.Unlock()

	if c.chart != nil {
		c.chart.Destroy()
		c.chart = nil
	}
	c.chart = c.charts.RenderChart(append([]api.UFTotal(nil), distribution...))
}
