package gantt

import (
	"fmt"
	"sort"
	"strings"

	"schedsim/domain"
	"schedsim/helpers"
)

// ChartGenerator renders HTML gantt charts and comparison charts for
// scheduling results
type ChartGenerator struct {
	colors []string
}

// NewChartGenerator returns a ChartGenerator with the default palette
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{colors: helpers.GanttColors}
}

func (g *ChartGenerator) color(pid int) string {
	return g.colors[pid%len(g.colors)]
}

func minutesOf(timeOfDay string) int {
	minutes, err := domain.ToMinutes(timeOfDay)
	if err != nil {
		return 0
	}
	return minutes
}

// GenerateGanttChartHTML renders one algorithm's timeline: a row per pid with
// positioned execution blocks, a time axis and a task legend
func (g *ChartGenerator) GenerateGanttChartHTML(ganttData []domain.GanttEntry, algorithmName string, tasks []*domain.Task) string {
	if len(ganttData) == 0 {
		return g.emptyChartHTML(algorithmName)
	}

	seen := make(map[int]bool)
	uniquePids := make([]int, 0)
	minTime := minutesOf(ganttData[0].Start)
	maxTime := minTime
	for _, entry := range ganttData {
		if !seen[entry.Pid] {
			seen[entry.Pid] = true
			uniquePids = append(uniquePids, entry.Pid)
		}
		if start := minutesOf(entry.Start); start < minTime {
			minTime = start
		}
		if end := minutesOf(entry.End); end > maxTime {
			maxTime = end
		}
	}
	sort.Ints(uniquePids)
	timeRange := maxTime - minTime
	if timeRange == 0 {
		timeRange = 1
	}

	var html strings.Builder
	html.WriteString(`<div class="gantt-chart-container">` + "\n")
	html.WriteString(fmt.Sprintf(`<h5 class="text-center mb-3">%s</h5>`+"\n", algorithmName))
	html.WriteString(`<div class="gantt-chart" style="position: relative; margin: 20px 0;">` + "\n")

	// time axis
	html.WriteString(`<div class="gantt-timeline" style="display: flex; margin-bottom: 10px;">` + "\n")
	html.WriteString(`<div style="width: 100px; text-align: center; font-weight: bold;">Process</div>` + "\n")
	html.WriteString(`<div style="flex: 1; display: flex; justify-content: space-between; padding: 0 10px;">` + "\n")
	numTicks := 10
	if timeRange+1 < numTicks {
		numTicks = timeRange + 1
	}
	for i := 0; i < numTicks; i++ {
		tick := minTime
		if numTicks > 1 {
			tick = minTime + i*timeRange/(numTicks-1)
		}
		html.WriteString(fmt.Sprintf(`<span style="font-size: 12px; color: #666;">%s</span>`+"\n", domain.ToTimeOfDay(tick)))
	}
	html.WriteString("</div>\n</div>\n")

	// one row per process with its execution blocks
	for _, pid := range uniquePids {
		color := g.color(pid)
		html.WriteString(`<div class="gantt-row" style="display: flex; align-items: center; margin-bottom: 5px; height: 40px;">` + "\n")
		html.WriteString(fmt.Sprintf(`<div style="width: 100px; text-align: center; font-weight: bold; color: %s;">P%d</div>`+"\n", color, pid))
		html.WriteString(`<div style="flex: 1; position: relative; height: 30px; background: #f8f9fa; border-radius: 5px; margin: 0 10px;">` + "\n")
		for _, entry := range ganttData {
			if entry.Pid != pid {
				continue
			}
			startPos := float64(minutesOf(entry.Start)-minTime) / float64(timeRange) * 100
			width := float64(entry.Duration) / float64(timeRange) * 100
			html.WriteString(fmt.Sprintf(`<div class="gantt-block" style="position: absolute; left: %.2f%%; width: %.2f%%; height: 100%%; background: %s; border-radius: 3px; display: flex; align-items: center; justify-content: center; color: white; font-weight: bold; font-size: 11px;">P%d</div>`+"\n",
				startPos, width, color, pid))
		}
		html.WriteString("</div>\n</div>\n")
	}

	// legend with arrival and burst per process
	if len(tasks) > 0 {
		html.WriteString(`<div class="gantt-legend" style="margin-top: 20px; padding: 10px; background: #f8f9fa; border-radius: 5px;">` + "\n")
		html.WriteString(`<h6 style="margin-bottom: 10px;">Process Details:</h6>` + "\n")
		html.WriteString(`<div style="display: flex; flex-wrap: wrap; gap: 10px;">` + "\n")
		for _, pid := range uniquePids {
			for _, task := range tasks {
				if task.Pid != pid {
					continue
				}
				html.WriteString(fmt.Sprintf(`<div style="display: flex; align-items: center; margin-right: 15px;">`+
					`<div style="width: 15px; height: 15px; background: %s; border-radius: 3px; margin-right: 5px;"></div>`+
					`<span style="font-size: 12px;">P%d (AT: %s, BT: %d)</span></div>`+"\n",
					g.color(pid), pid, task.ArrivalTime, task.BurstTime))
				break
			}
		}
		html.WriteString("</div>\n</div>\n")
	}

	html.WriteString("</div>\n</div>\n")
	return html.String()
}

func (g *ChartGenerator) emptyChartHTML(algorithmName string) string {
	return fmt.Sprintf(`<div class="gantt-chart-container">
<h5 class="text-center mb-3">%s</h5>
<div class="alert alert-warning text-center">No data available for Gantt chart</div>
</div>
`, algorithmName)
}

// GenerateComparisonChartHTML renders horizontal bars comparing the average
// waiting and turnaround times of every valid result in the batch
func (g *ChartGenerator) GenerateComparisonChartHTML(batch *domain.BatchResult, date string, algorithmKeys []string) string {
	names := make([]string, 0, len(algorithmKeys))
	avgWaiting := make([]float64, 0, len(algorithmKeys))
	avgTurnaround := make([]float64, 0, len(algorithmKeys))
	for _, key := range algorithmKeys {
		entry, ok := batch.Results[key]
		if !ok || entry.Result == nil {
			continue
		}
		cleanName := strings.TrimSpace(strings.SplitN(entry.Result.Algorithm, "(", 2)[0])
		names = append(names, cleanName)
		avgWaiting = append(avgWaiting, entry.Result.AvgWaitingTime)
		avgTurnaround = append(avgTurnaround, entry.Result.AvgTurnaroundTime)
	}
	if len(names) == 0 {
		return g.emptyChartHTML("Algorithm Comparison")
	}

	maxWaiting := 1.0
	maxTurnaround := 1.0
	for i := range names {
		if avgWaiting[i] > maxWaiting {
			maxWaiting = avgWaiting[i]
		}
		if avgTurnaround[i] > maxTurnaround {
			maxTurnaround = avgTurnaround[i]
		}
	}

	title := "Algorithm Performance Comparison"
	if date != "" {
		title += " - " + date
	}

	var html strings.Builder
	html.WriteString(`<div class="comparison-chart-container">` + "\n")
	html.WriteString(fmt.Sprintf(`<h4 class="text-center mb-4">%s</h4>`+"\n", title))
	html.WriteString(`<div class="row">` + "\n")

	g.writeBarColumn(&html, "Average Waiting Time", names, avgWaiting, maxWaiting, "#FF6B6B")
	g.writeBarColumn(&html, "Average Turnaround Time", names, avgTurnaround, maxTurnaround, "#4ECDC4")

	html.WriteString("</div>\n</div>\n")
	return html.String()
}

func (g *ChartGenerator) writeBarColumn(html *strings.Builder, title string, names []string, values []float64, maxValue float64, color string) {
	html.WriteString(`<div class="col-md-6">` + "\n")
	html.WriteString(fmt.Sprintf(`<h5 class="text-center mb-3">%s</h5>`+"\n", title))
	html.WriteString(`<div class="chart-container" style="height: 300px; padding: 20px;">` + "\n")
	for i, name := range names {
		widthPercent := 0.0
		if maxValue > 0 {
			widthPercent = values[i] / maxValue * 100
		}
		html.WriteString(fmt.Sprintf(`<div class="chart-bar-container" style="margin-bottom: 15px;">`+
			`<div style="display: flex; align-items: center; margin-bottom: 5px;">`+
			`<span style="width: 120px; font-size: 12px; font-weight: bold;">%s</span>`+
			`<span style="font-size: 12px; color: #666;">%.1f min</span></div>`+
			`<div class="progress" style="height: 25px; background: #e9ecef;">`+
			`<div class="progress-bar" style="width: %.2f%%; background: %s;"></div>`+
			`</div></div>`+"\n", name, values[i], widthPercent, color))
	}
	html.WriteString("</div>\n</div>\n")
}
