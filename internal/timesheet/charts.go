package timesheet

import "sort"

// ChartPoint is one label/value pair of a derived chart dataset.
type ChartPoint struct {
	Label string
	Hours float64
}

// HoursByDay sums hours per calendar day, ordered chronologically. Feeds the
// hours-logged line chart.
func HoursByDay(entries []Timesheet) []ChartPoint {
	totals := make(map[string]float64)
	dates := make(map[string]Date)
	for _, entry := range entries {
		label := entry.Date.Display()
		totals[label] += entry.HoursWorked
		dates[label] = entry.Date
	}

	points := make([]ChartPoint, 0, len(totals))
	for label, hours := range totals {
		points = append(points, ChartPoint{Label: label, Hours: hours})
	}
	sort.Slice(points, func(i, j int) bool {
		return dates[points[i].Label].Before(dates[points[j].Label].Time)
	})
	return points
}

// HoursByProject sums hours per project label in first-seen order. Feeds the
// project-breakdown pie chart.
func HoursByProject(entries []Timesheet) []ChartPoint {
	index := make(map[string]int)
	var points []ChartPoint
	for _, entry := range entries {
		label := entry.Project()
		if i, ok := index[label]; ok {
			points[i].Hours += entry.HoursWorked
			continue
		}
		index[label] = len(points)
		points = append(points, ChartPoint{Label: label, Hours: entry.HoursWorked})
	}
	return points
}
