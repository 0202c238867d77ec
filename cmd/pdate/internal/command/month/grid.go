// Copyright 2026 Peter Edge
//
// All rights reserved.

package month

import (
	"fmt"
	"strconv"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/charmbracelet/lipgloss"
)

// cellWidth is the width of one day column.
const cellWidth = 4

// renderGrid renders the month of first as a Saturday-first grid.
//
// If color is set, Fridays and today are highlighted.
func renderGrid(first persiandate.Date, today persiandate.Date, color bool) string {
	cellStyle := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	fridayStyle := cellStyle
	todayStyle := cellStyle
	if color {
		fridayStyle = cellStyle.Foreground(lipgloss.Color("#F38BA8"))
		todayStyle = cellStyle.Reverse(true).Bold(true)
	}
	styleFor := func(weekday persiancal.Weekday) lipgloss.Style {
		if weekday == persiancal.Friday {
			return fridayStyle
		}
		return cellStyle
	}

	header := lipgloss.NewStyle().
		Width(7 * cellWidth).
		Align(lipgloss.Center).
		Bold(color).
		Render(fmt.Sprintf("%s %d", first.MonthName(), first.Year()))
	lines := []string{header}

	weekdayCells := make([]string, 0, 7)
	for weekday := persiancal.Saturday; weekday <= persiancal.Friday; weekday++ {
		weekdayCells = append(weekdayCells, styleFor(weekday).Render(persiancal.ShortWeekdayName(weekday)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, weekdayCells...))

	// Blank cells before the first day of the month.
	offset := int(first.DayOfWeek())
	var cells []string
	for range offset {
		cells = append(cells, cellStyle.Render(""))
	}
	isThisMonth := today.Year() == first.Year() && today.Month() == first.Month()
	for day := 1; day <= first.MonthDays(); day++ {
		weekday := persiancal.Weekday((offset + day - 1) % 7)
		style := styleFor(weekday)
		if isThisMonth && day == today.Day() {
			style = todayStyle
		}
		cells = append(cells, style.Render(strconv.Itoa(day)))
		if weekday == persiancal.Friday {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	if len(cells) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
