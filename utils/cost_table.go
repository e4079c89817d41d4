package utils

import (
	"fmt"
	"sort"

	"github.com/elC0mpa/aws-finlens/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawOverviewTable renders a profile overview: totals first, then services
// ordered by monthly cost
func DrawOverviewTable(accountID string, overview *model.ProfileOverview) {
	rowHeader := table.Row{
		"Account ID",
		"Service",
		"Resources",
		"Monthly Cost\n(USD, MTD)",
	}

	tw := table.Table{}

	tw.AppendHeader(rowHeader)
	var rows []table.Row

	rows = append(rows, populateTotalsRow(overview))

	for _, item := range orderServiceOverviews(overview.Services) {
		rows = append(rows, populateServiceRow(item))
	}

	halfRow := len(rows) / 2
	rows[halfRow][0] = text.FgBlue.Sprintf("%s", accountID)
	tw.AppendRows(rows)
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{
			Number:       1,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number:       2,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number: 3,
			Align:  text.AlignRight,
		},
		{
			Number:       4,
			Align:        text.AlignRight,
			VAlignHeader: text.VAlignMiddle,
		},
	})
	fmt.Println(tw.Render())
}

func orderServiceOverviews(items []model.ServiceOverview) []model.ServiceOverview {
	sorted := make([]model.ServiceOverview, len(items))
	copy(sorted, items)

	sort.Slice(sorted, func(i, j int) bool {
		return costOf(sorted[i]) > costOf(sorted[j])
	})

	return sorted
}

func costOf(item model.ServiceOverview) float64 {
	if item.MonthlyCost == nil {
		return 0
	}
	return *item.MonthlyCost
}

func populateTotalsRow(overview *model.ProfileOverview) table.Row {
	change := ""
	if overview.MonthlyChangePercent != nil {
		change = fmt.Sprintf(" (%.2f%% %s)", *overview.MonthlyChangePercent, overview.MonthlyChangeDirection)
	}

	row := make(table.Row, 4)
	row[0] = ""
	row[1] = text.FgHiGreen.Sprint("Total Costs")
	row[2] = overview.TotalResources
	row[3] = text.FgHiGreen.Sprintf("%.2f USD%s", overview.TotalMonthlyCost, change)

	if overview.MonthlyChangeDirection == model.ChangeUp {
		row[1] = text.FgHiRed.Sprint("Total Costs")
		row[3] = text.FgHiRed.Sprintf("%.2f USD%s", overview.TotalMonthlyCost, change)
	}

	return row
}

func populateServiceRow(item model.ServiceOverview) table.Row {
	row := make(table.Row, 4)

	cost := "-"
	if item.MonthlyCost != nil {
		cost = fmt.Sprintf("%.2f", *item.MonthlyCost)
	}

	row[0] = ""
	row[1] = text.FgGreen.Sprintf("%s", item.Name)
	row[2] = item.ResourceCount
	row[3] = text.FgGreen.Sprintf("%s", cost)

	return row
}
