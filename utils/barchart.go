package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-finlens/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

// chartMaxServices caps the chart to the most expensive services
const chartMaxServices = 6

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawServiceCostChart renders the month-to-date cost per service
func DrawServiceCostChart(profile string, snap model.CostSnapshot) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💸  AWS FINLENS COST BREAKDOWN"))
	fmt.Printf(" Profile: %s\n", text.FgBlue.Sprint(profile))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	costs := orderServiceCosts(snap.ByService)
	if len(costs) > chartMaxServices {
		costs = costs[:chartMaxServices]
	}

	bc := barchart.New(130, 20)

	colors := assignRankedColors(costs)

	for idx, cost := range costs {
		data := barchart.BarData{
			Label: fmt.Sprintf("%s: %.2f USD", cost.Name, cost.Amount),
			Values: []barchart.BarValue{
				{
					Value: cost.Amount,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[idx])),
				},
			},
		}

		bc.Push(data)
	}

	fmt.Println()
	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func orderServiceCosts(byService map[string]float64) []model.ServiceCost {
	costs := make([]model.ServiceCost, 0, len(byService))
	for id, amount := range byService {
		costs = append(costs, model.ServiceCost{Name: id, Amount: amount})
	}

	sort.Slice(costs, func(i, j int) bool {
		return costs[i].Amount > costs[j].Amount
	})

	return costs
}

func assignRankedColors(costs []model.ServiceCost) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	colors := make([]string, len(costs))
	for rank := range costs {
		if rank < len(palette) {
			colors[rank] = palette[rank]
		}
	}

	return colors
}
