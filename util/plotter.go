package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"venues-server/models/venue"
	"venues-server/query"
)

// PlotVenues renders an HTML bar chart with the rating and the lower hourly
// price of each venue, in the given order.
func PlotVenues(w io.Writer, title string, venues []venue.Venue) error {
	names := make([]string, 0, len(venues))
	ratings := make([]opts.BarData, 0, len(venues))
	prices := make([]opts.BarData, 0, len(venues))
	for _, v := range venues {
		names = append(names, v.Name)
		ratings = append(ratings, opts.BarData{Value: v.Rating})
		price, _ := query.LowerBound(v.PriceRange)
		prices = append(prices, opts.BarData{Value: price})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Rating and lowest hourly price per venue",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(names).
		AddSeries("Rating", ratings).
		AddSeries("Lowest price", prices)

	return bar.Render(w)
}
