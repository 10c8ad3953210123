// Copyright 2025-2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Praachee19/Traffictracker/common"
	"github.com/Praachee19/Traffictracker/dashboard"
	"github.com/Praachee19/Traffictracker/data"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/rocketlaunchr/dataframe-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	renderFile     string
	renderRegion   string
	renderCategory string
	renderSeed     uint64
)

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "CSV file to render; uses the synthetic sample when omitted")
	renderCmd.Flags().StringVar(&renderRegion, "region", dashboard.AllRegions, "Region filter")
	renderCmd.Flags().StringVar(&renderCategory, "category", dashboard.AllCategories, "Category filter")
	renderCmd.Flags().Uint64Var(&renderSeed, "seed", data.DefaultSeed, "Seed for the synthetic sample dataset")

	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dashboard once to the terminal",
	Long:  `Run the full dashboard pipeline over a CSV file or the synthetic sample and print KPI widgets, charts and the category pricing table`,
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		ctx := context.Background()

		var df *dataframe.DataFrame
		if renderFile != "" {
			fh, err := os.Open(renderFile)
			if err != nil {
				log.Fatal().Err(err).Str("File", renderFile).Msg("could not open input file")
			}
			defer fh.Close()

			df, _, err = data.LoadCSV(ctx, fh)
			if err != nil {
				log.Fatal().Err(err).Str("File", renderFile).Msg("could not parse input file")
			}
		} else {
			df = data.Synthetic(renderSeed)
		}

		dash, err := dashboard.Build(ctx, df, dashboard.Options{
			Region:   renderRegion,
			Category: renderCategory,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("could not build dashboard")
		}

		fmt.Println(dash.Title)
		fmt.Println()
		fmt.Println(metricsTable(dash.Metrics))

		for _, chart := range dash.Charts {
			fmt.Println(chart.Title)
			fmt.Println(plotChart(chart))
			fmt.Println()
		}

		if dash.CategoryPricing != nil {
			fmt.Println(dash.CategoryPricing.Title)
			fmt.Println(pricingTable(dash.CategoryPricing))
		}

		fmt.Printf("%d rows\n", dash.NumRows)
	},
}

func metricsTable(metrics []dashboard.Metric) string {
	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader([]string{"Metric", "Value", "Change"})
	table.SetBorder(false)
	for _, m := range metrics {
		table.Append([]string{m.Label, m.Value, m.Delta})
	}
	table.Render()
	return s.String()
}

func pricingTable(agg *dashboard.Aggregate) string {
	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader([]string{"Category", "AvgPrice"})
	table.SetBorder(false)
	for _, row := range agg.Rows {
		table.Append([]string{row.Category, fmt.Sprintf("%.4f", row.AvgPrice)})
	}
	table.Render()
	return s.String()
}

func plotChart(chart dashboard.Chart) string {
	series := make([][]float64, 0, len(chart.Series))
	labels := make([]string, 0, len(chart.Series))
	for _, s := range chart.Series {
		series = append(series, s.Values)
		labels = append(labels, s.Label)
	}

	if len(series) == 0 {
		return "<NO DATA>"
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Caption(strings.Join(labels, " / ")),
	)
}
