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

// Package dashboard is the presentation shell over the tabular core.
// It owns the interaction state (selected filters, time view) and runs
// the full load -> clean -> filter -> aggregate pipeline once per call.
package dashboard

import (
	"context"

	"github.com/Praachee19/Traffictracker/data"
	"github.com/Praachee19/Traffictracker/observability/opentelemetry"
	"github.com/Praachee19/Traffictracker/tabular"
	"github.com/rocketlaunchr/dataframe-go"
	"go.opentelemetry.io/otel"
)

// Sentinel options shown first in the filter drop-downs; selecting one
// disables the corresponding filter.
const (
	AllRegions    = "All Regions"
	AllCategories = "All Categories"
)

// Time range views offered by the sidebar. The selection is interaction
// state only; it does not change the pipeline.
const (
	TimeViewWeek  = "Week"
	TimeViewMonth = "Month"
)

// Options carries the interaction state for a single render cycle.
type Options struct {
	Region   string
	Category string
	TimeView string
}

// Filters lists the values selectable for each categorical filter; a
// nil slice means the column is absent and the filter is unavailable.
type Filters struct {
	Regions    []string `json:"regions,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// AggregateRow is one row of the category pricing table.
type AggregateRow struct {
	Category string  `json:"category"`
	AvgPrice float64 `json:"avgPrice"`
}

// Aggregate is a derived table with one row per distinct categorical
// value and a computed mean.
type Aggregate struct {
	Title string         `json:"title"`
	Rows  []AggregateRow `json:"rows"`
}

// Dashboard is the full render-cycle output consumed by the frontend.
type Dashboard struct {
	Title           string                   `json:"title"`
	TimeView        string                   `json:"timeView"`
	Metrics         []Metric                 `json:"metrics"`
	Filters         Filters                  `json:"filters"`
	Charts          []Chart                  `json:"charts"`
	Rows            []map[string]interface{} `json:"rows"`
	NumRows         int                      `json:"numRows"`
	CategoryPricing *Aggregate               `json:"categoryPricing,omitempty"`
}

// Build executes one render cycle over the given table. The dataframe
// is consumed: numeric columns are cleaned in place before filtering.
func Build(ctx context.Context, df *dataframe.DataFrame, opts Options) (*Dashboard, error) {
	ctx, span := otel.Tracer(opentelemetry.Name).Start(ctx, "dashboard.Build")
	defer span.End()

	dash := &Dashboard{
		Title:    "Tariff Tracker Dashboard",
		TimeView: normalizeTimeView(opts.TimeView),
		Metrics:  Metrics(),
	}

	// filter options come from the unfiltered table
	if tabular.HasColumn(df, data.RegionCol) {
		dash.Filters.Regions = append([]string{AllRegions}, tabular.DistinctStrings(ctx, df, data.RegionCol)...)
	}
	if tabular.HasColumn(df, data.CategoryCol) {
		dash.Filters.Categories = append([]string{AllCategories}, tabular.DistinctStrings(ctx, df, data.CategoryCol)...)
	}

	df = tabular.CleanNumeric(ctx, df, data.NumericColumns())

	filters := map[string]string{
		data.RegionCol:   filterValue(opts.Region, AllRegions),
		data.CategoryCol: filterValue(opts.Category, AllCategories),
	}

	df, err := tabular.ApplyFilters(ctx, df, filters)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	dash.Charts = buildCharts(df)
	dash.Rows = tabular.Records(df)
	dash.NumRows = len(dash.Rows)

	if tabular.HasColumn(df, data.CategoryCol) && tabular.HasColumn(df, data.AvgPriceCol) {
		agg, err := tabular.GroupMean(ctx, df, data.CategoryCol, data.AvgPriceCol)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}

		pricing := &Aggregate{Title: "Category Pricing Overview"}
		for _, rec := range tabular.Records(agg) {
			row := AggregateRow{AvgPrice: toFloat(rec[data.AvgPriceCol])}
			if cat, ok := rec[data.CategoryCol].(string); ok {
				row.Category = cat
			}
			pricing.Rows = append(pricing.Rows, row)
		}
		dash.CategoryPricing = pricing
	}

	return dash, nil
}

func filterValue(selected string, sentinel string) string {
	if selected == "" || selected == sentinel {
		return tabular.NoFilter
	}
	return selected
}

func normalizeTimeView(view string) string {
	if view == TimeViewMonth {
		return TimeViewMonth
	}
	return TimeViewWeek
}
