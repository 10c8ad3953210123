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

package dashboard

import (
	"fmt"
	"sort"

	"github.com/Praachee19/Traffictracker/data"
	"github.com/Praachee19/Traffictracker/tabular"
	"github.com/rocketlaunchr/dataframe-go"
)

// Series is one line of a chart; for the sample data that is one year
// of monthly values.
type Series struct {
	Label  string    `json:"label"`
	Months []string  `json:"months"`
	Values []float64 `json:"values"`
}

// Chart is a line-chart dataset for a single measure, keyed Month x Year.
type Chart struct {
	Title   string   `json:"title"`
	Measure string   `json:"measure"`
	Series  []Series `json:"series"`
}

var chartTitles = map[string]string{
	data.ProductionCol: "How are tariffs impacting production?",
	data.AvgPriceCol:   "How are tariffs impacting pricing?",
	data.SelloutCol:    "How are tariffs impacting sellouts?",
}

// buildCharts creates one chart per measure column present in the
// dataframe, splitting rows into one series per distinct Year value.
// Tables without a Year column get a single unlabeled series.
func buildCharts(df *dataframe.DataFrame) []Chart {
	hasYear := tabular.HasColumn(df, data.YearCol)
	records := tabular.Records(df)

	charts := make([]Chart, 0, len(chartTitles))
	for _, measure := range data.NumericColumns() {
		if !tabular.HasColumn(df, measure) {
			continue
		}

		bySeries := make(map[string]*Series)
		labels := []string{}

		for _, rec := range records {
			label := ""
			if hasYear {
				if y := rec[data.YearCol]; y != nil {
					label = fmt.Sprint(y)
				}
			}

			s, ok := bySeries[label]
			if !ok {
				s = &Series{Label: label}
				bySeries[label] = s
				labels = append(labels, label)
			}

			month := ""
			if m := rec[data.MonthCol]; m != nil {
				month = fmt.Sprint(m)
			}

			s.Months = append(s.Months, month)
			s.Values = append(s.Values, toFloat(rec[measure]))
		}

		sort.Strings(labels)

		chart := Chart{Title: chartTitles[measure], Measure: measure}
		for _, label := range labels {
			chart.Series = append(chart.Series, *bySeries[label])
		}
		charts = append(charts, chart)
	}

	return charts
}

func toFloat(val interface{}) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
