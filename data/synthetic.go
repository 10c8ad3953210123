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

package data

import (
	"github.com/rocketlaunchr/dataframe-go"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed is the seed used for the sample dataset so repeated runs
// draw the same values.
const DefaultSeed uint64 = 42

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var (
	syntheticYears = []int64{2023, 2024, 2025}

	productionBase = []float64{900_000, 950_000, 1_100_000}
	avgPriceBase   = []float64{65, 67, 72}
	selloutBase    = []float64{1_000_000, 1_200_000, 1_450_000}
)

// Synthetic builds the 36-row sample table: 12 monthly rows for each of
// three years with Production, AvgPrice and Sellout measures drawn as
// base * (1 + N(0,1) * noise) from a single PRNG stream. The same seed
// always yields the same table.
func Synthetic(seed uint64) *dataframe.DataFrame {
	normal := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewSource(seed),
	}

	monthS := dataframe.NewSeriesString(MonthCol, &dataframe.SeriesInit{Capacity: len(months) * len(syntheticYears)})
	yearS := dataframe.NewSeriesInt64(YearCol, &dataframe.SeriesInit{Capacity: len(months) * len(syntheticYears)})
	prodS := dataframe.NewSeriesFloat64(ProductionCol, &dataframe.SeriesInit{Capacity: len(months) * len(syntheticYears)})
	priceS := dataframe.NewSeriesFloat64(AvgPriceCol, &dataframe.SeriesInit{Capacity: len(months) * len(syntheticYears)})
	sellS := dataframe.NewSeriesFloat64(SelloutCol, &dataframe.SeriesInit{Capacity: len(months) * len(syntheticYears)})

	for yearIdx, year := range syntheticYears {
		production := yearlySeries(&normal, productionBase[yearIdx], 0.15)
		avgPrice := yearlySeries(&normal, avgPriceBase[yearIdx], 0.05)
		sellout := yearlySeries(&normal, selloutBase[yearIdx], 0.15)

		for monthIdx, month := range months {
			monthS.Append(month)
			yearS.Append(year)
			prodS.Append(production[monthIdx])
			priceS.Append(avgPrice[monthIdx])
			sellS.Append(sellout[monthIdx])
		}
	}

	return dataframe.NewDataFrame(monthS, yearS, prodS, priceS, sellS)
}

// Months returns the month labels in calendar order.
func Months() []string {
	res := make([]string, len(months))
	copy(res, months)
	return res
}

func yearlySeries(normal *distuv.Normal, base float64, noise float64) []float64 {
	vals := make([]float64, len(months))
	for idx := range vals {
		vals[idx] = base * (1 + normal.Rand()*noise)
	}
	return vals
}
