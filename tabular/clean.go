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

// Package tabular transforms loosely-typed tables the dashboard works
// on: numeric coercion, categorical filtering and grouped aggregation
// over rocketlaunchr dataframes.
package tabular

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rocketlaunchr/dataframe-go"
	"github.com/rs/zerolog/log"
)

// CleanNumeric coerces every cell of the named columns to a finite
// float64. Cells are rendered as text, stripped of thousands separators
// and stray spaces, then parsed; anything that does not parse becomes 0.
// Missing values become 0 as well. Columns absent from the dataframe
// are skipped. The zero fallback is intentional: a chart render is never
// interrupted by a bad cell.
func CleanNumeric(ctx context.Context, df *dataframe.DataFrame, cols []string) *dataframe.DataFrame {
	dontLock := dataframe.Options{DontLock: true}

	for _, col := range cols {
		if err := ctx.Err(); err != nil {
			return df
		}

		colIdx, err := df.NameToColumn(col)
		if err != nil {
			// column not in table; nothing to do
			continue
		}

		s := df.Series[colIdx]
		nRows := s.NRows()
		ns := dataframe.NewSeriesFloat64(col, &dataframe.SeriesInit{Capacity: nRows})

		iterator := s.ValuesIterator(dataframe.ValuesOptions{InitialRow: 0, Step: 1, DontReadLock: false})
		for {
			row, val, _ := iterator()
			if row == nil {
				break
			}
			ns.Append(coerceFloat(val), dontLock)
		}

		if err := df.RemoveSeries(col); err != nil {
			log.Error().Err(err).Str("Column", col).Msg("could not remove series during numeric cleaning")
			continue
		}

		// keep the column at its original position
		if colIdx < len(df.Series) {
			err = df.AddSeries(ns, &colIdx)
		} else {
			err = df.AddSeries(ns, nil)
		}
		if err != nil {
			log.Error().Err(err).Str("Column", col).Msg("could not re-insert cleaned series")
		}
	}

	return df
}

// coerceFloat maps an arbitrary cell value to a finite float64,
// falling back to 0 for anything unparseable or non-finite.
func coerceFloat(val interface{}) float64 {
	switch v := val.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		return parseFloat(v)
	default:
		return parseFloat(fmt.Sprint(v))
	}
}

func parseFloat(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
