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

package tabular

import (
	"context"
	"fmt"
	"sort"

	"github.com/rocketlaunchr/dataframe-go"
	"gonum.org/v1/gonum/stat"
)

// GroupMean partitions the dataframe by the distinct values of catCol
// and computes the arithmetic mean of numCol for each partition. Rows
// with a nil group key are dropped. The result has one row per group,
// sorted ascending by key. Both columns must exist; callers are
// expected to check with HasColumn first.
func GroupMean(ctx context.Context, df *dataframe.DataFrame, catCol string, numCol string) (*dataframe.DataFrame, error) {
	if _, err := df.NameToColumn(catCol); err != nil {
		return nil, fmt.Errorf("group column %q: %w", catCol, err)
	}
	if _, err := df.NameToColumn(numCol); err != nil {
		return nil, fmt.Errorf("value column %q: %w", numCol, err)
	}

	df.Lock()
	defer df.Unlock()

	groups := make(map[string][]float64)

	iterator := df.ValuesIterator(dataframe.ValuesOptions{InitialRow: 0, Step: 1, DontReadLock: true})
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, vals, _ := iterator(dataframe.SeriesName)
		if row == nil {
			break
		}

		key := vals[catCol]
		if key == nil {
			// grouping by null keys is excluded
			continue
		}

		ks, ok := key.(string)
		if !ok {
			ks = fmt.Sprint(key)
		}

		groups[ks] = append(groups[ks], coerceFloat(vals[numCol]))
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cats := dataframe.NewSeriesString(catCol, &dataframe.SeriesInit{Capacity: len(keys)})
	means := dataframe.NewSeriesFloat64(numCol, &dataframe.SeriesInit{Capacity: len(keys)})
	for _, k := range keys {
		cats.Append(k)
		means.Append(stat.Mean(groups[k], nil))
	}

	return dataframe.NewDataFrame(cats, means), nil
}
