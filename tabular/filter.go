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

	"github.com/rocketlaunchr/dataframe-go"
)

// NoFilter is the sentinel value that disables a categorical filter.
const NoFilter = ""

// ApplyFilters keeps the rows whose value in each filter column equals
// the requested value. Filters compose with logical AND. Entries whose
// value is NoFilter or whose column is not in the dataframe are ignored.
// Row order is preserved. When no filter applies the input dataframe is
// returned as-is.
func ApplyFilters(ctx context.Context, df *dataframe.DataFrame, filters map[string]string) (*dataframe.DataFrame, error) {
	effective := make(map[string]string, len(filters))
	for col, want := range filters {
		if want == NoFilter {
			continue
		}
		if _, err := df.NameToColumn(col); err != nil {
			continue
		}
		effective[col] = want
	}

	if len(effective) == 0 {
		return df, nil
	}

	filterFn := dataframe.FilterDataFrameFn(func(vals map[interface{}]interface{}, row, nRows int) (dataframe.FilterAction, error) {
		for col, want := range effective {
			// equality is exact and type sensitive; only string
			// cells can match
			cell, ok := vals[col].(string)
			if !ok || cell != want {
				return dataframe.DROP, nil
			}
		}
		return dataframe.KEEP, nil
	})

	res, err := dataframe.Filter(ctx, df, filterFn, dataframe.FilterOptions{InPlace: false})
	if err != nil {
		return nil, err
	}

	return res.(*dataframe.DataFrame), nil
}
