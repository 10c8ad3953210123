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
)

// HasColumn reports whether the dataframe has a column with the given name.
func HasColumn(df *dataframe.DataFrame, name string) bool {
	_, err := df.NameToColumn(name)
	return err == nil
}

// DistinctStrings returns the sorted distinct non-nil values of the
// named column. A missing column yields an empty slice.
func DistinctStrings(ctx context.Context, df *dataframe.DataFrame, col string) []string {
	colIdx, err := df.NameToColumn(col)
	if err != nil {
		return []string{}
	}

	seen := make(map[string]bool)

	s := df.Series[colIdx]
	iterator := s.ValuesIterator(dataframe.ValuesOptions{InitialRow: 0, Step: 1, DontReadLock: false})
	for {
		if err := ctx.Err(); err != nil {
			break
		}

		row, val, _ := iterator()
		if row == nil {
			break
		}
		if val == nil {
			continue
		}

		if vs, ok := val.(string); ok {
			seen[vs] = true
		} else {
			seen[fmt.Sprint(val)] = true
		}
	}

	vals := make([]string, 0, len(seen))
	for v := range seen {
		vals = append(vals, v)
	}
	sort.Strings(vals)

	return vals
}
