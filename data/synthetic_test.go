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

package data_test

import (
	"github.com/Praachee19/Traffictracker/data"
	"github.com/Praachee19/Traffictracker/tabular"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Synthetic", func() {
	It("has 12 rows per year over 3 years", func() {
		df := data.Synthetic(data.DefaultSeed)
		Expect(df.NRows()).To(Equal(36))

		years := map[interface{}]int{}
		for _, rec := range tabular.Records(df) {
			years[rec[data.YearCol]]++
		}
		Expect(years).To(HaveLen(3))
		for _, n := range years {
			Expect(n).To(Equal(12))
		}
	})

	It("has the expected columns", func() {
		df := data.Synthetic(data.DefaultSeed)
		Expect(df.Names()).To(Equal([]string{
			data.MonthCol, data.YearCol, data.ProductionCol, data.AvgPriceCol, data.SelloutCol,
		}))
	})

	It("cycles through the month labels in calendar order", func() {
		df := data.Synthetic(data.DefaultSeed)
		recs := tabular.Records(df)
		months := data.Months()
		for idx, rec := range recs {
			Expect(rec[data.MonthCol]).To(Equal(months[idx%12]))
		}
	})

	It("is reproducible for a fixed seed", func() {
		a := tabular.Records(data.Synthetic(42))
		b := tabular.Records(data.Synthetic(42))
		Expect(a).To(Equal(b))
	})

	It("draws different values for different seeds", func() {
		a := tabular.Records(data.Synthetic(1))
		b := tabular.Records(data.Synthetic(2))
		Expect(a).ToNot(Equal(b))
	})
})
