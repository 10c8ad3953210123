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

package tabular_test

import (
	"context"

	"github.com/Praachee19/Traffictracker/tabular"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rocketlaunchr/dataframe-go"
)

var _ = Describe("ApplyFilters", func() {
	var (
		ctx context.Context
		df  *dataframe.DataFrame
	)

	BeforeEach(func() {
		ctx = context.Background()
		df = dataframe.NewDataFrame(
			dataframe.NewSeriesString("Region", nil, "West", "East", "West", "East"),
			dataframe.NewSeriesString("Category", nil, "Apparel", "Apparel", "Toys", "Toys"),
			dataframe.NewSeriesString("Month", nil, "Jan", "Feb", "Mar", "Apr"),
		)
	})

	It("returns the table unchanged for an empty filter map", func() {
		res, err := tabular.ApplyFilters(ctx, df, map[string]string{})
		Expect(err).To(BeNil())
		Expect(tabular.Records(res)).To(Equal(tabular.Records(df)))
	})

	It("ignores filters set to the no-filter sentinel", func() {
		res, err := tabular.ApplyFilters(ctx, df, map[string]string{"Region": tabular.NoFilter})
		Expect(err).To(BeNil())
		Expect(res.NRows()).To(Equal(4))
	})

	It("keeps only matching rows and preserves order", func() {
		res, err := tabular.ApplyFilters(ctx, df, map[string]string{"Region": "West"})
		Expect(err).To(BeNil())

		recs := tabular.Records(res)
		Expect(len(recs)).To(Equal(2))
		Expect(recs[0]["Month"]).To(Equal("Jan"))
		Expect(recs[1]["Month"]).To(Equal("Mar"))
		for _, rec := range recs {
			Expect(rec["Region"]).To(Equal("West"))
		}
	})

	It("composes multiple filters with logical AND", func() {
		res, err := tabular.ApplyFilters(ctx, df, map[string]string{"Region": "West", "Category": "Toys"})
		Expect(err).To(BeNil())

		recs := tabular.Records(res)
		Expect(len(recs)).To(Equal(1))
		Expect(recs[0]["Month"]).To(Equal("Mar"))
	})

	It("matches case sensitively", func() {
		res, err := tabular.ApplyFilters(ctx, df, map[string]string{"Region": "west"})
		Expect(err).To(BeNil())
		Expect(res.NRows()).To(Equal(0))
	})

	It("ignores filters on columns that are not in the table", func() {
		res, err := tabular.ApplyFilters(ctx, df, map[string]string{"Country": "US"})
		Expect(err).To(BeNil())
		Expect(res.NRows()).To(Equal(4))
	})
})
