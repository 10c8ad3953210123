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

package dashboard_test

import (
	"context"
	"strings"

	"github.com/Praachee19/Traffictracker/dashboard"
	"github.com/Praachee19/Traffictracker/data"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Build", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("with the synthetic sample dataset", func() {
		It("renders KPI widgets with fixed display values", func() {
			dash, err := dashboard.Build(ctx, data.Synthetic(data.DefaultSeed), dashboard.Options{})
			Expect(err).To(BeNil())

			Expect(dash.Metrics).To(HaveLen(3))
			Expect(dash.Metrics[0].Label).To(Equal("New product launches"))
			Expect(dash.Metrics[0].Value).To(Equal("1.2M"))
			Expect(dash.Metrics[0].Delta).To(Equal("+25%"))
		})

		It("builds one chart per measure with one series per year", func() {
			dash, err := dashboard.Build(ctx, data.Synthetic(data.DefaultSeed), dashboard.Options{})
			Expect(err).To(BeNil())

			Expect(dash.Charts).To(HaveLen(3))
			for _, chart := range dash.Charts {
				Expect(chart.Series).To(HaveLen(3))
				for _, s := range chart.Series {
					Expect(s.Values).To(HaveLen(12))
					Expect(s.Months).To(Equal(data.Months()))
				}
			}
			Expect(dash.Charts[0].Series[0].Label).To(Equal("2023"))
			Expect(dash.Charts[0].Series[2].Label).To(Equal("2025"))
		})

		It("omits filter options when the columns are absent", func() {
			dash, err := dashboard.Build(ctx, data.Synthetic(data.DefaultSeed), dashboard.Options{})
			Expect(err).To(BeNil())

			Expect(dash.Filters.Regions).To(BeEmpty())
			Expect(dash.Filters.Categories).To(BeEmpty())
		})

		It("omits the category pricing table when Category is absent", func() {
			dash, err := dashboard.Build(ctx, data.Synthetic(data.DefaultSeed), dashboard.Options{})
			Expect(err).To(BeNil())
			Expect(dash.CategoryPricing).To(BeNil())
		})

		It("keeps all rows when only sentinel filters are selected", func() {
			dash, err := dashboard.Build(ctx, data.Synthetic(data.DefaultSeed), dashboard.Options{
				Region:   dashboard.AllRegions,
				Category: dashboard.AllCategories,
			})
			Expect(err).To(BeNil())
			Expect(dash.NumRows).To(Equal(36))
		})

		It("defaults the time view to Week", func() {
			dash, err := dashboard.Build(ctx, data.Synthetic(data.DefaultSeed), dashboard.Options{})
			Expect(err).To(BeNil())
			Expect(dash.TimeView).To(Equal(dashboard.TimeViewWeek))
		})
	})

	Context("with an uploaded retail table", func() {
		const csv = "Month,Year,Region,Category,Production,AvgPrice,Sellout\n" +
			"Jan,2024,North,Apparel,\"1,000\",10,500\n" +
			"Feb,2024,North,Apparel,\"2,000\",20,600\n" +
			"Jan,2024,North,Toys,\"3,000\",5,700\n" +
			"Jan,2024,South,Apparel,bad,99,800\n"

		It("filters, cleans and aggregates end to end", func() {
			df, _, err := data.LoadCSV(ctx, strings.NewReader(csv))
			Expect(err).To(BeNil())

			dash, err := dashboard.Build(ctx, df, dashboard.Options{Region: "North"})
			Expect(err).To(BeNil())

			Expect(dash.NumRows).To(Equal(3))
			for _, row := range dash.Rows {
				Expect(row[data.RegionCol]).To(Equal("North"))
			}

			// thousands separators are gone
			Expect(dash.Rows[0][data.ProductionCol]).To(BeNumerically("==", 1000))

			// one aggregate row per distinct category in the filtered subset
			Expect(dash.CategoryPricing).ToNot(BeNil())
			Expect(dash.CategoryPricing.Rows).To(HaveLen(2))
			Expect(dash.CategoryPricing.Rows[0].Category).To(Equal("Apparel"))
			Expect(dash.CategoryPricing.Rows[0].AvgPrice).To(BeNumerically("==", 15))
			Expect(dash.CategoryPricing.Rows[1].Category).To(Equal("Toys"))
			Expect(dash.CategoryPricing.Rows[1].AvgPrice).To(BeNumerically("==", 5))
		})

		It("offers filter options from the unfiltered table with the sentinel first", func() {
			df, _, err := data.LoadCSV(ctx, strings.NewReader(csv))
			Expect(err).To(BeNil())

			dash, err := dashboard.Build(ctx, df, dashboard.Options{Region: "North"})
			Expect(err).To(BeNil())

			Expect(dash.Filters.Regions).To(Equal([]string{dashboard.AllRegions, "North", "South"}))
			Expect(dash.Filters.Categories).To(Equal([]string{dashboard.AllCategories, "Apparel", "Toys"}))
		})

		It("coerces unparseable production values to zero instead of failing", func() {
			df, _, err := data.LoadCSV(ctx, strings.NewReader(csv))
			Expect(err).To(BeNil())

			dash, err := dashboard.Build(ctx, df, dashboard.Options{Region: "South"})
			Expect(err).To(BeNil())

			Expect(dash.NumRows).To(Equal(1))
			Expect(dash.Rows[0][data.ProductionCol]).To(BeNumerically("==", 0))
		})
	})
})
