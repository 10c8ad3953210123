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
	"context"
	"strings"

	"github.com/Praachee19/Traffictracker/data"
	"github.com/Praachee19/Traffictracker/tabular"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LoadCSV", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("parses a delimited table with a header row", func() {
		csv := "Month,Region,Production\nJan,North,\"1,000\"\nFeb,South,2000\n"

		df, digest, err := data.LoadCSV(ctx, strings.NewReader(csv))
		Expect(err).To(BeNil())
		Expect(digest).ToNot(BeEmpty())
		Expect(df.NRows()).To(Equal(2))

		recs := tabular.Records(df)
		Expect(recs[0]["Month"]).To(Equal("Jan"))
		Expect(recs[0]["Production"]).To(Equal("1,000"))
		Expect(recs[1]["Region"]).To(Equal("South"))
	})

	It("returns the same digest for the same bytes", func() {
		csv := "Month,Production\nJan,10\n"

		_, first, err := data.LoadCSV(ctx, strings.NewReader(csv))
		Expect(err).To(BeNil())
		_, second, err := data.LoadCSV(ctx, strings.NewReader(csv))
		Expect(err).To(BeNil())
		Expect(first).To(Equal(second))
	})

	It("rejects empty input", func() {
		_, _, err := data.LoadCSV(ctx, strings.NewReader("   \n "))
		Expect(err).To(MatchError(data.ErrEmptyInput))
	})

	It("propagates malformed tabular input as an error", func() {
		csv := "Month,Production\nJan,10,extra,fields\n"

		_, _, err := data.LoadCSV(ctx, strings.NewReader(csv))
		Expect(err).ToNot(BeNil())
	})
})
