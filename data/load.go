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

// Package data owns the input edge of the dashboard: CSV ingestion and
// the reproducible synthetic sample dataset.
package data

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io"

	"github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/blake3"
)

var ErrEmptyInput = errors.New("input is empty")

// LoadCSV parses a delimited table with a header row into a dataframe.
// Every column loads as text; numeric coercion happens downstream in
// tabular.CleanNumeric. A malformed table is the one fatal condition of
// the pipeline and is returned as an error. The second return value is
// a blake3 digest of the raw bytes, used for lineage in logs and
// responses.
func LoadCSV(ctx context.Context, r io.Reader) (*dataframe.DataFrame, string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, "", ErrEmptyInput
	}

	sum := blake3.Sum256(raw)
	digest := hex.EncodeToString(sum[:])

	df, err := imports.LoadFromCSV(ctx, bytes.NewReader(raw))
	if err != nil {
		log.Warn().Err(err).Str("Digest", digest).Msg("could not parse uploaded table")
		return nil, digest, err
	}

	log.Info().Str("Digest", digest).Int("NumRows", df.NRows()).Msg("loaded csv table")
	return df, digest, nil
}
