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

package handler

import (
	"strconv"

	"github.com/Praachee19/Traffictracker/dashboard"
	"github.com/Praachee19/Traffictracker/data"
	"github.com/gofiber/fiber/v2"
	"github.com/rocketlaunchr/dataframe-go"
	"github.com/rs/zerolog/log"
)

// GetDashboard renders the dashboard from the synthetic sample dataset.
func GetDashboard(c *fiber.Ctx) error {
	seed, err := querySeed(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	return renderDashboard(c, data.Synthetic(seed))
}

// UploadDashboard renders the dashboard from an uploaded CSV file. The
// upload lives only for this request; nothing is persisted.
func UploadDashboard(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Warn().Err(err).Msg("dashboard upload without a file field")
		return fiber.ErrBadRequest
	}

	fh, err := fileHeader.Open()
	if err != nil {
		log.Warn().Err(err).Str("Filename", fileHeader.Filename).Msg("could not open uploaded file")
		return fiber.ErrBadRequest
	}
	defer fh.Close()

	df, digest, err := data.LoadCSV(c.UserContext(), fh)
	if err != nil {
		// malformed tabular input aborts the render outright
		return fiber.ErrUnprocessableEntity
	}

	c.Set("X-Dataset-Digest", digest)
	return renderDashboard(c, df)
}

func renderDashboard(c *fiber.Ctx, df *dataframe.DataFrame) error {
	opts := dashboard.Options{
		Region:   c.Query("region"),
		Category: c.Query("category"),
		TimeView: c.Query("timeView"),
	}

	dash, err := dashboard.Build(c.UserContext(), df, opts)
	if err != nil {
		log.Error().Err(err).Msg("could not build dashboard")
		return fiber.ErrInternalServerError
	}

	return c.JSON(dash)
}

func querySeed(c *fiber.Ctx) (uint64, error) {
	s := c.Query("seed")
	if s == "" {
		return data.DefaultSeed, nil
	}

	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		log.Warn().Err(err).Str("Seed", s).Msg("invalid seed query parameter")
		return 0, err
	}
	return seed, nil
}
