package handler

import (
	"bytes"

	"github.com/Praachee19/Traffictracker/data"
	"github.com/gofiber/fiber/v2"
	"github.com/rocketlaunchr/dataframe-go/exports"
	"github.com/rs/zerolog/log"
)

// GetSampleCSV exports the synthetic sample dataset as a CSV download.
func GetSampleCSV(c *fiber.Ctx) error {
	seed, err := querySeed(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	df := data.Synthetic(seed)

	buf := &bytes.Buffer{}
	if err := exports.ExportToCSV(c.UserContext(), buf, df); err != nil {
		log.Error().Err(err).Msg("could not export sample dataset")
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sample.csv"`)
	return c.Send(buf.Bytes())
}
