package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Grenders/transport-api/internal/domain"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/pkg/utils"
)

// parseID reads the :id path parameter as a positive int64.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.ErrValidation.WithField("id", "must be a positive integer")
	}
	return id, nil
}

// parsePage reads the page/limit query parameters with sane defaults.
func parsePage(c *fiber.Ctx) domain.Page {
	page, limit := utils.NormalizePage(c.QueryInt("page", 1), c.QueryInt("limit", 20))
	return domain.Page{Number: page, Limit: limit}
}

// listMeta builds the pagination envelope for list responses.
func listMeta(total int, page domain.Page) *utils.Meta {
	return &utils.Meta{
		Total: total,
		Page:  page.Number,
		Limit: page.Limit,
	}
}
