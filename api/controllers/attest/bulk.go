package attest_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/scoutsheirbrug/attest-api/common"
	"github.com/scoutsheirbrug/attest-api/common/util"
	"github.com/scoutsheirbrug/attest-api/internal/bulk"
	"github.com/scoutsheirbrug/attest-api/type/payload"
	"github.com/scoutsheirbrug/attest-api/type/response"
)

// Bulk parses the uploaded spreadsheet text and returns one outcome per
// input row, in input order: either a rendered document or a row-level
// error tag. A malformed row never aborts the batch.
func Bulk(c *fiber.Ctx) error {
	body := new(payload.BulkAttestPayload)

	if err := c.BodyParser(body); err != nil {
		slog.Error("Attest Bulk body parsing failed", "error", err)
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		slog.Warn("Attest Bulk validation failed", "error", errors[0])
		return response.SendFailed(c, errors[0])
	}

	rows := bulk.Parse(body.Content)
	if len(rows) == 0 {
		slog.Warn("Attest Bulk received content without data rows")
		return response.SendFailed(c, "No data rows found")
	}

	builder := bulkBuilder(body.Year)
	outcomes := builder.Build(rows, body.Signature)

	rendered := 0
	for _, outcome := range outcomes {
		if outcome.PDF != nil {
			rendered++
		}
	}

	slog.Info("Attest Bulk completed", "rows", len(rows), "rendered", rendered)
	return response.SendSuccess(c, "Bulk attests processed", fiber.Map{
		"total":    len(outcomes),
		"rendered": rendered,
		"rows":     outcomes,
	})
}

// bulkBuilder returns the configured builder, or a per-request one when the
// payload overrides the camp season year.
func bulkBuilder(year int) *bulk.Builder {
	if year > 0 {
		return bulk.NewBuilder(common.Renderer, year)
	}
	return common.Bulk
}
