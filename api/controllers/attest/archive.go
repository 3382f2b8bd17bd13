package attest_controller

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/scoutsheirbrug/attest-api/common/util"
	"github.com/scoutsheirbrug/attest-api/internal/bulk"
	"github.com/scoutsheirbrug/attest-api/type/payload"
	"github.com/scoutsheirbrug/attest-api/type/response"
)

// BulkArchive runs the same batch pipeline as Bulk but streams the
// successful documents back as a single zip download.
func BulkArchive(c *fiber.Ctx) error {
	body := new(payload.BulkAttestPayload)

	if err := c.BodyParser(body); err != nil {
		slog.Error("Attest BulkArchive body parsing failed", "error", err)
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		slog.Warn("Attest BulkArchive validation failed", "error", errors[0])
		return response.SendFailed(c, errors[0])
	}

	rows := bulk.Parse(body.Content)
	if len(rows) == 0 {
		slog.Warn("Attest BulkArchive received content without data rows")
		return response.SendFailed(c, "No data rows found")
	}

	outcomes := bulkBuilder(body.Year).Build(rows, body.Signature)

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)
	added := 0
	seen := make(map[string]int)
	for _, outcome := range outcomes {
		if outcome.PDF == nil {
			continue
		}
		name := outcome.PDF.Filename
		// Two members with the same name must not clobber each other.
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		entry, err := archive.Create(name + ".pdf")
		if err != nil {
			slog.Error("Attest BulkArchive entry creation failed", "error", err, "entry", name)
			return response.SendInternalError(c, err)
		}
		if _, err := entry.Write(outcome.PDF.PDF); err != nil {
			slog.Error("Attest BulkArchive entry write failed", "error", err, "entry", name)
			return response.SendInternalError(c, err)
		}
		added++
	}
	if err := archive.Close(); err != nil {
		slog.Error("Attest BulkArchive close failed", "error", err)
		return response.SendInternalError(c, err)
	}

	if added == 0 {
		slog.Warn("Attest BulkArchive produced no documents", "rows", len(rows))
		return response.SendFailed(c, "No attests could be generated")
	}

	slog.Info("Attest BulkArchive completed", "rows", len(rows), "archived", added)
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="attesten.zip"`)
	return c.Send(buf.Bytes())
}
