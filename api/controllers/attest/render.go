package attest_controller

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/scoutsheirbrug/attest-api/common"
	"github.com/scoutsheirbrug/attest-api/common/util"
	"github.com/scoutsheirbrug/attest-api/internal/attest"
	"github.com/scoutsheirbrug/attest-api/type/payload"
	"github.com/scoutsheirbrug/attest-api/type/response"
)

// Render produces a download-eligible certificate: the request is validated
// field by field before layout, unlike the preview path.
func Render(c *fiber.Ctx) error {
	body := new(payload.AttestFields)

	if err := c.BodyParser(body); err != nil {
		slog.Error("Attest Render body parsing failed", "error", err)
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		slog.Warn("Attest Render validation failed", "error", errors[0])
		return response.SendFailed(c, errors[0])
	}

	cert := attest.Assemble(toParams(*body), time.Now())

	if problems := cert.Problems(); len(problems) > 0 {
		slog.Warn("Attest Render certificate not eligible", "problem", problems[0], "member", cert.MemberName)
		return response.SendFailed(c, problems[0])
	}

	handle, err := common.Renderer.Render(cert)
	if err != nil {
		slog.Error("Attest Render failed", "error", err, "member", cert.MemberName)
		return response.SendInternalError(c, err)
	}

	slog.Info("Attest Render successful", "member", cert.MemberName, "type", cert.Type)
	return response.SendSuccess(c, "Attest generated", handle)
}
