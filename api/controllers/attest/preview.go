package attest_controller

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/scoutsheirbrug/attest-api/common"
	"github.com/scoutsheirbrug/attest-api/internal/attest"
	"github.com/scoutsheirbrug/attest-api/type/payload"
	"github.com/scoutsheirbrug/attest-api/type/response"
)

// Preview renders without any eligibility gating: the live preview updates
// on every form edit, usually with an incomplete record. Without a session
// id the render happens inline; with one it is debounced per session and
// fetched via PreviewResult.
func Preview(c *fiber.Ctx) error {
	body := new(payload.PreviewAttestPayload)

	if err := c.BodyParser(body); err != nil {
		slog.Error("Attest Preview body parsing failed", "error", err)
		return response.SendError(c, "Failed to parse body")
	}

	cert := attest.Assemble(previewToParams(*body), time.Now())

	if body.SessionID != "" || c.Query("debounce") == "true" {
		sessionID := common.Previews.Schedule(body.SessionID, cert)
		return response.SendSuccess(c, "Preview scheduled", fiber.Map{
			"session_id": sessionID,
		})
	}

	handle, err := common.Renderer.Render(cert)
	if err != nil {
		slog.Error("Attest Preview render failed", "error", err)
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Preview generated", handle)
}

// PreviewResult returns the latest debounced render for a session, which is
// absent while the quiet period has not elapsed yet.
func PreviewResult(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	handle, ok := common.Previews.Latest(sessionID)
	if !ok {
		return response.SendNotFound(c, "Unknown preview session")
	}

	if handle == nil {
		return response.SendSuccess(c, "Preview pending", fiber.Map{
			"ready": false,
		})
	}

	return response.SendSuccess(c, "Preview ready", fiber.Map{
		"ready":    true,
		"document": handle,
	})
}
