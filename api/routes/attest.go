package routes

import (
	"github.com/gofiber/fiber/v2"
	attest_controller "github.com/scoutsheirbrug/attest-api/api/controllers/attest"
)

func SetupAttestRoutes(router fiber.Router) {
	attestGroup := router.Group("attest")

	attestGroup.Get("organization", attest_controller.GetOrganization)
	attestGroup.Post("render", attest_controller.Render)
	attestGroup.Post("preview", attest_controller.Preview)
	attestGroup.Get("preview/:sessionId", attest_controller.PreviewResult)
	attestGroup.Post("bulk", attest_controller.Bulk)
	attestGroup.Post("bulk/archive", attest_controller.BulkArchive)
}
