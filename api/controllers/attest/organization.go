package attest_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scoutsheirbrug/attest-api/common"
	"github.com/scoutsheirbrug/attest-api/type/response"
)

// GetOrganization exposes the configured issuing organization so the form
// can display the block the way the document will print it.
func GetOrganization(c *fiber.Ctx) error {
	org := common.Config.Organization
	return response.SendSuccess(c, "Organization", fiber.Map{
		"name":    *org.Name,
		"address": *org.Address,
		"contact": *org.Contact,
		"place":   *org.Place,
	})
}
