package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/scoutsheirbrug/attest-api/common"
)

// Cors allows the configured frontend origins.
func Cors() fiber.Handler {
	origins := make([]string, 0, len(common.Config.Cors))
	for _, origin := range common.Config.Cors {
		origins = append(origins, *origin)
	}
	return cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

// Recover converts handler panics into 500 responses instead of taking the
// process down.
func Recover() fiber.Handler {
	return recover.New()
}
