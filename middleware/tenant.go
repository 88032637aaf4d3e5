package middleware

import (
	"certmaster/config"

	"github.com/gofiber/fiber/v2"
)

// TenantMiddleware pins the fixed shared tenant id into the request context.
// Every operator of a deployment edits the same record; per-user tenancy is
// deliberately not implemented.
func TenantMiddleware(c *fiber.Ctx) error {
	c.Locals("tenantId", config.AppConfig.TenantID)
	return c.Next()
}
