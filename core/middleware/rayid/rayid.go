package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request's ray id.
const Header = "X-Ray-Id"

// New returns a middleware that assigns every request a unique ray id.
// The id is stored in c.Locals("ray_id") and echoed in the response header
// so logs can be correlated with a specific request.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(Header, rid)

		return c.Next()
	}
}
