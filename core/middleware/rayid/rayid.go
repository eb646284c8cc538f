package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header is the response (and accepted request) header carrying the RayID.
	Header = "X-Ray-ID"
	// LocalsKey is the Fiber locals key the RayID is stored under.
	LocalsKey = "ray_id"
)

// New returns a middleware that assigns every request a RayID.
// An incoming X-Ray-ID header is reused so upstream proxies can correlate requests.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
