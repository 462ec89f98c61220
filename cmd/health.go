package cmd

import (
	"gamesync/core/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// healthHandler reports reachability of the database and, when mirroring is
// enabled, the media bucket. Any failed check degrades the status to 503 so
// load balancers can take the instance out of rotation.
func healthHandler(db *gorm.DB, storageClient storage.Client, bucket string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		checks := fiber.Map{}
		healthy := true

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Context())
		}
		if err != nil {
			checks["database"] = err.Error()
			healthy = false
		} else {
			checks["database"] = "ok"
		}

		if storageClient != nil {
			exists, err := storageClient.BucketExists(c.Context(), bucket)
			switch {
			case err != nil:
				checks["storage"] = err.Error()
				healthy = false
			case !exists:
				checks["storage"] = "bucket missing"
				healthy = false
			default:
				checks["storage"] = "ok"
			}
		}

		status := "ok"
		code := fiber.StatusOK
		if !healthy {
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{"status": status, "checks": checks})
	}
}
