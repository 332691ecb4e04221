package main

import (
	"log"
	"os"

	"github.com/xalgrow/HRMS/config"
	"github.com/xalgrow/HRMS/routes"
	"github.com/xalgrow/HRMS/utils"
	"github.com/xalgrow/HRMS/utils/storage"

	"github.com/gofiber/fiber/v2"
)

func main() {
	if err := config.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	config.ConnectDB()
	storage.InitS3Client()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				log.Printf("unhandled error: %v", err)
				return utils.ErrorResponse(c, code, "internal server error", nil)
			}
			return utils.ErrorResponse(c, code, err.Error(), nil)
		},
	})

	routes.Register(app)

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}

	log.Println("🚀 API running on", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
