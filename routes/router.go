package routes

import (
	"github.com/xalgrow/HRMS/handlers"
	"github.com/xalgrow/HRMS/middleware"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	// Public
	app.Get("/", handlers.Home)
	app.Post("/register", handlers.Register)
	app.Post("/login", handlers.Login)

	// Everything below requires a valid access token.
	api := app.Group("", middleware.RequireAuth())

	api.Get("/protected", handlers.Protected)
	api.Get("/admin", middleware.RequireAdmin(), handlers.Admin)

	// Employee roster
	api.Post("/employee", handlers.CreateEmployee)
	api.Get("/employee", handlers.ListEmployees)
	api.Get("/employee/:id", handlers.GetEmployeeByID)
	api.Put("/employee/:id", handlers.UpdateEmployee)
	api.Delete("/employee/:id", handlers.DeleteEmployee)

	// Roles
	api.Post("/role", handlers.CreateRole)
	api.Get("/role", handlers.ListRoles)
	api.Put("/role/:id", handlers.UpdateRole)
	api.Delete("/role/:id", handlers.DeleteRole)

	// Users
	api.Get("/users", handlers.ListUsers)
	api.Get("/users/:id", handlers.GetUserByID)
	api.Put("/users/:id", handlers.UpdateUser)
	api.Delete("/users/:id", handlers.DeleteUser)

	// Payroll
	api.Post("/payroll", handlers.CreatePayroll)
	api.Get("/payroll/report", handlers.PayrollReport)
	api.Put("/payroll/:id", handlers.UpdatePayroll)
	api.Delete("/payroll/:id", handlers.DeletePayroll)

	// Attendance
	api.Post("/attendance", handlers.MarkAttendance)
	api.Get("/attendance", handlers.ListAttendance)
	api.Get("/attendance/report", handlers.AttendanceReport)
	api.Put("/attendance/:id", handlers.UpdateAttendance)
	api.Delete("/attendance/:id", handlers.DeleteAttendance)

	// Onboarding
	api.Post("/onboarding", handlers.CreateOnboarding)
	api.Get("/onboarding/:id", handlers.GetOnboardingByID)
	api.Put("/onboarding/:id", handlers.UpdateOnboarding)
	api.Delete("/onboarding/:id", handlers.DeleteOnboarding)
	api.Post("/onboarding/:id/document", handlers.UploadOnboardingDocument)

	// Offboarding
	api.Post("/offboarding", handlers.CreateOffboarding)
	api.Get("/offboarding/:id", handlers.GetOffboardingByID)
	api.Put("/offboarding/:id", handlers.UpdateOffboarding)
	api.Delete("/offboarding/:id", handlers.DeleteOffboarding)
}
