package main

import (
	"log"

	"github.com/xalgrow/HRMS/config"
	"github.com/xalgrow/HRMS/models"
)

func main() {
	db := config.ConnectDB()
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Employee{},
		&models.Payroll{},
		&models.Attendance{},
		&models.Onboarding{},
		&models.Offboarding{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")
}
