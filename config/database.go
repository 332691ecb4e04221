package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the process-wide connection used by the HR handlers.
var DB *gorm.DB

func LoadEnv() {
	_ = godotenv.Load()
}

// ConnectDB opens the MySQL pool from the DB_* environment variables and
// keeps the handle in DB.
func ConnectDB() *gorm.DB {
	LoadEnv()

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	name := os.Getenv("DB_NAME")
	params := os.Getenv("DB_PARAMS")

	if params == "" {
		// parseTime hands DATE columns back as time.Time. loc must stay in
		// step with the zone utils.ParseDate uses, or every payment_date,
		// attendance date and start_date shifts by a day off UTC.
		params = "charset=utf8mb4&parseTime=true&loc=Local"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, name, params)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	DB = db
	log.Println("✅ Connected to database:", name)
	return DB
}
