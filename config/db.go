package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB 初始化数据库连接
// DB_DRIVER selects the dialect: "mysql" (DB_DSN required) or "sqlite"
// (DB_FILE, defaults to message.db). sqlite is the local/dev default.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	var dialector gorm.Dialector
	switch driver := os.Getenv("DB_DRIVER"); driver {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			log.Fatalf("DB_DRIVER=mysql requires DB_DSN")
		}
		dialector = mysql.Open(dsn)
	case "sqlite", "":
		file := os.Getenv("DB_FILE")
		if file == "" {
			file = "message.db"
		}
		log.Printf("Opening SQLite database file %s", file)
		dialector = sqlite.Open(file)
	default:
		log.Fatalf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return db
}

// ServerAddr returns the listen address, ":8082" unless PORT is set.
func ServerAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}
	return ":" + port
}
