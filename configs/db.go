package configs

import (
	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.Category{}, &entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Table{}, &entity.Booking{},
	)
}
