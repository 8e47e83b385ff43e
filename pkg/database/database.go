package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/sirupsen/logrus"

	"github.com/JACK-Producer/endtime-loud-cry/pkg/models"
)

var DB *gorm.DB

func Init(path string) {
	var err error
	DB, err = gorm.Open("sqlite3", path)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	DB.AutoMigrate(&models.Admin{}, &models.Video{}, &models.ContactMessage{})
}
