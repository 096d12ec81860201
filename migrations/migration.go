package main

import (
	"gin-bookreview/constants"
	"gin-bookreview/infra"
	"gin-bookreview/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Group{}, &models.Book{}, &models.Review{}); err != nil {
		panic("Failed to migrate database")
	}

	if err := db.FirstOrCreate(&models.Group{}, models.Group{Name: constants.GroupBookAdmin}).Error; err != nil {
		panic("Failed to seed groups")
	}

	tokenDB := infra.SetupTokenDB()
	if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
		panic("Failed to migrate token blacklist database")
	}
}
