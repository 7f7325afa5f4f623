package db

import "gorm.io/gorm"

type Repositories struct {
	UserData *UserDataRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		UserData: NewUserDataRepository(database),
	}
}
