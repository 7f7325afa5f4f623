package db

import (
	"encoding/json"
	"log"
	"time"

	"github.com/bloomcycle/bloom/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserDataKey matches the storage key the original client kept its
// state under. One key, one JSON value, the whole aggregate.
const UserDataKey = "cycleData"

type userDataRow struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userDataRow) TableName() string {
	return "user_data"
}

// UserDataRepository persists the UserData aggregate as a single
// serialized value. Load never fails on absent or corrupt state: both
// fall back to the empty default, matching the original client's
// behavior when localStorage was missing or unreadable.
type UserDataRepository struct {
	database *gorm.DB
}

func NewUserDataRepository(database *gorm.DB) *UserDataRepository {
	return &UserDataRepository{database: database}
}

func (repo *UserDataRepository) Load() (models.UserData, error) {
	row := userDataRow{}
	result := repo.database.Where("key = ?", UserDataKey).Limit(1).Find(&row)
	if result.Error != nil {
		return models.UserData{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DefaultUserData(), nil
	}

	data := models.DefaultUserData()
	if err := json.Unmarshal([]byte(row.Value), &data); err != nil {
		log.Printf("user data blob unreadable, starting fresh: %v", err)
		return models.DefaultUserData(), nil
	}
	return data, nil
}

func (repo *UserDataRepository) Save(data models.UserData) error {
	serialized, err := json.Marshal(data)
	if err != nil {
		return err
	}

	row := userDataRow{
		Key:       UserDataKey,
		Value:     string(serialized),
		UpdatedAt: time.Now(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}
