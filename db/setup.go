package db

import (
	"github.com/projecto-dev/projecto/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	// TranslateError maps unique-constraint violations to gorm.ErrDuplicatedKey
	// so handlers can answer 400 instead of 500 when a race slips past their
	// duplicate pre-checks.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.ProjectLead{},
		&models.ProjectRequest{},
		&models.ProjectMember{},
		&models.ProjectRejection{},
		&models.RevokedToken{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
