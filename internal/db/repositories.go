package db

import "gorm.io/gorm"

type Repositories struct {
	Catalog *CatalogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Catalog: NewCatalogRepository(database),
	}
}
