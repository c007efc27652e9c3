package models

type SymptomRecord struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null;uniqueIndex"`
	Position int    `gorm:"not null"`
}

func (SymptomRecord) TableName() string {
	return "symptoms"
}

type DiseaseRecord struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null;uniqueIndex"`
	Category string `gorm:"not null"`
	Position int    `gorm:"not null"`
}

func (DiseaseRecord) TableName() string {
	return "diseases"
}

// DiseaseSymptomRecord links a disease to one of its symptoms. Position keeps
// the declaration order of the disease's symptom list.
type DiseaseSymptomRecord struct {
	ID        uint `gorm:"primaryKey"`
	DiseaseID uint `gorm:"not null;index"`
	SymptomID uint `gorm:"not null"`
	Position  int  `gorm:"not null"`
}

func (DiseaseSymptomRecord) TableName() string {
	return "disease_symptoms"
}
