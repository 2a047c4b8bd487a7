package services

import (
	"gorm.io/gorm"
)

// withResidentName selects every column of table plus the owning resident's
// name as resident_name.
func withResidentName(db *gorm.DB, model interface{}, table string) *gorm.DB {
	return db.Model(model).
		Select(table + ".*, r.name AS resident_name").
		Joins("JOIN residents r ON r.resident_id = " + table + ".resident_id")
}

func residentID(p *uint) field {
	return field{"resident_id", p != nil && *p != 0}
}

// deleteByID removes one row by primary key and reports a missing row as
// NotFound for what.
func deleteByID(db *gorm.DB, model interface{}, id uint, what string) error {
	res := db.Delete(model, id)
	if res.Error != nil {
		return classify(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return notFound(what)
	}
	return nil
}
