package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-backend/models"
)

func fee(v float64) *float64 { return &v }

func phone(v string) *string { return &v }

// ReferenceHostels are inserted on every startup by fixed id. An existing row
// only has its name refreshed; fees and contacts edited through the API stay.
var ReferenceHostels = []models.Hostel{
	{ID: 1, HostelName: "Aravali Hostel", Location: "North Campus",
		HostelFees: fee(45000), AnnualFees: fee(90000), SecurityDeposit: fee(10000), ContactNumber: phone("0141-2700101")},
	{ID: 2, HostelName: "Nilgiri Hostel", Location: "South Campus",
		HostelFees: fee(40000), AnnualFees: fee(80000), SecurityDeposit: fee(10000), ContactNumber: phone("0141-2700102")},
	{ID: 3, HostelName: "Shivalik Hostel", Location: "East Campus",
		HostelFees: fee(50000), AnnualFees: fee(100000), SecurityDeposit: fee(15000), ContactNumber: phone("0141-2700103")},
	{ID: 4, HostelName: "Vindhya Girls Hostel", Location: "West Campus",
		HostelFees: fee(45000), AnnualFees: fee(90000), SecurityDeposit: fee(10000), ContactNumber: phone("0141-2700104")},
}

func SeedHostels(db *gorm.DB) error {
	seeds := make([]models.Hostel, len(ReferenceHostels))
	copy(seeds, ReferenceHostels)

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hostel_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"hostel_name"}),
	}).Create(&seeds).Error
	if err != nil {
		return fmt.Errorf("seed hostels: %w", err)
	}

	if db.Dialector.Name() == DriverPostgres {
		// explicit ids do not advance the serial sequence
		err := db.Exec(`SELECT setval(pg_get_serial_sequence('hostels', 'hostel_id'),
			(SELECT COALESCE(MAX(hostel_id), 1) FROM hostels))`).Error
		if err != nil {
			return fmt.Errorf("resync hostel sequence: %w", err)
		}
	}

	log.WithField("count", len(seeds)).Debug("reference hostels seeded")
	return nil
}
