package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hostel-backend/models"
)

// migrated lists every table, parents before children.
var migrated = []interface{}{
	&models.Hostel{},
	&models.MessPlan{},
	&models.Room{},
	&models.Resident{},
	&models.Allotment{},
	&models.Bill{},
	&models.Payment{},
	&models.MaintenanceRequest{},
	&models.LaundryRequest{},
	&models.VisitorLog{},
	&models.AccessCard{},
	&models.RoommatePreference{},
}

type guard struct {
	model interface{}
	name  string
}

// Non-negative amount checks. The BeforeSave hooks on the models enforce the
// same rule for engines that parse but ignore CHECK.
var guards = []guard{
	{&models.MessPlan{}, "chk_mess_plans_cost"},
	{&models.Hostel{}, "chk_hostels_fees"},
	{&models.Hostel{}, "chk_hostels_annual_fees"},
	{&models.Hostel{}, "chk_hostels_deposit"},
}

// Bootstrap brings the schema up to date: tables and constraints, guard
// checks, reference hostels and the aggregate views. It is safe to run on
// every startup.
func Bootstrap(db *gorm.DB) error {
	// Views are dropped first so column changes never collide with a
	// dependent view.
	if err := dropViews(db); err != nil {
		return err
	}

	if err := db.AutoMigrate(migrated...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := ensureGuards(db); err != nil {
		return err
	}

	if err := SeedHostels(db); err != nil {
		return err
	}

	if err := createViews(db); err != nil {
		return err
	}

	log.WithField("driver", db.Dialector.Name()).Info("database schema ready")
	return nil
}

func ensureGuards(db *gorm.DB) error {
	m := db.Migrator()
	for _, g := range guards {
		if m.HasConstraint(g.model, g.name) {
			continue
		}
		if err := m.CreateConstraint(g.model, g.name); err != nil {
			return fmt.Errorf("create guard %s: %w", g.name, err)
		}
	}
	return nil
}
