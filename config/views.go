package config

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-backend/models"
)

// groupConcat joins expr over a group with ", ", in the dialect of db.
func groupConcat(db *gorm.DB, expr string) string {
	switch db.Dialector.Name() {
	case DriverPostgres:
		return fmt.Sprintf("STRING_AGG(%s, ', ')", expr)
	case DriverSQLite:
		return fmt.Sprintf("GROUP_CONCAT(%s, ', ')", expr)
	default:
		return fmt.Sprintf("GROUP_CONCAT(%s SEPARATOR ', ')", expr)
	}
}

const residentRoomDetailsSQL = `
SELECT r.resident_id, r.name AS resident_name, r.gender, r.contact_number, r.email, r.roommate_type,
       h.hostel_id, h.hostel_name, h.location,
       rm.room_id, rm.room_number, rm.room_type,
       a.allotment_id, a.check_in_date, a.lifestyle_preference,
       mp.plan_id, mp.plan_type, mp.cost AS mess_cost,
       COALESCE(b.outstanding_bills, 0) AS outstanding_bills,
       COALESCE(b.total_rent, 0) AS total_rent
FROM residents r
LEFT JOIN allotments a ON a.resident_id = r.resident_id AND a.status = 'active'
LEFT JOIN rooms rm ON rm.room_id = a.room_id
LEFT JOIN hostels h ON h.hostel_id = COALESCE(rm.hostel_id, r.hostel_id)
LEFT JOIN mess_plans mp ON mp.plan_id = r.mess_plan_id
LEFT JOIN (
    SELECT resident_id, COUNT(*) AS outstanding_bills,
           SUM(monthly_rent + additional_charges) AS total_rent
    FROM bills
    WHERE status IN ('pending', 'overdue')
    GROUP BY resident_id
) b ON b.resident_id = r.resident_id`

const maintenanceDashboardSQL = `
SELECT m.request_id, m.issue_description, m.complaint_status, m.created_at,
       r.resident_id, r.name AS resident_name, r.contact_number,
       rm.room_number, h.hostel_name
FROM maintenance_requests m
JOIN residents r ON r.resident_id = m.resident_id
LEFT JOIN allotments a ON a.resident_id = r.resident_id AND a.status = 'active'
LEFT JOIN rooms rm ON rm.room_id = a.room_id
LEFT JOIN hostels h ON h.hostel_id = COALESCE(rm.hostel_id, r.hostel_id)`

const roomOccupancySQL = `
SELECT rm.room_id, rm.room_number, rm.room_type, rm.roommate_type,
       h.hostel_id, h.hostel_name, rm.capacity, rm.occupied,
       CASE WHEN rm.capacity > rm.occupied THEN rm.capacity - rm.occupied ELSE 0 END AS available_spots,
       rm.status, o.occupants
FROM rooms rm
JOIN hostels h ON h.hostel_id = rm.hostel_id
LEFT JOIN (
    SELECT a.room_id, %s AS occupants
    FROM allotments a
    JOIN residents r ON r.resident_id = a.resident_id
    WHERE a.status = 'active'
    GROUP BY a.room_id
) o ON o.room_id = rm.room_id`

const financialSummarySQL = `
SELECT r.resident_id, r.name AS resident_name,
       COALESCE(b.total_bills, 0) AS total_bills,
       COALESCE(b.total_billed, 0) AS total_billed,
       COALESCE(b.pending_bills, 0) AS pending_bills,
       COALESCE(b.paid_bills, 0) AS paid_bills,
       COALESCE(b.overdue_bills, 0) AS overdue_bills,
       COALESCE(b.pending_amount, 0) AS pending_amount,
       COALESCE(b.paid_amount, 0) AS paid_amount,
       COALESCE(b.overdue_amount, 0) AS overdue_amount,
       COALESCE(p.payment_count, 0) AS payment_count,
       COALESCE(p.total_paid, 0) AS total_paid
FROM residents r
LEFT JOIN (
    SELECT resident_id,
           COUNT(*) AS total_bills,
           SUM(monthly_rent + additional_charges) AS total_billed,
           SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END) AS pending_bills,
           SUM(CASE WHEN status = 'paid' THEN 1 ELSE 0 END) AS paid_bills,
           SUM(CASE WHEN status = 'overdue' THEN 1 ELSE 0 END) AS overdue_bills,
           SUM(CASE WHEN status = 'pending' THEN monthly_rent + additional_charges ELSE 0 END) AS pending_amount,
           SUM(CASE WHEN status = 'paid' THEN monthly_rent + additional_charges ELSE 0 END) AS paid_amount,
           SUM(CASE WHEN status = 'overdue' THEN monthly_rent + additional_charges ELSE 0 END) AS overdue_amount
    FROM bills
    GROUP BY resident_id
) b ON b.resident_id = r.resident_id
LEFT JOIN (
    SELECT resident_id, COUNT(*) AS payment_count, SUM(amount) AS total_paid
    FROM payments
    WHERE payment_status = 'completed'
    GROUP BY resident_id
) p ON p.resident_id = r.resident_id`

func viewDefinitions(db *gorm.DB) []struct{ name, query string } {
	return []struct{ name, query string }{
		{models.ViewResidentRoomDetails, residentRoomDetailsSQL},
		{models.ViewMaintenanceDashboard, maintenanceDashboardSQL},
		{models.ViewRoomOccupancy, fmt.Sprintf(roomOccupancySQL, groupConcat(db, "r.name"))},
		{models.ViewFinancialSummary, financialSummarySQL},
	}
}

func dropViews(db *gorm.DB) error {
	for _, v := range viewDefinitions(db) {
		if err := db.Exec("DROP VIEW IF EXISTS ?", clause.Table{Name: v.name}).Error; err != nil {
			return fmt.Errorf("drop view %s: %w", v.name, err)
		}
	}
	return nil
}

// createViews (re)creates every view. Raw statements are used because
// sqlite rejects the parenthesised body gorm's CreateView emits.
func createViews(db *gorm.DB) error {
	if err := dropViews(db); err != nil {
		return err
	}
	for _, v := range viewDefinitions(db) {
		if err := db.Exec("CREATE VIEW ? AS "+v.query, clause.Table{Name: v.name}).Error; err != nil {
			return fmt.Errorf("create view %s: %w", v.name, err)
		}
	}
	return nil
}
