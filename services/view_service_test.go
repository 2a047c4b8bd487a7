package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hostel-backend/models"
)

func TestResidentRoomDetailsTotalsOutstandingBills(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 2, models.RoommateQuiet)
	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)
	idle := f.resident(t, "Kabir", models.RoommateQuiet, ptr(nilgiri))
	_, err := f.allot(r.ID, room.ID)
	require.NoError(t, err)

	_, err = f.bills.Create(BillInput{ResidentID: ptr(r.ID), MonthlyRent: ptr(5000.0), AdditionalCharges: ptr(500.0), DueDate: ptr("2024-08-01")})
	require.NoError(t, err)
	_, err = f.bills.Create(BillInput{ResidentID: ptr(r.ID), MonthlyRent: ptr(5000.0), DueDate: ptr("2024-07-01"), Status: ptr("paid")})
	require.NoError(t, err)

	rows, err := NewViewService(f.db).ResidentRoomDetails()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	got := rows[0]
	assert.Equal(t, r.ID, got.ResidentID)
	assert.Equal(t, 5500.0, got.TotalRent)
	assert.Equal(t, int64(1), got.OutstandingBills)
	require.NotNil(t, got.RoomNumber)
	assert.Equal(t, "A-101", *got.RoomNumber)
	require.NotNil(t, got.HostelName)
	assert.Equal(t, "Aravali Hostel", *got.HostelName)

	// Without an allotment the preferred hostel is shown.
	other := rows[1]
	assert.Equal(t, idle.ID, other.ResidentID)
	assert.Nil(t, other.RoomID)
	assert.Zero(t, other.TotalRent)
	require.NotNil(t, other.HostelName)
	assert.Equal(t, "Nilgiri Hostel", *other.HostelName)
}

func TestRoomOccupancyView(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 3, models.RoommateQuiet)
	for _, name := range []string{"Aarav", "Kabir"} {
		r := f.resident(t, name, models.RoommateQuiet, nil)
		_, err := f.allot(r.ID, room.ID)
		require.NoError(t, err)
	}

	rows, err := NewViewService(f.db).RoomOccupancy()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Occupied)
	assert.Equal(t, 1, rows[0].AvailableSpots)
	require.NotNil(t, rows[0].Occupants)
	assert.Contains(t, *rows[0].Occupants, "Aarav")
	assert.Contains(t, *rows[0].Occupants, "Kabir")
}

func TestMaintenanceDashboardView(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 2, models.RoommateQuiet)
	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)
	_, err := f.allot(r.ID, room.ID)
	require.NoError(t, err)
	_, err = NewMaintenanceService(f.db).Create(MaintenanceInput{ResidentID: ptr(r.ID), IssueDescription: ptr("Broken window")})
	require.NoError(t, err)

	rows, err := NewViewService(f.db).MaintenanceDashboard()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Broken window", rows[0].IssueDescription)
	assert.Equal(t, "pending", rows[0].ComplaintStatus)
	require.NotNil(t, rows[0].RoomNumber)
	assert.Equal(t, "A-101", *rows[0].RoomNumber)
}

func seedLedger(t *testing.T, f *fixture) models.Resident {
	t.Helper()
	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)
	for _, b := range []BillInput{
		{MonthlyRent: ptr(5000.0), DueDate: ptr("2024-09-01")},
		{MonthlyRent: ptr(3000.0), DueDate: ptr("2024-08-01"), Status: ptr("paid")},
		{MonthlyRent: ptr(1000.0), AdditionalCharges: ptr(200.0), DueDate: ptr("2024-07-01"), Status: ptr("overdue")},
	} {
		b.ResidentID = ptr(r.ID)
		_, err := f.bills.Create(b)
		require.NoError(t, err)
	}
	for _, p := range []PaymentInput{
		{Amount: ptr(3000.0), PaymentDate: ptr("2024-08-01"), PaymentStatus: ptr("completed")},
		{Amount: ptr(500.0), PaymentDate: ptr("2024-08-02"), PaymentStatus: ptr("failed")},
	} {
		p.ResidentID = ptr(r.ID)
		_, err := f.payments.Create(p)
		require.NoError(t, err)
	}
	return r
}

func TestFinancialSummaryView(t *testing.T) {
	f := newFixture(t)
	r := seedLedger(t, f)
	f.resident(t, "Zoya", models.RoommateQuiet, nil)

	rows, err := NewViewService(f.db).FinancialSummary()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	got := rows[0]
	assert.Equal(t, r.ID, got.ResidentID)
	assert.Equal(t, int64(3), got.TotalBills)
	assert.Equal(t, 9200.0, got.TotalBilled)
	assert.Equal(t, int64(1), got.PendingBills)
	assert.Equal(t, 5000.0, got.PendingAmount)
	assert.Equal(t, int64(1), got.PaidBills)
	assert.Equal(t, 3000.0, got.PaidAmount)
	assert.Equal(t, int64(1), got.OverdueBills)
	assert.Equal(t, 1200.0, got.OverdueAmount)
	assert.Equal(t, int64(1), got.PaymentCount)
	assert.Equal(t, 3000.0, got.TotalPaid)

	assert.Equal(t, "Zoya", rows[1].ResidentName)
	assert.Zero(t, rows[1].TotalBills)
}

func TestFinancialSummaryXLSX(t *testing.T) {
	f := newFixture(t)
	seedLedger(t, f)

	buf, err := NewExportService(NewViewService(f.db)).FinancialSummaryXLSX()
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(financialSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, financialHeaders, rows[0])
	assert.Equal(t, "Aarav", rows[1][1])
	assert.Equal(t, "3", rows[1][2])
	assert.Equal(t, "9200", rows[1][3])
}
