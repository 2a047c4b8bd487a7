package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/models"
)

func TestDashboardOffersOnlyMatchingRooms(t *testing.T) {
	f := newFixture(t)
	portal := NewPortalService(f.db)

	want := f.room(t, aravali, "A-101", 2, models.RoommateStudious)
	f.room(t, aravali, "A-102", 2, models.RoommateSocial)
	f.room(t, nilgiri, "N-101", 2, models.RoommateStudious)
	closed := f.room(t, aravali, "A-103", 2, models.RoommateStudious)
	_, err := f.rooms.Update(closed.ID, RoomInput{Status: ptr("maintenance")})
	require.NoError(t, err)
	full := f.room(t, aravali, "A-104", 1, models.RoommateStudious)
	occupant := f.resident(t, "Kabir", models.RoommateStudious, nil)
	_, err = f.allot(occupant.ID, full.ID)
	require.NoError(t, err)

	r := f.resident(t, "Aarav", models.RoommateStudious, ptr(aravali))

	d, err := portal.Dashboard(r.ID)
	require.NoError(t, err)
	require.Len(t, d.AvailableRooms, 1)
	assert.Equal(t, want.ID, d.AvailableRooms[0].ID)
	assert.Nil(t, d.Room)
	assert.Len(t, d.Hostels, 4)
	assert.Empty(t, d.Bills)

	_, err = portal.Dashboard(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDashboardShowsRecentActivity(t *testing.T) {
	f := newFixture(t)
	portal := NewPortalService(f.db)
	room := f.room(t, aravali, "A-101", 2, models.RoommateQuiet)
	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)

	a, err := portal.SelectRoom(r.ID, RoomSelectionInput{RoomID: ptr(room.ID)})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, err := f.bills.Create(BillInput{ResidentID: ptr(r.ID), MonthlyRent: ptr(5000.0), DueDate: ptr("2024-08-01")})
		require.NoError(t, err)
	}
	_, err = portal.RequestMaintenance(r.ID, MaintenanceInput{IssueDescription: ptr("No hot water")})
	require.NoError(t, err)
	_, err = portal.RequestLaundry(r.ID, LaundryInput{})
	require.NoError(t, err)

	d, err := portal.Dashboard(r.ID)
	require.NoError(t, err)
	require.NotNil(t, d.Room)
	assert.Equal(t, a.ID, d.Room.ID)
	assert.Len(t, d.Bills, dashboardRecent)
	assert.Len(t, d.Maintenance, 1)
	assert.Len(t, d.Laundry, 1)
	assert.Len(t, d.AvailableRooms, 1)

	_, err = portal.RequestMaintenance(999, MaintenanceInput{IssueDescription: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = portal.SelectRoom(r.ID, RoomSelectionInput{})
	assert.ErrorIs(t, err, ErrValidation)
}
