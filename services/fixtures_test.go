package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hostel-backend/models"
	"hostel-backend/testutil"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	db         *gorm.DB
	hostels    *HostelService
	rooms      *RoomService
	residents  *ResidentService
	allotments *AllotmentService
	bills      *BillService
	payments   *PaymentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	return &fixture{
		db:         db,
		hostels:    NewHostelService(db),
		rooms:      NewRoomService(db),
		residents:  NewResidentService(db),
		allotments: NewAllotmentService(db),
		bills:      NewBillService(db),
		payments:   NewPaymentService(db),
	}
}

// Seeded hostel ids.
const (
	aravali uint = 1
	nilgiri uint = 2
)

func (f *fixture) room(t *testing.T, hostelID uint, number string, capacity int, roommate models.RoommateType) models.Room {
	t.Helper()
	room, err := f.rooms.Create(RoomInput{
		HostelID:     ptr(hostelID),
		RoomNumber:   ptr(number),
		Capacity:     ptr(capacity),
		RoommateType: ptr(string(roommate)),
	})
	require.NoError(t, err)
	return room
}

var residentSeq int

func (f *fixture) resident(t *testing.T, name string, roommate models.RoommateType, hostelID *uint) models.Resident {
	t.Helper()
	residentSeq++
	r, err := f.residents.Create(ResidentInput{
		Name:          ptr(name),
		Gender:        ptr("male"),
		ContactNumber: ptr(fmt.Sprintf("98%08d", residentSeq)),
		Email:         ptr(fmt.Sprintf("resident%d@example.com", residentSeq)),
		HostelID:      hostelID,
		RoommateType:  ptr(string(roommate)),
	})
	require.NoError(t, err)
	return r
}

func (f *fixture) allot(residentID, roomID uint) (models.Allotment, error) {
	return f.allotments.Allocate(AllotmentInput{
		ResidentID:  ptr(residentID),
		RoomID:      ptr(roomID),
		CheckInDate: ptr("2024-07-01"),
	})
}

func (f *fixture) reload(t *testing.T, roomID uint) models.Room {
	t.Helper()
	room, err := f.rooms.Get(roomID)
	require.NoError(t, err)
	return room
}

func (f *fixture) count(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
