package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/models"
)

func TestAllocateFillsRoom(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 2, models.RoommateQuiet)
	first := f.resident(t, "Aarav", models.RoommateQuiet, nil)
	second := f.resident(t, "Kabir", models.RoommateQuiet, nil)
	third := f.resident(t, "Rohan", models.RoommateQuiet, nil)

	a, err := f.allot(first.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AllotmentActive, a.Status)
	assert.Equal(t, models.RoommateQuiet, a.LifestylePreference)
	require.NotNil(t, a.ResidentName)
	assert.Equal(t, "Aarav", *a.ResidentName)
	require.NotNil(t, a.HostelName)
	assert.Equal(t, "Aravali Hostel", *a.HostelName)

	got := f.reload(t, room.ID)
	assert.Equal(t, 1, got.Occupied)
	assert.Equal(t, models.RoomAvailable, got.Status)

	_, err = f.allot(second.ID, room.ID)
	require.NoError(t, err)
	got = f.reload(t, room.ID)
	assert.Equal(t, 2, got.Occupied)
	assert.Equal(t, models.RoomFull, got.Status)

	_, err = f.allot(third.ID, room.ID)
	require.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, "Room is full", Message(err))
	assert.Equal(t, 2, f.reload(t, room.ID).Occupied)
}

func TestAllocateRejectsSecondActiveAllotment(t *testing.T) {
	f := newFixture(t)
	roomA := f.room(t, aravali, "A-101", 2, models.RoommateQuiet)
	roomB := f.room(t, aravali, "A-102", 2, models.RoommateQuiet)
	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)

	_, err := f.allot(r.ID, roomA.ID)
	require.NoError(t, err)

	_, err = f.allot(r.ID, roomB.ID)
	require.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, "Resident already has an active allotment", Message(err))
	assert.Zero(t, f.reload(t, roomB.ID).Occupied)
}

func TestAllocateValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.allotments.Allocate(AllotmentInput{})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "missing required fields: resident_id, room_id, check_in_date", Message(err))

	room := f.room(t, aravali, "A-101", 1, models.RoommateQuiet)
	_, err = f.allot(999, room.ID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Resident not found", Message(err))

	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)
	_, err = f.allot(r.ID, 999)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Room not found", Message(err))

	_, err = f.allotments.Allocate(AllotmentInput{
		ResidentID:  ptr(r.ID),
		RoomID:      ptr(room.ID),
		CheckInDate: ptr("01/07/2024"),
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCompleteReleasesSeat(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 1, models.RoommateQuiet)
	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)

	a, err := f.allot(r.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomFull, f.reload(t, room.ID).Status)

	done, err := f.allotments.Complete(a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AllotmentCompleted, done.Status)
	assert.NotNil(t, done.CheckOutDate)

	got := f.reload(t, room.ID)
	assert.Zero(t, got.Occupied)
	assert.Equal(t, models.RoomAvailable, got.Status)

	// A second completion is a no-op.
	_, err = f.allotments.Complete(a.ID)
	require.NoError(t, err)
	assert.Zero(t, f.reload(t, room.ID).Occupied)

	active, err := f.allotments.Active(r.ID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestReactivateRechecksCapacity(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 1, models.RoommateQuiet)
	first := f.resident(t, "Aarav", models.RoommateQuiet, nil)
	second := f.resident(t, "Kabir", models.RoommateQuiet, nil)

	a, err := f.allot(first.ID, room.ID)
	require.NoError(t, err)
	_, err = f.allotments.Complete(a.ID)
	require.NoError(t, err)
	_, err = f.allot(second.ID, room.ID)
	require.NoError(t, err)

	_, err = f.allotments.Update(a.ID, AllotmentInput{Status: ptr("active")})
	require.ErrorIs(t, err, ErrCapacity)

	stored, err := f.allotments.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AllotmentCompleted, stored.Status)
	assert.Equal(t, 1, f.reload(t, room.ID).Occupied)
}

func TestReactivateClearsCheckOut(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 2, models.RoommateQuiet)
	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)

	a, err := f.allot(r.ID, room.ID)
	require.NoError(t, err)
	_, err = f.allotments.Complete(a.ID)
	require.NoError(t, err)

	back, err := f.allotments.Update(a.ID, AllotmentInput{Status: ptr("active")})
	require.NoError(t, err)
	assert.Equal(t, models.AllotmentActive, back.Status)
	assert.Nil(t, back.CheckOutDate)
	assert.Equal(t, 1, f.reload(t, room.ID).Occupied)
}

func TestUpdateKeepsOmittedFields(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 2, models.RoommateQuiet)
	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)

	a, err := f.allot(r.ID, room.ID)
	require.NoError(t, err)

	updated, err := f.allotments.Update(a.ID, AllotmentInput{LifestylePreference: ptr("studious")})
	require.NoError(t, err)
	assert.Equal(t, models.RoommateStudious, updated.LifestylePreference)
	assert.Equal(t, models.AllotmentActive, updated.Status)
	assert.True(t, time.Time(a.CheckInDate).Equal(time.Time(updated.CheckInDate)))
	assert.Equal(t, 1, f.reload(t, room.ID).Occupied)

	_, err = f.allotments.Update(999, AllotmentInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteActiveAllotmentFreesSeat(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 1, models.RoommateQuiet)
	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)

	a, err := f.allot(r.ID, room.ID)
	require.NoError(t, err)

	require.NoError(t, f.allotments.Delete(a.ID))
	got := f.reload(t, room.ID)
	assert.Zero(t, got.Occupied)
	assert.Equal(t, models.RoomAvailable, got.Status)

	assert.ErrorIs(t, f.allotments.Delete(a.ID), ErrNotFound)
}

func TestMaintenanceStatusSurvivesRecount(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 2, models.RoommateQuiet)
	_, err := f.rooms.Update(room.ID, RoomInput{Status: ptr("maintenance")})
	require.NoError(t, err)

	r := f.resident(t, "Aarav", models.RoommateQuiet, nil)
	a, err := f.allot(r.ID, room.ID)
	require.NoError(t, err)

	got := f.reload(t, room.ID)
	assert.Equal(t, 1, got.Occupied)
	assert.Equal(t, models.RoomMaintenance, got.Status)

	_, err = f.allotments.Complete(a.ID)
	require.NoError(t, err)
	got = f.reload(t, room.ID)
	assert.Zero(t, got.Occupied)
	assert.Equal(t, models.RoomMaintenance, got.Status)
}

func TestConcurrentAllocationsForLastSeat(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, aravali, "A-101", 1, models.RoommateQuiet)

	const contenders = 5
	residents := make([]models.Resident, contenders)
	for i := range residents {
		residents[i] = f.resident(t, "Contender", models.RoommateQuiet, nil)
	}

	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := range residents {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.allot(residents[i].ID, room.ID)
		}(i)
	}
	wg.Wait()

	var ok, full int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrCapacity):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, contenders-1, full)

	got := f.reload(t, room.ID)
	assert.Equal(t, 1, got.Occupied)
	assert.Equal(t, models.RoomFull, got.Status)
	assert.Equal(t, int64(1), f.count(t, &models.Allotment{}, "room_id = ? AND status = ?", room.ID, models.AllotmentActive))
}

func TestSelectRoom(t *testing.T) {
	f := newFixture(t)
	quietRoom := f.room(t, aravali, "A-101", 2, models.RoommateQuiet)
	jollyRoom := f.room(t, aravali, "A-102", 2, models.RoommateJolly)
	otherHostel := f.room(t, nilgiri, "N-101", 2, models.RoommateQuiet)
	closed := f.room(t, aravali, "A-103", 2, models.RoommateQuiet)
	_, err := f.rooms.Update(closed.ID, RoomInput{Status: ptr("maintenance")})
	require.NoError(t, err)

	r := f.resident(t, "Aarav", models.RoommateQuiet, ptr(aravali))

	_, err = f.allotments.SelectRoom(r.ID, jollyRoom.ID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.allotments.SelectRoom(r.ID, otherHostel.ID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.allotments.SelectRoom(r.ID, closed.ID)
	assert.ErrorIs(t, err, ErrCapacity)

	_, err = f.allotments.SelectRoom(r.ID, 0)
	assert.ErrorIs(t, err, ErrValidation)

	a, err := f.allotments.SelectRoom(r.ID, quietRoom.ID)
	require.NoError(t, err)
	assert.Equal(t, quietRoom.ID, a.RoomID)
	assert.Equal(t, models.AllotmentActive, a.Status)
	assert.Equal(t, 1, f.reload(t, quietRoom.ID).Occupied)
}

func TestNewHostelFillsUp(t *testing.T) {
	f := newFixture(t)
	h, err := f.hostels.Create(HostelInput{HostelName: ptr("Test House"), Location: ptr("X")})
	require.NoError(t, err)
	room := f.room(t, h.ID, "R", 2, models.RoommateQuiet)
	a := f.resident(t, "A", models.RoommateQuiet, nil)
	b := f.resident(t, "B", models.RoommateQuiet, nil)
	c := f.resident(t, "C", models.RoommateQuiet, nil)

	_, err = f.allot(a.ID, room.ID)
	require.NoError(t, err)
	got := f.reload(t, room.ID)
	assert.Equal(t, 1, got.Occupied)
	assert.Equal(t, models.RoomAvailable, got.Status)

	_, err = f.allot(b.ID, room.ID)
	require.NoError(t, err)
	got = f.reload(t, room.ID)
	assert.Equal(t, 2, got.Occupied)
	assert.Equal(t, models.RoomFull, got.Status)

	_, err = f.allot(c.ID, room.ID)
	require.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, 2, f.reload(t, room.ID).Occupied)
	assert.Zero(t, f.count(t, &models.Allotment{}, "resident_id = ?", c.ID))
}
