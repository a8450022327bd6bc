package booking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryStartsEmpty(t *testing.T) {
	r := NewRegistry()

	for _, d := range Doctors() {
		for _, day := range Weekdays() {
			for _, slot := range TimeSlots() {
				assert.True(t, r.IsFree(d.Profile.Name, day, slot))
			}
		}
	}
	assert.Equal(t, 0, r.BookedCount())
}

func TestBookMarksSlotTaken(t *testing.T) {
	r := NewRegistry()

	r.Book("Dr. Maiada", Sunday, Slot430PM)

	assert.False(t, r.IsFree("Dr. Maiada", Sunday, Slot430PM))
	assert.True(t, r.IsFree("Dr. Maiada", Sunday, Slot630PM))
	assert.True(t, r.IsFree("Dr. Maiada", Tuesday, Slot430PM))
	assert.True(t, r.IsFree("Dr. Ahmed Mo'men", Sunday, Slot430PM))
}

func TestBookedSlotStaysTakenAfterOtherBookings(t *testing.T) {
	r := NewRegistry()

	r.Book("Dr. Maiada", Sunday, Slot430PM)
	for _, d := range Doctors() {
		r.Book(d.Profile.Name, Thursday, Slot1000PM)
	}

	assert.False(t, r.IsFree("Dr. Maiada", Sunday, Slot430PM))
}

func TestBookIsIdempotent(t *testing.T) {
	r := NewRegistry()

	r.Book("Dr. Omar Tamer", Tuesday, Slot830PM)
	r.Book("Dr. Omar Tamer", Tuesday, Slot830PM)

	assert.Equal(t, 1, r.BookedCount())
	assert.False(t, r.IsFree("Dr. Omar Tamer", Tuesday, Slot830PM))
}

func TestUnknownDoctorReadsAsFree(t *testing.T) {
	r := NewRegistry()
	r.Book("Dr. Maiada", Sunday, Slot430PM)

	assert.True(t, r.IsFree("Dr. Nobody", Sunday, Slot430PM))
}

func TestTryBookRejectsTakenSlot(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.TryBook("Dr. Shehab Wael", Sunday, Slot630PM))
	err := r.TryBook("Dr. Shehab Wael", Sunday, Slot630PM)

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, r.BookedCount())
}

func TestTryBookAdmitsSingleWinnerUnderContention(t *testing.T) {
	r := NewRegistry()

	const goroutines = 64
	var wins int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.TryBook("Dr. Maiada", Thursday, Slot430PM); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins)
	assert.Equal(t, 1, r.BookedCount())
}

func TestFreeSlotsShrinkAsBookingsCommit(t *testing.T) {
	r := NewRegistry()

	require.Len(t, r.FreeSlots("Dr. Maiada", Sunday), 4)

	r.Book("Dr. Maiada", Sunday, Slot630PM)
	free := r.FreeSlots("Dr. Maiada", Sunday)

	assert.Equal(t, []TimeSlot{Slot430PM, Slot830PM, Slot1000PM}, free)
}

func TestFreeSlotsKeepDailyOrder(t *testing.T) {
	r := NewRegistry()

	r.Book("Dr. Maiada", Sunday, Slot430PM)
	r.Book("Dr. Maiada", Sunday, Slot830PM)

	assert.Equal(t, []TimeSlot{Slot630PM, Slot1000PM}, r.FreeSlots("Dr. Maiada", Sunday))
}
