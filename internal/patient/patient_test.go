package patient

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsclinic/injury-clinic/internal/booking"
	"github.com/sportsclinic/injury-clinic/internal/catalog"
	"github.com/sportsclinic/injury-clinic/internal/person"
)

func testAppointment(slot booking.TimeSlot) booking.Appointment {
	return booking.Appointment{
		ID:              uuid.New(),
		Weekday:         booking.Sunday,
		Time:            slot,
		DoctorName:      "Dr. Maiada",
		PatientUsername: "omar",
	}
}

func TestNewWithDefaults(t *testing.T) {
	p := NewWithDefaults("omar", "secret")

	assert.Equal(t, "omar", p.Username)
	assert.Equal(t, "secret", p.Password)
	assert.Equal(t, DefaultName, p.Profile.Name)
	assert.Equal(t, 0, p.Profile.Age)
	assert.True(t, p.Profile.Gender)
	assert.Equal(t, DefaultContact, p.Profile.Contact)
	assert.Empty(t, p.Reservations())
	assert.Empty(t, p.Injuries())
	assert.Empty(t, p.Reports())
}

func TestUpdateDetailsPreservesHistory(t *testing.T) {
	p := NewWithDefaults("omar", "secret")

	p.AddReservation(testAppointment(booking.Slot430PM))
	p.AddReservation(testAppointment(booking.Slot630PM))
	inj, _ := catalog.ByType("ACL Tear")
	p.AddInjury(inj)
	p.AddReport("first visit")

	updated, err := p.UpdateDetails("Omar Hassan", 23, true, "01234567890", "12 Nile St")
	require.NoError(t, err)

	assert.Equal(t, "omar", updated.Username)
	assert.Equal(t, "secret", updated.Password)
	assert.Equal(t, "Omar Hassan", updated.Profile.Name)
	assert.Equal(t, 23, updated.Profile.Age)

	require.Len(t, updated.Reservations(), 2)
	assert.Equal(t, p.Reservations(), updated.Reservations())
	assert.Equal(t, p.Injuries(), updated.Injuries())
	assert.Equal(t, []string{"first visit"}, updated.Reports())
}

func TestUpdateDetailsNegativeAgeLeavesPatientUntouched(t *testing.T) {
	p := NewWithDefaults("omar", "secret")
	p.AddReport("first visit")

	updated, err := p.UpdateDetails("Omar Hassan", -5, true, "01234567890", "")

	assert.ErrorIs(t, err, person.ErrNegativeAge)
	assert.Nil(t, updated)
	assert.Equal(t, DefaultName, p.Profile.Name)
	assert.Equal(t, []string{"first visit"}, p.Reports())
}

func TestUpdateDetailsCopiesDoNotAlias(t *testing.T) {
	p := NewWithDefaults("omar", "secret")
	p.AddReport("first visit")

	updated, err := p.UpdateDetails("Omar Hassan", 23, true, "01234567890", "")
	require.NoError(t, err)

	updated.AddReport("second visit")

	assert.Len(t, p.Reports(), 1)
	assert.Len(t, updated.Reports(), 2)
}

func TestAddIgnoresZeroValues(t *testing.T) {
	p := NewWithDefaults("omar", "secret")

	p.AddReservation(booking.Appointment{})
	p.AddInjury(catalog.Injury{})

	assert.Empty(t, p.Reservations())
	assert.Empty(t, p.Injuries())
}

func TestAddReportIgnoresBlankText(t *testing.T) {
	p := NewWithDefaults("omar", "secret")

	p.AddReport("")
	p.AddReport("   ")
	p.AddReport("\t\n")
	p.AddReport("real entry")

	assert.Equal(t, []string{"real entry"}, p.Reports())
}

func TestConcurrentAppendsLoseNothing(t *testing.T) {
	p := NewWithDefaults("omar", "secret")
	inj, _ := catalog.ByType("ACL Tear")

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p.AddInjury(inj)
			p.AddReservation(testAppointment(booking.Slot430PM))
			p.AddReport(fmt.Sprintf("entry %d", i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, p.Injuries(), writers)
	assert.Len(t, p.Reservations(), writers)
	assert.Len(t, p.Reports(), writers)
}

func TestLatestAccessors(t *testing.T) {
	p := NewWithDefaults("omar", "secret")

	_, ok := p.LatestInjury()
	assert.False(t, ok)
	_, ok = p.LatestReservation()
	assert.False(t, ok)

	first, _ := catalog.ByType("ACL Tear")
	second, _ := catalog.ByType("Meniscus Tear")
	p.AddInjury(first)
	p.AddInjury(second)

	latest, ok := p.LatestInjury()
	require.True(t, ok)
	assert.Equal(t, "Meniscus Tear", latest.Type)

	a := testAppointment(booking.Slot830PM)
	p.AddReservation(a)
	latestAppt, ok := p.LatestReservation()
	require.True(t, ok)
	assert.Equal(t, a.ID, latestAppt.ID)
}
