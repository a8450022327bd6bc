package clinic

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsclinic/injury-clinic/internal/booking"
	"github.com/sportsclinic/injury-clinic/internal/person"
	"github.com/sportsclinic/injury-clinic/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "accounts.txt"), zerolog.Nop())
	require.NoError(t, st.Load())
	return NewService(st, booking.NewRegistry(), zerolog.Nop(), nil)
}

func TestSignUpAndLogin(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)
	assert.Equal(t, "omar", p.Username)

	got, err := svc.Login("omar", "secret")
	require.NoError(t, err)
	assert.Equal(t, "omar", got.Username)

	_, err = svc.Login("omar", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpRejectsDuplicateUsername(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)

	_, err = svc.SignUp("omar", "other")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile("omar", "Omar Hassan", 23, true, "01234567890", "12 Nile St")
	require.NoError(t, err)
	assert.Equal(t, "Omar Hassan", updated.Profile.Name)

	stored, err := svc.GetPatient("omar")
	require.NoError(t, err)
	assert.Equal(t, "Omar Hassan", stored.Profile.Name)
}

func TestUpdateProfileNegativeAgeBlocksAction(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)

	_, err = svc.UpdateProfile("omar", "Omar Hassan", -1, true, "01234567890", "")
	assert.ErrorIs(t, err, person.ErrNegativeAge)

	stored, err := svc.GetPatient("omar")
	require.NoError(t, err)
	assert.Equal(t, "New Patient", stored.Profile.Name)
}

func TestScheduleAppointment(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)

	appt, err := svc.ScheduleAppointment("omar", "Dr. Maiada", booking.Sunday, booking.Slot430PM, "knee pain")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Maiada", appt.DoctorName)
	assert.Equal(t, "omar", appt.PatientUsername)
	assert.NotEqual(t, appt.ID.String(), "00000000-0000-0000-0000-000000000000")

	p, err := svc.GetPatient("omar")
	require.NoError(t, err)
	require.Len(t, p.Reservations(), 1)

	free, err := svc.Availability("Dr. Maiada", booking.Sunday)
	require.NoError(t, err)
	assert.NotContains(t, free, booking.Slot430PM)
	assert.Contains(t, free, booking.Slot630PM)
}

func TestScheduleAppointmentConflict(t *testing.T) {
	svc := newTestService(t)
	for _, u := range []string{"omar", "nour"} {
		_, err := svc.SignUp(u, "secret")
		require.NoError(t, err)
	}

	_, err := svc.ScheduleAppointment("omar", "Dr. Maiada", booking.Sunday, booking.Slot430PM, "")
	require.NoError(t, err)

	_, err = svc.ScheduleAppointment("nour", "Dr. Maiada", booking.Sunday, booking.Slot430PM, "")
	assert.ErrorIs(t, err, booking.ErrSlotTaken)

	p, err := svc.GetPatient("nour")
	require.NoError(t, err)
	assert.Empty(t, p.Reservations(), "a rejected booking must not reach the patient history")
}

func TestScheduleAppointmentValidatesInputs(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)

	_, err = svc.ScheduleAppointment("omar", "Dr. Nobody", booking.Sunday, booking.Slot430PM, "")
	assert.ErrorIs(t, err, ErrUnknownDoctor)

	_, err = svc.ScheduleAppointment("omar", "Dr. Maiada", booking.Sunday, "5:00 PM", "")
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = svc.ScheduleAppointment("omar", "Dr. Maiada", booking.Weekday(9), booking.Slot430PM, "")
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	_, err = svc.ScheduleAppointment("ghost", "Dr. Maiada", booking.Sunday, booking.Slot430PM, "")
	assert.ErrorIs(t, err, store.ErrPatientNotFound)
}

func TestConcurrentSchedulingAdmitsOneWinner(t *testing.T) {
	svc := newTestService(t)

	const patients = 12
	usernames := make([]string, patients)
	for i := range usernames {
		usernames[i] = string(rune('a'+i)) + "user"
		_, err := svc.SignUp(usernames[i], "secret")
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for _, u := range usernames {
		wg.Add(1)
		go func(username string) {
			defer wg.Done()
			_, err := svc.ScheduleAppointment(username, "Dr. Omar Tamer", booking.Thursday, booking.Slot1000PM, "")
			if err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(u)
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}

func TestConcurrentRequestsForOneAccountKeepFullHistory(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)

	const requests = 16
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordInjury("omar", "ACL Tear")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := svc.GetPatient("omar")
	require.NoError(t, err)
	assert.Len(t, p.Injuries(), requests)
}

func TestRecordInjury(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)

	inj, err := svc.RecordInjury("omar", "ACL Tear")
	require.NoError(t, err)
	assert.Equal(t, "ACL Tear", inj.Type)

	_, err = svc.RecordInjury("omar", "Made Up Injury")
	assert.ErrorIs(t, err, ErrUnknownInjury)

	p, err := svc.GetPatient("omar")
	require.NoError(t, err)
	assert.Len(t, p.Injuries(), 1)
}

func TestGenerateReportRequiresInjuryAndReservation(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)

	_, err = svc.GenerateReport("omar", "")
	assert.ErrorIs(t, err, ErrReportUnavailable)

	_, err = svc.RecordInjury("omar", "ACL Tear")
	require.NoError(t, err)

	_, err = svc.GenerateReport("omar", "")
	assert.ErrorIs(t, err, ErrReportUnavailable)
}

func TestGenerateReport(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)
	_, err = svc.UpdateProfile("omar", "Omar Hassan", 23, true, "01234567890", "")
	require.NoError(t, err)

	_, err = svc.RecordInjury("omar", "ACL Tear")
	require.NoError(t, err)
	_, err = svc.ScheduleAppointment("omar", "Dr. Maiada", booking.Sunday, booking.Slot430PM, "")
	require.NoError(t, err)

	text, err := svc.GenerateReport("omar", "Football")
	require.NoError(t, err)

	assert.Contains(t, text, "Omar Hassan")
	assert.Contains(t, text, "ACL Tear")
	assert.Contains(t, text, "Stop playing immediately")
	assert.Contains(t, text, "Selected Sport: Football")
	assert.Contains(t, text, "Dr. Maiada")

	p, err := svc.GetPatient("omar")
	require.NoError(t, err)
	require.Len(t, p.Reports(), 1)
	assert.Contains(t, p.Reports()[0], "Generated report for ACL Tear on Sunday at 4:30 PM")
}

func TestGenerateReportUnknownSport(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SignUp("omar", "secret")
	require.NoError(t, err)
	_, err = svc.RecordInjury("omar", "ACL Tear")
	require.NoError(t, err)
	_, err = svc.ScheduleAppointment("omar", "Dr. Maiada", booking.Sunday, booking.Slot430PM, "")
	require.NoError(t, err)

	_, err = svc.GenerateReport("omar", "Cricket")
	assert.ErrorIs(t, err, ErrUnknownSport)
}

func TestAvailabilityUnknownDoctor(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Availability("Dr. Nobody", booking.Sunday)
	assert.ErrorIs(t, err, ErrUnknownDoctor)
}

func TestAvailabilityInvalidWeekday(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Availability("Dr. Maiada", booking.Weekday(9))
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}
