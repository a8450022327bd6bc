// Package clinic orchestrates the account store, booking registry, catalog
// and report composer on behalf of the interaction shells.
package clinic

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sportsclinic/injury-clinic/internal/booking"
	"github.com/sportsclinic/injury-clinic/internal/catalog"
	"github.com/sportsclinic/injury-clinic/internal/metrics"
	"github.com/sportsclinic/injury-clinic/internal/patient"
	"github.com/sportsclinic/injury-clinic/internal/report"
	"github.com/sportsclinic/injury-clinic/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownDoctor      = errors.New("doctor is not on the roster")
	ErrInvalidTimeSlot    = errors.New("time is not one of the consultation slots")
	ErrInvalidWeekday     = errors.New("day is not a consultation day")
	ErrUnknownInjury      = errors.New("injury is not in the catalog")
	ErrUnknownSport       = errors.New("sport is not offered")
	ErrReportUnavailable  = errors.New("missing injury or appointment data")
)

type Service struct {
	store    *store.Store
	registry *booking.Registry
	log      zerolog.Logger
	metrics  *metrics.ClinicMetrics
}

func NewService(st *store.Store, reg *booking.Registry, log zerolog.Logger, m *metrics.ClinicMetrics) *Service {
	return &Service{
		store:    st,
		registry: reg,
		log:      log,
		metrics:  m,
	}
}

// SignUp registers a new account and persists the store. The username must be
// unused; the password is stored verbatim.
func (s *Service) SignUp(username, password string) (*patient.Patient, error) {
	p := patient.NewWithDefaults(username, password)
	if err := s.store.Add(p); err != nil {
		return nil, err
	}
	if err := s.store.Save(); err != nil {
		return nil, fmt.Errorf("persist accounts: %w", err)
	}
	s.metrics.ObserveSignup()
	s.log.Info().Str("username", username).Msg("account created")
	return p, nil
}

// Login checks credentials by exact match and returns the stored patient.
func (s *Service) Login(username, password string) (*patient.Patient, error) {
	if !s.store.Validate(username, password) {
		return nil, ErrInvalidCredentials
	}
	return s.store.GetByUsername(username)
}

// GetPatient returns the stored patient for a username.
func (s *Service) GetPatient(username string) (*patient.Patient, error) {
	return s.store.GetByUsername(username)
}

// UpdateProfile applies new profile details, replaces the stored patient with
// the updated value, and persists. A validation failure blocks the whole
// action; the stored patient is untouched.
func (s *Service) UpdateProfile(username, name string, age int, gender bool, contact, address string) (*patient.Patient, error) {
	p, err := s.store.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	updated, err := p.UpdateDetails(name, age, gender, contact, address)
	if err != nil {
		return nil, err
	}
	if err := s.store.Update(updated); err != nil {
		return nil, err
	}
	if err := s.store.Save(); err != nil {
		return nil, fmt.Errorf("persist accounts: %w", err)
	}
	return updated, nil
}

// Injuries lists the catalog, optionally filtered by body part.
func (s *Service) Injuries(part *catalog.BodyPart) []catalog.Injury {
	return catalog.ByBodyPart(part)
}

// Doctors lists the fixed roster.
func (s *Service) Doctors() []booking.Doctor {
	return booking.Doctors()
}

// Sports lists the selectable sports.
func (s *Service) Sports() []catalog.Sport {
	return catalog.Sports()
}

// Availability lists the free slots for a doctor on a consultation day.
func (s *Service) Availability(doctorName string, day booking.Weekday) ([]booking.TimeSlot, error) {
	if _, ok := booking.DoctorByName(doctorName); !ok {
		return nil, ErrUnknownDoctor
	}
	if !day.Valid() {
		return nil, ErrInvalidWeekday
	}
	return s.registry.FreeSlots(doctorName, day), nil
}

// ScheduleAppointment reserves a slot and appends the appointment to the
// patient's history, persisting the store afterwards. The reservation commit
// is a single indivisible step: either the slot was free and is now ours, or
// booking.ErrSlotTaken comes back.
func (s *Service) ScheduleAppointment(username, doctorName string, day booking.Weekday, t booking.TimeSlot, note string) (booking.Appointment, error) {
	p, err := s.store.GetByUsername(username)
	if err != nil {
		return booking.Appointment{}, err
	}
	if _, ok := booking.DoctorByName(doctorName); !ok {
		return booking.Appointment{}, ErrUnknownDoctor
	}
	if !day.Valid() {
		return booking.Appointment{}, ErrInvalidWeekday
	}
	if !booking.ValidTimeSlot(t) {
		return booking.Appointment{}, ErrInvalidTimeSlot
	}

	if err := s.registry.TryBook(doctorName, day, t); err != nil {
		s.metrics.ObserveBooking(doctorName, "conflict")
		return booking.Appointment{}, err
	}

	appt := booking.Appointment{
		ID:              uuid.New(),
		Weekday:         day,
		Time:            t,
		DoctorName:      doctorName,
		PatientUsername: username,
		Note:            note,
	}
	p.AddReservation(appt)

	if err := s.store.Save(); err != nil {
		s.log.Error().Err(err).Msg("persist accounts after booking")
	}

	s.metrics.ObserveBooking(doctorName, "booked")
	s.log.Info().
		Str("username", username).
		Str("doctor", doctorName).
		Str("day", day.String()).
		Str("time", string(t)).
		Msg("appointment scheduled")

	return appt, nil
}

// RecordInjury attaches a catalog injury to the patient's history by its
// exact type name.
func (s *Service) RecordInjury(username, injuryType string) (catalog.Injury, error) {
	p, err := s.store.GetByUsername(username)
	if err != nil {
		return catalog.Injury{}, err
	}
	inj, ok := catalog.ByType(injuryType)
	if !ok {
		return catalog.Injury{}, ErrUnknownInjury
	}
	p.AddInjury(inj)
	return inj, nil
}

// GenerateReport composes a summary from the patient's latest injury and
// appointment, records a report-log entry, and persists the store. Both an
// injury and a reservation must exist.
func (s *Service) GenerateReport(username, sportName string) (string, error) {
	p, err := s.store.GetByUsername(username)
	if err != nil {
		return "", err
	}

	in, err := s.reportInput(p, sportName)
	if err != nil {
		return "", err
	}

	text := report.Compose(in)

	p.AddReport(fmt.Sprintf("Generated report for %s on %s at %s",
		in.Injury.Type, in.Appointment.Weekday, in.Appointment.Time))
	if err := s.store.Save(); err != nil {
		s.log.Error().Err(err).Msg("persist accounts after report")
	}

	s.metrics.ObserveReport()
	return text, nil
}

// GenerateReportHTML renders the same summary as HTML without touching the
// report log.
func (s *Service) GenerateReportHTML(username, sportName string) (string, error) {
	p, err := s.store.GetByUsername(username)
	if err != nil {
		return "", err
	}
	in, err := s.reportInput(p, sportName)
	if err != nil {
		return "", err
	}
	return report.ComposeHTML(in)
}

func (s *Service) reportInput(p *patient.Patient, sportName string) (report.Input, error) {
	inj, ok := p.LatestInjury()
	if !ok {
		return report.Input{}, ErrReportUnavailable
	}
	appt, ok := p.LatestReservation()
	if !ok {
		return report.Input{}, ErrReportUnavailable
	}

	in := report.Input{
		Patient:     p,
		Injury:      inj,
		Treatment:   catalog.TreatmentFor(inj.Type),
		Appointment: appt,
	}
	if sportName != "" {
		sport, ok := catalog.SportByName(sportName)
		if !ok {
			return report.Input{}, ErrUnknownSport
		}
		in.Sport = &sport
	}
	return in, nil
}
