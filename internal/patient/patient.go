package patient

import (
	"strings"
	"sync"

	"github.com/sportsclinic/injury-clinic/internal/booking"
	"github.com/sportsclinic/injury-clinic/internal/catalog"
	"github.com/sportsclinic/injury-clinic/internal/person"
)

// Defaults applied when an account is created before any profile details are
// collected. The profile form later replaces them.
const (
	DefaultName    = "New Patient"
	DefaultContact = "00000000000"
)

// Patient is the mutable aggregate for one account: identity, profile, and
// three append-only history collections. The username never changes after
// creation; the password is stored verbatim. The history collections are
// mutex-guarded so concurrent sessions for the same account cannot interleave
// an append and lose an entry.
type Patient struct {
	Username string
	Password string
	Profile  person.Profile

	mu           sync.Mutex
	reservations []booking.Appointment
	injuries     []catalog.Injury
	reports      []string
}

// New creates a patient with a fully collected profile.
func New(username, password string, profile person.Profile) *Patient {
	return &Patient{
		Username: username,
		Password: password,
		Profile:  profile,
	}
}

// NewWithDefaults creates a patient from credentials alone, with placeholder
// profile fields. Matches the legacy two-field account format.
func NewWithDefaults(username, password string) *Patient {
	return New(username, password, person.Profile{
		Name:    DefaultName,
		Age:     0,
		Gender:  true,
		Contact: DefaultContact,
		Address: "",
	})
}

// UpdateDetails validates the new profile fields and returns a new Patient
// that keeps the same credentials and carries forward copies of all three
// history collections. On a validation error the receiver is left untouched
// and no partial update happens. The caller is responsible for replacing any
// stored reference with the returned value.
func (p *Patient) UpdateDetails(name string, age int, gender bool, contact, address string) (*Patient, error) {
	profile, err := person.NewProfile(name, age, gender, contact, address)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	updated := New(p.Username, p.Password, profile)
	updated.reservations = append([]booking.Appointment(nil), p.reservations...)
	updated.injuries = append([]catalog.Injury(nil), p.injuries...)
	updated.reports = append([]string(nil), p.reports...)
	return updated, nil
}

// AddReservation appends a committed appointment. A zero-value appointment is
// silently ignored.
func (p *Patient) AddReservation(a booking.Appointment) {
	if a == (booking.Appointment{}) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reservations = append(p.reservations, a)
}

// AddInjury appends a selected catalog injury. A zero-value injury is
// silently ignored.
func (p *Patient) AddInjury(inj catalog.Injury) {
	if inj == (catalog.Injury{}) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.injuries = append(p.injuries, inj)
}

// AddReport appends a report-log entry, ignoring blank text.
func (p *Patient) AddReport(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reports = append(p.reports, text)
}

// Reservations returns the appointment history in append order.
func (p *Patient) Reservations() []booking.Appointment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]booking.Appointment(nil), p.reservations...)
}

// Injuries returns the injury history in append order.
func (p *Patient) Injuries() []catalog.Injury {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]catalog.Injury(nil), p.injuries...)
}

// Reports returns the report log in append order.
func (p *Patient) Reports() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.reports...)
}

// LatestInjury returns the most recently added injury, if any.
func (p *Patient) LatestInjury() (catalog.Injury, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.injuries) == 0 {
		return catalog.Injury{}, false
	}
	return p.injuries[len(p.injuries)-1], true
}

// LatestReservation returns the most recently added appointment, if any.
func (p *Patient) LatestReservation() (booking.Appointment, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.reservations) == 0 {
		return booking.Appointment{}, false
	}
	return p.reservations[len(p.reservations)-1], true
}
