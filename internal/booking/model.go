package booking

import (
	"github.com/google/uuid"

	"github.com/sportsclinic/injury-clinic/internal/person"
)

// TimeSlot is one of the four fixed consultation times. The label text is
// significant: slots are compared by exact string, "4:30 PM" included.
type TimeSlot string

const (
	Slot430PM  TimeSlot = "4:30 PM"
	Slot630PM  TimeSlot = "6:30 PM"
	Slot830PM  TimeSlot = "8:30 PM"
	Slot1000PM TimeSlot = "10:00 PM"
)

// TimeSlots returns the consultation times in daily order.
func TimeSlots() []TimeSlot {
	return []TimeSlot{Slot430PM, Slot630PM, Slot830PM, Slot1000PM}
}

// ValidTimeSlot reports whether the label is one of the four fixed slots.
func ValidTimeSlot(t TimeSlot) bool {
	for _, s := range TimeSlots() {
		if s == t {
			return true
		}
	}
	return false
}

// Doctor is a clinician on the roster. The display name doubles as the
// booking key.
type Doctor struct {
	Profile   person.Profile
	Specialty string
}

var roster = []Doctor{
	{Profile: person.Profile{Name: "Dr. Maiada", Age: 41, Gender: false, Contact: "01000000001", Address: "Clinic, Floor 1"}, Specialty: "Sports Medicine"},
	{Profile: person.Profile{Name: "Dr. Ahmed Mo'men", Age: 38, Gender: true, Contact: "01000000002", Address: "Clinic, Floor 1"}, Specialty: "Orthopedics"},
	{Profile: person.Profile{Name: "Dr. Shehab Wael", Age: 35, Gender: true, Contact: "01000000003", Address: "Clinic, Floor 2"}, Specialty: "Physiotherapy"},
	{Profile: person.Profile{Name: "Dr. Omar Tamer", Age: 44, Gender: true, Contact: "01000000004", Address: "Clinic, Floor 2"}, Specialty: "Sports Medicine"},
}

// Doctors returns the fixed roster in display order.
func Doctors() []Doctor {
	out := make([]Doctor, len(roster))
	copy(out, roster)
	return out
}

// DoctorByName resolves a roster entry by exact display name.
func DoctorByName(name string) (Doctor, bool) {
	for _, d := range roster {
		if d.Profile.Name == name {
			return d, true
		}
	}
	return Doctor{}, false
}

// Appointment is an immutable record of one committed reservation. The
// weekday, time and doctor are never changed after creation; the note may be
// filled in by the patient when booking.
type Appointment struct {
	ID              uuid.UUID
	Weekday         Weekday
	Time            TimeSlot
	DoctorName      string
	PatientUsername string
	Note            string
}
