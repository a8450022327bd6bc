package api

import (
	"github.com/google/uuid"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ProfileRequest struct {
	Name    string `json:"name" validate:"required"`
	Age     int    `json:"age"`
	Gender  bool   `json:"gender"`
	Contact string `json:"contact" validate:"required"`
	Address string `json:"address"`
}

type ProfileResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
}

type PatientResponse struct {
	ProfileResponse
	Appointments []AppointmentResponse `json:"appointments"`
	Injuries     []InjuryResponse      `json:"injuries"`
	Reports      []string              `json:"reports"`
}

type CreateAppointmentRequest struct {
	Doctor  string `json:"doctor" validate:"required"`
	Weekday string `json:"weekday" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Note    string `json:"note"`
}

type AppointmentResponse struct {
	ID      uuid.UUID `json:"id"`
	Doctor  string    `json:"doctor"`
	Weekday string    `json:"weekday"`
	Time    string    `json:"time"`
	Note    string    `json:"note,omitempty"`
}

type RecordInjuryRequest struct {
	Type string `json:"type" validate:"required"`
}

type InjuryResponse struct {
	Type        string `json:"type"`
	BodyPart    string `json:"body_part"`
	Movable     bool   `json:"movable"`
	Description string `json:"description"`
}

type TreatmentResponse struct {
	InjuryType string `json:"injury_type"`
	Suggestion string `json:"suggestion"`
}

type DoctorResponse struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type AvailabilityResponse struct {
	Doctor    string   `json:"doctor"`
	Weekday   string   `json:"weekday"`
	FreeSlots []string `json:"free_slots"`
}

type GenerateReportRequest struct {
	Sport string `json:"sport"`
}

type ReportResponse struct {
	Report string `json:"report"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
