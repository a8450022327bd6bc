package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sportsclinic/injury-clinic/internal/auth"
	"github.com/sportsclinic/injury-clinic/internal/booking"
	"github.com/sportsclinic/injury-clinic/internal/catalog"
	"github.com/sportsclinic/injury-clinic/internal/clinic"
	"github.com/sportsclinic/injury-clinic/internal/config"
	"github.com/sportsclinic/injury-clinic/internal/patient"
	"github.com/sportsclinic/injury-clinic/internal/person"
	"github.com/sportsclinic/injury-clinic/internal/store"
)

func appointmentResponse(a booking.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:      a.ID,
		Doctor:  a.DoctorName,
		Weekday: a.Weekday.String(),
		Time:    string(a.Time),
		Note:    a.Note,
	}
}

func injuryResponse(inj catalog.Injury) InjuryResponse {
	return InjuryResponse{
		Type:        inj.Type,
		BodyPart:    inj.BodyPart.String(),
		Movable:     inj.Movable,
		Description: inj.Description,
	}
}

func patientResponse(p *patient.Patient) PatientResponse {
	resp := PatientResponse{
		ProfileResponse: ProfileResponse{
			Username: p.Username,
			Name:     p.Profile.Name,
			Age:      p.Profile.Age,
			Gender:   p.Profile.GenderLabel(),
			Contact:  p.Profile.Contact,
			Address:  p.Profile.Address,
		},
		Appointments: []AppointmentResponse{},
		Injuries:     []InjuryResponse{},
		Reports:      p.Reports(),
	}
	for _, a := range p.Reservations() {
		resp.Appointments = append(resp.Appointments, appointmentResponse(a))
	}
	for _, inj := range p.Injuries() {
		resp.Injuries = append(resp.Injuries, injuryResponse(inj))
	}
	if resp.Reports == nil {
		resp.Reports = []string{}
	}
	return resp
}

func signupHandler(svc *clinic.Service, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		p, err := svc.SignUp(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, store.ErrUsernameTaken) {
				writeError(w, http.StatusConflict, "username_taken", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		token, err := auth.GenerateToken(p.Username, cfg.JWTSecret, cfg.JWTTTL)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, TokenResponse{Token: token})
	}
}

func loginHandler(svc *clinic.Service, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		p, err := svc.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, clinic.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		token, err := auth.GenerateToken(p.Username, cfg.JWTSecret, cfg.JWTTTL)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}

func getMeHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetPatient(GetUsername(r.Context()))
		if err != nil {
			handleLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, patientResponse(p))
	}
}

func updateProfileHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProfileRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		p, err := svc.UpdateProfile(GetUsername(r.Context()), req.Name, req.Age, req.Gender, req.Contact, req.Address)
		if err != nil {
			switch {
			case errors.Is(err, person.ErrNegativeAge):
				writeError(w, http.StatusUnprocessableEntity, "negative_age", err.Error())
			case errors.Is(err, person.ErrMissingContact):
				writeError(w, http.StatusUnprocessableEntity, "missing_contact", err.Error())
			case errors.Is(err, store.ErrPatientNotFound):
				writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, patientResponse(p))
	}
}

func listDoctorsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctors := svc.Doctors()
		resp := make([]DoctorResponse, 0, len(doctors))
		for _, d := range doctors {
			resp = append(resp, DoctorResponse{Name: d.Profile.Name, Specialty: d.Specialty})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func listSportsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sports := svc.Sports()
		names := make([]string, 0, len(sports))
		for _, s := range sports {
			names = append(names, s.Name)
		}
		writeJSON(w, http.StatusOK, names)
	}
}

func listInjuriesHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter *catalog.BodyPart
		if q := r.URL.Query().Get("body_part"); q != "" {
			part, err := catalog.ParseBodyPart(q)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_body_part", err.Error())
				return
			}
			filter = &part
		}

		injuries := svc.Injuries(filter)
		resp := make([]InjuryResponse, 0, len(injuries))
		for _, inj := range injuries {
			resp = append(resp, injuryResponse(inj))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func treatmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("injury")
		if name == "" {
			writeError(w, http.StatusBadRequest, "missing_injury", "injury query parameter required")
			return
		}
		t := catalog.TreatmentFor(name)
		writeJSON(w, http.StatusOK, TreatmentResponse{InjuryType: t.InjuryType, Suggestion: t.Suggestion})
	}
}

func availabilityHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctor := r.URL.Query().Get("doctor")
		dayStr := r.URL.Query().Get("weekday")
		if doctor == "" || dayStr == "" {
			writeError(w, http.StatusBadRequest, "missing_query", "doctor and weekday query parameters required")
			return
		}

		day, err := booking.ParseWeekday(dayStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_weekday", err.Error())
			return
		}

		slots, err := svc.Availability(doctor, day)
		if err != nil {
			switch {
			case errors.Is(err, clinic.ErrUnknownDoctor):
				writeError(w, http.StatusNotFound, "unknown_doctor", err.Error())
			case errors.Is(err, clinic.ErrInvalidWeekday):
				writeError(w, http.StatusBadRequest, "invalid_weekday", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		free := make([]string, 0, len(slots))
		for _, s := range slots {
			free = append(free, string(s))
		}
		writeJSON(w, http.StatusOK, AvailabilityResponse{Doctor: doctor, Weekday: day.String(), FreeSlots: free})
	}
}

func createAppointmentHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAppointmentRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		day, err := booking.ParseWeekday(req.Weekday)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_weekday", err.Error())
			return
		}

		appt, err := svc.ScheduleAppointment(GetUsername(r.Context()), req.Doctor, day, booking.TimeSlot(req.Time), req.Note)
		if err != nil {
			handleScheduleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, appointmentResponse(appt))
	}
}

func recordInjuryHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordInjuryRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		inj, err := svc.RecordInjury(GetUsername(r.Context()), req.Type)
		if err != nil {
			switch {
			case errors.Is(err, clinic.ErrUnknownInjury):
				writeError(w, http.StatusNotFound, "unknown_injury", err.Error())
			case errors.Is(err, store.ErrPatientNotFound):
				writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		writeJSON(w, http.StatusCreated, injuryResponse(inj))
	}
}

func generateReportHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateReportRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		text, err := svc.GenerateReport(GetUsername(r.Context()), req.Sport)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ReportResponse{Report: text})
	}
}

func reportHTMLHandler(svc *clinic.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		html, err := svc.GenerateReportHTML(GetUsername(r.Context()), r.URL.Query().Get("sport"))
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(html)); err != nil {
			logger.Error().Err(err).Msg("write html report")
		}
	}
}

func handleLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrPatientNotFound) {
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
}

func handleScheduleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrPatientNotFound):
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
	case errors.Is(err, clinic.ErrUnknownDoctor):
		writeError(w, http.StatusNotFound, "unknown_doctor", err.Error())
	case errors.Is(err, clinic.ErrInvalidTimeSlot):
		writeError(w, http.StatusBadRequest, "invalid_time_slot", err.Error())
	case errors.Is(err, clinic.ErrInvalidWeekday):
		writeError(w, http.StatusBadRequest, "invalid_weekday", err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		writeError(w, http.StatusConflict, "slot_taken", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func handleReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrPatientNotFound):
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
	case errors.Is(err, clinic.ErrReportUnavailable):
		writeError(w, http.StatusConflict, "report_unavailable", err.Error())
	case errors.Is(err, clinic.ErrUnknownSport):
		writeError(w, http.StatusBadRequest, "unknown_sport", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
