// Package report renders a human-readable summary of a patient's latest
// injury, its treatment suggestion, and the scheduled appointment.
package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/sportsclinic/injury-clinic/internal/booking"
	"github.com/sportsclinic/injury-clinic/internal/catalog"
	"github.com/sportsclinic/injury-clinic/internal/patient"
)

// Input gathers everything one summary is built from. Sport is optional.
type Input struct {
	Patient     *patient.Patient
	Injury      catalog.Injury
	Treatment   catalog.Treatment
	Appointment booking.Appointment
	Sport       *catalog.Sport
}

func movableLabel(movable bool) string {
	if movable {
		return "Yes/limited"
	}
	return "No"
}

// Compose renders the plain-text summary.
func Compose(in Input) string {
	var b strings.Builder

	fmt.Fprintln(&b, "=== Patient Information ===")
	fmt.Fprintf(&b, "Name: %s\n", in.Patient.Profile.Name)
	fmt.Fprintf(&b, "Age: %d\n", in.Patient.Profile.Age)
	fmt.Fprintf(&b, "Gender: %s\n", in.Patient.Profile.GenderLabel())
	fmt.Fprintf(&b, "Contact: %s\n", in.Patient.Profile.Contact)
	fmt.Fprintf(&b, "Address: %s\n", in.Patient.Profile.Address)

	if in.Sport != nil {
		fmt.Fprintln(&b, "\n=== Sport Information ===")
		fmt.Fprintf(&b, "Selected Sport: %s\n", in.Sport.Name)
	}

	fmt.Fprintln(&b, "\n=== Injury Details ===")
	fmt.Fprintf(&b, "Type: %s\n", in.Injury.Type)
	fmt.Fprintf(&b, "Body Part: %s\n", in.Injury.BodyPart)
	fmt.Fprintf(&b, "Movable: %s\n", movableLabel(in.Injury.Movable))
	fmt.Fprintf(&b, "Description: %s\n", in.Injury.Description)

	fmt.Fprintln(&b, "\n=== Treatment Recommendation ===")
	fmt.Fprintln(&b, in.Treatment.Suggestion)

	fmt.Fprintln(&b, "\n=== Appointment Details ===")
	fmt.Fprintf(&b, "Doctor: %s\n", in.Appointment.DoctorName)
	fmt.Fprintf(&b, "Day: %s\n", in.Appointment.Weekday)
	fmt.Fprintf(&b, "Time: %s\n", in.Appointment.Time)
	if in.Appointment.Note != "" {
		fmt.Fprintf(&b, "Additional Notes: %s\n", in.Appointment.Note)
	}

	return b.String()
}

var htmlTmpl = template.Must(template.New("report").Parse(`<html><body>
<h2>Patient Information</h2>
<p><b>Name:</b> {{.Patient.Profile.Name}}<br>
<b>Age:</b> {{.Patient.Profile.Age}}<br>
<b>Gender:</b> {{.Patient.Profile.GenderLabel}}<br>
<b>Contact:</b> {{.Patient.Profile.Contact}}<br>
<b>Address:</b> {{.Patient.Profile.Address}}</p>
{{if .Sport}}<h2>Sport Information</h2>
<p><b>Selected Sport:</b> {{.Sport.Name}}</p>
{{end}}<h2>Injury Details</h2>
<p><b>Type:</b> {{.Injury.Type}}<br>
<b>Body Part:</b> {{.Injury.BodyPart}}<br>
<b>Movable:</b> {{.MovableLabel}}<br>
<b>Description:</b> {{.Injury.Description}}</p>
<h2>Treatment Recommendation</h2>
<p>{{.Treatment.Suggestion}}</p>
<h2>Appointment Details</h2>
<p><b>Doctor:</b> {{.Appointment.DoctorName}}<br>
<b>Day:</b> {{.Appointment.Weekday}}<br>
<b>Time:</b> {{.Appointment.Time}}</p>
{{if .Appointment.Note}}<p><b>Additional Notes:</b> {{.Appointment.Note}}</p>
{{end}}</body></html>
`))

type htmlData struct {
	Input
	MovableLabel string
}

// ComposeHTML renders the HTML summary. Field values are escaped by the
// template engine.
func ComposeHTML(in Input) (string, error) {
	var b strings.Builder
	data := htmlData{Input: in, MovableLabel: movableLabel(in.Injury.Movable)}
	if err := htmlTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return b.String(), nil
}
