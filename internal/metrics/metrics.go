package metrics

import "github.com/prometheus/client_golang/prometheus"

// ClinicMetrics exposes counters for the booking and reporting flows.
type ClinicMetrics struct {
	bookingsTotal *prometheus.CounterVec
	signupsTotal  prometheus.Counter
	reportsTotal  prometheus.Counter
	slotsOccupied prometheus.GaugeFunc
}

// New registers the clinic collectors. occupiedFn feeds the slot-occupancy
// gauge; pass the registry's BookedCount.
func New(reg prometheus.Registerer, occupiedFn func() float64) *ClinicMetrics {
	m := &ClinicMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "booking",
			Name:      "attempts_total",
			Help:      "Booking attempts by doctor and outcome",
		}, []string{"doctor", "status"}),
		signupsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "accounts",
			Name:      "signups_total",
			Help:      "Successful account registrations",
		}),
		reportsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "reports",
			Name:      "generated_total",
			Help:      "Generated medical reports",
		}),
	}
	m.slotsOccupied = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "clinic",
		Subsystem: "booking",
		Name:      "slots_occupied",
		Help:      "Currently occupied appointment slots",
	}, occupiedFn)

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.signupsTotal, m.reportsTotal, m.slotsOccupied)
	return m
}

func (m *ClinicMetrics) ObserveBooking(doctor, status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(doctor, status).Inc()
}

func (m *ClinicMetrics) ObserveSignup() {
	if m == nil {
		return
	}
	m.signupsTotal.Inc()
}

func (m *ClinicMetrics) ObserveReport() {
	if m == nil {
		return
	}
	m.reportsTotal.Inc()
}
