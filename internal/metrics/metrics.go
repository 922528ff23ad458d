package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academiasport_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "academiasport_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academiasport_class_bookings_total",
			Help: "Class booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "academiasport_class_booking_cancellations_total",
			Help: "Total number of class booking cancellations",
		},
	)

	CheckinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "academiasport_checkins_total",
			Help: "Total number of facility check-ins",
		},
	)

	ActiveCheckins = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "academiasport_active_checkins",
			Help: "Members currently checked in",
		},
	)

	VisitDurationMinutes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "academiasport_visit_duration_minutes",
			Help:    "Length of completed visits in minutes",
			Buckets: []float64{15, 30, 45, 60, 90, 120, 180, 240},
		},
	)

	EquipmentReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academiasport_equipment_reservations_total",
			Help: "Equipment reservations by category",
		},
		[]string{"category"},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academiasport_login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academiasport_registrations_total",
			Help: "Member registrations by plan",
		},
		[]string{"plan"},
	)

	WorkoutsLoggedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "academiasport_workouts_logged_total",
			Help: "Total number of workouts logged",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academiasport_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "academiasport_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordBooking counts a booking attempt. outcome is booked, full or duplicate.
func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordCheckin() {
	CheckinsTotal.Inc()
	ActiveCheckins.Inc()
}

func RecordCheckout(durationMinutes int) {
	ActiveCheckins.Dec()
	VisitDurationMinutes.Observe(float64(durationMinutes))
}

func RecordEquipmentReservation(category string) {
	EquipmentReservationsTotal.WithLabelValues(category).Inc()
}

func RecordLoginAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

func RecordRegistration(planID string) {
	RegistrationsTotal.WithLabelValues(planID).Inc()
}

func RecordWorkout() {
	WorkoutsLoggedTotal.Inc()
}

func RecordEmail(status string) {
	EmailsSentTotal.WithLabelValues(status).Inc()
}

func SetEmailQueueLength(n int64) {
	EmailQueueLength.Set(float64(n))
}
