package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupAcceptedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_registry",
		Subsystem: "signup",
		Name:      "accepted_total",
		Help:      "Signups accepted, by activity.",
	}, []string{"activity"})
	signupRejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_registry",
		Subsystem: "signup",
		Name:      "rejected_total",
		Help:      "Signups rejected, by reason.",
	}, []string{"reason"})
	unregisteredCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_registry",
		Subsystem: "unregister",
		Name:      "accepted_total",
		Help:      "Unregistrations accepted, by activity.",
	}, []string{"activity"})
	unregisterRejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_registry",
		Subsystem: "unregister",
		Name:      "rejected_total",
		Help:      "Unregistrations rejected, by reason.",
	}, []string{"reason"})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activity_registry",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Registered participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(
		signupAcceptedCounter,
		signupRejectedCounter,
		unregisteredCounter,
		unregisterRejectedCounter,
		participantsGauge,
	)
}

// RecordSignupAccepted counts a successful signup for the activity.
func RecordSignupAccepted(activity string) {
	signupAcceptedCounter.WithLabelValues(activity).Inc()
}

// RecordSignupRejected counts a rejected signup by reason.
func RecordSignupRejected(reason string) {
	signupRejectedCounter.WithLabelValues(reason).Inc()
}

// RecordUnregistered counts a successful unregistration for the activity.
func RecordUnregistered(activity string) {
	unregisteredCounter.WithLabelValues(activity).Inc()
}

// RecordUnregisterRejected counts a rejected unregistration by reason.
func RecordUnregisterRejected(reason string) {
	unregisterRejectedCounter.WithLabelValues(reason).Inc()
}

// SetParticipants updates the roster size gauge for the activity.
func SetParticipants(activity string, count int) {
	participantsGauge.WithLabelValues(activity).Set(float64(count))
}
