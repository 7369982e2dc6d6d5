// Package metrics exposes Prometheus counters for domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	usersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of user accounts created",
		},
	)

	questionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "questions_created_total",
			Help: "Total number of questions posted",
		},
	)

	questionsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "questions_deleted_total",
			Help: "Total number of questions deleted, including cascaded answers",
		},
	)

	answersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "answers_created_total",
			Help: "Total number of answers posted",
		},
	)
)

// RecordUserRegistered increments the registered-user counter.
func RecordUserRegistered() {
	usersRegisteredTotal.Inc()
}

// RecordQuestionCreated increments the created-question counter.
func RecordQuestionCreated() {
	questionsCreatedTotal.Inc()
}

// RecordQuestionDeleted increments the deleted-question counter.
func RecordQuestionDeleted() {
	questionsDeletedTotal.Inc()
}

// RecordAnswerCreated increments the created-answer counter.
func RecordAnswerCreated() {
	answersCreatedTotal.Inc()
}
