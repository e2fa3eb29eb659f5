package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MessagesScanned = promauto.NewCounter(prometheus.CounterOpts{
	Name: "exobot_messages_scanned_total",
	Help: "Inbound guild messages run through the moderation pipeline.",
})

var ViolationsTripped = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "exobot_violations_tripped_total",
	Help: "Moderation checks that tripped, by check name.",
}, []string{"check"})

var CommandsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "exobot_commands_handled_total",
	Help: "Slash command invocations, by command and outcome.",
}, []string{"command", "status"})

var CommandsDropped = promauto.NewCounter(prometheus.CounterOpts{
	Name: "exobot_commands_dropped_total",
	Help: "Interactions lost because the deferred acknowledgement failed.",
})

var ClassifierVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "exobot_classifier_verdicts_total",
	Help: "Off-topic classifier outcomes (on_topic, off_topic, error).",
}, []string{"verdict"})

var CurrencyAwards = promauto.NewCounter(prometheus.CounterOpts{
	Name: "exobot_currency_awards_total",
	Help: "Activity currency awards granted.",
})

var SyncEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "exobot_sync_events_total",
	Help: "Change notifications consumed, by table.",
}, []string{"table"})
