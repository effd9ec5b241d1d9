package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "boshprobe"
	subsystem = "executor"

	labelBinary = "binary"
	labelResult = "result"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	commandsExecuted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "commands_total",
		Help:      "number of external commands executed",
		Namespace: namespace,
		Subsystem: subsystem,
	},
		[]string{
			labelBinary,
			labelResult,
		},
	)

	commandDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:      "command_duration_seconds",
		Help:      "wall clock time spent waiting for external commands",
		Namespace: namespace,
		Subsystem: subsystem,
		Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
	},
		[]string{
			labelBinary,
		},
	)
)

func CommandExecuted(binary string, success bool, seconds float64) {
	result := ResultSuccess
	if !success {
		result = ResultFailure
	}
	commandsExecuted.With(prometheus.Labels{
		labelBinary: binary,
		labelResult: result,
	}).Inc()
	commandDuration.With(prometheus.Labels{
		labelBinary: binary,
	}).Observe(seconds)
}

// WriteTextfile dumps all registered metrics in the node exporter textfile format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}

func init() {
	prometheus.MustRegister(commandsExecuted)
	prometheus.MustRegister(commandDuration)
}
