package mocks

import "github.com/stretchr/testify/mock"

// AllowLogging lets every Logger method be called with any message and up to
// maxFields fields without failing expectations.
func AllowLogging(l *Logger, maxFields int) {
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		for n := 0; n <= maxFields; n++ {
			args := make([]interface{}, n+1)
			for i := range args {
				args[i] = mock.Anything
			}
			l.On(method, args...).Maybe()
		}
	}
}

// AllowMetrics accepts every MetricsCollector call.
func AllowMetrics(m *MetricsCollector) {
	m.EXPECT().RecordEvent(mock.Anything).Maybe()
	m.EXPECT().RecordFetch(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.EXPECT().SetActiveScreens(mock.Anything).Maybe()
}
