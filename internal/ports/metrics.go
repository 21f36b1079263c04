package ports

import "time"

type Metrics interface {
	ObservePublish(path string, outcome string, duration time.Duration)
	ObserveVisibilityAttempts(attempts int)
	ObserveTick(loop string, err error, duration time.Duration)
	ObserveCache(hit bool)
}

type NopMetrics struct{}

func (NopMetrics) ObservePublish(string, string, time.Duration) {}
func (NopMetrics) ObserveVisibilityAttempts(int)                {}
func (NopMetrics) ObserveTick(string, error, time.Duration)     {}
func (NopMetrics) ObserveCache(bool)                            {}
