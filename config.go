package qstab

// Config carries the tunables of a Simulator.
type Config struct {
	// ChopThreshold is the absolute tolerance used to classify a magic
	// phase as the canonical pi/4 rotation.
	ChopThreshold float64
	// Tracer receives the observability trace points.
	Tracer Tracer
}

func NewConfig() *Config {
	return &Config{
		ChopThreshold: 1e-8,
		Tracer:        LogTracer{},
	}
}
