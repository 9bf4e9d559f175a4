package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Example_basicUsage demonstrates recording pipeline runs into a registry.
func Example_basicUsage() {
	// Create a separate registry for this example
	testRegistry := prometheus.NewRegistry()
	registry := NewRegistry(testRegistry)

	// Record two completed runs of the same pipeline
	registry.ObserveRun("ingest", 80, 20, 5*time.Millisecond, 80)
	registry.ObserveRun("ingest", 90, 10, 4*time.Millisecond, 90)

	fmt.Println("Runs recorded successfully")

	// Output:
	// Runs recorded successfully
}

// Example_customRegistry demonstrates using a custom Prometheus registry.
func Example_customRegistry() {
	customRegistry := prometheus.NewRegistry()

	config := Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	registry := NewRegistry(config.Registry)
	registry.ObserveScheduledRun("nightly", nil)

	fmt.Println("Custom registry in use")

	// Output:
	// Custom registry in use
}
