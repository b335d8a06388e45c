// Package observability provides OpenTelemetry tracing and metrics for
// fillkit.
//
// Everything here is a no-op until the embedding application initializes a
// provider via InitTracer / InitMeter; the fill pipeline records spans and
// metrics unconditionally against the global providers.
package observability
