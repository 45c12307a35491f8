// Package export fans sensor readings out to external telemetry sinks.
//
// An Exporter polls an open monitoring session on a fixed interval,
// flattens the hardware graph into Readings and hands each reading to
// every configured Sink. MQTTSink publishes JSON per sensor topic,
// InfluxSink writes points through the non-blocking v2 write API. Sink
// failures are logged and skipped; the poll loop keeps running until
// its context is cancelled.
package export
