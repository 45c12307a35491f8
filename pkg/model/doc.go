// Package model holds the hardware object graph exposed by a monitoring
// session: Hardware nodes with nested subhardware, their Sensors, and the
// Controls of controllable sensors.
//
// The graph is built once from the initial snapshot and its shape is
// frozen afterwards: identities, names, types and parent/child links never
// change. The only mutable state is each sensor's value/min/max and each
// control's software mode, and those are only touched through the
// Registry by the owning session.
//
// Entities are plain data. Nothing in this package performs I/O; the
// operations that talk to the external monitoring process (updating a
// subtree, driving a control) are methods on session.Session and take an
// entity identifier.
//
// # Concurrency
//
// A session and its graph belong to a single goroutine. None of these
// types lock internally; callers that share a session across goroutines
// must serialize access themselves.
package model
