// Package sim provides an in-memory joystick driver for development and
// testing on hosts without the native driver installed.
//
// A [Driver] is built from a [Config] that declares the slots, their axis
// ranges, and their button and POV counts. The configuration also exposes
// fault injection knobs: disabled drivers, failing count queries, slots
// owned by a phantom external process, axes whose range queries half-fail,
// and metadata strings with deliberately malformed UTF-16. Tests use these
// to exercise the error paths of the core library against a driver that
// misbehaves in precisely controlled ways.
//
// Accepted state pushes are recorded and can be read back with
// [Driver.LastReport] and [Driver.UpdateCount].
package sim
