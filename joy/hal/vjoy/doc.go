// Package vjoy binds the native vJoy interface library on Windows.
//
// Every [hal.Driver] method maps to exactly one vJoyInterface.dll entry
// point. The library is loaded lazily; on hosts without the driver
// installed, Enabled reports false and the core library refuses to open.
//
// The package only builds on Windows. Other platforms use the sim backend.
package vjoy
