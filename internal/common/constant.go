// Package common contains shared constants and sentinel errors used across
// eventhub components.
package common

// AppName is used for the binary name, the calendar product id and the
// default bucket/prefix names.
const AppName = "eventhub"

// TimestampLayout is the ISO 8601 form used for createdAt/lastLogin.
// It matches the millisecond, UTC "Z" form browsers produce.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DateLayout is the calendar date format of Event.Date.
const DateLayout = "2006-01-02"
