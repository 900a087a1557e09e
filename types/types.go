// Package types defines the calendar value types: Duration, a
// unit-tagged amount; Date, calendar fields with second precision; and
// Time, Unix seconds with microseconds.
//
// The values never fail. Out of range input is wrapped or clamped
// instead of rejected, and the only failure signal is the empty string
// returned by Format.
//
// The package also holds the wire-safe request and response structs
// exchanged with a Calculator. They carry cramberry struct tags for
// deterministic binary serialization; transport concerns (gRPC codec
// registration) are handled in the transport packages.
package types
