package types

// NowRequest asks for the current instant.
type NowRequest struct {
	// If true, the returned Date is tagged UTC.
	UTC bool `cramberry:"1"`
}

// AddRequest moves Subject by Delta.
type AddRequest struct {
	Subject Instant  `cramberry:"1"`
	Delta   Duration `cramberry:"2"`
}

// DiffRequest computes Subject minus Other in units of Period.
// Subject and Other must be of the same kind.
type DiffRequest struct {
	Subject Instant `cramberry:"1"`
	Other   Instant `cramberry:"2"`
	Period  Period  `cramberry:"3"`
}

// DiffResult is the answer to a DiffRequest.
type DiffResult struct {
	Value  int64  `cramberry:"1"`
	Period Period `cramberry:"2"`
}

// ZeroSetRequest truncates Subject to the start of Period.
type ZeroSetRequest struct {
	Subject Instant `cramberry:"1"`
	Period  Period  `cramberry:"2"`
}

// FormatRequest renders Subject with a strftime Pattern.
// An empty Pattern means DefaultPattern.
type FormatRequest struct {
	Subject Instant `cramberry:"1"`
	Pattern string  `cramberry:"2"`
}

// FormatResult is the answer to a FormatRequest.
type FormatResult struct {
	Text string `cramberry:"1"`
	// False when the pattern could not be rendered; Text is then empty.
	OK bool `cramberry:"2"`
}

// ConvertRequest converts Duration to Period.
type ConvertRequest struct {
	Duration Duration `cramberry:"1"`
	Period   Period   `cramberry:"2"`
}

// MaxSeriesCount bounds the number of instants a SeriesRequest yields.
const MaxSeriesCount = 10000

// SeriesRequest asks for Count instants Start, Start+Step,
// Start+2*Step, ... Each element is computed from Start, so month
// clamping does not accumulate: Jan 31 stepped by one Month gives
// Feb 28, Mar 31, Apr 30.
type SeriesRequest struct {
	Start Instant  `cramberry:"1"`
	Step  Duration `cramberry:"2"`
	Count uint32   `cramberry:"3"`
}
