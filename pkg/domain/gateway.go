package domain

import "time"

// GatewayKey identifies one of the five development gateways a project and
// its modules pass through, from concept to close.
type GatewayKey string

const (
	GatewayD0 GatewayKey = "D0"
	GatewayD1 GatewayKey = "D1"
	GatewayD2 GatewayKey = "D2"
	GatewayD3 GatewayKey = "D3"
	GatewayD4 GatewayKey = "D4"
)

// DateLayout is the wire and storage format for gateway dates. Gateway dates
// are calendar days; time-of-day is never significant.
const DateLayout = "2006-01-02"

// GatewayKeys returns all gateway keys in passage order (D0 first).
func GatewayKeys() []GatewayKey {
	return []GatewayKey{GatewayD0, GatewayD1, GatewayD2, GatewayD3, GatewayD4}
}

// gatewayLabels maps each key to its human-readable phase name.
var gatewayLabels = map[GatewayKey]string{ //nolint: gochecknoglobals
	GatewayD0: "Concept",
	GatewayD1: "Proto",
	GatewayD2: "Pilot",
	GatewayD3: "Launch",
	GatewayD4: "Close",
}

// Label returns the phase name for the key ("Concept" for D0 and so on), or
// an empty string for unknown keys.
func (k GatewayKey) Label() string { return gatewayLabels[k] }

// Valid reports whether k is one of the five known gateways.
func (k GatewayKey) Valid() bool {
	_, ok := gatewayLabels[k]

	return ok
}

// GatewaySlot holds the dates tracked for one gateway of one entity. A zero
// time means the date is not set. ECN is only meaningful on module slots.
type GatewaySlot struct {
	// Plan is the committed target date. Plans live at the project level and
	// are entered by users; module slots may carry one from bulk imports.
	Plan time.Time `json:"plan,omitzero"`
	// Actual is the achieved date. For modules with sub-modules and for
	// projects it is derived state maintained by the rollup.
	Actual time.Time `json:"actual,omitzero"`
	// ECN is the engineering change notice reference recorded at release.
	ECN string `json:"ecn,omitempty"`
}

// GatewayBoard maps gateway keys to their slots. Missing keys are treated as
// empty slots.
type GatewayBoard map[GatewayKey]GatewaySlot

// Slot returns the slot for the key, or a zero slot when absent.
func (b GatewayBoard) Slot(k GatewayKey) GatewaySlot { return b[k] }

// SetPlan replaces the plan date of the slot for the key.
func (b GatewayBoard) SetPlan(k GatewayKey, d time.Time) {
	s := b[k]
	s.Plan = d
	b[k] = s
}

// SetActual replaces the actual date of the slot for the key. A zero time
// clears it.
func (b GatewayBoard) SetActual(k GatewayKey, d time.Time) {
	s := b[k]
	s.Actual = d
	b[k] = s
}

// SetECN replaces the ECN reference of the slot for the key.
func (b GatewayBoard) SetECN(k GatewayKey, ecn string) {
	s := b[k]
	s.ECN = ecn
	b[k] = s
}

// NewGatewayBoard returns a board with empty slots for all five gateways.
func NewGatewayBoard() GatewayBoard {
	b := make(GatewayBoard, len(GatewayKeys()))
	for _, k := range GatewayKeys() {
		b[k] = GatewaySlot{}
	}

	return b
}

// ParseDate parses a YYYY-MM-DD string into a UTC day. Empty input yields a
// zero time without error.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a day in the wire format, or an empty string for a zero
// time.
func FormatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}

	return d.Format(DateLayout)
}
