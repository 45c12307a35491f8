package model

// Control is the writable counterpart of a controllable sensor. It is in
// one of two modes: default (the hardware drives itself) or software
// controlled with a requested value.
//
// The mode only changes through the Registry, after the session has
// confirmed the corresponding command with the external process. The
// recorded software value is what was requested: values outside the
// [MinSoftwareValue, MaxSoftwareValue] bounds are passed through to the
// external library unclamped.
type Control struct {
	identifier string

	minSoftwareValue float64
	maxSoftwareValue float64

	softwareControlled bool
	softwareValue      float64
}

// Identifier returns the control's opaque identifier.
func (c *Control) Identifier() string {
	return c.identifier
}

// MinSoftwareValue returns the lowest software-settable value reported by
// the external library.
func (c *Control) MinSoftwareValue() float64 {
	return c.minSoftwareValue
}

// MaxSoftwareValue returns the highest software-settable value reported by
// the external library.
func (c *Control) MaxSoftwareValue() float64 {
	return c.maxSoftwareValue
}

// IsSoftwareControlled reports whether a software value is currently set.
func (c *Control) IsSoftwareControlled() bool {
	return c.softwareControlled
}

// SoftwareValue returns the requested software value. The second return is
// false while the control is in default mode.
func (c *Control) SoftwareValue() (float64, bool) {
	return c.softwareValue, c.softwareControlled
}

// markSoftware records a confirmed software-control request.
func (c *Control) markSoftware(value float64) {
	c.softwareControlled = true
	c.softwareValue = value
}

// markDefault records a confirmed return to default mode.
func (c *Control) markDefault() {
	c.softwareControlled = false
	c.softwareValue = 0
}
