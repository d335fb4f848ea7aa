//go:build pressure32

package bme280

// Narrow pressure pipeline for 32-bit targets without a 64-bit multiplier:
// shift arithmetic throughout, Pa resolution.
const (
	pressureIntDiv   = 100 // whole hPa
	pressureFractDiv = 1   // hundredths of hPa
	pressureScale    = 100.0

	// PressureFractDigits is how many digits Pressure.Parts packs into
	// its fraction. 2 here: hundredths of hPa.
	PressureFractDigits = 2
)

func (c *calibration) compensatePressure(adcP, tFine int32) uint32 {
	return c.compensatePressure32(adcP, tFine)
}
