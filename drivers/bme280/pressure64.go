//go:build !pressure32

package bme280

// Default pressure pipeline: 64-bit intermediates, Pa x100 resolution.
// Build with -tags pressure32 for the narrow variant.
const (
	pressureIntDiv   = 10000 // whole hPa
	pressureFractDiv = 10    // thousandths of hPa
	pressureScale    = 10000.0

	// PressureFractDigits is how many digits Pressure.Parts packs into
	// its fraction. 3 here: thousandths of hPa.
	PressureFractDigits = 3
)

func (c *calibration) compensatePressure(adcP, tFine int32) uint32 {
	return c.compensatePressure64(adcP, tFine)
}
