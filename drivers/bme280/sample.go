package bme280

// Temperature is a compensated reading in hundredths of a degree Celsius.
type Temperature int32

// Parts splits the reading into whole degrees and hundredths. The split
// truncates toward zero and both parts carry the sign: -1.5 degC yields
// (-1, -50). int8 covers the sensor's -40..85 degC output range.
func (t Temperature) Parts() (whole, fract int8) {
	return int8(t / 100), int8(t % 100)
}

// Celsius returns the reading in degrees Celsius.
func (t Temperature) Celsius() float32 {
	return float32(t) / 100
}

// Pressure is a compensated reading in the selected pipeline's unit:
// Pa x100 by default, plain Pa under the pressure32 build tag.
type Pressure uint32

// Parts splits the reading into whole hPa and the pipeline's fractional
// digits (thousandths of hPa by default, hundredths under pressure32).
func (p Pressure) Parts() (whole, fract uint16) {
	return uint16(p / pressureIntDiv), uint16(p % pressureIntDiv / pressureFractDiv)
}

// HPa returns the reading in hectopascals.
func (p Pressure) HPa() float32 {
	return float32(p) / pressureScale
}

// Humidity is a compensated reading in thousandths of %RH.
type Humidity uint32

// Parts splits the reading into whole %RH and thousandths.
func (h Humidity) Parts() (whole uint8, fract uint16) {
	return uint8(h / 1000), uint16(h % 1000)
}

// RelHumidity returns the reading in %RH.
func (h Humidity) RelHumidity() float32 {
	return float32(h) / 1000
}

// Sample aggregates one compensated measurement of all three channels.
type Sample struct {
	Temperature Temperature
	Pressure    Pressure
	Humidity    Humidity
}
