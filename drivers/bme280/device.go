package bme280

import (
	"envsense-go/errcode"
	"envsense-go/x/mathx"
)

// Operating mode. Values match the CTRL_MEAS mode field encoding.
type Mode uint8

const (
	ModeSleep  Mode = 0x00
	ModeForced Mode = 0x01 // one-shot; device returns to sleep on its own
	ModeNormal Mode = 0x03 // continuous with standby interval
)

// Oversampling factor for a single measurement channel.
// Values match the osrs_x register field encoding.
type Oversampling uint8

const (
	SamplingOff Oversampling = iota // channel skipped, ADC reads 0x80000/0x8000
	Sampling1X
	Sampling2X
	Sampling4X
	Sampling8X
	Sampling16X
)

// Standby interval between measurements in normal mode.
type StandbyTime uint8

const (
	Standby0_5ms StandbyTime = iota
	Standby62_5ms
	Standby125ms
	Standby250ms
	Standby500ms
	Standby1000ms
	Standby10ms
	Standby20ms
)

// IIR filter coefficient.
type Filter uint8

const (
	FilterOff Filter = iota
	Filter2
	Filter4
	Filter8
	Filter16
)

// Config describes the full sensor setup written by Configure.
// Anything beyond Mode may only be written while the sensor sleeps.
type Config struct {
	Temperature Oversampling
	Pressure    Oversampling
	Humidity    Oversampling
	Mode        Mode
	Standby     StandbyTime
	Filter      Filter
	SPI3Wire    bool
}

// DefaultConfig matches the datasheet's "weather monitoring" suggestion:
// one-shot x1 sampling on all channels, filter off.
func DefaultConfig() Config {
	return Config{
		Temperature: Sampling1X,
		Pressure:    Sampling1X,
		Humidity:    Sampling1X,
		Mode:        ModeSleep,
	}
}

// Validate checks every field against its register range.
func (c Config) Validate() error {
	if !mathx.Between(c.Temperature, SamplingOff, Sampling16X) ||
		!mathx.Between(c.Pressure, SamplingOff, Sampling16X) ||
		!mathx.Between(c.Humidity, SamplingOff, Sampling16X) {
		return errcode.InvalidParam
	}
	if c.Mode > ModeNormal {
		return errcode.InvalidParam
	}
	if !mathx.Between(c.Standby, Standby0_5ms, Standby20ms) {
		return errcode.InvalidParam
	}
	if !mathx.Between(c.Filter, FilterOff, Filter16) {
		return errcode.InvalidParam
	}
	return nil
}

// calibration holds the per-device trim coefficients, populated once by Init.
type calibration struct {
	digT1 uint16
	digT2 int16
	digT3 int16

	digP1 uint16
	digP2 int16
	digP3 int16
	digP4 int16
	digP5 int16
	digP6 int16
	digP7 int16
	digP8 int16
	digP9 int16

	digH1 uint8
	digH2 int16
	digH3 uint8
	digH4 int16
	digH5 int16
	digH6 int8
}

// Device represents one BME280 behind a Bus. The caller owns the handle and
// must serialize all operations against it; there is no internal locking.
type Device struct {
	bus Bus

	initialized bool
	mode        Mode
	id          byte
	cal         calibration

	// Fine temperature left by the latest temperature compensation;
	// consumed by pressure and humidity compensation.
	tFine int32

	// Fixed buffer to avoid per-call heap allocations.
	buf [calib1Len + calib2Len]byte
}

// New constructs a Device on the given bus front-end. No I/O happens
// until Init.
func New(bus Bus) *Device {
	return &Device{bus: bus}
}

// Introspection.
func (d *Device) Initialized() bool { return d.initialized }

// ID reports the chip identity byte captured during Init.
func (d *Device) ID() byte { return d.id }
