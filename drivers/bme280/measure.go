package bme280

import (
	"time"

	"envsense-go/errcode"
)

// Measurement paths. Forced mode is a two-phase protocol: Trigger starts a
// one-shot conversion and returns the worst-case wait, Collect (or a
// per-channel variant) busy-checks and reads the result. The ReadForced
// family bundles the phases with a blocking sleep. In normal mode the
// ReadLast family returns whatever conversion completed most recently.

// Trigger starts one forced measurement. The sensor must be sleeping both
// in memory and on the wire: a conversion still in progress reports Busy,
// a register mode other than sleep reports Condition.
//
// The returned duration is the worst-case conversion time for the
// currently configured oversampling; sleep at least that long before
// collecting to avoid a Busy round.
func (d *Device) Trigger() (time.Duration, error) {
	const op = "bme280.trigger"
	if err := d.ensureSleeping(); err != nil {
		return 0, err
	}
	// CTRL_HUM, STATUS and CTRL_MEAS in one burst
	if err := d.readRegs(op, regCtrlHum, d.buf[:3]); err != nil {
		return 0, err
	}
	if d.buf[1]&statusBusyMask != 0 {
		return 0, errcode.Busy
	}
	if d.buf[2]&modeMask != byte(ModeSleep) {
		return 0, errcode.Condition
	}
	wait := measureTime(ctrlMeasTempOvs(d.buf[2]), ctrlMeasPressOvs(d.buf[2]), ctrlHumOvs(d.buf[0]))
	if err := d.writeReg(op, regCtrlMeas, d.buf[2]&modeClearMask|byte(ModeForced)); err != nil {
		return 0, err
	}
	return wait, nil
}

// BusyCheck reads STATUS and reports Busy while a conversion or register
// copy is in progress.
func (d *Device) BusyCheck() error {
	if err := d.ensureInitialized(); err != nil {
		return err
	}
	return d.busyCheck("bme280.busycheck")
}

// Collect busy-checks and reads out a completed forced measurement on all
// three channels.
func (d *Device) Collect() (Sample, error) {
	const op = "bme280.collect"
	if err := d.ensureInitialized(); err != nil {
		return Sample{}, err
	}
	if err := d.busyCheck(op); err != nil {
		return Sample{}, err
	}
	return d.readSample(op)
}

func (d *Device) CollectTemperature() (Temperature, error) {
	const op = "bme280.collecttemp"
	if err := d.ensureInitialized(); err != nil {
		return 0, err
	}
	if err := d.busyCheck(op); err != nil {
		return 0, err
	}
	return d.readTemperature(op)
}

func (d *Device) CollectPressure() (Pressure, error) {
	const op = "bme280.collectpress"
	if err := d.ensureInitialized(); err != nil {
		return 0, err
	}
	if err := d.busyCheck(op); err != nil {
		return 0, err
	}
	return d.readPressure(op)
}

func (d *Device) CollectHumidity() (Humidity, error) {
	const op = "bme280.collecthum"
	if err := d.ensureInitialized(); err != nil {
		return 0, err
	}
	if err := d.busyCheck(op); err != nil {
		return 0, err
	}
	return d.readHumidity(op)
}

// ReadForced runs a complete forced cycle: trigger, sleep the computed
// wait, one busy check, readout.
func (d *Device) ReadForced() (Sample, error) {
	wait, err := d.Trigger()
	if err != nil {
		return Sample{}, err
	}
	time.Sleep(wait)
	return d.Collect()
}

func (d *Device) ReadForcedTemperature() (Temperature, error) {
	wait, err := d.Trigger()
	if err != nil {
		return 0, err
	}
	time.Sleep(wait)
	return d.CollectTemperature()
}

func (d *Device) ReadForcedPressure() (Pressure, error) {
	wait, err := d.Trigger()
	if err != nil {
		return 0, err
	}
	time.Sleep(wait)
	return d.CollectPressure()
}

func (d *Device) ReadForcedHumidity() (Humidity, error) {
	wait, err := d.Trigger()
	if err != nil {
		return 0, err
	}
	time.Sleep(wait)
	return d.CollectHumidity()
}

// ReadLast returns the most recent normal-mode conversion of all three
// channels. The in-memory mode must be normal.
func (d *Device) ReadLast() (Sample, error) {
	if err := d.ensureNormal(); err != nil {
		return Sample{}, err
	}
	return d.readSample("bme280.readlast")
}

func (d *Device) ReadLastTemperature() (Temperature, error) {
	if err := d.ensureNormal(); err != nil {
		return 0, err
	}
	return d.readTemperature("bme280.readlasttemp")
}

func (d *Device) ReadLastPressure() (Pressure, error) {
	if err := d.ensureNormal(); err != nil {
		return 0, err
	}
	return d.readPressure("bme280.readlastpress")
}

func (d *Device) ReadLastHumidity() (Humidity, error) {
	if err := d.ensureNormal(); err != nil {
		return 0, err
	}
	return d.readHumidity("bme280.readlasthum")
}

// ---------------- readout ----------------

func (d *Device) busyCheck(op string) error {
	if err := d.readRegs(op, regStatus, d.buf[:1]); err != nil {
		return err
	}
	if d.buf[0]&statusBusyMask != 0 {
		return errcode.Busy
	}
	return nil
}

func (d *Device) readTemperature(op string) (Temperature, error) {
	if err := d.readRegs(op, regTempADC, d.buf[:tempADCLen]); err != nil {
		return 0, err
	}
	t, tf := d.cal.compensateTemperature(parseADC20(d.buf[:3]))
	d.tFine = tf
	return Temperature(t), nil
}

// readPressure bursts pressure and temperature together; temperature is
// compensated first to refresh the fine temperature.
func (d *Device) readPressure(op string) (Pressure, error) {
	if err := d.readRegs(op, regPressADC, d.buf[:pressADCLen+tempADCLen]); err != nil {
		return 0, err
	}
	adcP, adcT := parseADC20(d.buf[:3]), parseADC20(d.buf[3:6])
	_, d.tFine = d.cal.compensateTemperature(adcT)
	return Pressure(d.cal.compensatePressure(adcP, d.tFine)), nil
}

func (d *Device) readHumidity(op string) (Humidity, error) {
	if err := d.readRegs(op, regTempADC, d.buf[:tempADCLen+humADCLen]); err != nil {
		return 0, err
	}
	adcT, adcH := parseADC20(d.buf[:3]), parseADC16(d.buf[3:5])
	_, d.tFine = d.cal.compensateTemperature(adcT)
	return Humidity(d.cal.compensateHumidity(adcH, d.tFine)), nil
}

func (d *Device) readSample(op string) (Sample, error) {
	if err := d.readRegs(op, regPressADC, d.buf[:pressADCLen+tempADCLen+humADCLen]); err != nil {
		return Sample{}, err
	}
	adcP, adcT, adcH := parseADC20(d.buf[:3]), parseADC20(d.buf[3:6]), parseADC16(d.buf[6:8])
	t, tf := d.cal.compensateTemperature(adcT)
	d.tFine = tf
	return Sample{
		Temperature: Temperature(t),
		Pressure:    Pressure(d.cal.compensatePressure(adcP, tf)),
		Humidity:    Humidity(d.cal.compensateHumidity(adcH, tf)),
	}, nil
}

// measureTime is the datasheet's worst-case conversion time for one forced
// measurement: 1.25 ms start-up, 2.3 ms per oversample, 0.58 ms switching
// cost on the pressure and humidity channels, summed in hundredths of a
// millisecond, divided down and padded by one.
func measureTime(t, p, h Oversampling) time.Duration {
	hundredths := 125 + 230*oversamplingFactor(t) +
		230*oversamplingFactor(p) + 58 +
		230*oversamplingFactor(h) + 58
	return time.Duration(hundredths/100+1) * time.Millisecond
}

// oversamplingFactor maps the register encoding to its multiplier.
// Reserved encodings above Sampling16X measure like x16.
func oversamplingFactor(o Oversampling) uint32 {
	switch {
	case o <= Sampling2X:
		return uint32(o)
	case o == Sampling4X:
		return 4
	case o == Sampling8X:
		return 8
	default:
		return 16
	}
}
