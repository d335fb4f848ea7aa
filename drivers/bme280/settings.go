package bme280

import "envsense-go/errcode"

// Individual settings access. Getters only need an initialized device and
// always read the live register. Setters additionally require the sensor
// to be sleeping and skip the register write when the requested value is
// already in place; the exceptions are SetMode, which works in any mode,
// and SetHumidityOversampling, which always writes.

// Mode reads the power mode from CTRL_MEAS and refreshes the in-memory
// copy. The hardware reports forced mode under two encodings; both map to
// ModeForced.
func (d *Device) Mode() (Mode, error) {
	raw, err := d.settingsReg("bme280.mode", regCtrlMeas)
	if err != nil {
		return 0, err
	}
	d.mode = ctrlMeasMode(raw)
	return d.mode, nil
}

// SetMode switches the power mode, keeping the oversampling bits of
// CTRL_MEAS intact. Unlike the other setters it is legal in any mode:
// this is the way out of normal mode back to sleep.
func (d *Device) SetMode(m Mode) error {
	const op = "bme280.setmode"
	if m > ModeNormal {
		return errcode.InvalidParam
	}
	if err := d.ensureInitialized(); err != nil {
		return err
	}
	if err := d.readRegs(op, regCtrlMeas, d.buf[:1]); err != nil {
		return err
	}
	raw := d.buf[0]
	if ctrlMeasMode(raw) == m {
		return nil
	}
	if err := d.writeReg(op, regCtrlMeas, raw&modeClearMask|byte(m)); err != nil {
		return err
	}
	d.mode = m
	return nil
}

func (d *Device) TemperatureOversampling() (Oversampling, error) {
	raw, err := d.settingsReg("bme280.tempovs", regCtrlMeas)
	if err != nil {
		return 0, err
	}
	return ctrlMeasTempOvs(raw), nil
}

func (d *Device) SetTemperatureOversampling(o Oversampling) error {
	const op = "bme280.settempovs"
	if o > Sampling16X {
		return errcode.InvalidParam
	}
	if err := d.ensureSleeping(); err != nil {
		return err
	}
	if err := d.readRegs(op, regCtrlMeas, d.buf[:1]); err != nil {
		return err
	}
	raw := d.buf[0]
	if ctrlMeasTempOvs(raw) == o {
		return nil
	}
	return d.writeReg(op, regCtrlMeas, raw&osrsTClearMask|byte(o)<<osrsTShift)
}

func (d *Device) PressureOversampling() (Oversampling, error) {
	raw, err := d.settingsReg("bme280.pressovs", regCtrlMeas)
	if err != nil {
		return 0, err
	}
	return ctrlMeasPressOvs(raw), nil
}

func (d *Device) SetPressureOversampling(o Oversampling) error {
	const op = "bme280.setpressovs"
	if o > Sampling16X {
		return errcode.InvalidParam
	}
	if err := d.ensureSleeping(); err != nil {
		return err
	}
	if err := d.readRegs(op, regCtrlMeas, d.buf[:1]); err != nil {
		return err
	}
	raw := d.buf[0]
	if ctrlMeasPressOvs(raw) == o {
		return nil
	}
	return d.writeReg(op, regCtrlMeas, raw&osrsPClearMask|byte(o)<<osrsPShift)
}

func (d *Device) HumidityOversampling() (Oversampling, error) {
	raw, err := d.settingsReg("bme280.humovs", regCtrlHum)
	if err != nil {
		return 0, err
	}
	return ctrlHumOvs(raw), nil
}

// SetHumidityOversampling writes CTRL_HUM and then rewrites CTRL_MEAS
// unchanged: the humidity field only latches on the next CTRL_MEAS write.
// Both writes happen even when the requested value is already set.
func (d *Device) SetHumidityOversampling(o Oversampling) error {
	const op = "bme280.sethumovs"
	if o > Sampling16X {
		return errcode.InvalidParam
	}
	if err := d.ensureSleeping(); err != nil {
		return err
	}
	if err := d.writeReg(op, regCtrlHum, byte(o)); err != nil {
		return err
	}
	if err := d.readRegs(op, regCtrlMeas, d.buf[:1]); err != nil {
		return err
	}
	return d.writeReg(op, regCtrlMeas, d.buf[0])
}

func (d *Device) Standby() (StandbyTime, error) {
	raw, err := d.settingsReg("bme280.standby", regConfig)
	if err != nil {
		return 0, err
	}
	return configStandby(raw), nil
}

func (d *Device) SetStandby(t StandbyTime) error {
	const op = "bme280.setstandby"
	if t > Standby20ms {
		return errcode.InvalidParam
	}
	if err := d.ensureSleeping(); err != nil {
		return err
	}
	if err := d.readRegs(op, regConfig, d.buf[:1]); err != nil {
		return err
	}
	raw := d.buf[0]
	if configStandby(raw) == t {
		return nil
	}
	return d.writeReg(op, regConfig, raw&standbyClearMask|byte(t)<<standbyShift)
}

func (d *Device) Filter() (Filter, error) {
	raw, err := d.settingsReg("bme280.filter", regConfig)
	if err != nil {
		return 0, err
	}
	return configFilter(raw), nil
}

func (d *Device) SetFilter(f Filter) error {
	const op = "bme280.setfilter"
	if f > Filter16 {
		return errcode.InvalidParam
	}
	if err := d.ensureSleeping(); err != nil {
		return err
	}
	if err := d.readRegs(op, regConfig, d.buf[:1]); err != nil {
		return err
	}
	raw := d.buf[0]
	if configFilter(raw) == f {
		return nil
	}
	return d.writeReg(op, regConfig, raw&filterClearMask|byte(f)<<filterShift)
}

func (d *Device) SPI3WireEnabled() (bool, error) {
	raw, err := d.settingsReg("bme280.spi3w", regConfig)
	if err != nil {
		return false, err
	}
	return configSPI3W(raw), nil
}

func (d *Device) EnableSPI3Wire() error {
	return d.setSPI3Wire("bme280.enablespi3w", true)
}

func (d *Device) DisableSPI3Wire() error {
	return d.setSPI3Wire("bme280.disablespi3w", false)
}

func (d *Device) setSPI3Wire(op string, on bool) error {
	if err := d.ensureSleeping(); err != nil {
		return err
	}
	if err := d.readRegs(op, regConfig, d.buf[:1]); err != nil {
		return err
	}
	raw := d.buf[0]
	if configSPI3W(raw) == on {
		return nil
	}
	next := raw & spi3wClearMask
	if on {
		next |= spi3wMask
	}
	return d.writeReg(op, regConfig, next)
}

// settingsReg reads one settings register after the init gate.
func (d *Device) settingsReg(op string, reg byte) (byte, error) {
	if err := d.ensureInitialized(); err != nil {
		return 0, err
	}
	if err := d.readRegs(op, reg, d.buf[:1]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}
