// Package bme280 implements a driver for the Bosch BME280 combined
// temperature, pressure and humidity sensor, over I2C or 4-wire SPI.
//
// The driver keeps the sensor's power mode in memory and gates every
// settings write on it: configuration is only accepted while sleeping,
// which is the state the sensor resets into. A typical forced-mode cycle:
//
//	dev := bme280.New(bme280.NewI2C(bus, bme280.AddressDefault))
//	if err := dev.Init(); err != nil { ... }
//	if err := dev.Configure(bme280.DefaultConfig()); err != nil { ... }
//	s, err := dev.ReadForced()
//
// For continuous operation configure ModeNormal and poll with ReadLast,
// or run a Monitor. Split trigger/collect flows use Trigger, BusyCheck
// and Collect directly.
package bme280

import (
	"time"

	"envsense-go/errcode"
)

// Init soft-resets the sensor, reads its identity register and loads the
// calibration words. It must complete before any other operation except
// Reset and ChipID.
func (d *Device) Init() error {
	const op = "bme280.init"
	if d.bus == nil {
		return errcode.InvalidParam
	}
	if err := d.Reset(); err != nil {
		return err
	}
	time.Sleep(startupDelayMs * time.Millisecond)
	if err := d.readRegs(op, regID, d.buf[:1]); err != nil {
		return err
	}
	d.id = d.buf[0]
	// if d.id != ChipID {
	// 	return errcode.IDMismatch
	// }
	if err := d.readCalibration(op); err != nil {
		return err
	}
	d.initialized = true
	return nil
}

// Reset writes the soft-reset command. The in-memory mode is set back to
// sleep even when the write fails, since that is the state the sensor
// powers up in.
func (d *Device) Reset() error {
	if d.bus == nil {
		return errcode.InvalidParam
	}
	err := d.bus.WriteReg(regReset, resetCmd)
	d.mode = ModeSleep
	if err != nil {
		return ifaceErr("bme280.reset", err)
	}
	return nil
}

// ChipID reads the identity register. It works before Init.
func (d *Device) ChipID() (byte, error) {
	if d.bus == nil {
		return 0, errcode.InvalidParam
	}
	var b [1]byte
	if err := d.readRegs("bme280.chipid", regID, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Configure writes the complete sensor configuration in the register
// order the datasheet requires (CTRL_HUM, CTRL_MEAS, CONFIG) and records
// cfg.Mode as the new in-memory mode. The sensor must be sleeping.
//
// The writes are not transactional: a failure partway leaves the sensor
// with a mix of old and new settings, and the returned error is the
// caller's cue to Reset and reconfigure.
func (d *Device) Configure(cfg Config) error {
	const op = "bme280.configure"
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := d.ensureSleeping(); err != nil {
		return err
	}
	if err := d.writeReg(op, regCtrlHum, packCtrlHum(cfg.Humidity)); err != nil {
		return err
	}
	if err := d.writeReg(op, regCtrlMeas, packCtrlMeas(cfg.Temperature, cfg.Pressure, cfg.Mode)); err != nil {
		return err
	}
	if err := d.writeReg(op, regConfig, packConfig(cfg.Standby, cfg.Filter, cfg.SPI3Wire)); err != nil {
		return err
	}
	d.mode = cfg.Mode
	return nil
}

func (d *Device) readCalibration(op string) error {
	if err := d.readRegs(op, regCalib1, d.buf[:calib1Len]); err != nil {
		return err
	}
	if err := d.readRegs(op, regCalib2, d.buf[calib1Len:calib1Len+calib2Len]); err != nil {
		return err
	}
	d.cal = parseCalibration(d.buf[:])
	return nil
}

// ---------------- gates ----------------

func (d *Device) ensureInitialized() error {
	if !d.initialized {
		return errcode.NotInitialized
	}
	return nil
}

func (d *Device) ensureSleeping() error {
	if !d.initialized {
		return errcode.NotInitialized
	}
	if d.mode != ModeSleep {
		return errcode.Condition
	}
	return nil
}

func (d *Device) ensureNormal() error {
	if !d.initialized {
		return errcode.NotInitialized
	}
	if d.mode != ModeNormal {
		return errcode.Condition
	}
	return nil
}

// ---------------- bus helpers ----------------

func ifaceErr(op string, err error) error {
	return &errcode.E{C: errcode.Interface, Op: op, Err: err}
}

func (d *Device) readRegs(op string, reg byte, buf []byte) error {
	if err := d.bus.ReadRegs(reg, buf); err != nil {
		return ifaceErr(op, err)
	}
	return nil
}

func (d *Device) writeReg(op string, reg, val byte) error {
	if err := d.bus.WriteReg(reg, val); err != nil {
		return ifaceErr(op, err)
	}
	return nil
}
