package bme280

import (
	"errors"
	"testing"
)

// Compile-time check.
var _ Bus = (*fakeBus)(nil)

var errBusFault = errors.New("bus fault")

// Temperature and pressure trim words from the datasheet's worked
// example; humidity trim chosen to exercise the nibble-packed H4/H5
// assembly (H4=315, H5=50).
var (
	testCalib1 = [calib1Len]byte{
		0x70, 0x6B, // dig_T1 = 27504
		0x43, 0x67, // dig_T2 = 26435
		0x18, 0xFC, // dig_T3 = -1000
		0x7D, 0x8E, // dig_P1 = 36477
		0x43, 0xD6, // dig_P2 = -10685
		0xD0, 0x0B, // dig_P3 = 3024
		0x27, 0x0B, // dig_P4 = 2855
		0x8C, 0x00, // dig_P5 = 140
		0xF9, 0xFF, // dig_P6 = -7
		0x8C, 0x3C, // dig_P7 = 15500
		0xF8, 0xC6, // dig_P8 = -14600
		0x70, 0x17, // dig_P9 = 6000
		0x4B, // dig_H1 = 75
	}
	testCalib2 = [calib2Len]byte{
		0x6A, 0x01, // dig_H2 = 362
		0x00,             // dig_H3 = 0
		0x13, 0x2B, 0x03, // dig_H4 = 315, dig_H5 = 50
		0x1E, // dig_H6 = 30
	}

	// 0xF7..0xFE burst: adc_P=415148, adc_T=519888, adc_H=25000.
	testFrame = [8]byte{0x65, 0x5A, 0xC0, 0x7E, 0xED, 0x00, 0x61, 0xA8}
)

// Compensation results for the fixture above.
const (
	wantTFine   = 128423
	wantTemp    = 2508     // 25.08 degC
	wantPress64 = 10065328 // 1006.5328 hPa in Pa x100
	wantPress32 = 100656   // Pa
	wantHum     = 26991    // 26.991 %RH
)

type regWrite struct {
	reg byte
	val byte
}

type regRead struct {
	reg byte
	n   int
}

// fakeBus is an in-memory register file. Reads serve consecutive
// registers, writes land in the file, and both are logged in order.
// Writing the reset command clears the control registers the way the
// hardware does.
type fakeBus struct {
	regs   [256]byte
	writes []regWrite
	reads  []regRead

	failRead  map[byte]error
	failWrite map[byte]error
}

func newTestBus() *fakeBus {
	f := &fakeBus{
		failRead:  map[byte]error{},
		failWrite: map[byte]error{},
	}
	f.regs[regID] = ChipID
	copy(f.regs[regCalib1:], testCalib1[:])
	copy(f.regs[regCalib2:], testCalib2[:])
	copy(f.regs[regPressADC:], testFrame[:])
	return f
}

func (f *fakeBus) ReadRegs(reg byte, buf []byte) error {
	if err := f.failRead[reg]; err != nil {
		return err
	}
	f.reads = append(f.reads, regRead{reg: reg, n: len(buf)})
	copy(buf, f.regs[reg:])
	return nil
}

func (f *fakeBus) WriteReg(reg, val byte) error {
	if err := f.failWrite[reg]; err != nil {
		return err
	}
	f.writes = append(f.writes, regWrite{reg: reg, val: val})
	f.regs[reg] = val
	if reg == regReset && val == resetCmd {
		f.regs[regCtrlHum] = 0
		f.regs[regStatus] = 0
		f.regs[regCtrlMeas] = 0
		f.regs[regConfig] = 0
	}
	return nil
}

func (f *fakeBus) clearLog() {
	f.writes = nil
	f.reads = nil
}

// newTestDevice returns an initialized sleeping device on a fresh fake
// bus, with the call log cleared.
func newTestDevice(t *testing.T) (*Device, *fakeBus) {
	t.Helper()
	f := newTestBus()
	d := New(f)
	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	f.clearLog()
	return d, f
}

// testCal returns the parsed fixture trim.
func testCal() calibration {
	var buf [calib1Len + calib2Len]byte
	copy(buf[:calib1Len], testCalib1[:])
	copy(buf[calib1Len:], testCalib2[:])
	return parseCalibration(buf[:])
}
