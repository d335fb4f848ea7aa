package bme280

import (
	"errors"
	"testing"

	"envsense-go/errcode"
)

func TestInit(t *testing.T) {
	f := newTestBus()
	d := New(f)
	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !d.Initialized() {
		t.Fatal("device not marked initialized")
	}
	if d.ID() != ChipID {
		t.Fatalf("id = %#x, want %#x", d.ID(), ChipID)
	}
	if len(f.writes) == 0 || f.writes[0] != (regWrite{regReset, resetCmd}) {
		t.Fatalf("writes = %+v, want soft reset first", f.writes)
	}
	wantReads := []regRead{
		{regID, 1},
		{regCalib1, calib1Len},
		{regCalib2, calib2Len},
	}
	if len(f.reads) != len(wantReads) {
		t.Fatalf("reads = %+v, want %+v", f.reads, wantReads)
	}
	for i := range wantReads {
		if f.reads[i] != wantReads[i] {
			t.Fatalf("read %d = %+v, want %+v", i, f.reads[i], wantReads[i])
		}
	}
	if d.cal.digT1 != 27504 || d.cal.digH6 != 30 {
		t.Fatalf("calibration not loaded: %+v", d.cal)
	}
}

// Clone parts report identities other than 0x60 but speak the same
// protocol; Init records the byte without rejecting it.
func TestInitKeepsForeignID(t *testing.T) {
	f := newTestBus()
	f.regs[regID] = 0x58
	d := New(f)
	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if d.ID() != 0x58 {
		t.Fatalf("id = %#x, want 0x58", d.ID())
	}
}

func TestInitNilBus(t *testing.T) {
	d := New(nil)
	if err := d.Init(); errcode.Of(err) != errcode.InvalidParam {
		t.Fatalf("err = %v, want invalid_param", err)
	}
}

func TestInitTransportError(t *testing.T) {
	f := newTestBus()
	f.failRead[regCalib1] = errBusFault
	d := New(f)
	err := d.Init()
	if errcode.Of(err) != errcode.Interface {
		t.Fatalf("err = %v, want interface_error", err)
	}
	if !errors.Is(err, errBusFault) {
		t.Fatalf("cause not preserved: %v", err)
	}
	if d.Initialized() {
		t.Fatal("device marked initialized after failed init")
	}
}

func TestChipIDBeforeInit(t *testing.T) {
	f := newTestBus()
	d := New(f)
	id, err := d.ChipID()
	if err != nil || id != ChipID {
		t.Fatalf("ChipID = %#x, %v", id, err)
	}
}

func TestResetForcesSleep(t *testing.T) {
	d, _ := newTestDevice(t)
	cfg := DefaultConfig()
	cfg.Mode = ModeNormal
	if err := d.Configure(cfg); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if err := d.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	// settings writes are legal again without an explicit SetMode
	if err := d.SetFilter(Filter4); err != nil {
		t.Fatalf("set filter after reset: %v", err)
	}
}

func TestResetFailureStillSleeps(t *testing.T) {
	d, f := newTestDevice(t)
	cfg := DefaultConfig()
	cfg.Mode = ModeNormal
	if err := d.Configure(cfg); err != nil {
		t.Fatalf("configure: %v", err)
	}
	f.failWrite[regReset] = errBusFault
	err := d.Reset()
	if errcode.Of(err) != errcode.Interface || !errors.Is(err, errBusFault) {
		t.Fatalf("err = %v, want wrapped interface_error", err)
	}
	// the handle treats the sensor as sleeping even though the command
	// never went out
	if err := d.SetFilter(Filter2); err != nil {
		t.Fatalf("set filter: %v", err)
	}
}

func TestOpsBeforeInit(t *testing.T) {
	d := New(newTestBus())
	if _, err := d.Mode(); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("Mode err = %v, want not_initialized", err)
	}
	if err := d.SetMode(ModeSleep); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("SetMode err = %v, want not_initialized", err)
	}
	if err := d.SetFilter(Filter2); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("SetFilter err = %v, want not_initialized", err)
	}
	if _, err := d.Trigger(); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("Trigger err = %v, want not_initialized", err)
	}
	if _, err := d.Collect(); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("Collect err = %v, want not_initialized", err)
	}
	if _, err := d.ReadLast(); errcode.Of(err) != errcode.NotInitialized {
		t.Fatalf("ReadLast err = %v, want not_initialized", err)
	}
}

func TestConfigure(t *testing.T) {
	d, f := newTestDevice(t)
	cfg := Config{
		Temperature: Sampling2X,
		Pressure:    Sampling16X,
		Humidity:    Sampling1X,
		Mode:        ModeNormal,
		Standby:     Standby500ms,
		Filter:      Filter16,
	}
	if err := d.Configure(cfg); err != nil {
		t.Fatalf("configure: %v", err)
	}
	want := []regWrite{
		{regCtrlHum, 0x01},
		{regCtrlMeas, 0x57},
		{regConfig, 0x90},
	}
	if len(f.writes) != len(want) {
		t.Fatalf("writes = %+v, want %+v", f.writes, want)
	}
	for i := range want {
		if f.writes[i] != want[i] {
			t.Fatalf("write %d = %+v, want %+v", i, f.writes[i], want[i])
		}
	}
	if _, err := d.ReadLast(); err != nil {
		t.Fatalf("read after normal-mode configure: %v", err)
	}
}

func TestConfigureRejectsBadConfig(t *testing.T) {
	d, f := newTestDevice(t)
	cfg := DefaultConfig()
	cfg.Filter = Filter16 + 1
	if err := d.Configure(cfg); errcode.Of(err) != errcode.InvalidParam {
		t.Fatalf("err = %v, want invalid_param", err)
	}
	if len(f.writes) != 0 {
		t.Fatalf("writes = %+v, want none", f.writes)
	}
}

func TestConfigureRequiresSleep(t *testing.T) {
	d, _ := newTestDevice(t)
	cfg := DefaultConfig()
	cfg.Mode = ModeNormal
	if err := d.Configure(cfg); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if err := d.Configure(DefaultConfig()); errcode.Of(err) != errcode.Condition {
		t.Fatalf("err = %v, want condition", err)
	}
}

func TestConfigurePartialFailure(t *testing.T) {
	d, f := newTestDevice(t)
	f.failWrite[regCtrlMeas] = errBusFault
	cfg := DefaultConfig()
	cfg.Mode = ModeNormal
	err := d.Configure(cfg)
	if errcode.Of(err) != errcode.Interface {
		t.Fatalf("err = %v, want interface_error", err)
	}
	// CTRL_HUM landed, the rest did not, and the mode did not advance
	if len(f.writes) != 1 || f.writes[0].reg != regCtrlHum {
		t.Fatalf("writes = %+v, want ctrl_hum only", f.writes)
	}
	if _, err := d.ReadLast(); errcode.Of(err) != errcode.Condition {
		t.Fatalf("mode advanced after failed configure: %v", err)
	}
}
