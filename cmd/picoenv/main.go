//go:build rp2040

package main

import (
	"machine"
	"time"

	"envsense-go/drivers/bme280"
	"envsense-go/x/conv"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Forced-mode weather station on a Pico: BME280 on I2C0 (GP4/GP5), one
// measurement every two seconds, readings streamed as text lines over
// UART0 (GP0/GP1) and echoed to the USB console.

const readPeriod = 2 * time.Second

func main() {
	println("[picoenv] boot …")
	time.Sleep(1500 * time.Millisecond)

	sda := machine.Pin(4)
	scl := machine.Pin(5)
	sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
	scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       sda,
		SCL:       scl,
		Frequency: 400_000,
	})

	out := uartx.UART0
	_ = out.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(0),
		RX:       machine.Pin(1),
	})

	dev := bme280.New(bme280.NewI2C(machine.I2C0, bme280.AddressDefault))
	if err := dev.Init(); err != nil {
		println("[picoenv] FAIL: init:", err.Error())
		return
	}
	println("[picoenv] chip id:", dev.ID())

	cfg := bme280.DefaultConfig()
	cfg.Humidity = bme280.Sampling2X
	if err := dev.Configure(cfg); err != nil {
		println("[picoenv] FAIL: configure:", err.Error())
		return
	}

	var line [64]byte
	for {
		s, err := dev.ReadForced()
		if err != nil {
			println("[picoenv] read:", err.Error())
			time.Sleep(readPeriod)
			continue
		}
		b := formatSample(line[:0], s)
		b = append(b, '\r', '\n')
		_, _ = out.Write(b)
		println(string(b[:len(b)-2]))
		time.Sleep(readPeriod)
	}
}

// ---------------- helpers (no fmt) ----------------

// formatSample renders "T=25.08C P=1006.532hPa H=45.120%".
func formatSample(dst []byte, s bme280.Sample) []byte {
	dst = append(dst, "T="...)
	dst = appendTemp(dst, s.Temperature)
	dst = append(dst, "C P="...)
	pw, pf := s.Pressure.Parts()
	dst = appendInt(dst, int64(pw))
	dst = append(dst, '.')
	dst = appendFrac(dst, uint64(pf), bme280.PressureFractDigits)
	dst = append(dst, "hPa H="...)
	hw, hf := s.Humidity.Parts()
	dst = appendInt(dst, int64(hw))
	dst = append(dst, '.')
	dst = appendFrac(dst, uint64(hf), 3)
	return append(dst, '%')
}

func appendTemp(dst []byte, t bme280.Temperature) []byte {
	w, f := t.Parts()
	if t < 0 {
		dst = append(dst, '-')
		w, f = -w, -f
	}
	dst = appendInt(dst, int64(w))
	dst = append(dst, '.')
	return appendFrac(dst, uint64(f), 2)
}

func appendInt(dst []byte, n int64) []byte {
	var scratch [20]byte
	return append(dst, conv.Itoa(scratch[:], n)...)
}

// appendFrac zero-pads n to the fraction's digit count.
func appendFrac(dst []byte, n uint64, digits int) []byte {
	var scratch [20]byte
	return append(dst, conv.UtoaPad(scratch[:], n, digits)...)
}
