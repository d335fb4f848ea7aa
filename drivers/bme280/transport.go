package bme280

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Bus is the register transport the driver runs on. Implementations carry
// the wire protocol (addressing, read/write framing) so the driver core
// stays bus-agnostic.
type Bus interface {
	// ReadRegs reads len(buf) bytes starting at reg.
	ReadRegs(reg byte, buf []byte) error
	// WriteReg writes one byte to reg.
	WriteReg(reg, val byte) error
}

// PinOutput drives a GPIO level, typically machine.Pin.Set.
type PinOutput func(high bool)

// I2CBus adapts an I2C bus to the register transport. The sensor
// auto-increments the register pointer, so burst reads are a single
// write/read transaction.
type I2CBus struct {
	bus  drivers.I2C
	addr uint16
	w    [2]byte
}

// NewI2C returns the I2C transport for a sensor at addr. Pass 0 to use
// AddressDefault.
func NewI2C(bus drivers.I2C, addr uint16) *I2CBus {
	if addr == 0 {
		addr = AddressDefault
	}
	return &I2CBus{bus: bus, addr: addr}
}

func (b *I2CBus) ReadRegs(reg byte, buf []byte) error {
	b.w[0] = reg
	return b.bus.Tx(b.addr, b.w[:1], buf)
}

func (b *I2CBus) WriteReg(reg, val byte) error {
	b.w[0], b.w[1] = reg, val
	return b.bus.Tx(b.addr, b.w[:2], nil)
}

const spiReadFlag = 0x80

var errReadLen = errors.New("bme280: read exceeds scratch buffer")

// SPIBus adapts a 4-wire SPI bus to the register transport. Reads set the
// register's read flag and clock the reply in full duplex; writes clear it.
// cs is held low for the duration of each transfer.
type SPIBus struct {
	bus     drivers.SPI
	cs      PinOutput
	scratch [calib1Len + 1]byte
}

// NewSPI returns the SPI transport. cs drives the chip-select pin,
// typically machine.Pin.Set on a pin configured as output and idle high.
func NewSPI(bus drivers.SPI, cs PinOutput) *SPIBus {
	return &SPIBus{bus: bus, cs: cs}
}

func (b *SPIBus) ReadRegs(reg byte, buf []byte) error {
	if len(buf)+1 > len(b.scratch) {
		return errReadLen
	}
	data := b.scratch[:len(buf)+1]
	for i := range data {
		data[i] = 0
	}
	data[0] = reg | spiReadFlag
	b.cs(false)
	err := b.bus.Tx(data, data)
	b.cs(true)
	if err != nil {
		return err
	}
	copy(buf, data[1:])
	return nil
}

func (b *SPIBus) WriteReg(reg, val byte) error {
	b.scratch[0], b.scratch[1] = reg&^spiReadFlag, val
	b.cs(false)
	err := b.bus.Tx(b.scratch[:2], nil)
	b.cs(true)
	return err
}
