package bme280

// Pure register codec: packing configuration into raw bytes, extracting
// fields back out, and assembling calibration/ADC values from buffers.
// No I/O in this file.

// ---------------- Configuration pack/unpack ----------------

// packCtrlHum builds the CTRL_HUM register byte.
func packCtrlHum(h Oversampling) byte {
	return byte(h) & osrsHMask
}

// packCtrlMeas builds the CTRL_MEAS register byte.
func packCtrlMeas(t, p Oversampling, m Mode) byte {
	var v byte
	v |= (byte(t) << osrsTShift) & 0xE0
	v |= (byte(p) << osrsPShift) & 0x1C
	v |= byte(m) & modeMask
	return v
}

// packConfig builds the CONFIG register byte.
func packConfig(s StandbyTime, f Filter, spi3w bool) byte {
	var v byte
	v |= (byte(s) << standbyShift) & 0xE0
	v |= (byte(f) << filterShift) & 0x1C
	if spi3w {
		v |= spi3wMask
	}
	return v
}

// Field extraction from raw register bytes.

func ctrlMeasMode(v byte) Mode {
	m := Mode(v & modeMask)
	if m == modeForcedAlt {
		m = ModeForced
	}
	return m
}

func ctrlMeasTempOvs(v byte) Oversampling  { return Oversampling((v >> osrsTShift) & fieldMask) }
func ctrlMeasPressOvs(v byte) Oversampling { return Oversampling((v >> osrsPShift) & fieldMask) }
func ctrlHumOvs(v byte) Oversampling       { return Oversampling(v & osrsHMask) }
func configStandby(v byte) StandbyTime     { return StandbyTime((v >> standbyShift) & fieldMask) }
func configFilter(v byte) Filter           { return Filter((v >> filterShift) & fieldMask) }
func configSPI3W(v byte) bool              { return v&spi3wMask != 0 }

// ---------------- ADC parsing ----------------

// parseADC20 assembles a left-aligned 20-bit ADC value (pressure or
// temperature) from its 3 raw bytes.
func parseADC20(raw []byte) int32 {
	v := int32(raw[0])<<12 | int32(raw[1])<<4 | int32(raw[2])>>4
	return v & 0xFFFFF
}

// parseADC16 assembles the 16-bit humidity ADC value from its 2 raw bytes.
func parseADC16(raw []byte) int32 {
	return int32(raw[0])<<8 | int32(raw[1])
}

// ---------------- Calibration parsing ----------------

// parseCalibration decodes the 32-byte concatenation of calibration block 1
// (0x88, 25 bytes) and block 2 (0xE1, 7 bytes).
//
// dig_H4 and dig_H5 are 12-bit values sharing byte 0xE5: H4 takes 0xE4 as
// its high byte and the low nibble of 0xE5; H5 takes 0xE6 and the high
// nibble. They are assembled without sign extension and read 0..4095.
func parseCalibration(buf []byte) calibration {
	return calibration{
		digT1: u16le(buf[0], buf[1]),
		digT2: s16le(buf[2], buf[3]),
		digT3: s16le(buf[4], buf[5]),

		digP1: u16le(buf[6], buf[7]),
		digP2: s16le(buf[8], buf[9]),
		digP3: s16le(buf[10], buf[11]),
		digP4: s16le(buf[12], buf[13]),
		digP5: s16le(buf[14], buf[15]),
		digP6: s16le(buf[16], buf[17]),
		digP7: s16le(buf[18], buf[19]),
		digP8: s16le(buf[20], buf[21]),
		digP9: s16le(buf[22], buf[23]),

		digH1: buf[24],
		digH2: s16le(buf[25], buf[26]),
		digH3: buf[27],
		digH4: int16(buf[28])<<4 | int16(buf[29]&0x0F),
		digH5: int16(buf[30])<<4 | int16(buf[29])>>4,
		digH6: int8(buf[31]),
	}
}

// Byte concatenation helpers, little-endian register pairs.

func u16le(lo, hi byte) uint16 { return uint16(hi)<<8 | uint16(lo) }
func s16le(lo, hi byte) int16  { return int16(uint16(hi)<<8 | uint16(lo)) }
