package bme280

import "envsense-go/x/mathx"

// Fixed-point compensation, matching the manufacturer's reference integer
// arithmetic exactly: division form, 32-bit or 64-bit intermediates per
// stage, truncation toward zero. Temperature must run first; its fine
// temperature output feeds pressure and humidity.

// compensateTemperature converts a raw 20-bit temperature ADC value to
// hundredths of a degree Celsius, plus the shared fine-temperature value.
func (c *calibration) compensateTemperature(adcT int32) (centi, tFine int32) {
	var1 := (adcT/8 - int32(c.digT1)*2) * int32(c.digT2) / 2048
	var2 := adcT/16 - int32(c.digT1)
	var2 = var2 * var2 / 4096 * int32(c.digT3) / 16384
	tFine = var1 + var2
	centi = (tFine*5 + 128) / 256
	return centi, tFine
}

// compensatePressure64 is the wide pipeline: 64-bit intermediates, output
// in Pa x100 (1006.53 hPa reads as 10065300). Returns 0 when the variance
// denominator collapses to zero, instead of dividing by it.
func (c *calibration) compensatePressure64(adcP, tFine int32) uint32 {
	var1 := int64(tFine) - 128000
	var2 := var1 * var1 * int64(c.digP6)
	var2 += var1 * int64(c.digP5) * 131072
	var2 += int64(c.digP4) * 34359738368
	var1 = var1*var1*int64(c.digP3)/256 + var1*int64(c.digP2)*4096
	var1 = (140737488355328 + var1) * int64(c.digP1) / 8589934592
	if var1 == 0 {
		return 0
	}
	var4 := 1048576 - int64(adcP)
	var4 = (var4*2147483648 - var2) * 3125 / var1
	var1 = int64(c.digP9) * (var4 / 8192) * (var4 / 8192) / 33554432
	var2 = int64(c.digP8) * var4 / 524288
	var4 = (var4+var1+var2)/256 + int64(c.digP7)*16
	return uint32(var4 / 2 * 100 / 128)
}

// compensatePressure32 is the narrow pipeline: 32-bit intermediates with
// the reference's shift arithmetic, output in Pa.
func (c *calibration) compensatePressure32(adcP, tFine int32) uint32 {
	var1 := (tFine >> 1) - 64000
	var2 := (((var1 >> 2) * (var1 >> 2)) >> 11) * int32(c.digP6)
	var2 += (var1 * int32(c.digP5)) << 1
	var2 = (var2 >> 2) + (int32(c.digP4) << 16)
	var1 = (((int32(c.digP3) * (((var1 >> 2) * (var1 >> 2)) >> 13)) >> 3) +
		((int32(c.digP2) * var1) >> 1)) >> 18
	var1 = ((32768 + var1) * int32(c.digP1)) >> 15
	if var1 == 0 {
		return 0
	}
	p := (uint32(1048576-adcP) - uint32(var2>>12)) * 3125
	if p < 0x80000000 {
		p = (p << 1) / uint32(var1)
	} else {
		p = p / uint32(var1) * 2
	}
	var1 = (int32(c.digP9) * (int32(((p >> 3) * (p >> 3)) >> 13))) >> 12
	var2 = (int32(p>>2) * int32(c.digP8)) >> 13
	return uint32(int32(p) + ((var1 + var2 + int32(c.digP7)) >> 4))
}

// compensateHumidity converts a raw 16-bit humidity ADC value to
// thousandths of %RH. The Q22.10 intermediate is clamped to
// [0, 419430400] before the final scaling.
func (c *calibration) compensateHumidity(adcH, tFine int32) uint32 {
	var1 := tFine - 76800
	var2 := adcH * 16384
	var3 := int32(c.digH4) * 1048576
	var4 := int32(c.digH5) * var1
	var5 := (var2 - var3 - var4 + 16384) / 32768
	var2 = var1 * int32(c.digH6) / 1024
	var3 = var1 * int32(c.digH3) / 2048
	var4 = var2*(var3+32768)/1024 + 2097152
	var2 = (var4*int32(c.digH2) + 8192) / 16384
	var3 = var5 * var2
	var4 = var3 / 32768 * (var3 / 32768) / 128
	var5 = var3 - var4*int32(c.digH1)/16
	var5 = mathx.Clamp(var5, 0, 419430400)
	return uint32(var5 / 4096)
}
