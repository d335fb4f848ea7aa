package bme280

const (
	// 7-bit I2C addresses (SDO strap selects between them).
	AddressDefault = 0x76
	AddressAlt     = 0x77

	// Chip identity.
	ChipID = 0x60

	// --- Register addresses ---

	regID    = 0xD0 // R
	regReset = 0xE0 // W, accepts resetCmd only

	regCtrlHum  = 0xF2 // R/W, osrs_h bits 2:0
	regStatus   = 0xF3 // R, bit 3 measuring, bit 0 im_update
	regCtrlMeas = 0xF4 // R/W, osrs_t 7:5, osrs_p 4:2, mode 1:0
	regConfig   = 0xF5 // R/W, t_sb 7:5, filter 4:2, spi3w_en bit 0

	// ADC readouts, burst-readable across 0xF7..0xFE.
	regPressADC = 0xF7 // R, 3 bytes
	regTempADC  = 0xFA // R, 3 bytes
	regHumADC   = 0xFD // R, 2 bytes

	pressADCLen = 3
	tempADCLen  = 3
	humADCLen   = 2

	// Calibration blocks; read once during Init.
	regCalib1 = 0x88 // R, 25 bytes: dig_T1..dig_P9, dig_H1
	regCalib2 = 0xE1 // R, 7 bytes: dig_H2..dig_H6
	calib1Len = 25
	calib2Len = 7

	resetCmd = 0xB6

	// Sensor needs 2ms after reset before registers respond; wait double.
	startupDelayMs = 4

	// Status bits masked by the busy check. Everything else is ignored.
	statusBusyMask = 0x09 // measuring | im_update

	// --- CTRL_MEAS / CTRL_HUM / CONFIG field masks ---

	modeMask      = 0x03
	modeClearMask = 0xFC

	osrsTShift     = 5
	osrsTClearMask = 0x1F
	osrsPShift     = 2
	osrsPClearMask = 0xE3
	osrsHMask      = 0x07

	standbyShift     = 5
	standbyClearMask = 0x1F
	filterShift      = 2
	filterClearMask  = 0xE3
	spi3wMask        = 0x01
	spi3wClearMask   = 0xFE

	fieldMask = 0x07

	// Hardware encodes forced mode as either 0b01 or 0b10; reads are
	// remapped to the public ModeForced value.
	modeForcedAlt = 0x02
)
