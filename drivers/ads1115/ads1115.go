// Package ads1115 drives the ADS1115 16-bit I²C ADC in single-shot,
// single-ended mode. It is used to add analogue inputs to boards that are
// short of ADC pins.
//
//	d := ads1115.New(bus)
//	d.Configure(ads1115.Config{})
//	v, err := d.Read(2) // AIN2 against GND, 0..32767
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided.
package ads1115

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"

	"controls-go/x/mathx"
)

// Address with ADDR tied to GND.
const Address = 0x48

const (
	regConversion = 0x00
	regConfig     = 0x01

	cfgOS         = 1 << 15 // start / conversion done
	cfgMuxSingle  = 0x4 << 12
	cfgModeSingle = 1 << 8
	cfgCompQueOff = 0x3
)

// Gain selects the programmable full-scale range. The zero value is ±4.096 V.
type Gain uint8

const (
	Gain4V096 Gain = iota
	Gain6V144
	Gain2V048
	Gain1V024
	Gain0V512
	Gain0V256
)

// PGA field values, indexed by Gain.
var pgaBits = [...]uint16{1 << 9, 0 << 9, 2 << 9, 3 << 9, 4 << 9, 5 << 9}

// DataRate selects samples per second. The zero value is 860 SPS.
type DataRate uint8

const (
	Rate860 DataRate = iota
	Rate475
	Rate250
	Rate128
	Rate64
	Rate32
	Rate16
	Rate8
)

// DR field values, indexed by DataRate.
var drBits = [...]uint16{7 << 5, 6 << 5, 5 << 5, 4 << 5, 3 << 5, 2 << 5, 1 << 5, 0 << 5}

// Errors returned by the driver.
var (
	ErrChannel = errors.New("ads1115: channel out of range")
	ErrTimeout = errors.New("ads1115: conversion timeout")
)

// Config controls gain, rate and conversion polling. All fields are optional.
type Config struct {
	// Address defaults to 0x48 if zero.
	Address uint16
	Gain    Gain
	Rate    DataRate
	// PollInterval between conversion-done checks. Default 200 µs.
	PollInterval time.Duration
	// Timeout bounds a single conversion. Default 20 ms.
	Timeout time.Duration
}

// Device is an ADS1115 on an I²C bus.
type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg Config
	w   [3]byte
	r   [2]byte
}

// New creates the device object; it does not touch the bus.
func New(bus drivers.I2C) *Device {
	return &Device{bus: bus, Address: Address}
}

// Configure applies cfg, filling in defaults.
func (d *Device) Configure(cfg Config) {
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
	if int(cfg.Gain) >= len(pgaBits) {
		cfg.Gain = Gain4V096
	}
	if int(cfg.Rate) >= len(drBits) {
		cfg.Rate = Rate860
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 200 * time.Microsecond
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Millisecond
	}
	d.cfg = cfg
}

// Read performs one single-shot conversion of AINch against GND and
// returns the result in [0, 32767]. Negative readings (input below GND)
// are clamped to 0.
func (d *Device) Read(ch uint8) (int16, error) {
	if ch > 3 {
		return 0, ErrChannel
	}
	if d.cfg.Timeout == 0 {
		d.Configure(Config{})
	}
	cfg := uint16(cfgOS|cfgMuxSingle|cfgModeSingle|cfgCompQueOff) |
		uint16(ch)<<12 | pgaBits[d.cfg.Gain] | drBits[d.cfg.Rate]
	if err := d.writeReg(regConfig, cfg); err != nil {
		return 0, err
	}

	deadline := time.Now().Add(d.cfg.Timeout)
	for {
		st, err := d.readReg(regConfig)
		if err != nil {
			return 0, err
		}
		if st&cfgOS != 0 {
			break
		}
		if time.Now().After(deadline) {
			return 0, ErrTimeout
		}
		// never sleep past the deadline
		time.Sleep(mathx.Min(d.cfg.PollInterval, time.Until(deadline)))
	}

	v, err := d.readReg(regConversion)
	if err != nil {
		return 0, err
	}
	if s := int16(v); s > 0 {
		return s, nil
	}
	return 0, nil
}

// Read10 returns a conversion scaled to the 10-bit range [0, 1023].
func (d *Device) Read10(ch uint8) (int, error) {
	v, err := d.Read(ch)
	if err != nil {
		return 0, err
	}
	return int(v) >> 5, nil
}

func (d *Device) writeReg(reg uint8, v uint16) error {
	d.w[0], d.w[1], d.w[2] = reg, byte(v>>8), byte(v)
	return d.bus.Tx(d.Address, d.w[:], nil)
}

func (d *Device) readReg(reg uint8) (uint16, error) {
	d.w[0] = reg
	if err := d.bus.Tx(d.Address, d.w[:1], d.r[:]); err != nil {
		return 0, err
	}
	return uint16(d.r[0])<<8 | uint16(d.r[1]), nil
}
