package bme280

import (
	"context"
	"time"

	"envsense-go/x/timex"
)

// Reading is one monitor emission: the sample, or the error that produced
// no sample, and the capture time in Unix milliseconds.
type Reading struct {
	Sample Sample
	Err    error
	At     int64
}

// MonitorConfig sets the polling cadence. Interval wins when both fields
// are set; a zero config polls at 1 Hz.
type MonitorConfig struct {
	Interval time.Duration
	RateHz   uint32
}

// Monitor periodically reads a normal-mode device and delivers every
// result, errors included, to a sink channel. The caller configures the
// device into normal mode first and owns both the channel and the
// goroutine Run is called on.
type Monitor struct {
	dev      *Device
	interval time.Duration
	sink     chan<- Reading
}

func NewMonitor(dev *Device, cfg MonitorConfig, sink chan<- Reading) *Monitor {
	interval := cfg.Interval
	if interval <= 0 {
		interval = timex.PeriodFromHz(cfg.RateHz)
	}
	return &Monitor{dev: dev, interval: interval, sink: sink}
}

// Run polls until ctx is done. Delivery blocks: a full sink applies
// backpressure to the poll loop rather than dropping readings.
func (m *Monitor) Run(ctx context.Context) {
	t := time.NewTimer(m.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s, err := m.dev.ReadLast()
			select {
			case m.sink <- Reading{Sample: s, Err: err, At: timex.NowMs()}:
			case <-ctx.Done():
				return
			}
			t.Reset(m.interval)
		}
	}
}
