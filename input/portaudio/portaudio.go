// Package portaudio implements audio capture through the PortAudio library.
package portaudio

import (
	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/prism-viz/prism/input"
)

func init() {
	input.RegisterBackend("portaudio", &Backend{})
}

// Backend represents the PortAudio backend. A zero-value instance is a
// valid instance.
type Backend struct {
	devices []*portaudio.DeviceInfo
}

func (b *Backend) Init() error {
	return portaudio.Initialize()
}

func (b *Backend) Close() error {
	return portaudio.Terminate()
}

func (b *Backend) Devices() ([]input.Device, error) {
	if b.devices == nil {
		devices, err := portaudio.Devices()
		if err != nil {
			return nil, errors.Wrap(err, "failed to list devices")
		}
		b.devices = devices
	}

	gDevices := make([]input.Device, len(b.devices))
	for i, device := range b.devices {
		gDevices[i] = Device{device}
	}

	return gDevices, nil
}

func (b *Backend) DefaultDevice() (input.Device, error) {
	defaultHost, err := portaudio.DefaultHostApi()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get default host API")
	}

	if defaultHost.DefaultInputDevice == nil {
		return nil, errors.New("no default input device found")
	}

	return Device{defaultHost.DefaultInputDevice}, nil
}

func (b *Backend) Start(cfg input.SessionConfig) (input.Session, error) {
	return NewSession(cfg)
}

// Device represents a PortAudio device.
type Device struct {
	*portaudio.DeviceInfo
}

// String returns the device name.
func (d Device) String() string {
	return d.Name
}

// Session is a mono 16-bit callback capture stream.
type Session struct {
	config input.SessionConfig
	stream *portaudio.Stream

	write input.WriteFn
	block []input.Sample // scratch block, reused by every callback
}

// NewSession opens a capture stream on the configured device. The stream is
// not started until Start is called.
func NewSession(config input.SessionConfig) (*Session, error) {
	dv, ok := config.Device.(Device)
	if !ok {
		return nil, errors.Errorf("device is of unknown type %T", config.Device)
	}

	s := &Session{
		config: config,
		block:  make([]input.Sample, config.SampleSize),
	}

	param := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   dv.DeviceInfo,
			Channels: 1,
			Latency:  dv.DefaultLowInputLatency,
		},
		SampleRate:      config.SampleRate,
		FramesPerBuffer: config.SampleSize,
	}

	stream, err := portaudio.OpenStream(param, s.onDeliver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open stream")
	}
	s.stream = stream

	// The device keeps running with whatever rate it actually opened at;
	// a mismatch only skews the frequency axis.
	if info := stream.Info(); info != nil && info.SampleRate != config.SampleRate {
		logrus.WithFields(logrus.Fields{
			"requested": config.SampleRate,
			"obtained":  info.SampleRate,
		}).Warn("device opened with an unexpected sample rate")
	}

	return s, nil
}

// onDeliver runs on the PortAudio delivery thread on every hardware block.
// It normalizes into the scratch block and hands off; nothing here may
// block beyond the sink's own short critical section.
func (s *Session) onDeliver(in []int16) {
	if s.write == nil {
		return
	}

	block := s.block
	if len(in) < len(block) {
		block = block[:len(in)]
	}

	for i := range block {
		block[i] = input.Sample(in[i]) / 32768
	}

	s.write(block)
}

// Start begins capture, delivering normalized blocks to fn.
func (s *Session) Start(fn input.WriteFn) error {
	s.write = fn
	return errors.Wrap(s.stream.Start(), "failed to start stream")
}

// Stop stops capture and closes the stream.
func (s *Session) Stop() error {
	err := s.stream.Stop()
	s.stream.Close()
	return err
}
