// Package input defines the capture boundary: backends, devices, and
// callback-driven sessions.
package input

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sample is one normalized audio sample in [-1, 1].
type Sample = float64

// WriteFn receives one normalized block of samples. It is invoked from the
// audio delivery context and must return quickly; in particular it must
// never run transform work.
type WriteFn func(block []Sample)

// SessionConfig holds the parameters a backend needs to open a capture
// session.
type SessionConfig struct {
	Device     Device  // device to capture from
	SampleRate float64 // requested sample rate
	SampleSize int     // frames per delivered block
}

// Device identifies a capture device of some backend.
type Device interface {
	// String returns the device name.
	String() string
}

// Session is an open capture stream.
type Session interface {
	// Start begins capture, delivering normalized blocks to fn until Stop.
	Start(fn WriteFn) error
	Stop() error
}

// Backend produces capture sessions for one audio subsystem.
type Backend interface {
	// Init should do nothing if called more than once.
	Init() error
	Close() error

	Devices() ([]Device, error)
	DefaultDevice() (Device, error)
	Start(SessionConfig) (Session, error)
}

type NamedBackend struct {
	Name string
	Backend
}

var Backends []NamedBackend

// RegisterBackend registers a backend globally. This function is not
// thread-safe, and most packages should call it on init().
func RegisterBackend(name string, b Backend) {
	Backends = append(Backends, NamedBackend{
		Name:    name,
		Backend: b,
	})
}

// FindBackend is a helper function that finds a backend. It returns nil if
// the backend is not found.
func FindBackend(name string) Backend {
	for _, backend := range Backends {
		if backend.Name == name {
			return backend
		}
	}
	return nil
}

func HasBackend(name string) bool {
	return FindBackend(name) != nil
}

// DefaultBackend returns the name of the preferred registered backend, or ""
// if none is compiled in.
func DefaultBackend() string {
	if HasBackend("portaudio") {
		return "portaudio"
	}

	if len(Backends) > 0 {
		return Backends[0].Name
	}

	return ""
}

// InitBackend finds and initializes the named backend.
func InitBackend(name string) (Backend, error) {
	backend := FindBackend(name)
	if backend == nil {
		return nil, fmt.Errorf("backend not found: %q; check list-backends", name)
	}

	if err := backend.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize input backend")
	}

	return backend, nil
}

// GetDevice resolves a device name against a backend, falling back to the
// backend's default device for an empty name.
func GetDevice(backend Backend, device string) (Device, error) {
	if device == "" {
		def, err := backend.DefaultDevice()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get default device")
		}
		return def, nil
	}

	devices, err := backend.Devices()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get devices")
	}

	for idx := range devices {
		if devices[idx].String() == device {
			return devices[idx], nil
		}
	}

	return nil, errors.Errorf("device %q not found; check list-devices", device)
}
