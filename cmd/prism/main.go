package main

import (
	"fmt"

	"github.com/integrii/flaggy"
	"github.com/sirupsen/logrus"

	"github.com/prism-viz/prism"
	"github.com/prism-viz/prism/input"

	_ "github.com/prism-viz/prism/input/portaudio"
)

// AppName is the app name
const AppName = "prism"

// AppDesc is the app description
const AppDesc = "paint the spectrum of your audio input"

// AppSite is the app website
const AppSite = "https://github.com/prism-viz/prism"

var version = "unknown"

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	cfg := prism.NewZeroConfig()

	if doFlags(&cfg) {
		return
	}

	chk(cfg.Validate(), "invalid config")

	chk(prism.Run(&cfg), "failed to run prism")
}

func doFlags(cfg *prism.Config) bool {

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.Version = version

	listBackendsCmd := flaggy.Subcommand{
		Name:        "list-backends",
		ShortName:   "lb",
		Description: "list all supported backends",
	}

	parser.AttachSubcommand(&listBackendsCmd, 1)

	listDevicesCmd := flaggy.Subcommand{
		Name:                 "list-devices",
		ShortName:            "ld",
		Description:          "list all devices for a backend",
		AdditionalHelpAppend: "\nuse the full name after the '-'",
	}

	parser.AttachSubcommand(&listDevicesCmd, 1)

	parser.String(&cfg.Backend, "b", "backend", "backend name")
	parser.String(&cfg.Device, "d", "device", "device name")

	chk(parser.Parse(), "failed to parse arguments")

	switch {
	case listBackendsCmd.Used:
		for _, backend := range input.Backends {
			fmt.Printf("- %s\n", backend.Name)
		}

		return true

	case listDevicesCmd.Used:
		backend, err := input.InitBackend(cfg.Backend)
		chk(err, "failed to init backend")
		defer backend.Close()

		devices, err := backend.Devices()
		chk(err, "failed to get devices")

		// We don't really need the default device to be indicated.
		defaultDevice, _ := backend.DefaultDevice()

		fmt.Printf("all devices for %q backend. '*' marks default\n", cfg.Backend)

		for idx := range devices {
			star := ' '
			if defaultDevice != nil && devices[idx].String() == defaultDevice.String() {
				star = '*'
			}

			fmt.Printf("- %v %c\n", devices[idx], star)
		}

		return true
	}

	return false
}

func chk(err error, wrap string) {
	if err != nil {
		logrus.WithError(err).Fatal(wrap)
	}
}
