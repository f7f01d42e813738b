// Package config defines the CLI structure and configuration for evkit.
package config

import (
	"github.com/evkit/evkit/internal/cli"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"EVKIT_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"EVKIT_LOG_FILE"`
	RawFile string `help:"Raw event record log file path (default: none)" env:"EVKIT_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Info    cli.Info    `cmd:"" help:"Show identity and capabilities of an input device"`
	Watch   cli.Watch   `cmd:"" help:"Stream decoded events from an input device"`
	Emit    cli.Emit    `cmd:"" help:"Inject an event into an input device"`
	Rumble  cli.Rumble  `cmd:"" help:"Play a rumble effect on a force-feedback device"`
	Virtual cli.Virtual `cmd:"" help:"Create a virtual input device and serve its force-feedback requests"`
	Serve   cli.Serve   `cmd:"" help:"Stream decoded events over a websocket with a live viewer"`
}
