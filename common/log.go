package common

import (
	logging "github.com/ipfs/go-log"
)

// Logger is shared by every package in this module that needs to report
// protocol-level failures (bad commitment, failed proof, transport error).
// Call SetLogLevel("gg18", level) from the process entrypoint to adjust verbosity.
var Logger = logging.Logger("gg18")

func SetLogLevel(subsystem, level string) error {
	return logging.SetLogLevel(subsystem, level)
}
