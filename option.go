package zipkit

import (
	"go.llib.dev/zipkit/port/option"
)

// ZipConfig contains the configuration for a zip sequence construction.
type ZipConfig struct {
	// Strict enforces that all zipped sources must exhaust at the very same step.
	Strict bool
}

func (c ZipConfig) Configure(t *ZipConfig) { t.Strict = t.Strict || c.Strict }

type ZipOption option.Option[ZipConfig]

// Strict configures zipping to fail with a LengthMismatchError
// when the zipped sources turn out to be unequal in length.
//
// By default, zipping silently stops at the shortest source.
// Strict zipping is meant for sources that are expected to move in lockstep,
// where a length difference signals a logic error in the caller's data.
func Strict() ZipOption {
	return option.Func[ZipConfig](func(c *ZipConfig) {
		c.Strict = true
	})
}
