package quickfeather

import (
	"quickfeather-go/errcode"

	"github.com/google/shlex"
)

// Features selects optional pad groups.
type Features struct {
	SPI      bool // EOS S3 SPI master
	PWMLitex bool // LiteX PWM in the fabric
	PWMEOSS3 bool // EOS S3 PWM in the fabric
	LiteUART bool // LiteUART in the fabric
}

// PWM reports whether either PWM source is enabled.
func (f Features) PWM() bool { return f.PWMLitex || f.PWMEOSS3 }

// Feature names accepted by ParseFeatures; they match the build tags.
const (
	FeatSPI      = "spi_eoss3"
	FeatPWMLitex = "pwm_litex"
	FeatPWMEOSS3 = "pwm_eoss3"
	FeatLiteUART = "uart_liteuart"
	FeatNone     = "none"
)

// ParseFeatures reads a shell-style list of feature names on top of base.
// A name prefixed with "no_" disables it; "none" clears everything.
func ParseFeatures(base Features, s string) (Features, error) {
	words, err := shlex.Split(s)
	if err != nil {
		return base, &errcode.E{C: errcode.Unsupported, Op: "features", Msg: s, Err: err}
	}
	f := base
	for _, w := range words {
		on := true
		name := w
		if len(w) > 3 && w[:3] == "no_" {
			on, name = false, w[3:]
		}
		switch name {
		case FeatSPI:
			f.SPI = on
		case FeatPWMLitex:
			f.PWMLitex = on
		case FeatPWMEOSS3:
			f.PWMEOSS3 = on
		case FeatLiteUART:
			f.LiteUART = on
		case FeatNone:
			f = Features{}
		default:
			return base, &errcode.E{C: errcode.Unsupported, Op: "features", Msg: w}
		}
	}
	return f, nil
}

// String lists the enabled features in ParseFeatures syntax.
func (f Features) String() string {
	s := ""
	add := func(on bool, name string) {
		if !on {
			return
		}
		if s != "" {
			s += " "
		}
		s += name
	}
	add(f.SPI, FeatSPI)
	add(f.PWMLitex, FeatPWMLitex)
	add(f.PWMEOSS3, FeatPWMEOSS3)
	add(f.LiteUART, FeatLiteUART)
	if s == "" {
		return FeatNone
	}
	return s
}
