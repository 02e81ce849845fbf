//go:build pwm_litex

package quickfeather

func init() { DefaultFeatures.PWMLitex = true }
