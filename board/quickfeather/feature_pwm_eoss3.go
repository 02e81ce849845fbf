//go:build pwm_eoss3

package quickfeather

func init() { DefaultFeatures.PWMEOSS3 = true }
