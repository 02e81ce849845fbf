//go:build uart_liteuart

package quickfeather

func init() { DefaultFeatures.LiteUART = true }
