//go:build spi_eoss3

package quickfeather

func init() { DefaultFeatures.SPI = true }
