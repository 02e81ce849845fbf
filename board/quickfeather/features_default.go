package quickfeather

// DefaultFeatures is the compiled-in selection. Build tags spi_eoss3,
// pwm_litex, pwm_eoss3 and uart_liteuart each switch one group on.
var DefaultFeatures Features
