package cpu

import "errors"

// ErrUnimplemented is returned for the handful of 65C816 behaviors the core
// explicitly declines to silently miscompute: decimal-mode ADC/SBC and
// entry into 6502 emulation mode outside of reset (spec.md §7).
var ErrUnimplemented = errors.New("cpu: unimplemented")
