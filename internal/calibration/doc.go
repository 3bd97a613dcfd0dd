// Package calibration measures where FFT multiplication overtakes the
// schoolbook kernel on this machine and persists the result as a profile.
package calibration
