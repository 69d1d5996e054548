package decode

import "time"

// classify maps a held press duration to a symbol. A Dash is any press held
// at least the threshold; everything shorter is a Dot.
func classify(held, dashThreshold time.Duration) Symbol {
	if held < dashThreshold {
		return Dot
	}
	return Dash
}
