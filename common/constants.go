package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS matches the fixed 0.016s step the physics is tuned for.
	TPS = 60
)
