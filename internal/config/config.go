package config

const (
	// Dose model
	DistanceFloor = 1e-6 // Minimum distance in meters before division (avoids div by zero)

	// Model parameter defaults (educational reference values, not clinical)
	DefaultReferenceDose = 50.0 // Dose rate at the reference distance (μSv/h)
	DefaultReferenceDist = 1.0  // Reference distance in meters
	DefaultAttenuation   = 1.0  // No shielding
	DefaultOperational   = 1.0  // Nominal exposure settings

	// UI bounds for model parameters
	AttenuationMin = 0.0
	AttenuationMax = 1.0
	OperationalMin = 0.5
	OperationalMax = 2.0

	// Evaluation distance
	DefaultDistance = 1.0 // Initial applied distance in meters
	DistanceMin     = 0.1 // UI floor for the distance input
	DistanceStep    = 0.1

	// Curve sampling
	DefaultCurveMin = 0.5 // Meters
	DefaultCurveMax = 5.0 // Meters
	DefaultPoints   = 200
	PointsMin       = 50
	PointsMax       = 500
	PointsStep      = 10

	// Display
	MarkerPulsePeriodSec = 1.5 // Applied-point marker pulse cycle duration
	TargetFPS            = 15  // Frames per second for the pulse animation

	// App
	AppName    = "RADCURVE"
	AppVersion = "1.0"
)
