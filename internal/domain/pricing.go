package domain

// Per-kilometre rates. Cargo kilometres cost double passenger kilometres.
const (
	passengerRatePerKm = 1.0
	cargoRatePerKm     = 2.0
)

// PriceFor computes the fixed linear trip price: distance times the
// kind-specific rate. Deterministic; no rounding beyond natural float
// precision.
func PriceFor(kind VehicleKind, distanceKm int) float64 {
	if kind == KindCargo {
		return float64(distanceKm) * cargoRatePerKm
	}
	return float64(distanceKm) * passengerRatePerKm
}
