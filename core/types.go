package core

// ShipType is the player's ship variant, also the reward carried by a power-up
type ShipType uint8

const (
	ShipNormal ShipType = iota
	ShipShield
	ShipAttack

	shipTypeCount
)

var shipTypeNames = [...]string{"Normal", "Shield", "Attack"}

func (s ShipType) String() string {
	if int(s) < len(shipTypeNames) {
		return shipTypeNames[s]
	}
	return "Unknown"
}

// RandomShipType picks one of the three variants uniformly
func RandomShipType(rng *FastRand) ShipType {
	return ShipType(rng.Intn(int(shipTypeCount)))
}

// MeteorSize is the meteor tier, strictly decreasing on every split
type MeteorSize uint8

const (
	// MeteorGone is below the smallest tier, splitting a Small meteor yields it
	MeteorGone MeteorSize = iota
	MeteorSmall
	MeteorMedium
	MeteorLarge
)

var meteorSizeNames = [...]string{"Gone", "Small", "Medium", "Large"}

func (m MeteorSize) String() string {
	if int(m) < len(meteorSizeNames) {
		return meteorSizeNames[m]
	}
	return "Unknown"
}

// Smaller returns the next tier down, saturating at MeteorGone
func (m MeteorSize) Smaller() MeteorSize {
	if m == MeteorGone {
		return MeteorGone
	}
	return m - 1
}

// CanSplit reports whether destroying this meteor produces children
func (m MeteorSize) CanSplit() bool {
	return m > MeteorSmall
}
