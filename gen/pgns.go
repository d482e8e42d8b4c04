package gen

// Pgns names every PGN number present in the catalog this package was
// generated from, independent of which ones have a generated message type.
type Pgns uint32

const (
	PgnsIsoRequest         Pgns = 59904
	PgnsProductInformation Pgns = 126996
	PgnsRudder             Pgns = 127245
	PgnsRateOfTurn         Pgns = 127251
	PgnsWindData           Pgns = 130306
)

// PgnsFromNumber looks up the catalog entry for pgn. ok is false when pgn
// does not appear anywhere in the catalog.
func PgnsFromNumber(pgn uint32) (Pgns, bool) {
	switch pgn {
	case 59904:
		return PgnsIsoRequest, true
	case 126996:
		return PgnsProductInformation, true
	case 127245:
		return PgnsRudder, true
	case 127251:
		return PgnsRateOfTurn, true
	case 130306:
		return PgnsWindData, true
	default:
		return 0, false
	}
}
