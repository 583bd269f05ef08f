package world

// LODTier é o nível de detalhe de um chunk, derivado da distância ao
// observador.
type LODTier uint8

const (
	Tier0 LODTier = iota // perto: detalhe cheio
	Tier1                // meia distância
	Tier2                // longe
)

// String identifica o tier no HUD e nos logs.
func (t LODTier) String() string {
	switch t {
	case Tier0:
		return "LOD0"
	case Tier1:
		return "LOD1"
	default:
		return "LOD2"
	}
}

// TierFor classifica uma distância em blocos segundo os limiares
// configurados. Os limites são inclusivos: exatamente near ainda é
// Tier0, exatamente far ainda é Tier1.
func TierFor(dist, near, far float32) LODTier {
	switch {
	case dist <= near:
		return Tier0
	case dist <= far:
		return Tier1
	default:
		return Tier2
	}
}
