package voxel

// Block identifica o tipo de um voxel. Zero é sempre ar.
type Block uint8

const (
	Air Block = iota
	Grass
	Dirt
	Stone
	Sand
	Wood
	Leaves
	Water
	Snow
)

// IsAir informa se o bloco é vazio (não gera geometria).
func (b Block) IsAir() bool {
	return b == Air
}

// Name retorna o nome legível do bloco (usado no HUD e em logs).
func (b Block) Name() string {
	switch b {
	case Air:
		return "ar"
	case Grass:
		return "grama"
	case Dirt:
		return "terra"
	case Stone:
		return "pedra"
	case Sand:
		return "areia"
	case Wood:
		return "madeira"
	case Leaves:
		return "folhas"
	case Water:
		return "agua"
	case Snow:
		return "neve"
	}
	return "desconhecido"
}

// Cores base da paleta fixa (RGBA). Sem texturas externas: cada face
// recebe uma cor chapada e o shading vem das normais.
var blockColors = [...][4]uint8{
	Air:    {0, 0, 0, 0},
	Grass:  {106, 170, 64, 255},
	Dirt:   {134, 96, 67, 255},
	Stone:  {128, 128, 128, 255},
	Sand:   {219, 207, 163, 255},
	Wood:   {104, 78, 47, 255},
	Leaves: {60, 125, 45, 255},
	Water:  {52, 108, 202, 210},
	Snow:   {240, 246, 250, 255},
}

// FaceColor retorna a cor RGBA da face de um bloco.
// Grama segue a regra clássica: topo verde, fundo de terra e laterais
// em tom misto. Os demais blocos usam a mesma cor em todas as faces.
func FaceColor(b Block, f Face) [4]uint8 {
	if b == Grass {
		switch f {
		case FaceTop:
			return blockColors[Grass]
		case FaceBottom:
			return blockColors[Dirt]
		default:
			return [4]uint8{121, 134, 70, 255}
		}
	}
	if int(b) < len(blockColors) {
		return blockColors[b]
	}
	return [4]uint8{150, 150, 150, 255} // Fallback absoluto
}
