package worldgen

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
	"github.com/DrakeOne/voxelcraft-optimized/internal/world"
)

// Nível do mar e linha de neve em blocos de altura global.
const (
	seaLevel = 0
	snowLine = 18
)

// Terrain gera relevo por ruído simplex fractal: uma altura por coluna
// (x,z), estratificada de cima para baixo em superfície, terra e
// pedra, com areia nas praias, água até o nível do mar e neve nos
// picos. O mesmo seed produz o mesmo mundo bloco a bloco.
type Terrain struct {
	noise     opensimplex.Noise32
	amplitude float32
	scale     float32
}

// New monta o gerador com a semente e os parâmetros de relevo.
// Amplitude controla a altura dos morros, scale o espalhamento
// horizontal das formas.
func New(seed int64, amplitude, scale float32) *Terrain {
	if amplitude <= 0 {
		amplitude = 24
	}
	if scale <= 0 {
		scale = 96
	}
	return &Terrain{
		noise:     opensimplex.New32(seed),
		amplitude: amplitude,
		scale:     scale,
	}
}

// Generate preenche o grid do chunk coluna a coluna.
func (t *Terrain) Generate(c *world.Chunk) {
	ox, oy, oz := c.Coord.WorldOrigin()
	for z := int32(0); z < voxel.GridSize; z++ {
		for x := int32(0); x < voxel.GridSize; x++ {
			h := t.Height(ox+x, oz+z)
			for y := int32(0); y < voxel.GridSize; y++ {
				if b := t.blockAt(oy+y, h); !b.IsAir() {
					c.Set(x, y, z, b)
				}
			}
		}
	}
}

// Height devolve a altura do terreno na coluna global (x,z).
func (t *Terrain) Height(x, z int32) int32 {
	return int32(fractalNoise(t.noise, float32(x), float32(z), t.amplitude, 4, 2.0, 0.5, t.scale))
}

// blockAt decide o bloco da altura global y numa coluna de altura h.
func (t *Terrain) blockAt(y, h int32) voxel.Block {
	switch {
	case y > h:
		if y <= seaLevel {
			return voxel.Water
		}
		return voxel.Air
	case y == h:
		switch {
		case h >= snowLine:
			return voxel.Snow
		case h <= seaLevel+1:
			return voxel.Sand
		default:
			return voxel.Grass
		}
	case y >= h-3:
		if h <= seaLevel+1 {
			return voxel.Sand
		}
		return voxel.Dirt
	default:
		return voxel.Stone
	}
}

// fractalNoise soma oitavas de ruído com frequência dobrando e
// amplitude caindo pela metade a cada oitava.
func fractalNoise(n opensimplex.Noise32, x, z, amplitude float32, octaves int, lacunarity, persistence, scale float32) float32 {
	var val float32
	for i := 0; i < octaves; i++ {
		val += n.Eval2(x/scale, z/scale) * amplitude
		x *= lacunarity
		z *= lacunarity
		amplitude *= persistence
	}
	return val
}
