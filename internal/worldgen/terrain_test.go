package worldgen

import (
	"testing"

	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
	"github.com/DrakeOne/voxelcraft-optimized/internal/world"
)

func TestTerrainDeterministic(t *testing.T) {
	coords := []world.ChunkCoord{{X: 0, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 2}, {X: 3, Y: -1, Z: -4}}

	for _, coord := range coords {
		a := &world.Chunk{Coord: coord}
		b := &world.Chunk{Coord: coord}
		New(42, 24, 96).Generate(a)
		New(42, 24, 96).Generate(b)

		for y := int32(0); y < voxel.GridSize; y++ {
			for z := int32(0); z < voxel.GridSize; z++ {
				for x := int32(0); x < voxel.GridSize; x++ {
					if a.Get(x, y, z) != b.Get(x, y, z) {
						t.Fatalf("Chunk %v divergiu em (%d,%d,%d) com o mesmo seed", coord, x, y, z)
					}
				}
			}
		}
	}
}

func TestTerrainHeightConsistency(t *testing.T) {
	gen := New(7, 24, 96)

	// A mesma coluna responde a mesma altura em chamadas repetidas e
	// a amplitude limita a soma das oitavas.
	for _, p := range [][2]int32{{0, 0}, {100, -50}, {-1000, 1000}} {
		h1 := gen.Height(p[0], p[1])
		h2 := gen.Height(p[0], p[1])
		if h1 != h2 {
			t.Errorf("Coluna (%d,%d) instável: %d depois %d", p[0], p[1], h1, h2)
		}
		// 24 * (1 + 0.5 + 0.25 + 0.125)
		if h1 < -45 || h1 > 45 {
			t.Errorf("Coluna (%d,%d) fora da faixa esperada: %d", p[0], p[1], h1)
		}
	}
}

func TestTerrainStrata(t *testing.T) {
	gen := New(0, 24, 96)

	tests := []struct {
		name string
		y, h int32
		want voxel.Block
	}{
		{"acima do terreno é ar", 10, 5, voxel.Air},
		{"abaixo do mar sem chão é água", -2, -6, voxel.Water},
		{"superfície comum é grama", 5, 5, voxel.Grass},
		{"superfície de praia é areia", 1, 1, voxel.Sand},
		{"superfície alta é neve", 20, 20, voxel.Snow},
		{"logo abaixo da superfície é terra", 4, 6, voxel.Dirt},
		{"fundo é pedra", -10, 6, voxel.Stone},
		{"banco de areia desce junto", 0, 1, voxel.Sand},
	}
	for _, tt := range tests {
		if got := gen.blockAt(tt.y, tt.h); got != tt.want {
			t.Errorf("%s: blockAt(%d, %d) esperado %v, obtido %v", tt.name, tt.y, tt.h, tt.want, got)
		}
	}
}

func TestTerrainSeaLevelAlwaysSolidOrWater(t *testing.T) {
	// No nível do mar toda coluna tem alguma coisa: chão quando a
	// altura alcança, água quando não.
	gen := New(99, 24, 96)
	c := &world.Chunk{Coord: world.ChunkCoord{X: 0, Y: 0, Z: 0}}
	gen.Generate(c)

	for z := int32(0); z < voxel.GridSize; z++ {
		for x := int32(0); x < voxel.GridSize; x++ {
			if c.Get(x, 0, z).IsAir() {
				t.Fatalf("Coluna (%d,%d) vazia no nível do mar", x, z)
			}
		}
	}
	if c.Filled() < voxel.GridSize*voxel.GridSize {
		t.Errorf("Chunk no nível do mar deveria ter ao menos o piso preenchido, tem %d", c.Filled())
	}
}

func TestTerrainImplementsGenerator(t *testing.T) {
	var _ world.Generator = New(1, 0, 0)
}
