package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
)

func TestWorldToChunk(t *testing.T) {
	tests := []struct {
		wx, wy, wz int32
		chunk      ChunkCoord
		lx, ly, lz int32
	}{
		{0, 0, 0, ChunkCoord{0, 0, 0}, 0, 0, 0},
		{15, 15, 15, ChunkCoord{0, 0, 0}, 15, 15, 15},
		{16, 0, 0, ChunkCoord{1, 0, 0}, 0, 0, 0},
		{-1, -1, -1, ChunkCoord{-1, -1, -1}, 15, 15, 15},
		{-16, 0, 0, ChunkCoord{-1, 0, 0}, 0, 0, 0},
		{-17, 0, 0, ChunkCoord{-2, 0, 0}, 15, 0, 0},
		{35, -3, 100, ChunkCoord{2, -1, 6}, 3, 13, 4},
	}

	for _, tt := range tests {
		c, lx, ly, lz := WorldToChunk(tt.wx, tt.wy, tt.wz)
		if c != tt.chunk || lx != tt.lx || ly != tt.ly || lz != tt.lz {
			t.Errorf("WorldToChunk(%d,%d,%d): esperado %v local (%d,%d,%d), obtido %v local (%d,%d,%d)",
				tt.wx, tt.wy, tt.wz, tt.chunk, tt.lx, tt.ly, tt.lz, c, lx, ly, lz)
		}
	}
}

func TestWorldToChunkRoundTrip(t *testing.T) {
	// Chunk e local reconstroem a coordenada global exata.
	coords := []int32{-33, -17, -16, -15, -1, 0, 1, 15, 16, 17, 40}
	for _, w := range coords {
		c, lx, _, _ := WorldToChunk(w, 0, 0)
		if back := c.X*voxel.GridSize + lx; back != w {
			t.Errorf("Ida e volta de %d produziu %d", w, back)
		}
		if lx < 0 || lx >= voxel.GridSize {
			t.Errorf("Local fora da faixa para %d: %d", w, lx)
		}
	}
}

func TestChunkCoordOffset(t *testing.T) {
	c := ChunkCoord{1, 2, 3}
	for f := voxel.Face(0); f < voxel.FaceCount; f++ {
		n := c.Offset(f)
		if back := n.Offset(f.Opposite()); back != c {
			t.Errorf("Offset(%v) seguido do oposto deveria voltar a %v, foi parar em %v", f, c, back)
		}
	}
	if got := c.Offset(voxel.FaceTop); got != (ChunkCoord{1, 3, 3}) {
		t.Errorf("Vizinho de cima esperado (1,3,3), obtido %v", got)
	}
}

func TestChunkCoordBounds(t *testing.T) {
	b := ChunkCoord{1, -1, 0}.Bounds()
	if b.Min != (mgl32.Vec3{16, -16, 0}) {
		t.Errorf("Min esperado (16,-16,0), obtido %v", b.Min)
	}
	if b.Max != (mgl32.Vec3{32, 0, 16}) {
		t.Errorf("Max esperado (32,0,16), obtido %v", b.Max)
	}
	if c := (ChunkCoord{0, 0, 0}).Center(); c != (mgl32.Vec3{8, 8, 8}) {
		t.Errorf("Centro esperado (8,8,8), obtido %v", c)
	}
}
