package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/DrakeOne/voxelcraft-optimized/internal/culling"
	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
)

// ChunkCoord identifica um chunk na grade do mundo. Cada unidade vale
// GridSize blocos no eixo correspondente.
type ChunkCoord struct {
	X, Y, Z int32
}

// String formata a coordenada para logs e HUD.
func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Add retorna a soma componente a componente.
func (c ChunkCoord) Add(o ChunkCoord) ChunkCoord {
	return ChunkCoord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Offset retorna a coordenada do vizinho na direção da face.
func (c ChunkCoord) Offset(f voxel.Face) ChunkCoord {
	dx, dy, dz := f.Offset()
	return ChunkCoord{c.X + dx, c.Y + dy, c.Z + dz}
}

// WorldOrigin retorna o canto mínimo do chunk em blocos do mundo.
func (c ChunkCoord) WorldOrigin() (int32, int32, int32) {
	return c.X * voxel.GridSize, c.Y * voxel.GridSize, c.Z * voxel.GridSize
}

// Bounds retorna a caixa do chunk em coordenadas de mundo.
func (c ChunkCoord) Bounds() culling.AABB {
	x, y, z := c.WorldOrigin()
	min := mgl32.Vec3{float32(x), float32(y), float32(z)}
	return culling.AABB{
		Min: min,
		Max: min.Add(mgl32.Vec3{voxel.GridSize, voxel.GridSize, voxel.GridSize}),
	}
}

// Center retorna o centro do chunk em coordenadas de mundo.
func (c ChunkCoord) Center() mgl32.Vec3 {
	x, y, z := c.WorldOrigin()
	const half = float32(voxel.GridSize) / 2
	return mgl32.Vec3{float32(x) + half, float32(y) + half, float32(z) + half}
}

// floorDiv arredonda a divisão para baixo também nos negativos.
func floorDiv(a, n int32) int32 {
	q := a / n
	if a < 0 && a%n != 0 {
		q--
	}
	return q
}

// WorldToChunk converte uma coordenada global de bloco no chunk dono e
// na posição local dentro dele. A divisão de piso garante o mapeamento
// correto nos quadrantes negativos: o bloco -1 pertence ao chunk -1 na
// posição local 15, não ao chunk 0.
func WorldToChunk(wx, wy, wz int32) (c ChunkCoord, lx, ly, lz int32) {
	c = ChunkCoord{
		X: floorDiv(wx, voxel.GridSize),
		Y: floorDiv(wy, voxel.GridSize),
		Z: floorDiv(wz, voxel.GridSize),
	}
	lx = wx - c.X*voxel.GridSize
	ly = wy - c.Y*voxel.GridSize
	lz = wz - c.Z*voxel.GridSize
	return c, lx, ly, lz
}
