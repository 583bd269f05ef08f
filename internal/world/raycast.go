package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
)

// RaycastHit descreve o bloco atingido por um raio de seleção.
type RaycastHit struct {
	X, Y, Z int32      // bloco atingido, em coordenadas globais
	Face    voxel.Face // face pela qual o raio entrou
	Block   voxel.Block
}

// Adjacent retorna a posição colada na face de entrada, onde um bloco
// novo seria colocado.
func (h RaycastHit) Adjacent() (int32, int32, int32) {
	dx, dy, dz := h.Face.Offset()
	return h.X + dx, h.Y + dy, h.Z + dz
}

// Raycast caminha voxel a voxel na direção do raio até atingir um
// bloco sólido ou esgotar maxDist. Regiões não carregadas contam como
// ar e o raio as atravessa.
func (m *Manager) Raycast(origin, dir mgl32.Vec3, maxDist float32) (RaycastHit, bool) {
	if dir.Len() == 0 || maxDist <= 0 {
		return RaycastHit{}, false
	}
	dir = dir.Normalize()

	pos := [3]int32{
		int32(math.Floor(float64(origin.X()))),
		int32(math.Floor(float64(origin.Y()))),
		int32(math.Floor(float64(origin.Z()))),
	}

	// Observador dentro de um bloco sólido: é ele o atingido, com a
	// face vinda do eixo dominante da direção.
	if b := m.GetVoxelAt(pos[0], pos[1], pos[2]); !b.IsAir() {
		return RaycastHit{
			X: pos[0], Y: pos[1], Z: pos[2],
			Face:  dominantEntryFace(dir),
			Block: b,
		}, true
	}

	var step [3]int32
	var tMax, tDelta [3]float32
	for i := 0; i < 3; i++ {
		d := dir[i]
		switch {
		case d > 0:
			step[i] = 1
			tMax[i] = (float32(pos[i]+1) - origin[i]) / d
			tDelta[i] = 1 / d
		case d < 0:
			step[i] = -1
			tMax[i] = (float32(pos[i]) - origin[i]) / d
			tDelta[i] = -1 / d
		default:
			tMax[i] = float32(math.Inf(1))
			tDelta[i] = float32(math.Inf(1))
		}
	}

	const maxChecks = 1000
	for i := 0; i < maxChecks; i++ {
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		if tMax[axis] > maxDist {
			return RaycastHit{}, false
		}
		pos[axis] += step[axis]
		tMax[axis] += tDelta[axis]

		if b := m.GetVoxelAt(pos[0], pos[1], pos[2]); !b.IsAir() {
			return RaycastHit{
				X: pos[0], Y: pos[1], Z: pos[2],
				Face:  entryFace(axis, step[axis]),
				Block: b,
			}, true
		}
	}
	return RaycastHit{}, false
}

// entryFace é a face pela qual o raio entra no voxel novo ao andar no
// eixo dado: quem anda para leste entra pela face oeste do vizinho.
func entryFace(axis int, step int32) voxel.Face {
	switch axis {
	case 0:
		if step > 0 {
			return voxel.FaceWest
		}
		return voxel.FaceEast
	case 1:
		if step > 0 {
			return voxel.FaceBottom
		}
		return voxel.FaceTop
	default:
		if step > 0 {
			return voxel.FaceSouth
		}
		return voxel.FaceNorth
	}
}

func dominantEntryFace(dir mgl32.Vec3) voxel.Face {
	ax := float32(math.Abs(float64(dir.X())))
	ay := float32(math.Abs(float64(dir.Y())))
	az := float32(math.Abs(float64(dir.Z())))

	axis := 0
	if ay > ax && ay >= az {
		axis = 1
	} else if az > ax && az > ay {
		axis = 2
	}
	step := int32(1)
	if dir[axis] < 0 {
		step = -1
	}
	return entryFace(axis, step)
}
