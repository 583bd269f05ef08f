package meshing

import "github.com/DrakeOne/voxelcraft-optimized/internal/voxel"

// Eixo principal de cada face, na ordem de voxel.Face.
var faceAxis = [voxel.FaceCount]int{0, 0, 1, 1, 2, 2}

// NaiveMesher emite uma face unitária por voxel visível, sem fusão
// alguma. Serve de referência de corretude e de régua de custo para o
// greedy: aplica por voxel a mesma regra de fronteira da máscara (só
// emite quando os dois lados diferem), então toda face que o greedy
// funde existe aqui desmembrada em quads 1×1.
type NaiveMesher struct{}

// Name identifica o algoritmo na configuração e no HUD.
func (NaiveMesher) Name() string { return "naive" }

// Build percorre todos os voxels e emite cada face exposta, ou nil se vazio.
func (NaiveMesher) Build(vol Volume) *MeshData {
	buf := GetMeshBuffer()

	const n = voxel.GridSize
	for y := int32(0); y < n; y++ {
		for z := int32(0); z < n; z++ {
			for x := int32(0); x < n; x++ {
				b := vol.Sample(x, y, z)
				if b.IsAir() {
					continue
				}
				for f := voxel.Face(0); f < voxel.FaceCount; f++ {
					dx, dy, dz := f.Offset()
					if vol.Sample(x+dx, y+dy, z+dz) == b {
						continue
					}

					d := faceAxis[f]
					positive := f%2 == 0
					pos := [3]int32{x, y, z}
					plane := pos[d]
					if positive {
						plane++
					}
					u := (d + 1) % 3
					v := (d + 2) % 3
					emitRect(buf, d, positive, plane, pos[u], pos[v], 1, 1, b)
				}
			}
		}
	}

	if buf.Geometry.QuadCount() == 0 {
		PutMeshBuffer(buf)
		return nil
	}
	data := buf.Geometry.Clone()
	PutMeshBuffer(buf)
	return &data
}
