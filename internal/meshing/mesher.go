package meshing

import (
	"log"
	"strings"

	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
)

// Volume é a fonte de voxels que o mesher enxerga, em coordenadas
// locais do chunk. Amostras fora do grid devem resolver no vizinho
// ligado (ou Air quando não há vizinho), o que costura as malhas na
// fronteira entre chunks sem faces internas duplicadas.
type Volume interface {
	Sample(x, y, z int32) voxel.Block
}

// Mesher transforma um volume de voxels em geometria. As duas
// estratégias (greedy e naive) vivem atrás desta interface para o
// chamador trocar de algoritmo por configuração sem tocar no resto.
// Build devolve nil quando nenhuma face é visível.
type Mesher interface {
	Build(vol Volume) *MeshData
	Name() string
}

// New resolve o mesher pelo nome vindo da configuração.
func New(name string) Mesher {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "greedy":
		return GreedyMesher{}
	case "naive":
		return NaiveMesher{}
	default:
		log.Printf("[Meshing] Algoritmo '%s' desconhecido, usando greedy", name)
		return GreedyMesher{}
	}
}

// faceFor mapeia eixo + lado para a face correspondente do voxel.
func faceFor(d int, positive bool) voxel.Face {
	switch d {
	case 0:
		if positive {
			return voxel.FaceEast
		}
		return voxel.FaceWest
	case 1:
		if positive {
			return voxel.FaceTop
		}
		return voxel.FaceBottom
	default:
		if positive {
			return voxel.FaceNorth
		}
		return voxel.FaceSouth
	}
}

// emitRect emite um retângulo no plano perpendicular ao eixo d.
// plane é a coordenada da fronteira (0..N), i/j o canto inferior nos
// eixos u=(d+1)%3 e v=(d+2)%3, w/h a extensão ao longo de u e v. Como
// u e v seguem a ordem cíclica dos eixos, a mesma permutação de cantos
// é CCW para os três valores de d; o lado negativo inverte a ordem.
func emitRect(buf *MeshBuffer, d int, positive bool, plane, i, j, w, h int32, block voxel.Block) {
	u := (d + 1) % 3
	v := (d + 2) % 3

	var p0 [3]float32
	p0[d] = float32(plane)
	p0[u] = float32(i)
	p0[v] = float32(j)

	p1 := p0
	p1[u] += float32(w)
	p2 := p1
	p2[v] += float32(h)
	p3 := p0
	p3[v] += float32(h)

	face := faceFor(d, positive)
	n := face.Normal()
	c := voxel.FaceColor(block, face)

	// UVs em unidades de blocos: um quad fundido de w×h repete a
	// textura w×h vezes em vez de esticá-la.
	uv0 := [2]float32{0, 0}
	uv1 := [2]float32{float32(w), 0}
	uv2 := [2]float32{float32(w), float32(h)}
	uv3 := [2]float32{0, float32(h)}

	if positive {
		buf.AddQuad(p0, p1, p2, p3, uv0, uv1, uv2, uv3, n, c)
	} else {
		buf.AddQuad(p0, p3, p2, p1, uv0, uv3, uv2, uv1, n, c)
	}
}
