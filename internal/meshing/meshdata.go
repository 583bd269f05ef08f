package meshing

import "sync"

// MeshData contém os buffers finais de geometria de um chunk: posições,
// normais, cores e UVs por vértice, mais índices de triângulos (dois
// triângulos por quad). O chunk dono é o único proprietário até o
// próximo remesh substituir tudo de uma vez.
type MeshData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
	UVs      []float32
	Indices  []uint16
}

// VertexCount retorna o número de vértices.
func (m *MeshData) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount retorna o número de triângulos.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// QuadCount retorna o número de retângulos emitidos.
func (m *MeshData) QuadCount() int {
	return len(m.Indices) / 6
}

// Clone cria uma cópia profunda dos dados para evitar corrupção de memória.
func (m MeshData) Clone() MeshData {
	clone := MeshData{}
	if len(m.Vertices) > 0 {
		clone.Vertices = make([]float32, len(m.Vertices))
		copy(clone.Vertices, m.Vertices)
	}
	if len(m.Normals) > 0 {
		clone.Normals = make([]float32, len(m.Normals))
		copy(clone.Normals, m.Normals)
	}
	if len(m.Colors) > 0 {
		clone.Colors = make([]uint8, len(m.Colors))
		copy(clone.Colors, m.Colors)
	}
	if len(m.UVs) > 0 {
		clone.UVs = make([]float32, len(m.UVs))
		copy(clone.UVs, m.UVs)
	}
	if len(m.Indices) > 0 {
		clone.Indices = make([]uint16, len(m.Indices))
		copy(clone.Indices, m.Indices)
	}
	return clone
}

// Pool global para reciclar MeshBuffers e evitar alocação excessiva (GC Pressure)
var meshBufferPool = sync.Pool{
	New: func() interface{} {
		return &MeshBuffer{
			Geometry: MeshData{
				Vertices: make([]float32, 0, 4096),
				Normals:  make([]float32, 0, 4096),
				Colors:   make([]uint8, 0, 4096),
				UVs:      make([]float32, 0, 2048),
				Indices:  make([]uint16, 0, 2048),
			},
		}
	},
}

// GetMeshBuffer aloca ou recicla um buffer vazio para meshing.
func GetMeshBuffer() *MeshBuffer {
	return meshBufferPool.Get().(*MeshBuffer)
}

// PutMeshBuffer zera os slices e devolve a memória para o pool.
func PutMeshBuffer(b *MeshBuffer) {
	if b == nil {
		return
	}
	b.Geometry.Vertices = b.Geometry.Vertices[:0]
	b.Geometry.Normals = b.Geometry.Normals[:0]
	b.Geometry.Colors = b.Geometry.Colors[:0]
	b.Geometry.UVs = b.Geometry.UVs[:0]
	b.Geometry.Indices = b.Geometry.Indices[:0]
	meshBufferPool.Put(b)
}

// MeshBuffer auxilia na construção de malhas dinâmicas.
type MeshBuffer struct {
	Geometry MeshData
}

// AddQuad adiciona um retângulo: quatro vértices compartilhados e seis
// índices (triângulos v0,v1,v2 e v0,v2,v3). Os cantos devem vir em
// ordem CCW vistos do lado da normal. Índices uint16 bastam: o pior
// caso de um grid 16³ (xadrez) gera 49.152 vértices, abaixo de 65.536.
func (b *MeshBuffer) AddQuad(v0, v1, v2, v3 [3]float32, uv0, uv1, uv2, uv3 [2]float32, n [3]float32, c [4]uint8) {
	base := uint16(len(b.Geometry.Vertices) / 3)

	b.addVertex(v0, uv0, n, c)
	b.addVertex(v1, uv1, n, c)
	b.addVertex(v2, uv2, n, c)
	b.addVertex(v3, uv3, n, c)

	b.Geometry.Indices = append(b.Geometry.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

func (b *MeshBuffer) addVertex(v [3]float32, uv [2]float32, n [3]float32, c [4]uint8) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	b.Geometry.Colors = append(b.Geometry.Colors, c[0], c[1], c[2], c[3])
	b.Geometry.UVs = append(b.Geometry.UVs, uv[0], uv[1])
}
