package world

import (
	"github.com/DrakeOne/voxelcraft-optimized/internal/culling"
	"github.com/DrakeOne/voxelcraft-optimized/internal/meshing"
	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
)

// State descreve o ciclo de vida de um chunk dentro do manager.
type State uint8

const (
	StateRequested  State = iota // criado, esperando na fila de geração
	StateGenerating              // gerador preenchendo o grid
	StateMeshed                  // geometria pronta e em dia
	StateDirty                   // conteúdo mudou, malha desatualizada
	StateUnloaded                // devolvido ao pool
)

// String identifica o estado nos logs e no HUD.
func (s State) String() string {
	switch s {
	case StateRequested:
		return "requested"
	case StateGenerating:
		return "generating"
	case StateMeshed:
		return "meshed"
	case StateDirty:
		return "dirty"
	default:
		return "unloaded"
	}
}

// Chunk é um cubo denso de voxels com identidade fixa na grade do
// mundo, referências não-donas para os seis vizinhos e a geometria
// corrente. Todo acesso acontece na goroutine do loop de frames.
type Chunk struct {
	Coord ChunkCoord

	grid      voxel.Grid
	neighbors [voxel.FaceCount]*Chunk

	state    State
	dirty    bool
	lod      LODTier
	distance float32

	mesh        *meshing.MeshData
	meshVersion int64

	visible bool
}

// Get lê o voxel local; fora do grid devolve Air.
func (c *Chunk) Get(x, y, z int32) voxel.Block {
	return c.grid.Get(x, y, z)
}

// Set escreve o voxel local e marca o chunk sujo quando o valor muda.
// Retorna falso fora do grid; escrever o mesmo valor é um no-op bem
// sucedido que não dispara remesh.
func (c *Chunk) Set(x, y, z int32, b voxel.Block) bool {
	if !voxel.InBounds(x, y, z) {
		return false
	}
	if c.grid.Get(x, y, z) == b {
		return true
	}
	c.grid.Set(x, y, z, b)
	c.MarkDirty()
	return true
}

// Sample implementa meshing.Volume. Dentro do grid lê direto; um passo
// fora em um único eixo resolve no vizinho ligado com a coordenada
// rebatida; sem vizinho ligado (ou fora em mais de um eixo) responde
// Air, então as faces da borda ficam visíveis até o vizinho chegar.
func (c *Chunk) Sample(x, y, z int32) voxel.Block {
	if voxel.InBounds(x, y, z) {
		return c.grid.Get(x, y, z)
	}

	var face voxel.Face
	switch {
	case x < 0:
		face = voxel.FaceWest
		x += voxel.GridSize
	case x >= voxel.GridSize:
		face = voxel.FaceEast
		x -= voxel.GridSize
	case y < 0:
		face = voxel.FaceBottom
		y += voxel.GridSize
	case y >= voxel.GridSize:
		face = voxel.FaceTop
		y -= voxel.GridSize
	case z < 0:
		face = voxel.FaceSouth
		z += voxel.GridSize
	default:
		face = voxel.FaceNorth
		z -= voxel.GridSize
	}
	if !voxel.InBounds(x, y, z) {
		// Canto ou aresta: fora em mais de um eixo.
		return voxel.Air
	}

	n := c.neighbors[face]
	if n == nil {
		return voxel.Air
	}
	return n.grid.Get(x, y, z)
}

// FaceVisible responde se a face do voxel em (x,y,z) aparece na malha:
// o voxel precisa ser sólido e a amostra do outro lado (resolvida pela
// mesma regra de Sample) precisa ser ar.
func (c *Chunk) FaceVisible(x, y, z int32, f voxel.Face) bool {
	if c.grid.Get(x, y, z).IsAir() {
		return false
	}
	dx, dy, dz := f.Offset()
	return c.Sample(x+dx, y+dy, z+dz).IsAir()
}

// MarkDirty sinaliza que a malha não reflete mais o grid.
func (c *Chunk) MarkDirty() {
	c.dirty = true
	if c.state == StateMeshed {
		c.state = StateDirty
	}
}

// Remesh reconstrói a geometria com o mesher dado e substitui a malha
// inteira de uma vez. A versão sobe a cada reconstrução para o
// renderer detectar que o upload anterior envelheceu.
func (c *Chunk) Remesh(m meshing.Mesher) {
	c.mesh = m.Build(c)
	c.meshVersion++
	c.dirty = false
	c.state = StateMeshed
}

// UpdateLOD reavalia o tier pela distância ao observador e retorna se
// houve mudança. O tier ainda não simplifica a geometria: a mudança só
// marca o chunk sujo como gancho de atualização para simplificação
// futura.
func (c *Chunk) UpdateLOD(dist, near, far float32) bool {
	c.distance = dist
	tier := TierFor(dist, near, far)
	if tier == c.lod {
		return false
	}
	c.lod = tier
	c.MarkDirty()
	return true
}

// Link conecta o vizinho na face dada, nos dois sentidos.
func (c *Chunk) Link(f voxel.Face, n *Chunk) {
	if n == nil {
		return
	}
	c.neighbors[f] = n
	n.neighbors[f.Opposite()] = c
}

// Unlink desfaz a ligação da face dada, nos dois sentidos.
func (c *Chunk) Unlink(f voxel.Face) {
	n := c.neighbors[f]
	if n == nil {
		return
	}
	c.neighbors[f] = nil
	n.neighbors[f.Opposite()] = nil
}

// Neighbor retorna o vizinho ligado na face dada, ou nil.
func (c *Chunk) Neighbor(f voxel.Face) *Chunk {
	return c.neighbors[f]
}

// Bounds retorna a caixa do chunk em coordenadas de mundo.
func (c *Chunk) Bounds() culling.AABB {
	return c.Coord.Bounds()
}

// Empty responde se o grid é todo ar. Um chunk soterrado pode ter
// malha nula e mesmo assim não ser vazio.
func (c *Chunk) Empty() bool {
	return c.grid.Empty()
}

// Filled retorna o número de voxels sólidos.
func (c *Chunk) Filled() int32 {
	return c.grid.Filled()
}

// Full responde se todos os voxels são sólidos.
func (c *Chunk) Full() bool {
	return c.grid.Filled() == voxel.GridVolume
}

// Mesh retorna a geometria corrente, ou nil quando não há faces.
func (c *Chunk) Mesh() *meshing.MeshData {
	return c.mesh
}

// MeshVersion retorna a versão da geometria corrente.
func (c *Chunk) MeshVersion() int64 {
	return c.meshVersion
}

// State retorna o estado corrente do ciclo de vida.
func (c *Chunk) State() State {
	return c.state
}

// Dirty responde se a malha está desatualizada.
func (c *Chunk) Dirty() bool {
	return c.dirty
}

// LOD retorna o tier corrente.
func (c *Chunk) LOD() LODTier {
	return c.lod
}

// Distance retorna a última distância medida ao observador.
func (c *Chunk) Distance() float32 {
	return c.distance
}

// Visible responde se o chunk passou nos testes de culling do último
// tick e tem geometria para desenhar.
func (c *Chunk) Visible() bool {
	return c.visible
}

// resetChunk devolve o chunk ao estado de fábrica para reuso pelo
// pool. A versão da malha NÃO zera: o renderer a usa para detectar
// geometria nova mesmo quando a instância é reciclada.
func resetChunk(c *Chunk) {
	c.Coord = ChunkCoord{}
	c.grid.Reset()
	c.neighbors = [voxel.FaceCount]*Chunk{}
	c.state = StateRequested
	c.dirty = false
	c.lod = Tier0
	c.distance = 0
	c.mesh = nil
	c.visible = false
}
