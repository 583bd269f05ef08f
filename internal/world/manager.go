package world

import (
	"log"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/DrakeOne/voxelcraft-optimized/internal/culling"
	"github.com/DrakeOne/voxelcraft-optimized/internal/meshing"
	"github.com/DrakeOne/voxelcraft-optimized/internal/util"
	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
)

// Generator preenche o grid de um chunk recém-saído da fila de geração.
type Generator interface {
	Generate(c *Chunk)
}

// GeneratorFunc adapta uma função solta para a interface Generator.
type GeneratorFunc func(c *Chunk)

// Generate chama a própria função.
func (f GeneratorFunc) Generate(c *Chunk) { f(c) }

// Stats agrupa os contadores expostos no HUD e no feed de debug.
type Stats struct {
	Known        int   `json:"known"`
	Active       int   `json:"active"`
	Visible      int   `json:"visible"`
	FilledBlocks int64 `json:"filled_blocks"`
	QueueDepth   int   `json:"queue_depth"`
}

// Params reúne as dependências e os limites do manager. Tudo entra
// explícito pelo construtor; o manager não lê estado global nenhum.
type Params struct {
	Generator Generator
	Mesher    meshing.Mesher
	Occluder  culling.Occluder

	Radius     int32   // raio da janela ativa, em chunks
	Vertical   int32   // limite vertical da janela, em chunks
	LODNear    float32 // distância máxima do tier 0, em blocos
	LODFar     float32 // distância máxima do tier 1, em blocos
	MeshBudget int     // remeshes de chunks sujos por tick
}

// Manager é o dono de todos os chunks: criação, fila de geração em
// ordem estrita de chegada, janela ativa esférica, LOD, remesh e
// visibilidade. Roda inteiro na goroutine do loop de frames; nenhum
// campo carrega lock.
type Manager struct {
	params Params

	known  map[ChunkCoord]*Chunk
	active map[ChunkCoord]*Chunk

	genQueue *util.UniqueQueue[ChunkCoord, *Chunk]
	pool     *util.Pool[Chunk]

	// Reutilizados entre ticks para não realocar a cada frame.
	windowScratch  []ChunkCoord
	dirtyScratch   []*Chunk
	blockerScratch []blockerBox
	rayScratch     []culling.AABB
}

type blockerBox struct {
	coord ChunkCoord
	box   culling.AABB
}

// NewManager monta um manager com as dependências dadas. Campos zero
// em Params recebem os padrões de funcionamento mínimo.
func NewManager(p Params) *Manager {
	if p.Mesher == nil {
		p.Mesher = meshing.GreedyMesher{}
	}
	if p.Occluder == nil {
		p.Occluder = culling.NullOccluder{}
	}
	if p.Radius <= 0 {
		p.Radius = 8
	}
	if p.Vertical <= 0 {
		p.Vertical = 2
	}
	if p.LODNear <= 0 {
		p.LODNear = 50
	}
	if p.LODFar <= p.LODNear {
		p.LODFar = p.LODNear * 2
	}
	if p.MeshBudget <= 0 {
		p.MeshBudget = 8
	}

	return &Manager{
		params:   p,
		known:    make(map[ChunkCoord]*Chunk),
		active:   make(map[ChunkCoord]*Chunk),
		genQueue: util.NewUniqueQueue[ChunkCoord, *Chunk](),
		pool: util.NewPool(
			func() *Chunk { return &Chunk{} },
			resetChunk,
		),
	}
}

// GetOrCreate devolve o chunk da coordenada, criando e enfileirando
// para geração quando ainda não existe. Idempotente: chamadas repetidas
// devolvem a mesma instância sem duplicar entrada na fila.
func (m *Manager) GetOrCreate(coord ChunkCoord) *Chunk {
	if c, ok := m.known[coord]; ok {
		return c
	}

	c := m.pool.Acquire()
	c.Coord = coord
	c.state = StateRequested
	m.known[coord] = c

	// Liga os vizinhos já carregados, nos dois sentidos.
	for f := voxel.Face(0); f < voxel.FaceCount; f++ {
		if n, ok := m.known[coord.Offset(f)]; ok {
			c.Link(f, n)
		}
	}

	m.genQueue.Enqueue(coord, c)
	return c
}

// ChunkAt devolve o chunk da coordenada, se carregado.
func (m *Manager) ChunkAt(coord ChunkCoord) (*Chunk, bool) {
	c, ok := m.known[coord]
	return c, ok
}

// ChunkAtWorld localiza o chunk que contém a posição global dada.
func (m *Manager) ChunkAtWorld(wx, wy, wz int32) (*Chunk, bool) {
	coord, _, _, _ := WorldToChunk(wx, wy, wz)
	return m.ChunkAt(coord)
}

// Active expõe a janela ativa corrente. Visão somente leitura, válida
// até o próximo Update.
func (m *Manager) Active() map[ChunkCoord]*Chunk {
	return m.active
}

// SetOccluder troca a estratégia de oclusão em runtime. nil volta para
// o NullOccluder (nada escondido além do frustum).
func (m *Manager) SetOccluder(o culling.Occluder) {
	if o == nil {
		o = culling.NullOccluder{}
	}
	m.params.Occluder = o
}

// MesherName identifica o algoritmo de meshing em uso.
func (m *Manager) MesherName() string {
	return m.params.Mesher.Name()
}

// Update avança o mundo um tick: reconcilia a janela ativa com a
// posição do observador, gera no máximo um chunk da fila, reavalia
// LOD, remonta chunks sujos dentro do orçamento e recalcula
// visibilidade contra o frustum e o occluder.
func (m *Manager) Update(viewer mgl32.Vec3, frustum *culling.Frustum) {
	m.refreshWindow(viewer)
	m.ProcessGenerationQueue()
	m.updateLOD(viewer)
	m.remeshDirty(viewer)
	m.updateVisibility(viewer, frustum)
}

// refreshWindow ativa as coordenadas dentro da esfera de render e
// descarrega o que ficou de fora. A janela é esférica em unidades de
// chunk, com o eixo vertical limitado separadamente (e em geral mais
// apertado, já que mundos são mais largos do que fundos).
func (m *Manager) refreshWindow(viewer mgl32.Vec3) {
	center := viewerChunk(viewer)
	radius := m.params.Radius
	vertical := m.params.Vertical
	if vertical > radius {
		vertical = radius
	}
	radiusSq := radius * radius

	desired := m.windowScratch[:0]
	next := make(map[ChunkCoord]*Chunk, len(m.active))
	for dy := -vertical; dy <= vertical; dy++ {
		for dz := -radius; dz <= radius; dz++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy+dz*dz > radiusSq {
					continue
				}
				coord := center.Add(ChunkCoord{dx, dy, dz})
				desired = append(desired, coord)
				next[coord] = nil
			}
		}
	}

	// Descarrega primeiro: as instâncias liberadas voltam pelo pool
	// para os chunks que entram na janela neste mesmo tick.
	for coord, c := range m.known {
		if _, keep := next[coord]; !keep {
			m.unload(coord, c)
		}
	}

	// A ordem de varredura da janela define a ordem de chegada na
	// fila de geração, então a ativação percorre o slice e não o mapa.
	for _, coord := range desired {
		next[coord] = m.GetOrCreate(coord)
	}

	m.active = next
	m.windowScratch = desired[:0]
}

// unload desfaz as ligações de vizinhança nos dois sentidos, solta a
// geometria e devolve o chunk ao pool. Entradas dele ainda na fila de
// geração viram órfãs e são descartadas pelo dequeue guardado.
func (m *Manager) unload(coord ChunkCoord, c *Chunk) {
	for f := voxel.Face(0); f < voxel.FaceCount; f++ {
		c.Unlink(f)
	}
	c.state = StateUnloaded
	delete(m.known, coord)
	if !m.pool.Release(c) {
		log.Printf("[World] Release duplo do chunk %v ignorado", coord)
	}
}

// ProcessGenerationQueue atende no máximo uma entrada por tick, em
// ordem estrita de chegada. O dequeue é guardado: se a coordenada saiu
// do mundo (ou foi reciclada para outra instância) enquanto esperava,
// a entrada é descartada sem efeito e a próxima é servida.
func (m *Manager) ProcessGenerationQueue() {
	for {
		coord, c, ok := m.genQueue.Dequeue()
		if !ok {
			return
		}
		if current, known := m.known[coord]; !known || current != c {
			continue
		}

		c.state = StateGenerating
		if m.params.Generator != nil {
			m.params.Generator.Generate(c)
		}
		c.Remesh(m.params.Mesher)

		// O conteúdo novo muda a costura: vizinhos que meshavam contra
		// ar implícito precisam reconstruir.
		for f := voxel.Face(0); f < voxel.FaceCount; f++ {
			if n := c.neighbors[f]; n != nil {
				n.MarkDirty()
			}
		}
		return
	}
}

// updateLOD reavalia o tier de todos os chunks ativos.
func (m *Manager) updateLOD(viewer mgl32.Vec3) {
	for _, c := range m.active {
		dist := viewer.Sub(c.Coord.Center()).Len()
		c.UpdateLOD(dist, m.params.LODNear, m.params.LODFar)
	}
}

// remeshDirty reconstrói chunks sujos até o orçamento do tick, dos
// mais próximos para os mais distantes. A ordenação por distância com
// desempate por coordenada mantém o resultado determinístico.
func (m *Manager) remeshDirty(viewer mgl32.Vec3) {
	dirty := m.dirtyScratch[:0]
	for _, c := range m.active {
		if c.dirty && c.state != StateRequested && c.state != StateGenerating {
			dirty = append(dirty, c)
		}
	}
	sort.Slice(dirty, func(i, j int) bool {
		a, b := dirty[i], dirty[j]
		da := viewer.Sub(a.Coord.Center()).LenSqr()
		db := viewer.Sub(b.Coord.Center()).LenSqr()
		if da != db {
			return da < db
		}
		return lessCoord(a.Coord, b.Coord)
	})

	budget := m.params.MeshBudget
	for _, c := range dirty {
		if budget == 0 {
			break
		}
		c.Remesh(m.params.Mesher)
		budget--
	}
	m.dirtyScratch = dirty[:0]
}

func lessCoord(a, b ChunkCoord) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// updateVisibility decide quem aparece neste tick: o chunk precisa ter
// geometria, caber no frustum e não estar escondido atrás de chunks
// completamente cheios. Só chunks cheios entram como bloqueadores: a
// caixa de um chunk parcial é quase toda vazada e esconderia demais.
func (m *Manager) updateVisibility(viewer mgl32.Vec3, frustum *culling.Frustum) {
	blockers := m.blockerScratch[:0]
	for _, c := range m.active {
		if c.Full() {
			blockers = append(blockers, blockerBox{c.Coord, c.Bounds()})
		}
	}

	for _, c := range m.active {
		if c.mesh == nil {
			c.visible = false
			continue
		}
		bounds := c.Bounds()
		if frustum != nil && !frustum.ContainsAABB(bounds) {
			c.visible = false
			continue
		}

		boxes := m.rayScratch[:0]
		for _, b := range blockers {
			if b.coord != c.Coord {
				boxes = append(boxes, b.box)
			}
		}
		c.visible = !m.params.Occluder.Occluded(viewer, bounds, boxes)
		m.rayScratch = boxes[:0]
	}
	m.blockerScratch = blockers[:0]
}

// GetVoxelAt lê um bloco em coordenadas globais; regiões não
// carregadas respondem Air.
func (m *Manager) GetVoxelAt(wx, wy, wz int32) voxel.Block {
	coord, lx, ly, lz := WorldToChunk(wx, wy, wz)
	c, ok := m.known[coord]
	if !ok {
		return voxel.Air
	}
	return c.grid.Get(lx, ly, lz)
}

// SetVoxelAt escreve um bloco em coordenadas globais e devolve se a
// escrita aconteceu. Regiões não carregadas não são criadas
// implicitamente. Escritas na casca do grid também sujam o vizinho
// daquele lado: a face da costura dele pode ter aparecido ou sumido.
func (m *Manager) SetVoxelAt(wx, wy, wz int32, b voxel.Block) bool {
	coord, lx, ly, lz := WorldToChunk(wx, wy, wz)
	c, ok := m.known[coord]
	if !ok {
		return false
	}
	if c.grid.Get(lx, ly, lz) == b {
		return true
	}
	if !c.Set(lx, ly, lz, b) {
		return false
	}

	if lx == 0 {
		m.dirtyNeighbor(c, voxel.FaceWest)
	}
	if lx == voxel.GridSize-1 {
		m.dirtyNeighbor(c, voxel.FaceEast)
	}
	if ly == 0 {
		m.dirtyNeighbor(c, voxel.FaceBottom)
	}
	if ly == voxel.GridSize-1 {
		m.dirtyNeighbor(c, voxel.FaceTop)
	}
	if lz == 0 {
		m.dirtyNeighbor(c, voxel.FaceSouth)
	}
	if lz == voxel.GridSize-1 {
		m.dirtyNeighbor(c, voxel.FaceNorth)
	}
	return true
}

func (m *Manager) dirtyNeighbor(c *Chunk, f voxel.Face) {
	if n := c.neighbors[f]; n != nil {
		n.MarkDirty()
	}
}

// Stats coleta os contadores do estado corrente.
func (m *Manager) Stats() Stats {
	s := Stats{
		Known:      len(m.known),
		Active:     len(m.active),
		QueueDepth: m.genQueue.Len(),
	}
	for _, c := range m.known {
		s.FilledBlocks += int64(c.grid.Filled())
		if c.visible {
			s.Visible++
		}
	}
	return s
}

// viewerChunk converte a posição contínua do observador na coordenada
// do chunk que o contém.
func viewerChunk(viewer mgl32.Vec3) ChunkCoord {
	coord, _, _, _ := WorldToChunk(
		int32(math.Floor(float64(viewer.X()))),
		int32(math.Floor(float64(viewer.Y()))),
		int32(math.Floor(float64(viewer.Z()))),
	)
	return coord
}
