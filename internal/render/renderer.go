package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DrakeOne/voxelcraft-optimized/internal/meshing"
	"github.com/DrakeOne/voxelcraft-optimized/internal/world"
)

// chunkModel é o modelo GPU de um chunk mais a versão da malha que
// ele representa. purging marca que o chunk saiu da janela ativa e o
// modelo está na fila de descarte.
type chunkModel struct {
	model   rl.Model
	version int64
	purging bool
}

// Renderer mantém um modelo Raylib por chunk ativo, sincronizado pela
// versão da malha. Todo acesso acontece na thread principal: quem
// produz as malhas é o tick do mundo, o renderer só faz upload e draw.
type Renderer struct {
	models     map[world.ChunkCoord]*chunkModel
	purgeQueue []world.ChunkCoord
	wireframe  bool

	uploads int // modelos subidos desde o início, para o HUD
}

// New cria um renderer vazio.
func New() *Renderer {
	return &Renderer{
		models:     make(map[world.ChunkCoord]*chunkModel),
		purgeQueue: make([]world.ChunkCoord, 0),
	}
}

// Sync sobe para a GPU as malhas novas ou remalhadas e agenda a purga
// dos modelos cujos chunks saíram da janela ativa. O custo por frame é
// limitado pelo orçamento de remesh do mundo, então não há fila de
// upload própria aqui.
func (r *Renderer) Sync(m *world.Manager) {
	if !rl.IsWindowReady() {
		return
	}

	active := m.Active()

	for coord, c := range active {
		data := c.Mesh()
		if data == nil {
			// Chunk vazio ou enterrado: o modelo antigo, se existir, sai
			// na hora. Acontece uma edição por vez, não causa hitch.
			if cm, ok := r.models[coord]; ok {
				rl.UnloadModel(cm.model)
				delete(r.models, coord)
			}
			continue
		}
		if cm, ok := r.models[coord]; ok {
			cm.purging = false // voltou para a janela antes da purga
			if cm.version == c.MeshVersion() {
				continue
			}
		}
		r.upload(coord, data, c.MeshVersion())
	}

	// Modelos órfãos: o chunk saiu da janela (ou o ponteiro foi
	// reciclado para outra coordenada). Vão para a fila de purga em vez
	// de descarregar todos de uma vez num teleporte.
	for coord, cm := range r.models {
		if _, ok := active[coord]; !ok && !cm.purging {
			cm.purging = true
			r.purgeQueue = append(r.purgeQueue, coord)
		}
	}

	r.processPurge()
}

// upload substitui o modelo da coordenada pela malha nova.
func (r *Renderer) upload(coord world.ChunkCoord, data *meshing.MeshData, version int64) {
	if old, ok := r.models[coord]; ok {
		rl.UnloadModel(old.model)
		delete(r.models, coord)
	}
	if data.VertexCount() == 0 {
		return
	}

	mesh := geometryToMesh(data)
	rl.UploadMesh(&mesh, false)
	// A geometria já está na GPU; a cópia em RAM C pode morrer agora.
	// O picking usa o raycast em voxels, não as malhas.
	freeMeshRAM(&mesh)

	r.models[coord] = &chunkModel{
		model:   rl.LoadModelFromMesh(mesh),
		version: version,
	}
	r.uploads++
}

// geometryToMesh monta uma rl.Mesh apontando para cópias em memória C
// dos buffers, como o Raylib espera para poder liberá-las depois.
func geometryToMesh(data *meshing.MeshData) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(data.VertexCount())
	mesh.TriangleCount = int32(data.TriangleCount())

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	if len(data.Indices) > 0 {
		mesh.Indices = (*uint16)(copyToC(unsafe.Pointer(&data.Indices[0]), len(data.Indices)*2))
	}
	return mesh
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a memória C da malha após o upload para a GPU e
// zera os ponteiros para o UnloadModel não liberar duas vezes.
func freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Normals != nil {
		C.free(unsafe.Pointer(mesh.Normals))
		mesh.Normals = nil
	}
	if mesh.Colors != nil {
		C.free(unsafe.Pointer(mesh.Colors))
		mesh.Colors = nil
	}
	if mesh.Texcoords != nil {
		C.free(unsafe.Pointer(mesh.Texcoords))
		mesh.Texcoords = nil
	}
	if mesh.Indices != nil {
		C.free(unsafe.Pointer(mesh.Indices))
		mesh.Indices = nil
	}
}

// processPurge descarrega até 2 modelos por frame, para diluir o custo
// de um teleporte em vez de travar um frame inteiro.
func (r *Renderer) processPurge() {
	limit := 2
	if len(r.purgeQueue) < limit {
		limit = len(r.purgeQueue)
	}
	for i := 0; i < limit; i++ {
		coord := r.purgeQueue[0]
		r.purgeQueue = r.purgeQueue[1:]
		cm, ok := r.models[coord]
		if !ok || !cm.purging {
			// A coordenada voltou para a janela e ganhou modelo novo.
			continue
		}
		rl.UnloadModel(cm.model)
		delete(r.models, coord)
	}
}

// Draw desenha os chunks marcados como visíveis pelo mundo. Os
// vértices das malhas são locais ao chunk; a translação para o mundo
// entra aqui, na chamada de draw.
func (r *Renderer) Draw(m *world.Manager) {
	for coord, c := range m.Active() {
		if !c.Visible() {
			continue
		}
		cm, ok := r.models[coord]
		if !ok {
			continue
		}
		x, y, z := coord.WorldOrigin()
		pos := rl.Vector3{X: float32(x), Y: float32(y), Z: float32(z)}
		if r.wireframe {
			rl.DrawModelWires(cm.model, pos, 1.0, rl.White)
		} else {
			rl.DrawModel(cm.model, pos, 1.0, rl.White)
		}
	}
}

// DrawSelection desenha um cubo de destaque no bloco mirado.
func (r *Renderer) DrawSelection(hit world.RaycastHit) {
	pos := rl.Vector3{
		X: float32(hit.X) + 0.5,
		Y: float32(hit.Y) + 0.5,
		Z: float32(hit.Z) + 0.5,
	}
	rl.DrawCubeWires(pos, 1.01, 1.01, 1.01, rl.Yellow)
}

// ToggleWireframe alterna o modo de desenho e retorna o estado novo.
func (r *Renderer) ToggleWireframe() bool {
	r.wireframe = !r.wireframe
	return r.wireframe
}

// ModelCount retorna quantos modelos estão residentes na GPU.
func (r *Renderer) ModelCount() int {
	return len(r.models)
}

// Uploads retorna o total de uploads de malha desde o início.
func (r *Renderer) Uploads() int {
	return r.uploads
}

// PurgeBacklog retorna quantos modelos aguardam descarte.
func (r *Renderer) PurgeBacklog() int {
	return len(r.purgeQueue)
}

// Unload descarrega todos os modelos. Chamar antes do CloseWindow.
func (r *Renderer) Unload() {
	for _, cm := range r.models {
		rl.UnloadModel(cm.model)
	}
	r.models = make(map[world.ChunkCoord]*chunkModel)
	r.purgeQueue = r.purgeQueue[:0]
}
