package voxel

// GridSize é a aresta do grid de voxels de um chunk.
const GridSize = 16

// GridVolume é o total de células de um grid.
const GridVolume = GridSize * GridSize * GridSize

// Grid é o volume denso de voxels de um chunk. O mapeamento entre
// coordenadas locais e índice linear é bijetivo: cada célula aparece
// exatamente uma vez em blocks.
type Grid struct {
	blocks [GridVolume]Block
	filled int32 // células não-ar
}

// Index converte coordenadas locais no índice linear do grid.
// Varredura row-major: x varia primeiro, depois z, depois y.
func Index(x, y, z int32) int32 {
	return (y*GridSize+z)*GridSize + x
}

// InBounds verifica se a coordenada local pertence ao grid.
func InBounds(x, y, z int32) bool {
	return x >= 0 && x < GridSize &&
		y >= 0 && y < GridSize &&
		z >= 0 && z < GridSize
}

// Get retorna o bloco na célula local. Fora do grid retorna Air, nunca
// erro: o mesmo sentinela representa "vizinho inexistente" nas camadas
// acima.
func (g *Grid) Get(x, y, z int32) Block {
	if !InBounds(x, y, z) {
		return Air
	}
	return g.blocks[Index(x, y, z)]
}

// Set grava um bloco na célula local mantendo o contador de células
// preenchidas. Fora do grid retorna false sem alterar nada.
func (g *Grid) Set(x, y, z int32, b Block) bool {
	if !InBounds(x, y, z) {
		return false
	}
	idx := Index(x, y, z)
	old := g.blocks[idx]
	if old == b {
		return true
	}
	if old == Air {
		g.filled++
	} else if b == Air {
		g.filled--
	}
	g.blocks[idx] = b
	return true
}

// Filled retorna o número de células não-ar.
func (g *Grid) Filled() int32 {
	return g.filled
}

// Empty informa se todas as células são ar.
func (g *Grid) Empty() bool {
	return g.filled == 0
}

// Reset devolve o grid ao estado inicial, tudo ar. Usado quando um
// chunk volta do pool para uma coordenada nova.
func (g *Grid) Reset() {
	g.blocks = [GridVolume]Block{}
	g.filled = 0
}
