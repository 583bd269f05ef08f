package voxel

// Face identifica uma das seis faces de um voxel. Os pares opostos
// ficam adjacentes na enumeração para que Opposite seja um XOR.
type Face uint8

const (
	FaceEast   Face = iota // +X
	FaceWest               // -X
	FaceTop                // +Y
	FaceBottom             // -Y
	FaceNorth              // +Z
	FaceSouth              // -Z

	FaceCount = 6
)

// faceOffsets mapeia cada face para o deslocamento da célula vizinha.
var faceOffsets = [FaceCount][3]int32{
	FaceEast:   {1, 0, 0},
	FaceWest:   {-1, 0, 0},
	FaceTop:    {0, 1, 0},
	FaceBottom: {0, -1, 0},
	FaceNorth:  {0, 0, 1},
	FaceSouth:  {0, 0, -1},
}

// Offset retorna o deslocamento (dx, dy, dz) até a célula vizinha.
func (f Face) Offset() (int32, int32, int32) {
	o := faceOffsets[f]
	return o[0], o[1], o[2]
}

// Opposite retorna a face espelhada (East↔West, Top↔Bottom, North↔South).
func (f Face) Opposite() Face {
	return f ^ 1
}

// Normal retorna o vetor normal unitário da face.
func (f Face) Normal() [3]float32 {
	o := faceOffsets[f]
	return [3]float32{float32(o[0]), float32(o[1]), float32(o[2])}
}

func (f Face) String() string {
	switch f {
	case FaceEast:
		return "leste"
	case FaceWest:
		return "oeste"
	case FaceTop:
		return "topo"
	case FaceBottom:
		return "fundo"
	case FaceNorth:
		return "norte"
	case FaceSouth:
		return "sul"
	}
	return "invalida"
}
