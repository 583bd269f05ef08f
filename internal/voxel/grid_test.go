package voxel

import "testing"

func TestIndexBijective(t *testing.T) {
	seen := make(map[int32]bool, GridVolume)
	for y := int32(0); y < GridSize; y++ {
		for z := int32(0); z < GridSize; z++ {
			for x := int32(0); x < GridSize; x++ {
				idx := Index(x, y, z)
				if idx < 0 || idx >= GridVolume {
					t.Fatalf("Index(%d,%d,%d) = %d fora de [0,%d)", x, y, z, idx, GridVolume)
				}
				if seen[idx] {
					t.Fatalf("Index(%d,%d,%d) = %d repetido", x, y, z, idx)
				}
				seen[idx] = true
			}
		}
	}
	if len(seen) != GridVolume {
		t.Errorf("mapeamento cobriu %d células, esperado %d", len(seen), GridVolume)
	}
}

func TestGridSetGet(t *testing.T) {
	var g Grid

	if !g.Set(3, 7, 11, Stone) {
		t.Fatal("Set dentro do grid deveria retornar true")
	}
	if got := g.Get(3, 7, 11); got != Stone {
		t.Errorf("Get após Set retornou %v, esperado %v", got, Stone)
	}
	if g.Filled() != 1 {
		t.Errorf("Filled = %d, esperado 1", g.Filled())
	}
}

func TestGridOutOfBounds(t *testing.T) {
	var g Grid

	tests := []struct {
		name    string
		x, y, z int32
	}{
		{"x negativo", -1, 0, 0},
		{"y negativo", 0, -1, 0},
		{"z negativo", 0, 0, -1},
		{"x acima", GridSize, 0, 0},
		{"y acima", 0, GridSize, 0},
		{"z acima", 0, 0, GridSize},
	}

	for _, tt := range tests {
		if g.Set(tt.x, tt.y, tt.z, Stone) {
			t.Errorf("%s: Set fora do grid deveria retornar false", tt.name)
		}
		if got := g.Get(tt.x, tt.y, tt.z); got != Air {
			t.Errorf("%s: Get fora do grid retornou %v, esperado Air", tt.name, got)
		}
	}
	if g.Filled() != 0 {
		t.Errorf("Set fora do grid alterou o contador: Filled = %d", g.Filled())
	}
}

func TestGridEmptyTracking(t *testing.T) {
	var g Grid

	if !g.Empty() {
		t.Fatal("grid novo deveria estar vazio")
	}

	g.Set(0, 0, 0, Dirt)
	if g.Empty() {
		t.Error("grid com um bloco não deveria estar vazio")
	}

	// Sobrescrever com o mesmo tipo não altera o contador.
	g.Set(0, 0, 0, Dirt)
	if g.Filled() != 1 {
		t.Errorf("Filled = %d após Set repetido, esperado 1", g.Filled())
	}

	// Remover o único bloco devolve o grid ao estado vazio.
	g.Set(0, 0, 0, Air)
	if !g.Empty() {
		t.Error("grid deveria voltar a vazio após remover o último bloco")
	}
}

func TestGridReset(t *testing.T) {
	var g Grid
	for x := int32(0); x < GridSize; x++ {
		g.Set(x, 0, 0, Sand)
	}

	g.Reset()

	if !g.Empty() {
		t.Error("Reset deveria zerar o contador de preenchidos")
	}
	for x := int32(0); x < GridSize; x++ {
		if g.Get(x, 0, 0) != Air {
			t.Fatalf("Reset deixou bloco em (%d,0,0)", x)
		}
	}
}

func TestFaceOpposite(t *testing.T) {
	tests := []struct {
		face, want Face
	}{
		{FaceEast, FaceWest},
		{FaceWest, FaceEast},
		{FaceTop, FaceBottom},
		{FaceBottom, FaceTop},
		{FaceNorth, FaceSouth},
		{FaceSouth, FaceNorth},
	}
	for _, tt := range tests {
		if got := tt.face.Opposite(); got != tt.want {
			t.Errorf("Opposite(%v) = %v, esperado %v", tt.face, got, tt.want)
		}
	}
}

func TestFaceOffsetsAreUnit(t *testing.T) {
	for f := Face(0); f < FaceCount; f++ {
		dx, dy, dz := f.Offset()
		sum := dx*dx + dy*dy + dz*dz
		if sum != 1 {
			t.Errorf("Offset(%v) = (%d,%d,%d) não é unitário", f, dx, dy, dz)
		}
		ox, oy, oz := f.Opposite().Offset()
		if ox != -dx || oy != -dy || oz != -dz {
			t.Errorf("Offset da face oposta de %v não é o inverso", f)
		}
	}
}
