package culling

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func chunkBox(x, y, z float32) AABB {
	return AABB{
		Min: mgl32.Vec3{x, y, z},
		Max: mgl32.Vec3{x + 16, y + 16, z + 16},
	}
}

func TestRayScanOccluder(t *testing.T) {
	viewer := mgl32.Vec3{0, 8, 8}
	target := chunkBox(100, 0, 0)

	tests := []struct {
		name     string
		blockers []AABB
		occluded bool
	}{
		{"sem bloqueadores", nil, false},
		{"bloqueador no caminho", []AABB{chunkBox(40, 0, 0)}, true},
		{"bloqueador atrás do alvo", []AABB{chunkBox(200, 0, 0)}, false},
		{"bloqueador fora do raio", []AABB{chunkBox(40, 100, 0)}, false},
		{"segundo bloqueador acerta", []AABB{chunkBox(40, 100, 0), chunkBox(60, 0, 0)}, true},
	}

	occ := RayScanOccluder{}
	for _, tt := range tests {
		if got := occ.Occluded(viewer, target, tt.blockers); got != tt.occluded {
			t.Errorf("%s: oclusão esperada %v, obtida %v", tt.name, tt.occluded, got)
		}
	}
}

func TestRayScanViewerInsideBlocker(t *testing.T) {
	// Estar dentro de um chunk sólido não pode apagar o mundo: a
	// entrada do raio fica atrás do observador (tmin <= 0).
	viewer := mgl32.Vec3{8, 8, 8}
	target := chunkBox(100, 0, 0)
	blockers := []AABB{chunkBox(0, 0, 0)}

	if (RayScanOccluder{}).Occluded(viewer, target, blockers) {
		t.Error("Bloqueador que contém o observador não deveria ocultar o alvo")
	}
}

func TestNullOccluder(t *testing.T) {
	viewer := mgl32.Vec3{0, 8, 8}
	target := chunkBox(100, 0, 0)
	blockers := []AABB{chunkBox(40, 0, 0)}

	if (NullOccluder{}).Occluded(viewer, target, blockers) {
		t.Error("NullOccluder nunca deveria ocultar nada")
	}
}
