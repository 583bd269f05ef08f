package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
)

func TestRaycastStraightHit(t *testing.T) {
	m := NewManager(Params{Radius: 2, Vertical: 1})
	settle(m, mgl32.Vec3{8, 8, 8}, 40)

	if !m.SetVoxelAt(20, 8, 8, voxel.Stone) {
		t.Fatal("Preparação: escrita do alvo deveria suceder")
	}

	hit, ok := m.Raycast(mgl32.Vec3{8.5, 8.5, 8.5}, mgl32.Vec3{1, 0, 0}, 50)
	if !ok {
		t.Fatal("Raio frontal deveria atingir o bloco")
	}
	if hit.X != 20 || hit.Y != 8 || hit.Z != 8 {
		t.Errorf("Bloco esperado (20,8,8), obtido (%d,%d,%d)", hit.X, hit.Y, hit.Z)
	}
	if hit.Face != voxel.FaceWest {
		t.Errorf("Raio indo para leste entra pela face oeste, obtida %v", hit.Face)
	}
	if hit.Block != voxel.Stone {
		t.Errorf("Bloco atingido esperado Stone, obtido %v", hit.Block)
	}

	ax, ay, az := hit.Adjacent()
	if ax != 19 || ay != 8 || az != 8 {
		t.Errorf("Posição de colocação esperada (19,8,8), obtida (%d,%d,%d)", ax, ay, az)
	}
}

func TestRaycastMisses(t *testing.T) {
	m := NewManager(Params{Radius: 2, Vertical: 1})
	settle(m, mgl32.Vec3{8, 8, 8}, 40)
	m.SetVoxelAt(20, 8, 8, voxel.Stone)

	// Direção oposta ao alvo.
	if _, ok := m.Raycast(mgl32.Vec3{8.5, 8.5, 8.5}, mgl32.Vec3{-1, 0, 0}, 50); ok {
		t.Error("Raio na direção contrária não deveria atingir nada")
	}
	// Alcance curto demais.
	if _, ok := m.Raycast(mgl32.Vec3{8.5, 8.5, 8.5}, mgl32.Vec3{1, 0, 0}, 5); ok {
		t.Error("Raio com alcance curto não deveria atingir o alvo")
	}
	// Direção nula.
	if _, ok := m.Raycast(mgl32.Vec3{8.5, 8.5, 8.5}, mgl32.Vec3{}, 50); ok {
		t.Error("Raio sem direção não deveria atingir nada")
	}
}

func TestRaycastTopFace(t *testing.T) {
	m := NewManager(Params{Generator: GeneratorFunc(floorGen), Radius: 2, Vertical: 1})
	settle(m, mgl32.Vec3{8, 8, 8}, 40)

	// De cima para baixo, o piso é atingido pela face de cima.
	hit, ok := m.Raycast(mgl32.Vec3{8.5, 12, 8.5}, mgl32.Vec3{0, -1, 0}, 30)
	if !ok {
		t.Fatal("Raio para baixo deveria atingir o piso")
	}
	if hit.Y != 0 || hit.Face != voxel.FaceTop {
		t.Errorf("Esperado piso y=0 pela face de cima, obtido y=%d face %v", hit.Y, hit.Face)
	}
	if hit.Block != voxel.Grass {
		t.Errorf("Piso esperado Grass, obtido %v", hit.Block)
	}
}

func TestRaycastStartInsideSolid(t *testing.T) {
	m := NewManager(Params{Radius: 2, Vertical: 1})
	settle(m, mgl32.Vec3{8, 8, 8}, 40)
	m.SetVoxelAt(8, 8, 8, voxel.Dirt)

	hit, ok := m.Raycast(mgl32.Vec3{8.5, 8.5, 8.5}, mgl32.Vec3{0, 0, 1}, 10)
	if !ok {
		t.Fatal("Começar dentro de um sólido deveria contar como acerto imediato")
	}
	if hit.X != 8 || hit.Y != 8 || hit.Z != 8 {
		t.Errorf("Acerto esperado no próprio voxel (8,8,8), obtido (%d,%d,%d)", hit.X, hit.Y, hit.Z)
	}
}

func TestRaycastDiagonal(t *testing.T) {
	m := NewManager(Params{Radius: 2, Vertical: 1})
	settle(m, mgl32.Vec3{8, 8, 8}, 40)
	m.SetVoxelAt(12, 12, 12, voxel.Wood)

	hit, ok := m.Raycast(mgl32.Vec3{8.5, 8.5, 8.5}, mgl32.Vec3{1, 1, 1}, 30)
	if !ok {
		t.Fatal("Raio diagonal deveria atingir o bloco")
	}
	if hit.X != 12 || hit.Y != 12 || hit.Z != 12 {
		t.Errorf("Bloco esperado (12,12,12), obtido (%d,%d,%d)", hit.X, hit.Y, hit.Z)
	}
}
