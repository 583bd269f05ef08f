package culling

import "github.com/go-gl/mathgl/mgl32"

// Occluder decide se um alvo está escondido atrás de outros volumes.
// A lista de bloqueadores NÃO deve conter o próprio alvo, senão ele se
// oculta sozinho. Implementações ficam atrás desta interface para a
// estratégia poder ser trocada (ou desligada) por configuração.
type Occluder interface {
	Occluded(viewer mgl32.Vec3, target AABB, blockers []AABB) bool
}

// NullOccluder desliga a oclusão: nada nunca está escondido.
type NullOccluder struct{}

// Occluded sempre responde falso.
func (NullOccluder) Occluded(mgl32.Vec3, AABB, []AABB) bool { return false }

// RayScanOccluder traça um raio do observador ao centro do alvo e o
// testa contra cada bloqueador: O(n) por alvo, O(n²) no quadro inteiro.
// É uma aproximação deliberadamente simples (um único raio pelo centro
// pode errar alvos parcialmente visíveis), adequada como linha de base
// atrás da interface.
type RayScanOccluder struct{}

// Occluded responde verdadeiro se algum bloqueador intercepta o raio
// estritamente entre o observador e o centro do alvo.
func (RayScanOccluder) Occluded(viewer mgl32.Vec3, target AABB, blockers []AABB) bool {
	center := target.Center()
	dir := center.Sub(viewer)
	dist := dir.Len()
	if dist < 1e-4 {
		// Observador dentro do alvo: sempre visível.
		return false
	}
	dir = dir.Mul(1 / dist)

	for _, b := range blockers {
		tmin, _, hit := b.RayIntersect(viewer, dir)
		if !hit {
			continue
		}
		// tmin > 0 exige entrada à frente do observador (estar dentro
		// de um bloqueador não oculta o resto do mundo); tmin < dist
		// exige entrada antes de alcançar o alvo.
		if tmin > 0 && tmin < dist {
			return true
		}
	}
	return false
}
