package culling

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB é uma caixa alinhada aos eixos em coordenadas de mundo.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center retorna o centro geométrico da caixa.
func (a AABB) Center() mgl32.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// RayIntersect executa o teste de slabs contra o raio origin + t*dir.
// Retorna os parâmetros de entrada e saída; hit é falso quando o raio
// passa ao largo ou a caixa fica inteiramente atrás da origem.
func (a AABB) RayIntersect(origin, dir mgl32.Vec3) (tmin, tmax float32, hit bool) {
	tmin = float32(-math.MaxFloat32)
	tmax = float32(math.MaxFloat32)

	for i := 0; i < 3; i++ {
		if dir[i] != 0 {
			t1 := (a.Min[i] - origin[i]) / dir[i]
			t2 := (a.Max[i] - origin[i]) / dir[i]
			tmin = float32(math.Max(float64(tmin), math.Min(float64(t1), float64(t2))))
			tmax = float32(math.Min(float64(tmax), math.Max(float64(t1), float64(t2))))
		} else if origin[i] < a.Min[i] || origin[i] > a.Max[i] {
			// Raio paralelo ao slab e fora dele: nunca entra.
			return 0, 0, false
		}
	}

	return tmin, tmax, tmin <= tmax && tmax > 0
}
