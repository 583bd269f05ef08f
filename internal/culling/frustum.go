package culling

import "github.com/go-gl/mathgl/mgl32"

// Plane é um plano em forma normal: Normal·p + Distance = 0, com a
// normal apontando para o lado de dentro do frustum.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// DistanceTo retorna a distância com sinal do ponto ao plano.
// Positivo significa o lado de dentro.
func (p Plane) DistanceTo(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Frustum são os seis planos do volume de visão, extraídos da matriz
// view-projection: esquerda, direita, baixo, cima, perto e longe.
type Frustum [6]Plane

// FrustumFromMatrix extrai os planos da matriz view-projection
// combinada (método de Gribb-Hartmann: soma e diferença das linhas da
// matriz contra a quarta linha), já normalizados.
func FrustumFromMatrix(vp mgl32.Mat4) Frustum {
	row := func(i int) mgl32.Vec4 {
		return mgl32.Vec4{vp.At(i, 0), vp.At(i, 1), vp.At(i, 2), vp.At(i, 3)}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	var f Frustum
	f[0] = planeFromVec4(r3.Add(r0)) // esquerda
	f[1] = planeFromVec4(r3.Sub(r0)) // direita
	f[2] = planeFromVec4(r3.Add(r1)) // baixo
	f[3] = planeFromVec4(r3.Sub(r1)) // cima
	f[4] = planeFromVec4(r3.Add(r2)) // perto
	f[5] = planeFromVec4(r3.Sub(r2)) // longe
	return f
}

func planeFromVec4(v mgl32.Vec4) Plane {
	n := mgl32.Vec3{v.X(), v.Y(), v.Z()}
	length := n.Len()
	if length == 0 {
		return Plane{}
	}
	return Plane{
		Normal:   n.Mul(1 / length),
		Distance: v.W() / length,
	}
}

// ContainsAABB decide se a caixa toca o frustum, usando o teste do
// vértice positivo: para cada plano basta checar o canto da caixa mais
// avançado na direção da normal. Se até ele está do lado de fora, a
// caixa inteira está.
func (f *Frustum) ContainsAABB(box AABB) bool {
	for _, p := range f {
		v := box.Min
		if p.Normal.X() >= 0 {
			v[0] = box.Max.X()
		}
		if p.Normal.Y() >= 0 {
			v[1] = box.Max.Y()
		}
		if p.Normal.Z() >= 0 {
			v[2] = box.Max.Z()
		}
		if p.DistanceTo(v) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint decide se o ponto está dentro do frustum.
func (f *Frustum) ContainsPoint(point mgl32.Vec3) bool {
	for _, p := range f {
		if p.DistanceTo(point) < 0 {
			return false
		}
	}
	return true
}
