package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/DrakeOne/voxelcraft-optimized/internal/culling"
)

func approxVec(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}

func TestForwardUnitLength(t *testing.T) {
	angles := []struct{ yaw, pitch float32 }{
		{0, 0},
		{1.3, -0.7},
		{-2.9, 1.1},
		{math.Pi, -1.4},
	}
	for _, a := range angles {
		c := New(mgl32.Vec3{})
		c.Yaw = a.yaw
		c.Pitch = a.pitch
		if l := c.Forward().Len(); math.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("Forward() com yaw=%.2f pitch=%.2f tem comprimento %.6f", a.yaw, a.pitch, l)
		}
	}
}

func TestForwardDirections(t *testing.T) {
	cases := []struct {
		name       string
		yaw, pitch float32
		want       mgl32.Vec3
	}{
		{"yaw zero olha +Z", 0, 0, mgl32.Vec3{0, 0, 1}},
		{"yaw 90 olha +X", math.Pi / 2, 0, mgl32.Vec3{1, 0, 0}},
		{"yaw 180 olha -Z", math.Pi, 0, mgl32.Vec3{0, 0, -1}},
		{"pitch 90 olha +Y", 0, math.Pi / 2, mgl32.Vec3{0, 1, 0}},
	}
	for _, tc := range cases {
		c := New(mgl32.Vec3{})
		c.Yaw = tc.yaw
		c.Pitch = tc.pitch
		if got := c.Forward(); !approxVec(got, tc.want, 1e-4) {
			t.Errorf("%s: Forward() = %v, esperado %v", tc.name, got, tc.want)
		}
	}
}

func TestApplyLookClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{})

	// Arrastar o mouse para baixo por muito tempo não pode passar de -89°.
	c.applyLook(0, 10000)
	if min := float32(-89.0 * math.Pi / 180.0); c.Pitch < min-1e-4 {
		t.Errorf("pitch %f abaixo do limite %f", c.Pitch, min)
	}

	c.applyLook(0, -20000)
	if max := float32(89.0 * math.Pi / 180.0); c.Pitch > max+1e-4 {
		t.Errorf("pitch %f acima do limite %f", c.Pitch, max)
	}
}

func TestApplyLookYawDirection(t *testing.T) {
	c := New(mgl32.Vec3{})

	// Mouse para a direita gira a vista para a direita (yaw diminui
	// na convenção em que yaw 0 olha +Z).
	c.applyLook(100, 0)
	if c.Yaw >= 0 {
		t.Errorf("yaw %f deveria diminuir com delta.X positivo", c.Yaw)
	}
}

func TestUpdateConvergesToTarget(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0})
	c.TargetPos = mgl32.Vec3{10, 4, -6}

	for i := 0; i < 120; i++ {
		c.Update(1.0 / 60.0)
	}

	if !approxVec(c.Position, c.TargetPos, 1e-3) {
		t.Errorf("posição %v não convergiu para %v", c.Position, c.TargetPos)
	}
	if c.RLCamera.Position.X != c.Position.X() {
		t.Errorf("RLCamera.Position.X = %f, esperado %f", c.RLCamera.Position.X, c.Position.X())
	}
}

func TestUpdateFactorCap(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0})
	c.TargetPos = mgl32.Vec3{100, 0, 0}

	// Um frame gigante (dt=1s) satura o fator em 1.0: chega direto no
	// alvo em vez de extrapolar além dele.
	c.Update(1.0)
	if !approxVec(c.Position, c.TargetPos, 1e-5) {
		t.Errorf("posição %v, esperado exatamente o alvo %v", c.Position, c.TargetPos)
	}
}

func TestSetPositionTeleports(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0})
	c.TargetPos = mgl32.Vec3{50, 0, 0}

	c.SetPosition(mgl32.Vec3{-8, 32, 7})
	if !approxVec(c.Position, mgl32.Vec3{-8, 32, 7}, 1e-6) || !approxVec(c.TargetPos, c.Position, 1e-6) {
		t.Errorf("SetPosition não zerou a interpolação: pos=%v alvo=%v", c.Position, c.TargetPos)
	}
}

func TestViewProjectionFrustum(t *testing.T) {
	c := New(mgl32.Vec3{8, 24, -40})
	c.Yaw = 0 // olhando +Z
	c.Pitch = 0

	fr := culling.FrustumFromMatrix(c.ViewProjection(16.0 / 9.0))

	ahead := c.Position.Add(c.Forward().Mul(10))
	if !fr.ContainsPoint(ahead) {
		t.Errorf("ponto à frente %v deveria estar no frustum", ahead)
	}

	behind := c.Position.Sub(c.Forward().Mul(10))
	if fr.ContainsPoint(behind) {
		t.Errorf("ponto atrás %v não deveria estar no frustum", behind)
	}
}
