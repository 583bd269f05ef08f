package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Planos de projeção usados para o culling. O raylib usa valores
// próprios no BeginMode3D; o near aqui é um pouco mais apertado, o
// que no pior caso deixa de cortar um chunk colado na câmera.
const (
	nearPlane = 0.1
	farPlane  = 1000.0
)

// Controller é uma câmera de voo livre em primeira pessoa.
// O mouse controla o olhar (yaw/pitch), WASD desloca no plano do chão,
// espaço e shift sobem e descem. A roda do mouse ajusta a velocidade
// de voo, para explorar longe sem virar uma caminhada.
type Controller struct {
	// Estado interno do Raylib
	RLCamera rl.Camera3D

	// Configurações
	MoveSpeed    float32 // blocos por segundo na velocidade base
	Sensitivity  float32 // ganho do mouse (escala interna 0.01 rad/pixel)
	SpeedStep    float32 // incremento de velocidade por clique da roda
	MinSpeed     float32
	MaxSpeed     float32
	FOV          float32 // graus, eixo vertical
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Estado Alvo (para interpolação suave)
	TargetPos mgl32.Vec3

	// Estado Atual (interpolado)
	Position mgl32.Vec3
	Yaw      float32 // azimute em radianos; 0 olha para +Z
	Pitch    float32 // elevação em radianos, travada perto de ±90°
}

// New cria a câmera em pos, olhando levemente para baixo.
func New(pos mgl32.Vec3) *Controller {
	c := &Controller{
		MoveSpeed:    24.0,
		Sensitivity:  0.3,
		SpeedStep:    5.0,
		MinSpeed:     4.0,
		MaxSpeed:     120.0,
		FOV:          70.0,
		SmoothFactor: 0.25, // mais firme que uma câmera orbital; voo precisa responder

		TargetPos: pos,
		Position:  pos,
		Pitch:     -20.0 * rl.Deg2rad,
	}

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}

	c.refresh()
	return c
}

// SetPosition teleporta a câmera sem suavização.
func (c *Controller) SetPosition(pos mgl32.Vec3) {
	c.TargetPos = pos
	c.Position = pos
	c.refresh()
}

// Forward retorna o vetor unitário na direção do olhar.
func (c *Controller) Forward() mgl32.Vec3 {
	cosP := float32(math.Cos(float64(c.Pitch)))
	sinP := float32(math.Sin(float64(c.Pitch)))
	cosY := float32(math.Cos(float64(c.Yaw)))
	sinY := float32(math.Sin(float64(c.Yaw)))

	return mgl32.Vec3{cosP * sinY, sinP, cosP * cosY}
}

// ViewProjection monta a matriz usada na extração do frustum.
func (c *Controller) ViewProjection(aspect float32) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, nearPlane, farPlane)
	view := mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Update aproxima a posição do alvo e recalcula a câmera do Raylib.
// Deve ser chamado a cada frame.
func (c *Controller) Update(dt float32) {
	// Amortecimento independente de frame rate, normalizado para 60 FPS.
	factor := c.SmoothFactor * 60.0 * dt
	if factor > 1.0 {
		factor = 1.0
	}

	c.Position = c.Position.Add(c.TargetPos.Sub(c.Position).Mul(factor))

	c.refresh()
}

// refresh projeta yaw/pitch em um alvo cartesiano para o Raylib.
func (c *Controller) refresh() {
	fwd := c.Forward()

	c.RLCamera.Fovy = c.FOV
	c.RLCamera.Position = rl.Vector3{X: c.Position.X(), Y: c.Position.Y(), Z: c.Position.Z()}
	c.RLCamera.Target = rl.Vector3{
		X: c.Position.X() + fwd.X(),
		Y: c.Position.Y() + fwd.Y(),
		Z: c.Position.Z() + fwd.Z(),
	}
}

// applyLook acumula o delta do mouse em yaw/pitch.
func (c *Controller) applyLook(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity * 0.01
	c.Pitch -= dy * c.Sensitivity * 0.01

	// Clamp na elevação para não virar a câmera de ponta cabeça.
	maxPitch := 89.0 * rl.Deg2rad
	minPitch := -89.0 * rl.Deg2rad
	if c.Pitch > float32(maxPitch) {
		c.Pitch = float32(maxPitch)
	}
	if c.Pitch < float32(minPitch) {
		c.Pitch = float32(minPitch)
	}
}

// HandleInput processa entrada do usuário. O olhar só segue o mouse
// quando look é verdadeiro (cursor capturado pelo app). Retorna true
// se houve input de movimento.
func (c *Controller) HandleInput(dt float32, look bool) bool {
	moved := false

	// Velocidade de voo com a roda do mouse
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		c.MoveSpeed += wheel * c.SpeedStep
		if c.MoveSpeed < c.MinSpeed {
			c.MoveSpeed = c.MinSpeed
		}
		if c.MoveSpeed > c.MaxSpeed {
			c.MoveSpeed = c.MaxSpeed
		}
	}

	// Olhar: aplicado direto, sem lerp. Suavizar mira enjoa.
	if look {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
			c.applyLook(delta.X, delta.Y)
		}
	}

	// WASD no plano do chão, projetando o olhar no XZ
	cosY := float32(math.Cos(float64(c.Yaw)))
	sinY := float32(math.Sin(float64(c.Yaw)))
	forward := mgl32.Vec3{sinY, 0, cosY}

	upVec := mgl32.Vec3{0, 1, 0}
	right := forward.Cross(upVec).Normalize()

	currentSpeed := c.MoveSpeed * dt
	if rl.IsKeyDown(rl.KeyLeftControl) {
		currentSpeed *= 3.0 // turbo
	}

	move := mgl32.Vec3{0, 0, 0}

	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}
	if rl.IsKeyDown(rl.KeySpace) {
		move = move.Add(upVec)
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		move = move.Sub(upVec)
	}

	if move.Len() > 0 {
		move = move.Normalize().Mul(currentSpeed)
		c.TargetPos = c.TargetPos.Add(move)
		moved = true
	}

	return moved
}
