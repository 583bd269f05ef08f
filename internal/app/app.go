package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/DrakeOne/voxelcraft-optimized/internal/camera"
	"github.com/DrakeOne/voxelcraft-optimized/internal/config"
	"github.com/DrakeOne/voxelcraft-optimized/internal/culling"
	"github.com/DrakeOne/voxelcraft-optimized/internal/debug"
	"github.com/DrakeOne/voxelcraft-optimized/internal/meshing"
	"github.com/DrakeOne/voxelcraft-optimized/internal/render"
	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
	"github.com/DrakeOne/voxelcraft-optimized/internal/world"
	"github.com/DrakeOne/voxelcraft-optimized/internal/worldgen"
)

// Alcance do raio de seleção de blocos, em blocos.
const editReach = 10.0

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // gerando o terreno ao redor do spawn
	StateViewing                 // explorando o mundo
	StatePaused                  // menu de pausa
)

// App é a aplicação principal do VoxelCraft.
type App struct {
	Config *config.Config
	State  AppState

	Cam      *camera.Controller
	World    *world.Manager
	renderer *render.Renderer
	feed     *debug.Feed

	frameCount int
	quit       bool

	// Cursor capturado (padrão) = mouse gira o olhar;
	// liberado com Tab = mouse vira ponteiro de UI.
	cursorFree bool

	// Mira e edição de blocos
	selected    world.RaycastHit
	hasSelected bool
	palette     []voxel.Block
	paletteIdx  int

	// Progresso da carga inicial
	initialQueue int

	startTime     float64
	lastStatsPush float64
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		State:  StateLoading,
		palette: []voxel.Block{
			voxel.Stone, voxel.Dirt, voxel.Grass, voxel.Sand,
			voxel.Wood, voxel.Leaves, voxel.Water, voxel.Snow,
		},
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC pausa em vez de fechar a janela

	// Spawn acima da altura máxima do terreno, olhando para baixo.
	spawn := mgl32.Vec3{8, a.Config.TerrainAmplitude + 16, 8}
	a.Cam = camera.New(spawn)
	a.Cam.MoveSpeed = a.Config.CameraSpeed
	a.Cam.Sensitivity = a.Config.CameraSensitivity
	a.Cam.SpeedStep = a.Config.ZoomSpeed
	a.Cam.FOV = a.Config.FOV

	var occluder culling.Occluder = culling.NullOccluder{}
	if a.Config.OcclusionCulling {
		occluder = culling.RayScanOccluder{}
	}
	a.World = world.NewManager(world.Params{
		Generator:  worldgen.New(a.Config.Seed, a.Config.TerrainAmplitude, a.Config.TerrainScale),
		Mesher:     meshing.New(a.Config.Mesher),
		Occluder:   occluder,
		Radius:     a.Config.RenderDistance,
		Vertical:   a.Config.VerticalRange,
		LODNear:    a.Config.LODNear,
		LODFar:     a.Config.LODFar,
		MeshBudget: a.Config.MeshBudgetPerTick,
	})

	a.renderer = render.New()
	if a.Config.WireframeMode {
		a.renderer.ToggleWireframe()
	}

	if a.Config.StatsAddr != "" {
		feed, err := debug.Serve(a.Config.StatsAddr)
		if err != nil {
			log.Printf("[App] Feed de stats não subiu: %v", err)
		} else {
			a.feed = feed
		}
	}

	rl.DisableCursor()
	a.startTime = rl.GetTime()

	log.Println("[VoxelCraft] Janela inicializada com sucesso")
	log.Printf("[VoxelCraft] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)
	log.Printf("[App] Mesher: %s | Oclusão: %v | Raio: %d chunks",
		a.World.MesherName(), a.Config.OcclusionCulling, a.Config.RenderDistance)

	// O primeiro tick monta a janela ativa e enche a fila de geração;
	// o tamanho dela vira a base da barra de progresso.
	a.tickWorld()
	a.initialQueue = a.World.Stats().QueueDepth

	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++

	switch a.State {
	case StateLoading:
		a.tickWorld()
		if a.World.Stats().QueueDepth == 0 {
			a.State = StateViewing
			log.Printf("[App] Mundo inicial pronto em %.1fs (%d chunks)",
				rl.GetTime()-a.startTime, a.initialQueue)
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			log.Println("[App] Espera da geração pulada pelo usuário.")
			a.State = StateViewing
		}
	case StateViewing:
		a.updateCamera()
		a.updateInput()
		a.tickWorld()
		a.updateSelection()
		a.publishStats()
	case StatePaused:
		a.updateInput() // Permite detectar ESC para despausar
	}
}

// tickWorld avança o mundo um passo e sincroniza a GPU com as malhas
// novas. O frustum sai da câmera deste frame.
func (a *App) tickWorld() {
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := culling.FrustumFromMatrix(a.Cam.ViewProjection(aspect))
	a.World.Update(a.Cam.Position, &frustum)
	a.renderer.Sync(a.World)
}

// updateSelection refaz o raio de mira do centro da tela.
func (a *App) updateSelection() {
	a.selected, a.hasSelected = a.World.Raycast(a.Cam.Position, a.Cam.Forward(), editReach)
}

// publishStats alimenta o feed de debug no máximo uma vez por segundo.
func (a *App) publishStats() {
	if a.feed == nil {
		return
	}
	now := rl.GetTime()
	if now-a.lastStatsPush < 1.0 {
		return
	}
	a.lastStatsPush = now

	a.feed.Publish(debug.Snapshot{
		Stats:   a.World.Stats(),
		FPS:     rl.GetFPS(),
		Models:  a.renderer.ModelCount(),
		Uploads: a.renderer.Uploads(),
		CamX:    a.Cam.Position.X(),
		CamY:    a.Cam.Position.Y(),
		CamZ:    a.Cam.Position.Z(),
		Uptime:  now - a.startTime,
	})
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.feed.Close()
	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[VoxelCraft] Erro ao salvar configurações: %v", err)
	}
}
