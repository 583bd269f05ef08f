package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do VoxelCraft.
type Config struct {
	// Janela
	WindowWidth  int32   `json:"window_width"`
	WindowHeight int32   `json:"window_height"`
	WindowTitle  string  `json:"window_title"`
	Fullscreen   bool    `json:"fullscreen"`
	TargetFPS    int32   `json:"target_fps"`
	FOV          float32 `json:"fov"`

	// Mundo
	RenderDistance    int32 `json:"render_distance"`      // raio da janela ativa, em chunks
	VerticalRange     int32 `json:"vertical_range"`       // alcance vertical da janela, em chunks
	MeshBudgetPerTick int   `json:"mesh_budget_per_tick"` // remeshes de chunks sujos por frame

	// Geração de terreno
	Seed             int64   `json:"seed"`
	TerrainAmplitude float32 `json:"terrain_amplitude"`
	TerrainScale     float32 `json:"terrain_scale"`

	// Renderização
	Mesher           string  `json:"mesher"` // "greedy" ou "naive"
	OcclusionCulling bool    `json:"occlusion_culling"`
	LODNear          float32 `json:"lod_near"` // limite do tier 0, em blocos
	LODFar           float32 `json:"lod_far"`  // limite do tier 1, em blocos

	// Câmera
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`

	// Debug
	ShowDebugInfo bool   `json:"show_debug_info"`
	WireframeMode bool   `json:"wireframe_mode"`
	StatsAddr     string `json:"stats_addr"` // endereço do feed websocket de stats; vazio desliga
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "VoxelCraft",
		Fullscreen:   false,
		TargetFPS:    60,
		FOV:          70.0,

		RenderDistance:    8,
		VerticalRange:     2,
		MeshBudgetPerTick: 8,

		Seed:             1337,
		TerrainAmplitude: 24,
		TerrainScale:     96,

		Mesher:           "greedy",
		OcclusionCulling: true,
		LODNear:          50,
		LODFar:           100,

		CameraSpeed:       24.0,
		CameraSensitivity: 0.3,
		ZoomSpeed:         5.0,

		ShowDebugInfo: true,
		WireframeMode: false,
		StatsAddr:     "",
	}
}

// Normalize aperta os valores para faixas que o motor aguenta, sem
// reclamar de configuração editada à mão.
func (c *Config) Normalize() {
	if c.WindowWidth < 320 {
		c.WindowWidth = 320
	}
	if c.WindowHeight < 240 {
		c.WindowHeight = 240
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = 60
	}
	if c.FOV < 30 {
		c.FOV = 30
	}
	if c.FOV > 120 {
		c.FOV = 120
	}

	if c.RenderDistance < 2 {
		c.RenderDistance = 2
	}
	if c.RenderDistance > 32 {
		c.RenderDistance = 32
	}
	if c.VerticalRange < 1 {
		c.VerticalRange = 1
	}
	if c.VerticalRange > c.RenderDistance {
		c.VerticalRange = c.RenderDistance
	}
	if c.MeshBudgetPerTick < 1 {
		c.MeshBudgetPerTick = 1
	}

	if c.LODNear <= 0 {
		c.LODNear = 50
	}
	if c.LODFar <= c.LODNear {
		c.LODFar = c.LODNear * 2
	}

	if c.CameraSpeed <= 0 {
		c.CameraSpeed = 24
	}
	if c.CameraSensitivity <= 0 {
		c.CameraSensitivity = 0.3
	}
	if c.ZoomSpeed <= 0 {
		c.ZoomSpeed = 5
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do arquivo padrão. Se o arquivo não
// existir ou estiver corrompido, retorna as configurações padrão.
func Load() *Config {
	return loadFrom(configPath())
}

func loadFrom(path string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	cfg.Normalize()
	return cfg
}

// Save salva as configurações no arquivo padrão.
func (c *Config) Save() error {
	return c.saveTo(configPath())
}

func (c *Config) saveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
