package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := loadFrom(filepath.Join(t.TempDir(), "nao-existe.json"))
	def := DefaultConfig()
	if *cfg != *def {
		t.Errorf("Arquivo ausente deveria devolver os padrões: %+v vs %+v", cfg, def)
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{isso não é json"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := loadFrom(path)
	if *cfg != *DefaultConfig() {
		t.Error("JSON corrompido deveria devolver os padrões")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.RenderDistance = 12
	cfg.Mesher = "naive"
	cfg.Seed = 99
	cfg.StatsAddr = "127.0.0.1:9090"
	if err := cfg.saveTo(path); err != nil {
		t.Fatalf("Save falhou: %v", err)
	}

	loaded := loadFrom(path)
	if loaded.RenderDistance != 12 || loaded.Mesher != "naive" || loaded.Seed != 99 {
		t.Errorf("Ida e volta perdeu valores: %+v", loaded)
	}
	if loaded.StatsAddr != "127.0.0.1:9090" {
		t.Errorf("StatsAddr não sobreviveu: %q", loaded.StatsAddr)
	}
}

func TestNormalizeClampsRanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RenderDistance = 100
	cfg.VerticalRange = 50
	cfg.FOV = 500
	cfg.MeshBudgetPerTick = -3
	cfg.LODNear = 80
	cfg.LODFar = 20

	cfg.Normalize()

	if cfg.RenderDistance != 32 {
		t.Errorf("RenderDistance deveria travar em 32, ficou %d", cfg.RenderDistance)
	}
	if cfg.VerticalRange != 32 {
		t.Errorf("VerticalRange deveria travar no raio, ficou %d", cfg.VerticalRange)
	}
	if cfg.FOV != 120 {
		t.Errorf("FOV deveria travar em 120, ficou %v", cfg.FOV)
	}
	if cfg.MeshBudgetPerTick != 1 {
		t.Errorf("Orçamento de remesh mínimo é 1, ficou %d", cfg.MeshBudgetPerTick)
	}
	if cfg.LODFar <= cfg.LODNear {
		t.Errorf("LODFar deveria ficar acima de LODNear: %v <= %v", cfg.LODFar, cfg.LODNear)
	}

	small := DefaultConfig()
	small.RenderDistance = 0
	small.WindowWidth = 10
	small.Normalize()
	if small.RenderDistance != 2 {
		t.Errorf("RenderDistance mínimo é 2, ficou %d", small.RenderDistance)
	}
	if small.WindowWidth != 320 {
		t.Errorf("Largura mínima é 320, ficou %d", small.WindowWidth)
	}
}
