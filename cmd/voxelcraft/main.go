package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/DrakeOne/voxelcraft-optimized/internal/app"
	"github.com/DrakeOne/voxelcraft-optimized/internal/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	seed := flag.Int64("seed", 0, "Seed do gerador de terreno (0 mantém a do config)")
	radius := flag.Int("radius", 0, "Raio da janela de render, em chunks")
	mesher := flag.String("mesher", "", "Algoritmo de meshing: greedy ou naive")
	stats := flag.String("stats", "", "Endereço do feed de stats (ex: 127.0.0.1:8080)")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║         VoxelCraft v0.1.0            ║")
	log.Println("║   Motor de voxels com greedy mesh    ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()

	// Flags de linha de comando sobrescrevem o config salvo
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *radius > 0 {
		cfg.RenderDistance = int32(*radius)
	}
	if *mesher != "" {
		cfg.Mesher = *mesher
	}
	if *stats != "" {
		cfg.StatsAddr = *stats
	}
	cfg.Normalize()

	// Criar e rodar a aplicação
	application := app.New(cfg)
	application.Run()
}
