package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DrakeOne/voxelcraft-optimized/internal/culling"
	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
)

// updateCamera processa o input de voo e a interpolação da câmera.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()
	a.Cam.HandleInput(dt, !a.cursorFree)
	a.Cam.Update(dt)
}

// updateInput processa entradas de teclado e mouse gerais.
func (a *App) updateInput() {
	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Toggle wireframe
	if rl.IsKeyPressed(rl.KeyF4) {
		a.Config.WireframeMode = a.renderer.ToggleWireframe()
		log.Printf("[App] Wireframe: %v", a.Config.WireframeMode)
	}

	// Toggle oclusão por raio (o frustum continua sempre ativo)
	if rl.IsKeyPressed(rl.KeyF7) {
		a.Config.OcclusionCulling = !a.Config.OcclusionCulling
		if a.Config.OcclusionCulling {
			a.World.SetOccluder(culling.RayScanOccluder{})
		} else {
			a.World.SetOccluder(culling.NullOccluder{})
		}
		log.Printf("[App] Oclusão por raio: %v", a.Config.OcclusionCulling)
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Tab solta ou captura o cursor
	if rl.IsKeyPressed(rl.KeyTab) {
		a.cursorFree = !a.cursorFree
		if a.cursorFree {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}

	// ESC: alternar pausa
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.State == StateViewing {
			a.State = StatePaused
			rl.EnableCursor()
			log.Println("[App] Jogo Pausado")
		} else if a.State == StatePaused {
			a.State = StateViewing
			if !a.cursorFree {
				rl.DisableCursor()
			}
			log.Println("[App] Retomando Jogo")
		}
	}

	if a.State != StateViewing {
		return
	}

	// Paleta de blocos nas teclas 1..8
	for i := range a.palette {
		if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
			a.paletteIdx = i
			log.Printf("[App] Bloco selecionado: %s", a.palette[i].Name())
		}
	}

	// Edição: esquerdo quebra, direito coloca na face mirada
	if !a.cursorFree && a.hasSelected {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			if a.World.SetVoxelAt(a.selected.X, a.selected.Y, a.selected.Z, voxel.Air) {
				log.Printf("[App] %s removido em (%d, %d, %d)",
					a.selected.Block.Name(), a.selected.X, a.selected.Y, a.selected.Z)
			}
		}
		if rl.IsMouseButtonPressed(rl.MouseRightButton) {
			x, y, z := a.selected.Adjacent()
			if a.World.SetVoxelAt(x, y, z, a.palette[a.paletteIdx]) {
				log.Printf("[App] %s colocado em (%d, %d, %d)",
					a.palette[a.paletteIdx].Name(), x, y, z)
			}
		}
	}
}
