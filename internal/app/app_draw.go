package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DrakeOne/voxelcraft-optimized/internal/voxel"
	"github.com/DrakeOne/voxelcraft-optimized/internal/world"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(110, 165, 245, 255)) // céu

	if a.State == StateLoading {
		a.drawLoadingScreen()
	} else {
		a.drawScene()
		a.drawPalette()
		a.drawHUD()

		if a.State == StatePaused {
			a.drawPauseMenu()
		}
	}

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	a.renderer.Draw(a.World)

	if a.hasSelected {
		a.renderer.DrawSelection(a.selected)
	}

	rl.EndMode3D()

	// Mira fixa no centro enquanto o mouse está capturado
	if !a.cursorFree && a.State == StateViewing {
		cx := int32(rl.GetScreenWidth()) / 2
		cy := int32(rl.GetScreenHeight()) / 2
		rl.DrawLine(cx-8, cy, cx+8, cy, rl.White)
		rl.DrawLine(cx, cy-8, cx, cy+8, rl.White)
	}
}

// drawHUD desenha o painel de debug sobreposto.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(340)
	height := int32(250)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)
	rl.DrawText(a.World.MesherName(), x+215, y+10, 20, rl.SkyBlue)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	// Estado do mundo
	rl.DrawText("MUNDO", x+10, y+45, 12, rl.Gray)

	stats := a.World.Stats()
	rl.DrawText(fmt.Sprintf("Chunks: %d ativos / %d vivos | Fila: %d",
		stats.Active, stats.Known, stats.QueueDepth), x+10, y+60, 14, rl.White)
	rl.DrawText(fmt.Sprintf("Visíveis: %d | Blocos sólidos: %d",
		stats.Visible, stats.FilledBlocks), x+10, y+78, 14, rl.LightGray)

	var t0, t1, t2 int
	for _, c := range a.World.Active() {
		switch c.LOD() {
		case world.Tier0:
			t0++
		case world.Tier1:
			t1++
		default:
			t2++
		}
	}
	rl.DrawText(fmt.Sprintf("LOD: %d perto / %d médio / %d longe", t0, t1, t2),
		x+10, y+96, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("GPU: %d modelos | %d uploads | purga %d",
		a.renderer.ModelCount(), a.renderer.Uploads(), a.renderer.PurgeBacklog()),
		x+10, y+114, 14, rl.LightGray)

	rl.DrawLine(x+10, y+134, x+width-10, y+134, rl.NewColor(100, 100, 100, 100))

	// Câmera
	rl.DrawText("CÂMERA", x+10, y+142, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Pos: (%.1f, %.1f, %.1f)",
		a.Cam.Position.X(), a.Cam.Position.Y(), a.Cam.Position.Z()), x+10, y+156, 14, rl.White)
	rl.DrawText(fmt.Sprintf("Velocidade: %.0f blocos/s (roda ajusta)", a.Cam.MoveSpeed),
		x+10, y+174, 14, rl.LightGray)

	rl.DrawLine(x+10, y+192, x+width-10, y+192, rl.NewColor(100, 100, 100, 100))

	// Atalhos
	rl.DrawText("CONTROLES", x+10, y+200, 12, rl.Gray)
	rl.DrawText("WASD+Espaço/Shift: Voar | 1-8: Bloco", x+10, y+212, 14, rl.LightGray)
	rl.DrawText("F4: Wireframe | F7: Oclusão | Tab: Cursor", x+10, y+228, 14, rl.SkyBlue)

	a.drawSelectedBlockInfo()

	// Título no canto inferior direito
	title := "VoxelCraft v0.1.0"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		int32(rl.GetScreenWidth())-titleWidth-20, int32(rl.GetScreenHeight())-30,
		18, rl.NewColor(200, 200, 200, 150))
}

// drawSelectedBlockInfo mostra o bloco sob a mira.
func (a *App) drawSelectedBlockInfo() {
	if !a.hasSelected {
		return
	}

	width := int32(280)
	height := int32(96)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(270) // abaixo do painel principal

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 200))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(255, 215, 0, 255))

	rl.DrawText("MIRA", x+15, y+10, 14, rl.Gold)
	rl.DrawText(fmt.Sprintf("Bloco: %s", a.selected.Block.Name()), x+15, y+30, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Coord: (%d, %d, %d)", a.selected.X, a.selected.Y, a.selected.Z),
		x+15, y+50, 16, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Face: %s", a.selected.Face), x+15, y+70, 14, rl.LightGray)
}

// drawPalette desenha a barra de blocos no rodapé.
func (a *App) drawPalette() {
	const slot = int32(36)
	const pad = int32(4)

	total := int32(len(a.palette)) * (slot + pad)
	x := (int32(rl.GetScreenWidth()) - total) / 2
	y := int32(rl.GetScreenHeight()) - slot - 14

	for i, b := range a.palette {
		sx := x + int32(i)*(slot+pad)
		c := voxel.FaceColor(b, voxel.FaceTop)

		rl.DrawRectangle(sx, y, slot, slot, rl.NewColor(c[0], c[1], c[2], 255))
		border := rl.NewColor(30, 30, 30, 255)
		if i == a.paletteIdx {
			border = rl.White
			rl.DrawRectangleLines(sx-2, y-2, slot+4, slot+4, rl.White)
		}
		rl.DrawRectangleLines(sx, y, slot, slot, border)
		rl.DrawText(fmt.Sprintf("%d", i+1), sx+4, y+2, 12, rl.NewColor(0, 0, 0, 160))
	}
}

// drawPauseMenu desenha o menu de escape centralizado.
func (a *App) drawPauseMenu() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	// Fundo escurecido
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	panelWidth := int32(400)
	panelHeight := int32(250)
	panelX := (screenWidth - panelWidth) / 2
	panelY := (screenHeight - panelHeight) / 2

	rl.DrawRectangle(panelX, panelY, panelWidth, panelHeight, rl.NewColor(30, 30, 35, 255))
	rl.DrawRectangleLines(panelX, panelY, panelWidth, panelHeight, rl.White)

	menuTitle := "MENU DE PAUSA"
	titleWidth := rl.MeasureText(menuTitle, 24)
	rl.DrawText(menuTitle, panelX+(panelWidth-titleWidth)/2, panelY+30, 24, rl.Gold)

	buttonX := panelX + 50
	buttonWidth := panelWidth - 100
	buttonHeight := int32(40)

	if a.drawButton(buttonX, panelY+90, buttonWidth, buttonHeight, "RETOMAR (ESC)", rl.Green) {
		a.State = StateViewing
		if !a.cursorFree {
			rl.DisableCursor()
		}
	}

	if a.drawButton(buttonX, panelY+150, buttonWidth, buttonHeight, "SAIR", rl.Red) {
		a.quit = true
	}
}

// drawButton desenha um botão com hover e retorna true se clicado.
func (a *App) drawButton(x, y, w, h int32, text string, color rl.Color) bool {
	mousePos := rl.GetMousePosition()
	isHover := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	drawColor := color
	if isHover {
		drawColor.R += 30
		drawColor.G += 30
		drawColor.B += 30
	}

	rl.DrawRectangle(x, y, w, h, rl.NewColor(50, 50, 50, 255))
	rl.DrawRectangleLines(x, y, w, h, drawColor)

	textWidth := rl.MeasureText(text, 18)
	rl.DrawText(text, x+(w-textWidth)/2, y+(h-18)/2, 18, rl.White)

	return isHover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// drawLoadingScreen mostra o progresso da geração inicial.
func (a *App) drawLoadingScreen() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(20, 20, 25, 255))

	title := "VOXELCRAFT"
	titleWidth := rl.MeasureText(title, 40)
	rl.DrawText(title, (screenWidth-titleWidth)/2, screenHeight/2-60, 40, rl.Gold)

	depth := a.World.Stats().QueueDepth
	progress := float32(1)
	if a.initialQueue > 0 {
		progress = float32(a.initialQueue-depth) / float32(a.initialQueue)
	}

	barWidth := int32(400)
	barHeight := int32(30)
	barX := (screenWidth - barWidth) / 2
	barY := screenHeight/2 + 20

	rl.DrawRectangle(barX, barY, barWidth, barHeight, rl.DarkGray)
	rl.DrawRectangle(barX, barY, int32(float32(barWidth)*progress), barHeight, rl.Orange)
	rl.DrawRectangleLines(barX, barY, barWidth, barHeight, rl.White)

	status := fmt.Sprintf("Gerando terreno... %d chunks na fila", depth)
	statusWidth := rl.MeasureText(status, 18)
	rl.DrawText(status, (screenWidth-statusWidth)/2, barY+45, 18, rl.LightGray)

	tip := "Pressione ESPAÇO para entrar imediatamente (o resto gera em voo)."
	tipWidth := rl.MeasureText(tip, 16)
	rl.DrawText(tip, (screenWidth-tipWidth)/2, screenHeight-50, 16, rl.Gray)
}
