package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/motionlab/internal/clock"
	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/session"
)

// Monochrome palette with a single accent for the moving object.
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
	ColObject  = rl.NewColor(255, 80, 80, 255)
	ColSample  = rl.NewColor(80, 200, 255, 255)
)

const (
	windowHeight = 640
	fontPath     = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

type App struct {
	Ctrl *session.Controller
	Loop *clock.FrameLoop
	Font rl.Font

	width      int32
	dragging   bool
	dragStartX float32
	status     string
}

func initWindow(width int32, fps int) {
	rl.InitWindow(width, windowHeight, "motionlab")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont falls back to the built-in font when the system font is missing.
func loadFont() rl.Font {
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(ctrl *session.Controller, loop *clock.FrameLoop) *App {
	return &App{
		Ctrl:  ctrl,
		Loop:  loop,
		Font:  loadFont(),
		width: int32(ctrl.View().WidthPx()),
	}
}

// Run opens a window as wide as the session viewport and blocks until it is
// closed. The frame loop is pumped once per rendered frame.
func Run(ctrl *session.Controller, loop *clock.FrameLoop, fps int) {
	if fps <= 0 {
		fps = 60
	}
	initWindow(int32(ctrl.View().WidthPx()), fps)
	defer rl.CloseWindow()
	app := NewApp(ctrl, loop)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Loop.Frame()
		a.Draw()
	}
}

// Update handles input for one frame and reports false when the user quits.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.report(a.Ctrl.ToggleRunning())
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.report(a.Ctrl.Reset(nil))
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.reconfigure(func(c *motion.Config) { c.InitialVelocity++ })
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.reconfigure(func(c *motion.Config) { c.InitialVelocity-- })
	}
	if rl.IsKeyPressed(rl.KeyW) {
		a.reconfigure(func(c *motion.Config) { c.Acceleration += 0.5 })
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.reconfigure(func(c *motion.Config) { c.Acceleration -= 0.5 })
	}
	if rl.IsKeyPressed(rl.KeyLeftBracket) {
		a.reconfigure(func(c *motion.Config) { c.TimeScale /= 2 })
	}
	if rl.IsKeyPressed(rl.KeyRightBracket) {
		a.reconfigure(func(c *motion.Config) { c.TimeScale *= 2 })
	}

	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && a.Ctrl.PanStart() {
		a.dragging = true
		a.dragStartX = mouse.X
	}
	if a.dragging && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		a.Ctrl.PanBy(float64(mouse.X - a.dragStartX))
	}
	if a.dragging && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.Ctrl.PanEnd()
		a.dragging = false
	}
	return true
}

func (a *App) report(err error) {
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = ""
}

func (a *App) reconfigure(edit func(c *motion.Config)) {
	cfg := a.Ctrl.Config()
	edit(&cfg)
	a.report(a.Ctrl.Reset(&cfg))
}

func (a *App) Draw() {
	snap := a.Ctrl.Snapshot()

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	a.drawTrack(snap)
	a.drawTable(snap)
	a.DrawHUD(snap)
	rl.EndDrawing()
}

func (a *App) DrawHUD(snap session.Snapshot) {
	a.drawText("motionlab", 30, 24, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: v0 %.1f m/s  a %.1f m/s²  %gx", snap.Config.InitialVelocity, snap.Config.Acceleration, snap.Config.TimeScale), 180, 30, 16, ColText)

	status := phaseLabel(snap.Phase)
	col := ColSelect
	if snap.Phase != session.Running {
		col = ColTextDim
	}
	a.drawText(status, int(a.width)-140, 24, 16, col)

	a.drawText(fmt.Sprintf("t %.2fs   x %.2fm   v %.2fm/s   camera %.1fm", snap.ElapsedTime, snap.Position, snap.Velocity, snap.ViewportCenter), 30, 70, 16, ColAccent)
	if a.status != "" {
		a.drawText(a.status, 30, 96, 14, rl.Red)
	}

	a.drawText("[SPACE] START/PAUSE  [R] RESET  [UP/DOWN] V0  [W/S] ACCEL  [ [ ] ] SPEED  [DRAG] PAN  [Q] QUIT", 30, windowHeight-30, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), int(a.width)-90, windowHeight-30, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
