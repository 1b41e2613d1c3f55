package main

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/px8edit/cart"
	"github.com/milk9111/px8edit/config"
	"github.com/milk9111/px8edit/editor"
	"github.com/milk9111/px8edit/gfx"
	"golang.design/x/clipboard"
)

// Game hosts the editor in an ebiten window: the console framebuffer scaled
// on the left, the side panel on the right.
type Game struct {
	ed       *editor.Editor
	screen   *gfx.Screen
	cart     *cart.Cartridge
	input    *ebitenInput
	settings *config.Settings
	cartPath string

	shortcuts map[ebiten.Key]func()

	frame *ebiten.Image
	pix   []byte

	panel   *PanelUI
	watcher *cart.Watcher

	clipboardOK bool
	lastSave    time.Time
	lastElapsed float64
}

func NewGame(c *cart.Cartridge, path string, settings *config.Settings) (*Game, error) {
	in, err := newEbitenInput(settings.Keys, settings.Scale)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ed:       editor.New(),
		screen:   gfx.NewScreen(c),
		cart:     c,
		input:    in,
		settings: settings,
		cartPath: path,
		lastSave: time.Now(),
	}
	g.ed.State.BatchY = settings.BatchY
	g.ed.Init(ebitenConfig{}, g.screen)

	w, h := g.screen.ModeWidth(), g.screen.ModeHeight()
	g.frame = ebiten.NewImage(w, h)
	g.pix = make([]byte, 4*w*h)

	if err := g.bindShortcuts(settings.Keys); err != nil {
		return nil, err
	}

	g.panel, err = buildPanelUI([]panelAction{
		{Label: "Save", OnClick: g.save},
		{Label: "Reload", OnClick: g.reload},
		{Label: "Undo", OnClick: g.undo},
		{Label: "Copy sprite", OnClick: g.copySprite},
		{Label: "Paste sprite", OnClick: g.pasteSprite},
		{Label: "Export PNG", OnClick: g.export},
	})
	if err != nil {
		return nil, fmt.Errorf("build panel: %w", err)
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if c.Locked() {
		g.panel.SetStatus("read-only")
	}
	return g, nil
}

// Watch reloads the cartridge whenever its file changes on disk.
func (g *Game) Watch() error {
	if g.cartPath == "" {
		return nil
	}
	w, err := cart.NewWatcher(g.cartPath)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) bindShortcuts(keys config.Keys) error {
	g.shortcuts = map[ebiten.Key]func(){}
	for _, b := range []struct {
		name string
		fn   func()
	}{
		{keys.Undo, g.undo},
		{keys.Copy, g.copySprite},
		{keys.Paste, g.pasteSprite},
		{keys.Save, g.save},
	} {
		if b.name == "" {
			continue
		}
		k, err := parseKey(b.name)
		if err != nil {
			return err
		}
		g.shortcuts[k] = b.fn
	}
	return nil
}

func (g *Game) Update() error {
	g.pollWatcher()
	g.panel.UI.Update()

	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		for k, fn := range g.shortcuts {
			if inpututil.IsKeyJustPressed(k) {
				fn()
			}
		}
	}

	g.input.poll()
	elapsed, err := g.ed.Draw(g.input, g.screen)
	if err != nil {
		log.Printf("Editor: %v", err)
		g.panel.SetStatus(shortError(err))
	}
	g.lastElapsed = elapsed

	if n := g.settings.AutosaveSeconds; n > 0 && g.cart.Dirty() && time.Since(g.lastSave) > time.Duration(n)*time.Second {
		g.save()
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			// Our own saves come back as events too.
			if time.Since(g.lastSave) < time.Second {
				continue
			}
			log.Printf("Cartridge changed on disk: %s", name)
			g.reload()
		case err := <-g.watcher.Errors:
			log.Printf("Watcher error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.WriteRGBA(g.pix)
	g.frame.WritePixels(g.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.settings.Scale), float64(g.settings.Scale))
	screen.DrawImage(g.frame, op)

	g.panel.UI.Draw(screen)

	w, h := g.screen.ModeWidth()*g.settings.Scale, g.screen.ModeHeight()*g.settings.Scale
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  frame %.2fms", ebiten.ActualFPS(), g.lastElapsed*1000), w+8, h-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.windowSize()
}

func (g *Game) windowSize() (int, int) {
	s := g.settings.Scale
	return g.screen.ModeWidth()*s + panelWidth, g.screen.ModeHeight() * s
}

func (g *Game) save() {
	if g.cartPath == "" {
		g.panel.SetStatus("no cartridge path")
		return
	}
	if err := g.cart.Save(g.cartPath); err != nil {
		log.Printf("Save failed: %v", err)
		g.panel.SetStatus("save failed")
		return
	}
	g.lastSave = time.Now()
	log.Printf("Saved cartridge: %s", g.cartPath)
	g.panel.SetStatus("saved")
}

func (g *Game) reload() {
	c, err := cart.LoadOrDefault(g.cartPath)
	if err != nil {
		log.Printf("Reload failed: %v", err)
		g.panel.SetStatus("reload failed")
		return
	}
	g.cart.CopyFrom(c)
	g.ed.Reload(g.screen)
	g.panel.SetStatus("reloaded")
}

func (g *Game) undo() {
	if err := g.ed.Undo(g.screen); err != nil {
		log.Printf("Undo failed: %v", err)
		g.panel.SetStatus(shortError(err))
	}
}

func (g *Game) copySprite() {
	if !g.clipboardOK {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, g.ed.CopyBlock(g.screen)); err != nil {
		log.Printf("Copy failed: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	g.panel.SetStatus(fmt.Sprintf("copied %d", g.ed.State.Sprite))
}

func (g *Game) pasteSprite() {
	if !g.clipboardOK {
		return
	}
	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		g.panel.SetStatus("clipboard empty")
		return
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("Paste failed: %v", err)
		g.panel.SetStatus("paste failed")
		return
	}
	g.ed.PasteBlock(g.screen, img)
	g.panel.SetStatus(fmt.Sprintf("pasted %d", g.ed.State.Sprite))
}

func (g *Game) export() {
	path := strings.TrimSuffix(g.cartPath, ".json") + ".png"
	if g.cartPath == "" {
		path = "sheet.png"
	}
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Export failed: %v", err)
		g.panel.SetStatus("export failed")
		return
	}
	defer f.Close()
	if err := g.cart.ExportSheet(f, g.settings.ExportScale); err != nil {
		log.Printf("Export failed: %v", err)
		g.panel.SetStatus("export failed")
		return
	}
	log.Printf("Exported sprite sheet: %s", path)
	g.panel.SetStatus("exported")
}

func shortError(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	return msg
}
