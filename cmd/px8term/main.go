package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/px8edit/cart"
	"github.com/milk9111/px8edit/config"
	"github.com/milk9111/px8edit/editor"
	"github.com/milk9111/px8edit/gfx"
)

const scrollStep = 16

// termEditor hosts the editor in a terminal.
type termEditor struct {
	ts       tcell.Screen
	ed       *editor.Editor
	screen   *gfx.Screen
	cart     *cart.Cartridge
	input    *termInput
	cartPath string
	status   string

	shortcuts map[rune]func()
}

func newTermEditor(c *cart.Cartridge, path string, settings *config.Settings) (*termEditor, error) {
	in := &termInput{}
	for i, name := range settings.Keys.Buttons() {
		k, err := parseTermKey(name)
		if err != nil {
			return nil, err
		}
		in.buttons[i] = k
	}

	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := ts.Init(); err != nil {
		return nil, err
	}

	t := &termEditor{
		ts:       ts,
		ed:       editor.New(),
		screen:   gfx.NewScreen(c),
		cart:     c,
		input:    in,
		cartPath: path,
	}
	t.ed.State.BatchY = settings.BatchY
	t.ed.Init(t, t.screen)

	t.shortcuts = map[rune]func(){}
	for _, b := range []struct {
		name string
		fn   func()
	}{
		{settings.Keys.Undo, t.undo},
		{settings.Keys.Save, t.save},
	} {
		k, err := parseTermKey(b.name)
		if err != nil || k.key != tcell.KeyRune {
			continue
		}
		t.shortcuts[k.r] = b.fn
	}
	return t, nil
}

// ToggleMouse turns terminal mouse reporting on or off.
func (t *termEditor) ToggleMouse(visible bool) {
	if visible {
		t.ts.EnableMouse()
		return
	}
	t.ts.DisableMouse()
}

func (t *termEditor) run(watcher *cart.Watcher) {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.ts.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	var reload <-chan string
	if watcher != nil {
		reload = watcher.Events
	}

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handleEvent(ev) {
				return
			}
		case name := <-reload:
			log.Printf("Cartridge changed on disk: %s", name)
			t.reload()
		case <-ticker.C:
			t.frame()
		}
	}
}

func (t *termEditor) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlQ {
			return false
		}
		if r, ok := ctrlLetter(ev); ok {
			if fn, ok := t.shortcuts[r]; ok {
				fn()
			}
			return true
		}
		switch ev.Key() {
		case tcell.KeyPgDn:
			t.scroll(scrollStep)
			return true
		case tcell.KeyPgUp:
			t.scroll(-scrollStep)
			return true
		}
		t.input.handleKey(ev)
	case *tcell.EventMouse:
		t.input.handleMouse(ev)
	case *tcell.EventResize:
		t.ts.Sync()
	}
	return true
}

func (t *termEditor) scroll(dy int) {
	_, h := t.ts.Size()
	maxY := max(0, t.screen.ModeHeight()-2*(h-1))
	t.input.viewY = max(0, min(t.input.viewY+dy, maxY))
}

func (t *termEditor) frame() {
	if _, err := t.ed.Draw(t.input, t.screen); err != nil {
		log.Printf("Editor: %v", err)
		t.status = err.Error()
	}
	t.input.endFrame()

	render(t.ts, t.screen, t.input.viewY)
	t.drawStatus()
	t.ts.Show()
}

func (t *termEditor) drawStatus() {
	_, h := t.ts.Size()
	mark := ""
	if t.cart.Dirty() {
		mark = "*"
	}
	line := fmt.Sprintf(" %s%s  mode %s  sprite %d  %s", t.cartPath, mark, t.ed.Mode(), t.ed.State.Sprite, t.status)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	w, _ := t.ts.Size()
	for x, r := range []rune(line) {
		if x >= w {
			break
		}
		t.ts.SetContent(x, h-1, r, nil, style)
	}
}

func (t *termEditor) save() {
	if t.cartPath == "" {
		t.status = "no cartridge path"
		return
	}
	if err := t.cart.Save(t.cartPath); err != nil {
		log.Printf("Save failed: %v", err)
		t.status = "save failed"
		return
	}
	t.status = "saved"
}

func (t *termEditor) undo() {
	if err := t.ed.Undo(t.screen); err != nil {
		t.status = err.Error()
	}
}

func (t *termEditor) reload() {
	c, err := cart.LoadOrDefault(t.cartPath)
	if err != nil {
		log.Printf("Reload failed: %v", err)
		t.status = "reload failed"
		return
	}
	t.cart.CopyFrom(c)
	t.ed.Reload(t.screen)
	t.status = "reloaded"
}

func (t *termEditor) close() {
	t.ts.Fini()
}

func main() {
	configPath := flag.String("config", "px8edit.yaml", "Settings file (YAML); missing file uses defaults")
	cartPath := flag.String("cart", "", "Cartridge file to edit (overrides the settings file)")
	logPath := flag.String("log", "px8term.log", "Log file; the terminal is used for drawing")
	watch := flag.Bool("watch", true, "Reload the cartridge when it changes on disk")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *cartPath != "" {
		settings.Cartridge = *cartPath
	}
	c, err := cart.LoadOrDefault(settings.Cartridge)
	if err != nil {
		log.Fatalf("Failed to load cartridge: %v", err)
	}
	if settings.ReadOnly {
		c.Lock()
	}

	var watcher *cart.Watcher
	if *watch && settings.Cartridge != "" {
		if watcher, err = cart.NewWatcher(settings.Cartridge); err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	t, err := newTermEditor(c, settings.Cartridge, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer t.close()

	log.Printf("Editing cartridge: %s", settings.Cartridge)
	t.run(watcher)
}
