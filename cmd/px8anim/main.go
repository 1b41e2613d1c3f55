package main

import (
	"flag"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/px8edit/cart"
)

const windowSize = 512

// previewGame plays a run of cartridge sprites as an animation.
type previewGame struct {
	path        string
	first       int
	count       int
	size        int
	frames      []*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
	watcher     *cart.Watcher
}

func (g *previewGame) Update() error {
	if g.watcher != nil {
		select {
		case <-g.watcher.Events:
			if err := g.load(); err != nil {
				log.Printf("Reload failed: %v", err)
			}
		default:
		}
	}
	if len(g.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(g.frames) == 0 {
		return
	}
	fw := g.frames[0].Bounds().Dx()
	scale := float64(windowSize/2) / float64(fw)
	sx := (windowSize - float64(fw)*scale) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx, sx)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.frames[g.current], op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize, windowSize
}

// load rebuilds the frames from the cartridge file.
func (g *previewGame) load() error {
	c, err := cart.LoadOrDefault(g.path)
	if err != nil {
		return err
	}
	sheet := ebiten.NewImageFromImage(c.SheetImage())
	rects := frameRects(g.first, g.count, g.size)
	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	g.frames = frames
	if g.current >= len(frames) {
		g.current = 0
	}
	return nil
}

// frameRects returns the sheet rectangles of count frames starting at sprite
// first, each frame size x size sprites. Frames run along the sheet row and
// wrap to the next row of blocks; they stop at the end of the sheet.
func frameRects(first, count, size int) []image.Rectangle {
	if size < 1 {
		size = 1
	}
	if first < 0 {
		return nil
	}
	var rects []image.Rectangle
	px := size * cart.SpriteSize
	for i := 0; i < count; i++ {
		col := first%cart.SheetColumns + i*size
		row := first/cart.SheetColumns + col/cart.SheetColumns*size
		col %= cart.SheetColumns
		if col+size > cart.SheetColumns || row+size > cart.SheetColumns {
			break
		}
		x, y := col*cart.SpriteSize, row*cart.SpriteSize
		rects = append(rects, image.Rect(x, y, x+px, y+px))
	}
	return rects
}

func main() {
	path := flag.String("cart", "cart.json", "Cartridge file")
	first := flag.Int("first", 1, "First sprite of the animation")
	count := flag.Int("frames", 4, "Number of frames")
	size := flag.Int("size", 1, "Frame size in sprites (1, 2 or 4)")
	fps := flag.Int("fps", 8, "Frames per second")
	flag.Parse()

	ticks := 1
	if *fps > 0 {
		ticks = max(1, 60 / *fps)
	}
	g := &previewGame{path: *path, first: *first, count: *count, size: *size, ticksPerFrm: ticks}
	if err := g.load(); err != nil {
		log.Fatalf("Failed to load cartridge: %v", err)
	}
	if w, err := cart.NewWatcher(*path); err != nil {
		log.Printf("Hot reload disabled: %v", err)
	} else {
		g.watcher = w
		defer w.Close()
	}

	ebiten.SetWindowSize(windowSize, windowSize)
	ebiten.SetWindowTitle("px8anim")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
