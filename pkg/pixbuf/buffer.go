// Package pixbuf holds image data as interleaved float64 samples, and runs
// per-pixel transforms over it in parallel.
package pixbuf

import (
	"fmt"
	"runtime"
	"sync"
)

// Buffer is a Width x Height image with Colors samples per pixel, stored
// row by row.
type Buffer struct {
	Width      int
	Height     int
	Colors     int
	Monochrome bool // No real color information; e.g. a B&W sensor
	Data       []float64
}

// A ChunkFunc transforms a run of pixels. `in` holds the input samples and
// `out` is where the results go; both cover the same pixels, but may have
// different numbers of samples per pixel.
type ChunkFunc func(out, in []float64)

func New(width, height, colors int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Colors: colors,
		Data:   make([]float64, width*height*colors),
	}
}

func (b *Buffer) String() string {
	mono := ""
	if b.Monochrome {
		mono = ", mono"
	}
	return fmt.Sprintf("buffer[%dx%d, %d colors%s]", b.Width, b.Height, b.Colors, mono)
}

func (b *Buffer) NumPixels() int { return b.Width * b.Height }

// Pixel returns the samples for the pixel at (x,y). The slice aliases the
// buffer's data.
func (b *Buffer) Pixel(x, y int) []float64 {
	i := (y*b.Width + x) * b.Colors
	return b.Data[i : i+b.Colors]
}

func (b *Buffer) SetPixel(x, y int, vals ...float64) {
	copy(b.Pixel(x, y), vals)
}

func (b *Buffer) row(y int) []float64 {
	n := b.Width * b.Colors
	return b.Data[y*n : (y+1)*n]
}

// ProcessInto runs `fn` over every row of the buffer, using a pool of
// `workers` goroutines (or one per CPU, if workers <= 0), and returns a
// new buffer with `colors` samples per pixel. The receiver is not changed.
// Rows may be processed in any order, so `fn` must only look at the
// pixels it is given.
func (b *Buffer) ProcessInto(colors, workers int, fn ChunkFunc) *Buffer {
	out := New(b.Width, b.Height, colors)
	out.Monochrome = b.Monochrome

	if b.NumPixels() == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > b.Height {
		workers = b.Height
	}

	var wg sync.WaitGroup
	rowsChan := make(chan int, b.Height)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowsChan {
				fn(out.row(y), b.row(y))
			}
		}()
	}

	for y := 0; y < b.Height; y++ {
		rowsChan <- y
	}
	close(rowsChan)
	wg.Wait()

	return out
}
