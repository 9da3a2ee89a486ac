// Package palette extracts a small set of named representative colors
// ("swatches") from an image.
package palette

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"sort"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Images are scaled so neither side exceeds this before quantizing.
const sampleDimension = 100

type Name string

const (
	Vibrant      Name = "Vibrant"
	DarkVibrant  Name = "DarkVibrant"
	LightVibrant Name = "LightVibrant"
	Muted        Name = "Muted"
)

// Names lists swatches in presentation order.
var Names = []Name{Vibrant, DarkVibrant, LightVibrant, Muted}

type Swatch struct {
	Hex        string
	Population int
	s, l       float64
}

// Palette holds the swatches found in an image. A swatch is absent when no
// color in the image fits its target.
type Palette struct {
	swatches map[Name]Swatch
}

func (p *Palette) Get(name Name) (Swatch, bool) {
	sw, ok := p.swatches[name]
	return sw, ok
}

// Available returns the present swatch names in presentation order.
func (p *Palette) Available() []Name {
	var out []Name
	for _, n := range Names {
		if _, ok := p.swatches[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Hexes maps every known swatch name to its hex code, nil when absent.
func (p *Palette) Hexes() map[string]*string {
	out := make(map[string]*string, len(Names))
	for _, n := range Names {
		if sw, ok := p.swatches[n]; ok {
			hex := sw.Hex
			out[string(n)] = &hex
		} else {
			out[string(n)] = nil
		}
	}
	return out
}

// Extract decodes a JPEG, PNG, GIF or WebP image and returns its palette.
func Extract(r io.Reader) (*Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return FromImage(img), nil
}

func FromImage(img image.Image) *Palette {
	colors := quantize(downscale(img, sampleDimension))
	return generate(colors)
}

type target struct {
	name                Name
	minL, targetL, maxL float64
	minS, targetS, maxS float64
}

var targets = []target{
	{Vibrant, 0.3, 0.5, 0.7, 0.35, 1, 1},
	{LightVibrant, 0.55, 0.74, 1, 0.35, 1, 1},
	{DarkVibrant, 0, 0.26, 0.45, 0.35, 1, 1},
	{Muted, 0.3, 0.5, 0.7, 0, 0.3, 0.4},
}

const (
	weightSaturation = 3
	weightLuma       = 6.5
	weightPopulation = 0.5
)

func generate(colors []Swatch) *Palette {
	p := &Palette{swatches: make(map[Name]Swatch)}
	if len(colors) == 0 {
		return p
	}

	maxPopulation := 0
	for _, c := range colors {
		if c.Population > maxPopulation {
			maxPopulation = c.Population
		}
	}

	used := make(map[string]bool)
	for _, t := range targets {
		best := -1
		bestScore := 0.0
		for i, c := range colors {
			if used[c.Hex] {
				continue
			}
			if c.s < t.minS || c.s > t.maxS || c.l < t.minL || c.l > t.maxL {
				continue
			}
			score := weightSaturation*(1-math.Abs(c.s-t.targetS)) +
				weightLuma*(1-math.Abs(c.l-t.targetL)) +
				weightPopulation*float64(c.Population)/float64(maxPopulation)
			if best < 0 || score > bestScore {
				best, bestScore = i, score
			}
		}
		if best >= 0 {
			p.swatches[t.name] = colors[best]
			used[colors[best].Hex] = true
		}
	}
	return p
}

type bucket struct {
	r, g, b, n int
}

// quantize groups pixels into 5-bit-per-channel buckets and returns the
// average color of each bucket. Transparent and near-white pixels are skipped.
func quantize(img image.Image) []Swatch {
	buckets := make(map[int]*bucket)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16>>8 < 125 {
				continue
			}
			r, g, b := int(r16>>8), int(g16>>8), int(b16>>8)
			if r > 250 && g > 250 && b > 250 {
				continue
			}
			key := (r>>3)<<10 | (g>>3)<<5 | b>>3
			bk, ok := buckets[key]
			if !ok {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.r += r
			bk.g += g
			bk.b += b
			bk.n++
		}
	}

	out := make([]Swatch, 0, len(buckets))
	for _, bk := range buckets {
		r, g, b := bk.r/bk.n, bk.g/bk.n, bk.b/bk.n
		_, s, l := rgbToHSL(r, g, b)
		out = append(out, Swatch{
			Hex:        fmt.Sprintf("#%02x%02x%02x", r, g, b),
			Population: bk.n,
			s:          s,
			l:          l,
		})
	}
	// Map iteration is random; keep scoring ties deterministic.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Population != out[j].Population {
			return out[i].Population > out[j].Population
		}
		return out[i].Hex < out[j].Hex
	})
	return out
}

func rgbToHSL(ri, gi, bi int) (h, s, l float64) {
	r, g, b := float64(ri)/255, float64(gi)/255, float64(bi)/255
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l = (maxC + minC) / 2
	if maxC == minC {
		return 0, 0, l
	}
	d := maxC - minC
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6, s, l
}

// downscale resizes the image so neither dimension exceeds maxDim.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	newW = max(newW, 1)
	newH = max(newH, 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
