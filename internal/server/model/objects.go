package model

import (
	"image"
	"image/color"
)

// MinObjectArea is the smallest bounding box, in pixels, counted as an
// object.
const MinObjectArea = 500

// CountObjects estimates how many distinct items the image shows. Pixels
// darker than the Otsu threshold are foreground; 8-connected foreground
// regions whose bounding box covers at least MinObjectArea pixels are
// counted.
func CountObjects(img image.Image) int {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 0
	}

	gray := make([]uint8, w*h)
	var hist [256]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
			gray[y*w+x] = v
			hist[v]++
		}
	}

	t := otsu(hist, w*h)
	fg := make([]bool, w*h)
	for i, v := range gray {
		fg[i] = v <= t
	}

	count := 0
	seen := make([]bool, w*h)
	stack := make([]int, 0, 64)
	for start := range fg {
		if !fg[start] || seen[start] {
			continue
		}
		minX, minY, maxX, maxY := w, h, -1, -1
		seen[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			px, py := p%w, p/w
			minX, maxX = min(minX, px), max(maxX, px)
			minY, maxY = min(minY, py), max(maxY, py)

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := px+dx, py+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					q := ny*w + nx
					if fg[q] && !seen[q] {
						seen[q] = true
						stack = append(stack, q)
					}
				}
			}
		}
		if (maxX-minX+1)*(maxY-minY+1) >= MinObjectArea {
			count++
		}
	}
	return count
}

// otsu returns the threshold maximising between-class variance. A uniform
// image yields its only level.
func otsu(hist [256]int, total int) uint8 {
	var sum float64
	for i, c := range hist {
		sum += float64(i * c)
	}

	var sumB float64
	var wB int
	best, threshold := -1.0, 0
	for i := 0; i < 256; i++ {
		wB += hist[i]
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(i * hist[i])
		mB := sumB / float64(wB)
		mF := (sum - sumB) / float64(wF)
		between := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if between > best {
			best, threshold = between, i
		}
	}
	if best < 0 {
		return 0
	}
	return uint8(threshold)
}
