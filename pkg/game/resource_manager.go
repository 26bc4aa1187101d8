package game

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"github.com/decker502/storefront/pkg/art"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Well-known image IDs used by the storefront and destination scenes.
const (
	ImageStorefront = "storefront"
	ImageZebra      = "zebra"
	ImageShadow     = "shadow"
)

// LabelImageID returns the cache ID of the hover label for a door key.
func LabelImageID(doorKey string) string {
	return "label/" + doorKey
}

// PageImageID returns the cache ID of the destination page for a door key.
func PageImageID(doorKey string) string {
	return "page/" + doorKey
}

// ImageGenerator produces the pixels of a procedural image.
type ImageGenerator func() (image.Image, error)

type imageJob struct {
	id       string
	generate ImageGenerator
}

// ResourceManager is responsible for centralized management of scene resources.
// It owns the image cache and the font face cache, and processes queued
// procedural image jobs a few per frame so that the first frames stay responsive.
//
// The ResourceManager implements the following key features:
//   - Queued image generation with per-frame budget and progress reporting
//   - Image caching by ID (queuing an already cached ID is a no-op)
//   - Font face loading from the embedded Go fonts, cached by style and size
//   - Failed jobs are logged and recorded; they never stop the queue
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Update, GetImage and LoadFont are
// called from the Ebiten game loop goroutine only.
//
// Usage:
//
//	rm := NewResourceManager()
//	rm.Queue(ImageZebra, func() (image.Image, error) { return art.Zebra(150, 260), nil })
//	for !rm.Update(2) {
//	    // draw a frame, show rm.Progress()
//	}
//	zebra := rm.GetImage(ImageZebra)
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image                 // Cache for generated images: ID -> Image
	fontSources   map[art.FontStyle]*text.GoTextFaceSource // Parsed font sources: style -> source
	fontFaceCache map[string]*text.GoTextFace              // Cache for Ebitengine v2 text faces

	queue    []imageJob
	queued   map[string]bool
	total    int
	finished int
	failures []error
}

// NewResourceManager creates and initializes a new ResourceManager instance
// with empty caches and an empty job queue.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontSources:   make(map[art.FontStyle]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		queued:        make(map[string]bool),
	}
}

// Queue schedules a procedural image for generation.
// Queuing an ID that is already cached or already pending does nothing.
//
// Parameters:
//   - id: The cache ID of the image (see the Image* constants and LabelImageID/PageImageID).
//   - generate: The function producing the image pixels.
func (rm *ResourceManager) Queue(id string, generate ImageGenerator) {
	if _, cached := rm.imageCache[id]; cached || rm.queued[id] {
		return
	}
	rm.queue = append(rm.queue, imageJob{id: id, generate: generate})
	rm.queued[id] = true
	rm.total++
}

// Update processes at most budget queued jobs.
//
// Returns:
//   - true when the queue is empty after this call (all queued images are ready or failed).
func (rm *ResourceManager) Update(budget int) bool {
	for budget > 0 && len(rm.queue) > 0 {
		job := rm.queue[0]
		rm.queue = rm.queue[1:]
		delete(rm.queued, job.id)
		budget--

		if err := rm.runJob(job); err != nil {
			log.Printf("[ResourceManager] 生成图片失败: %v", err)
			rm.failures = append(rm.failures, err)
		}
		rm.finished++
	}
	return len(rm.queue) == 0
}

func (rm *ResourceManager) runJob(job imageJob) error {
	img, err := job.generate()
	if err != nil {
		return fmt.Errorf("image %s: %w", job.id, err)
	}
	if img == nil {
		return fmt.Errorf("image %s: generator returned nil", job.id)
	}
	rm.imageCache[job.id] = ebiten.NewImageFromImage(img)
	return nil
}

// Progress returns the fraction of queued jobs processed so far, in [0, 1].
// With nothing queued the progress is 1.
func (rm *ResourceManager) Progress() float64 {
	if rm.total == 0 {
		return 1
	}
	return float64(rm.finished) / float64(rm.total)
}

// Pending returns the number of jobs still waiting in the queue.
func (rm *ResourceManager) Pending() int {
	return len(rm.queue)
}

// Failures returns the errors of all failed jobs.
func (rm *ResourceManager) Failures() []error {
	return rm.failures
}

// GetImage retrieves a generated image from the cache.
// If the image has not been generated yet, it returns nil.
func (rm *ResourceManager) GetImage(id string) *ebiten.Image {
	return rm.imageCache[id]
}

// LoadFont returns a text face of the given embedded Go font style and size.
// Font sources and faces are cached, so repeated calls return the same face.
//
// Returns:
//   - A pointer to the cached text.GoTextFace.
//   - An error if the style is unknown or the font data cannot be parsed.
func (rm *ResourceManager) LoadFont(style art.FontStyle, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%d:%.1f", style, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, ok := rm.fontSources[style]
	if !ok {
		var data []byte
		switch style {
		case art.FontRegular:
			data = goregular.TTF
		case art.FontBold:
			data = gobold.TTF
		default:
			return nil, fmt.Errorf("unknown font style: %d", style)
		}

		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for style %d: %w", style, err)
		}
		rm.fontSources[style] = source
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}
