// Package assets loads the level's model and texture in the background. A
// load that fails is reported once and never retried; the game keeps running
// without the asset.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

type Kind int

const (
	KindModel Kind = iota
	KindTexture
)

func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindTexture:
		return "texture"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is a finished load. Exactly one of Image/Model is set when Err is nil.
type Result struct {
	Kind  Kind
	Path  string
	Image image.Image
	Model ModelBounds
	Err   error
}

// Warning is the diagnostic logged for a failed load.
func (r Result) Warning() string {
	if r.Err == nil {
		return ""
	}
	if r.Kind == KindTexture {
		return fmt.Sprintf("Texture '%s' not found. Using fallback.", r.Path)
	}
	return fmt.Sprintf("An error occurred while loading the model: %v", r.Err)
}

// Loader runs each load on its own goroutine and hands results back through
// a channel the frame loop drains with Poll.
type Loader struct {
	// ReadFile defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)

	results chan Result
}

func NewLoader() *Loader {
	return &Loader{
		ReadFile: os.ReadFile,
		results:  make(chan Result, 8),
	}
}

func (l *Loader) LoadTexture(path string) {
	go func() {
		img, err := l.decodeImage(path)
		l.results <- Result{Kind: KindTexture, Path: path, Image: img, Err: err}
	}()
}

func (l *Loader) LoadModel(path string) {
	go func() {
		b, err := l.decodeModel(path)
		l.results <- Result{Kind: KindModel, Path: path, Model: b, Err: err}
	}()
}

// Poll returns every result that has arrived since the last call without
// blocking.
func (l *Loader) Poll() []Result {
	var done []Result
	for {
		select {
		case r := <-l.results:
			done = append(done, r)
		default:
			return done
		}
	}
}

func (l *Loader) decodeImage(path string) (image.Image, error) {
	data, err := l.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

func (l *Loader) decodeModel(path string) (ModelBounds, error) {
	if !isModelPath(path) {
		return ModelBounds{}, fmt.Errorf("assets: %s: unsupported model format", path)
	}
	data, err := l.ReadFile(path)
	if err != nil {
		return ModelBounds{}, fmt.Errorf("assets: read %s: %w", path, err)
	}
	b, err := ParseModelBounds(data)
	if err != nil {
		return ModelBounds{}, fmt.Errorf("assets: %s: %w", path, err)
	}
	return b, nil
}
