package client

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"

	"yocc-backend/internal/imagecodec"
	"yocc-backend/internal/palette"
	"yocc-backend/internal/prompts"
)

type Step int

const (
	StepTexture Step = iota
	StepCompose
	StepResult
)

func (s Step) String() string {
	switch s {
	case StepTexture:
		return "Select Texture & Color"
	case StepCompose:
		return "Generate Your Image"
	case StepResult:
		return "View Result"
	}
	return "Unknown"
}

// Mode picks the texture sent with an edit: the uploaded one, or the
// catalog base texture of the selected product.
type Mode string

const (
	ModeKeep    Mode = "keep"
	ModeRecolor Mode = "recolor"
)

// User-visible wizard messages.
const (
	MsgExtractFailed   = "Could not extract colors from image."
	MsgSelectTexture   = "Please upload a texture and select a color."
	MsgUnknownColor    = "Please select one of the extracted colors."
	MsgSelectBase      = "Please select base image and color."
	MsgTextureMissing  = "Texture reference (uploaded) is missing."
	MsgGenerateFailed  = "Failed to generate image. The model may not support this request. Please try a different image or prompt."
	MsgInvalidMode     = "Please choose keep or recolor."
	MsgUnknownProduct  = "Please choose a product from the catalog."
	MsgBusy            = "Please wait for the current request to finish."
	MsgNothingToFinish = "There is no generated image yet."
	MsgWrongStep       = "This action is not available at the current step."
)

// WizardError carries the message shown to the user and the cause.
type WizardError struct {
	Message string
	Err     error
}

func (e *WizardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *WizardError) Unwrap() error { return e.Err }

// Artifact is a generated image held by the client. Index is its position
// among the results of one request, always 0 since one image is returned.
type Artifact struct {
	Data     []byte
	MimeType string
	URL      string
	Prompt   string
	Index    int
}

type EditAPI interface {
	EditWithTexture(ctx context.Context, req EditRequest) ([]byte, string, error)
}

// WizardState is a snapshot of the wizard.
type WizardState struct {
	Step          Step
	Swatches      map[string]string
	SelectedColor string
	HasTexture    bool
	HasBase       bool
	Prompt        string
	Mode          Mode
	Product       string
	Busy          bool
	Message       string
	Result        *Artifact
}

// EditWizard drives the texture edit flow: load a texture and pick one of
// its colors, choose a base image, then generate. The step only advances
// when the action it depends on succeeds.
type EditWizard struct {
	api     EditAPI
	encoder *imagecodec.Encoder
	catalog Catalog

	mu       sync.Mutex
	step     Step
	texture  *File
	swatches map[string]string
	color    string
	base     *File
	prompt   string
	mode     Mode
	product  string
	busy     bool
	message  string
	result   *Artifact
}

func NewEditWizard(api EditAPI, encoder *imagecodec.Encoder, catalog Catalog) *EditWizard {
	w := &EditWizard{api: api, encoder: encoder, catalog: catalog}
	w.resetLocked()
	return w
}

func (w *EditWizard) State() WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()

	swatches := make(map[string]string, len(w.swatches))
	for k, v := range w.swatches {
		swatches[k] = v
	}
	return WizardState{
		Step:          w.step,
		Swatches:      swatches,
		SelectedColor: w.color,
		HasTexture:    w.texture != nil,
		HasBase:       w.base != nil,
		Prompt:        w.prompt,
		Mode:          w.mode,
		Product:       w.product,
		Busy:          w.busy,
		Message:       w.message,
		Result:        w.result,
	}
}

// fail records msg as the user-visible message and returns it as an error.
func (w *EditWizard) fail(msg string, err error) error {
	w.message = msg
	return &WizardError{Message: msg, Err: err}
}

// LoadTexture reads the texture and extracts its swatches. Swatches the
// image does not have are not offered.
func (w *EditWizard) LoadTexture(ctx context.Context, src imagecodec.Source) error {
	w.mu.Lock()
	if err := w.checkLocked(StepTexture); err != nil {
		w.mu.Unlock()
		return err
	}
	w.busy = true
	w.message = ""
	w.swatches = nil
	w.color = ""
	w.mu.Unlock()

	data, mimeType, err := w.encoder.Fetch(ctx, src)
	var p *palette.Palette
	if err == nil {
		p, err = palette.Extract(bytes.NewReader(data))
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false
	if err != nil {
		w.texture = nil
		return w.fail(MsgExtractFailed, err)
	}

	w.texture = &File{Name: fileName(src, "texture"), MimeType: mimeType, Data: data}
	w.swatches = make(map[string]string)
	for _, name := range p.Available() {
		sw, _ := p.Get(name)
		w.swatches[string(name)] = sw.Hex
	}
	return nil
}

// SelectColor picks one of the offered swatch colors.
func (w *EditWizard) SelectColor(hex string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkLocked(StepTexture); err != nil {
		return err
	}

	for _, offered := range w.swatches {
		if strings.EqualFold(offered, hex) {
			w.color = offered
			w.message = ""
			return nil
		}
	}
	return w.fail(MsgUnknownColor, nil)
}

// Next builds the edit instruction for the selected color and moves to the
// compose step.
func (w *EditWizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkLocked(StepTexture); err != nil {
		return err
	}
	if w.texture == nil || w.color == "" {
		return w.fail(MsgSelectTexture, nil)
	}

	w.prompt = prompts.TextureEdit(w.color)
	w.message = ""
	w.step = StepCompose
	return nil
}

func (w *EditWizard) SetBaseImage(ctx context.Context, src imagecodec.Source) error {
	data, mimeType, err := w.encoder.Fetch(ctx, src)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkLocked(StepCompose); err != nil {
		return err
	}
	if err != nil {
		return w.fail(MsgSelectBase, err)
	}
	w.base = &File{Name: fileName(src, "base"), MimeType: mimeType, Data: data}
	w.message = ""
	return nil
}

func (w *EditWizard) SetMode(m Mode) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if m != ModeKeep && m != ModeRecolor {
		return w.fail(MsgInvalidMode, nil)
	}
	w.mode = m
	return nil
}

func (w *EditWizard) SetProduct(product string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !ValidProduct(product) {
		return w.fail(MsgUnknownProduct, nil)
	}
	w.product = product
	return nil
}

// SetPrompt replaces the generated instruction before generating.
func (w *EditWizard) SetPrompt(prompt string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkLocked(StepCompose); err != nil {
		return err
	}
	w.prompt = prompt
	return nil
}

// Generate sends one edit request. On success the edited image becomes the
// result and the wizard moves to the result step; on failure the step is
// unchanged and a message is recorded.
func (w *EditWizard) Generate(ctx context.Context) (*Artifact, error) {
	w.mu.Lock()
	if err := w.checkLocked(StepCompose); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if w.base == nil || w.color == "" {
		err := w.fail(MsgSelectBase, nil)
		w.mu.Unlock()
		return nil, err
	}
	if w.mode == ModeKeep && w.texture == nil {
		err := w.fail(MsgTextureMissing, nil)
		w.mu.Unlock()
		return nil, err
	}

	req := EditRequest{
		Base:    *w.base,
		Prompt:  w.prompt,
		Hex:     prompts.SafeColor(w.color),
		Mode:    w.mode,
		Product: w.product,
	}
	uploaded := w.texture
	w.busy = true
	w.message = ""
	w.mu.Unlock()

	texture, err := w.resolveTexture(ctx, req.Mode, req.Product, uploaded)
	var data []byte
	var mimeType string
	if err == nil {
		req.Texture = *texture
		data, mimeType, err = w.api.EditWithTexture(ctx, req)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false
	if err != nil {
		return nil, w.fail(MsgGenerateFailed, err)
	}
	if len(data) == 0 {
		return nil, w.fail(MsgGenerateFailed, errors.New("empty image in response"))
	}

	w.result = &Artifact{Data: data, MimeType: mimeType, Prompt: req.Prompt}
	w.step = StepResult
	return w.result, nil
}

// resolveTexture returns the uploaded texture in keep mode and the catalog
// asset otherwise. Both are sent the same way.
func (w *EditWizard) resolveTexture(ctx context.Context, mode Mode, product string, uploaded *File) (*File, error) {
	if mode == ModeKeep {
		return uploaded, nil
	}

	ref, err := w.catalog.AssetRef(product)
	if err != nil {
		return nil, err
	}
	data, mimeType, err := w.encoder.Fetch(ctx, imagecodec.FromRef(ref))
	if err != nil {
		return nil, err
	}
	return &File{Name: AssetName(product), MimeType: mimeType, Data: data}, nil
}

func (w *EditWizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy {
		return
	}
	w.message = ""
	if w.step > StepTexture {
		w.step--
	}
}

func (w *EditWizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

func (w *EditWizard) resetLocked() {
	w.step = StepTexture
	w.texture = nil
	w.swatches = nil
	w.color = ""
	w.base = nil
	w.prompt = ""
	w.mode = ModeRecolor
	w.product = DefaultProduct
	w.busy = false
	w.message = ""
	w.result = nil
}

// Finish returns the generated image so it can be promoted into an order.
func (w *EditWizard) Finish() (*Artifact, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.result == nil {
		return nil, w.fail(MsgNothingToFinish, nil)
	}
	return w.result, nil
}

func (w *EditWizard) checkLocked(step Step) error {
	if w.busy {
		return &WizardError{Message: MsgBusy}
	}
	if w.step != step {
		return &WizardError{Message: MsgWrongStep, Err: errors.New(w.step.String())}
	}
	return nil
}

func fileName(src imagecodec.Source, fallback string) string {
	if src.Ref == "" || strings.HasPrefix(src.Ref, "data:") {
		return fallback
	}
	name := src.Ref
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return fallback
	}
	return name
}
