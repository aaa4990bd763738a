package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/store"
	"github.com/MKhiriev/go-relief-sync/models"
)

// regionFlow serialises prompts through turn; the holder of turn is the
// only goroutine that may install pending.
type regionFlow struct {
	prefs *store.Preferences

	turn chan struct{}

	mu      sync.Mutex
	pending chan models.Region
	pickers map[uint64]RegionPicker
	nextID  uint64

	logger *logger.Logger
}

func NewRegionFlow(prefs *store.Preferences, log *logger.Logger) RegionFlow {
	return &regionFlow{
		prefs:   prefs,
		turn:    make(chan struct{}, 1),
		pickers: make(map[uint64]RegionPicker),
		logger:  log,
	}
}

func (f *regionFlow) GetOrPromptRegion(ctx context.Context) (models.Region, error) {
	if region, ok := f.storedRegion(ctx); ok {
		return region, nil
	}
	return f.prompt(ctx, false)
}

func (f *regionFlow) ForcePrompt(ctx context.Context) (models.Region, error) {
	return f.prompt(ctx, true)
}

func (f *regionFlow) prompt(ctx context.Context, force bool) (models.Region, error) {
	select {
	case f.turn <- struct{}{}:
	case <-ctx.Done():
		return models.RegionUndefined, ctx.Err()
	}
	defer func() { <-f.turn }()

	// an earlier prompt may have stored a region while this call was queued
	if !force {
		if region, ok := f.storedRegion(ctx); ok {
			return region, nil
		}
	}

	f.mu.Lock()
	if len(f.pickers) == 0 {
		f.mu.Unlock()
		f.logger.Warn().Str("func", "*regionFlow.prompt").Msg("no region picker attached, region stays undefined")
		return models.RegionUndefined, nil
	}
	result := make(chan models.Region, 1)
	f.pending = result
	pickers := f.pickerList()
	f.mu.Unlock()

	f.logger.Debug().Str("func", "*regionFlow.prompt").Bool("force", force).Msg("awaiting region selection")
	for _, p := range pickers {
		p.ShowRegionPicker(models.Regions)
	}

	select {
	case region := <-result:
		return region, nil
	case <-ctx.Done():
	}

	f.mu.Lock()
	resolved := f.pending != result
	if !resolved {
		f.pending = nil
	}
	pickers = f.pickerList()
	f.mu.Unlock()

	if resolved {
		return <-result, nil
	}

	for _, p := range pickers {
		p.DismissRegionPicker()
	}
	return models.RegionUndefined, ctx.Err()
}

func (f *regionFlow) Select(ctx context.Context, region models.Region) error {
	if !region.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRegion, region)
	}

	f.mu.Lock()
	if f.pending == nil {
		f.mu.Unlock()
		return ErrNoPendingSelection
	}

	// persisted before anyone is released, readers never see a resolved
	// but unsaved region
	if err := f.prefs.SetRegion(ctx, region); err != nil {
		f.mu.Unlock()
		f.logger.Err(err).Str("func", "*regionFlow.Select").Msg("error saving region")
		return fmt.Errorf("%w: %w", ErrRegionNotSaved, err)
	}

	result := f.pending
	f.pending = nil
	pickers := f.pickerList()
	f.mu.Unlock()

	result <- region
	f.logger.Info().Str("func", "*regionFlow.Select").Str("region", region.String()).Msg("region selected")

	for _, p := range pickers {
		p.DismissRegionPicker()
	}
	return nil
}

func (f *regionFlow) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending != nil
}

func (f *regionFlow) CurrentRegion(ctx context.Context) (models.Region, error) {
	return f.prefs.Region(ctx)
}

func (f *regionFlow) AttachPicker(picker RegionPicker) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.pickers[id] = picker
	showNow := f.pending != nil
	f.mu.Unlock()

	if showNow {
		picker.ShowRegionPicker(models.Regions)
	}

	var once sync.Once
	return func() {
		once.Do(func() { f.detach(id) })
	}
}

func (f *regionFlow) detach(id uint64) {
	f.mu.Lock()
	delete(f.pickers, id)
	var abandoned chan models.Region
	if len(f.pickers) == 0 && f.pending != nil {
		abandoned = f.pending
		f.pending = nil
	}
	f.mu.Unlock()

	if abandoned != nil {
		f.logger.Warn().Str("func", "*regionFlow.detach").Msg("last region picker detached, prompt resolved as undefined")
		abandoned <- models.RegionUndefined
	}
}

func (f *regionFlow) storedRegion(ctx context.Context) (models.Region, bool) {
	region, err := f.prefs.Region(ctx)
	if err != nil {
		f.logger.Warn().Err(err).Str("func", "*regionFlow.storedRegion").Msg("error reading region")
		return models.RegionUndefined, false
	}
	return region, region.Valid()
}

// pickerList must be called with mu held.
func (f *regionFlow) pickerList() []RegionPicker {
	list := make([]RegionPicker, 0, len(f.pickers))
	for _, p := range f.pickers {
		list = append(list, p)
	}
	return list
}
