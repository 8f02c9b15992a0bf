package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/domain/repository"
)

// CatalogProvider supplies the option catalog for a bakery.
type CatalogProvider interface {
	Catalog(ctx context.Context, bakeryID string) (*model.Catalog, error)
}

// ConfiguratorUseCase drives the custom-cake configuration flow: option
// selection with incremental price maintenance, the gated four-stage wizard,
// and materialization of a completed configuration into an order line.
//
// Every mutation loads the session, applies the change atomically with its
// price delta, and persists; a failed precondition leaves the session
// untouched.
type ConfiguratorUseCase struct {
	sessions repository.SessionRepository
	catalogs CatalogProvider
}

// NewConfiguratorUseCase constructs ConfiguratorUseCase.
func NewConfiguratorUseCase(sessions repository.SessionRepository, catalogs CatalogProvider) *ConfiguratorUseCase {
	return &ConfiguratorUseCase{sessions: sessions, catalogs: catalogs}
}

// StartSession creates an empty configuration session for a customer/bakery.
func (u *ConfiguratorUseCase) StartSession(ctx context.Context, customerID, bakeryID string) (*model.ConfigSession, error) {
	now := time.Now()
	session := &model.ConfigSession{
		ID:         uuid.New(),
		CustomerID: customerID,
		BakeryID:   bakeryID,
		Config:     model.NewCakeConfig(),
		Studio:     model.NewStudioScene(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Session returns a session by id.
func (u *ConfiguratorUseCase) Session(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error) {
	return u.sessions.Get(ctx, id)
}

func (u *ConfiguratorUseCase) mutate(ctx context.Context, id uuid.UUID, fn func(*model.ConfigSession, *model.Catalog) error) (*model.ConfigSession, error) {
	session, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog, err := u.catalogs.Catalog(ctx, session.BakeryID)
	if err != nil {
		return nil, err
	}
	if err := fn(session, catalog); err != nil {
		return nil, err
	}
	session.UpdatedAt = time.Now()
	if err := u.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectOption sets a single-value category (size, sponge, filling, icing,
// goo) to the given option, adjusting price by the delta against the option it
// replaces. Reselecting the active option is a legal no-op.
func (u *ConfiguratorUseCase) SelectOption(ctx context.Context, id uuid.UUID, category model.OptionCategory, optionID string) (*model.ConfigSession, error) {
	return u.mutate(ctx, id, func(s *model.ConfigSession, cat *model.Catalog) error {
		return selectSingleValue(&s.Config, cat, category, optionID)
	})
}

// ToggleDecoration toggles an outer-decoration option with the
// at-most-one-per-sub-type rule.
func (u *ConfiguratorUseCase) ToggleDecoration(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	return u.mutate(ctx, id, func(s *model.ConfigSession, cat *model.Catalog) error {
		return toggleMultiValue(&s.Config, cat, model.CategoryDecoration, optionID)
	})
}

// ToggleExtra toggles an extra option, mirroring board/candle sub-types into
// their convenience fields.
func (u *ConfiguratorUseCase) ToggleExtra(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	return u.mutate(ctx, id, func(s *model.ConfigSession, cat *model.Catalog) error {
		return toggleMultiValue(&s.Config, cat, model.CategoryExtra, optionID)
	})
}

// SetMessageType switches the message kind, applying the price delta between
// the catalog entries backing the old and new kinds.
func (u *ConfiguratorUseCase) SetMessageType(ctx context.Context, id uuid.UUID, t model.MessageType) (*model.ConfigSession, error) {
	return u.mutate(ctx, id, func(s *model.ConfigSession, cat *model.Catalog) error {
		return setMessageType(&s.Config, cat, t)
	})
}

// SetMessageText stores the cake message truncated to the maximum length.
func (u *ConfiguratorUseCase) SetMessageText(ctx context.Context, id uuid.UUID, text string) (*model.ConfigSession, error) {
	return u.mutate(ctx, id, func(s *model.ConfigSession, _ *model.Catalog) error {
		runes := []rune(text)
		if len(runes) > model.MaxMessageLength {
			runes = runes[:model.MaxMessageLength]
		}
		s.Config.Message = string(runes)
		return nil
	})
}

// SetPlaqueColor stores the plaque color. Colors carry no price.
func (u *ConfiguratorUseCase) SetPlaqueColor(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	return u.mutate(ctx, id, func(s *model.ConfigSession, _ *model.Catalog) error {
		s.Config.PlaqueColor = optionID
		return nil
	})
}

// SetPipingColor stores the piping color. Colors carry no price.
func (u *ConfiguratorUseCase) SetPipingColor(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	return u.mutate(ctx, id, func(s *model.ConfigSession, _ *model.Catalog) error {
		s.Config.PipingColor = optionID
		return nil
	})
}

// SetUploadedImage stores the edible-print image reference, or clears it.
func (u *ConfiguratorUseCase) SetUploadedImage(ctx context.Context, id uuid.UUID, ref string) (*model.ConfigSession, error) {
	return u.mutate(ctx, id, func(s *model.ConfigSession, _ *model.Catalog) error {
		s.Config.UploadedImage = ref
		return nil
	})
}

// Reset replaces the configuration with the default and locks the wizard back
// to the first stage.
func (u *ConfiguratorUseCase) Reset(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error) {
	return u.mutate(ctx, id, func(s *model.ConfigSession, _ *model.Catalog) error {
		s.Config = model.NewCakeConfig()
		s.Progress = model.WizardProgress{}
		return nil
	})
}

// CompleteStage validates and marks a wizard stage complete. Stages unlock in
// order; an out-of-order completion fails without marking anything.
func (u *ConfiguratorUseCase) CompleteStage(ctx context.Context, id uuid.UUID, stage model.WizardStage) (*model.ConfigSession, error) {
	return u.mutate(ctx, id, func(s *model.ConfigSession, _ *model.Catalog) error {
		return completeStage(&s.Config, &s.Progress, stage)
	})
}

// Materialize projects a fully completed configuration into an order-line
// submission payload.
func (u *ConfiguratorUseCase) Materialize(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	session, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog, err := u.catalogs.Catalog(ctx, session.BakeryID)
	if err != nil {
		return nil, err
	}
	return materialize(&session.Config, session.Progress, catalog)
}

// Discard removes a session.
func (u *ConfiguratorUseCase) Discard(ctx context.Context, id uuid.UUID) error {
	return u.sessions.Delete(ctx, id)
}

// --- pure configuration transitions ---

func selectSingleValue(cfg *model.CakeConfig, cat *model.Catalog, category model.OptionCategory, optionID string) error {
	newOpt, ok := cat.Lookup(category, optionID)
	if !ok {
		return fmt.Errorf("%w: %s %q", domainErrors.ErrUnknownOption, category, optionID)
	}

	oldPrice := decimal.Zero
	if current := cfg.SingleValue(category); current != "" {
		oldOpt, ok := cat.Lookup(category, current)
		if !ok {
			return fmt.Errorf("%w: %s %q", domainErrors.ErrUnknownOption, category, current)
		}
		oldPrice = oldOpt.Price
	}

	cfg.SetSingleValue(category, optionID)
	cfg.Price = cfg.Price.Add(newOpt.Price).Sub(oldPrice)
	return nil
}

func toggleMultiValue(cfg *model.CakeConfig, cat *model.Catalog, category model.OptionCategory, optionID string) error {
	opt, ok := cat.Lookup(category, optionID)
	if !ok {
		return fmt.Errorf("%w: %s %q", domainErrors.ErrUnknownOption, category, optionID)
	}

	list := &cfg.Decorations
	if category == model.CategoryExtra {
		list = &cfg.Extras
	}

	// Deselect when already present.
	for i, id := range *list {
		if id == optionID {
			*list = append((*list)[:i], (*list)[i+1:]...)
			cfg.Price = cfg.Price.Sub(opt.Price)
			if category == model.CategoryExtra {
				mirrorExtra(cfg, opt.SubType, "")
			}
			return nil
		}
	}

	// Replace an already-selected option of the same sub-type in place.
	for i, id := range *list {
		existing, ok := cat.Lookup(category, id)
		if !ok {
			return fmt.Errorf("%w: %s %q", domainErrors.ErrUnknownOption, category, id)
		}
		if existing.SubType == opt.SubType {
			(*list)[i] = optionID
			cfg.Price = cfg.Price.Add(opt.Price).Sub(existing.Price)
			if category == model.CategoryExtra {
				mirrorExtra(cfg, opt.SubType, optionID)
			}
			return nil
		}
	}

	*list = append(*list, optionID)
	cfg.Price = cfg.Price.Add(opt.Price)
	if category == model.CategoryExtra {
		mirrorExtra(cfg, opt.SubType, optionID)
	}
	return nil
}

func mirrorExtra(cfg *model.CakeConfig, subType, optionID string) {
	switch subType {
	case model.SubTypeCakeBoard:
		cfg.Board = optionID
	case model.SubTypeCandles:
		cfg.Candles = optionID
	}
}

func setMessageType(cfg *model.CakeConfig, cat *model.Catalog, t model.MessageType) error {
	switch t {
	case model.MessageNone, model.MessagePiped, model.MessageEdible:
	default:
		return fmt.Errorf("%w: message type %q", domainErrors.ErrUnknownOption, t)
	}

	previous := cfg.MessageType
	delta := decimal.Zero
	if opt, ok := cat.MessageOption(t); ok {
		delta = delta.Add(opt.Price)
	}
	if opt, ok := cat.MessageOption(previous); ok {
		delta = delta.Sub(opt.Price)
	}

	cfg.MessageType = t
	cfg.Price = cfg.Price.Add(delta)

	if t == model.MessageNone {
		cfg.Message = ""
	}
	if previous == model.MessageEdible && t != model.MessageEdible {
		cfg.UploadedImage = ""
	}
	return nil
}

func completeStage(cfg *model.CakeConfig, progress *model.WizardProgress, stage model.WizardStage) error {
	if !progress.Unlocked(stage) {
		return fmt.Errorf("%w: %s", domainErrors.ErrStageLocked, stage)
	}

	var missing []string
	switch stage {
	case model.StageCake:
		required := []struct{ field, val string }{
			{"size", cfg.Size}, {"sponge", cfg.Sponge}, {"filling", cfg.Filling}, {"icing", cfg.Icing},
		}
		for _, r := range required {
			if r.val == "" {
				missing = append(missing, r.field)
			}
		}
	case model.StageDecoration:
		if len(cfg.Decorations) == 0 {
			missing = append(missing, "decorations")
		}
	case model.StageMessage, model.StageExtras:
		// Always completable.
	default:
		return fmt.Errorf("%w: unknown stage %s", domainErrors.ErrStageLocked, stage)
	}
	if len(missing) > 0 {
		return &domainErrors.ValidationError{Stage: string(stage), Missing: missing}
	}

	progress.Mark(stage)
	return nil
}

func materialize(cfg *model.CakeConfig, progress model.WizardProgress, cat *model.Catalog) (*model.Submission, error) {
	if !progress.AllDone() {
		return nil, domainErrors.ErrIncompleteConfig
	}

	name := func(category model.OptionCategory, id string) (string, error) {
		opt, ok := cat.Lookup(category, id)
		if !ok {
			return "", fmt.Errorf("%w: %s %q", domainErrors.ErrUnknownOption, category, id)
		}
		return opt.Name, nil
	}

	var parts []string
	for _, sel := range []struct {
		category model.OptionCategory
		id       string
	}{
		{model.CategorySize, cfg.Size},
		{model.CategorySponge, cfg.Sponge},
		{model.CategoryFilling, cfg.Filling},
		{model.CategoryIcing, cfg.Icing},
	} {
		n, err := name(sel.category, sel.id)
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
	for _, id := range cfg.Decorations {
		n, err := name(model.CategoryDecoration, id)
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
	if cfg.Goo != "" {
		n, err := name(model.CategoryGoo, cfg.Goo)
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
	if len(cfg.Extras) > 0 {
		parts = append(parts, fmt.Sprintf("%d extras", len(cfg.Extras)))
	}
	if cfg.Message != "" {
		parts = append(parts, fmt.Sprintf("message %q", cfg.Message))
	}

	sizeName, err := name(model.CategorySize, cfg.Size)
	if err != nil {
		return nil, err
	}

	optionIDs := map[model.OptionCategory][]string{
		model.CategorySize:    {cfg.Size},
		model.CategorySponge:  {cfg.Sponge},
		model.CategoryFilling: {cfg.Filling},
		model.CategoryIcing:   {cfg.Icing},
	}
	if cfg.Goo != "" {
		optionIDs[model.CategoryGoo] = []string{cfg.Goo}
	}
	if len(cfg.Decorations) > 0 {
		optionIDs[model.CategoryDecoration] = append([]string(nil), cfg.Decorations...)
	}
	if len(cfg.Extras) > 0 {
		optionIDs[model.CategoryExtra] = append([]string(nil), cfg.Extras...)
	}

	return &model.Submission{
		Name:        "Custom cake " + sizeName,
		Description: strings.Join(parts, ", "),
		Price:       cfg.Price,
		OptionIDs:   optionIDs,
	}, nil
}
