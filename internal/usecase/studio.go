package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/domain/repository"
)

// StudioUseCase maintains the 3D customization scene attached to a
// configuration session. Annotations are keyed by named mesh parts and feed
// the renderer only; they never affect pricing.
type StudioUseCase struct {
	sessions repository.SessionRepository
}

// NewStudioUseCase constructs StudioUseCase.
func NewStudioUseCase(sessions repository.SessionRepository) *StudioUseCase {
	return &StudioUseCase{sessions: sessions}
}

// Scene returns the session's current scene.
func (u *StudioUseCase) Scene(ctx context.Context, id uuid.UUID) (*model.StudioScene, error) {
	session, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &session.Studio, nil
}

func (u *StudioUseCase) mutate(ctx context.Context, id uuid.UUID, fn func(*model.StudioScene)) (*model.StudioScene, error) {
	session, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Studio.Colors == nil {
		session.Studio = model.NewStudioScene()
	}
	fn(&session.Studio)
	if err := u.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return &session.Studio, nil
}

// SetColor paints a mesh part; an empty color clears the override.
func (u *StudioUseCase) SetColor(ctx context.Context, id uuid.UUID, part, color string) (*model.StudioScene, error) {
	return u.mutate(ctx, id, func(s *model.StudioScene) {
		if color == "" {
			delete(s.Colors, part)
			return
		}
		s.Colors[part] = color
	})
}

// SetTexture assigns a texture to a mesh part; an empty ref clears it.
func (u *StudioUseCase) SetTexture(ctx context.Context, id uuid.UUID, part, textureRef string) (*model.StudioScene, error) {
	return u.mutate(ctx, id, func(s *model.StudioScene) {
		if textureRef == "" {
			delete(s.Textures, part)
			return
		}
		s.Textures[part] = textureRef
	})
}

// AddText places a text decal and assigns it an id.
func (u *StudioUseCase) AddText(ctx context.Context, id uuid.UUID, text model.StudioText) (*model.StudioScene, error) {
	text.ID = uuid.NewString()
	return u.mutate(ctx, id, func(s *model.StudioScene) {
		s.Texts = append(s.Texts, text)
	})
}

// RemoveText deletes a text decal by id; unknown ids are ignored.
func (u *StudioUseCase) RemoveText(ctx context.Context, id uuid.UUID, textID string) (*model.StudioScene, error) {
	return u.mutate(ctx, id, func(s *model.StudioScene) {
		for i, t := range s.Texts {
			if t.ID == textID {
				s.Texts = append(s.Texts[:i], s.Texts[i+1:]...)
				return
			}
		}
	})
}

// AddTopping places a topping instance and assigns it an id.
func (u *StudioUseCase) AddTopping(ctx context.Context, id uuid.UUID, topping model.StudioTopping) (*model.StudioScene, error) {
	topping.ID = uuid.NewString()
	return u.mutate(ctx, id, func(s *model.StudioScene) {
		s.Toppings = append(s.Toppings, topping)
	})
}

// RemoveTopping deletes a topping by id; unknown ids are ignored.
func (u *StudioUseCase) RemoveTopping(ctx context.Context, id uuid.UUID, toppingID string) (*model.StudioScene, error) {
	return u.mutate(ctx, id, func(s *model.StudioScene) {
		for i, t := range s.Toppings {
			if t.ID == toppingID {
				s.Toppings = append(s.Toppings[:i], s.Toppings[i+1:]...)
				return
			}
		}
	})
}

// Clear resets the scene.
func (u *StudioUseCase) Clear(ctx context.Context, id uuid.UUID) (*model.StudioScene, error) {
	return u.mutate(ctx, id, func(s *model.StudioScene) {
		*s = model.NewStudioScene()
	})
}
