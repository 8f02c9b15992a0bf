package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/model"
	testhelpers "github.com/sugarline/cakeshop/internal/test"
)

func newStudio(t *testing.T) (*StudioUseCase, uuid.UUID) {
	t.Helper()
	sessions := testhelpers.NewSessionRepositoryStub()
	id := uuid.New()
	sessions.Sessions[id] = &model.ConfigSession{
		ID:     id,
		Config: model.NewCakeConfig(),
		Studio: model.NewStudioScene(),
	}
	return NewStudioUseCase(sessions), id
}

func TestStudioSetAndClearColor(t *testing.T) {
	uc, id := newStudio(t)
	ctx := context.Background()

	scene, err := uc.SetColor(ctx, id, "top-tier", "#ff66aa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scene.Colors["top-tier"] != "#ff66aa" {
		t.Fatalf("expected color set, got %v", scene.Colors)
	}

	scene, err = uc.SetColor(ctx, id, "top-tier", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := scene.Colors["top-tier"]; ok {
		t.Fatal("expected empty color to clear the override")
	}
}

func TestStudioSetAndClearTexture(t *testing.T) {
	uc, id := newStudio(t)
	ctx := context.Background()

	scene, err := uc.SetTexture(ctx, id, "side", "file-ref-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scene.Textures["side"] != "file-ref-9" {
		t.Fatalf("expected texture set, got %v", scene.Textures)
	}

	scene, _ = uc.SetTexture(ctx, id, "side", "")
	if _, ok := scene.Textures["side"]; ok {
		t.Fatal("expected empty ref to clear the texture")
	}
}

func TestStudioTextLifecycle(t *testing.T) {
	uc, id := newStudio(t)
	ctx := context.Background()

	scene, err := uc.AddText(ctx, id, model.StudioText{Content: "Happy 30th", Color: "#fff"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scene.Texts) != 1 {
		t.Fatalf("expected one text, got %d", len(scene.Texts))
	}
	textID := scene.Texts[0].ID
	if textID == "" {
		t.Fatal("expected generated text id")
	}

	scene, err = uc.RemoveText(ctx, id, textID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scene.Texts) != 0 {
		t.Fatalf("expected text removed, got %d", len(scene.Texts))
	}
}

func TestStudioToppingLifecycle(t *testing.T) {
	uc, id := newStudio(t)
	ctx := context.Background()

	scene, err := uc.AddTopping(ctx, id, model.StudioTopping{Kind: "strawberry", Position: [3]float64{0.1, 0.5, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scene.Toppings) != 1 || scene.Toppings[0].ID == "" {
		t.Fatalf("expected one topping with generated id, got %+v", scene.Toppings)
	}

	scene, err = uc.RemoveTopping(ctx, id, scene.Toppings[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scene.Toppings) != 0 {
		t.Fatalf("expected topping removed, got %d", len(scene.Toppings))
	}
}

func TestStudioClearResetsScene(t *testing.T) {
	uc, id := newStudio(t)
	ctx := context.Background()

	uc.SetColor(ctx, id, "top", "#123456")
	uc.AddText(ctx, id, model.StudioText{Content: "hi"})

	scene, err := uc.Clear(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scene.Colors) != 0 || len(scene.Texts) != 0 || len(scene.Toppings) != 0 {
		t.Fatalf("expected empty scene, got %+v", scene)
	}
}

func TestStudioUnknownSession(t *testing.T) {
	uc := NewStudioUseCase(testhelpers.NewSessionRepositoryStub())

	if _, err := uc.Scene(context.Background(), uuid.New()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
