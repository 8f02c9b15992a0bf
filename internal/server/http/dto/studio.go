package dto

import "github.com/sugarline/cakeshop/internal/domain/model"

// StudioColorRequest paints one part of the 3D scene.
type StudioColorRequest struct {
	Part  string `json:"part"`
	Color string `json:"color"`
}

// StudioTextureRequest applies an uploaded texture to one part of the scene.
type StudioTextureRequest struct {
	Part       string `json:"part"`
	TextureRef string `json:"texture_ref"`
}

// StudioTextRequest places a text element on the scene.
type StudioTextRequest struct {
	Content  string     `json:"content"`
	Color    string     `json:"color"`
	Font     string     `json:"font"`
	Position [3]float64 `json:"position"`
	Scale    float64    `json:"scale"`
}

// StudioToppingRequest places a topping element on the scene.
type StudioToppingRequest struct {
	Kind     string     `json:"kind"`
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"`
}

// StudioResponse is the full scene state after a mutation.
type StudioResponse struct {
	Scene model.StudioScene `json:"scene"`
}
