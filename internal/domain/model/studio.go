package model

// StudioScene holds the 3D customization annotations for one session, keyed by
// named mesh parts of the rendered cake model. It feeds the GLB renderer only
// and is independent of the pricing configuration.
type StudioScene struct {
	Colors   map[string]string `json:"colors,omitempty"`
	Textures map[string]string `json:"textures,omitempty"`
	Texts    []StudioText      `json:"texts,omitempty"`
	Toppings []StudioTopping   `json:"toppings,omitempty"`
}

// StudioText is a free-floating text decal placed on the model.
type StudioText struct {
	ID       string     `json:"id"`
	Content  string     `json:"content"`
	Color    string     `json:"color"`
	Font     string     `json:"font"`
	Position [3]float64 `json:"position"`
	Scale    float64    `json:"scale"`
}

// StudioTopping is a topping mesh instance placed on the model.
type StudioTopping struct {
	ID       string     `json:"id"`
	Kind     string     `json:"kind"`
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"`
}

// NewStudioScene returns an empty scene with initialized part maps.
func NewStudioScene() StudioScene {
	return StudioScene{
		Colors:   map[string]string{},
		Textures: map[string]string{},
	}
}
