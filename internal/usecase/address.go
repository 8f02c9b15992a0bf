package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/model"
)

// Geocoder forward-geocodes a free-text address.
type Geocoder interface {
	Forward(ctx context.Context, address string) (model.Coordinates, error)
	Autocomplete(ctx context.Context, query string) ([]string, error)
}

// AddressForm carries the free-text address fields entered at checkout.
type AddressForm struct {
	Address  string
	District string
	Province string
}

func (f AddressForm) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{f.Address, f.District, f.Province} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

// AddressResolver serializes overlapping geocode requests per checkout key.
// Rapid re-entry of the address field fires overlapping lookups; only the
// response to the latest request may be applied, earlier in-flight responses
// come back ErrSuperseded.
type AddressResolver struct {
	geocoder Geocoder

	mu  sync.Mutex
	seq map[string]uint64
}

// NewAddressResolver constructs AddressResolver.
func NewAddressResolver(geocoder Geocoder) *AddressResolver {
	return &AddressResolver{geocoder: geocoder, seq: make(map[string]uint64)}
}

// Resolve geocodes the address for the given checkout key. When the customer
// record already carries parseable coordinates and useCurrent is set, they are
// returned directly and the geocoder is never invoked.
func (r *AddressResolver) Resolve(ctx context.Context, key string, useCurrent bool, customer *model.Customer, form AddressForm) (model.Coordinates, error) {
	if useCurrent && customer != nil {
		if coords, ok := model.ParseCoordinates(customer.Latitude, customer.Longitude); ok {
			return coords, nil
		}
	}

	address := form.String()
	if address == "" {
		return model.Coordinates{}, domainErrors.ErrAddressUnresolved
	}

	token := r.bump(key)
	coords, err := r.geocoder.Forward(ctx, address)
	if !r.current(key, token) {
		return model.Coordinates{}, domainErrors.ErrSuperseded
	}
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("%w: %v", domainErrors.ErrAddressUnresolved, err)
	}
	return coords, nil
}

// Invalidate discards any in-flight resolution for the key, e.g. when the
// customer switches between stored-address and new-address modes.
func (r *AddressResolver) Invalidate(key string) {
	r.bump(key)
}

func (r *AddressResolver) bump(key string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq[key]++
	return r.seq[key]
}

func (r *AddressResolver) current(key string, token uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq[key] == token
}
