package test

import "context"

// BakeryClientStub satisfies the full platform client surface by composing
// the per-concern service stubs.
type BakeryClientStub struct {
	CatalogProviderStub
	BakeryServiceStub
	CustomerServiceStub
	VoucherServiceStub
	*CartServiceStub
	*OrderServiceStub
	*CustomCakeServiceStub
	*ReviewServiceStub
	*ReportServiceStub

	UploadFn func(context.Context, string, string, []byte) (string, error)
}

// NewBakeryClientStub constructs the stub with initialized sub-stubs.
func NewBakeryClientStub() *BakeryClientStub {
	return &BakeryClientStub{
		CartServiceStub:       &CartServiceStub{},
		OrderServiceStub:      &OrderServiceStub{},
		CustomCakeServiceStub: &CustomCakeServiceStub{},
		ReviewServiceStub:     &ReviewServiceStub{},
		ReportServiceStub:     &ReportServiceStub{},
	}
}

// Upload returns a fixed file reference unless overridden.
func (s *BakeryClientStub) Upload(ctx context.Context, token, filename string, data []byte) (string, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, token, filename, data)
	}
	return "file-ref-1", nil
}
