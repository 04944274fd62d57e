package partner

import (
	"context"

	"github.com/gemba/backend/internal/domain/partner"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VendorService handles the vendor registry
type VendorService struct {
	vendorRepo partner.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo partner.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// Create registers a vendor
func (s *VendorService) Create(ctx context.Context, tenantID uuid.UUID, req CreateVendorRequest) (*VendorResponse, error) {
	vendor, err := partner.NewVendor(tenantID, req.Name, req.Category, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}
	return ToVendorResponse(vendor), nil
}

// GetByID retrieves a vendor
func (s *VendorService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToVendorResponse(vendor), nil
}

// List retrieves vendors matching the filter
func (s *VendorService) List(ctx context.Context, tenantID uuid.UUID, filter VendorListFilter) ([]VendorResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:  filter.Search,
		Filters: make(map[string]interface{}),
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}
	if filter.SortBy != "" {
		domainFilter.OrderBy = filter.SortBy
		domainFilter.OrderDir = "asc"
		if filter.SortDesc {
			domainFilter.OrderDir = "desc"
		}
	} else {
		domainFilter.OrderBy = "name"
		domainFilter.OrderDir = "asc"
	}

	vendors, err := s.vendorRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.vendorRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = *ToVendorResponse(&vendors[i])
	}
	return responses, total, nil
}

// ListFavorites retrieves the active vendors flagged as favorites
func (s *VendorService) ListFavorites(ctx context.Context, tenantID uuid.UUID) ([]VendorResponse, error) {
	vendors, err := s.vendorRepo.FindFavoritesForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = *ToVendorResponse(&vendors[i])
	}
	return responses, nil
}

// Update replaces a vendor's details
func (s *VendorService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := vendor.Update(req.Name, req.Category, req.Phone, req.Email, req.DefaultTaxType, req.PaymentTerms, req.Notes); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}
	return ToVendorResponse(vendor), nil
}

// ToggleFavorite flips the vendor's favorite flag
func (s *VendorService) ToggleFavorite(ctx context.Context, tenantID, id uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	vendor.ToggleFavorite()
	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}
	return ToVendorResponse(vendor), nil
}

// Deactivate hides a vendor from selection
func (s *VendorService) Deactivate(ctx context.Context, tenantID, id uuid.UUID) error {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	vendor.Deactivate()
	return s.vendorRepo.Save(ctx, vendor)
}

// Activate makes a vendor selectable again
func (s *VendorService) Activate(ctx context.Context, tenantID, id uuid.UUID) error {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	vendor.Activate()
	return s.vendorRepo.Save(ctx, vendor)
}

// Delete removes a vendor. Costs keep their free-text vendor name.
func (s *VendorService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.vendorRepo.DeleteForTenant(ctx, tenantID, id)
}
