package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CatalogService serves the static reference data: states and shipping types.
type CatalogService struct {
	states        repositories.StateRepository
	shippingTypes repositories.ShippingTypeRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(states repositories.StateRepository, shippingTypes repositories.ShippingTypeRepository) *CatalogService {
	return &CatalogService{
		states:        states,
		shippingTypes: shippingTypes,
	}
}

// StateOption is the abbr/name projection used by address forms.
type StateOption struct {
	Abbr string `json:"abbr"`
	Name string `json:"state"`
}

// GetStates returns all states as abbr/name pairs.
func (s *CatalogService) GetStates() ([]StateOption, error) {
	states, err := s.states.GetAll()
	if err != nil {
		return nil, err
	}
	options := make([]StateOption, 0, len(states))
	for _, st := range states {
		options = append(options, StateOption{Abbr: st.Abbr, Name: st.Name})
	}
	return options, nil
}

// GetShippingTypes returns all shipping options.
func (s *CatalogService) GetShippingTypes() ([]models.ShippingType, error) {
	return s.shippingTypes.GetAll()
}
