package catalogRepo

import "tradely/models"

// CatalogRepository provides the read-only Business/Service/Tier
// configuration snapshot consumed by the quote calculator. Enum fields are
// validated here, at the load boundary, so the calculator never sees unknown
// pricing methods or travel policies.
type CatalogRepository interface {
	GetBusinessByID(id string) (*models.Business, error)
	GetServicesByIDs(businessID string, serviceIDs []string) ([]models.Service, error)
}
