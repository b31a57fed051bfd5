package services

import (
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/repositories"
)

// AccessService derives who a user may exchange messages with from the
// property links. It is the single place that knows the admin rules: admin
// viewers are unrestricted, and admins are reachable by everyone.
type AccessService struct {
	authRepo     *repositories.AuthenticationRepository
	propertyRepo *repositories.PropertyRepository
}

func NewAccessService(
	authRepo *repositories.AuthenticationRepository,
	propertyRepo *repositories.PropertyRepository,
) *AccessService {
	return &AccessService{
		authRepo:     authRepo,
		propertyRepo: propertyRepo,
	}
}

// ResolveAllowedPeers computes the viewer's allowed-peer set fresh on every
// call. Property assignments change between requests and a stale set would
// weaken the permission check, so results are never cached.
func (as *AccessService) ResolveAllowedPeers(viewer *models.User) (*models.AllowedPeers, []error) {
	var errors []error
	if viewer == nil {
		errors = append(errors, errs.ErrUserIsNil)
		return nil, errors
	}

	if viewer.IsAdmin() {
		return models.UnrestrictedPeers(), nil
	}

	allowed := models.NewAllowedPeers()

	properties, err := as.propertyRepo.FindByParticipant(viewer.ID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	for _, property := range properties {
		if property.LandlordID != nil {
			allowed.Add(*property.LandlordID)
		}
		if property.TenantID != nil {
			allowed.Add(*property.TenantID)
		}
	}

	adminIDs, err := as.authRepo.FindAdminIDs()
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	for _, id := range adminIDs {
		allowed.Add(id)
	}

	// A user never appears in their own set, even via a self-link.
	allowed.Remove(viewer.ID)

	return allowed, nil
}
