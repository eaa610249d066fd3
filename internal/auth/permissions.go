package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// Operation names used as keys into the permission table.
const (
	OpTicketCreate           = "tickets.create"
	OpTicketList             = "tickets.list"
	OpTicketGet              = "tickets.get"
	OpTicketListByClient     = "tickets.list_by_client"
	OpTicketListByTechnician = "tickets.list_by_technician"
	OpTicketUpdate           = "tickets.update"
	OpTicketUpdateStatus     = "tickets.update_status"
	OpTicketDelete           = "tickets.delete"

	OpCategoryCreate = "categories.create"
	OpCategoryRead   = "categories.read"
	OpCategoryUpdate = "categories.update"
	OpCategoryDelete = "categories.delete"

	OpClientManage     = "clients.manage"
	OpTechnicianManage = "technicians.manage"
	OpUserManage       = "users.manage"
)

// permissions maps each protected operation to the roles allowed to invoke
// it. Plain data; handlers never reason about roles themselves.
var permissions = map[string][]domain.Role{
	OpTicketCreate:           {domain.RoleAdmin, domain.RoleClient},
	OpTicketList:             {domain.RoleAdmin},
	OpTicketGet:              {domain.RoleAdmin, domain.RoleClient, domain.RoleTechnician},
	OpTicketListByClient:     {domain.RoleAdmin, domain.RoleClient},
	OpTicketListByTechnician: {domain.RoleAdmin, domain.RoleTechnician},
	OpTicketUpdate:           {domain.RoleAdmin},
	OpTicketUpdateStatus:     {domain.RoleAdmin, domain.RoleTechnician},
	OpTicketDelete:           {domain.RoleAdmin},

	OpCategoryCreate: {domain.RoleAdmin},
	OpCategoryRead:   {domain.RoleAdmin, domain.RoleClient, domain.RoleTechnician},
	OpCategoryUpdate: {domain.RoleAdmin},
	OpCategoryDelete: {domain.RoleAdmin},

	OpClientManage:     {domain.RoleAdmin},
	OpTechnicianManage: {domain.RoleAdmin},
	OpUserManage:       {domain.RoleAdmin},
}

// AllowedRoles returns the role set for an operation.
func AllowedRoles(operation string) ([]domain.Role, bool) {
	roles, ok := permissions[operation]
	return roles, ok
}

// RequirePermission checks the authenticated principal's role against the
// permission table before the handler runs.
func RequirePermission(operation string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		allowed, known := permissions[operation]
		if !known {
			return apperrors.NewForbidden("operation not permitted")
		}
		role := principal.Role()
		for _, candidate := range allowed {
			if candidate == role {
				return c.Next()
			}
		}
		return apperrors.NewForbidden("insufficient role")
	}
}

// RequireAuthenticated only checks that a principal is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
