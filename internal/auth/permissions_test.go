package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

func newPermissionApp(role domain.Role, operation string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})
	if role != "" {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(principalKey, &Principal{User: &domain.User{ID: "user-1", Role: role}})
			return c.Next()
		})
	}
	app.Get("/probe", RequirePermission(operation), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequirePermissionTable(t *testing.T) {
	cases := []struct {
		operation string
		role      domain.Role
		status    int
	}{
		{OpTicketCreate, domain.RoleAdmin, fiber.StatusOK},
		{OpTicketCreate, domain.RoleClient, fiber.StatusOK},
		{OpTicketCreate, domain.RoleTechnician, fiber.StatusForbidden},

		{OpTicketList, domain.RoleAdmin, fiber.StatusOK},
		{OpTicketList, domain.RoleClient, fiber.StatusForbidden},
		{OpTicketList, domain.RoleTechnician, fiber.StatusForbidden},

		{OpTicketGet, domain.RoleClient, fiber.StatusOK},
		{OpTicketGet, domain.RoleTechnician, fiber.StatusOK},

		{OpTicketListByClient, domain.RoleClient, fiber.StatusOK},
		{OpTicketListByClient, domain.RoleTechnician, fiber.StatusForbidden},
		{OpTicketListByTechnician, domain.RoleTechnician, fiber.StatusOK},
		{OpTicketListByTechnician, domain.RoleClient, fiber.StatusForbidden},

		{OpTicketUpdateStatus, domain.RoleTechnician, fiber.StatusOK},
		{OpTicketUpdateStatus, domain.RoleClient, fiber.StatusForbidden},
		{OpTicketUpdate, domain.RoleTechnician, fiber.StatusForbidden},
		{OpTicketDelete, domain.RoleClient, fiber.StatusForbidden},

		{OpCategoryRead, domain.RoleClient, fiber.StatusOK},
		{OpCategoryCreate, domain.RoleClient, fiber.StatusForbidden},
		{OpClientManage, domain.RoleAdmin, fiber.StatusOK},
		{OpClientManage, domain.RoleClient, fiber.StatusForbidden},
		{OpUserManage, domain.RoleTechnician, fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.operation+"_"+string(tc.role), func(t *testing.T) {
			app := newPermissionApp(tc.role, tc.operation)
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/probe", nil))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestRequirePermissionWithoutPrincipal(t *testing.T) {
	app := newPermissionApp("", OpTicketList)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/probe", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePermissionUnknownOperation(t *testing.T) {
	app := newPermissionApp(domain.RoleAdmin, "tickets.export")
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/probe", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAllowedRoles(t *testing.T) {
	roles, ok := AllowedRoles(OpTicketUpdateStatus)
	require.True(t, ok)
	require.ElementsMatch(t, []domain.Role{domain.RoleAdmin, domain.RoleTechnician}, roles)

	_, ok = AllowedRoles("tickets.export")
	require.False(t, ok)
}
