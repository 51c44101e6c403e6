package backupapi

//
// organizations.go - POST /api/v1/admin/org/*
//

import (
	"context"

	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// AdminOrganizationList returns the organizations keyed by organization ID.
func (c *Client) AdminOrganizationList(ctx context.Context) (map[string]apimodel.Organization, error) {
	return callMap[string, apimodel.Organization](ctx, c, "/api/v1/admin/org/list", c.newForm())
}

// AdminOrganizationSet creates or updates an organization. Both arguments are
// OPTIONAL: a nil organizationID creates a new organization.
func (c *Client) AdminOrganizationSet(ctx context.Context, organizationID *string,
	organization *apimodel.Organization) (*apimodel.OrganizationResponse, error) {
	form := c.newForm()
	setOptionalString(form, "OrganizationID", organizationID)
	if err := setOptionalModel(form, "Organization", organization); err != nil {
		return nil, err
	}
	return callModel[apimodel.OrganizationResponse](ctx, c, "/api/v1/admin/org/set", form)
}

// AdminOrganizationDelete deletes an organization.
func (c *Client) AdminOrganizationDelete(
	ctx context.Context, organizationID *string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	setOptionalString(form, "OrganizationID", organizationID)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/org/delete", form)
}
