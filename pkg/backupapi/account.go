package backupapi

//
// account.go - POST /api/v1/admin/account/*
//

import (
	"context"

	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// AdminAccountProperties retrieves the properties of the administrator account.
func (c *Client) AdminAccountProperties(ctx context.Context) (*apimodel.AdminAccountPropertiesResponse, error) {
	return callModel[apimodel.AdminAccountPropertiesResponse](
		ctx, c, "/api/v1/admin/account/properties", c.newForm())
}

// AdminAccountSessionStart opens a session for the administrator account. The
// selfAddress argument is OPTIONAL and defaults to the client server address.
//
// The returned session key is data: this client keeps using the password.
func (c *Client) AdminAccountSessionStart(
	ctx context.Context, selfAddress *string) (*apimodel.SessionKeyRegeneratedResponse, error) {
	form := c.newForm()
	form.Set("SelfAddress", c.selfAddress(selfAddress))
	return callModel[apimodel.SessionKeyRegeneratedResponse](
		ctx, c, "/api/v1/admin/account/session-start", form)
}

// AdminAccountSetProperties updates the security settings of the administrator account.
func (c *Client) AdminAccountSetProperties(
	ctx context.Context, security apimodel.AdminSecurityOptions) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	if err := setModel(form, "Security", &security); err != nil {
		return nil, err
	}
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/account/set-properties", form)
}
