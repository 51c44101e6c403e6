package backupapi

//
// user.go - APIs available to regular users
//

import (
	"context"

	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// HybridSessionStart opens a session for the user or administrator we authenticate as.
func (c *Client) HybridSessionStart(ctx context.Context) (*apimodel.SessionKeyRegeneratedResponse, error) {
	return callModel[apimodel.SessionKeyRegeneratedResponse](ctx, c, "/api/v1/hybrid/session/start", c.newForm())
}

// UserWebGetUserProfileAndHash returns the profile of the user we authenticate as.
func (c *Client) UserWebGetUserProfileAndHash(ctx context.Context) (*apimodel.GetProfileAndHashResponseMessage, error) {
	return callModel[apimodel.GetProfileAndHashResponseMessage](
		ctx, c, "/api/v1/user/web/get-user-profile-and-hash", c.newForm())
}
