package backupapi

//
// users.go - user management APIs
//

import (
	"context"

	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// AdminListUsers returns the usernames of all the users.
func (c *Client) AdminListUsers(ctx context.Context) ([]string, error) {
	return callScalarList[string](ctx, c, "/api/v1/admin/list-users", c.newForm())
}

// AdminListUsersFull returns the profiles of all the users keyed by username.
func (c *Client) AdminListUsersFull(ctx context.Context) (map[string]apimodel.UserProfileConfig, error) {
	return callMap[string, apimodel.UserProfileConfig](ctx, c, "/api/v1/admin/list-users-full", c.newForm())
}

// AdminAddUser creates a user. The storeRecoveryCode and requirePasswordChange
// arguments are OPTIONAL and we omit them from the request when nil.
func (c *Client) AdminAddUser(ctx context.Context, targetUser, targetPassword string,
	storeRecoveryCode, requirePasswordChange *bool) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	form.Set("TargetPassword", targetPassword)
	setOptionalBool(form, "StoreRecoveryCode", storeRecoveryCode)
	setOptionalBool(form, "RequirePasswordChange", requirePasswordChange)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/add-user", form)
}

// AdminGetUserProfile returns the profile of targetUser.
func (c *Client) AdminGetUserProfile(ctx context.Context, targetUser string) (*apimodel.UserProfileConfig, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	return callModel[apimodel.UserProfileConfig](ctx, c, "/api/v1/admin/get-user-profile", form)
}

// AdminGetUserProfileAndHash returns the profile of targetUser along with the hash
// to pass to AdminSetUserProfileHash.
func (c *Client) AdminGetUserProfileAndHash(
	ctx context.Context, targetUser string) (*apimodel.GetProfileAndHashResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	return callModel[apimodel.GetProfileAndHashResponseMessage](
		ctx, c, "/api/v1/admin/get-user-profile-and-hash", form)
}

// AdminSetUserProfile replaces the profile of targetUser.
func (c *Client) AdminSetUserProfile(ctx context.Context,
	targetUser string, profile apimodel.UserProfileConfig) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	if err := setModel(form, "ProfileData", &profile); err != nil {
		return nil, err
	}
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/set-user-profile", form)
}

// AdminSetUserProfileHash is like AdminSetUserProfile but the server only applies
// the change if the current profile hash is requireHash.
func (c *Client) AdminSetUserProfileHash(ctx context.Context, targetUser string,
	profile apimodel.UserProfileConfig, requireHash string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	if err := setModel(form, "ProfileData", &profile); err != nil {
		return nil, err
	}
	form.Set("RequireHash", requireHash)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/set-user-profile-hash", form)
}

// AdminDeleteUser deletes targetUser. The uninstallConfig argument is OPTIONAL.
func (c *Client) AdminDeleteUser(ctx context.Context, targetUser string,
	uninstallConfig *apimodel.UninstallConfig) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	if err := setOptionalModel(form, "UninstallConfig", uninstallConfig); err != nil {
		return nil, err
	}
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/delete-user", form)
}

// AdminResetUserPassword changes the password of targetUser.
func (c *Client) AdminResetUserPassword(ctx context.Context,
	targetUser, newPassword, oldPassword string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	form.Set("NewPassword", newPassword)
	form.Set("OldPassword", oldPassword)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/reset-user-password", form)
}

// AdminDisableUserTotp disables two-factor authentication for targetUser.
func (c *Client) AdminDisableUserTotp(ctx context.Context, targetUser string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/disable-user-totp", form)
}

// AdminRequestStorageVault creates a Storage Vault for targetUser using the given
// storage provider. The selfAddress argument is OPTIONAL.
func (c *Client) AdminRequestStorageVault(ctx context.Context, targetUser, storageProvider string,
	selfAddress *string) (*apimodel.RequestStorageVaultResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	form.Set("StorageProvider", storageProvider)
	form.Set("SelfAddress", c.selfAddress(selfAddress))
	return callModel[apimodel.RequestStorageVaultResponseMessage](
		ctx, c, "/api/v1/admin/request-storage-vault", form)
}

// AdminRequestStorageVaultProviders returns the names of the storage
// providers keyed by provider ID.
func (c *Client) AdminRequestStorageVaultProviders(ctx context.Context) (map[string]string, error) {
	return callScalarMap[string, string](ctx, c, "/api/v1/admin/request-storage-vault-providers", c.newForm())
}
