package backupapi

//
// dispatcher.go - live device connection APIs
//

import (
	"context"

	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// AdminDispatcherListActive returns the live connections keyed by connection ID. The
// targetUser argument is OPTIONAL and restricts the result to a single user.
func (c *Client) AdminDispatcherListActive(
	ctx context.Context, targetUser *string) (map[string]apimodel.LiveUserConnection, error) {
	form := c.newForm()
	setOptionalString(form, "TargetUser", targetUser)
	return callMap[string, apimodel.LiveUserConnection](ctx, c, "/api/v1/admin/dispatcher/list-active", form)
}

// dispatch sends an instruction to the live connection targetID.
func (c *Client) dispatch(ctx context.Context, urlPath, targetID string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetID", targetID)
	return callModel[apimodel.APIResponseMessage](ctx, c, urlPath, form)
}

// AdminDispatcherRunBackup runs backupRule on the device connected as targetID.
func (c *Client) AdminDispatcherRunBackup(
	ctx context.Context, targetID, backupRule string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetID", targetID)
	form.Set("BackupRule", backupRule)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/dispatcher/run-backup", form)
}

// AdminDispatcherRunBackupCustom backs up source into destination on the device
// connected as targetID. The options argument is OPTIONAL.
func (c *Client) AdminDispatcherRunBackupCustom(ctx context.Context, targetID, source, destination string,
	options *apimodel.BackupJobAdvancedOptions) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetID", targetID)
	form.Set("Source", source)
	form.Set("Destination", destination)
	if err := setOptionalModel(form, "Options", options); err != nil {
		return nil, err
	}
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/dispatcher/run-backup-custom", form)
}

// AdminDispatcherKickConnection asks the device connected as targetID to reconnect.
func (c *Client) AdminDispatcherKickConnection(
	ctx context.Context, targetID string) (*apimodel.APIResponseMessage, error) {
	return c.dispatch(ctx, "/api/v1/admin/dispatcher/kick-connection", targetID)
}

// AdminDispatcherRefetchProfile asks the device connected as targetID to reload its profile.
func (c *Client) AdminDispatcherRefetchProfile(
	ctx context.Context, targetID string) (*apimodel.APIResponseMessage, error) {
	return c.dispatch(ctx, "/api/v1/admin/dispatcher/refetch-profile", targetID)
}

// AdminDispatcherDropConnection closes the connection of targetID.
func (c *Client) AdminDispatcherDropConnection(
	ctx context.Context, targetID string) (*apimodel.APIResponseMessage, error) {
	return c.dispatch(ctx, "/api/v1/admin/dispatcher/drop-connection", targetID)
}

// AdminDispatcherUpdateSoftware asks the device connected as targetID to update
// itself by downloading the client from selfAddress, which is OPTIONAL.
func (c *Client) AdminDispatcherUpdateSoftware(
	ctx context.Context, targetID string, selfAddress *string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetID", targetID)
	form.Set("SelfAddress", c.selfAddress(selfAddress))
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/dispatcher/update-software", form)
}

// AdminDispatcherUninstallSoftware uninstalls the client from the device connected as targetID.
func (c *Client) AdminDispatcherUninstallSoftware(
	ctx context.Context, targetID string, removeConfigFile bool) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetID", targetID)
	form.Set("RemoveConfigFile", formatBool(removeConfigFile))
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/dispatcher/uninstall-software", form)
}
