package backupapi

//
// meta.go - server metadata and maintenance APIs
//

import (
	"context"

	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// AdminMetaVersion returns information about the server version.
func (c *Client) AdminMetaVersion(ctx context.Context) (*apimodel.ServerMetaVersionInfo, error) {
	return callModel[apimodel.ServerMetaVersionInfo](ctx, c, "/api/v1/admin/meta/version", c.newForm())
}

// AdminMetaServerConfigGet returns the server configuration.
func (c *Client) AdminMetaServerConfigGet(ctx context.Context) (*apimodel.ServerConfigOptions, error) {
	return callModel[apimodel.ServerConfigOptions](ctx, c, "/api/v1/admin/meta/server-config/get", c.newForm())
}

// AdminMetaServerConfigSet replaces the server configuration.
func (c *Client) AdminMetaServerConfigSet(
	ctx context.Context, config apimodel.ServerConfigOptions) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	if err := setModel(form, "Config", &config); err != nil {
		return nil, err
	}
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/meta/server-config/set", form)
}

// AdminMetaListAvailableLogDays returns the days, as Unix timestamps, for which
// the server has logs.
func (c *Client) AdminMetaListAvailableLogDays(ctx context.Context) ([]int64, error) {
	return callScalarList[int64](ctx, c, "/api/v1/admin/meta/list-available-log-days", c.newForm())
}

// AdminMetaReadLogs returns the server log of the day containing logDate.
func (c *Client) AdminMetaReadLogs(ctx context.Context, logDate int64) (string, error) {
	form := c.newForm()
	form.Set("Log", formatInt(logDate))
	return callString(ctx, c, "/api/v1/admin/meta/read-logs", form)
}

// AdminMetaRestartService restarts the server.
func (c *Client) AdminMetaRestartService(ctx context.Context) (*apimodel.APIResponseMessage, error) {
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/meta/restart-service", c.newForm())
}

// AdminMetaShutdownService stops the server.
func (c *Client) AdminMetaShutdownService(ctx context.Context) (*apimodel.APIResponseMessage, error) {
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/meta/shutdown-service", c.newForm())
}

// AdminMetaSendTestEmail sends a test email to recipient using emailOptions.
func (c *Client) AdminMetaSendTestEmail(ctx context.Context,
	emailOptions apimodel.EmailOptions, recipient string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	if err := setModel(form, "EmailOptions", &emailOptions); err != nil {
		return nil, err
	}
	form.Set("Recipient", recipient)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/meta/send-test-email", form)
}

// AdminMetaStats returns the server statistics keyed by day. When simple
// is true, the server omits the most expensive statistics.
func (c *Client) AdminMetaStats(ctx context.Context, simple bool) (map[int64]apimodel.StatResult, error) {
	form := c.newForm()
	form.Set("Simple", formatBool(simple))
	return callMap[int64, apimodel.StatResult](ctx, c, "/api/v1/admin/meta/stats", form)
}

// AdminMetaBrandingAvailablePlatforms returns the client platforms available for download.
func (c *Client) AdminMetaBrandingAvailablePlatforms(ctx context.Context) (map[int]apimodel.AvailableDownload, error) {
	return callMap[int, apimodel.AvailableDownload](
		ctx, c, "/api/v1/admin/meta/branding/available-platforms", c.newForm())
}
