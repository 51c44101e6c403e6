package backupapi

//
// jobs.go - job reporting APIs
//

import (
	"context"

	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// AdminGetJobsAll returns all the jobs known to the server.
func (c *Client) AdminGetJobsAll(ctx context.Context) ([]apimodel.BackupJobDetail, error) {
	return callList[apimodel.BackupJobDetail](ctx, c, "/api/v1/admin/get-jobs-all", c.newForm())
}

// AdminGetJobsRecent returns the jobs that are running or recently completed.
func (c *Client) AdminGetJobsRecent(ctx context.Context) ([]apimodel.BackupJobDetail, error) {
	return callList[apimodel.BackupJobDetail](ctx, c, "/api/v1/admin/get-jobs-recent", c.newForm())
}

// AdminGetJobsForUser returns the jobs of targetUser.
func (c *Client) AdminGetJobsForUser(ctx context.Context, targetUser string) ([]apimodel.BackupJobDetail, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	return callList[apimodel.BackupJobDetail](ctx, c, "/api/v1/admin/get-jobs-for-user", form)
}

// AdminGetJobsForDateRange returns the jobs started between start and end,
// which are Unix timestamps.
func (c *Client) AdminGetJobsForDateRange(ctx context.Context, start, end int64) ([]apimodel.BackupJobDetail, error) {
	form := c.newForm()
	form.Set("Start", formatInt(start))
	form.Set("End", formatInt(end))
	return callList[apimodel.BackupJobDetail](ctx, c, "/api/v1/admin/get-jobs-for-date-range", form)
}

// AdminGetJobsForCustomSearch returns the jobs matching query.
func (c *Client) AdminGetJobsForCustomSearch(
	ctx context.Context, query apimodel.SearchClause) ([]apimodel.BackupJobDetail, error) {
	form := c.newForm()
	if err := setModel(form, "Query", &query); err != nil {
		return nil, err
	}
	return callList[apimodel.BackupJobDetail](ctx, c, "/api/v1/admin/get-jobs-for-custom-search", form)
}

// AdminCountJobsForCustomSearch counts the jobs matching query.
func (c *Client) AdminCountJobsForCustomSearch(
	ctx context.Context, query apimodel.SearchClause) (*apimodel.CountJobsResponse, error) {
	form := c.newForm()
	if err := setModel(form, "Query", &query); err != nil {
		return nil, err
	}
	return callModel[apimodel.CountJobsResponse](ctx, c, "/api/v1/admin/count-jobs-for-custom-search", form)
}

// AdminGetJobProperties returns the job with the given ID.
func (c *Client) AdminGetJobProperties(ctx context.Context, jobID string) (*apimodel.BackupJobDetail, error) {
	form := c.newForm()
	form.Set("JobID", jobID)
	return callModel[apimodel.BackupJobDetail](ctx, c, "/api/v1/admin/get-job-properties", form)
}

// AdminGetJobLog returns the log of a job as plain text.
func (c *Client) AdminGetJobLog(ctx context.Context, jobID string) (string, error) {
	form := c.newForm()
	form.Set("JobID", jobID)
	return callString(ctx, c, "/api/v1/admin/get-job-log", form)
}

// AdminGetJobLogEntries returns the log of a job as structured entries.
func (c *Client) AdminGetJobLogEntries(ctx context.Context, jobID string) ([]apimodel.JobEntry, error) {
	form := c.newForm()
	form.Set("JobID", jobID)
	return callList[apimodel.JobEntry](ctx, c, "/api/v1/admin/get-job-log-entries", form)
}

// AdminJobCancel cancels a running job of targetUser.
func (c *Client) AdminJobCancel(ctx context.Context, targetUser, jobID string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("TargetUser", targetUser)
	form.Set("JobID", jobID)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/job/cancel", form)
}
