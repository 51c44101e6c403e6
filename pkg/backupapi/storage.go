package backupapi

//
// storage.go - built-in storage and cluster APIs
//

import (
	"context"

	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// AdminStorageListBuckets returns the buckets keyed by bucket ID.
func (c *Client) AdminStorageListBuckets(ctx context.Context) (map[string]apimodel.BucketProperties, error) {
	return callMap[string, apimodel.BucketProperties](ctx, c, "/api/v1/admin/storage/list-buckets", c.newForm())
}

// AdminStorageFreeSpace returns the free space of the built-in storage.
func (c *Client) AdminStorageFreeSpace(ctx context.Context) (*apimodel.StorageFreeSpaceInfo, error) {
	return callModel[apimodel.StorageFreeSpaceInfo](ctx, c, "/api/v1/admin/storage/free-space", c.newForm())
}

// AdminStorageAddBucket creates a bucket. Both arguments are OPTIONAL: when
// bucketID is nil, the server generates one.
func (c *Client) AdminStorageAddBucket(
	ctx context.Context, bucketID, organizationID *string) (*apimodel.AddBucketResponseMessage, error) {
	form := c.newForm()
	setOptionalString(form, "SetBucketValue", bucketID)
	setOptionalString(form, "SetOrganizationID", organizationID)
	return callModel[apimodel.AddBucketResponseMessage](ctx, c, "/api/v1/admin/storage/add-bucket", form)
}

// AdminStorageDeleteBucket deletes a bucket.
func (c *Client) AdminStorageDeleteBucket(ctx context.Context, bucketID string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("BucketID", bucketID)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/storage/delete-bucket", form)
}

// AdminConstellationStatus returns the status of the cluster role that
// deletes unused buckets.
func (c *Client) AdminConstellationStatus(ctx context.Context) (*apimodel.ConstellationStatusAPIResponse, error) {
	return callModel[apimodel.ConstellationStatusAPIResponse](
		ctx, c, "/api/v1/admin/constellation/status", c.newForm())
}
