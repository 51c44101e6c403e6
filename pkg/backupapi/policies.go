package backupapi

//
// policies.go - POST /api/v1/admin/policies/*
//

import (
	"context"

	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// AdminPoliciesList returns the policy descriptions keyed by policy ID.
func (c *Client) AdminPoliciesList(ctx context.Context) (map[string]string, error) {
	return callScalarMap[string, string](ctx, c, "/api/v1/admin/policies/list", c.newForm())
}

// AdminPoliciesListFull returns the policies keyed by policy ID.
func (c *Client) AdminPoliciesListFull(ctx context.Context) (map[string]apimodel.GroupPolicy, error) {
	return callMap[string, apimodel.GroupPolicy](ctx, c, "/api/v1/admin/policies/list-full", c.newForm())
}

// AdminPoliciesGet returns a policy along with its hash.
func (c *Client) AdminPoliciesGet(ctx context.Context, policyID string) (*apimodel.GetGroupPolicyResponse, error) {
	form := c.newForm()
	form.Set("PolicyID", policyID)
	return callModel[apimodel.GetGroupPolicyResponse](ctx, c, "/api/v1/admin/policies/get", form)
}

// AdminPoliciesNew creates a policy.
func (c *Client) AdminPoliciesNew(
	ctx context.Context, policy apimodel.GroupPolicy) (*apimodel.CreateGroupPolicyResponse, error) {
	form := c.newForm()
	if err := setModel(form, "Policy", &policy); err != nil {
		return nil, err
	}
	return callModel[apimodel.CreateGroupPolicyResponse](ctx, c, "/api/v1/admin/policies/new", form)
}

// AdminPoliciesSet updates a policy. When checkPolicyHash is not nil, the server
// only applies the change if the current policy hash matches it.
func (c *Client) AdminPoliciesSet(ctx context.Context, policyID string,
	policy apimodel.GroupPolicy, checkPolicyHash *string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("PolicyID", policyID)
	if err := setModel(form, "Policy", &policy); err != nil {
		return nil, err
	}
	setOptionalString(form, "CheckPolicyHash", checkPolicyHash)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/policies/set", form)
}

// AdminPoliciesDelete deletes a policy.
func (c *Client) AdminPoliciesDelete(ctx context.Context, policyID string) (*apimodel.APIResponseMessage, error) {
	form := c.newForm()
	form.Set("PolicyID", policyID)
	return callModel[apimodel.APIResponseMessage](ctx, c, "/api/v1/admin/policies/delete", form)
}
