package backupapi

//
// Calling APIs and routing responses
//

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/vaultline/backupsdk/internal/apijson"
	"github.com/vaultline/backupsdk/internal/httpapi"
	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// newForm returns a form containing the authentication fields.
func (c *Client) newForm() url.Values {
	return url.Values{
		"Username": {c.username},
		"AuthType": {apimodel.AuthTypePassword},
		"Password": {c.password},
	}
}

// post POSTs form to urlPath and returns the response body. The returned
// error, if any, comes from the transport and is not wrapped.
func (c *Client) post(ctx context.Context, urlPath string, form url.Values) ([]byte, error) {
	desc := httpapi.NewPOSTFormDescriptor(urlPath, form).WithBodyLogging(c.logBody)
	return httpapi.Call(ctx, desc, c.endpoint)
}

// call is like post but also returns an [*APIError] for failure envelopes.
func (c *Client) call(ctx context.Context, urlPath string, form url.Values) ([]byte, error) {
	data, err := c.post(ctx, urlPath, form)
	if err != nil {
		return nil, err
	}
	if err := checkEnvelope(data); err != nil {
		c.endpoint.Logger.Debugf("backupapi: %s: %s", urlPath, err.Error())
		return nil, err
	}
	return data, nil
}

// checkEnvelope returns an [*APIError] if data is a JSON object containing
// both Status and Message and Status is not a success status.
func checkEnvelope(data []byte) error {
	if !gjson.ValidBytes(data) {
		return nil // the decoder will complain
	}
	value := gjson.ParseBytes(data)
	if !value.IsObject() {
		return nil
	}
	status, message := value.Get("Status"), value.Get("Message")
	if !status.Exists() || !message.Exists() {
		return nil
	}
	code := int(status.Int())
	if status.Type == gjson.Number && apimodel.IsSuccessStatus(code) {
		return nil
	}
	return &APIError{Status: code, Message: message.String()}
}

// decodeError annotates an error occurred when decoding the response of urlPath.
func decodeError(urlPath string, err error) error {
	return fmt.Errorf("backupapi: %s: cannot decode response: %w", urlPath, err)
}

// callModel calls urlPath and decodes the response as a T.
func callModel[T any, PT apijson.ModelPtr[T]](
	ctx context.Context, c *Client, urlPath string, form url.Values) (*T, error) {
	data, err := c.call(ctx, urlPath, form)
	if err != nil {
		return nil, err
	}
	var out T
	if err := apijson.Unmarshal(data, PT(&out)); err != nil {
		return nil, decodeError(urlPath, err)
	}
	return &out, nil
}

// callList calls urlPath and decodes the response as a list of T.
func callList[T any, PT apijson.ModelPtr[T]](
	ctx context.Context, c *Client, urlPath string, form url.Values) ([]T, error) {
	data, err := c.call(ctx, urlPath, form)
	if err != nil {
		return nil, err
	}
	out, err := apijson.UnmarshalList[T, PT](data)
	if err != nil {
		return nil, decodeError(urlPath, err)
	}
	return out, nil
}

// callMap calls urlPath and decodes the response as a map from K to T.
func callMap[K apijson.MapKey, T any, PT apijson.ModelPtr[T]](
	ctx context.Context, c *Client, urlPath string, form url.Values) (map[K]T, error) {
	data, err := c.call(ctx, urlPath, form)
	if err != nil {
		return nil, err
	}
	out, err := apijson.UnmarshalMap[K, T, PT](data)
	if err != nil {
		return nil, decodeError(urlPath, err)
	}
	return out, nil
}

// callScalarList is like callList but for scalars.
func callScalarList[T apijson.Scalar](
	ctx context.Context, c *Client, urlPath string, form url.Values) ([]T, error) {
	data, err := c.call(ctx, urlPath, form)
	if err != nil {
		return nil, err
	}
	out, err := apijson.UnmarshalScalarList[T](data)
	if err != nil {
		return nil, decodeError(urlPath, err)
	}
	return out, nil
}

// callScalarMap is like callMap but for scalars.
func callScalarMap[K apijson.MapKey, T apijson.Scalar](
	ctx context.Context, c *Client, urlPath string, form url.Values) (map[K]T, error) {
	data, err := c.call(ctx, urlPath, form)
	if err != nil {
		return nil, err
	}
	out, err := apijson.UnmarshalScalarMap[K, T](data)
	if err != nil {
		return nil, decodeError(urlPath, err)
	}
	return out, nil
}

// callString calls urlPath and returns the whole response body as text. We do
// not parse the body, hence we never return an [*APIError].
func callString(ctx context.Context, c *Client, urlPath string, form url.Values) (string, error) {
	desc := httpapi.NewPOSTFormTextDescriptor(urlPath, form).WithBodyLogging(c.logBody)
	data, err := httpapi.Call(ctx, desc, c.endpoint)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// setModel stores the JSON serialization of m inside form.
func setModel(form url.Values, key string, m apijson.Model) error {
	data, err := apijson.Marshal(m)
	if err != nil {
		return err
	}
	form.Set(key, string(data))
	return nil
}

// setOptionalModel is like setModel but does nothing when m is nil.
func setOptionalModel[T any, PT apijson.ModelPtr[T]](form url.Values, key string, m *T) error {
	if m == nil {
		return nil
	}
	return setModel(form, key, PT(m))
}

// setOptionalString sets key when value is not nil.
func setOptionalString(form url.Values, key string, value *string) {
	if value != nil {
		form.Set(key, *value)
	}
}

// formatBool formats a boolean the way the server expects.
func formatBool(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

// setOptionalBool sets key when value is not nil.
func setOptionalBool(form url.Values, key string, value *bool) {
	if value != nil {
		form.Set(key, formatBool(*value))
	}
}

func formatInt(value int64) string {
	return strconv.FormatInt(value, 10)
}

// selfAddress returns the server address override or, when nil, our own address.
func (c *Client) selfAddress(override *string) string {
	if override != nil {
		return *override
	}
	return c.serverAddress
}
