// Package apimodel contains the models exchanged with the backup server API.
//
// Every model embeds [apijson.Overflow], so the members the server sends and
// this package does not know about survive a decode/encode cycle. Every model
// also implements [json.Marshaler] and [json.Unmarshaler] by delegating to
// the [apijson] package, so it composes with [encoding/json].
package apimodel

import (
	"encoding/json"

	"github.com/vaultline/backupsdk/internal/apijson"
)

var (
	_ json.Marshaler   = UserProfileConfig{}
	_ json.Unmarshaler = &UserProfileConfig{}
	_ apijson.Model    = &UserProfileConfig{}
)
