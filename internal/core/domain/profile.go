package domain

import "errors"

var ErrProfileNotFound = errors.New("profile not found")

// Profile holds the delivery details owned 1:1 by an Account. It shares the
// account's identifier rather than carrying a separate foreign key, so exactly
// one profile can exist per account. Updates replace every field at once;
// there is no partial merge.
type Profile struct {
	AccountID string `json:"account_id"`
	FullName  string `json:"full_name"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
}
