package auth

import (
	"errors"

	"daylist/internal/model"
)

// Register validates a registration form, digests the password, and adds
// the account to the directory.
//
// All form failures for one submission are collected and returned together
// (including a taken username), not short-circuited one at a time.
func Register(dir *Directory, username, email, password, confirm string) (model.Account, error) {
	var msgs []string
	if err := ValidateRegistration(username, email, password, confirm); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			msgs = append(msgs, verr.Messages...)
		}
	}
	if _, taken := dir.FindByUsername(username); taken {
		msgs = append(msgs, ErrDuplicateUsername.Error())
	}
	if len(msgs) > 0 {
		return model.Account{}, &ValidationError{Messages: msgs}
	}

	acc := model.Account{
		Username:       username,
		Email:          email,
		PasswordDigest: Digest(password),
	}
	if err := dir.Register(acc); err != nil {
		return model.Account{}, err
	}
	return acc, nil
}
