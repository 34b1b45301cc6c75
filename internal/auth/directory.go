package auth

import (
	"strings"

	"daylist/internal/model"
	"daylist/internal/store"
)

// Directory is the account directory: the userData list in the store.
//
// The store is the source of truth; every call re-reads the list and every
// mutation writes the whole list back before returning. Accounts are never
// deleted (there is no delete-account flow).
type Directory struct {
	kv store.KV
}

func NewDirectory(kv store.KV) *Directory {
	return &Directory{kv: kv}
}

// Accounts returns all registered accounts in registration order.
// A missing or corrupt userData value reads as an empty directory.
func (d *Directory) Accounts() []model.Account {
	var accs []model.Account
	d.kv.Get(store.KeyUserData, &accs)
	return accs
}

func (d *Directory) FindByUsername(name string) (model.Account, bool) {
	for _, a := range d.Accounts() {
		if a.Username == name {
			return a, true
		}
	}
	return model.Account{}, false
}

// Register appends the account and persists the full directory.
// Usernames are unique: a taken username fails with ErrDuplicateUsername
// and leaves the directory untouched.
func (d *Directory) Register(acc model.Account) error {
	accs := d.Accounts()
	for _, a := range accs {
		if a.Username == acc.Username {
			return ErrDuplicateUsername
		}
	}
	return d.kv.Set(store.KeyUserData, append(accs, acc))
}

// ProfilePatch holds profile fields to update. Empty fields are left alone;
// a field equal to the current value is also a no-op.
type ProfilePatch struct {
	Username string
	Email    string
	Image    string
}

// UpdateProfile locates the record by its pre-edit username, applies the
// patch, and persists the full directory. An unknown username fails with
// ErrUserNotFound so callers can't silently desynchronize the session from
// the directory.
func (d *Directory) UpdateProfile(oldUsername string, patch ProfilePatch) (model.Account, error) {
	accs := d.Accounts()
	for i := range accs {
		if accs[i].Username != oldUsername {
			continue
		}
		applyPatch(&accs[i], patch)
		if err := d.kv.Set(store.KeyUserData, accs); err != nil {
			return model.Account{}, err
		}
		return accs[i], nil
	}
	return model.Account{}, ErrUserNotFound
}

func applyPatch(a *model.Account, patch ProfilePatch) {
	if v := strings.TrimSpace(patch.Username); v != "" && v != a.Username {
		a.Username = v
	}
	if v := strings.TrimSpace(patch.Email); v != "" && v != a.Email {
		a.Email = v
	}
	if patch.Image != "" && patch.Image != a.Image {
		a.Image = patch.Image
	}
}
