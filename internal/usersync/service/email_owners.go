package service

import "usersync/internal/usersync/model"

// emailOwners maps an address to the id of the first user seen holding it.
// It lives for a single reconciliation run.
type emailOwners map[string]int

func newEmailOwners(users []model.User) emailOwners {
	owners := emailOwners{}
	for _, u := range users {
		if !u.HasEmail() {
			continue
		}
		if _, seen := owners[*u.Email]; !seen {
			owners[*u.Email] = u.ID
		}
	}
	return owners
}

func (o emailOwners) claimedByOther(email string, userID int) (int, bool) {
	ownerID, ok := o[email]
	if !ok || ownerID == userID {
		return 0, false
	}
	return ownerID, true
}
