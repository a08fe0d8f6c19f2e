package domain

// AccountInfo describes the platform account linked to a customer. A nil
// *AccountInfo on the aggregate means no account is linked.
type AccountInfo struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Locked   bool   `json:"locked"`
}

// Equals compares by user id and user name; the lock flag is state, not identity.
func (a AccountInfo) Equals(other AccountInfo) bool {
	return a.UserID == other.UserID && a.UserName == other.UserName
}
