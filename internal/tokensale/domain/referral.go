package domain

// ReferralNode is one applicant in the referral forest, carrying its direct
// referrents. In the flat shape the children are leaves; in the recursive
// shape each child is expanded by the same rule.
type ReferralNode struct {
	PublicID   string         `json:"publicId"`
	Referrents []ReferralNode `json:"referrents"`
}
