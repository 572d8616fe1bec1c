package domain

// Field names an Application attribute as it appears on the wire. Field
// policies (mandatory / editable / exported sets) are expressed over these.
type Field string

const (
	FieldPublicID   Field = "publicId"
	FieldPrivateID  Field = "privateId"
	FieldEmail      Field = "email"
	FieldSponsor    Field = "sponsor"
	FieldFirstName  Field = "firstName"
	FieldLastName   Field = "lastName"
	FieldCountry    Field = "country"
	FieldEthAddress Field = "ethAddress"
	FieldTelegram   Field = "telegram"
	FieldTwitter    Field = "twitter"
	FieldTxHashes   Field = "txHashes"
	FieldIsLocked   Field = "isLocked"
)

// View is an Application projected onto a policy's exported field set.
// Attributes outside the set stay at their zero value and are omitted from
// the JSON encoding, so internal audit dates never leak to applicants.
type View struct {
	PublicID   string   `json:"publicId,omitempty"`
	PrivateID  string   `json:"privateId,omitempty"`
	Email      string   `json:"email,omitempty"`
	Sponsor    string   `json:"sponsor,omitempty"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Country    string   `json:"country,omitempty"`
	EthAddress string   `json:"ethAddress,omitempty"`
	Telegram   string   `json:"telegram,omitempty"`
	Twitter    string   `json:"twitter,omitempty"`
	TxHashes   []string `json:"txHashes,omitempty"`
	IsLocked   *bool    `json:"isLocked,omitempty"`
}
