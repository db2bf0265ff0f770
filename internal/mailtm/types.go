package mailtm

import "encoding/json"

// Domain is one entry of the /domains collection
type Domain struct {
	Domain string `json:"domain"`
}

// Account is the /me profile
type Account struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

// MessageSummary is one entry of the /messages collection; only the ID is
// needed for the detail fetch
type MessageSummary struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	CreatedAt string `json:"createdAt"`
}

// MessageDetail is the full message returned by /messages/{id}
type MessageDetail struct {
	ID        string     `json:"id"`
	Subject   string     `json:"subject"`
	Text      string     `json:"text"`
	HTML      StringList `json:"html"`
	CreatedAt string     `json:"createdAt"`
}

// StringList decodes a field the provider serves either as a single string
// or as an array of strings
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// hydra:member envelopes for list endpoints

type domainsResponse struct {
	Members []Domain `json:"hydra:member"`
}

type messagesResponse struct {
	Members []MessageSummary `json:"hydra:member"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
