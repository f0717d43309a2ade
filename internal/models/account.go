// Package models defines the data shapes persisted by gophmarks.
package models

// Account is the profile stored for a username in the credential store.
// The username itself is the map key and is not repeated here.
//
// Password is kept and compared in plain text.
type Account struct {
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
	City     string `json:"city"`
}
