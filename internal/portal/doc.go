// Package portal is the interactive terminal front end of gophmarks.
//
// It mirrors a small multi-page web portal: sidebar commands switch pages,
// "submit" fills in and sends the active page's form, and the Charts page
// draws the user's charts as soon as it is opened.
//
//	Logged out:
//	  - login          : open the Login page
//	  - signup         : open the Signup page
//	  - submit         : submit the active page's form
//	  - help           : show available commands
//	  - exit | quit    : leave the program
//
//	Logged in, additionally:
//	  - marks          : open the Enter Marks page
//	  - graphs         : open the Show Graphs page
//	  - export         : upload the ledger to object storage
//	  - signout        : end the session
//
// Navigation is driven by session.State; every command produces a new state
// value and the visible page is rendered from it.
package portal
