// Package controlpage carries the static HTML control surface returned by
// GET_CONTROL_PAGE. The page is reference glue only; it does not talk to the
// daemon itself.
package controlpage

import _ "embed"

//go:embed page.html
var page string

// HTML returns the embedded control page.
func HTML() string {
	return page
}
