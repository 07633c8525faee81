// Package recall looks up vehicle safety recall campaigns in the NHTSA
// public registry.
//
// The Lookup pulls a {year, make, model} triple out of the user's question
// with a structured-extraction model call, asks for the missing pieces when
// extraction comes back incomplete, and queries the registry over HTTP.
// Models the registry indexes under a family name (a BMW 330 lives under
// "3 SERIES") are retried once through a small alias table.
package recall
