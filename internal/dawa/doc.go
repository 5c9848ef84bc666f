// Package dawa is a small client for the Danish address registry (DAWA).
//
// It builds the address search URL, performs a single GET against the
// registry, and decodes the flat ("mini") address records it returns. A
// response other than 200 OK is surfaced verbatim as a RegistryError; its
// body is never decoded.
package dawa
