// Package types defines the Contact entity, the store configuration, and
// standard errors for the rolodex contact book.
package types
