// Package store implements file persistence for the contact book: a CSV
// record store for contact rows and a JSON document store for metadata.
// The two stores are independent concrete types sharing only the read-all,
// write-all contract; each takes its backing file path as constructor input.
package store
