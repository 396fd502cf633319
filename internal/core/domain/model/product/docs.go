// Package product holds the read-only view of the external product catalog used to
// price orders and to fill the order forms.
package product
