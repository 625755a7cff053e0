// Package product describes what a client orders: catalog products (type,
// material, purity), the order items that attach them to an order, and the
// enhancement tags a client can add when asking for a price.
package product
