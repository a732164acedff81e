// Package order contains the delivery order aggregate. An order is created
// together with its first job and always points at the job currently
// carrying it forward; terminal orders (Canceled, Delivered, Failed) are
// immutable.
package order
