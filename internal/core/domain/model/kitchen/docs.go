// Package kitchen contains the preparation Ticket aggregate, bound one-to-one
// to an order. Ticket state is causally derived from the order's state: the
// application layer advances both inside a single unit of work, so a ticket
// never reports READY while its order is still PREPARING, and vice versa.
package kitchen
