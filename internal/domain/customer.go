package domain

// Customer is a storefront customer, keyed by the stable identity key the
// external identity provider assigns. Read-only lookup via orders.
type Customer struct {
	Key   string
	Name  string
	Email string
}
