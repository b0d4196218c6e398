package schema

// Account is an immutable broker identity. It is copied by value into
// every order and event that references it.
type Account struct {
	Name     string
	BrokerID string
}
