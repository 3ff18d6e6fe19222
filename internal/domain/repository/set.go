package repository

// Set bundles one implementation of every repository.
type Set struct {
	Users             UserRepository
	Products          ProductRepository
	Reviews           ReviewRepository
	Orders            OrderRepository
	OrderItems        OrderItemRepository
	ShippingAddresses ShippingAddressRepository
}
