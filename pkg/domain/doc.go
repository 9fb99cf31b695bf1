// Package domain contains the core entities of the meal delivery backend:
// addresses, meals, customers, deliveries with their meal orders, and the
// handling events recorded while a delivery travels to the customer. The types
// carry their own validation rules and are free of infrastructure concerns so
// they can be shared by the services, storage and transport layers.
package domain
