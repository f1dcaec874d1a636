package database

// Collection names shared by repositories and migrations.
const (
	CollectionRides            = "rides"
	CollectionDeliveryRequests = "delivery_requests"
	CollectionMotorRiders      = "motor_riders"
	CollectionDrivers          = "drivers"
	CollectionVendors          = "vendors"
	CollectionCategories       = "categories"
	CollectionSettings         = "settings"
	CollectionMigrations       = "migrations"
)
